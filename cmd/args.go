package cmd

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// loadValues resolves the argument list for a template: either every
// remaining command-line argument, or the contents of a values file when
// one was given (mixing both is rejected to keep positions unambiguous).
func loadValues(args []string, valuesFile string) ([]any, error) {
	if valuesFile == "" {
		values := make([]any, len(args))
		for i, arg := range args {
			values[i] = parseValue(arg)
		}
		return values, nil
	}

	if len(args) > 0 {
		return nil, fmt.Errorf("values must come from either arguments or --values-file, not both")
	}
	return loadValuesFile(valuesFile)
}

// loadValuesFile reads a YAML (or JSON) list of values.
func loadValuesFile(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading values file: %w", err)
	}

	var values []any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parsing values file %s: %w", path, err)
	}
	return values, nil
}

// parseValue interprets a command-line argument as the most specific value
// it reads as: null, bool, integer, float, then string.
func parseValue(arg string) any {
	switch arg {
	case "null", "~":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(arg, 64); err == nil {
		return f
	}
	return arg
}
