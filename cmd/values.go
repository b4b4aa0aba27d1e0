package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/d-saravanan/logvalues/formatter"
	"github.com/d-saravanan/logvalues/internal/config"
	"github.com/spf13/cobra"
)

var valuesCmd = &cobra.Command{
	Use:   "values TEMPLATE [VALUE...]",
	Short: "Show the name/value pairs a template extracts from its arguments",
	Long: `Show the structured name/value pairs a logging backend receives for a
template and its argument list. The final pair is always the reserved
{OriginalFormat} entry carrying the raw template text.

Examples:
  logvalues values "User {UserId} logged in" 42
  logvalues values "Order {Id}" --values-file order.yml
  logvalues values "User {UserId}" 42 -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValues,
}

var valuesValuesFile string

func init() {
	rootCmd.AddCommand(valuesCmd)

	valuesCmd.Flags().StringVarP(&valuesValuesFile, "values-file", "f", "", "YAML/JSON file holding the value list")
}

func runValues(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	values, err := loadValues(args[1:], valuesValuesFile)
	if err != nil {
		return err
	}

	f := formatter.New(args[0])
	if len(values) < len(f.ValueNames()) {
		return fmt.Errorf("template names %d value(s) but only %d were supplied", len(f.ValueNames()), len(values))
	}

	pairs := f.GetValues(values)

	if cfg.Output.Format == "json" {
		out := make([]map[string]any, len(pairs))
		for i, pair := range pairs {
			out[i] = map[string]any{"name": pair.Name, "value": pair.Value}
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	}

	for _, pair := range pairs {
		fmt.Printf("%s = %v\n", pair.Name, pair.Value)
	}
	return nil
}
