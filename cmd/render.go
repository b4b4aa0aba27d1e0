package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/d-saravanan/logvalues/formatter"
	"github.com/d-saravanan/logvalues/internal/config"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render TEMPLATE [VALUE...]",
	Short: "Render a message template against an argument list",
	Long: `Render a message template against a positional argument list.

Values are taken from the remaining arguments, or from a YAML/JSON list
file via --values-file. Arguments parse as null/bool/number when they read
as one, otherwise as strings.

Examples:
  logvalues render "User {UserId} logged in" 42
  logvalues render "{Count,5:D2} items" 7
  logvalues render "Order {Id}" --values-file order.yml
  logvalues render "Tags: {Tags}" --values-file tags.yml -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

var renderValuesFile string

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderValuesFile, "values-file", "f", "", "YAML/JSON file holding the value list")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := newLogger(cfg).WithComponent("render")

	values, err := loadValues(args[1:], renderValuesFile)
	if err != nil {
		return err
	}

	f := formatter.New(args[0])
	logger.Debug("parsed template", "names", f.ValueNames())

	rendered, err := f.Format(values...)
	if err != nil {
		return fmt.Errorf("rendering template: %w", err)
	}

	if cfg.Output.Format == "json" {
		encoder := json.NewEncoder(os.Stdout)
		return encoder.Encode(map[string]any{
			"template": f.OriginalFormat(),
			"rendered": rendered,
		})
	}

	fmt.Println(rendered)
	return nil
}
