package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/d-saravanan/logvalues/formatter"
	"github.com/d-saravanan/logvalues/internal/config"
	"github.com/spf13/cobra"
)

var namesCmd = &cobra.Command{
	Use:   "names TEMPLATE",
	Short: "List the placeholder names of a message template",
	Long: `List the placeholder names of a message template in the order they
appear. Repeated names are listed once per occurrence, matching the
positional slot each occurrence renders from.

Examples:
  logvalues names "User {UserId} logged in from {IpAddress}"
  logvalues names "{A} and {A}"
  logvalues names "{Count,5:D2} items" -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runNames,
}

func init() {
	rootCmd.AddCommand(namesCmd)
}

func runNames(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	names := formatter.New(args[0]).ValueNames()

	if cfg.Output.Format == "json" {
		if names == nil {
			names = []string{}
		}
		encoder := json.NewEncoder(os.Stdout)
		return encoder.Encode(names)
	}

	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
