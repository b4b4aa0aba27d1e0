// Package cmd provides the command-line interface for logvalues with
// configuration management supporting multiple configuration sources.
//
// Configuration precedence, highest to lowest:
//  1. Command-line flags (--output, --log-level, etc.)
//  2. LOGVALUES_CONFIG_FILE environment variable - custom config file path
//  3. Individual environment variables (LOGVALUES_OUTPUT_FORMAT, etc.)
//  4. Configuration file (.logvalues.yml)
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/d-saravanan/logvalues/internal/config"
	"github.com/d-saravanan/logvalues/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "logvalues",
	Short: "Parse, render and inspect message templates for structured logging",
	Long: `logvalues works with message templates of the form
"User {UserId} logged in from {IpAddress}": templates with named
placeholders that render against a positional argument list while keeping
the placeholder names available as structured name/value pairs.

Key Features:
  • Render templates against argument lists ({Name,alignment:format} syntax)
  • Extract placeholder names and aligned name/value pairs
  • Values from the command line or a YAML/JSON file
  • Re-render on file change for template development

Quick Start:
  logvalues render "Hi {Name}" Ada          Render a template
  logvalues names "Hi {Name}"               List placeholder names
  logvalues values "Hi {Name}" Ada          Show name/value pairs
  logvalues watch greeting.tmpl Ada         Re-render on change`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .logvalues.yml, can also use LOGVALUES_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "output format (text, json)")

	if err := config.BindFlags(rootCmd.PersistentFlags()); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to bind flags:", err)
	}
}

// initConfig initializes the configuration system with support for
// multiple config sources; see the package comment for precedence.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("LOGVALUES_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".logvalues")
	}

	viper.SetEnvPrefix("LOGVALUES")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Missing or malformed config files fall back to defaults.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the CLI logger from the resolved configuration.
func newLogger(cfg *config.Config) logging.Logger {
	logConfig := logging.DefaultConfig()
	logConfig.Level = logging.ParseLevel(cfg.Log.Level)
	if cfg.Log.Format != "" {
		logConfig.Format = cfg.Log.Format
	}
	return logging.NewLogger(logConfig)
}
