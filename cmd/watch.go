package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/d-saravanan/logvalues/formatter"
	"github.com/d-saravanan/logvalues/internal/config"
	"github.com/d-saravanan/logvalues/internal/watcher"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE [VALUE...]",
	Short: "Watch a template file and re-render it on every change",
	Long: `Watch a template file and re-render it against the given values on
every change. Useful while authoring log message templates: save the file
and see the rendered output immediately.

Examples:
  logvalues watch greeting.tmpl Ada
  logvalues watch order.tmpl --values-file order.yml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

var watchValuesFile string

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchValuesFile, "values-file", "f", "", "YAML/JSON file holding the value list")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := newLogger(cfg).WithComponent("watch")

	values, err := loadValues(args[1:], watchValuesFile)
	if err != nil {
		return err
	}

	fileWatcher, err := watcher.NewFileWatcher(cfg.Watch.Debounce)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fileWatcher.Stop()

	render := func(path string) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading template file: %w", err)
		}

		rendered, err := formatter.New(string(data)).Format(values...)
		if err != nil {
			// Keep watching; the template is mid-edit.
			logger.Warn(err, "render failed", "path", path)
			return nil
		}
		fmt.Println(rendered)
		return nil
	}

	fileWatcher.AddHandler(render)
	if err := fileWatcher.AddFile(args[0]); err != nil {
		return err
	}

	// Initial render before the first change arrives.
	if err := render(args[0]); err != nil {
		return err
	}
	logger.Info("watching template", "path", args[0])

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := fileWatcher.Start(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
