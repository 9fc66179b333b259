// Package commands implements CLI command handlers for lexfang.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/lexfang/internal/toolconfig"
	"github.com/Sumatoshi-tech/lexfang/pkg/classes"
)

// ClassesOptions holds runtime options for the classes command.
type ClassesOptions struct {
	ConfigPath string
	File       string
	Format     string
	NoColor    bool
}

// NewClassesCommand creates the classes listing command.
func NewClassesCommand() *cobra.Command {
	opts := ClassesOptions{}

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List the known character classes",
		Long: `List the builtin POSIX-style classes plus any classes loaded from a
YAML definitions file, with their interval decomposition and sizes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, &opts.ConfigPath, &opts.File, &opts.Format, opts.NoColor)
			if err != nil {
				return err
			}

			return RunClasses(cmd.OutOrStdout(), cfg)
		},
	}

	addCommonFlags(cmd, &opts.ConfigPath, &opts.File, &opts.Format, &opts.NoColor)

	return cmd
}

// RunClasses renders the class registry to writer according to cfg.
func RunClasses(writer io.Writer, cfg *toolconfig.Config) error {
	registry, err := buildRegistry(cfg.Classes.File)
	if err != nil {
		return err
	}

	if cfg.Output.Format == toolconfig.FormatPlain {
		for _, name := range registry.Names() {
			set, _ := registry.Lookup(name)
			fmt.Fprintf(writer, "%s\t%s\n", name, set)
		}

		return nil
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false

	tbl.AppendHeader(table.Row{"Class", "Set", "Intervals", "Characters"})

	for _, name := range registry.Names() {
		set, _ := registry.Lookup(name)
		tbl.AppendRow(table.Row{
			name,
			set.String(),
			humanize.Comma(int64(set.SpanCount())),
			humanize.Comma(int64(set.Count())),
		})
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d classes", registry.Len())})

	heading := color.New(color.FgCyan).Sprint("Character classes")
	fmt.Fprintf(writer, "%s\n%s\n", heading, tbl.Render())

	return nil
}

// buildRegistry seeds the builtin classes and layers an optional YAML
// definitions file on top.
func buildRegistry(path string) (*classes.Registry, error) {
	registry := classes.Builtin()

	if path == "" {
		return registry, nil
	}

	if err := registry.LoadFile(path); err != nil {
		return nil, fmt.Errorf("loading class definitions from %s: %w", path, err)
	}

	slog.Debug("loaded class definitions", "path", path, "classes", registry.Len())

	return registry, nil
}

// addCommonFlags wires the flags shared by the classes and eval commands.
func addCommonFlags(cmd *cobra.Command, configPath, file, format *string, noColor *bool) {
	cmd.Flags().StringVar(configPath, "config", "", "path to a lexfang config file")
	cmd.Flags().StringVar(file, "file", "", "YAML file with additional class definitions")
	cmd.Flags().StringVar(format, "format", "", "output format: table or plain")
	cmd.Flags().BoolVar(noColor, "no-color", false, "disable colored output")
}

// resolveConfig loads the viper config and applies flag overrides. Flags
// that were set explicitly win over file and environment values.
func resolveConfig(cmd *cobra.Command, configPath, file, format *string, noColor bool) (*toolconfig.Config, error) {
	cfg, err := toolconfig.Load(*configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("file") {
		cfg.Classes.File = *file
	}

	if cmd.Flags().Changed("format") {
		cfg.Output.Format = *format
	}

	switch cfg.Output.Format {
	case toolconfig.FormatTable, toolconfig.FormatPlain:
	default:
		return nil, fmt.Errorf("%w: %q", toolconfig.ErrInvalidFormat, cfg.Output.Format)
	}

	if noColor || !cfg.Output.Color {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	configureLogging(cfg.Logging.Level)

	return cfg, nil
}

// configureLogging installs a text slog handler at the configured level.
func configureLogging(level string) {
	var lvl slog.Level

	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
