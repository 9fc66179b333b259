package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/lexfang/internal/toolconfig"
	"github.com/Sumatoshi-tech/lexfang/pkg/charset"
	"github.com/Sumatoshi-tech/lexfang/pkg/classes"
)

// Sentinel errors for operand and operator parsing.
var (
	// ErrUnknownOperation indicates the first eval argument is not a
	// supported set operation.
	ErrUnknownOperation = errors.New("unknown operation (want union, intersect or difference)")
	// ErrEmptyOperand indicates an operand expression with no characters.
	ErrEmptyOperand = errors.New("empty operand expression")
)

// EvalOptions holds runtime options for the eval command.
type EvalOptions struct {
	ConfigPath string
	File       string
	Format     string
	NoColor    bool
}

// NewEvalCommand creates the set-operation evaluation command.
func NewEvalCommand() *cobra.Command {
	opts := EvalOptions{}

	cmd := &cobra.Command{
		Use:   "eval <union|intersect|difference> <a> <b>",
		Short: "Combine two character sets with a set operation",
		Long: `Evaluate a set operation over two operands and print the interval
decomposition of the result. Operands are class names (see the classes
command), range expressions like "a-z", or literal characters.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, &opts.ConfigPath, &opts.File, &opts.Format, opts.NoColor)
			if err != nil {
				return err
			}

			return RunEval(cmd.OutOrStdout(), cfg, args[0], args[1], args[2])
		},
	}

	addCommonFlags(cmd, &opts.ConfigPath, &opts.File, &opts.Format, &opts.NoColor)

	return cmd
}

// RunEval resolves both operands against the class registry, applies the
// operation and renders the result to writer.
func RunEval(writer io.Writer, cfg *toolconfig.Config, op, left, right string) error {
	registry, err := buildRegistry(cfg.Classes.File)
	if err != nil {
		return err
	}

	a, err := resolveOperand(registry, left)
	if err != nil {
		return fmt.Errorf("operand %q: %w", left, err)
	}

	b, err := resolveOperand(registry, right)
	if err != nil {
		return fmt.Errorf("operand %q: %w", right, err)
	}

	result, err := apply(op, a, b)
	if err != nil {
		return err
	}

	if cfg.Output.Format == toolconfig.FormatPlain {
		fmt.Fprintf(writer, "%s\n", result)

		return nil
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false

	tbl.AppendHeader(table.Row{"Interval", "Characters"})

	for span := range result.Spans() {
		tbl.AppendRow(table.Row{
			charset.Empty().AddRange(span.Lo, span.Hi).String(),
			humanize.Comma(int64(span.Count())),
		})
	}

	tbl.AppendFooter(table.Row{
		fmt.Sprintf("%d intervals", result.SpanCount()),
		humanize.Comma(int64(result.Count())),
	})

	heading := color.New(color.FgCyan).Sprintf("%s %s %s = %s", left, op, right, result)
	fmt.Fprintf(writer, "%s\n%s\n", heading, tbl.Render())

	return nil
}

// apply dispatches the named set operation.
func apply(op string, a, b charset.Set) (charset.Set, error) {
	switch op {
	case "union":
		return a.Union(b), nil
	case "intersect":
		return a.Intersect(b), nil
	case "difference":
		return a.Difference(b), nil
	default:
		return charset.Set{}, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
}

// resolveOperand interprets expr as a class name, a "lo-hi" range, a
// single character or a literal character list, in that order.
func resolveOperand(registry *classes.Registry, expr string) (charset.Set, error) {
	if expr == "" {
		return charset.Set{}, ErrEmptyOperand
	}

	if set, ok := registry.Lookup(expr); ok {
		return set, nil
	}

	rs := []rune(expr)
	if len(rs) == 3 && rs[1] == '-' {
		lo, hi, err := classes.ParseRange(expr)
		if err != nil {
			return charset.Set{}, err
		}

		return charset.Empty().AddRange(lo, hi), nil
	}

	return charset.FromRunes(rs), nil
}
