// Command kdgroup derives the signed unit group of a Cayley–Dickson algebra
// and prints its tables, generators and loops, exports the derivation as
// YAML, or emits the Cayley graph as Graphviz DOT.
//
//	kdgroup summary -n 2
//	kdgroup table -n 2 --kind signed
//	kdgroup export -n 3 --format yaml -o g3.yaml
//	kdgroup dot -n 2 | neato -n -Tsvg > g2.svg
package main

import (
	"fmt"
	"io"
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/kdgroup/algebra"
	"github.com/katalvlaran/kdgroup/group"
)

var log = logging.Logger("kdgroup")

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"order":     "order",
	"memoize":   "memoize",
	"workers":   "workers",
	"log-level": "log_level",
	"rotate":    "rotate",
	"format":    "format",
	"kind":      "kind",
	"output":    "output",
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries configuration between cobra hooks and commands.
type app struct {
	v          *viper.Viper
	cfg        Config
	configPath string
}

func newRootCmd() *cobra.Command {
	a := &app{v: newViper()}
	root := &cobra.Command{
		Use:          "kdgroup",
		Short:        "Derive Cayley–Dickson unit groups, their generators and loops",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.IntP("order", "n", 2, "doubling order: 0 reals, 1 complex, 2 quaternions, 3 octonions, …")
	pf.Bool("memoize", true, "cache products during the derivation")
	pf.Int("workers", 1, "goroutines computing table rows")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&a.configPath, "config", "", "optional YAML config file")

	root.AddCommand(a.summaryCmd(), a.tableCmd(), a.exportCmd(), a.dotCmd())

	return root
}

// load resolves the configuration for the running command.
func (a *app) load(cmd *cobra.Command) error {
	if err := bindFlags(a.v, cmd, flagKeys); err != nil {
		return err
	}
	cfg, err := loadConfig(a.v, a.configPath)
	if err != nil {
		return err
	}
	applyLogLevel(cfg)
	a.cfg = cfg

	return nil
}

// derive runs the group derivation for the configured order.
func (a *app) derive() (*group.Result, error) {
	res, err := group.Derive(a.cfg.Order, a.cfg.deriveOptions()...)
	if err != nil {
		return nil, err
	}
	log.Debugw("derived", "order", res.Order, "members", len(res.Members),
		"generators", res.GeneratorColumns(), "cacheEntries", res.Cache.Entries)

	return res, nil
}

// output returns the configured destination and a function closing it.
func (a *app) output(cmd *cobra.Command) (io.Writer, func() error, error) {
	if a.cfg.Output == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(a.cfg.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", a.cfg.Output, err)
	}
	log.Infof("writing to %s", a.cfg.Output)

	return f, f.Close, nil
}

// run derives the group and hands it to render with the configured output.
func (a *app) run(cmd *cobra.Command, render func(io.Writer, *group.Result) error) error {
	res, err := a.derive()
	if err != nil {
		return err
	}
	w, closeFn, err := a.output(cmd)
	if err != nil {
		return err
	}
	if err := render(w, res); err != nil {
		_ = closeFn()
		return err
	}

	return closeFn()
}

func (a *app) summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print members, generators and loops",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, writeSummary)
		},
	}
	cmd.Flags().StringP("output", "o", "", "write to file instead of stdout")

	return cmd
}

func (a *app) tableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the group table, the signed heatmap table or the basis product table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, a.writeTable)
		},
	}
	cmd.Flags().String("kind", kindGroup, "table kind: group, signed or basis")
	cmd.Flags().StringP("output", "o", "", "write to file instead of stdout")

	return cmd
}

// writeTable renders the table kind selected in the configuration.
func (a *app) writeTable(w io.Writer, res *group.Result) error {
	switch a.cfg.Kind {
	case kindGroup:
		labels := make([]string, len(res.Members))
		for k := range res.Members {
			labels[k] = res.Label(k)
		}
		return writeIntTable(w, labels, res.Table)

	case kindSigned:
		z, err := group.SignedTable(algebra.NewMultiplier(), res.Basis)
		if err != nil {
			return err
		}
		labels := make([]string, len(res.Basis))
		for k, x := range res.Basis {
			labels[k] = group.Label(x, k)
		}
		return writeIntTable(w, labels, z)

	case kindBasis:
		cells, err := algebra.ProductTable(algebra.NewMultiplier(), res.Basis)
		if err != nil {
			return err
		}
		return writeElementTable(w, res.Basis, cells)

	default:
		return fmt.Errorf("unknown table kind %q (want %s, %s or %s)", a.cfg.Kind, kindGroup, kindSigned, kindBasis)
	}
}

func (a *app) exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Serialize the derivation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch a.cfg.Format {
			case formatYAML:
				return a.run(cmd, writeYAML)
			case formatText:
				return a.run(cmd, writeSummary)
			default:
				return fmt.Errorf("unknown format %q (want %s or %s)", a.cfg.Format, formatText, formatYAML)
			}
		},
	}
	cmd.Flags().String("format", formatText, "output format: text or yaml")
	cmd.Flags().StringP("output", "o", "", "write to file instead of stdout")

	return cmd
}

func (a *app) dotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Emit the Cayley graph in Graphviz DOT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(w io.Writer, res *group.Result) error {
				return writeDOT(w, res, a.cfg.Rotate)
			})
		},
	}
	cmd.Flags().Int("rotate", -1, "roll loop k by rotate·k positions before placing it")
	cmd.Flags().StringP("output", "o", "", "write to file instead of stdout")

	return cmd
}
