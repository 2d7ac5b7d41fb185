package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nodeadmin/casq-go/compile"
	"github.com/nodeadmin/casq-go/model"
	"github.com/nodeadmin/casq-go/reader"
	"github.com/nodeadmin/casq-go/writer"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "casq-go: %v\n", err)
		os.Exit(1)
	}
}

type cliFlags struct {
	debug          bool
	csv            bool
	sif            bool
	remove         int
	fixed          string
	names          bool
	upstream       []string
	downstream     []string
	bma            bool
	granularity    int
	input          int
	colourConstant string
}

func newRootCmd() *cobra.Command {
	var flags cliFlags

	cmd := &cobra.Command{
		Use:   "casq-go [infile] [outfile]",
		Short: "Compile a CellDesigner/SBGN-PD reaction map into a Boolean logical model",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.debug, "debug", "D", false, "enable debug logging")
	cmd.Flags().BoolVarP(&flags.csv, "csv", "c", false, "also write a CSV + BNet sidecar")
	cmd.Flags().BoolVarP(&flags.sif, "sif", "s", false, "also write a SIF sidecar")
	cmd.Flags().IntVarP(&flags.remove, "remove", "r", 0, "component threshold: >0 drop smaller, <0 keep k largest")
	cmd.Flags().StringVarP(&flags.fixed, "fixed", "f", "", "path to a fixed-values override table")
	cmd.Flags().BoolVarP(&flags.names, "names", "n", false, "use biological names as export ids")
	cmd.Flags().StringSliceVarP(&flags.upstream, "upstream", "u", nil, "keep the upstream cone of these species")
	cmd.Flags().StringSliceVarP(&flags.downstream, "downstream", "d", nil, "keep the downstream cone of these species")
	cmd.Flags().BoolVarP(&flags.bma, "bma", "b", false, "write BMA-JSON instead of SBML-Qual")
	cmd.Flags().IntVarP(&flags.granularity, "granularity", "g", 1, "BMA writer granularity")
	cmd.Flags().IntVarP(&flags.input, "input", "i", 0, "BMA default value for free inputs")
	cmd.Flags().StringVarP(&flags.colourConstant, "colourConstant", "C", "", "BMA writer constant colour override")

	return cmd
}

func run(cmd *cobra.Command, args []string, flags cliFlags) error {
	logger := newLogger(flags.debug)

	infile := ""
	outfile := ""
	if len(args) > 0 {
		infile = args[0]
	}
	if len(args) > 1 {
		outfile = args[1]
	}

	in, closeIn, err := openInput(infile)
	if err != nil {
		return err
	}
	defer closeIn()

	m, err := reader.ParseCellDesigner(in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", displayName(infile), err)
	}

	var overrides []compile.Override
	if flags.fixed != "" {
		f, err := os.Open(flags.fixed)
		if err != nil {
			return fmt.Errorf("opening fixed-values table: %w", err)
		}
		overrides, err = compile.ParseOverrides(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("parsing fixed-values table: %w", err)
		}
	}

	diagnostics, err := compile.Compile(m, compile.Options{
		ComponentThreshold: flags.remove,
		Upstream:           flags.upstream,
		Downstream:         flags.downstream,
		PreferNamesAsIDs:   flags.names,
		Overrides:          overrides,
		Logger:             logger,
	})
	if err != nil {
		return fmt.Errorf("compiling: %w", err)
	}

	if outfile == "" && infile != "" {
		outfile = swapExt(infile, ".sbml")
	}

	if err := writeMain(m, outfile, flags); err != nil {
		return err
	}
	if flags.csv {
		if err := writeSidecar(m, outfile, ".csv", func(w *os.File) error { return writer.WriteCSV(w, m) }); err != nil {
			return err
		}
		if err := writeSidecar(m, outfile, ".bnet", func(w *os.File) error { return writer.WriteBNet(w, m) }); err != nil {
			return err
		}
	}
	if flags.sif {
		if err := writeSidecar(m, outfile, ".sif", func(w *os.File) error { return writer.WriteSIF(w, m) }); err != nil {
			return err
		}
	}

	for _, d := range diagnostics {
		fmt.Fprintln(os.Stderr, d.String())
	}
	return nil
}

func writeMain(m *model.Model, outfile string, flags cliFlags) error {
	out, closeOut, err := openOutput(outfile)
	if err != nil {
		return err
	}
	defer closeOut()

	if flags.bma {
		return writer.WriteBMA(out, m, writer.BMAOptions{
			Granularity:    flags.granularity,
			DefaultInput:   flags.input,
			ColourConstant: flags.colourConstant,
		})
	}
	return writer.WriteSBMLQual(out, m, m.CanvasWidth, m.CanvasHeight)
}

func writeSidecar(m *model.Model, outfile, ext string, write func(*os.File) error) error {
	path := swapExt(outfile, ext)
	if outfile == "" {
		path = "out" + ext
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return write(f)
}

func openInput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

func swapExt(path, ext string) string {
	if path == "" {
		return ""
	}
	trimmed := strings.TrimSuffix(path, filepath.Ext(path))
	return trimmed + ext
}

func displayName(path string) string {
	if path == "" {
		return "stdin"
	}
	return path
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelError + 4 // effectively disabled, mirrors logger.disable("casq")
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
