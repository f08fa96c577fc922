// Command atlasgen exports a font as packed glyph atlases with Lua metadata.
//
// Usage:
//
//	atlasgen [flags] <font-file> <size>...
//
// For every size it writes <family><style>-<size>pt.png and
// <family><style>-<size>pt-data.lua into the output directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"golang.org/x/term"

	"github.com/gogpu/glyphatlas"
	"github.com/gogpu/glyphatlas/atlas"
	"github.com/gogpu/glyphatlas/text"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options are the parsed command line flags.
type options struct {
	out      string
	format   string
	dpi      float64
	hinting  bool
	maxWidth int
	parser   string
	chars    string
	workers  int
	verify   bool
	verbose  bool
}

// errUsage marks command line errors; run prints the usage text for them.
var errUsage = errors.New("usage error")

func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("atlasgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.out, "out", ".", "output directory")
	fs.StringVar(&opts.format, "format", "png", "atlas image format: png, bmp or tiff")
	fs.Float64Var(&opts.dpi, "dpi", text.DefaultDPI, "resolution used to convert points to pixels")
	fs.BoolVar(&opts.hinting, "hinting", true, "hint glyph advances to whole pixels")
	fs.IntVar(&opts.maxWidth, "max-width", atlas.MaxRowWidth, "maximum atlas width in pixels")
	fs.StringVar(&opts.parser, "parser", "ximage", "font parser backend: ximage or gotext")
	fs.StringVar(&opts.chars, "chars", "", "character ranges, e.g. 32-125,0xA0-0xFF (default printable ASCII)")
	fs.IntVar(&opts.workers, "j", 1, "number of sizes exported concurrently (0 = GOMAXPROCS)")
	fs.BoolVar(&opts.verify, "verify", false, "read back each metadata file and compare")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: atlasgen [flags] <font-file> <size>...")
		fs.PrintDefaults()
	}
	return fs
}

// parseSizes converts the positional size arguments.
func parseSizes(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: at least one size is required", errUsage)
	}
	sizes := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: invalid size %q", errUsage, a)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// newLogger picks a text handler for terminals and JSON otherwise.
func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	hopts := &slog.HandlerOptions{Level: level}

	if f, ok := stderr.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewTextHandler(stderr, hopts))
	}
	return slog.New(slog.NewJSONHandler(stderr, hopts))
}

func exporterOptions(opts *options) ([]glyphatlas.Option, error) {
	format, err := glyphatlas.ParseImageFormat(opts.format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}

	hinting := text.HintingNone
	if opts.hinting {
		hinting = text.HintingFull
	}

	exOpts := []glyphatlas.Option{
		glyphatlas.WithFormat(format),
		glyphatlas.WithDPI(opts.dpi),
		glyphatlas.WithHinting(hinting),
		glyphatlas.WithMaxRowWidth(opts.maxWidth),
		glyphatlas.WithWorkers(opts.workers),
	}
	if opts.chars != "" {
		cs, err := atlas.ParseCharacterSet(opts.chars)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errUsage, err)
		}
		exOpts = append(exOpts, glyphatlas.WithCharacterSet(cs))
	}
	return exOpts, nil
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := newFlagSet(&opts, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	code, err := export(&opts, fs.Args(), stdout, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "atlasgen:", err)
		if errors.Is(err, errUsage) {
			fs.Usage()
		}
	}
	return code
}

func export(opts *options, args []string, stdout, stderr io.Writer) (int, error) {
	if len(args) < 1 {
		return 1, fmt.Errorf("%w: missing font file", errUsage)
	}
	sizes, err := parseSizes(args[1:])
	if err != nil {
		return 1, err
	}
	exOpts, err := exporterOptions(opts)
	if err != nil {
		return 1, err
	}

	glyphatlas.SetLogger(newLogger(stderr, opts.verbose))
	exOpts = append(exOpts, glyphatlas.WithProgress(func(size int) {
		fmt.Fprintf(stdout, "Font size: %d\n", size)
	}))

	exporter, err := glyphatlas.NewExporter(exOpts...)
	if err != nil {
		return 1, fmt.Errorf("%w: %v", errUsage, err)
	}

	src, err := text.NewFontSourceFromFile(args[0], text.WithParser(opts.parser))
	if err != nil {
		return 1, err
	}
	defer func() { _ = src.Close() }()

	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return 1, err
	}

	fmt.Fprintf(stdout, "Font family: %s, style: %s\n", src.FamilyName(), src.StyleName())

	results, exportErr := exporter.ExportAll(src, sizes, opts.out)
	failed := false
	for _, res := range results {
		if res == nil {
			failed = true
			continue
		}
		if opts.verify {
			if err := res.Verify(opts.out); err != nil {
				fmt.Fprintln(stderr, "atlasgen:", err)
				failed = true
			}
		}
	}

	if exportErr != nil {
		return 1, exportErr
	}
	if failed {
		return 1, nil
	}
	return 0, nil
}
