package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/marie-eckert/tasm/config"
	"github.com/marie-eckert/tasm/diag"
	"github.com/marie-eckert/tasm/emit"
	"github.com/marie-eckert/tasm/resolve"
	"github.com/marie-eckert/tasm/tasmast"
	"github.com/marie-eckert/tasm/tasmparse"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
)

// stderrLogger is the CLI's own Logger implementation: plain, bracketed,
// uncolored prefixes matching the original source's log.h message shape
// without its ANSI escape codes.
type stderrLogger struct {
	color bool
}

func (l stderrLogger) Debugf(format string, args ...any) { l.printf("*", format, args...) }
func (l stderrLogger) Infof(format string, args ...any)  { l.printf("i", format, args...) }
func (l stderrLogger) Warnf(format string, args ...any)  { l.printf("w", format, args...) }
func (l stderrLogger) Errorf(format string, args ...any) { l.printf("e", format, args...) }

func (l stderrLogger) printf(tag, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[%s] %s\n", tag, fmt.Sprintf(format, args...))
}

func main() {
	os.Exit(run())
}

func run() int {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		inFile      = flag.String("i", "", "Input source file (required)")
		outFile     = flag.String("o", "", "Output file (default asm.out, or config)")
		format      = flag.String("f", "", "Output format: rom or tef (default rom, or config)")
		searchDirs  = flag.String("s", "", "Colon-separated include search directories")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("tasm %s (%s)\n", Version, Commit)
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[e] failed to load config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	if *inFile == "" {
		fmt.Fprintln(os.Stderr, "[e] no input file specified (-i)")
		return 1
	}
	out := *outFile
	if out == "" {
		out = cfg.Assemble.OutputFile
	}
	outFormat := *format
	if outFormat == "" {
		outFormat = cfg.Assemble.OutputFormat
	}
	dirs := cfg.Assemble.SearchDirs
	if *searchDirs != "" {
		dirs = config.SearchDirsFromFlag(*searchDirs)
	}

	logger := stderrLogger{color: cfg.Log.ColorOutput}
	reporter := diag.NewReporter(logger, cfg.Assemble.FailFast)

	return assemble(*inFile, out, outFormat, dirs, reporter, logger)
}

func assemble(in, out, format string, dirs []string, reporter *diag.Reporter, logger diag.Logger) int {
	ast := tasmast.NewAST()

	logger.Infof("Step 1: parsing %s", in)
	if err := tasmparse.ParseFile(in, ast, dirs, reporter.Handle); err != nil {
		logger.Errorf("parse failed: %v", err)
		return 1
	}
	if reporter.List.HasErrors() {
		return 1
	}

	tasmast.ExpandSymbols(ast)

	size, err := resolve.PrecomputeSize(ast)
	if err != nil {
		logger.Errorf("size precompute failed: %v", err)
		return 1
	}
	if err := resolve.ResolveLabels(ast); err != nil {
		logger.Errorf("label resolve failed: %v", err)
		return 1
	}

	logger.Infof("Step 2: emitting %d bytes", size)
	buf, err := emit.EmitTree(ast, size)
	if err != nil {
		logger.Errorf("emission failed: %v", err)
		return 1
	}

	var formatter emit.Formatter
	switch format {
	case "", "rom":
		formatter = emit.RawFormatter{}
	case "tef":
		// Out of core scope per the external-interfaces section: the
		// container format wrapper is a CLI-side collaborator. Until one
		// is wired in, tef falls back to the raw byte stream.
		logger.Warnf("tef output format not implemented by this build, writing raw bytes")
		formatter = emit.RawFormatter{}
	default:
		logger.Errorf("unknown output format %q", format)
		return 1
	}

	if err := emit.WriteROM(out, buf, formatter); err != nil {
		logger.Errorf("write failed: %v", err)
		return 1
	}

	return 0
}
