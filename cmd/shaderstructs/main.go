// Command shaderstructs generates host-language struct definitions from the
// reflection data of compiled shaders.
//
// Usage:
//
//	shaderstructs [options] -o <file>
//	shaderstructs [options] <file>
//
// Options:
//
//	-o <file>              Write output to file ("-" for stdout)
//	-root <dir>            Directory searched for shaders (default: .)
//	-ext <list>            Comma-separated shader extensions (default: .spv)
//	-tool <bin>            Reflection tool (default: spirv-cross)
//	-timeout <duration>    Per-shader tool timeout (default: none)
//	-wgsl                  Also reflect .wgsl sources
//	-target cpp|go         Output language (default: cpp)
//	-namespace <name>      C++ namespace (default: glsl)
//	-package <name>        Go package (default: glsl)
//	-collision <policy>    keep-first, rename or fail (default: keep-first)
//	-vertex                Emit vertex input structs
//	-pad                   Insert explicit padding members
//	-config <file>         Use specific config file
//	-no-config             Ignore config files
//	-no-reflection-files   Don't write <shader>.json next to each shader
//	-strict                Exit with status 1 when any error is reported
//	-v                     Verbose logging
//	-version               Print version and exit
//	-help                  Print help and exit
//
// Config file:
//
//	shaderstructs looks for shaderstructs.json, .shaderstructsrc,
//	shaderstructs.yaml or shaderstructs.yml in the shader root and its parent
//	directories. Config file options are overridden by CLI flags.
//
// Example shaderstructs.yaml:
//
//	root: shaders
//	output: include/shader_structs.hpp
//	collision: rename
//	vertex: true
//	ignorePrefixes: [gl_, Debug]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/HugoDaniel/shaderstructs/internal/aggregate"
	"github.com/HugoDaniel/shaderstructs/internal/config"
	"github.com/HugoDaniel/shaderstructs/internal/formats"
	"github.com/HugoDaniel/shaderstructs/internal/logger"
	"github.com/HugoDaniel/shaderstructs/pkg/api"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Flags
	var (
		outputFile        string
		root              string
		exts              string
		tool              string
		timeout           time.Duration
		wgsl              bool
		target            string
		namespace         string
		pkg               string
		collision         string
		vertex            bool
		pad               bool
		configFile        string
		noConfig          bool
		noReflectionFiles bool
		strict            bool
		verbose           bool
		showVersion       bool
		showHelp          bool
	)

	defaults := api.DefaultOptions()

	flag.StringVar(&outputFile, "o", "", "Write output to `file` (\"-\" for stdout)")
	flag.StringVar(&root, "root", defaults.Root, "Directory searched for shaders")
	flag.StringVar(&exts, "ext", strings.Join(defaults.Extensions, ","), "Comma-separated shader `extensions`")
	flag.StringVar(&tool, "tool", defaults.Tool, "Reflection tool `binary`")
	flag.DurationVar(&timeout, "timeout", 0, "Per-shader tool timeout (0 means none)")
	flag.BoolVar(&wgsl, "wgsl", false, "Also reflect .wgsl sources")
	flag.StringVar(&target, "target", defaults.Target, "Output language: "+choices(formats.Targets))
	flag.StringVar(&namespace, "namespace", defaults.Namespace, "C++ `namespace`")
	flag.StringVar(&pkg, "package", defaults.Package, "Go `package` name")
	flag.StringVar(&collision, "collision", defaults.Collision, "Name collision `policy`: "+choices(aggregate.Policies))
	flag.BoolVar(&vertex, "vertex", false, "Emit vertex input structs")
	flag.BoolVar(&pad, "pad", false, "Insert explicit padding members")
	flag.StringVar(&configFile, "config", "", "Use specific config `file`")
	flag.BoolVar(&noConfig, "no-config", false, "Ignore config files")
	flag.BoolVar(&noReflectionFiles, "no-reflection-files", false, "Don't write <shader>.json reflection files")
	flag.BoolVar(&strict, "strict", false, "Exit with status 1 when any error is reported")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.BoolVar(&showHelp, "help", false, "Print help and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "shaderstructs - shader struct generator v%s\n\n", version)
		fmt.Fprintf(os.Stderr, "Usage: shaderstructs [options] -o <file>\n")
		fmt.Fprintf(os.Stderr, "       shaderstructs [options] <file>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nConfig file:\n")
		fmt.Fprintf(os.Stderr, "  Searches for shaderstructs.json, .shaderstructsrc or shaderstructs.yaml\n")
		fmt.Fprintf(os.Stderr, "  in the shader root and parent directories.\n")
		fmt.Fprintf(os.Stderr, "  CLI flags override config file settings.\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  shaderstructs -root shaders include/shader_structs.hpp\n")
		fmt.Fprintf(os.Stderr, "  shaderstructs -target go -package shaders -o shaders/structs.go\n")
		fmt.Fprintf(os.Stderr, "  shaderstructs -wgsl -collision rename -o - | less\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		return nil
	}

	if showVersion {
		fmt.Printf("shaderstructs v%s (%s)\n", version, commit)
		return nil
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger.Set(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if flag.NArg() > 1 {
		flag.Usage()
		return fmt.Errorf("expected at most one output file, got %d", flag.NArg())
	}
	if flag.NArg() == 1 {
		if outputFile != "" && outputFile != flag.Arg(0) {
			return fmt.Errorf("output given twice: -o %s and %s", outputFile, flag.Arg(0))
		}
		outputFile = flag.Arg(0)
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// Load config file
	var cfg *config.Config
	var configPath string
	if !noConfig {
		var err error
		if configFile != "" {
			// Use specified config file
			cfg, err = config.LoadFile(configFile)
			if err != nil {
				return fmt.Errorf("loading config file %s: %w", configFile, err)
			}
			configPath = configFile
		} else {
			// Search for config file
			cfg, configPath, err = config.Load(root)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
		}
	}
	if configPath != "" {
		logger.L().Debug("using config", "path", configPath)
	}

	// Build CLI overrides - only set if explicitly specified
	cliOpts := config.MergeOptions{NoReflectionFiles: noReflectionFiles}
	if set["root"] {
		cliOpts.Root = &root
	}
	if set["ext"] {
		cliOpts.Extensions = splitList(exts)
	}
	if set["tool"] {
		cliOpts.Tool = &tool
	}
	if set["timeout"] {
		cliOpts.Timeout = &timeout
	}
	if set["wgsl"] {
		cliOpts.WGSL = &wgsl
	}
	if set["target"] {
		cliOpts.Target = &target
	}
	if set["namespace"] {
		cliOpts.Namespace = &namespace
	}
	if set["package"] {
		cliOpts.Package = &pkg
	}
	if set["collision"] {
		cliOpts.Collision = &collision
	}
	if set["vertex"] {
		cliOpts.Vertex = &vertex
	}
	if set["pad"] {
		cliOpts.Pad = &pad
	}

	opts, err := cfg.Merge(cliOpts)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	strict = strict || cfg.IsStrict()

	if outputFile == "" {
		outputFile = cfg.OutputPath()
	}
	if outputFile == "" {
		flag.Usage()
		return fmt.Errorf("no output file specified")
	}
	if outputFile == "-" && term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("refusing to write generated code to a terminal; redirect stdout or use -o <file>")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, genErr := api.Generate(ctx, opts)
	if result != nil {
		color := term.IsTerminal(int(os.Stderr.Fd()))
		for _, d := range result.Diagnostics {
			fmt.Fprintln(os.Stderr, api.FormatDiagnostic(d, color))
		}
	}
	if genErr != nil {
		var ce *aggregate.CollisionError
		switch {
		case errors.As(genErr, &ce):
			return fmt.Errorf("aborted: %w", genErr)
		case errors.Is(genErr, context.Canceled):
			return fmt.Errorf("interrupted")
		}
		return genErr
	}

	// Write output
	if outputFile == "-" {
		if _, err := os.Stdout.Write(result.Code); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	} else if err := api.WriteOutput(outputFile, result.Code); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	// Print stats to stderr if output is to file
	if outputFile != "-" {
		s := result.Stats
		fmt.Fprintf(os.Stderr, "Generated %d type(s) from %d shader(s) (%d skipped, %d collision(s)) -> %s\n",
			s.Types, s.Shaders, s.Skipped, s.Collisions, outputFile)
	}

	if strict && result.HasErrors() {
		return fmt.Errorf("%d error(s) reported", countErrors(result))
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func countErrors(r *api.Result) int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Severity == "error" {
			n++
		}
	}
	return n
}

// choices joins flag values for help text.
func choices[T ~string](values []T) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = string(v)
	}
	return strings.Join(s, ", ")
}
