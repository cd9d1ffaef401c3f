package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/MjAbuz/liquid/pkg/liquid"
	"github.com/MjAbuz/liquid/pkg/liquid/cache"
	"github.com/MjAbuz/liquid/pkg/liquid/config"
)

// Version is set at compile time via -ldflags
var Version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "render":
		renderCommand(os.Args[2:])
	case "check":
		checkCommand(os.Args[2:])
	case "version":
		fmt.Printf("liquid version %s\n", Version)
	case "-h", "--help", "help":
		printHelp()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printHelp()
		os.Exit(2)
	}
}

func printHelp() {
	fmt.Printf(`liquid - conditional template renderer version %s

Usage:
  liquid render [options] <template>...
  liquid check [options] <template>...
  liquid version

Commands:
  render    Render templates against bindings
  check     Parse templates without rendering, report syntax errors
  version   Show version information

Render options:
  -data <file>      YAML or JSON file of template bindings
  -config <file>    Engine settings file (parse_mode, max_chain_depth, cache_path)
  -strict           Reject markup the lenient parser would tolerate
  -cache <file>     SQLite render cache path
  -out <file>       Write output to file instead of stdout
  -verbose          Log parse and render events to stderr

Check options:
  -strict           Reject markup the lenient parser would tolerate
`, Version)
}

func renderCommand(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	dataPath := fs.String("data", "", "YAML or JSON bindings file")
	cfgPath := fs.String("config", "", "engine settings file")
	strict := fs.Bool("strict", false, "strict condition parsing")
	cachePath := fs.String("cache", "", "SQLite render cache path")
	outPath := fs.String("out", "", "output file (default stdout)")
	verbose := fs.Bool("verbose", false, "log to stderr")
	fs.Parse(args)

	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: render requires at least one template file")
		os.Exit(2)
	}

	engine, err := buildEngine(*cfgPath, *cachePath, *strict, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer engine.Close()

	vars, err := config.LoadBindings(*dataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	for _, path := range fs.Args() {
		src, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		tmpl, err := engine.ParseString(path, string(src))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			os.Exit(1)
		}
		rendered, err := tmpl.Render(vars)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Fprint(out, rendered)
	}
}

func checkCommand(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	strict := fs.Bool("strict", false, "strict condition parsing")
	fs.Parse(args)

	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: check requires at least one template file")
		os.Exit(2)
	}

	var opts []liquid.EngineOption
	if *strict {
		opts = append(opts, liquid.WithStrictParsing())
	}
	engine := liquid.NewEngine(opts...)

	failed := 0
	for _, path := range fs.Args() {
		src, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			continue
		}
		if _, err := engine.ParseString(path, string(src)); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("%s: ok\n", path)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// buildEngine assembles the engine from the settings file and flags.
// Flags win over file settings.
func buildEngine(cfgPath, cachePath string, strict, verbose bool) (*liquid.Engine, error) {
	var opts []liquid.EngineOption
	if strict {
		opts = append(opts, liquid.WithStrictParsing())
	}
	if verbose {
		opts = append(opts, liquid.WithLogger(
			slog.New(slog.NewTextHandler(os.Stderr, nil))))
	}
	if cachePath != "" {
		store, err := cache.NewSQLiteStore(cachePath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, liquid.WithRenderCache(store))
	}

	if cfgPath == "" {
		return liquid.NewEngine(opts...), nil
	}
	cfg, err := config.FromFile(cfgPath)
	if err != nil {
		return nil, err
	}
	return liquid.NewEngineFromConfig(cfg, opts...)
}
