// Package cli provides the command-line interface for decomment.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/briandowns/spinner"

	"github.com/seanhalberthal/decomment/internal/exercise"
	"github.com/seanhalberthal/decomment/internal/filter"
	"github.com/seanhalberthal/decomment/internal/logging"
	"github.com/seanhalberthal/decomment/internal/stripper"
	"github.com/seanhalberthal/decomment/internal/types"
)

const errorFormat = "Error: %v"

// exitFunc is the function used to exit the program. Override in tests.
var exitFunc = os.Exit

// stdin is read when stripping "-". Override in tests.
var stdin io.Reader = os.Stdin

// Run executes the CLI with the given stripper and arguments.
func Run(strip *stripper.Stripper, args []string) {
	if len(args) == 0 {
		printUsage()
		exitFunc(1)
		return
	}

	switch args[0] {
	case "help", "--help", "-h":
		printUsage()
	case "status":
		runStatus(strip)
	case "strip":
		if len(args) < 2 {
			printStyledError("strip requires a path argument")
			exitFunc(1)
			return
		}
		runStrip(strip, args[1], parseStripFlags(args[2:]))
	case "exercise":
		runExercises(args[1:])
	default:
		_, _ = fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage()
		exitFunc(1)
		return
	}
}

func printUsage() {
	fmt.Println(`decomment - C-style comment remover

Usage:
  decomment <command>               Run in CLI mode (default)
  decomment --mcp                   Run as MCP server

Commands:
  status                            Show version, filter states and extensions
  strip <path|-> [flags]            Remove comments from a file, directory or stdin
      --recursive, -r               Descend into subdirectories
      --write, -w                   Rewrite changed files in place
      --json                        Print the result as JSON
      --trace                       Log every state transition to stderr
  exercise [name...]                Run demonstration exercises (all if none given)`)
}

func printExerciseUsage() {
	fmt.Println(`usage: decomment exercise [options] [exercise_name][[ exercise_name][...]]

Runs through a series of exercises. If no exercise_name is given, then run
through all exercises.

Options:
--help, -?, /?
        This help text.`)
	fmt.Println()
	fmt.Println("Exercises available:")
	for _, name := range exercise.Names() {
		fmt.Printf("  %s\n", name)
	}
}

type stripOptions struct {
	Recursive bool
	Write     bool
	JSON      bool
	Trace     bool
}

func parseStripFlags(args []string) stripOptions {
	var opts stripOptions
	for _, arg := range args {
		switch arg {
		case "--recursive", "-r":
			opts.Recursive = true
		case "--write", "-w":
			opts.Write = true
		case "--json":
			opts.JSON = true
		case "--trace":
			opts.Trace = true
		}
	}
	return opts
}

func runStatus(strip *stripper.Stripper) {
	status := types.StatusResponse{
		Version:    types.Version,
		States:     filter.StateNames(),
		Extensions: strip.Config().Extensions,
		Exercises:  exercise.Names(),
	}
	printJSON(status)
}

func runStrip(strip *stripper.Stripper, path string, opts stripOptions) {
	if opts.Trace {
		logger, err := logging.New(true)
		if err != nil {
			printStyledError(errorFormat, err)
			exitFunc(1)
			return
		}
		defer func() { _ = logger.Sync() }()
		strip = stripper.New(strip.Config(), filter.WithTracer(logging.StateTracer(logger)))
	}

	if path == "-" {
		runStripStdin(strip)
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		printStyledError(errorFormat, err)
		exitFunc(1)
		return
	}

	// A single file is filtered to stdout unless asked otherwise
	if !info.IsDir() && !opts.Write && !opts.JSON {
		runStripFile(strip, path)
		return
	}

	var spin *spinner.Spinner
	if info.IsDir() && !opts.JSON {
		spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		spin.Suffix = " Stripping comments..."
		spin.Start()
	}

	result, err := strip.Strip(context.Background(), stripper.Options{
		Path:      path,
		Recursive: opts.Recursive,
		Write:     opts.Write,
	})
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		printStyledError(errorFormat, err)
		exitFunc(1)
		return
	}

	if opts.JSON {
		printJSON(result)
		return
	}
	printStripResult(result, opts.Write)
}

func runStripStdin(strip *stripper.Stripper) {
	data, err := io.ReadAll(stdin)
	if err != nil {
		printStyledError(errorFormat, err)
		exitFunc(1)
		return
	}
	fmt.Print(strip.StripText(string(data)).Text)
}

func runStripFile(strip *stripper.Stripper, path string) {
	result, err := strip.Strip(context.Background(), stripper.Options{Path: path, IncludeOutput: true})
	if err != nil {
		printStyledError(errorFormat, err)
		exitFunc(1)
		return
	}
	file := result.Files[0]
	if file.Error != "" {
		printStyledError(errorFormat, file.Error)
		exitFunc(1)
		return
	}
	fmt.Print(file.Output)
}

// runExercises never fails the process: exercise errors are printed only.
func runExercises(args []string) {
	for _, arg := range args {
		switch arg {
		case "--help", "-?", "/?":
			printExerciseUsage()
			return
		}
	}

	for _, name := range exercise.Unknown(args) {
		_, _ = fmt.Fprintln(os.Stderr, formatWarning("Unknown exercise: "+name))
	}

	for _, outcome := range exercise.Run(os.Stdout, args) {
		if outcome.Err != nil {
			printStyledError("%s: %v", outcome.Name, outcome.Err)
		}
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		log.Fatal(err)
	}
}
