// Package main is the entry point for softglow.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/dshills/softglow/internal/app"
	"github.com/dshills/softglow/internal/colormath"
	"github.com/dshills/softglow/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("softglow", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts app.Options
	var showVersion bool

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.BoolVar(&opts.Debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&opts.Debug, "d", false, "Enable debug logging (shorthand)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	fs.Usage = func() { usage(fs, stderr) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if showVersion {
		fmt.Fprintf(stdout, "softglow %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	if opts.LogLevel != "" {
		if _, ok := logging.ParseLevel(opts.LogLevel); !ok {
			fmt.Fprintf(stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
			return 2
		}
	}

	cmd, rest := "ui", fs.Args()
	if len(rest) > 0 {
		cmd, rest = rest[0], rest[1:]
	}

	var err error
	switch cmd {
	case "ui":
		err = runUI(opts, rest)
	case "convert":
		err = convert(stdout, rest)
	case "hex":
		err = toHex(stdout, rest)
	case "presets":
		err = withApp(opts, stderr, func(a *app.Application) error { return listPresets(stdout, a) })
	case "save-preset":
		err = withApp(opts, stderr, func(a *app.Application) error { return savePreset(stdout, a, rest) })
	case "script":
		err = withApp(opts, stderr, func(a *app.Application) error { return applyScript(stdout, a, rest) })
	case "export":
		err = withApp(opts, stderr, func(a *app.Application) error { return export(stdout, a) })
	case "import":
		err = withApp(opts, stderr, func(a *app.Application) error { return importFile(a, rest) })
	default:
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", cmd)
		usage(fs, stderr)
		return 2
	}

	if errors.Is(err, errUsage) {
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		usage(fs, stderr)
		return 2
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "softglow - effect editor with time travel\n\n")
	fmt.Fprintf(w, "Usage: softglow [options] [command] [args...]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	fmt.Fprintf(w, "  ui                       Open the editor (default)\n")
	fmt.Fprintf(w, "  convert <hex>...         Print the OKLCH form of colors\n")
	fmt.Fprintf(w, "  hex <l> <c> <h>          Print the hex form of an OKLCH color (l in 0..1)\n")
	fmt.Fprintf(w, "  presets                  List presets\n")
	fmt.Fprintf(w, "  save-preset <name> [desc] Save the current state as a preset\n")
	fmt.Fprintf(w, "  script <file.lua>        Apply a Lua transform to the current state\n")
	fmt.Fprintf(w, "  export                   Print the current state as JSON\n")
	fmt.Fprintf(w, "  import <file.json>       Replace the current state\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs.PrintDefaults()
}

// runUI runs the editor until the user quits or a signal arrives.
func runUI(opts app.Options, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: ui takes no arguments", errUsage)
	}

	// Log lines would corrupt the screen unless they go to a file.
	opts.LogOutput = io.Discard

	application, err := app.New(opts)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer application.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return application.Run(ctx)
}

func withApp(opts app.Options, stderr io.Writer, fn func(*app.Application) error) error {
	opts.LogOutput = stderr
	application, err := app.New(opts)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	if err := fn(application); err != nil {
		_ = application.Shutdown()
		return err
	}
	return application.Shutdown()
}

func convert(w io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: convert needs at least one hex color", errUsage)
	}
	color := colorEnabled(w)
	for _, arg := range args {
		if !colormath.IsHex(arg) {
			return fmt.Errorf("invalid hex color %q", arg)
		}
		fmt.Fprintf(w, "%s%s  %s\n", swatch(arg, color), arg, colormath.HexToOklch(arg))
	}
	return nil
}

func toHex(w io.Writer, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: hex needs lightness, chroma and hue", errUsage)
	}
	var v [3]float64
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("%w: %q is not a number", errUsage, arg)
		}
		v[i] = f
	}
	hex := colormath.OklchToHex(v[0], v[1], v[2])
	fmt.Fprintf(w, "%s%s\n", swatch(hex, colorEnabled(w)), hex)
	return nil
}

func listPresets(w io.Writer, a *app.Application) error {
	color := colorEnabled(w)
	name := lipgloss.NewStyle().Bold(true)
	dim := lipgloss.NewStyle().Faint(true)
	for _, p := range a.Catalog().All() {
		kind := "builtin"
		if p.Custom {
			kind = "custom"
		}
		if color {
			fmt.Fprintf(w, "%s%-24s %s %s\n", swatch(p.Preview.BorderColor, true), p.ID, name.Render(p.Name), dim.Render("("+kind+")"))
			continue
		}
		fmt.Fprintf(w, "%-24s %s (%s)\n", p.ID, p.Name, kind)
	}
	return nil
}

func savePreset(w io.Writer, a *app.Application, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: save-preset needs a name and an optional description", errUsage)
	}
	desc := ""
	if len(args) == 2 {
		desc = args[1]
	}
	p, err := a.SavePreset(args[0], desc)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, p.ID)
	return nil
}

func applyScript(w io.Writer, a *app.Application, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: script needs one file", errUsage)
	}
	if err := a.ApplyScriptFile(args[0]); err != nil {
		return err
	}
	return export(w, a)
}

func export(w io.Writer, a *app.Application) error {
	data, err := a.Export()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func importFile(a *app.Application, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: import needs one file", errUsage)
	}
	return a.ImportFile(args[0])
}

// colorEnabled reports whether w is a terminal.
func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func swatch(hex string, color bool) string {
	if !color {
		return ""
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ") + " "
}
