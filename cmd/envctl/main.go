package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"coffeeshop/internal/environment"
	"coffeeshop/internal/logging"
)

var version = "dev"
var commit = ""

func main() {
	logging.Init("envctl", nil, environment.ProductionBuild)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fatalf("envctl: %v", err)
	}
}

var fatalf = func(format string, args ...any) {
	slog.Error("fatal", "error", fmt.Sprintf(format, args...))
	os.Exit(1)
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New("command required")
	}
	switch args[0] {
	case "-h", "--help", "help":
		writeUsage(out)
		return nil
	case "--version", "version":
		v := version
		if strings.TrimSpace(commit) != "" {
			v = v + " (" + commit + ")"
		}
		_, _ = fmt.Fprintln(out, v)
		return nil
	}
	switch args[0] {
	case "show":
		return runShow(args[1:], out)
	case "validate":
		return runValidate(args[1:], out)
	case "login-url":
		return runLoginURL(args[1:], out)
	case "endpoint":
		return runEndpoint(args[1:], out)
	case "names":
		for _, name := range environment.Names() {
			_, _ = fmt.Fprintln(out, name)
		}
		return nil
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func writeUsage(out io.Writer) {
	_, _ = fmt.Fprintln(out, "Usage: envctl <command> [flags]")
	_, _ = fmt.Fprintln(out, "")
	_, _ = fmt.Fprintln(out, "Commands: show, validate, login-url, endpoint, names")
	_, _ = fmt.Fprintln(out, "Selection flags: -config <file> | -env <name> (default: the build's environment)")
	_, _ = fmt.Fprintln(out, "Global flags: --help, --version")
}

// selection registers the flags every command uses to pick a descriptor.
type selection struct {
	configPath *string
	envName    *string
}

func newSelection(fs *flag.FlagSet) selection {
	return selection{
		configPath: fs.String("config", "", "path to environment JSON"),
		envName:    fs.String("env", "", "built-in environment name"),
	}
}

func (s selection) resolve() (environment.Environment, error) {
	env, _, err := environment.Resolve(*s.configPath, *s.envName)
	return env, err
}

func runShow(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(out)
	sel := newSelection(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	env, err := sel.resolve()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func runValidate(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(out)
	configPath := fs.String("config", "", "path to environment JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*configPath) == "" {
		return errors.New("config required")
	}
	env, err := environment.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "ok: %s (production=%t)\n", env.Name(), env.Production())
	return err
}

func runLoginURL(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("login-url", flag.ContinueOnError)
	fs.SetOutput(out)
	sel := newSelection(fs)
	state := fs.String("state", "", "opaque state echoed back on the callback")
	if err := fs.Parse(args); err != nil {
		return err
	}
	env, err := sel.resolve()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, env.Auth().LoginURL(*state))
	return err
}

func runEndpoint(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("endpoint", flag.ContinueOnError)
	fs.SetOutput(out)
	sel := newSelection(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	env, err := sel.resolve()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, env.Endpoint(fs.Args()...))
	return err
}
