// Command coachctl is the console front end of the coach admin panel. It
// manages users, gyms, client profiles and diet plans through the REST
// backend configured in config.yaml or the API_BASE_URL environment
// variable.
//
// Usage:
//
//	coachctl [-config path] <command> [subcommand] [flags]
//
// Exit codes: 0 success, 1 failure, 2 usage error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"github.com/heartmarshall/coach-admin/internal/app"
	"github.com/heartmarshall/coach-admin/internal/domain"
	"github.com/heartmarshall/coach-admin/internal/schema"
	"github.com/heartmarshall/coach-admin/pkg/ctxutil"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// env is what every command runs against.
type env struct {
	app    *app.App
	out    io.Writer
	errOut io.Writer
	prompt prompter
}

type runFunc func(ctx context.Context, e *env, args []string) error

type command struct {
	name    string
	summary string
	run     runFunc
}

// usageError is returned for bad arguments; it maps to exit code 2.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

func commands() []command {
	return []command{
		{"login", "sign in and store the session token", runLogin},
		{"register", "create an account and sign in", runRegister},
		{"logout", "sign out and clear the stored session", runLogout},
		{"me", "show the signed-in user", runMe},
		{"users", "list|create|update|delete platform users", usersCommand},
		{"roles", "list the roles users can hold", runRoles},
		{"gyms", "list|create|update|delete gyms, manage members", gymsCommand},
		{"profile", "show|edit a client's profile", profileCommand},
		{"plans", "list|show|create|update|delete|duplicate diet plans", plansCommand},
		{"meal-plans", "list|add|remove meal plans of a diet plan", mealPlansCommand},
		{"dashboard", "show summary counts", runDashboard},
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("coachctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to the YAML config file (overrides CONFIG_PATH)")
	showVersion := fs.Bool("version", false, "print the version and exit")
	fs.Usage = func() { printUsage(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if *showVersion {
		fmt.Fprintln(stdout, "coachctl", app.BuildVersion())
		return exitOK
	}

	rest := fs.Args()
	if len(rest) == 0 {
		printUsage(stderr, fs)
		return exitUsage
	}
	cmd, ok := lookup(rest[0])
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n", rest[0])
		printUsage(stderr, fs)
		return exitUsage
	}

	a, err := app.Load(*configPath, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = ctxutil.WithPage(a.Context(ctx), cmd.name)

	e := &env{app: a, out: stdout, errOut: stderr, prompt: surveyPrompter{}}
	return exitCode(stderr, cmd.run(ctx, e, rest[1:]))
}

func lookup(name string) (command, bool) {
	for _, c := range commands() {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: coachctl [flags] <command> [subcommand] [flags]")
	fmt.Fprintln(w, "\nCommands:")
	tw := newTable(w, "", "")
	for _, c := range commands() {
		row(tw, "  "+c.name, c.summary)
	}
	tw.Flush()
	fmt.Fprintln(w, "\nFlags:")
	fs.PrintDefaults()
}

// exitCode prints err for the user and picks the process exit code.
func exitCode(w io.Writer, err error) int {
	var uerr usageError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &uerr):
		fmt.Fprintln(w, uerr.msg)
		return exitUsage
	case errors.Is(err, flag.ErrHelp):
		return exitUsage
	case errors.Is(err, errReported):
		return exitError
	}

	fmt.Fprintln(w, exitMessage(err))
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		for _, fe := range verr.Errors {
			fmt.Fprintf(w, "  %s: %s\n", fe.Field, fe.Message)
		}
	}
	return exitError
}

// exitMessage is the one-line text shown for err.
func exitMessage(err error) string {
	switch {
	case errors.Is(err, errAborted), errors.Is(err, context.Canceled):
		return "Aborted"
	case errors.Is(err, domain.ErrUnauthorized):
		return "Not signed in. Run `coachctl login` first."
	}
	return domain.UserMessage(err, "Error: "+err.Error())
}

// dispatch runs the subcommand named by args[0].
func dispatch(ctx context.Context, e *env, group string, subs map[string]runFunc, args []string) error {
	names := make([]string, 0, len(subs))
	for n := range subs {
		names = append(names, n)
	}
	sort.Strings(names)

	if len(args) == 0 {
		return usagef("usage: coachctl %s <%s>", group, strings.Join(names, "|"))
	}
	fn, ok := subs[args[0]]
	if !ok {
		return usagef("unknown %s subcommand %q (want %s)", group, args[0], strings.Join(names, "|"))
	}
	return fn(ctx, e, args[1:])
}

// newFlags returns a flag set whose parse errors become usage errors.
func newFlags(e *env, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.errOut)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return usageError{msg: err.Error()}
	}
	return nil
}

// argID reads the positional id at index i.
func argID(fs *flag.FlagSet, i int, what string) (int64, error) {
	if fs.NArg() <= i {
		return 0, usagef("usage: coachctl %s <%s>", fs.Name(), what)
	}
	id, err := strconv.ParseInt(fs.Arg(i), 10, 64)
	if err != nil || id <= 0 {
		return 0, usagef("%s must be a positive number, got %q", what, fs.Arg(i))
	}
	return id, nil
}

// fieldValues collects repeated -set name=value flags.
type fieldValues map[string]string

func (f fieldValues) String() string {
	parts := make([]string, 0, len(f))
	for k, v := range f {
		parts = append(parts, k+"="+v)
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

func (f fieldValues) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return fmt.Errorf("expected name=value, got %q", s)
	}
	f[strings.TrimSpace(name)] = value
	return nil
}

// formOpts are the flags shared by every create and update command.
type formOpts struct {
	sets    fieldValues
	noInput bool
}

func addFormFlags(fs *flag.FlagSet) *formOpts {
	o := &formOpts{sets: fieldValues{}}
	fs.Var(o.sets, "set", "set a field, name=value (repeatable)")
	fs.BoolVar(&o.noInput, "no-input", false, "do not prompt; use -set values only")
	return o
}

// edit applies -set values to draft and, unless -no-input is given, lets
// the user review every field.
func (o *formOpts) edit(ctx context.Context, e *env, s *schema.Schema, draft schema.Values) (schema.Values, error) {
	out := draft.Clone()
	if out == nil {
		out = schema.Values{}
	}
	for name, v := range o.sets {
		if _, ok := s.Field(name); !ok {
			return nil, usagef("unknown field %q", name)
		}
		out[name] = v
	}
	if o.noInput {
		return out, nil
	}
	return fill(ctx, e.prompt, s, out)
}
