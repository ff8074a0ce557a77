package framework

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Version is the framework version printed by --version.
const Version = "2.3.2"

// Exit statuses of a framework program.
const (
	ExitSuccess       = 0
	ExitFailure       = 1
	ExitUsageError    = 2
	ExitResourceError = 3
)

// ColorMode says whether outcome markers are colored.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// Config is the result of parsing a framework program's command line.
type Config struct {
	Help    bool
	Version bool
	Quiet   bool
	Timer   bool
	List    bool
	Color   ColorMode
	LogPath ldvalue.OptionalString
	Groups  []string
}

// UsageError is returned for a command line that cannot be used.
type UsageError struct {
	Err error
}

func (e UsageError) Error() string { return e.Err.Error() }
func (e UsageError) Unwrap() error { return e.Err }

// toggle is a flag value shared by a flag and its negation, so that whichever is given last
// wins.
type toggle struct {
	target *bool
	value  bool
}

func (v toggle) String() string { return strconv.FormatBool(*v.target == v.value) }
func (v toggle) Type() string   { return "bool" }

func (v toggle) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*v.target = b == v.value
	return nil
}

func addToggle(flags *pflag.FlagSet, target *bool, value bool, name, shorthand string) {
	f := flags.VarPF(toggle{target: target, value: value}, name, shorthand, "")
	f.NoOptDefVal = "true"
}

// ParseArgs parses the command line arguments that follow the program name.
func ParseArgs(args []string) (Config, error) {
	config := Config{Timer: true}
	color := true
	var logPath string

	flags := pflag.NewFlagSet("snow", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.SortFlags = false
	flags.BoolVarP(&config.Help, "help", "h", false, "")
	flags.BoolVarP(&config.Version, "version", "v", false, "")
	flags.BoolVarP(&config.Quiet, "quiet", "q", false, "")
	flags.BoolVarP(&config.List, "list", "l", false, "")
	addToggle(flags, &config.Timer, true, "timer", "t")
	addToggle(flags, &config.Timer, false, "no-timer", "")
	addToggle(flags, &color, true, "color", "c")
	addToggle(flags, &color, false, "no-color", "")
	flags.StringVar(&logPath, "log", "", "")

	if err := flags.Parse(args); err != nil {
		return Config{}, UsageError{Err: err}
	}
	if flags.Changed("log") {
		if logPath == "" {
			return Config{}, UsageError{Err: errors.New("--log requires a file name")}
		}
		config.LogPath = ldvalue.NewOptionalString(logPath)
	}
	colorSet := flags.Changed("color") || flags.Changed("no-color")
	switch {
	case !colorSet:
		config.Color = ColorAuto
	case color:
		config.Color = ColorAlways
	default:
		config.Color = ColorNever
	}
	config.Groups = flags.Args()
	return config, nil
}

func usage(program string) string {
	return fmt.Sprintf(`Usage: %s [options] [group...]

Runs the registered tests, or only those in the named top-level groups.

Options:
  -h, --help          Show this help text and exit.
  -v, --version       Show the version and exit.
  -q, --quiet         Only print failed assertions, failed tests and the total.
  -t, --timer         Print how long tests take (default).
      --no-timer      Don't print how long tests take.
      --log <path>    Also write the output to <path>.
  -c, --color         Color the outcome markers.
      --no-color      Never color the outcome markers.
  -l, --list          List the registered groups and tests and exit.
`, program)
}

// Program is a runnable framework program: a registration tree plus its options.
type Program struct {
	root    *Group
	clock   Clock
	version string
}

// Option customizes a Program.
type Option func(*Program)

// WithClock replaces the clock used for timing, for reproducible output.
func WithClock(clock Clock) Option {
	return func(p *Program) { p.clock = clock }
}

// WithVersion replaces the version string printed by --version.
func WithVersion(version string) Option {
	return func(p *Program) { p.version = version }
}

// NewProgram creates a Program for the tests registered under root.
func NewProgram(root *Group, opts ...Option) *Program {
	p := &Program{root: root, clock: realClock{}, version: Version}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Main runs the program with the process's arguments and exits with its status.
func Main(root *Group, opts ...Option) {
	os.Exit(NewProgram(root, opts...).Execute(os.Args, os.Stdout, os.Stderr))
}

// Execute runs the program for a full argument vector, program name first, and returns the
// exit status.
func (p *Program) Execute(args []string, stdout, stderr io.Writer) int {
	name := "snow"
	if len(args) > 0 {
		name = filepath.Base(args[0])
		args = args[1:]
	}

	config, err := ParseArgs(args)
	if err == nil {
		err = p.checkGroups(config.Groups)
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: %s\n\n%s", name, err, usage(name))
		return ExitUsageError
	}

	switch {
	case config.Help:
		fmt.Fprint(stdout, usage(name))
		return ExitSuccess
	case config.Version:
		fmt.Fprintf(stdout, "Snow version %s\n", p.version)
		return ExitSuccess
	case config.List:
		p.list(stdout, config.Groups)
		return ExitSuccess
	}

	out := stdout
	var logFile *os.File
	if config.LogPath.IsDefined() {
		logFile, err = os.Create(config.LogPath.StringValue())
		if err != nil {
			fmt.Fprintf(stderr, "%s: cannot open log file: %s\n", name, err)
			return ExitResourceError
		}
		out = io.MultiWriter(stdout, logFile)
	}

	logger := NewConsoleTestLogger(out, ConsoleOptions{
		Quiet: config.Quiet,
		Timer: config.Timer,
		Color: useColor(config.Color, stdout),
	})
	results := Run(p.root, RunOptions{
		Logger: logger,
		Clock:  p.clock,
		Filter: TopLevelGroups(config.Groups),
	})

	writeErr := logger.Err()
	if logFile != nil {
		if err := logFile.Close(); err != nil && writeErr == nil {
			writeErr = err
		}
	}
	if writeErr != nil {
		fmt.Fprintf(stderr, "%s: cannot write output: %s\n", name, writeErr)
		return ExitResourceError
	}
	if !results.OK() {
		return ExitFailure
	}
	return ExitSuccess
}

func (p *Program) checkGroups(names []string) error {
	known := map[string]bool{}
	if p.root != nil {
		for _, g := range p.root.Groups() {
			known[g] = true
		}
	}
	for _, n := range names {
		if !known[n] {
			return UsageError{Err: fmt.Errorf("unknown group %q", n)}
		}
	}
	return nil
}

func (p *Program) list(out io.Writer, groups []string) {
	if p.root == nil {
		return
	}
	filter := TopLevelGroups(groups)
	var walk func(g *Group, depth int)
	walk = func(g *Group, depth int) {
		for _, child := range g.children {
			if depth == 0 && filter != nil && !filter(TestID{Path: []string{child.nodeName()}}) {
				continue
			}
			fmt.Fprintf(out, "%s%s\n", indent(depth), child.nodeName())
			if sub, ok := child.(*Group); ok {
				walk(sub, depth+1)
			}
		}
	}
	walk(p.root, 0)
}

func useColor(mode ColorMode, out io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := out.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
