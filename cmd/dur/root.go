package main

import (
	"fmt"
	"strconv"

	duration "github.com/chichizhang0510/go-duration"
	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
)

// colorMode represents when to use colored output.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// String is used both by fmt.Print and by Cobra in help text.
func (c *colorMode) String() string {
	return string(*c)
}

// Set must have pointer receiver to validate and set the value.
func (c *colorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"auto\", \"always\", or \"never\"")
	}
}

// Type is only used in help text.
func (c *colorMode) Type() string {
	return "colorMode"
}

var (
	version = "dev"

	// Flags.
	color       = colorAuto
	humanForm   bool
	rawSeconds  bool
	sumDuration bool
)

var rootCmd = &cobra.Command{
	Use:   "dur <duration>...",
	Short: "Parse and render human-readable durations",
	Long: `dur parses duration strings and prints them back in a normalized form.

A duration is a sequence of <number><unit> tokens with the units in
descending order, each at most once, optionally prefixed with '-':
  w              weeks  (e.g., "2w")
  d              days   (e.g., "1w3d")
  h              hours  (e.g., "12h")
  m              minutes
  s              seconds

By default each argument is printed in compact form ("2h30m"). Durations
are exact second counts; there are no fractional or calendar units.

Examples:
  dur 2h30m
  dur --human 90s
  dur --seconds 1w2d
  dur --sum 2h 30m 45s
  dur --sum --human 1h30m 45m`,
	Version:       version,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if humanForm && rawSeconds {
			return fmt.Errorf("--human and --seconds are mutually exclusive")
		}
		return nil
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().Var(&color, "color",
		"colorize output: auto, always, never")
	rootCmd.Flags().BoolVarP(&humanForm, "human", "H", false,
		"render the pluralized human-readable form (\"2 hours 30 minutes\")")
	rootCmd.Flags().BoolVarP(&rawSeconds, "seconds", "s", false,
		"render the total number of seconds")
	rootCmd.Flags().BoolVar(&sumDuration, "sum", false,
		"add all durations together and render the single result")
}

// render produces the selected view of a single duration.
func render(d duration.Duration) (string, error) {
	switch {
	case humanForm:
		return d.Humanize()
	case rawSeconds:
		return strconv.FormatInt(d.Seconds(), 10), nil
	default:
		return d.Format()
	}
}

// sumOf adds every duration together, overflow-checked.
func sumOf(ds []duration.Duration) (duration.Duration, error) {
	var total duration.Duration
	for _, d := range ds {
		var err error
		total, err = total.Add(d)
		if err != nil {
			return 0, err
		}
	}
	return total, nil
}

func run(cmd *cobra.Command, args []string) error {
	var colorize bool
	switch color {
	case colorAlways:
		colorize = true
	case colorNever:
		colorize = false
	case colorAuto:
		terminal := term.FromEnv()
		colorize = terminal.IsColorEnabled()
	}

	colorFunc := func(name string) func(string) string {
		if colorize {
			return ansi.ColorFunc(name)
		}
		return ansi.ColorFunc("")
	}
	cyan := colorFunc("cyan")
	red := colorFunc("red+b")

	// Parse every argument first, reporting each bad one, so a single
	// typo doesn't hide diagnostics for the arguments after it.
	ds := make([]duration.Duration, 0, len(args))
	invalid := 0
	for _, arg := range args {
		d, err := duration.Parse(arg)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), red("error: ")+err.Error())
			invalid++
			continue
		}
		ds = append(ds, d)
	}

	if sumDuration && invalid == 0 {
		total, err := sumOf(ds)
		if err != nil {
			return err
		}
		ds = []duration.Duration{total}
	}

	if invalid == 0 {
		for _, d := range ds {
			s, err := render(d)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cyan(s))
		}
		return nil
	}

	return fmt.Errorf("%d invalid duration argument(s)", invalid)
}
