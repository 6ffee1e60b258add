package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/midbel/cli"
	"github.com/midbel/trigint/batch"
	"github.com/midbel/trigint/config"
	"github.com/midbel/trigint/format"
	"github.com/midbel/trigint/integral"
	"github.com/midbel/trigint/ui"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var errFail = errors.New("fail")

var (
	summary = "trigint"
	help    = "indefinite integrals of sums of trigonometric functions"
)

var (
	log      = commonlog.GetLogger("trigint.cli")
	settings = config.Default()
)

func main() {
	var (
		set     = cli.NewFlagSet("trigint")
		root    = prepare()
		file    string
		verbose int
	)
	set.StringVar(&file, "c", "", "load configuration from file")
	set.IntVar(&verbose, "v", 0, "verbosity level")
	root.SetSummary(summary)
	root.SetHelp(help)
	if err := set.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			root.Help()
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	commonlog.Initialize(verbose, "")
	if file != "" {
		cfg, err := config.LoadFile(file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		settings = cfg
	}
	err := root.Execute(set.Args())
	if err != nil {
		if s, ok := err.(cli.SuggestionError); ok && len(s.Others) > 0 {
			fmt.Fprintln(os.Stderr, "similar command(s)")
			for _, n := range s.Others {
				fmt.Fprintln(os.Stderr, "-", n)
			}
		}
		if !errors.Is(err, errFail) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func prepare() *cli.CommandTrie {
	root := cli.New()
	root.Register([]string{"integrate"}, &integrateCmd)
	root.Register([]string{"explain"}, &explainCmd)
	root.Register([]string{"rules"}, &rulesCmd)
	root.Register([]string{"batch"}, &batchCmd)
	root.Register([]string{"tui"}, &tuiCmd)

	return root
}

var integrateCmd = cli.Command{
	Name:    "integrate",
	Alias:   []string{"int", "calc"},
	Summary: "integrate a sum of trigonometric terms",
	Usage:   "integrate [-e] [-u] [--] <expression>",
	Handler: &IntegrateCommand{},
}

var explainCmd = cli.Command{
	Name:    "explain",
	Alias:   []string{"steps"},
	Summary: "print the rules applied to integrate an expression",
	Usage:   "explain [-u] [--] <expression>",
	Handler: &ExplainCommand{},
}

var rulesCmd = cli.Command{
	Name:    "rules",
	Alias:   []string{"table"},
	Summary: "print the integration rules",
	Usage:   "rules [function,...]",
	Handler: &RulesCommand{},
}

var batchCmd = cli.Command{
	Name:    "batch",
	Summary: "integrate expressions read from a file",
	Usage:   "batch [-e] [-i lines|csv|xml] [-o text|csv|json] [file]",
	Handler: &BatchCommand{},
}

var tuiCmd = cli.Command{
	Name:    "tui",
	Alias:   []string{"ui"},
	Summary: "start the interactive calculator",
	Usage:   "tui",
	Handler: &TuiCommand{},
}

type IntegrateCommand struct {
	Explain bool
	Unicode bool
}

func (c IntegrateCommand) Run(args []string) error {
	set := cli.NewFlagSet("integrate")
	set.BoolVar(&c.Explain, "e", settings.Explain, "print step by step explanation")
	set.BoolVar(&c.Unicode, "u", false, "use unicode minus sign")
	options, expr := splitArgs(args, "e", "u")
	if err := set.Parse(options); err != nil {
		return err
	}
	res, err := integral.Calculate(joinArgs(set.Args(), expr))
	if err != nil {
		return err
	}
	style := getStyle(c.Unicode)
	if c.Explain {
		fmt.Fprintln(os.Stdout, res.Explain(style))
		return nil
	}
	fmt.Fprintln(os.Stdout, res.Format(style))
	return nil
}

type ExplainCommand struct {
	Unicode bool
}

func (c ExplainCommand) Run(args []string) error {
	set := cli.NewFlagSet("explain")
	set.BoolVar(&c.Unicode, "u", false, "use unicode minus sign")
	options, expr := splitArgs(args, "u")
	if err := set.Parse(options); err != nil {
		return err
	}
	res, err := integral.Calculate(joinArgs(set.Args(), expr))
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, res.Explain(getStyle(c.Unicode)))
	return nil
}

type RulesCommand struct{}

func (c RulesCommand) Run(args []string) error {
	set := cli.NewFlagSet("rules")
	if err := set.Parse(args); err != nil {
		return err
	}
	funcs := integral.Funcs()
	if set.NArg() > 0 {
		funcs = nil
		for _, a := range set.Args() {
			f, err := integral.ParseFunc(a)
			if err != nil {
				return err
			}
			funcs = append(funcs, f)
		}
	}
	for i, f := range funcs {
		r, err := integral.Lookup(f)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(os.Stdout)
		}
		fmt.Fprintln(os.Stdout, settings.Style.Render(r.String()))
	}
	return nil
}

type BatchCommand struct {
	Input   string
	Output  string
	Explain bool
}

func (c BatchCommand) Run(args []string) error {
	set := cli.NewFlagSet("batch")
	set.StringVar(&c.Input, "i", settings.Input, "input format (lines, csv, xml)")
	set.StringVar(&c.Output, "o", settings.Output, "output format (text, csv, json)")
	set.BoolVar(&c.Explain, "e", settings.Explain, "add step by step explanation")
	if err := set.Parse(args); err != nil {
		return err
	}
	cfg := settings
	cfg.Input = c.Input
	cfg.Output = c.Output
	cfg.Explain = c.Explain

	var r io.Reader = os.Stdin
	if set.NArg() > 0 && set.Arg(0) != "-" {
		f, err := os.Open(set.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	stats, err := batch.Run(cfg, r, os.Stdout)
	if err != nil {
		return err
	}
	if stats.Failed > 0 {
		log.Noticef("%d of %d expression(s) could not be integrated", stats.Failed, stats.Total)
		return errFail
	}
	return nil
}

type TuiCommand struct{}

func (c TuiCommand) Run(args []string) error {
	set := cli.NewFlagSet("tui")
	if err := set.Parse(args); err != nil {
		return err
	}
	return ui.Run(settings)
}

func getStyle(unicode bool) format.Style {
	style := settings.Style
	if unicode {
		style.Minus = format.MinusUnicode
	}
	return style
}

// splitArgs separates the leading options from the expression so that an
// expression starting with a minus sign is not read as an unknown option.
// Options stop at the first argument that is not one of names or at --.
func splitArgs(args []string, names ...string) ([]string, []string) {
	for i, a := range args {
		if a == "--" {
			return args[:i+1], args[i+1:]
		}
		if !strings.HasPrefix(a, "-") {
			return args[:i], args[i:]
		}
		name, _, _ := strings.Cut(strings.TrimLeft(a, "-"), "=")
		if name != "h" && name != "help" && !slices.Contains(names, name) {
			return args[:i], args[i:]
		}
	}
	return args, nil
}

func joinArgs(args ...[]string) string {
	return strings.Join(slices.Concat(args...), " ")
}
