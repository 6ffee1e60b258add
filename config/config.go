package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/midbel/trigint/format"
	"github.com/midbel/trigint/internal/ds"
	"github.com/tliron/commonlog"
)

const (
	InputLines = "lines"
	InputCSV   = "csv"
	InputXML   = "xml"

	OutputText = "text"
	OutputCSV  = "csv"
	OutputJSON = "json"
)

var ErrDirective = errors.New("invalid directive")

var log = commonlog.GetLogger("trigint.config")

type Config struct {
	Style   format.Style
	Explain bool
	Input   string
	Output  string
	CSV     CSVOptions
}

// CSVOptions controls how records are written by the csv output format.
type CSVOptions struct {
	Quote bool
	CRLF  bool
}

func Default() Config {
	return Config{
		Style:  format.Default(),
		Input:  InputLines,
		Output: OutputText,
	}
}

type ConfigFunc func(*Config, string) error

var directiveTrie *ds.Trie[ConfigFunc]

func init() {
	directiveTrie = ds.NewTrie[ConfigFunc]()
	directiveTrie.Register([]string{
		"format",
		"minus",
	}, configureMinus)
	directiveTrie.Register([]string{
		"format",
		"power",
	}, configurePower)
	directiveTrie.Register([]string{
		"print",
		"explain",
	}, configureExplain)
	directiveTrie.Register([]string{
		"batch",
		"input",
	}, configureInput)
	directiveTrie.Register([]string{
		"batch",
		"output",
	}, configureOutput)
	directiveTrie.Register([]string{
		"batch",
		"csv",
		"quote",
	}, configureQuote)
	directiveTrie.Register([]string{
		"batch",
		"csv",
		"crlf",
	}, configureCRLF)
}

// Options gives the sorted list of the known directives starting with prefix.
func Options(prefix ...string) []string {
	var list []string
	directiveTrie.Walk(prefix, func(path []string, _ ConfigFunc) {
		list = append(list, strings.Join(path, " "))
	})
	slices.Sort(list)
	return list
}

func (c *Config) Configure(path []string, value string) error {
	cmd, name, ok := directiveTrie.Find(path)
	if !ok {
		return fmt.Errorf("%s: option not found (%s)", name, strings.Join(suggest(path), ", "))
	}
	if err := cmd(c, value); err != nil {
		return err
	}
	log.Debugf("%s set to %s", strings.Join(path, " "), value)
	return nil
}

// Set applies a directive written as space separated words, the last one
// being the value.
func (c *Config) Set(line string) error {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return fmt.Errorf("%w: %q", ErrDirective, line)
	}
	n := len(fields) - 1
	return c.Configure(fields[:n], fields[n])
}

func Load(r io.Reader) (Config, error) {
	var (
		cfg  = Default()
		scan = bufio.NewScanner(r)
		lino int
	)
	for scan.Scan() {
		lino++
		line := scan.Text()
		if ix := strings.IndexByte(line, '#'); ix >= 0 {
			line = line[:ix]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := cfg.Set(line); err != nil {
			return cfg, fmt.Errorf("line %d: %w", lino, err)
		}
	}
	return cfg, scan.Err()
}

func LoadFile(file string) (Config, error) {
	r, err := os.Open(file)
	if err != nil {
		return Default(), err
	}
	defer r.Close()

	log.Infof("loading configuration from %s", file)
	return Load(r)
}

func suggest(path []string) []string {
	for i := len(path); i > 0; i-- {
		if list := Options(path[:i]...); len(list) > 0 {
			return list
		}
	}
	return Options()
}

func configureMinus(cfg *Config, value string) error {
	minus, err := format.MinusFromString(value)
	if err == nil {
		cfg.Style.Minus = minus
	}
	return err
}

func configurePower(cfg *Config, value string) error {
	power, err := format.SquaredFromString(value)
	if err == nil {
		cfg.Style.Squared = power
	}
	return err
}

func configureExplain(cfg *Config, value string) error {
	return parseBool(value, &cfg.Explain)
}

func configureQuote(cfg *Config, value string) error {
	return parseBool(value, &cfg.CSV.Quote)
}

func configureCRLF(cfg *Config, value string) error {
	return parseBool(value, &cfg.CSV.CRLF)
}

func parseBool(value string, b *bool) error {
	v, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("%s: boolean expected", value)
	}
	*b = v
	return nil
}

func configureInput(cfg *Config, value string) error {
	switch value {
	case InputLines, InputCSV, InputXML:
		cfg.Input = value
	default:
		return fmt.Errorf("%s: unsupported input format", value)
	}
	return nil
}

func configureOutput(cfg *Config, value string) error {
	switch value {
	case OutputText, OutputCSV, OutputJSON:
		cfg.Output = value
	default:
		return fmt.Errorf("%s: unsupported output format", value)
	}
	return nil
}
