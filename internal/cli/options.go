// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"
	"strconv"

	"kmerscan/internal/version"
)

// Options holds all CLI flags and positional arguments.
type Options struct {
	// Positionals
	Input  string // sequence file, "-" for stdin, .gz accepted
	K      int
	Output string // report path, "-" for stdout

	// Behavior
	Upper bool // fold sequences to uppercase before counting

	// Output
	Header bool // true unless --no-header
	Quiet  bool // suppress run summary on stderr

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: k-mer and successor-character counting

Version: %s

Usage: %s [options] <input> <k> <output>

  <input>   sequence file (FASTA or raw lines; '-' = stdin, .gz accepted)
  <k>       k-mer length (positive integer)
  <output>  report path ('-' = stdout)

Options:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags and the three positional
// arguments, returning an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, noHeader bool

	fs.BoolVar(&opt.Upper, "upper", false, "uppercase sequences before counting [false]")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in the report [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress run summary on stderr [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	// Validation
	args := fs.Args()
	if len(args) != 3 {
		return opt, fmt.Errorf("expected <input> <k> <output>, got %d argument(s)", len(args))
	}
	opt.Input = args[0]
	opt.Output = args[2]
	k, err := strconv.Atoi(args[1])
	if err != nil {
		return opt, fmt.Errorf("k must be an integer, got %q", args[1])
	}
	if k <= 0 {
		return opt, fmt.Errorf("k must be positive, got %d", k)
	}
	opt.K = k
	if opt.Input == "" || opt.Output == "" {
		return opt, fmt.Errorf("input and output paths must be non-empty")
	}
	return opt, nil
}
