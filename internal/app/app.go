// internal/app/app.go
package app

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"kmerscan-core/fasta"
	"kmerscan-core/kmer"
	"kmerscan/internal/cli"
	"kmerscan/internal/output"
	"kmerscan/internal/version"
	"kmerscan/internal/writers"
)

// RunContext executes one counting run and returns the process exit code:
// 0 ok, 2 usage error, 3 I/O or runtime error, 130 canceled.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("kmerscan")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "kmerscan version %s\n", version.Version)
		return 0
	}

	tab, err := kmer.New(opts.K)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	var seqs, bases int
	err = fasta.StreamPathCtx(ctx, opts.Input, func(rec fasta.Record) error {
		seq := rec.Seq
		if opts.Upper {
			seq = bytes.ToUpper(seq)
		}
		tab.Add(seq)
		seqs++
		bases += len(rec.Seq)
		return nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	if code := writeReport(opts, tab.Rows(), stdout, stderr); code != 0 {
		return code
	}

	if !opts.Quiet {
		_, _ = fmt.Fprintf(stderr, "processed %d sequence(s), %d bases: %d distinct %d-mers\n",
			seqs, bases, tab.Len(), opts.K)
	}
	return 0
}

// writeReport serializes rows either to stdout ("-") or atomically to the
// output path. The report is written completely or not at all.
func writeReport(opts cli.Options, rows []kmer.Row, stdout, stderr io.Writer) int {
	if opts.Output == "-" {
		outw := bufio.NewWriter(stdout)
		err := output.WriteText(outw, rows, opts.Header)
		if err == nil {
			err = outw.Flush()
		}
		if writers.IsBrokenPipe(err) {
			return 0
		}
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	a, err := writers.NewAtomic(opts.Output)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	defer func() { _ = a.Abort() }()

	outw := bufio.NewWriter(a)
	if err = output.WriteText(outw, rows, opts.Header); err == nil {
		err = outw.Flush()
	}
	if err == nil {
		err = a.Commit()
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

// Run is the background-context convenience wrapper.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
