// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one parsed input sequence.
type Record struct {
	ID  string
	Seq []byte
}

// StreamCtx reads sequence records from r and calls emit for each one.
//
// Two input shapes are accepted:
//   - FASTA: '>' headers start records; the ID is the first
//     whitespace-delimited token of the header.
//   - headerless raw sequence lines: the whole input is joined into a
//     single anonymous record.
//
// The shape is decided by the first non-empty line. Blank lines are
// skipped either way. Cancellation via ctx is honored between lines;
// emit may return a non-nil error to stop early.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		started bool
		header  bool // FASTA mode
		id      string
		seq     = make([]byte, 0, 1<<20)
	)

	flush := func() error {
		if id == "" && len(seq) == 0 {
			return nil
		}
		rec := Record{ID: id, Seq: append([]byte(nil), seq...)}
		seq = seq[:0]
		return emit(rec)
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if !started {
			started = true
			header = line[0] == '>'
		}
		if header && line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id = parseHeaderID(line[1:])
			continue
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("sequence scan: %w", err)
	}
	return flush()
}

// StreamPathCtx opens path (see openReader for "-" and gzip handling)
// and streams its records through emit. Open errors surface immediately.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamCtx(ctx, rc, emit)
}

// Stream is the background-context convenience wrapper.
func Stream(path string, emit func(Record) error) error {
	return StreamPathCtx(context.Background(), path, emit)
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
