// core/kmer/table.go
package kmer

import (
	"fmt"
	"sort"
)

// Stats is the aggregate for one distinct k-mer: how often it occurred with
// a following character, and how often each character followed it.
// Count always equals the sum of the Next values.
type Stats struct {
	Count int
	Next  map[byte]int
}

// Table accumulates k-mer statistics over any number of sequences.
// Accumulation is commutative: feeding sequences in a different order
// yields the same table.
type Table struct {
	k       int
	windows int
	stats   map[string]*Stats
}

// New returns an empty table for k-mers of length k.
func New(k int) (*Table, error) {
	if k <= 0 {
		return nil, fmt.Errorf("k must be a positive integer, got %d", k)
	}
	return &Table{k: k, stats: make(map[string]*Stats)}, nil
}

// K returns the k-mer length the table was built for.
func (t *Table) K() int { return t.k }

// Add scans seq and tallies every k-mer that has a following character.
// A window ending at the last position has no successor and is skipped,
// so a sequence of length k contributes nothing and a sequence of length
// k+1 contributes exactly one window.
func (t *Table) Add(seq []byte) {
	for i := 0; i+t.k < len(seq); i++ {
		kmer := string(seq[i : i+t.k])
		next := seq[i+t.k]
		s := t.stats[kmer]
		if s == nil {
			s = &Stats{Next: make(map[byte]int)}
			t.stats[kmer] = s
		}
		s.Count++
		s.Next[next]++
		t.windows++
	}
}

// Windows returns the total number of windows tallied so far,
// i.e. the sum of max(0, len(seq)-k) over all added sequences.
func (t *Table) Windows() int { return t.windows }

// Len returns the number of distinct k-mers seen.
func (t *Table) Len() int { return len(t.stats) }

// Get returns a copy of the stats for kmer, if present.
func (t *Table) Get(kmer string) (Stats, bool) {
	s, ok := t.stats[kmer]
	if !ok {
		return Stats{}, false
	}
	next := make(map[byte]int, len(s.Next))
	for c, n := range s.Next {
		next[c] = n
	}
	return Stats{Count: s.Count, Next: next}, true
}

// NextCount is one successor-histogram entry.
type NextCount struct {
	Char  byte
	Count int
}

// Row is one render-ready table entry. Next is sorted by character.
type Row struct {
	Kmer  string
	Count int
	Next  []NextCount
}

// Rows returns all entries sorted lexicographically by k-mer, with each
// histogram sorted by character. The order is a defined part of the
// output contract: identical inputs serialize byte-identically.
func (t *Table) Rows() []Row {
	rows := make([]Row, 0, len(t.stats))
	for kmer, s := range t.stats {
		next := make([]NextCount, 0, len(s.Next))
		for c, n := range s.Next {
			next = append(next, NextCount{Char: c, Count: n})
		}
		sort.Slice(next, func(i, j int) bool { return next[i].Char < next[j].Char })
		rows = append(rows, Row{Kmer: kmer, Count: s.Count, Next: next})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Kmer < rows[j].Kmer })
	return rows
}
