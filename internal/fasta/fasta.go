// Package fasta reads and writes minimal FASTA: '>' headers followed by
// sequence lines. Enough for read libraries, genomes and contigs; no
// quality scores, no compression.
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is a single FASTA entry.
type Record struct {
	ID  string
	Seq string
}

// Parse reads every record from r. Sequence lines are concatenated and
// upper-cased; blank lines and ';' comment lines are skipped. Sequence
// data before any header is an error.
func Parse(r io.Reader) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 64*1024*1024)

	var id string
	var seq strings.Builder
	seen := false

	flush := func() {
		records = append(records, Record{ID: id, Seq: seq.String()})
		seq.Reset()
	}

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())

		switch {
		case text == "" || strings.HasPrefix(text, ";"):
			continue
		case strings.HasPrefix(text, ">"):
			if seen {
				flush()
			}
			id = ""
			if fields := strings.Fields(text[1:]); len(fields) > 0 {
				id = fields[0]
			}
			seen = true
		default:
			if !seen {
				return nil, fmt.Errorf("line %d: sequence before any FASTA header", line)
			}
			seq.WriteString(strings.ToUpper(text))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if seen {
		flush()
	}

	return records, nil
}

// Read parses every record from the FASTA file at path.
func Read(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open FASTA file: %w", err)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return records, nil
}

// Write writes records to w, wrapping sequence lines at 60 characters.
func Write(w io.Writer, records []Record) error {
	for _, r := range records {
		if _, err := fmt.Fprintf(w, ">%s\n", r.ID); err != nil {
			return err
		}
		for i := 0; i < len(r.Seq); i += 60 {
			end := i + 60
			if end > len(r.Seq) {
				end = len(r.Seq)
			}
			if _, err := fmt.Fprintf(w, "%s\n", r.Seq[i:end]); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteFile writes records as a FASTA file at path.
func WriteFile(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create FASTA file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := Write(w, records); err != nil {
		return err
	}
	return w.Flush()
}
