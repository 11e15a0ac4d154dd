// Package report renders conversion and word-count tables as tab-separated
// text, for the console and for the results files.
package report

import (
	"fmt"
	"io"
	"os"

	"numconv/internal/wordcount"
)

// Result file names kept from the original tooling so downstream consumers
// keep finding them (including the historical spelling).
const (
	ConversionResultsFile = "ConvertionResults.txt"
	WordCountResultsFile  = "WordCountResults.txt"
)

// Conversion is one encoded value, ready for rendering or persistence.
type Conversion struct {
	Value int64
	Bin   string
	Hex   string
}

// RenderConversions writes the conversion table: a header row naming the
// dataset, then one tab-separated row per value with a 1-based index.
func RenderConversions(w io.Writer, name string, convs []Conversion) error {
	if _, err := fmt.Fprintf(w, "NUMBER\t%s\tBIN\tHEX\n", name); err != nil {
		return err
	}
	for i, c := range convs {
		if _, err := fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", i+1, c.Value, c.Bin, c.Hex); err != nil {
			return err
		}
	}
	return nil
}

// RenderWordCounts writes the word-count table sorted as given, followed by a
// Grand Total row summing all counts.
func RenderWordCounts(w io.Writer, name string, entries []wordcount.Entry) error {
	if _, err := fmt.Fprintf(w, "Row Labels\tCount of %s\n", name); err != nil {
		return err
	}
	total := 0
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", e.Word, e.Count); err != nil {
			return err
		}
		total += e.Count
	}
	_, err := fmt.Fprintf(w, "Grand Total\t%d\n", total)
	return err
}

// WriteFile renders a table into path, creating or truncating it.
func WriteFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
