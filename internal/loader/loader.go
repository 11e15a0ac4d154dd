// Package loader reads line-oriented input files, splitting each file into
// validated records and rejected lines.
package loader

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LineError is a rejected input line. Line is the 0-based index of the line
// in the source file; Raw is the line as read, before trimming.
type LineError struct {
	Line int
	Raw  string
}

// Dataset is the result of loading one input file.
type Dataset struct {
	// Name is the source file base name without extension, used as the
	// report header column.
	Name    string
	Numbers []int64
	Words   []string
	Errors  []LineError
}

// Load reads a file with one decimal integer per line. Lines that do not
// parse as integers are collected into Errors; a missing or unreadable file
// is an error.
func Load(path string) (*Dataset, error) {
	ds := &Dataset{Name: baseName(path)}
	err := scanLines(path, func(i int, line string) {
		n, convErr := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if convErr != nil {
			ds.Errors = append(ds.Errors, LineError{Line: i, Raw: line})
			return
		}
		ds.Numbers = append(ds.Numbers, n)
	})
	if err != nil {
		return nil, err
	}
	return ds, nil
}

// LoadWords reads a file with one word per line. Blank lines are collected
// into Errors; a missing or unreadable file is an error.
func LoadWords(path string) (*Dataset, error) {
	ds := &Dataset{Name: baseName(path)}
	err := scanLines(path, func(i int, line string) {
		word := strings.TrimSpace(line)
		if word == "" {
			ds.Errors = append(ds.Errors, LineError{Line: i, Raw: line})
			return
		}
		ds.Words = append(ds.Words, word)
	})
	if err != nil {
		return nil, err
	}
	return ds, nil
}

func scanLines(path string, fn func(i int, line string)) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fmt.Errorf("input file %s does not exist", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for i := 0; sc.Scan(); i++ {
		fn(i, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
