package app

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"numconv/internal/config"
	"numconv/internal/history"
	"numconv/internal/loader"
	"numconv/internal/report"
	"numconv/internal/wordcount"
)

// RunWordCount loads inputPath, counts word frequencies, renders the count
// table to stdout and to the results file, and records the run when history
// is configured.
func RunWordCount(ctx context.Context, cfg config.Config, inputPath string, stdout io.Writer) error {
	start := time.Now()

	ds, err := loader.LoadWords(inputPath)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	entries := wordcount.Ordered(wordcount.Count(ds.Words))

	if err := report.RenderWordCounts(stdout, ds.Name, entries); err != nil {
		return err
	}
	outPath := filepath.Join(cfg.OutputDir, report.WordCountResultsFile)
	if err := report.WriteFile(outPath, func(w io.Writer) error {
		return report.RenderWordCounts(w, ds.Name, entries)
	}); err != nil {
		return err
	}

	logRejected(ds.Errors)
	slog.Info("word count finished",
		"source", inputPath,
		"words", len(ds.Words),
		"distinct", len(entries),
		"rejected", len(ds.Errors),
		"results", outPath,
		"elapsed", time.Since(start),
	)

	recordHistory(cfg, history.Run{
		Tool:       "wordcount",
		Source:     filepath.Base(inputPath),
		StartedAt:  start,
		Duration:   time.Since(start),
		OKCount:    len(ds.Words),
		ErrorCount: len(ds.Errors),
	}, func(repo history.Repository, runID int64) error {
		rows := make([]history.WordCount, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, history.WordCount{Word: e.Word, Count: e.Count})
		}
		return repo.InsertWordCounts(runID, rows)
	})

	return nil
}
