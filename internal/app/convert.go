// Package app wires the tools together: load the input, transform it,
// render the report, and record the run.
package app

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"numconv/internal/config"
	"numconv/internal/encode"
	"numconv/internal/history"
	"numconv/internal/loader"
	"numconv/internal/report"
)

// RunConvert loads inputPath, encodes every valid integer to binary and hex,
// renders the conversion table to stdout and to the results file, and records
// the run when history is configured.
func RunConvert(ctx context.Context, cfg config.Config, inputPath string, stdout io.Writer) error {
	start := time.Now()

	ds, err := loader.Load(inputPath)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	convs := make([]report.Conversion, 0, len(ds.Numbers))
	for _, n := range ds.Numbers {
		convs = append(convs, report.Conversion{
			Value: n,
			Bin:   encode.ToBinary(n, cfg.Bits),
			Hex:   encode.ToHex(n),
		})
	}

	if err := report.RenderConversions(stdout, ds.Name, convs); err != nil {
		return err
	}
	outPath := filepath.Join(cfg.OutputDir, report.ConversionResultsFile)
	if err := report.WriteFile(outPath, func(w io.Writer) error {
		return report.RenderConversions(w, ds.Name, convs)
	}); err != nil {
		return err
	}

	logRejected(ds.Errors)
	slog.Info("conversion finished",
		"source", inputPath,
		"converted", len(convs),
		"rejected", len(ds.Errors),
		"results", outPath,
		"elapsed", time.Since(start),
	)

	recordHistory(cfg, history.Run{
		Tool:       "convertnumbers",
		Source:     filepath.Base(inputPath),
		StartedAt:  start,
		Duration:   time.Since(start),
		OKCount:    len(convs),
		ErrorCount: len(ds.Errors),
	}, func(repo history.Repository, runID int64) error {
		rows := make([]history.Conversion, 0, len(convs))
		for i, c := range convs {
			rows = append(rows, history.Conversion{Position: i + 1, Value: c.Value, Bin: c.Bin, Hex: c.Hex})
		}
		return repo.InsertConversions(runID, rows)
	})

	return nil
}

func logRejected(errs []loader.LineError) {
	for _, e := range errs {
		slog.Warn("line rejected", "line", e.Line, "raw", e.Raw)
	}
}
