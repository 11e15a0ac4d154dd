package app

import (
	"log/slog"

	"numconv/internal/config"
	"numconv/internal/db"
	"numconv/internal/history"
	"numconv/internal/migrate"
)

// recordHistory writes the run and its rows to the history database when one
// is configured. The report is the product and the database is an audit
// trail, so persistence failures are logged, not fatal.
func recordHistory(cfg config.Config, run history.Run, insertRows func(history.Repository, int64) error) {
	if cfg.DBPath == "" {
		slog.Debug("history disabled (NUMCONV_DB not set)")
		return
	}

	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		slog.Error("history db open", "path", cfg.DBPath, "error", err)
		return
	}
	defer func() {
		if closeErr := db.Close(conn); closeErr != nil {
			slog.Error("history db close", "error", closeErr)
		}
	}()

	if err := migrate.Run(conn); err != nil {
		slog.Error("history migrate", "error", err)
		return
	}

	repo := history.NewRepository(conn)
	runID, err := repo.InsertRun(run)
	if err != nil {
		slog.Error("history insert run", "error", err)
		return
	}
	if err := insertRows(repo, runID); err != nil {
		slog.Error("history insert rows", "run_id", runID, "error", err)
		return
	}

	slog.Debug("run recorded", "run_id", runID, "tool", run.Tool)
}
