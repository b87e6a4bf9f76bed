package logging

import (
	"log/slog"
	"os"

	"gorm.io/gorm"
)

func stdoutHandler() slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
}

// Setup installs the bootstrap logger: JSON to stdout only. Used from process
// start until the database connection exists.
func Setup() {
	slog.SetDefault(slog.New(stdoutHandler()))
}

// EnableDatabase upgrades the default logger to fan records out to stdout and
// the Postgres batch handler. Returns the handler so the caller can Stop it
// during shutdown.
func EnableDatabase(db *gorm.DB) *PGHandler {
	pg := NewPGHandler(db)
	slog.SetDefault(slog.New(NewMultiHandler(stdoutHandler(), pg)))
	return pg
}
