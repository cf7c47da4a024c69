// Package slog decorates newspulse services with structured logging.
// Successful calls log at debug level, failures at warn level.
package slog

import (
	"context"
	"log/slog"
	"time"
)

// logOp writes one record for a finished operation.
func logOp(ctx context.Context, logger *slog.Logger, msg string, begin time.Time, err error, attrs ...any) {
	level := slog.LevelDebug
	if err != nil {
		level = slog.LevelWarn
		attrs = append(attrs, "err", err)
	}
	attrs = append(attrs, "duration", time.Since(begin))
	logger.Log(ctx, level, msg, attrs...)
}
