package log

import (
	"context"
)

// LogMigration reports the outcome of a schema migration command.
func LogMigration(ctx context.Context, command string, version int64, err error) {
	fields := []Field{
		String("command", command),
		Int64("version", version),
	}
	if err != nil {
		fields = append(fields, String("status", "fail"), Err(err))
		Warn(ctx, "[MIGRATION]", fields...)
		return
	}

	fields = append(fields, String("status", "success"))
	Info(ctx, "[MIGRATION]", fields...)
}
