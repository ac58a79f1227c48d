package main

import (
	"context"
	"log/slog"

	"frbcat/cmd/frbcat-cli/commands"
	"frbcat/lib/telemetry"
)

func main() {
	ctx := context.Background()
	telemetry.InitSlog(true)
	if err := telemetry.SetupFromEnv(ctx, "frbcat-cli"); err != nil {
		slog.Warn("failed to set up telemetry, continuing without it", "err", err)
	}
	telemetry.InstrumentPerfStats(ctx)
	commands.ExecuteContext(ctx)
}
