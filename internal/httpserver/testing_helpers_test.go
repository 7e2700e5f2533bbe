package httpserver

import (
	"io"
	"log/slog"
)

// testLogger discards output, keeping handler tests quiet.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
