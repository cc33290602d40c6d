package driutils

import (
	"log/slog"
	"os"
	"sync"
)

var loggingOnce sync.Once

// SetupLogging installs the process-wide default slog handler: a text
// handler writing to stderr at the given level.
//
// The first call wins; subsequent calls are no-ops. Invoke once before
// first use, typically from main.
func SetupLogging(level slog.Level) {
	loggingOnce.Do(func() {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})
		slog.SetDefault(slog.New(handler))
	})
}
