package logger

import (
	"io"
	"os"

	"employees/internal/config"

	"github.com/fatih/color"
	"golang.org/x/exp/slog"
	"golang.org/x/term"
)

// New returns the logger for the given environment: colourised text for
// local runs, JSON otherwise. Only prod drops DEBUG.
func New(env string) *slog.Logger {
	switch env {
	case config.EnvProd:
		return newJSON(os.Stdout, slog.LevelInfo)
	case config.EnvDev:
		return newJSON(os.Stdout, slog.LevelDebug)
	default:
		return setupPrettySlog()
	}
}

func newJSON(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func setupPrettySlog() *slog.Logger {
	color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))

	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug},
	}
	return slog.New(opts.NewPrettyHandler(os.Stdout))
}
