package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/commerce-api/pkg/config"
)

// Logger logger estructurado del servicio.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger a partir de la configuración de la app: salida
// legible en development, JSON en el resto, nivel desde LOG_LEVEL y el nombre
// del servicio como campo fijo en cada línea.
func New(cfg config.AppConfig) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).Level(parseLevel(cfg.LogLevel)).With().
		Timestamp().
		Str("service", cfg.Name).
		Logger()

	// Los use cases loguean vía el global de rs/zerolog/log; redirigirlo aquí
	// para que todo salga por el mismo writer con los mismos campos.
	log.Logger = zl

	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Info, Error y Fatal delegados a zerolog (la superficie que usa el arranque).
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
