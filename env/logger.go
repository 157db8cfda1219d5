package env

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ConfigureLogger points the global zerolog logger at the configured
// outputs and sets its level.
func ConfigureLogger(c Config) {
	zerolog.TimeFieldFormat = TimeFormat
	if c.Mode == "DEV" {
		log.Logger = log.With().Caller().Logger()
	}

	var writers []io.Writer
	if c.Mode == "DEV" || c.LogStdout {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: TimeFormat})
	}
	if c.LogFile != "" {
		fileWriter, err := os.OpenFile(c.LogFile, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0666)
		if err != nil {
			log.Error().Str("context", "init").Err(err).Msg("log_file_open_failed")
		} else {
			writers = append(writers, fileWriter)
		}
	}
	if len(writers) == 1 {
		log.Logger = log.Output(writers[0])
	} else if len(writers) > 1 {
		log.Logger = log.Output(zerolog.MultiLevelWriter(writers...))
	}

	zerolog.SetGlobalLevel(ConvertLevel(c.LogLevel))
}

// ConvertLevel maps the 0 (fatal) to 4 (trace) scale used in the
// environment to zerolog levels.
func ConvertLevel(level int) zerolog.Level {
	switch level {
	case 0:
		return zerolog.FatalLevel
	case 1:
		return zerolog.ErrorLevel
	case 2:
		return zerolog.InfoLevel
	case 3:
		return zerolog.DebugLevel
	case 4:
		return zerolog.TraceLevel
	default:
		return zerolog.DebugLevel
	}
}
