package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	overlayerr "github.com/KirkDiggler/trigger-overlay/internal/errors"
)

// New creates a text logger at level writing to stderr
func New(level string) (*logrus.Logger, error) {
	return NewWithOutput(level, os.Stderr)
}

// NewWithOutput creates a text logger at level writing to out
func NewWithOutput(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, overlayerr.WrapWithCode(err, overlayerr.CodeInvalidArgument, "bad log level")
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	return log, nil
}
