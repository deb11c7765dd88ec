package testutil

import (
	"io"

	"github.com/Rahimov97/Another-Knowelege-Base/internal/logger"
)

// MakeNoopLogger returns a logger that discards everything.
func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, 0, "text")
}
