package testutil

import (
	"io"

	"github.com/dtroode/contactbook/internal/logger"
)

// MakeNoopLogger returns a logger that discards everything.
func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, 0)
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
