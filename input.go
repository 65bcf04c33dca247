package main

import (
	"context"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

const (
	Placeholder         = "No message found"
	DefaultInputTimeout = 5 * time.Second
)

// Input is the message source. Interactive is set when the reader is a
// terminal rather than a pipe or redirected file.
type Input struct {
	Reader      io.Reader
	Interactive bool
}

func StdinInput() Input {
	fd := os.Stdin.Fd()
	return Input{
		Reader:      os.Stdin,
		Interactive: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

type readResult struct {
	data []byte
	err  error
}

// ReadInput returns the whole input, or Placeholder when the input is a
// terminal, does not finish within timeout, fails, or ctx is cancelled.
// Partial reads are never returned.
func ReadInput(ctx context.Context, logger *Logger, in Input, timeout time.Duration) string {
	if in.Interactive || in.Reader == nil {
		logger.Debug("No piped input, using placeholder")
		return Placeholder
	}

	// Buffered so the reader goroutine can finish after we stop listening.
	done := make(chan readResult, 1)
	go func() {
		data, err := io.ReadAll(in.Reader)
		done <- readResult{data: data, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-done:
		if res.err != nil {
			logger.Warn("Failed to read input", zap.Error(res.err))
			return Placeholder
		}
		if !utf8.Valid(res.data) {
			logger.Warn("Input is not valid UTF-8")
			return Placeholder
		}
		logger.Debug("Input read", zap.Int("bytes", len(res.data)))
		return string(res.data)
	case <-timer.C:
		logger.Debug("Timed out waiting for input", zap.Duration("timeout", timeout))
		return Placeholder
	case <-ctx.Done():
		logger.Debug("Input read interrupted", zap.Error(ctx.Err()))
		return Placeholder
	}
}
