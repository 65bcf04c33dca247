package main

import (
	"os"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func newTestLogger(t *testing.T) *Logger {
	t.Helper()
	return &Logger{Logger: zaptest.NewLogger(t), verbose: true}
}

func newObservedLogger() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return &Logger{Logger: zap.New(core), verbose: false}, logs
}

// clearBotEnv unsets the credential variables for the duration of the test.
func clearBotEnv(t *testing.T) {
	t.Helper()
	t.Setenv(chatIDVar, "")
	t.Setenv(tokenVar, "")
	t.Setenv("CONFIG_PATH", "")
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}
