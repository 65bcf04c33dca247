package main

import (
	"context"
	"errors"
	"flag"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	args, err := parseArgs(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	logger, err := NewLogger(args.Quiet)
	if err != nil {
		_, _ = os.Stderr.WriteString("logger init error: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	if err := godotenv.Load(); err == nil {
		logger.Debug("Loaded .env file")
	}
	if err := tgbotapi.SetLogger(logger.StdLog()); err != nil {
		logger.Warn("Failed to attach bot API logger", zap.Error(err))
	}

	ctx, cancel := setupGracefulShutdown(logger)
	defer cancel()

	notifier := NewNotifier(logger)
	if err := run(ctx, args, logger, StdinInput(), notifier); err != nil {
		logger.Fatal("Unable to load configuration", zap.Error(err))
	}
}

// run resolves the configuration, reads the message and sends it. Only a
// configuration failure is returned; delivery failures are logged by the
// notifier and do not change the outcome.
func run(ctx context.Context, args Args, logger *Logger, in Input, notifier *Notifier) error {
	path := configFilePath(args.ConfigPath)
	cfg, err := ResolveConfig(logger, path)
	if err != nil {
		return err
	}

	msg := ReadInput(ctx, logger, in, args.Timeout)
	_ = notifier.Send(cfg, msg)

	notifier.Stats().Log(logger)
	return nil
}
