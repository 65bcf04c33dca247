package main

import (
	"flag"
	"io"
	"time"
)

type Args struct {
	Quiet      bool
	ConfigPath string
	Timeout    time.Duration
}

func parseArgs(name string, arguments []string, output io.Writer) (Args, error) {
	args := Args{Timeout: DefaultInputTimeout}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.BoolVar(&args.Quiet, "q", false, "Set log level to error only")
	fs.StringVar(&args.ConfigPath, "c", "", "Config file path (overrides CONFIG_PATH)")
	fs.DurationVar(&args.Timeout, "t", DefaultInputTimeout, "How long to wait for stdin")

	if err := fs.Parse(arguments); err != nil {
		return Args{}, err
	}
	if args.Timeout <= 0 {
		args.Timeout = DefaultInputTimeout
	}
	return args, nil
}
