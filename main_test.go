package main

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Args
		wantErr bool
	}{
		{name: "defaults", args: nil, want: Args{Timeout: DefaultInputTimeout}},
		{name: "quiet", args: []string{"-q"}, want: Args{Quiet: true, Timeout: DefaultInputTimeout}},
		{
			name: "config and timeout",
			args: []string{"-c", "/tmp/x.ini", "-t", "2s"},
			want: Args{ConfigPath: "/tmp/x.ini", Timeout: 2 * time.Second},
		},
		{name: "non-positive timeout", args: []string{"-t", "0s"}, want: Args{Timeout: DefaultInputTimeout}},
		{name: "unknown flag", args: []string{"-x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := parseArgs("botsnitcher", tt.args, &out)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArgsHelp(t *testing.T) {
	var out bytes.Buffer
	_, err := parseArgs("botsnitcher", []string{"-h"}, &out)
	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, out.String(), "-q")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.ini")
	require.NoError(t, writeFile(path, content))
	return path
}

func TestRunUsesConfigFileFromEnvOverride(t *testing.T) {
	clearBotEnv(t)
	api := newFakeBotAPI(t)
	path := writeConfig(t, "token_api="+testToken+"\nchat_id=10\n")
	t.Setenv("CONFIG_PATH", path)

	logger := newTestLogger(t)
	err := run(context.Background(), Args{Timeout: time.Second}, logger,
		Input{Reader: strings.NewReader("hello")}, newTestNotifier(logger, api))
	require.NoError(t, err)

	assert.Equal(t, []sentMessage{{ChatID: "10", Text: "hello"}}, api.messages())
}

func TestRunIgnoresDeliveryFailure(t *testing.T) {
	clearBotEnv(t)
	api := newFakeBotAPI(t)
	api.rejectMsg = "Bad Request: chat not found"
	path := writeConfig(t, "token_api="+testToken+"\nchat_id=10\n")

	logger := newTestLogger(t)
	err := run(context.Background(), Args{ConfigPath: path, Timeout: time.Second}, logger,
		Input{Reader: strings.NewReader("hello")}, newTestNotifier(logger, api))
	assert.NoError(t, err)
}

func TestRunFailsBeforeNetworkOnBadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing file"},
		{name: "missing chat id", content: "token_api=" + testToken + "\n"},
		{name: "invalid chat id", content: "token_api=" + testToken + "\nchat_id=ten\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearBotEnv(t)
			api := newFakeBotAPI(t)

			path := filepath.Join(t.TempDir(), "absent.ini")
			if tt.content != "" {
				path = writeConfig(t, tt.content)
			}

			logger := newTestLogger(t)
			err := run(context.Background(), Args{ConfigPath: path, Timeout: time.Second}, logger,
				Input{Reader: strings.NewReader("hello")}, newTestNotifier(logger, api))
			require.Error(t, err)
			assert.Equal(t, 0, api.requestCount())
		})
	}
}

func TestRunSendsPlaceholderForTerminal(t *testing.T) {
	api := newFakeBotAPI(t)
	t.Setenv(chatIDVar, "10")
	t.Setenv(tokenVar, testToken)

	logger := newTestLogger(t)
	err := run(context.Background(), Args{Timeout: time.Second}, logger,
		Input{Reader: strings.NewReader("unused"), Interactive: true}, newTestNotifier(logger, api))
	require.NoError(t, err)

	assert.Equal(t, []sentMessage{{ChatID: "10", Text: Placeholder}}, api.messages())
}
