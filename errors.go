package main

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	ChatIDError ErrorKind = iota
	TokenError
)

func (k ErrorKind) String() string {
	switch k {
	case ChatIDError:
		return "chat id"
	case TokenError:
		return "api token"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

type ConfigError struct {
	Kind   ErrorKind
	Detail string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s initialization failed: %s", e.Kind, e.Detail)
}

func chatIDError(format string, args ...any) error {
	return &ConfigError{Kind: ChatIDError, Detail: fmt.Sprintf(format, args...)}
}

func tokenError(format string, args ...any) error {
	return &ConfigError{Kind: TokenError, Detail: fmt.Sprintf(format, args...)}
}

func KindOf(err error) (ErrorKind, bool) {
	var cerr *ConfigError
	if errors.As(err, &cerr) {
		return cerr.Kind, true
	}
	return 0, false
}
