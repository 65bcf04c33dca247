package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v2"
)

const DefaultConfigPath = "/etc/botsnitcher/conf.ini"

const (
	chatIDVar = "CHAT_ID"
	tokenVar  = "TELOXIDE_TOKEN"

	tokenKey  = "token_api"
	chatIDKey = "chat_id"
)

// BotConfiguration is only ever built with both fields resolved.
type BotConfiguration struct {
	chatID int64
	token  string
}

func (c BotConfiguration) ChatID() int64 { return c.chatID }
func (c BotConfiguration) Token() string { return c.token }

type envSpec struct {
	ChatID     string `envconfig:"CHAT_ID"`
	Token      string `envconfig:"TELOXIDE_TOKEN"`
	ConfigPath string `envconfig:"CONFIG_PATH" default:"/etc/botsnitcher/conf.ini"`
}

func loadEnv() (envSpec, error) {
	var spec envSpec
	if err := envconfig.Process("", &spec); err != nil {
		return spec, err
	}
	return spec, nil
}

func FromEnv() (BotConfiguration, error) {
	spec, err := loadEnv()
	if err != nil {
		return BotConfiguration{}, chatIDError("failed to read environment: %v", err)
	}

	if spec.ChatID == "" {
		return BotConfiguration{}, chatIDError("could not find env var %s", chatIDVar)
	}
	chatID, err := strconv.ParseInt(spec.ChatID, 10, 64)
	if err != nil {
		return BotConfiguration{}, chatIDError("invalid value of env var %s: %q", chatIDVar, spec.ChatID)
	}

	if spec.Token == "" {
		return BotConfiguration{}, tokenError("could not find env var %s", tokenVar)
	}

	return BotConfiguration{chatID: chatID, token: spec.Token}, nil
}

// An unreadable file yields no keys, so the token check fails first.
func FromFile(path string) (BotConfiguration, error) {
	keys := loadKeys(path)

	token, ok := keys.lookup(tokenKey)
	if !ok {
		return BotConfiguration{}, tokenError("could not find %s in %s", tokenKey, path)
	}

	raw, ok := keys.lookup(chatIDKey)
	if !ok {
		return BotConfiguration{}, chatIDError("%s not found in %s", chatIDKey, path)
	}
	chatID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return BotConfiguration{}, chatIDError("%s invalid in %s: %q", chatIDKey, path, raw)
	}

	return BotConfiguration{chatID: chatID, token: token}, nil
}

func ResolveConfig(logger *Logger, path string) (BotConfiguration, error) {
	cfg, err := FromEnv()
	if err == nil {
		logger.Debug("Configuration loaded from environment")
		return cfg, nil
	}
	logger.Warn("Env config invalid", zap.Error(err))

	cfg, err = FromFile(path)
	if err != nil {
		return BotConfiguration{}, fmt.Errorf("file config %q invalid: %w", path, err)
	}
	logger.Debug("Configuration loaded from file", zap.String("path", path))
	return cfg, nil
}

// configFilePath applies the precedence flag > CONFIG_PATH > default.
func configFilePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	spec, err := loadEnv()
	if err != nil || spec.ConfigPath == "" {
		return DefaultConfigPath
	}
	return spec.ConfigPath
}

type keySource interface {
	lookup(key string) (string, bool)
}

func loadKeys(path string) keySource {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAMLKeys(path)
	default:
		return loadINIKeys(path)
	}
}

type iniKeys struct {
	section *ini.Section
}

func loadINIKeys(path string) keySource {
	f, err := ini.InsensitiveLoad(path)
	if err != nil {
		f = ini.Empty()
	}
	return iniKeys{section: f.Section(ini.DefaultSection)}
}

func (k iniKeys) lookup(key string) (string, bool) {
	if !k.section.HasKey(key) {
		return "", false
	}
	v := k.section.Key(key).String()
	return v, v != ""
}

type yamlKeys map[string]interface{}

func loadYAMLKeys(path string) keySource {
	keys := yamlKeys{}
	data, err := os.ReadFile(path)
	if err != nil {
		return keys
	}
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return yamlKeys{}
	}
	return keys
}

func (k yamlKeys) lookup(key string) (string, bool) {
	v, ok := k[key]
	if !ok || v == nil {
		return "", false
	}
	s := fmt.Sprint(v)
	return s, s != ""
}
