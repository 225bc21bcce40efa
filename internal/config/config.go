package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAddr        = "127.0.0.1:2888"
	DefaultLogLevel    = "info"
	DefaultCORSOrigins = "http://localhost:5173"
	DefaultGameTTL     = 2 * time.Hour
)

// Config 进程级设置。只管服务、日志这些外围的东西，搜索深度不在这里。
type Config struct {
	Addr        string
	WebDir      string
	LogLevel    string
	LogPretty   bool
	CORSOrigins string
	OpenBrowser bool
	GameTTL     time.Duration // 闲置多久的对局会被服务器清掉，0 表示不清
}

func Default() Config {
	return Config{
		Addr:        DefaultAddr,
		LogLevel:    DefaultLogLevel,
		LogPretty:   true,
		CORSOrigins: DefaultCORSOrigins,
		GameTTL:     DefaultGameTTL,
	}
}

// Load 先读可选的 .env 文件（不存在不算错），再读环境变量
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Default()

	if v, ok := lookup("CHECKERS_ADDR"); ok {
		cfg.Addr = v
	}
	if v, ok := lookup("CHECKERS_WEB_DIR"); ok {
		cfg.WebDir = v
	}
	if v, ok := lookup("CHECKERS_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup("CHECKERS_CORS_ORIGINS"); ok {
		cfg.CORSOrigins = v
	}

	var err error
	if cfg.LogPretty, err = boolEnv("CHECKERS_LOG_PRETTY", cfg.LogPretty); err != nil {
		return Config{}, err
	}
	if cfg.OpenBrowser, err = boolEnv("CHECKERS_OPEN_BROWSER", cfg.OpenBrowser); err != nil {
		return Config{}, err
	}
	if v, ok := lookup("CHECKERS_GAME_TTL"); ok {
		if cfg.GameTTL, err = time.ParseDuration(v); err != nil {
			return Config{}, fmt.Errorf("CHECKERS_GAME_TTL: %w", err)
		}
	}
	return cfg, nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func boolEnv(key string, def bool) (bool, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
