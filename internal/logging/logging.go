// Package logging 按配置构造 slog 日志器
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Options 对应 config.ini 的 [Logging] 段
type Options struct {
	Level string // debug|info|warn|error，空为 warn
	File  string // 相对路径基于 Dir；空则写 stderr
	Dir   string
}

// ParseLevel 不认识的级别按 warn 处理
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// New 返回日志器和需要在退出时关闭的资源。
// 日志文件打不开时退回 stderr，并把错误一起返回
func New(opts Options, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}
	if opts.File == "" {
		return slog.New(slog.NewTextHandler(stderr, handlerOpts)), nopCloser{}, nil
	}

	path := opts.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(opts.Dir, path)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger := slog.New(slog.NewTextHandler(stderr, handlerOpts))
		return logger, nopCloser{}, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, handlerOpts)), f, nil
}

// Discard 测试用，丢弃所有输出
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
