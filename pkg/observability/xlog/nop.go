package xlog

import (
	"context"
	"log/slog"
)

type nopLogger struct{}

// Nop 返回丢弃所有日志的 Logger。
// 库代码在调用方未注入 Logger 时以它为默认值，避免到处判空。
func Nop() Logger { return nopLogger{} }

func (nopLogger) Debug(context.Context, string, ...slog.Attr) {}
func (nopLogger) Info(context.Context, string, ...slog.Attr)  {}
func (nopLogger) Warn(context.Context, string, ...slog.Attr)  {}
func (nopLogger) Error(context.Context, string, ...slog.Attr) {}
func (n nopLogger) With(...slog.Attr) Logger                  { return n }

// OrNop 在 l 为 nil 时返回 [Nop]。
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop()
	}
	return l
}
