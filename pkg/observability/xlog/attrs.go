package xlog

import (
	"log/slog"
	"time"
)

// 常用属性 Key
const (
	KeyError     = "error"
	KeyDuration  = "duration"
	KeyCount     = "count"
	KeyComponent = "component"

	// KeySource 注册表来源（文件路径或 URL），避开 slog.SourceKey
	KeySource = "src"
	// KeyLine 源文件行号（从 1 开始）
	KeyLine = "line"
	// KeyAttempt 重试序号（从 1 开始）
	KeyAttempt = "attempt"
)

// Err 创建错误属性；err 为 nil 时返回空属性（slog 会忽略空 Key）。
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Duration 创建耗时属性。
func Duration(d time.Duration) slog.Attr {
	return slog.Duration(KeyDuration, d)
}

// Count 创建计数属性。
func Count(n int) slog.Attr {
	return slog.Int(KeyCount, n)
}

// Component 创建组件属性。
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Source 创建注册表来源属性。
func Source(src string) slog.Attr {
	return slog.String(KeySource, src)
}

// Line 创建行号属性。
func Line(n int) slog.Attr {
	return slog.Int(KeyLine, n)
}

// Attempt 创建重试序号属性。
func Attempt(n int) slog.Attr {
	return slog.Int(KeyAttempt, n)
}
