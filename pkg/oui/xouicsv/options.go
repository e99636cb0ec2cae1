package xouicsv

import (
	"fmt"

	"github.com/omeyang/xoui/pkg/observability/xlog"
)

const (
	// DefaultBatchLines 并行解析时每批的行数
	DefaultBatchLines = 4096

	// MaxLineSize 单行最大字节数，更长的行被跳过
	MaxLineSize = 1 << 20
)

type options struct {
	logger     xlog.Logger
	workers    int
	batchLines int
}

func newOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.workers <= 0 {
		return o, fmt.Errorf("%w: got %d", ErrInvalidWorkers, o.workers)
	}
	return o, nil
}

// Option 解析选项
type Option func(*options)

func defaultOptions() options {
	return options{
		logger:     xlog.Nop(),
		workers:    1,
		batchLines: DefaultBatchLines,
	}
}

// WithLogger 设置日志记录器。跳过的非表头行以 Debug 级别记录行号。
// nil 表示不记录。
func WithLogger(l xlog.Logger) Option {
	return func(o *options) { o.logger = xlog.OrNop(l) }
}

// WithWorkers 设置并行提取的 worker 数，默认 1（顺序解析）。
// n <= 0 时 Parse 与 ParseFile 返回 [ErrInvalidWorkers]。
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithBatchLines 设置并行解析时每批的行数，n <= 0 时保持默认值。
func WithBatchLines(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.batchLines = n
		}
	}
}
