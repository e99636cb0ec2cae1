package xsource

import (
	"context"
	"errors"
	"fmt"
	"time"

	retry "github.com/avast/retry-go/v5"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/omeyang/xoui/pkg/observability/xlog"
	"github.com/omeyang/xoui/pkg/oui/xouicsv"
	"github.com/omeyang/xoui/pkg/oui/xregistry"
	"github.com/omeyang/xoui/pkg/util/xlru"
)

const instrumentationName = "github.com/omeyang/xoui/xsource"

// Loader 获取并解析注册表数据源，并发安全。
type Loader struct {
	opts   loaderOptions
	tracer trace.Tracer
	cache  *xlru.Cache[string, *xregistry.Registry]
	cbs    *breakers
}

// NewLoader 创建 Loader。
func NewLoader(opts ...Option) *Loader {
	o := loaderOptions{
		logger:   xlog.Nop(),
		attempts: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	tp := o.tracerProvider
	if tp == nil {
		tp = noop.NewTracerProvider()
	}

	l := &Loader{opts: o, tracer: tp.Tracer(instrumentationName)}
	l.cbs = newBreakers(&l.opts)
	if o.cacheSize > 0 {
		cache, err := xlru.New(xlru.Config{Size: o.cacheSize, TTL: o.cacheTTL},
			xlru.WithOnEvicted(func(src string, _ *xregistry.Registry) {
				o.logger.Debug(context.Background(), "registry cache evicted", xlog.Source(src))
			}),
		)
		if err != nil {
			o.logger.Warn(context.Background(), "registry cache disabled", xlog.Err(err))
		} else {
			l.cache = cache
		}
	}
	return l
}

// Close 释放缓存及其过期清理 goroutine，可重复调用。未启用缓存时为空操作。
// Close 之后 Loader 仍可使用，但不再缓存。
func (l *Loader) Close() {
	if l.cache != nil {
		l.cache.Close()
	}
}

// Load 返回 src 的注册表；启用缓存且未过期时直接返回缓存结果。
func (l *Loader) Load(ctx context.Context, src string) (*xregistry.Registry, error) {
	if l.cache != nil {
		if reg, ok := l.cache.Get(src); ok {
			l.opts.logger.Debug(ctx, "registry cache hit", xlog.Source(src))
			return reg, nil
		}
	}
	// Fetch 成功时已写入缓存
	return l.Fetch(ctx, src)
}

// Fetch 绕过缓存获取并解析 src，按 [WithRetry] 的策略重试；成功时刷新缓存。
// 启用 [WithBreaker] 时熔断期间返回 [ErrCircuitOpen]，不再重试。
func (l *Loader) Fetch(ctx context.Context, src string) (*xregistry.Registry, error) {
	if src == "" {
		return nil, ErrEmptySource
	}
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, span := l.tracer.Start(ctx, "xsource.Fetch",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("oui.source", src)),
	)
	defer span.End()

	start := time.Now()
	var attempts int
	reg, err := retry.NewWithData[*xregistry.Registry](
		retry.Context(ctx),
		retry.Attempts(l.opts.attempts),
		retry.Delay(l.opts.delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, ErrUnavailable)
		}),
		retry.OnRetry(func(n uint, err error) {
			l.opts.logger.Warn(ctx, "fetch registry failed, retrying",
				xlog.Source(src), xlog.Attempt(int(n)+1), xlog.Err(err))
		}),
	).Do(func() (*xregistry.Registry, error) {
		attempts++
		return l.cbs.do(src, func() (*xregistry.Registry, error) {
			return l.fetchOnce(ctx, src)
		})
	})

	span.SetAttributes(attribute.Int("oui.attempts", attempts))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		l.opts.logger.Error(ctx, "fetch registry failed", xlog.Source(src), xlog.Err(err))
		return nil, err
	}

	span.SetAttributes(attribute.Int("oui.entries", reg.Len()))
	l.opts.logger.Info(ctx, "registry loaded",
		xlog.Source(src),
		xlog.Count(reg.Len()),
		xlog.Duration(time.Since(start)),
	)
	if l.cache != nil {
		l.cache.Set(src, reg)
	}
	return reg, nil
}

// CircuitOpen 报告 src 当前是否处于熔断状态。未启用 [WithBreaker] 时总是 false。
func (l *Loader) CircuitOpen(src string) bool {
	return l.cbs.state(src) == gobreaker.StateOpen
}

// Invalidate 移除 src 的缓存结果。
func (l *Loader) Invalidate(src string) {
	if l.cache != nil {
		l.cache.Delete(src)
	}
}

func (l *Loader) fetchOnce(ctx context.Context, src string) (*xregistry.Registry, error) {
	rc, err := Open(ctx, src, l.opts.client)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil {
			l.opts.logger.Warn(ctx, "close registry source failed", xlog.Source(src), xlog.Err(cerr))
		}
	}()

	parseOpts := append([]xouicsv.Option{xouicsv.WithLogger(l.opts.logger)}, l.opts.parseOpts...)
	reg, err := xouicsv.Parse(ctx, rc, parseOpts...)
	if err != nil {
		// 读取中断属于数据源不可用，可重试；其余错误原样返回
		if errors.Is(err, xouicsv.ErrRead) {
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return nil, err
	}
	return reg, nil
}
