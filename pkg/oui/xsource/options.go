package xsource

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/omeyang/xoui/pkg/observability/xlog"
	"github.com/omeyang/xoui/pkg/oui/xouicsv"
)

// DefaultWatchDebounce 文件监听的默认防抖时间
const DefaultWatchDebounce = 100 * time.Millisecond

// DefaultBreakerTimeout 熔断后到放行探测请求的默认时间
const DefaultBreakerTimeout = time.Minute

type loaderOptions struct {
	client         *http.Client
	logger         xlog.Logger
	tracerProvider trace.TracerProvider
	attempts       uint
	delay          time.Duration
	cacheSize      int
	cacheTTL       time.Duration
	breakerTrips   uint32
	breakerTimeout time.Duration
	parseOpts      []xouicsv.Option
}

// Option Loader 配置选项
type Option func(*loaderOptions)

// WithHTTPClient 设置获取远程数据源使用的 HTTP 客户端。
func WithHTTPClient(c *http.Client) Option {
	return func(o *loaderOptions) {
		if c != nil {
			o.client = c
		}
	}
}

// WithLogger 设置日志记录器，同时传给 CSV 解析。
func WithLogger(l xlog.Logger) Option {
	return func(o *loaderOptions) { o.logger = xlog.OrNop(l) }
}

// WithTracerProvider 为每次获取创建 span。nil 表示不追踪。
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *loaderOptions) { o.tracerProvider = tp }
}

// WithRetry 设置总尝试次数（含首次）与固定重试间隔。attempts 为 0 视为 1。
// 只有 [ErrUnavailable] 会被重试。
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(o *loaderOptions) {
		o.attempts = max(attempts, 1)
		o.delay = max(delay, 0)
	}
}

// WithCache 按数据源缓存解析结果，size 为最多缓存的数据源个数，ttl 为过期时间。
// size <= 0 关闭缓存；ttl <= 0 表示不过期。启用缓存后需调用 [Loader.Close] 释放。
func WithCache(size int, ttl time.Duration) Option {
	return func(o *loaderOptions) {
		o.cacheSize = size
		o.cacheTTL = max(ttl, 0)
	}
}

// WithBreaker 为每个数据源启用熔断：连续 failures 次 [ErrUnavailable] 后熔断，
// 熔断期间直接返回 [ErrCircuitOpen]，openTimeout 后放行一次探测请求。
// failures 为 0 关闭熔断；openTimeout <= 0 使用 [DefaultBreakerTimeout]。
func WithBreaker(failures uint32, openTimeout time.Duration) Option {
	return func(o *loaderOptions) {
		o.breakerTrips = failures
		o.breakerTimeout = openTimeout
		if o.breakerTimeout <= 0 {
			o.breakerTimeout = DefaultBreakerTimeout
		}
	}
}

// WithParseOptions 设置传给 xouicsv.Parse 的选项。
func WithParseOptions(opts ...xouicsv.Option) Option {
	return func(o *loaderOptions) { o.parseOpts = append(o.parseOpts, opts...) }
}

type holderOptions struct {
	watch    bool
	debounce time.Duration
	schedule string
	onReload func(changed bool, err error)
}

// HolderOption Holder 配置选项
type HolderOption func(*holderOptions)

// WithWatch 监听本地数据源文件，变更后经过 debounce 静默期再重新加载。
// debounce <= 0 使用 [DefaultWatchDebounce]。
func WithWatch(debounce time.Duration) HolderOption {
	return func(o *holderOptions) {
		o.watch = true
		o.debounce = debounce
		if o.debounce <= 0 {
			o.debounce = DefaultWatchDebounce
		}
	}
}

// WithSchedule 按 cron 表达式定时重新加载，例如 "0 3 * * *" 或 "@every 6h"。
func WithSchedule(spec string) HolderOption {
	return func(o *holderOptions) { o.schedule = spec }
}

// WithOnReload 设置后台重新加载完成后的回调。回调在后台 goroutine 中同步执行。
func WithOnReload(fn func(changed bool, err error)) HolderOption {
	return func(o *holderOptions) { o.onReload = fn }
}
