package xsource

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sony/gobreaker/v2"

	"github.com/omeyang/xoui/pkg/observability/xlog"
	"github.com/omeyang/xoui/pkg/oui/xregistry"
)

// breakers 按数据源维护熔断器，未启用时为 nil。
type breakers struct {
	opts *loaderOptions
	mu   sync.Mutex
	m    map[string]*gobreaker.CircuitBreaker[*xregistry.Registry]
}

func newBreakers(o *loaderOptions) *breakers {
	if o.breakerTrips == 0 {
		return nil
	}
	return &breakers{opts: o, m: make(map[string]*gobreaker.CircuitBreaker[*xregistry.Registry])}
}

func (b *breakers) get(src string) *gobreaker.CircuitBreaker[*xregistry.Registry] {
	b.mu.Lock()
	defer b.mu.Unlock()
	if cb, ok := b.m[src]; ok {
		return cb
	}

	trips := b.opts.breakerTrips
	logger := b.opts.logger
	cb := gobreaker.NewCircuitBreaker[*xregistry.Registry](gobreaker.Settings{
		Name:        src,
		MaxRequests: 1,
		Timeout:     b.opts.breakerTimeout,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= trips
		},
		// 只有数据源不可用计入失败，解析错误和取消不影响熔断状态
		IsSuccessful: func(err error) bool {
			return err == nil || !errors.Is(err, ErrUnavailable)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn(context.Background(), "registry source breaker state changed",
				xlog.Source(name), slogBreakerState(from, to))
		},
	})
	b.m[src] = cb
	return cb
}

// do 在 src 的熔断器保护下执行 fn。b 为 nil 时直接执行。
func (b *breakers) do(src string, fn func() (*xregistry.Registry, error)) (*xregistry.Registry, error) {
	if b == nil {
		return fn()
	}
	reg, err := b.get(src).Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %s: %w", ErrCircuitOpen, src, err)
	}
	return reg, err
}

// state 返回 src 熔断器的当前状态，未启用或尚未使用时为 closed。
func (b *breakers) state(src string) gobreaker.State {
	if b == nil {
		return gobreaker.StateClosed
	}
	b.mu.Lock()
	cb, ok := b.m[src]
	b.mu.Unlock()
	if !ok {
		return gobreaker.StateClosed
	}
	return cb.State()
}
