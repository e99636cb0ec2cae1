package xsource

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/robfig/cron/v3"

	"github.com/omeyang/xoui/pkg/observability/xlog"
	"github.com/omeyang/xoui/pkg/oui/xregistry"
)

// Holder 持有某个数据源的当前注册表，并发安全。
//
// 查询通过原子指针读取快照，不加锁；Reload 之间互斥。
type Holder struct {
	loader *Loader
	src    string
	opts   holderOptions
	logger xlog.Logger

	current  atomic.Pointer[xregistry.Registry]
	reloadMu sync.Mutex

	mu      sync.Mutex // 保护以下启停状态
	running bool
	cancel  context.CancelFunc
	watcher *fsnotify.Watcher
	cron    *cron.Cron
	wg      sync.WaitGroup
}

// NewHolder 创建 Holder。loader 为 nil 时使用默认 Loader。
// 选项在此校验：无效 cron 表达式返回 [ErrInvalidSchedule]，远程数据源开启监听返回 [ErrNotWatchable]。
func NewHolder(loader *Loader, src string, opts ...HolderOption) (*Holder, error) {
	if src == "" {
		return nil, ErrEmptySource
	}
	if loader == nil {
		loader = NewLoader()
	}

	var o holderOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.watch && IsRemote(src) {
		return nil, fmt.Errorf("%w: %s", ErrNotWatchable, src)
	}
	if o.schedule != "" {
		if _, err := cron.ParseStandard(o.schedule); err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidSchedule, o.schedule, err)
		}
	}

	return &Holder{
		loader: loader,
		src:    src,
		opts:   o,
		logger: loader.opts.logger.With(xlog.Component("xsource.holder"), xlog.Source(src)),
	}, nil
}

// Source 返回数据源。
func (h *Holder) Source() string { return h.src }

// Registry 返回当前注册表；尚未加载时为 nil。
func (h *Holder) Registry() *xregistry.Registry {
	if h == nil {
		return nil
	}
	return h.current.Load()
}

// Lookup 在当前注册表中查找，实现 xresolve.Table。
func (h *Holder) Lookup(key string) (string, bool) {
	return h.Registry().Lookup(key)
}

// Reload 重新获取数据源，指纹变化时替换当前注册表。
// 失败时保留旧注册表。changed 报告是否发生了替换。
func (h *Holder) Reload(ctx context.Context) (changed bool, err error) {
	h.reloadMu.Lock()
	defer h.reloadMu.Unlock()

	reg, err := h.loader.Fetch(ctx, h.src)
	if err != nil {
		return false, err
	}

	old := h.current.Load()
	if old != nil && old.Fingerprint() == reg.Fingerprint() {
		h.logger.Debug(ctx, "registry unchanged", xlog.Count(reg.Len()))
		return false, nil
	}
	h.current.Store(reg)
	h.logger.Info(ctx, "registry swapped",
		xlog.Count(reg.Len()),
		slogFingerprint(reg.Fingerprint()),
	)
	return true, nil
}

// Start 在尚未加载时先同步加载一次，再按选项启动文件监听与定时刷新。
// 后台任务在 Stop 时退出；ctx 取消后不再触发加载。
func (h *Holder) Start(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.running {
		return ErrAlreadyStarted
	}

	if h.current.Load() == nil {
		if _, err := h.Reload(ctx); err != nil {
			return err
		}
	}

	runCtx, cancel := context.WithCancel(ctx)

	if h.opts.watch {
		w, err := h.startWatch(runCtx)
		if err != nil {
			cancel()
			return err
		}
		h.watcher = w
	}

	if h.opts.schedule != "" {
		c := cron.New()
		if _, err := c.AddFunc(h.opts.schedule, func() { h.backgroundReload(runCtx, "schedule") }); err != nil {
			cancel()
			return errors.Join(fmt.Errorf("%w: %w", ErrInvalidSchedule, err), h.closeWatcher())
		}
		c.Start()
		h.cron = c
	}

	h.cancel = cancel
	h.running = true
	return nil
}

// Stop 停止后台任务并等待其退出，可重复调用。
func (h *Holder) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.running {
		return nil
	}
	h.running = false
	h.cancel()

	if h.cron != nil {
		<-h.cron.Stop().Done()
		h.cron = nil
	}
	err := h.closeWatcher()
	h.wg.Wait()
	return err
}

func (h *Holder) closeWatcher() error {
	if h.watcher == nil {
		return nil
	}
	err := h.watcher.Close()
	h.watcher = nil
	return err
}

// startWatch 监听数据源所在目录，编辑器先删后建或 rename 覆盖时也能收到事件。
func (h *Holder) startWatch(ctx context.Context) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("xsource: create watcher: %w", err)
	}
	path := filepath.Clean(h.src)
	if err := w.Add(filepath.Dir(path)); err != nil {
		return nil, errors.Join(fmt.Errorf("xsource: watch %s: %w", filepath.Dir(path), err), w.Close())
	}

	h.wg.Add(1)
	go h.watchLoop(ctx, w, filepath.Base(path))
	return w, nil
}

func (h *Holder) watchLoop(ctx context.Context, w *fsnotify.Watcher, name string) {
	defer h.wg.Done()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != name {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(h.opts.debounce)
			} else {
				timer.Reset(h.opts.debounce)
			}
			fire = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			h.logger.Warn(ctx, "watch error", xlog.Err(err))

		case <-fire:
			fire = nil
			h.backgroundReload(ctx, "watch")
		}
	}
}

func (h *Holder) backgroundReload(ctx context.Context, trigger string) {
	if ctx.Err() != nil {
		return
	}
	changed, err := h.Reload(ctx)
	if err != nil {
		h.logger.Warn(ctx, "background reload failed", slogTrigger(trigger), xlog.Err(err))
	}
	if h.opts.onReload != nil {
		h.opts.onReload(changed, err)
	}
}
