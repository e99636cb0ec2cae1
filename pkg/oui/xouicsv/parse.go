package xouicsv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/omeyang/xoui/pkg/observability/xlog"
	"github.com/omeyang/xoui/pkg/oui/xregistry"
)

const utf8BOM = "\ufeff"

// 当前 IEEE 注册表约 4 万条 MA-L 记录
const sizeHint = 1 << 15

// Parse 单遍读取 r 中的所有行并构建注册表。
//
// r 为 nil 返回 [ErrNilSource]；读取失败返回包装 [ErrRead] 的错误，不返回部分结果。
// 超过 [MaxLineSize] 的行与其他非记录行一样被跳过。
// ctx 在行与行之间检查。Parse 不关闭 r。
func Parse(ctx context.Context, r io.Reader, opts ...Option) (*xregistry.Registry, error) {
	if r == nil {
		return nil, ErrNilSource
	}
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return parse(ctx, r, &o)
}

// ParseFile 打开 path 并解析。文件总会被关闭；关闭失败只记录日志，不覆盖解析结果。
func ParseFile(ctx context.Context, path string, opts ...Option) (*xregistry.Registry, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path) //nolint:gosec // 路径由调用方提供
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			o.logger.Warn(ctx, "close registry file failed", xlog.Source(path), xlog.Err(cerr))
		}
	}()
	return parse(ctx, f, &o)
}

func parse(ctx context.Context, r io.Reader, o *options) (*xregistry.Registry, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	lr := newLineReader(r, MaxLineSize)

	var (
		reg *xregistry.Registry
		err error
	)
	if o.workers == 1 {
		reg, err = parseSequential(ctx, lr, o)
	} else {
		reg, err = parseParallel(ctx, lr, o)
	}
	if err != nil {
		return nil, err
	}

	o.logger.Debug(ctx, "registry parsed",
		xlog.Count(reg.Len()),
		xlog.Duration(time.Since(start)),
	)
	return reg, nil
}

// nextLine 读取下一行。ok 为 false 时 err 为 nil 表示输入结束。
func nextLine(lr *lineReader) (line string, ok bool, err error) {
	line, err = lr.next()
	if err == nil {
		return line, true, nil
	}
	if errors.Is(err, io.EOF) {
		return "", false, nil
	}
	return "", false, fmt.Errorf("%w: after line %d: %w", ErrRead, lr.lineNo, err)
}

func logSkipped(ctx context.Context, l xlog.Logger, lineNo int) {
	// 第一行是表头
	if lineNo > 1 {
		l.Debug(ctx, "skip non-record line", xlog.Line(lineNo))
	}
}

func parseSequential(ctx context.Context, lr *lineReader, o *options) (*xregistry.Registry, error) {
	b := xregistry.NewBuilder(sizeHint)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line, ok, err := nextLine(lr)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		rec, ok := ExtractRecord(line)
		if !ok {
			logSkipped(ctx, o.logger, lr.lineNo)
			continue
		}
		if err := b.Put(rec.Key, rec.Organization); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// batch 一批连续行，first 为首行行号。
type batch struct {
	first int
	lines []string
	out   []Record
}

// parseParallel 顺序读取、分批并行提取，最后按批次顺序合并，保证 last write wins 与顺序解析一致。
func parseParallel(ctx context.Context, lr *lineReader, o *options) (*xregistry.Registry, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	var batches []*batch
	cur := &batch{first: 1, lines: make([]string, 0, o.batchLines)}

	submit := func(bt *batch) {
		batches = append(batches, bt)
		g.Go(func() error {
			bt.out = make([]Record, 0, len(bt.lines))
			for i, line := range bt.lines {
				if rec, ok := ExtractRecord(line); ok {
					bt.out = append(bt.out, rec)
				} else {
					logSkipped(gctx, o.logger, bt.first+i)
				}
			}
			bt.lines = nil
			return nil
		})
	}

	var readErr error
	for {
		if err := gctx.Err(); err != nil {
			readErr = err
			break
		}
		line, ok, err := nextLine(lr)
		if err != nil || !ok {
			readErr = err
			break
		}
		cur.lines = append(cur.lines, line)
		if len(cur.lines) == o.batchLines {
			submit(cur)
			cur = &batch{first: lr.lineNo + 1, lines: make([]string, 0, o.batchLines)}
		}
	}
	if readErr == nil && len(cur.lines) > 0 {
		submit(cur)
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if readErr != nil {
		// gctx 只会因父 ctx 取消而结束
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, readErr
	}

	b := xregistry.NewBuilder(sizeHint)
	for _, bt := range batches {
		if err := b.Merge(bt.out); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}
