package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xoui/pkg/observability/xlog"
	"github.com/omeyang/xoui/pkg/oui/xouicsv"
	"github.com/omeyang/xoui/pkg/oui/xregistry"
	"github.com/omeyang/xoui/pkg/oui/xresolve"
	"github.com/omeyang/xoui/pkg/oui/xsource"
)

// app 一次命令执行的状态，Before 中初始化。
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg        cliConfig
	logger     xlog.Logger
	logCleanup func() error
	loader     *xsource.Loader
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      "xouictl",
		Usage:     "OUI 注册表查询与转换工具",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Reader:    a.stdin,
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "配置文件（.yaml/.yml/.json）"},
			&cli.StringFlag{Name: "source", Aliases: []string{"s"}, Usage: "注册表数据源（文件路径或 URL）", Value: DefaultSource},
			&cli.IntFlag{Name: "workers", Usage: "并行解析的 worker 数", Value: runtime.GOMAXPROCS(0)},
			&cli.DurationFlag{Name: "timeout", Usage: "获取与解析的总超时", Value: defaultTimeout},
			&cli.UintFlag{Name: "retry", Usage: "获取失败时的总尝试次数", Value: 1},
			&cli.StringFlag{Name: "log-level", Usage: "日志级别 debug/info/warn/error", Value: defaultLogLevel},
			&cli.StringFlag{Name: "log-format", Usage: "日志格式 text/json", Value: defaultLogFormat},
			&cli.StringFlag{Name: "log-file", Usage: "日志文件（按大小轮转），默认 stderr"},
		},
		Before:         a.before,
		Commands:       a.commands(),
		DefaultCommand: "help",
		// run() 统一映射退出码，不让 urfave/cli 调用 os.Exit
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(a.stderr, err)
			}
		},
	}
}

func (a *app) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "lookup",
			Aliases:   []string{"l"},
			Usage:     "查询地址对应的组织名，无参数时从 stdin 逐行读取",
			ArgsUsage: "[addr...]",
			Action:    a.cmdLookup,
		},
		{
			Name:  "convert",
			Usage: "导出为 .properties 文件",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "输出文件，- 表示 stdout", Value: "-"},
			},
			Action: a.cmdConvert,
		},
		{
			Name:   "list",
			Usage:  "按键顺序列出全部条目",
			Action: a.cmdList,
		},
		{
			Name:   "stats",
			Usage:  "输出条目数、指纹与摘要",
			Action: a.cmdStats,
		},
	}
}

func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return ctx, err
	}
	a.cfg = cfg

	b := xlog.New().
		SetOutput(a.stderr).
		SetLevelString(cfg.Log.Level).
		SetFormat(cfg.Log.Format)
	if cfg.Log.File != "" {
		b.SetRotation(cfg.Log.File)
	}
	logger, cleanup, err := b.Build()
	if err != nil {
		return ctx, newUsageError("%v", err)
	}
	a.logger = logger.With(xlog.Component("xouictl"))
	a.logCleanup = cleanup

	a.loader = xsource.NewLoader(
		xsource.WithLogger(a.logger),
		xsource.WithRetry(cfg.Retry, cfg.RetryDelay),
		xsource.WithParseOptions(xouicsv.WithWorkers(cfg.Workers)),
	)
	return ctx, nil
}

func (a *app) close() error {
	if a.loader != nil {
		a.loader.Close()
	}
	if a.logCleanup == nil {
		return nil
	}
	return a.logCleanup()
}

func (a *app) registry(ctx context.Context) (*xregistry.Registry, error) {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()
	return a.loader.Load(ctx, a.cfg.Source)
}

func (a *app) cmdLookup(ctx context.Context, cmd *cli.Command) error {
	reg, err := a.registry(ctx)
	if err != nil {
		return err
	}
	r, err := xresolve.New(reg)
	if err != nil {
		return err
	}

	addrs := cmd.Args().Slice()
	if len(addrs) == 0 {
		if addrs, err = readLines(a.stdin); err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}
	if len(addrs) == 0 {
		return newUsageError("lookup 需要至少一个地址")
	}

	w := bufio.NewWriter(a.stdout)
	missing := 0
	for _, addr := range addrs {
		e, ok := r.Entry(addr)
		if !ok {
			missing++
			fmt.Fprintf(a.stderr, "%s: not found\n", addr)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", addr, e.Key, e.Organization)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if missing > 0 {
		return &exitError{code: 1}
	}
	return nil
}

func (a *app) cmdConvert(ctx context.Context, cmd *cli.Command) (err error) {
	reg, err := a.registry(ctx)
	if err != nil {
		return err
	}

	out := cmd.String("output")
	if out == "" || out == "-" {
		return xregistry.WriteProperties(a.stdout, reg, time.Now())
	}

	f, err := os.Create(out) //nolint:gosec // 输出路径由用户指定
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := xregistry.WriteProperties(f, reg, time.Now()); err != nil {
		return err
	}
	a.logger.Info(ctx, "properties written", xlog.Source(out), xlog.Count(reg.Len()))
	return nil
}

func (a *app) cmdList(ctx context.Context, _ *cli.Command) error {
	reg, err := a.registry(ctx)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(a.stdout)
	for key, org := range reg.All() {
		fmt.Fprintf(w, "%s\t%s\n", key, org)
	}
	return w.Flush()
}

func (a *app) cmdStats(ctx context.Context, _ *cli.Command) error {
	reg, err := a.registry(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.stdout, "source:      %s\nentries:     %d\nfingerprint: %016x\ndigest:      %s\n",
		a.cfg.Source, reg.Len(), reg.Fingerprint(), reg.Digest())
	return err
}

// readLines 读取非空行，去除首尾空白。
func readLines(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, errors.New("no input")
	}
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
