// xouictl 是 OUI 注册表的命令行工具。
//
// 用法:
//
//	xouictl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config      配置文件（.yaml/.yml/.json），命令行参数优先
//	-s, --source      注册表数据源，本地 CSV 路径或 http/https URL
//	                  (默认: https://standards-oui.ieee.org/oui/oui.csv)
//	    --workers     并行解析的 worker 数 (默认: GOMAXPROCS)
//	    --timeout     获取与解析的总超时 (默认: 60s)
//	    --retry       获取失败时的总尝试次数 (默认: 1，不重试)
//	    --log-level   debug/info/warn/error (默认: warn)
//	    --log-format  text/json (默认: text)
//	    --log-file    日志写入文件（按大小轮转），默认写 stderr
//
// 命令:
//
//	lookup [addr...]  查询组织名；无参数时从 stdin 逐行读取
//	convert -o FILE   导出为 .properties 文件，FILE 为 - 时写 stdout
//	list              按键顺序列出全部条目
//	stats             输出条目数、指纹与摘要
//
// 退出码:
//
//	0: 成功
//	1: 执行失败，或 lookup 中有地址未找到
//	2: 参数错误
//
// 示例:
//
//	xouictl -s oui.csv lookup 00:CD:FE:12:34:56 485073
//	xouictl -s oui.csv convert -o oui.properties
//	xouictl -c xouictl.yaml stats
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// 版本信息，可通过 -ldflags "-X main.Version=..." 注入。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	setupSignalHandler(cancel)
	code := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// run 执行命令并返回退出码。
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	err := a.command().Run(ctx, args)
	if cerr := a.close(); cerr != nil && err == nil {
		err = cerr
	}
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
		return 2
	}
	if isCLIUsageError(err) {
		// 详情已由 ExitErrHandler 或 flag 解析器输出
		return 2
	}
	fmt.Fprintf(stderr, "错误: %v\n", err)
	return 1
}
