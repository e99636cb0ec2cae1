package xsource

import "errors"

var (
	// ErrEmptySource 数据源为空
	ErrEmptySource = errors.New("xsource: empty source")

	// ErrUnavailable 数据源无法打开或读取
	ErrUnavailable = errors.New("xsource: source unavailable")

	// ErrCircuitOpen 数据源连续失败已熔断，本次未发起请求
	ErrCircuitOpen = errors.New("xsource: circuit open")

	// ErrInvalidSchedule cron 表达式无效
	ErrInvalidSchedule = errors.New("xsource: invalid schedule")

	// ErrNotWatchable 远程数据源不支持文件监听
	ErrNotWatchable = errors.New("xsource: remote source cannot be watched")

	// ErrAlreadyStarted Holder 已启动
	ErrAlreadyStarted = errors.New("xsource: holder already started")
)
