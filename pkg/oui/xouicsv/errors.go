package xouicsv

import "errors"

var (
	// ErrNilSource 传入的 io.Reader 为 nil
	ErrNilSource = errors.New("xouicsv: nil source")

	// ErrRead 读取注册表数据失败
	ErrRead = errors.New("xouicsv: read failed")

	// ErrInvalidWorkers 并行度必须为正数
	ErrInvalidWorkers = errors.New("xouicsv: workers must be positive")
)
