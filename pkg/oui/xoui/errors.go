package xoui

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrEmpty 表示输入为空。
	ErrEmpty = errors.New("xoui: empty input")

	// ErrInvalidFormat 表示输入开头不是三组十六进制数字。
	ErrInvalidFormat = errors.New("xoui: invalid format")

	// ErrInvalidLength 表示字节序列不足 3 字节。
	ErrInvalidLength = errors.New("xoui: invalid length")
)
