package xregistry

import "errors"

var (
	// ErrInvalidKey 表示写入的键不是规范键（6 位大写十六进制）。
	ErrInvalidKey = errors.New("xregistry: invalid key")

	// ErrMalformedProperties 表示 .properties 内容无法解析。
	ErrMalformedProperties = errors.New("xregistry: malformed properties")
)
