package xoui

import "fmt"

// ParsePrefix 从字符串开头解析 OUI。
//
// 接受的形状（等价于正则 ^([0-9a-fA-F]{2})[:-]?([0-9a-fA-F]{2})[:-]?([0-9a-fA-F]{2}).*）：
//
//	XX[sep]XX[sep]XX<任意尾随内容>
//
// 其中 sep 是可选的单个 ':' 或 '-'，每个间隔独立选择。
// 第三组之后的内容不做任何检查。输入不做 TrimSpace：前导空白视为格式错误。
func ParsePrefix(s string) (OUI, error) {
	if s == "" {
		return OUI{}, ErrEmpty
	}

	var o OUI
	pos := 0
	for i := range Size {
		if i > 0 && pos < len(s) && isSeparator(s[pos]) {
			pos++
		}
		if pos+2 > len(s) {
			return OUI{}, fmt.Errorf("%w: expected hex pair at position %d", ErrInvalidFormat, pos)
		}
		b, ok := parseHexByte(s[pos], s[pos+1])
		if !ok {
			return OUI{}, fmt.Errorf("%w: invalid hex at position %d", ErrInvalidFormat, pos)
		}
		o.bytes[i] = b
		pos += 2
	}
	return o, nil
}

// MustParsePrefix 类似 [ParsePrefix]，但解析失败时 panic。
// 仅用于包级变量初始化或测试。
func MustParsePrefix(s string) OUI {
	o, err := ParsePrefix(s)
	if err != nil {
		panic(fmt.Sprintf("xoui.MustParsePrefix(%q): %v", s, err))
	}
	return o
}

// ParseKey 解析规范键（恰好 6 位大写十六进制）。
// 用于校验注册表键，比 [ParsePrefix] 严格：不接受分隔符、小写和尾随内容。
func ParseKey(key string) (OUI, error) {
	if key == "" {
		return OUI{}, ErrEmpty
	}
	if len(key) != KeyLen {
		return OUI{}, fmt.Errorf("%w: key must be %d characters, got %d", ErrInvalidFormat, KeyLen, len(key))
	}
	var o OUI
	for i := range Size {
		hi, lo := key[2*i], key[2*i+1]
		if !IsUpperHex(hi) || !IsUpperHex(lo) {
			return OUI{}, fmt.Errorf("%w: invalid key character at position %d", ErrInvalidFormat, 2*i)
		}
		o.bytes[i], _ = parseHexByte(hi, lo)
	}
	return o, nil
}

// IsUpperHex 报告 c 是否属于 [0-9A-F]。
func IsUpperHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('A' <= c && c <= 'F')
}

func isSeparator(c byte) bool {
	return c == ':' || c == '-'
}

// parseHexByte 解析两个十六进制字符为一个字节。
func parseHexByte(high, low byte) (byte, bool) {
	h := hexValue(high)
	l := hexValue(low)
	if h < 0 || l < 0 {
		return 0, false
	}
	return byte(h<<4 | l), true
}

// hexValue 返回十六进制字符的数值，无效字符返回 -1。
func hexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return -1
	}
}
