package xoui

// Format 定义 OUI 的格式化风格。
type Format uint8

const (
	// FormatBareUpper 无分隔符，大写：AABBCC（规范键格式）
	FormatBareUpper Format = iota
	// FormatColonUpper 冒号分隔，大写：AA:BB:CC
	FormatColonUpper
	// FormatDashUpper 短线分隔，大写：AA-BB-CC（IEEE oui.txt 风格）
	FormatDashUpper
	// FormatBare 无分隔符，小写：aabbcc
	FormatBare
	// FormatColon 冒号分隔，小写：aa:bb:cc
	FormatColon
	// FormatDash 短线分隔，小写：aa-bb-cc
	FormatDash
)

const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

// Key 返回规范键：6 位大写十六进制，注册表以此为键。
func (o OUI) Key() string {
	return formatBare(o.bytes, hexUpper)
}

// String 返回大写冒号格式（AA:BB:CC）。
func (o OUI) String() string {
	return formatWithSep(o.bytes, ':', hexUpper)
}

// FormatString 按指定格式返回字符串。未知格式按 [FormatBareUpper] 处理。
func (o OUI) FormatString(f Format) string {
	switch f {
	case FormatColonUpper:
		return formatWithSep(o.bytes, ':', hexUpper)
	case FormatDashUpper:
		return formatWithSep(o.bytes, '-', hexUpper)
	case FormatBare:
		return formatBare(o.bytes, hexLower)
	case FormatColon:
		return formatWithSep(o.bytes, ':', hexLower)
	case FormatDash:
		return formatWithSep(o.bytes, '-', hexLower)
	default:
		return formatBare(o.bytes, hexUpper)
	}
}

// MarshalText 实现 [encoding.TextMarshaler]，输出规范键。
func (o OUI) MarshalText() ([]byte, error) {
	return []byte(o.Key()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]，接受 [ParsePrefix] 支持的所有形状。
func (o *OUI) UnmarshalText(text []byte) error {
	parsed, err := ParsePrefix(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// formatWithSep 格式化为 xx:xx:xx 或 xx-xx-xx。
func formatWithSep(b [Size]byte, sep byte, hex string) string {
	var buf [8]byte
	buf[0] = hex[b[0]>>4]
	buf[1] = hex[b[0]&0x0f]
	buf[2] = sep
	buf[3] = hex[b[1]>>4]
	buf[4] = hex[b[1]&0x0f]
	buf[5] = sep
	buf[6] = hex[b[2]>>4]
	buf[7] = hex[b[2]&0x0f]
	return string(buf[:])
}

func formatBare(b [Size]byte, hex string) string {
	var buf [KeyLen]byte
	buf[0] = hex[b[0]>>4]
	buf[1] = hex[b[0]&0x0f]
	buf[2] = hex[b[1]>>4]
	buf[3] = hex[b[1]&0x0f]
	buf[4] = hex[b[2]>>4]
	buf[5] = hex[b[2]&0x0f]
	return string(buf[:])
}
