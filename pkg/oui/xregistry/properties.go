package xregistry

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"
)

// generatedLayout 文件头中生成时间的格式（UTC）。
const generatedLayout = "2006-01-02 15:04:05 UTC"

// WriteProperties 把注册表写成 .properties 格式：
//
//	# Generated on: 2024-01-02 03:04:05 UTC
//	# Entry count:  3
//	# Data digest:  <sha1>
//
//	000000 = XEROX CORPORATION
//
// 条目按键升序输出；码点大于 0x7F 的字符转义为 \uXXXX，
// 超出 BMP 的字符转义为 UTF-16 代理对，反斜杠转义为 \\。
func WriteProperties(w io.Writer, r *Registry, generated time.Time) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Generated on: %s\n", generated.UTC().Format(generatedLayout))
	fmt.Fprintf(bw, "# Entry count:  %d\n", r.Len())
	fmt.Fprintf(bw, "# Data digest:  %s\n\n", r.Digest())

	for k, v := range r.All() {
		bw.WriteString(k)
		bw.WriteString(" = ")
		bw.WriteString(strings.TrimSpace(escapeProperty(v)))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// escapeProperty 把非 ASCII 字符转义为 \uXXXX。
func escapeProperty(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\\':
			sb.WriteString(`\\`)
		case r <= 0x7f:
			sb.WriteRune(r)
		case r <= 0xffff:
			fmt.Fprintf(&sb, `\u%04X`, r)
		default:
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&sb, `\u%04X\u%04X`, hi, lo)
		}
	}
	return sb.String()
}

// ReadProperties 读取 [WriteProperties] 产出的 .properties 内容。
//
// 以 '#' 或 '!' 开头的行与空行被忽略；其余行按第一个 '=' 切分为键和值，
// 两侧去除空白。值中的 \uXXXX（含代理对）及 \\ \t \n \r \f 转义会被还原。
// 重复键后写覆盖前写。
func ReadProperties(rd io.Reader) (*Registry, error) {
	b := NewBuilder(0)
	sc := bufio.NewScanner(rd)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' || line[0] == '!' {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: missing '='", ErrMalformedProperties, lineNo)
		}
		org, err := unescapeProperty(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedProperties, lineNo, err)
		}
		if err := b.Put(strings.TrimSpace(key), org); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedProperties, lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func unescapeProperty(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var units []uint16
	var sb strings.Builder
	flush := func() {
		if len(units) > 0 {
			sb.WriteString(string(utf16.Decode(units)))
			units = units[:0]
		}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			flush()
			sb.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'u':
			if i+5 > len(s) {
				return "", fmt.Errorf("truncated \\u escape")
			}
			v, err := strconv.ParseUint(s[i+1:i+5], 16, 16)
			if err != nil {
				return "", fmt.Errorf("invalid \\u escape %q", s[i+1:i+5])
			}
			units = append(units, uint16(v))
			i += 4
			continue
		case 't':
			flush()
			sb.WriteByte('\t')
		case 'n':
			flush()
			sb.WriteByte('\n')
		case 'r':
			flush()
			sb.WriteByte('\r')
		case 'f':
			flush()
			sb.WriteByte('\f')
		default:
			flush()
			sb.WriteByte(s[i])
		}
	}
	flush()
	return sb.String(), nil
}
