package xouicsv

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// lineReader 按 "\n"、"\r\n" 或单独的 "\r" 切分行，行内容不含行结束符。
//
// 超过 maxSize 字节的行整行丢弃，以空行返回，由调用方按非记录行跳过。
type lineReader struct {
	r       *bufio.Reader
	maxSize int
	lineNo  int
	buf     []byte
}

func newLineReader(r io.Reader, maxSize int) *lineReader {
	return &lineReader{
		r:       bufio.NewReaderSize(r, 64*1024),
		maxSize: maxSize,
		buf:     make([]byte, 0, 256),
	}
}

// next 返回下一行。输入结束返回 io.EOF，读取失败原样返回底层错误。
// 首行去掉 UTF-8 BOM。
func (lr *lineReader) next() (string, error) {
	lr.buf = lr.buf[:0]
	var (
		read     bool
		overlong bool
	)
	for {
		c, err := lr.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && read {
				// 最后一行没有行结束符
				break
			}
			return "", err
		}
		read = true

		if c == '\n' {
			break
		}
		if c == '\r' {
			next, perr := lr.r.Peek(1)
			switch {
			case perr == nil && next[0] == '\n':
				_, _ = lr.r.ReadByte()
			case perr != nil && !errors.Is(perr, io.EOF):
				// Peek 会清除 bufio.Reader 中暂存的错误，在此直接返回
				return "", perr
			}
			break
		}
		if overlong {
			continue
		}
		if len(lr.buf) == lr.maxSize {
			overlong = true
			lr.buf = lr.buf[:0]
			continue
		}
		lr.buf = append(lr.buf, c)
	}

	lr.lineNo++
	if overlong {
		return "", nil
	}
	line := string(lr.buf)
	if lr.lineNo == 1 {
		line = strings.TrimPrefix(line, utf8BOM)
	}
	return line, nil
}
