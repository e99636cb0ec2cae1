package xoui

import (
	"strings"
	"testing"
)

// FuzzParsePrefix 验证成功解析的输入，其规范键与输入前缀的十六进制数字一致。
func FuzzParsePrefix(f *testing.F) {
	seeds := []string{"00CDFE", "48:50:73", "F0-D2-F1", "0010e0#XYZ", "00:03-47@XYZ", "", "::", "zz"}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		o, err := ParsePrefix(s)
		if err != nil {
			return
		}

		key := o.Key()
		if len(key) != KeyLen {
			t.Fatalf("key length = %d", len(key))
		}

		// 去掉分隔符后，输入开头 6 个字符（大写）必须等于规范键
		var digits strings.Builder
		for i := 0; i < len(s) && digits.Len() < KeyLen; i++ {
			if isSeparator(s[i]) {
				continue
			}
			digits.WriteByte(s[i])
		}
		if got := strings.ToUpper(digits.String()); got != key {
			t.Fatalf("ParsePrefix(%q).Key() = %q, prefix digits = %q", s, key, got)
		}

		// 规范键自身可回解析
		again, err := ParseKey(key)
		if err != nil || again != o {
			t.Fatalf("ParseKey(%q) = %v, %v; want %v", key, again, err, o)
		}
	})
}
