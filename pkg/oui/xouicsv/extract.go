package xouicsv

import (
	"strings"

	"github.com/omeyang/xoui/pkg/oui/xoui"
	"github.com/omeyang/xoui/pkg/oui/xregistry"
)

// Record 一条数据记录：规范键与组织名。
type Record = xregistry.Entry

// RecordTag 大型地址块（MA-L）的记录类型标签，包含其后的分隔逗号。
const RecordTag = "MA-L,"

// lineTerminators 字段中不允许出现的行终止符：CR、LF、NEL、LS、PS
const lineTerminators = "\r\n\u0085\u2028\u2029"

// ExtractRecord 判断 line 是否为数据记录，是则提取键和组织名。
//
// 不匹配的行返回 false，从不返回错误。返回的字符串不引用 line 的底层存储。
func ExtractRecord(line string) (Record, bool) {
	rest, ok := strings.CutPrefix(line, RecordTag)
	// 键 + 逗号 + 至少一个字符
	if !ok || len(rest) < xoui.KeyLen+2 {
		return Record{}, false
	}
	for i := range xoui.KeyLen {
		if !xoui.IsUpperHex(rest[i]) {
			return Record{}, false
		}
	}
	if rest[xoui.KeyLen] != ',' {
		return Record{}, false
	}

	field := rest[xoui.KeyLen+1:]
	if strings.ContainsAny(field, lineTerminators) {
		return Record{}, false
	}

	return Record{
		Key:          strings.Clone(rest[:xoui.KeyLen]),
		Organization: strings.Clone(strings.TrimSpace(extractField(field))),
	}, true
}

// extractField 按简化的 CSV 引号规则还原字段值，不做 TrimSpace。
func extractField(field string) string {
	lead := len(field) - len(strings.TrimLeft(field, `"`))

	if lead%2 == 0 {
		v := field[lead:]
		if i := strings.IndexByte(v, ','); i >= 0 {
			v = v[:i]
		}
		return v
	}

	var sb strings.Builder
	sb.Grow(len(field))
	for i := 1; i < len(field); i++ {
		c := field[i]
		if c == '"' {
			if i+1 < len(field) && field[i+1] == '"' {
				sb.WriteByte('"')
				i++
				continue
			}
			break
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
