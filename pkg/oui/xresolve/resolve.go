package xresolve

import (
	"github.com/omeyang/xoui/pkg/oui/xoui"
)

// Table 规范键到组织名的只读映射。
//
// *xregistry.Registry 与 *xsource.Holder 实现了该接口。实现必须支持并发读。
type Table interface {
	Lookup(key string) (string, bool)
}

// Name 解析文本地址并查找组织名。
//
// addr 的前缀须为 XX[sep]XX[sep]XX（sep 为可选的 ':' 或 '-'），第三组之后的内容忽略。
func Name(t Table, addr string) (string, bool) {
	if t == nil {
		return "", false
	}
	o, err := xoui.ParsePrefix(addr)
	if err != nil {
		return "", false
	}
	return t.Lookup(o.Key())
}

// NameBytes 以 addr 的前 3 字节为 OUI 查找组织名。
func NameBytes(t Table, addr []byte) (string, bool) {
	if t == nil {
		return "", false
	}
	o, err := xoui.FromBytes(addr)
	if err != nil {
		return "", false
	}
	return t.Lookup(o.Key())
}
