package xregistry

import (
	"crypto/sha1" //nolint:gosec // 摘要格式沿用历史 oui.properties，非安全用途
	"encoding/hex"
	"iter"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Entry 是一条注册表记录。
type Entry struct {
	// Key 规范键，6 位大写十六进制。
	Key string
	// Organization 组织名称，可包含逗号、引号和任意 Unicode 字符。
	Organization string
}

// Registry 是不可变的 OUI 注册表。
//
// 所有方法并发安全。nil *Registry 表现为空表。
type Registry struct {
	entries     map[string]string
	keys        []string
	fingerprint uint64
}

func newRegistry(entries map[string]string) *Registry {
	if entries == nil {
		entries = map[string]string{}
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	r := &Registry{entries: entries, keys: keys}
	r.fingerprint = r.computeFingerprint()
	return r
}

// FromMap 从已有映射创建注册表，键必须全部是规范键。
// 传入的 map 会被复制。
func FromMap(m map[string]string) (*Registry, error) {
	b := NewBuilder(len(m))
	for k, v := range m {
		if err := b.Put(k, v); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// Lookup 按规范键精确查找组织名称。
func (r *Registry) Lookup(key string) (string, bool) {
	if r == nil {
		return "", false
	}
	org, ok := r.entries[key]
	return org, ok
}

// Len 返回条目数。
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// Keys 返回按升序排列的键的副本。
func (r *Registry) Keys() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.keys)
}

// All 按键升序迭代所有条目。
func (r *Registry) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if r == nil {
			return
		}
		for _, k := range r.keys {
			if !yield(k, r.entries[k]) {
				return
			}
		}
	}
}

// Entries 按键升序返回所有条目。
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, r.Len())
	for k, v := range r.All() {
		out = append(out, Entry{Key: k, Organization: v})
	}
	return out
}

// Fingerprint 返回内容指纹；内容相同的注册表指纹相同。
func (r *Registry) Fingerprint() uint64 {
	if r == nil {
		return emptyFingerprint
	}
	return r.fingerprint
}

// Digest 返回按键升序依次写入 key、organization 后的 SHA-1 十六进制摘要。
func (r *Registry) Digest() string {
	h := sha1.New() //nolint:gosec // 见 import 注释
	for k, v := range r.All() {
		h.Write([]byte(k))
		h.Write([]byte(v))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// emptyFingerprint 空注册表的指纹。
var emptyFingerprint = xxhash.Sum64(nil)

func (r *Registry) computeFingerprint() uint64 {
	d := xxhash.New()
	for _, k := range r.keys {
		// 键定长，组织名以 0x1e 结尾，避免不同切分得到相同字节流
		_, _ = d.WriteString(k)
		_, _ = d.WriteString(r.entries[k])
		_, _ = d.Write([]byte{0x1e})
	}
	return d.Sum64()
}
