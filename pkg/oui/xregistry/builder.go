package xregistry

import (
	"fmt"
	"maps"

	"github.com/omeyang/xoui/pkg/oui/xoui"
)

// Builder 累积注册表条目。
// Builder 不是并发安全的；构建完成后调用 [Builder.Build] 获取只读快照。
type Builder struct {
	entries map[string]string
}

// NewBuilder 创建 Builder。sizeHint 为预期条目数，可为 0。
func NewBuilder(sizeHint int) *Builder {
	return &Builder{entries: make(map[string]string, max(sizeHint, 0))}
}

// Put 写入一条记录；键已存在时覆盖旧值（last write wins）。
// key 必须是规范键，否则返回 [ErrInvalidKey]。
func (b *Builder) Put(key, organization string) error {
	if _, err := xoui.ParseKey(key); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	b.entries[key] = organization
	return nil
}

// Merge 按顺序写入另一组条目，效果等同于依次调用 Put。
// 用于合并并行解析的分段结果：调用方须按源顺序合并以保持 last write wins。
func (b *Builder) Merge(records []Entry) error {
	for _, e := range records {
		if err := b.Put(e.Key, e.Organization); err != nil {
			return err
		}
	}
	return nil
}

// Len 返回当前条目数。
func (b *Builder) Len() int {
	return len(b.entries)
}

// Build 返回当前内容的不可变快照。
// 快照与 Builder 不共享存储，之后对 Builder 的写入不会影响已返回的 Registry。
func (b *Builder) Build() *Registry {
	return newRegistry(maps.Clone(b.entries))
}
