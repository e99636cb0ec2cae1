package xresolve

import (
	"net"

	"go.opentelemetry.io/otel/metric"

	"github.com/omeyang/xoui/pkg/oui/xoui"
	"github.com/omeyang/xoui/pkg/oui/xregistry"
)

// Option Resolver 配置选项
type Option func(*config)

type config struct {
	meterProvider metric.MeterProvider
}

// WithMeterProvider 按 form（text/bytes）与 result（hit/miss/invalid）
// 记录 xresolve.lookup.total 计数。nil 表示不采集。
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) { c.meterProvider = mp }
}

// Resolver 绑定一个 Table 的查询器，并发安全。
type Resolver struct {
	table   Table
	metrics *metrics
}

// New 创建 Resolver。table 为 nil 时所有查询返回未找到。
func New(table Table, opts ...Option) (*Resolver, error) {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	m, err := newMetrics(cfg.meterProvider)
	if err != nil {
		return nil, err
	}
	return &Resolver{table: table, metrics: m}, nil
}

// Name 见包级函数 [Name]。
func (r *Resolver) Name(addr string) (string, bool) {
	e, ok := r.Entry(addr)
	return e.Organization, ok
}

// NameBytes 见包级函数 [NameBytes]。
func (r *Resolver) NameBytes(addr []byte) (string, bool) {
	o, err := xoui.FromBytes(addr)
	e, ok := r.lookup(FormBytes, o, err == nil)
	return e.Organization, ok
}

// NameHardwareAddr 以硬件地址的前 3 字节查找组织名。
func (r *Resolver) NameHardwareAddr(hw net.HardwareAddr) (string, bool) {
	return r.NameBytes(hw)
}

// Entry 与 Name 相同，但同时返回规范键。
func (r *Resolver) Entry(addr string) (xregistry.Entry, bool) {
	o, err := xoui.ParsePrefix(addr)
	return r.lookup(FormText, o, err == nil)
}

func (r *Resolver) lookup(form string, o xoui.OUI, valid bool) (xregistry.Entry, bool) {
	if !valid || r.table == nil {
		r.metrics.record(form, false, false)
		return xregistry.Entry{}, false
	}
	key := o.Key()
	org, ok := r.table.Lookup(key)
	r.metrics.record(form, true, ok)
	if !ok {
		return xregistry.Entry{}, false
	}
	return xregistry.Entry{Key: key, Organization: org}, true
}
