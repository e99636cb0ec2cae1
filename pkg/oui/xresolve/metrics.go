package xresolve

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	instrumentationName = "github.com/omeyang/xoui/xresolve"

	// metricLookupTotal 查询次数计数器
	metricLookupTotal = "xresolve.lookup.total"
)

// 查询输入形式
const (
	FormText  = "text"
	FormBytes = "bytes"
)

// 查询结果
const (
	ResultHit     = "hit"
	ResultMiss    = "miss"
	ResultInvalid = "invalid"
)

// 属性集合固定为 form × result，预先构造避免热路径分配
type lookupAttrs struct {
	hit, miss, invalid metric.MeasurementOption
}

func newLookupAttrs(form string) lookupAttrs {
	set := func(result string) metric.MeasurementOption {
		return metric.WithAttributeSet(attribute.NewSet(
			attribute.String("form", form),
			attribute.String("result", result),
		))
	}
	return lookupAttrs{hit: set(ResultHit), miss: set(ResultMiss), invalid: set(ResultInvalid)}
}

type metrics struct {
	lookups metric.Int64Counter
	text    lookupAttrs
	bytes   lookupAttrs
}

// newMetrics provider 为 nil 时返回 nil，表示不采集。
func newMetrics(provider metric.MeterProvider) (*metrics, error) {
	if provider == nil {
		return nil, nil
	}
	meter := provider.Meter(instrumentationName)
	lookups, err := meter.Int64Counter(metricLookupTotal,
		metric.WithDescription("OUI 查询次数"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, fmt.Errorf("xresolve: create counter failed: %w", err)
	}
	return &metrics{
		lookups: lookups,
		text:    newLookupAttrs(FormText),
		bytes:   newLookupAttrs(FormBytes),
	}, nil
}

func (m *metrics) record(form string, valid, found bool) {
	if m == nil {
		return
	}
	a := &m.text
	if form == FormBytes {
		a = &m.bytes
	}
	opt := a.miss
	switch {
	case !valid:
		opt = a.invalid
	case found:
		opt = a.hit
	}
	m.lookups.Add(context.Background(), 1, opt)
}
