package xresolve

import (
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func BenchmarkName(b *testing.B) {
	reg := testRegistry(b)
	b.ReportAllocs()
	for b.Loop() {
		_, _ = Name(reg, "00:CD:FE:11:22:33")
	}
}

func BenchmarkResolver_WithMetrics(b *testing.B) {
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewManualReader()))
	r, err := New(testRegistry(b), WithMeterProvider(mp))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = r.Name("00CDFE")
		}
	})
}
