// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlog: 结构化日志，基于 log/slog 扩展
//   - xrotate: 日志文件轮转
//
// 追踪和指标直接使用 OpenTelemetry API，由调用方注入 TracerProvider / MeterProvider。
package observability
