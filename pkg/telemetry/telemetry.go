// Package telemetry 提供 OpenTelemetry 链路追踪
//
// 只有设置了 OTEL_EXPORTER_OTLP_ENDPOINT 时才会启用 OTLP/HTTP 导出，
// 否则全局 TracerProvider 保持默认的 no-op 实现，span 不产生任何开销。
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "valley"
	serviceVersion = "0.1.0"

	// EndpointEnv 导出端点环境变量（OTel 标准名称）
	EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
)

// Enabled 是否配置了导出端点
func Enabled() bool {
	return os.Getenv(EndpointEnv) != ""
}

// Setup 初始化 OTLP/HTTP 导出器并注册为全局 TracerProvider
// 导出器从标准 OTEL_* 环境变量读取端点和请求头
//
// 返回:
//   - shutdown: 退出前调用以刷新未发送的 span；未启用时为空操作
//   - err: 导出器或资源创建失败
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	if !Enabled() {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("host.name", hostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer 返回指定组件的 tracer
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer("valley/" + name)
}

// NoopTracer 返回不记录任何数据的 tracer（测试用）
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer("valley/noop")
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}
