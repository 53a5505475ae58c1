package telemetry

import (
	"context"
	"testing"
)

// TestSetupDisabled 未设置端点时 Setup 返回空操作的 shutdown
func TestSetupDisabled(t *testing.T) {
	t.Setenv(EndpointEnv, "")

	shutdown, err := Setup(context.Background())
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown failed: %v", err)
	}
}

func TestNoopTracer(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "test")
	if span.SpanContext().IsValid() {
		t.Error("noop tracer should produce invalid span contexts")
	}
	span.End()
}
