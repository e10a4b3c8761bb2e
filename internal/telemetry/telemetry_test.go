package telemetry

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecorded(t *testing.T) (Instrumenter, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	inst, err := New(
		Config{ServiceName: "curseclient-test", Version: "test"},
		WithSpanProcessor(recorder),
	)
	if err != nil {
		t.Fatalf("New instrumenter: %v", err)
	}
	t.Cleanup(func() {
		_ = inst.Shutdown(context.Background())
	})
	return inst, recorder
}

func TestInstrumenterRecordsRequestSpan(t *testing.T) {
	inst, recorder := newRecorded(t)

	httpReq, err := http.NewRequest(http.MethodGet, "https://example.com/api/health?x=1", nil)
	if err != nil {
		t.Fatalf("build http request: %v", err)
	}
	_, span := inst.Start(context.Background(), RequestStart{RequestID: "req-1", HTTPRequest: httpReq})
	span.End(RequestResult{StatusCode: 200, Duration: 42 * time.Millisecond})

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	ro := spans[0]
	if got := ro.Name(); got != "GET example.com" {
		t.Fatalf("unexpected span name %q", got)
	}
	assertAttribute(t, ro, "curseclient.request.id", "req-1")
	assertAttribute(t, ro, "http.method", "GET")
	assertAttribute(t, ro, "http.target", "/api/health?x=1")
	assertAttribute(t, ro, "curseclient.duration_ms", int64(42))
	if ro.Status().Code != codes.Ok {
		t.Fatalf("expected ok status, got %v", ro.Status().Code)
	}
}

func TestInstrumenterMarksFailures(t *testing.T) {
	inst, recorder := newRecorded(t)

	httpReq, _ := http.NewRequest(http.MethodPost, "http://localhost:1/items", nil)
	_, span := inst.Start(context.Background(), RequestStart{HTTPRequest: httpReq})
	span.End(RequestResult{StatusCode: 404})
	_, span = inst.Start(context.Background(), RequestStart{HTTPRequest: httpReq})
	span.End(RequestResult{Err: errors.New("refused")})

	spans := recorder.Ended()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if spans[0].Status().Code != codes.Error || spans[0].Status().Description != "HTTP 404" {
		t.Fatalf("expected 404 to mark span error, got %+v", spans[0].Status())
	}
	if spans[1].Status().Code != codes.Error || spans[1].Status().Description != "refused" {
		t.Fatalf("expected transport error status, got %+v", spans[1].Status())
	}
}

func TestNewWithoutEndpointIsNoop(t *testing.T) {
	inst, err := New(Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := inst.(noopInstrumenter); !ok {
		t.Fatalf("expected noop instrumenter, got %T", inst)
	}
	ctx := context.Background()
	got, span := inst.Start(ctx, RequestStart{})
	if got != ctx {
		t.Fatalf("expected context passthrough")
	}
	span.End(RequestResult{StatusCode: 500})
}

func assertAttribute(t *testing.T, span sdktrace.ReadOnlySpan, key string, want any) {
	t.Helper()
	for _, attr := range span.Attributes() {
		if string(attr.Key) != key {
			continue
		}
		switch v := want.(type) {
		case string:
			if attr.Value.AsString() == v {
				return
			}
		case int64:
			if attr.Value.AsInt64() == v {
				return
			}
		}
		t.Fatalf("attribute %s mismatch: got %v, want %v", key, attr.Value, want)
	}
	t.Fatalf("attribute %s not found", key)
}
