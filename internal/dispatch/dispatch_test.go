package dispatch

import (
	"context"
	"testing"
	"time"

	"github.com/unkn0wn-root/curseclient/internal/httpclient"
	"github.com/unkn0wn-root/curseclient/internal/request"
)

type execFunc func(ctx context.Context, snap request.Snapshot) httpclient.Outcome

func (f execFunc) Execute(ctx context.Context, snap request.Snapshot) httpclient.Outcome {
	return f(ctx, snap)
}

func waitOutcome(t *testing.T, ch *Channel) httpclient.Outcome {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if out, ok := ch.Poll(); ok {
			return out
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for outcome")
	return nil
}

func TestPollEmptyIsNonBlocking(t *testing.T) {
	ch := NewChannel(1)
	if out, ok := ch.Poll(); ok || out != nil {
		t.Fatalf("expected empty poll, got %#v", out)
	}
}

func TestPublishFullChannelDoesNotBlock(t *testing.T) {
	ch := NewChannel(0)
	if !ch.Publish(httpclient.Failure{Message: "a"}) {
		t.Fatalf("expected first publish to succeed")
	}
	if ch.Publish(httpclient.Failure{Message: "b"}) {
		t.Fatalf("expected second publish to report full channel")
	}
	if ch.Len() != 1 {
		t.Fatalf("expected one pending outcome, got %d", ch.Len())
	}
}

func TestSpawnPublishesOutcome(t *testing.T) {
	ch := NewChannel(1)
	d := New(execFunc(func(_ context.Context, snap request.Snapshot) httpclient.Outcome {
		return httpclient.Success{ID: snap.ID(), StatusCode: 204}
	}), ch, nil)

	snap := request.NewDraft().Snapshot()
	d.Spawn(snap)

	out := waitOutcome(t, ch)
	success, ok := out.(httpclient.Success)
	if !ok || success.ID != snap.ID() || success.StatusCode != 204 {
		t.Fatalf("unexpected outcome %#v", out)
	}
	if ch.Len() != 0 {
		t.Fatalf("expected exactly one outcome")
	}
}

func TestSpawnConvertsPanicToFailure(t *testing.T) {
	ch := NewChannel(1)
	d := New(execFunc(func(context.Context, request.Snapshot) httpclient.Outcome {
		panic("kaboom")
	}), ch, nil)

	snap := request.NewDraft().Snapshot()
	d.Spawn(snap)

	out := waitOutcome(t, ch)
	failure, ok := out.(httpclient.Failure)
	if !ok || failure.ID != snap.ID() || failure.Message != "unexpected error: kaboom" {
		t.Fatalf("unexpected outcome %#v", out)
	}
}

func TestSpawnNilOutcomeStillPublishes(t *testing.T) {
	ch := NewChannel(1)
	d := New(execFunc(func(context.Context, request.Snapshot) httpclient.Outcome {
		return nil
	}), ch, nil)
	d.Spawn(request.NewDraft().Snapshot())
	if _, ok := waitOutcome(t, ch).(httpclient.Failure); !ok {
		t.Fatalf("expected failure for missing outcome")
	}
}

func TestSpawnWaitsForRoomInsteadOfDropping(t *testing.T) {
	ch := NewChannel(1)
	if !ch.Publish(httpclient.Failure{ID: "stale", Message: "first"}) {
		t.Fatalf("expected seed publish to succeed")
	}

	done := make(chan struct{})
	d := New(execFunc(func(_ context.Context, snap request.Snapshot) httpclient.Outcome {
		defer close(done)
		return httpclient.Success{ID: snap.ID(), StatusCode: 200}
	}), ch, nil)
	snap := request.NewDraft().Snapshot()
	d.Spawn(snap)
	<-done

	first, ok := ch.Poll()
	if !ok || first.RequestID() != "stale" {
		t.Fatalf("expected the seeded outcome first, got %#v", first)
	}
	out := waitOutcome(t, ch)
	if out.RequestID() != snap.ID() {
		t.Fatalf("expected the spawned outcome to be delivered, got %#v", out)
	}
}
