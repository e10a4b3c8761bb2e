package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/unkn0wn-root/curseclient/internal/httpclient"
	"github.com/unkn0wn-root/curseclient/internal/request"
)

// Executor is the piece of work an execution unit runs.
type Executor interface {
	Execute(ctx context.Context, snap request.Snapshot) httpclient.Outcome
}

type Dispatcher struct {
	exec   Executor
	out    *Channel
	logger *slog.Logger
}

func New(exec Executor, out *Channel, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{exec: exec, out: out, logger: logger}
}

func (d *Dispatcher) Channel() *Channel { return d.out }

// Spawn runs one execution in its own goroutine and returns at once. The
// goroutine publishes exactly one outcome, converting a panic into a Failure,
// and waits for room rather than drop it.
// It never touches controller state.
func (d *Dispatcher) Spawn(snap request.Snapshot) {
	go d.run(snap)
}

func (d *Dispatcher) run(snap request.Snapshot) {
	var out httpclient.Outcome
	defer func() {
		if r := recover(); r != nil {
			d.logger.Warn("execution panicked", "request_id", snap.ID(), "panic", fmt.Sprint(r))
			out = httpclient.Failure{ID: snap.ID(), Message: fmt.Sprintf("unexpected error: %v", r)}
		}
		if out == nil {
			out = httpclient.Failure{ID: snap.ID(), Message: "unexpected error: no outcome"}
		}
		if !d.out.Publish(out) {
			d.logger.Warn("result channel full, waiting for the controller", "request_id", snap.ID())
			d.out.Deliver(out)
		}
	}()
	out = d.exec.Execute(context.Background(), snap)
}
