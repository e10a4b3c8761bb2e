package dispatch

import "github.com/unkn0wn-root/curseclient/internal/httpclient"

// Channel hands outcomes from execution units to the controller. Poll never
// blocks. Publish never blocks either; Deliver waits for room and is what an
// execution unit uses, since its goroutine has nothing else to do.
type Channel struct {
	ch chan httpclient.Outcome
}

// NewChannel returns a channel with room for capacity outcomes. With the
// in-flight rule only one is ever pending, so one slot is enough.
func NewChannel(capacity int) *Channel {
	if capacity < 1 {
		capacity = 1
	}
	return &Channel{ch: make(chan httpclient.Outcome, capacity)}
}

// Publish reports false if the channel is full.
func (c *Channel) Publish(out httpclient.Outcome) bool {
	select {
	case c.ch <- out:
		return true
	default:
		return false
	}
}

// Deliver waits until the outcome is queued.
func (c *Channel) Deliver(out httpclient.Outcome) {
	c.ch <- out
}

func (c *Channel) Poll() (httpclient.Outcome, bool) {
	select {
	case out := <-c.ch:
		return out, true
	default:
		return nil, false
	}
}

func (c *Channel) Len() int { return len(c.ch) }
