package recent

import (
	"sync"

	"github.com/unkn0wn-root/curseclient/internal/httpclient"
)

// List keeps the most recent outcomes in memory, newest first. Nothing is
// persisted.
type List struct {
	mu    sync.Mutex
	limit int
	items []httpclient.Outcome
}

func New(limit int) *List {
	if limit < 1 {
		limit = 1
	}
	return &List{limit: limit}
}

func (l *List) Add(out httpclient.Outcome) {
	if out == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append([]httpclient.Outcome{out}, l.items...)
	if len(l.items) > l.limit {
		l.items = l.items[:l.limit]
	}
}

func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

func (l *List) Items() []httpclient.Outcome {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]httpclient.Outcome, len(l.items))
	copy(out, l.items)
	return out
}

// LastTwoSuccesses returns the latest success and the one before it.
func (l *List) LastTwoSuccesses() (latest, previous httpclient.Success, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	found := 0
	for _, item := range l.items {
		s, isSuccess := item.(httpclient.Success)
		if !isSuccess {
			continue
		}
		if found == 0 {
			latest = s
		} else {
			previous = s
			return latest, previous, true
		}
		found++
	}
	return latest, previous, false
}
