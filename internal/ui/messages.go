package ui

import "time"

type statusLevel int

const (
	statusInfo statusLevel = iota
	statusWarn
	statusError
	statusSuccess
)

type statusMsg struct {
	text  string
	level statusLevel
}

// pollMsg fires every config.PollInterval and drains the result channel.
type pollMsg time.Time

type responseTab int

const (
	tabBody responseTab = iota
	tabHeaders
	tabDiff
	tabCount
)

func (t responseTab) String() string {
	switch t {
	case tabBody:
		return "Body"
	case tabHeaders:
		return "Headers"
	case tabDiff:
		return "Diff"
	default:
		return "?"
	}
}
