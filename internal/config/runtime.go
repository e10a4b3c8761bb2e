package config

import (
	"time"

	"github.com/unkn0wn-root/curseclient/internal/errdef"
)

// Fixed runtime parameters of the request loop. Settings cannot change them.
const (
	PollInterval   = 100 * time.Millisecond
	RequestTimeout = 5 * time.Second
	MinColumns     = 80
	MinRows        = 24
	RecentLimit    = 10
)

const TooSmallMessage = "Terminal too small! Please resize to at least 80x24"

// CheckGeometry rejects terminals smaller than MinColumns x MinRows.
func CheckGeometry(cols, rows int) error {
	if cols < MinColumns || rows < MinRows {
		return errdef.New(errdef.CodeConfig, "%s (have %dx%d)", TooSmallMessage, cols, rows)
	}
	return nil
}
