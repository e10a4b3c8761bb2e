package httpclient

import (
	"errors"
	"net"
	"syscall"
)

// ConnectionFailedMessage replaces transport errors that mean the host could
// not be reached at all.
const ConnectionFailedMessage = "Connection failed: max retries exceeded. Check URL or network."

// transportMessage turns a transport error into the text a Failure carries.
// Unreachable hosts, including a timeout before any connection was made,
// collapse to ConnectionFailedMessage. Anything else, such as a read timeout
// or a bad scheme, keeps its own description.
func transportMessage(err error, connected bool) string {
	if isConnectionFailure(err) || (!connected && isTimeout(err)) {
		return ConnectionFailedMessage
	}
	return err.Error()
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isConnectionFailure(err error) bool {
	if err == nil {
		return false
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}
	if isTimeout(err) {
		return false
	}
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH) {
		return true
	}
	return false
}
