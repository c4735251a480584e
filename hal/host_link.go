//go:build !tinygo

package hal

import (
	"errors"
	"fmt"
	"sync"

	"tinygo.org/x/drivers/netlink"
)

// ErrAssociation is returned by the simulated link while it is told to fail.
var ErrAssociation = errors.New("wifi: association failed")

// hostLink stands in for the Wi-Fi co-processor; the host is already online.
type hostLink struct {
	mu       sync.Mutex
	failures int
	attempts int
	ssid     string
	logger   Logger
}

func (l *hostLink) NetConnect(params *netlink.ConnectParams) error {
	if params == nil {
		return fmt.Errorf("%w: nil params", ErrAssociation)
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.attempts++
	if l.failures > 0 {
		l.failures--
		return fmt.Errorf("%w: simulated (%d left)", ErrAssociation, l.failures)
	}
	l.ssid = params.Ssid
	if l.logger != nil {
		l.logger.WriteLineString(fmt.Sprintf("link: associated with %q (simulated)", params.Ssid))
	}
	return nil
}
