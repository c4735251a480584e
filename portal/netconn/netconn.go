// Package netconn associates with the Wi-Fi access point.
package netconn

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"portal/portal/secrets"

	"tinygo.org/x/drivers/netlink"
)

// ErrGaveUp is returned when Policy.MaxAttempts is exhausted.
var ErrGaveUp = errors.New("netconn: gave up")

// Link associates with an access point. netlink.Netlinker satisfies it.
type Link interface {
	NetConnect(params *netlink.ConnectParams) error
}

// Policy bounds the association retries.
//
// Every failure is retried the same way: a wrong passphrase and radio noise
// look alike from here.
type Policy struct {
	// MaxAttempts is the number of NetConnect calls before giving up.
	// Zero retries until the context ends.
	MaxAttempts int
	// InitialBackoff is the wait after the first failure; it doubles per
	// failure up to MaxBackoff. Zero retries immediately.
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// DefaultPolicy retries forever with a capped backoff.
var DefaultPolicy = Policy{
	InitialBackoff: 250 * time.Millisecond,
	MaxBackoff:     4 * time.Second,
}

// Backoff returns the wait after the given failure (1-based).
func (p Policy) Backoff(failure int) time.Duration {
	if p.InitialBackoff <= 0 || failure <= 0 {
		return 0
	}
	d := p.InitialBackoff
	for i := 1; i < failure; i++ {
		if d > math.MaxInt64/2 {
			return d
		}
		d *= 2
		if p.MaxBackoff > 0 && d >= p.MaxBackoff {
			return p.MaxBackoff
		}
	}
	if p.MaxBackoff > 0 && d > p.MaxBackoff {
		return p.MaxBackoff
	}
	return d
}

// Connector runs the association loop.
type Connector struct {
	Link   Link
	Policy Policy
	// Logf receives one line per attempt. Optional.
	Logf func(format string, args ...any)
	// Sleep waits between attempts; nil uses a timer bound to ctx.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Connect associates using creds and returns the number of attempts made.
func (c *Connector) Connect(ctx context.Context, creds secrets.Credentials) (int, error) {
	if c.Link == nil {
		return 0, errors.New("netconn: no link")
	}
	params := &netlink.ConnectParams{
		Ssid:       creds.SSID,
		Passphrase: creds.Password,
	}

	var lastErr error
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return attempt - 1, fmt.Errorf("netconn: %w (last error: %v)", err, lastErr)
			}
			return attempt - 1, err
		}

		c.logf("wifi: connecting to %q (attempt %d)", creds.SSID, attempt)
		err := c.Link.NetConnect(params)
		if err == nil {
			c.logf("wifi: connected to %q", creds.SSID)
			return attempt, nil
		}
		lastErr = err
		c.logf("wifi: attempt %d failed: %v", attempt, err)

		if c.Policy.MaxAttempts > 0 && attempt >= c.Policy.MaxAttempts {
			return attempt, fmt.Errorf("%w after %d attempts: %w", ErrGaveUp, attempt, err)
		}
		if d := c.Policy.Backoff(attempt); d > 0 {
			if err := c.sleep(ctx, d); err != nil {
				return attempt, fmt.Errorf("netconn: %w (last error: %v)", err, lastErr)
			}
		}
	}
}

func (c *Connector) logf(format string, args ...any) {
	if c.Logf != nil {
		c.Logf(format, args...)
	}
}

func (c *Connector) sleep(ctx context.Context, d time.Duration) error {
	if c.Sleep != nil {
		return c.Sleep(ctx, d)
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
