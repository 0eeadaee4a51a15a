package dispatch

import (
	"errors"
	"sync"
	"testing"

	"kurz/internal/presence"
	"kurz/internal/user"
	"kurz/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingConn struct {
	mu     sync.Mutex
	events []string
	fail   bool
}

func (c *recordingConn) Send(event string, _ any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("broken pipe")
	}
	c.events = append(c.events, event)
	return nil
}

func TestDispatcher_Multicast(t *testing.T) {
	registry := presence.NewRegistry()
	d := NewDispatcher(registry, &logger.Logger{})

	alice := &recordingConn{}
	bob := &recordingConn{}
	registry.Set("alice@example.com", alice, user.ProfileDTO{})
	registry.Set("bob@example.com", bob, user.ProfileDTO{})

	// carol is offline and simply skipped
	d.Multicast(
		[]string{"alice@example.com", "bob@example.com", "carol@example.com"},
		"/channel/message/receive", map[string]string{"message": "hi"})

	require.Len(t, alice.events, 1)
	require.Len(t, bob.events, 1)
	assert.Equal(t, "/channel/message/receive", alice.events[0])
}

func TestDispatcher_FailedDeliveryDoesNotBlockOthers(t *testing.T) {
	registry := presence.NewRegistry()
	d := NewDispatcher(registry, &logger.Logger{})

	broken := &recordingConn{fail: true}
	healthy := &recordingConn{}
	registry.Set("broken@example.com", broken, user.ProfileDTO{})
	registry.Set("healthy@example.com", healthy, user.ProfileDTO{})

	d.Multicast(
		[]string{"broken@example.com", "healthy@example.com"},
		"/channel/message/receive", nil)

	require.Len(t, healthy.events, 1)
}
