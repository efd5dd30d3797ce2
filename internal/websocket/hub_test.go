package websocket

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quietLogger struct{}

func (quietLogger) Debug(module, message string, details map[string]interface{}) {}
func (quietLogger) Info(module, message string, details map[string]interface{})  {}
func (quietLogger) Warn(module, message string, details map[string]interface{})  {}
func (quietLogger) Error(module, message string, details map[string]interface{}) {}
func (quietLogger) Sync() error                                                  { return nil }

func newTestHub() *Hub {
	hub := NewHub(nil, quietLogger{})
	go hub.Run()
	return hub
}

func recvFrame(t *testing.T, ch chan []byte) []byte {
	t.Helper()
	select {
	case data, ok := <-ch:
		require.True(t, ok, "send channel closed unexpectedly")
		return data
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for frame")
		return nil
	}
}

func TestHubBroadcastToGroup(t *testing.T) {
	hub := newTestHub()
	groupA := uuid.New()
	groupB := uuid.New()

	inGroup := &Client{Hub: hub, GroupID: groupA, UserID: "u1", Send: make(chan []byte, 4)}
	sameUser := &Client{Hub: hub, GroupID: groupA, UserID: "u1", Send: make(chan []byte, 4)}
	elsewhere := &Client{Hub: hub, GroupID: groupB, UserID: "u2", Send: make(chan []byte, 4)}
	hub.register <- inGroup
	hub.register <- sameUser
	hub.register <- elsewhere

	hub.BroadcastToGroup(groupA, []byte("hello"))

	// Every connection of the group receives the frame, multi-device
	// included; other groups stay quiet.
	assert.Equal(t, []byte("hello"), recvFrame(t, inGroup.Send))
	assert.Equal(t, []byte("hello"), recvFrame(t, sameUser.Send))
	select {
	case <-elsewhere.Send:
		t.Fatal("frame leaked into another group")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubEvictsSlowClientWithoutDoubleClose(t *testing.T) {
	hub := newTestHub()
	group := uuid.New()

	// Unbuffered Send with no reader: the first delivery cannot complete
	// and must evict the connection.
	slow := &Client{Hub: hub, GroupID: group, UserID: "slow", Send: make(chan []byte)}
	healthy := &Client{Hub: hub, GroupID: group, UserID: "healthy", Send: make(chan []byte, 4)}
	hub.register <- slow
	hub.register <- healthy

	hub.BroadcastToGroup(group, []byte("one"))
	assert.Equal(t, []byte("one"), recvFrame(t, healthy.Send))

	// The slow client's channel was closed exactly once by the eviction.
	_, ok := <-slow.Send
	assert.False(t, ok)

	// The teardown unregister for an already-evicted client is a no-op
	// rather than a second close.
	hub.unregister <- slow

	hub.BroadcastToGroup(group, []byte("two"))
	assert.Equal(t, []byte("two"), recvFrame(t, healthy.Send))
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := newTestHub()
	group := uuid.New()

	client := &Client{Hub: hub, GroupID: group, UserID: "u1", Send: make(chan []byte, 1)}
	hub.register <- client
	hub.unregister <- client

	select {
	case _, ok := <-client.Send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel not closed on unregister")
	}

	// Broadcasting to the emptied group must not block or panic.
	hub.BroadcastToGroup(group, []byte("ignored"))
}
