package ws

import (
	"testing"
	"time"
)

func waitForClientCount(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		hub.mutex.RLock()
		n := len(hub.clients)
		hub.mutex.RUnlock()
		if n == want {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("expected %d clients, still at %d", want, n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHub_BroadcastDropsSlowClientWithoutStalling(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	fast := NewClient(hub, nil)
	slow := NewClient(hub, nil)
	hub.Register(fast)
	hub.Register(slow)
	waitForClientCount(t, hub, 2)

	for i := 0; i < cap(slow.send); i++ {
		slow.send <- []byte("backlog")
	}

	hub.Broadcast([]byte("event"))

	select {
	case msg := <-fast.send:
		if string(msg) != "event" {
			t.Fatalf("fast client got %q", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("fast client never received the broadcast")
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		hub.mutex.RLock()
		_, stillThere := hub.clients[slow]
		hub.mutex.RUnlock()
		if !stillThere {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("slow client was not dropped")
		}
		time.Sleep(5 * time.Millisecond)
	}

	// The hub loop must still be responsive after dropping the client.
	hub.Broadcast([]byte("followup"))
	select {
	case msg := <-fast.send:
		if string(msg) != "followup" {
			t.Fatalf("fast client got %q", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("hub stalled after dropping a slow client")
	}
}
