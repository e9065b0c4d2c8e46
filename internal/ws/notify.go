package ws

import (
	"encoding/json"
	"time"
)

type MatchesUpdatedEvent struct {
	Type           string `json:"type"`
	JobsFetched    int    `json:"jobs_fetched"`
	MatchesWritten int    `json:"matches_written"`
	Timestamp      string `json:"timestamp"`
}

// Notifier pushes a matches_updated event to every connected client after a
// batch run. It satisfies the notifier hook the fetch flow expects.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) MatchRunCompleted(jobsFetched, matchesWritten int) {
	if n == nil || n.hub == nil {
		return
	}

	evt := MatchesUpdatedEvent{
		Type:           "matches_updated",
		JobsFetched:    jobsFetched,
		MatchesWritten: matchesWritten,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
