// README: Concurrency-safe room registry with fire-and-forget emits.
package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// sendBuffer bounds per-member backlog; a member that stops draining loses
// frames rather than blocking the emitter.
const sendBuffer = 16

type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Member is one connected subscriber of a single room.
type Member struct {
	room string
	send chan []byte
}

// C yields the serialized frames queued for this member.
func (m *Member) C() <-chan []byte {
	return m.send
}

// Registry owns room membership for the process lifetime. Nothing is
// persisted: members not connected at emit time never see the event.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]map[*Member]struct{}
	log   *slog.Logger
}

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		rooms: make(map[string]map[*Member]struct{}),
		log:   log,
	}
}

// Join adds a new member to the room and returns its handle. Joining is
// idempotent per connection because each connection joins exactly once.
func (r *Registry) Join(room string) *Member {
	m := &Member{room: room, send: make(chan []byte, sendBuffer)}
	r.mu.Lock()
	defer r.mu.Unlock()
	members, ok := r.rooms[room]
	if !ok {
		members = make(map[*Member]struct{})
		r.rooms[room] = members
	}
	members[m] = struct{}{}
	return m
}

func (r *Registry) Leave(m *Member) {
	r.mu.Lock()
	defer r.mu.Unlock()
	members, ok := r.rooms[m.room]
	if !ok {
		return
	}
	delete(members, m)
	if len(members) == 0 {
		delete(r.rooms, m.room)
	}
}

// Emit broadcasts the event to every current member of the room, at most once
// each. Delivery failures are logged and swallowed; callers treat the channel
// as best-effort.
func (r *Registry) Emit(room, event string, payload any) {
	frame, err := json.Marshal(envelope{Event: event, Data: payload})
	if err != nil {
		r.log.Error("realtime payload marshal failed", "room", room, "event", event, "err", err)
		return
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for m := range r.rooms[room] {
		select {
		case m.send <- frame:
		default:
			r.log.Warn("realtime frame dropped", "room", room, "event", event)
		}
	}
}

// MemberCount reports current room occupancy.
func (r *Registry) MemberCount(room string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms[room])
}
