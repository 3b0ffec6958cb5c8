// README: Room registry delivery tests.
package realtime

import (
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
)

func testRegistry() *Registry {
	return NewRegistry(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func receive(t *testing.T, m *Member) envelope {
	t.Helper()
	select {
	case frame := <-m.C():
		var env envelope
		if err := json.Unmarshal(frame, &env); err != nil {
			t.Fatalf("unmarshal frame: %v", err)
		}
		return env
	default:
		t.Fatal("no frame queued")
	}
	return envelope{}
}

func TestEmitReachesRoomMembersOnly(t *testing.T) {
	reg := testRegistry()
	mech := reg.Join(MechanicRoom(5))
	other := reg.Join(MechanicRoom(8))
	cust := reg.Join(CustomerRoom(1))

	reg.Emit(MechanicRoom(5), EventNewBooking, map[string]any{"id": 42})

	env := receive(t, mech)
	if env.Event != EventNewBooking {
		t.Errorf("event = %s, want %s", env.Event, EventNewBooking)
	}
	select {
	case <-mech.C():
		t.Error("member received a second frame")
	default:
	}
	select {
	case <-other.C():
		t.Error("mechanic:8 received a frame for mechanic:5")
	default:
	}
	select {
	case <-cust.C():
		t.Error("customer room received a mechanic-room frame")
	default:
	}
}

func TestEmitToEmptyRoomIsNoOp(t *testing.T) {
	reg := testRegistry()
	reg.Emit(MechanicRoom(99), EventBookingUpdated, map[string]any{"id": 1})
}

func TestLeaveStopsDelivery(t *testing.T) {
	reg := testRegistry()
	m := reg.Join(CustomerRoom(1))
	reg.Leave(m)

	reg.Emit(CustomerRoom(1), EventBookingUpdated, map[string]any{"id": 1})

	select {
	case <-m.C():
		t.Error("member received a frame after leaving")
	default:
	}
	if got := reg.MemberCount(CustomerRoom(1)); got != 0 {
		t.Errorf("member count = %d, want 0", got)
	}
}

// A member that stops draining loses frames without blocking the emitter.
func TestEmitDropsOnFullBuffer(t *testing.T) {
	reg := testRegistry()
	m := reg.Join(MechanicRoom(1))

	for i := 0; i < sendBuffer+10; i++ {
		reg.Emit(MechanicRoom(1), EventBookingUpdated, map[string]any{"seq": i})
	}

	queued := 0
	for {
		select {
		case <-m.C():
			queued++
			continue
		default:
		}
		break
	}
	if queued != sendBuffer {
		t.Errorf("queued frames = %d, want %d", queued, sendBuffer)
	}
}

func TestConcurrentJoinEmitLeave(t *testing.T) {
	reg := testRegistry()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			m := reg.Join(MechanicRoom(int64(i % 4)))
			reg.Leave(m)
		}(i)
		go func(i int) {
			defer wg.Done()
			reg.Emit(MechanicRoom(int64(i%4)), EventBookingUpdated, map[string]any{"seq": i})
		}(i)
	}
	wg.Wait()
}

func TestRoomNames(t *testing.T) {
	if got, want := MechanicRoom(7), "mechanic:7"; got != want {
		t.Errorf("MechanicRoom = %q, want %q", got, want)
	}
	if got, want := CustomerRoom(3), "customer:3"; got != want {
		t.Errorf("CustomerRoom = %q, want %q", got, want)
	}
	if MechanicRoom(1) == CustomerRoom(1) {
		t.Error("rooms collide for id 1")
	}
}
