// README: WebSocket endpoint: join-first protocol, ping/pong keepalive, room fan-out.
package realtime

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"mechmatch/internal/types"
)

const (
	joinWait     = 5 * time.Second
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// joinMessage declares the connection's identity. There is no credential
// check beyond the declared id; when both ids are present the mechanic id
// wins.
type joinMessage struct {
	Type       string    `json:"type"`
	MechanicID *types.ID `json:"mechanic_id"`
	UserID     *types.ID `json:"user_id"`
}

// Handler upgrades the connection, reads the join frame, and pumps room
// frames until the peer goes away.
func Handler(reg *Registry, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Error("ws upgrade failed", "err", err)
			return
		}
		defer conn.Close()

		conn.SetReadDeadline(time.Now().Add(joinWait))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"join_timeout"}`))
			return
		}

		var join joinMessage
		_ = json.Unmarshal(msg, &join)
		if join.Type != "join" {
			conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"invalid_join_message"}`))
			return
		}

		var room string
		switch {
		case join.MechanicID != nil:
			room = MechanicRoom(*join.MechanicID)
		case join.UserID != nil:
			room = CustomerRoom(*join.UserID)
		default:
			conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"missing_identity"}`))
			return
		}

		member := reg.Join(room)
		defer reg.Leave(member)

		ack, _ := json.Marshal(map[string]string{"info": "joined " + room})
		conn.WriteMessage(websocket.TextMessage, ack)
		log.Info("ws joined", "room", room)

		conn.SetPongHandler(func(string) error {
			conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		// Reads only detect disconnects; clients send nothing after join.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				conn.SetReadDeadline(time.Now().Add(pongWait))
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				log.Info("ws closed", "room", room)
				return
			case <-ticker.C:
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case frame := <-member.C():
				if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
					log.Warn("ws write failed", "room", room, "err", err)
					return
				}
			}
		}
	}
}
