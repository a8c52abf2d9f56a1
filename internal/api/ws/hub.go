package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"connectn/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeWait = 10 * time.Second

// Message is the envelope for both directions.
type Message struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data,omitempty"`
}

type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *client) send(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(v)
}

type Hub struct {
	mu          sync.RWMutex
	rooms       map[string]map[*client]struct{}
	roomManager RoomManager
	log         *zap.Logger
}

func NewHub(roomManager RoomManager, log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		rooms:       make(map[string]map[*client]struct{}),
		roomManager: roomManager,
		log:         log.Named("ws"),
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}
	if _, ok := h.roomManager.Get(roomCode); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("upgrade failed", zap.String("room", roomCode), zap.Error(err))
		return
	}
	cl := &client{conn: conn}
	h.join(roomCode, cl)
	defer h.leave(roomCode, cl)

	// snapshot after joining so no broadcast falls between the two
	st, ok := h.roomManager.Get(roomCode)
	if !ok {
		return
	}
	h.log.Debug("client joined", zap.String("room", roomCode))
	if err := cl.send(envelope("state", st)); err != nil {
		return
	}

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug("read failed", zap.String("room", roomCode), zap.Error(err))
			}
			return
		}
		h.dispatch(roomCode, cl, msg)
	}
}

// dispatch applies one inbound action. Accepted actions reach every client
// through the manager's broadcast; rejected ones are dropped.
func (h *Hub) dispatch(roomCode string, cl *client, msg Message) {
	var act shared.CellAction
	if len(msg.Data) > 0 {
		if err := json.Unmarshal(msg.Data, &act); err != nil {
			h.log.Debug("bad payload", zap.String("room", roomCode), zap.String("action", msg.Action), zap.Error(err))
			return
		}
	}

	var err error
	switch msg.Action {
	case "activate", "hover_enter", "hover_leave":
		if act.CellID == nil {
			h.log.Debug("missing cellId", zap.String("room", roomCode), zap.String("action", msg.Action))
			return
		}
		switch msg.Action {
		case "activate":
			_, err = h.roomManager.Activate(roomCode, *act.CellID)
		case "hover_enter":
			_, err = h.roomManager.Hover(roomCode, *act.CellID, true)
		default:
			_, err = h.roomManager.Hover(roomCode, *act.CellID, false)
		}
	case "new_game":
		_, err = h.roomManager.NewGame(roomCode)
	case "ping":
		_ = cl.send(Message{Action: "pong"})
	default:
		h.log.Debug("unknown action", zap.String("room", roomCode), zap.String("action", msg.Action))
	}
	if err != nil {
		h.log.Debug("action ignored", zap.String("room", roomCode), zap.String("action", msg.Action), zap.Error(err))
	}
}

func (h *Hub) join(roomCode string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*client]struct{})
	}
	h.rooms[roomCode][cl] = struct{}{}
}

func (h *Hub) leave(roomCode string, cl *client) {
	h.mu.Lock()
	if clients, ok := h.rooms[roomCode]; ok {
		delete(clients, cl)
		if len(clients) == 0 {
			delete(h.rooms, roomCode)
		}
	}
	h.mu.Unlock()
	_ = cl.conn.Close()
}

// Clients reports how many connections are subscribed to roomCode.
func (h *Hub) Clients(roomCode string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomCode])
}

func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	if h == nil {
		return
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.rooms[roomCode]))
	for cl := range h.rooms[roomCode] {
		clients = append(clients, cl)
	}
	h.mu.RUnlock()

	message := envelope(action, data)
	for _, cl := range clients {
		if err := cl.send(message); err != nil {
			h.log.Debug("send failed", zap.String("room", roomCode), zap.Error(err))
			h.leave(roomCode, cl)
		}
	}
}

func envelope(action string, data interface{}) map[string]interface{} {
	return map[string]interface{}{
		"action": action,
		"data":   data,
	}
}
