package ws

import (
	"log"
	"net/http"
	"sync"

	"nunis-api/poll"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderHub pushes order events to connected dashboards. Admin sockets get
// every event; customer sockets only get status changes for their own
// orders, keyed by the user id the auth middleware resolved.
type OrderHub struct {
	admins     map[*websocket.Conn]bool
	customers  map[uint]map[*websocket.Conn]bool
	broadcast  chan Event
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
}

// Subscription is one authenticated socket.
type Subscription struct {
	Conn   *websocket.Conn
	UserID uint
	Admin  bool
}

// Event is the JSON frame pushed to clients.
type Event struct {
	Type          string              `json:"type"` // "orders"
	NewPending    []poll.Snapshot     `json:"new_pending,omitempty"`
	StatusChanges []poll.StatusChange `json:"status_changes,omitempty"`
	// UserID limits delivery to one customer; zero means admins only.
	UserID uint `json:"-"`
}

func NewOrderHub() *OrderHub {
	return &OrderHub{
		admins:     make(map[*websocket.Conn]bool),
		customers:  make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan Event),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
	}
}

func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if sub.Admin {
				h.admins[sub.Conn] = true
			} else {
				if h.customers[sub.UserID] == nil {
					h.customers[sub.UserID] = make(map[*websocket.Conn]bool)
				}
				h.customers[sub.UserID][sub.Conn] = true
			}
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if sub.Admin {
				if _, ok := h.admins[sub.Conn]; ok {
					delete(h.admins, sub.Conn)
					sub.Conn.Close()
				}
			} else if conns := h.customers[sub.UserID]; conns != nil {
				if _, ok := conns[sub.Conn]; ok {
					delete(conns, sub.Conn)
					sub.Conn.Close()
				}
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			if ev.UserID == 0 {
				for conn := range h.admins {
					if err := conn.WriteJSON(ev); err != nil {
						log.Printf("ws write error: %v", err)
						conn.Close()
						delete(h.admins, conn)
					}
				}
			} else {
				for conn := range h.customers[ev.UserID] {
					if err := conn.WriteJSON(ev); err != nil {
						log.Printf("ws write error: %v", err)
						conn.Close()
						delete(h.customers[ev.UserID], conn)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// NotifyOrders fans a polling diff out to the admin dashboards.
func (h *OrderHub) NotifyOrders(r poll.Result) {
	if r.Empty() {
		return
	}
	h.broadcast <- Event{
		Type:          "orders",
		NewPending:    r.NewPending,
		StatusChanges: r.StatusChanges,
	}
}

// NotifyUser tells one customer their order moved.
func (h *OrderHub) NotifyUser(userID uint, change poll.StatusChange) {
	h.broadcast <- Event{
		Type:          "orders",
		StatusChanges: []poll.StatusChange{change},
		UserID:        userID,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	userIDVal, _ := c.Get("userId")
	userID, _ := userIDVal.(uint)
	roleVal, _ := c.Get("role")
	role, _ := roleVal.(string)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, UserID: userID, Admin: role == "admin"}
	h.register <- sub

	go h.keepAlive(sub)
}

// keepAlive drains the socket so close frames are seen; clients never
// send payloads on this channel.
func (h *OrderHub) keepAlive(sub Subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
