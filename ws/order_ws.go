package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/entity"
)

// StatusEvent is what tracker clients receive on every status change.
type StatusEvent struct {
	OrderID  string             `json:"orderId"`
	Status   entity.OrderStatus `json:"status"`
	Label    string             `json:"label"`
	Progress float64            `json:"progress"`
	Total    int64              `json:"total"`
}

// OrderHub fans order status events out to tracker connections. A
// client subscribes to one order id, or to "" for everything (the
// courier panel uses that).
type OrderHub struct {
	clients    map[string]map[*websocket.Conn]bool // orderID -> set of conns
	broadcast  chan StatusEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn    *websocket.Conn
	OrderID string
}

func NewOrderHub() *OrderHub {
	return &OrderHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan StatusEvent, 16),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OrderID] == nil {
				h.clients[sub.OrderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OrderID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.OrderID][sub.Conn]; ok {
				delete(h.clients[sub.OrderID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			h.send(ev.OrderID, ev)
			h.send("", ev)
			h.mu.Unlock()
		}
	}
}

// send assumes h.mu is held.
func (h *OrderHub) send(key string, ev StatusEvent) {
	for conn := range h.clients[key] {
		if err := conn.WriteJSON(ev); err != nil {
			log.Printf("ws write error: %v", err)
			conn.Close()
			delete(h.clients[key], conn)
		}
	}
}

// PublishStatus implements services.StatusPublisher. Non-blocking: if
// the hub is saturated the event is dropped, trackers resync on poll.
func (h *OrderHub) PublishStatus(o *entity.Order) {
	ev := StatusEvent{
		OrderID:  o.ID,
		Status:   o.Status,
		Label:    o.Status.Label(),
		Progress: o.Status.Progress(),
		Total:    o.Total,
	}
	select {
	case h.broadcast <- ev:
	default:
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders?orderId=
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	orderID := c.Query("orderId")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, OrderID: orderID}
	h.register <- sub

	// Trackers only listen; the read loop just waits for the close.
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
