package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// TruckHub fans truck GPS updates out to every connected dashboard client.
type TruckHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan LocationUpdate
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

// LocationUpdate is what dashboards receive whenever a driver reports in.
type LocationUpdate struct {
	TruckID     uint      `json:"truckId"`
	PlateNumber string    `json:"plateNumber"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Status      string    `json:"status"`
	ReportedAt  time.Time `json:"reportedAt"`
}

func NewTruckHub() *TruckHub {
	return &TruckHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan LocationUpdate),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Run listens for register/unregister/broadcast events forever.
func (h *TruckHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case update := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(update); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast queues an update for every connected client.
func (h *TruckHub) Broadcast(update LocationUpdate) {
	h.broadcast <- update
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/trucks
func (h *TruckHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	h.register <- conn

	// Read loop only to notice the client going away.
	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
