package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/azamatleskhan01/fastdelivery/services"
	"github.com/azamatleskhan01/fastdelivery/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// TelemetryHub pushes drone telemetry snapshots to every connected
// tracking page at a fixed interval.
type TelemetryHub struct {
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
	drones     *services.DroneService
	interval   time.Duration
}

func NewTelemetryHub(drones *services.DroneService) *TelemetryHub {
	return &TelemetryHub{
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		drones:     drones,
		interval:   2 * time.Second,
	}
}

// Run owns the client set; call it in its own goroutine.
func (h *TelemetryHub) Run() {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

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

		case <-ticker.C:
			snapshot := h.drones.Positions()
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(snapshot); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Handle upgrades GET /ws/telemetry and keeps the connection subscribed
// until the client goes away.
func (h *TelemetryHub) Handle(c *gin.Context) {
	if utils.CurrentUserID(c) == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}

	h.register <- conn

	// drain reads; a read error means the client is gone
	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
