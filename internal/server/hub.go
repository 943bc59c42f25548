package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/katalvlaran/lvlviz/core"
	"github.com/katalvlaran/lvlviz/internal/logging"
)

// Keepalive and buffer tuning for hub connections.
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	wsBufferSize   = 1024

	// broadcastBuffer absorbs short client write stalls without
	// pausing the publishing engine.
	broadcastBuffer = 16
)

// Hub fans every published frame out to the connected WebSocket
// clients. It implements step.ArraySink and step.GraphSink and keeps
// the latest marshaled frame, so late joiners and GET /api/state
// start from the current picture.
//
// Every connection write happens on the run loop goroutine; request
// handlers only register, read and remove. That keeps the gorilla
// single-writer rule without per-connection locks.
type Hub struct {
	log      *slog.Logger
	upgrader websocket.Upgrader

	clients   map[*websocket.Conn]bool
	register  chan *websocket.Conn
	remove    chan *websocket.Conn
	broadcast chan []byte

	done      chan struct{}
	closeOnce sync.Once

	mu     sync.RWMutex
	seq    int64
	latest []byte
}

// NewHub creates a hub and starts its run loop. A nil logger means
// silent operation.
func NewHub(log *slog.Logger) *Hub {
	if log == nil {
		log = logging.NewNop()
	}
	h := &Hub{
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  wsBufferSize,
			WriteBufferSize: wsBufferSize,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		clients:   make(map[*websocket.Conn]bool),
		register:  make(chan *websocket.Conn),
		remove:    make(chan *websocket.Conn),
		broadcast: make(chan []byte, broadcastBuffer),
		done:      make(chan struct{}),
	}
	go h.run()
	return h
}

// PublishArray implements step.ArraySink.
func (h *Hub) PublishArray(s core.ArraySnapshot) {
	h.send(Frame{Type: FrameArray, Array: wireElements(s)})
}

// PublishGraph implements step.GraphSink.
func (h *Hub) PublishGraph(s core.GraphSnapshot) {
	h.send(Frame{Type: FrameGraph, Graph: wireGraph(s)})
}

// PublishStatus puts a run lifecycle frame on the stream.
func (h *Hub) PublishStatus(st Status) {
	h.send(Frame{Type: FrameStatus, Status: &st})
}

// Latest returns a copy of the most recently published frame, or nil
// before the first publish.
func (h *Hub) Latest() []byte {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.latest == nil {
		return nil
	}
	return append([]byte(nil), h.latest...)
}

// Close disconnects every client and stops the run loop. Publishing
// after Close is a no-op.
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

// Handle upgrades the request and attaches the connection to the hub.
func (h *Hub) Handle(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error("websocket upgrade failed", logging.Err(err))
		return
	}
	select {
	case h.register <- conn:
	case <-h.done:
		_ = conn.Close()
		return
	}
	go h.read(conn)
}

// send stamps the frame with the next sequence number, marshals it
// once, records it as latest and hands it to the run loop.
func (h *Hub) send(f Frame) {
	h.mu.Lock()
	h.seq++
	f.Seq = h.seq
	data, err := json.Marshal(f)
	if err != nil {
		h.mu.Unlock()
		h.log.Error("frame marshal failed", logging.Err(err))
		return
	}
	h.latest = data
	h.mu.Unlock()

	select {
	case h.broadcast <- data:
	case <-h.done:
	}
}

func (h *Hub) run() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-h.done:
			for conn := range h.clients {
				_ = conn.Close()
			}
			return

		case conn := <-h.register:
			h.clients[conn] = true
			// A late joiner starts from the current picture; the
			// sequence number tells it how many frames it missed.
			if latest := h.Latest(); latest != nil {
				h.write(conn, latest)
			}

		case conn := <-h.remove:
			if h.clients[conn] {
				delete(h.clients, conn)
				_ = conn.Close()
			}

		case msg := <-h.broadcast:
			for conn := range h.clients {
				h.write(conn, msg)
			}

		case <-ticker.C:
			for conn := range h.clients {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					h.drop(conn, err)
				}
			}
		}
	}
}

func (h *Hub) write(conn *websocket.Conn, msg []byte) {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
		h.drop(conn, err)
	}
}

func (h *Hub) drop(conn *websocket.Conn, err error) {
	h.log.Warn("websocket write failed", logging.Err(err))
	delete(h.clients, conn)
	_ = conn.Close()
}

// read drains inbound messages so pongs and client closes are
// processed; the stream itself is one-way.
func (h *Hub) read(conn *websocket.Conn) {
	defer func() {
		select {
		case h.remove <- conn:
		case <-h.done:
		}
	}()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Warn("websocket read failed", logging.Err(err))
			}
			return
		}
	}
}
