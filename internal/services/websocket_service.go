package services

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"agrilink-backend/internal/models"
	"agrilink-backend/internal/store"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Same-origin enforcement is handled by the CORS middleware.
		return true
	},
}

// WSMessage is the envelope for everything sent over a socket.
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// ChatPayload is the client-to-server shape for a chat message.
type ChatPayload struct {
	ReceiverID string `json:"receiverId"`
	Text       string `json:"text"`
}

// Client represents one websocket connection for an authenticated user.
type Client struct {
	ID     string
	UserID string
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
}

// Hub keeps the set of active clients and routes chat messages and
// notification pushes to them. Messages are persisted to the store before
// delivery so offline recipients see them on next fetch.
type Hub struct {
	clients    map[*Client]bool
	users      map[string][]*Client
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	store      *store.Store
}

// NewHub creates a hub backed by the given store.
func NewHub(st *store.Store) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		users:      make(map[string][]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		store:      st,
	}
}

// Run processes client registration. Must be started once, in its own
// goroutine, before any connections are served.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.users[client.UserID] = append(h.users[client.UserID], client)
			h.mu.Unlock()
			log.Printf("websocket client connected: user=%s client=%s", client.UserID, client.ID)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				conns := h.users[client.UserID]
				for i, c := range conns {
					if c == client {
						h.users[client.UserID] = append(conns[:i], conns[i+1:]...)
						break
					}
				}
				if len(h.users[client.UserID]) == 0 {
					delete(h.users, client.UserID)
				}
			}
			h.mu.Unlock()
			log.Printf("websocket client disconnected: user=%s client=%s", client.UserID, client.ID)
		}
	}
}

// SendToUser delivers a message to every open connection of one user.
// It is a no-op when the user has no connections.
func (h *Hub) SendToUser(userID string, msg WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("websocket marshal error: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.users[userID] {
		select {
		case client.send <- data:
		default:
			// Slow consumer; drop rather than block the hub.
		}
	}
}

// PushNotification persists a notification and pushes it to the recipient
// if connected.
func (h *Hub) PushNotification(userID, title, message string, typ models.NotificationType, link string) models.AppNotification {
	saved := h.store.AddNotification(userID, title, message, typ, link)
	h.SendToUser(saved.UserID, WSMessage{Type: "notification", Payload: saved})
	return saved
}

// ServeWS upgrades an HTTP request to a websocket connection for userID.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, userID string) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := &Client{
		ID:     uuid.New().String(),
		UserID: userID,
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, 64),
	}
	h.register <- client

	go client.writePump()
	go client.readPump()
	return nil
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket read error: %v", err)
			}
			return
		}

		var msg WSMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("websocket bad message from user %s: %v", c.UserID, err)
			continue
		}

		switch msg.Type {
		case "chat":
			c.handleChat(msg.Payload)
		case "ping":
			// Application-level keepalive from older clients.
		default:
			log.Printf("websocket unknown message type %q from user %s", msg.Type, c.UserID)
		}
	}
}

func (c *Client) handleChat(payload interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return
	}
	var chat ChatPayload
	if err := json.Unmarshal(raw, &chat); err != nil || chat.ReceiverID == "" || chat.Text == "" {
		return
	}

	saved := c.hub.store.AddChatMessage(c.UserID, chat.ReceiverID, chat.Text)

	out := WSMessage{Type: "chat", Payload: saved}
	c.hub.SendToUser(chat.ReceiverID, out)
	// Echo back so all of the sender's devices stay in sync.
	c.hub.SendToUser(c.UserID, out)
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
