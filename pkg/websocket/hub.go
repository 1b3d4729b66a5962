package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"cityresponse/internal/models"
)

// Hub fans Data Store change events out to connected dashboard sessions so
// a view updated in one session refreshes everywhere else.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	rooms      map[string]map[*Client]bool
	mutex      sync.RWMutex
}

type Message struct {
	Type      string                 `json:"type"`
	RoomID    string                 `json:"room_id,omitempty"`
	Timestamp int64                  `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		rooms:      make(map[string]map[*Client]bool),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.clients[client] = true
	log.Printf("Client registered: %s", client.SessionID)

	welcomeMsg := Message{
		Type:      "welcome",
		Timestamp: getCurrentTimestamp(),
		Data: map[string]interface{}{
			"message": "Connected successfully",
		},
	}

	h.sendToClient(client, welcomeMsg)
}

func (h *Hub) unregisterClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.dropClientLocked(client) {
		log.Printf("Client unregistered: %s", client.SessionID)
	}
}

// dropClientLocked removes a client from the hub and every room and closes
// its send channel exactly once. Callers must hold the write lock.
func (h *Hub) dropClientLocked(client *Client) bool {
	if _, ok := h.clients[client]; !ok {
		return false
	}

	delete(h.clients, client)
	close(client.send)

	for roomID, room := range h.rooms {
		if _, exists := room[client]; exists {
			delete(room, client)
			if len(room) == 0 {
				delete(h.rooms, roomID)
			}
		}
	}

	return true
}

func (h *Hub) broadcastMessage(message []byte) {
	var msg Message
	if err := json.Unmarshal(message, &msg); err != nil {
		log.Printf("Error unmarshaling message: %v", err)
		return
	}

	if msg.RoomID != "" {
		h.sendToRoom(msg.RoomID, msg)
	} else {
		h.sendToAll(msg)
	}
}

// sendToAll drops clients whose send buffer is full, so it needs the write
// lock even though it is mostly a read.
func (h *Hub) sendToAll(message Message) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	data, _ := json.Marshal(message)
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			h.dropClientLocked(client)
		}
	}
}

func (h *Hub) sendToRoom(roomID string, message Message) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	room, exists := h.rooms[roomID]
	if !exists {
		return
	}

	data, _ := json.Marshal(message)
	for client := range room {
		select {
		case client.send <- data:
		default:
			h.dropClientLocked(client)
		}
	}
}

// sendToClient must run under h.mutex; registerClient holds it.
func (h *Hub) sendToClient(client *Client, message Message) {
	data, _ := json.Marshal(message)
	select {
	case client.send <- data:
	default:
		h.dropClientLocked(client)
	}
}

// BroadcastIncidentEvent pushes a change-stream event to every session, plus
// the zone room when the incident carries a zone name.
func (h *Hub) BroadcastIncidentEvent(event models.IncidentEvent) {
	data := map[string]interface{}{
		"event":       string(event.Type),
		"incident_id": event.IncidentID.Hex(),
	}
	if event.Incident != nil {
		data["incident"] = event.Incident
	}

	message := Message{
		Type:      "incident_event",
		Timestamp: event.Timestamp.Unix(),
		Data:      data,
	}

	h.sendToAll(message)

	if event.Incident != nil && event.Incident.ZoneName != "" {
		message.RoomID = "zone_" + event.Incident.ZoneName
		h.sendToRoom(message.RoomID, message)
	}
}

func (h *Hub) JoinZone(client *Client, zoneName string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.joinRoom(client, "zone_"+zoneName)
}

func (h *Hub) LeaveRoom(client *Client, roomID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if room, exists := h.rooms[roomID]; exists {
		delete(room, client)
		delete(client.rooms, roomID)

		if len(room) == 0 {
			delete(h.rooms, roomID)
		}
	}
}

func (h *Hub) joinRoom(client *Client, roomID string) {
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[*Client]bool)
	}
	h.rooms[roomID][client] = true
	client.rooms[roomID] = true
}

func getCurrentTimestamp() int64 {
	return time.Now().Unix()
}
