package websocket

import (
	"log"
	"strconv"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// Event is pushed to a connected provider or client when one of their
// bookings changes.
type Event struct {
	Type      string `json:"type"`
	BookingID uint   `json:"booking_id"`
	Message   string `json:"message"`
}

type Client struct {
	Key  string
	Conn *websocket.Conn
}

var clients = make(map[string]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)

// ClientKey identifies a connection: providers and clients have separate id
// spaces, so the role is part of the key.
func ClientKey(role string, id uint) string {
	return role + ":" + strconv.FormatUint(uint64(id), 10)
}

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Notification client registered: %s", client.Key)
			clientsMu.Lock()
			clients[client.Key] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Notification client unregistered: %s", client.Key)
			clientsMu.Lock()
			if conn, ok := clients[client.Key]; ok && conn == client.Conn {
				delete(clients, client.Key)
			}
			clientsMu.Unlock()
		}
	}
}

// Notify pushes an event to one user if they are connected; offline users
// simply miss it, email is the durable channel.
func Notify(role string, id uint, event Event) {
	key := ClientKey(role, id)

	clientsMu.RLock()
	conn, ok := clients[key]
	clientsMu.RUnlock()
	if !ok {
		return
	}

	if err := conn.WriteJSON(event); err != nil {
		log.Printf("Error sending event to %s: %v", key, err)
		conn.Close()
		clientsMu.Lock()
		delete(clients, key)
		clientsMu.Unlock()
	}
}
