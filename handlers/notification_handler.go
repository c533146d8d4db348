package handlers

import (
	"github.com/aurelienmx/skillmarket/websocket"
	fiberws "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// WebsocketUpgrade gates the notification socket: only proper upgrade
// requests from an authenticated user pass through.
func WebsocketUpgrade(c *fiber.Ctx) error {
	if !fiberws.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	id, role := currentUser(c)
	c.Locals("wsKey", websocket.ClientKey(role, id))
	return c.Next()
}

// NotificationSocket keeps the connection registered with the hub until the
// peer goes away. The client never sends anything meaningful; reads only
// detect disconnects.
var NotificationSocket = fiberws.New(func(conn *fiberws.Conn) {
	key, _ := conn.Locals("wsKey").(string)
	client := &websocket.Client{Key: key, Conn: conn}
	websocket.Register <- client
	defer func() {
		websocket.Unregister <- client
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
})
