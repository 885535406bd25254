package handlers

import (
	"log"
	"net/http"

	"agriwise-server/auth"
	"agriwise-server/repositories"
	"agriwise-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WSHandler upgrades authenticated clients to a notification stream.
type WSHandler struct {
	mgr    *ws.Manager
	users  repositories.UserRepository
	secret []byte
}

func NewWSHandler(mgr *ws.Manager, users repositories.UserRepository, secret []byte) *WSHandler {
	return &WSHandler{mgr: mgr, users: users, secret: secret}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleNotificationWS upgrades to websocket and holds the connection open for
// server-pushed notifications.
// GET /ws?token=<session token>
func (h *WSHandler) HandleNotificationWS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	userID, err := auth.ParseSessionToken(token, h.secret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token invalid or expired"})
		return
	}
	if _, err := h.users.GetByID(userID); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token invalid or expired"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	h.mgr.Register(userID, conn)
	log.Printf("user connected: %s", userID)

	defer func() {
		h.mgr.Unregister(userID)
		log.Printf("user disconnected: %s", userID)
	}()

	// The stream is outbound-only; drain the connection until the client
	// closes it.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("user %s closed connection", userID)
			} else {
				log.Printf("read error from %s: %v", userID, err)
			}
			return
		}
	}
}

// GetConnectedUsers GET /api/users/connected
func (h *WSHandler) GetConnectedUsers(c *gin.Context) {
	users := h.mgr.List()
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}
