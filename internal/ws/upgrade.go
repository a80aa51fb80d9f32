package ws

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"focal/config"
	"focal/internal/auth"
	"focal/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ConversationLoader is the slice of the message service the chat socket needs
// to admit a user into a room.
type ConversationLoader interface {
	Get(conversationID, userID uint) (*models.Conversation, error)
}

// MessageSender persists an inbound chat frame.
type MessageSender interface {
	Send(conversationID, senderID uint, text string) (*models.Message, error)
}

type inboundChatFrame struct {
	Text string `json:"text"`
}

// UpgradeNotifyWS attaches the connection to the user-addressed hub. The
// server pushes notification payloads; inbound frames are ignored.
func UpgradeNotifyWS(cfg *config.JWTConfig, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		claims, ok := authorize(conn, cfg, c.Query("token"))
		if !ok {
			return
		}
		client := &Client{
			UserID: claims.UserID,
			Role:   claims.Role,
			Send:   make(chan []byte, 256),
		}
		hub.Register(client)
		defer client.Close()
		go writePump(client, conn)
		drain(conn)
	}
}

// UpgradeChatWS joins the connection to its conversation room. Inbound frames
// are persisted through the message service and then fanned out to the other
// party; the HTTP message listing stays the source of truth.
func UpgradeChatWS(cfg *config.JWTConfig, chats *ChatHub, conversations ConversationLoader, sender MessageSender) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid conversation id"})
			return
		}
		conversationID := uint(id)
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		claims, ok := authorize(conn, cfg, c.Query("token"))
		if !ok {
			return
		}
		conv, err := conversations.Get(conversationID, claims.UserID)
		if err != nil {
			conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"conversation not found"}`))
			return
		}
		room := chats.GetOrCreateRoom(conv.ID, conv.CustomerID, conv.PhotographerID)
		client := &Client{
			UserID: claims.UserID,
			Role:   claims.Role,
			Send:   make(chan []byte, 256),
		}
		room.Join(client)
		defer func() {
			room.Leave(client)
			client.Close()
			if room.ClientCount() == 0 {
				chats.RemoveRoom(conv.ID)
			}
		}()
		go writePump(client, conn)
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var frame inboundChatFrame
			if err := json.Unmarshal(data, &frame); err != nil || frame.Text == "" {
				continue
			}
			m, err := sender.Send(conv.ID, claims.UserID, frame.Text)
			if err != nil {
				continue
			}
			room.Broadcast(client, map[string]interface{}{"type": "message", "message": m})
		}
	}
}

func authorize(conn *websocket.Conn, cfg *config.JWTConfig, token string) (*auth.Claims, bool) {
	if token == "" {
		conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"token required"}`))
		return nil, false
	}
	claims, err := auth.ParseAccessToken(cfg, token)
	if err != nil {
		conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"invalid token"}`))
		return nil, false
	}
	return claims, true
}

// writePump copies messages from client.Send to the connection and keeps the
// connection alive with pings.
func writePump(c *Client, conn *websocket.Conn) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case msg, ok := <-c.Send:
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func drain(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
