package handler

import (
	"net/http"

	"github.com/ChaosDragon01/messaging-Wapp/internal/middleware"
	"github.com/ChaosDragon01/messaging-Wapp/internal/models"
	"github.com/ChaosDragon01/messaging-Wapp/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// feedWindow is the number of messages returned by the JSON feed.
const feedWindow = 100

// MessageHandler serves the chat page and the message feed.
type MessageHandler struct {
	Messages *store.MessageStore
}

func NewMessageHandler(messages *store.MessageStore) *MessageHandler {
	return &MessageHandler{Messages: messages}
}

// ChatPage renders the feed. Requires a session (enforced upstream).
func (h *MessageHandler) ChatPage(c *gin.Context) {
	c.HTML(http.StatusOK, "chat.html", gin.H{
		"username": c.GetString(middleware.SessionUserKey),
		"messages": h.Messages.Load(),
	})
}

// Post appends a message under the session identity and redirects back
// to the chat page so a browser refresh does not resubmit the form.
// The avatar filename is the session snapshot taken at login.
func (h *MessageHandler) Post(c *gin.Context) {
	session := sessions.Default(c)
	profilePic, _ := session.Get(middleware.SessionPicKey).(string)

	msg := models.Message{
		Username:   c.GetString(middleware.SessionUserKey),
		Body:       c.PostForm("message"),
		ProfilePic: profilePic,
		Timestamp:  models.Now(),
	}
	if err := h.Messages.Append(msg); err != nil {
		c.String(http.StatusInternalServerError, "Failed to save message")
		return
	}

	c.Redirect(http.StatusFound, "/send_message")
}

// Feed returns the last 100 messages as JSON for the polling client.
func (h *MessageHandler) Feed(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"messages": h.Messages.Recent(feedWindow),
	})
}
