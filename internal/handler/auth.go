package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ChaosDragon01/messaging-Wapp/internal/middleware"
	"github.com/ChaosDragon01/messaging-Wapp/internal/store"
	"github.com/ChaosDragon01/messaging-Wapp/internal/upload"
	"github.com/ChaosDragon01/messaging-Wapp/internal/util"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AuthHandler serves login, registration and logout.
type AuthHandler struct {
	Users   *store.UserStore
	Avatars *upload.AvatarStore
}

func NewAuthHandler(users *store.UserStore, avatars *upload.AvatarStore) *AuthHandler {
	return &AuthHandler{Users: users, Avatars: avatars}
}

// Index redirects to the chat view when signed in, else to login.
func (h *AuthHandler) Index(c *gin.Context) {
	if middleware.CurrentUser(c) != "" {
		c.Redirect(http.StatusFound, "/send_message")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login accepts a form or JSON body with username and password.
func (h *AuthHandler) Login(c *gin.Context) {
	var username, password string
	if strings.HasPrefix(c.ContentType(), "application/json") {
		var req loginReq
		if err := c.ShouldBindJSON(&req); err == nil {
			username, password = req.Username, req.Password
		}
	} else {
		username = c.PostForm("username")
		password = c.PostForm("password")
	}

	if username == "" || password == "" {
		c.String(http.StatusBadRequest, "Missing username or password")
		return
	}

	rec, err := h.Users.Authenticate(username, util.HashPassword(password))
	if err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{"error": "Invalid credentials"})
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionUserKey, username)
	session.Set(middleware.SessionPicKey, rec.ProfilePic)
	if err := session.Save(); err != nil {
		c.String(http.StatusInternalServerError, "Failed to start session")
		return
	}

	c.Redirect(http.StatusFound, "/send_message")
}

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

// Register accepts a multipart form with username, password and an
// optional profile_pic file. The avatar is discarded silently when its
// extension is not an allowed image type.
func (h *AuthHandler) Register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if username == "" || password == "" {
		c.String(http.StatusBadRequest, "Missing username or password")
		return
	}

	profilePic := ""
	if fh, err := c.FormFile("profile_pic"); err == nil && fh != nil {
		name, err := h.Avatars.Save(username, fh)
		if err != nil {
			c.String(http.StatusInternalServerError, "Failed to save profile picture")
			return
		}
		profilePic = name
	}

	err := h.Users.Register(username, util.HashPassword(password), profilePic)
	if errors.Is(err, store.ErrDuplicateUsername) {
		c.HTML(http.StatusOK, "register.html", gin.H{"error": "Username already exists"})
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to save user")
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

// Logout clears the session. The audit middleware logs the event when
// a user was signed in.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(middleware.SessionUserKey)
	session.Delete(middleware.SessionPicKey)
	_ = session.Save()

	c.Redirect(http.StatusFound, "/login")
}
