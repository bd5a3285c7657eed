package router

import (
	"github.com/ChaosDragon01/messaging-Wapp/internal/config"
	"github.com/ChaosDragon01/messaging-Wapp/internal/geo"
	"github.com/ChaosDragon01/messaging-Wapp/internal/handler"
	"github.com/ChaosDragon01/messaging-Wapp/internal/middleware"
	"github.com/ChaosDragon01/messaging-Wapp/internal/store"
	"github.com/ChaosDragon01/messaging-Wapp/internal/upload"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures the Gin engine, session cookie, templates and
// static resources. A nil locator defaults to the configured ipinfo
// endpoint; tests inject a stub.
func SetupRouter(cfg *config.Config, locator geo.Locator) (*gin.Engine, error) {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	sessionStore := cookie.NewStore([]byte(cfg.Session.Secret))
	r.Use(sessions.Sessions(cfg.Session.CookieName, sessionStore))

	// static files and templates; uploaded avatars live under static
	r.Static("/static", cfg.Web.Static)
	r.LoadHTMLGlob(cfg.Web.Templates)

	users := store.NewUserStore(cfg.UsersFile())
	messages := store.NewMessageStore(cfg.MessagesFile())
	accessLog := store.NewAccessLogStore(cfg.RequestLogFile())

	avatars, err := upload.NewAvatarStore(cfg.Upload.Dir)
	if err != nil {
		return nil, err
	}

	if locator == nil {
		locator = geo.NewIPInfo(cfg.Geo.BaseURL)
	}

	authHandler := handler.NewAuthHandler(users, avatars)
	messageHandler := handler.NewMessageHandler(messages)

	r.GET("/", authHandler.Index)
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/register", authHandler.RegisterPage)
	r.POST("/register", authHandler.Register)

	audit := middleware.Audit(accessLog, locator, cfg.Geo)

	// chat pages need a session; both methods are audited
	chat := r.Group("/send_message", middleware.RequireUser(), audit)
	chat.GET("", messageHandler.ChatPage)
	chat.POST("", messageHandler.Post)

	// polling endpoint answers JSON and is deliberately not audited
	r.GET("/get_messages", middleware.RequireUserJSON(), messageHandler.Feed)

	r.GET("/logout", audit, authHandler.Logout)

	return r, nil
}
