package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ChaosDragon01/messaging-Wapp/internal/config"
	"github.com/ChaosDragon01/messaging-Wapp/internal/models"
	"github.com/ChaosDragon01/messaging-Wapp/internal/router"
	"github.com/ChaosDragon01/messaging-Wapp/internal/store"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// ensure basic directories exist
	if err := ensureDir(cfg.Data.Dir); err != nil {
		log.Fatalf("create data dir: %v", err)
	}
	if err := ensureDir(cfg.Upload.Dir); err != nil {
		log.Fatalf("create avatar dir: %v", err)
	}

	// seed the JSON stores so first loads see well-formed documents
	if err := store.EnsureFile(cfg.UsersFile(), map[string]models.UserRecord{}); err != nil {
		log.Fatalf("init users store: %v", err)
	}
	if err := store.EnsureFile(cfg.MessagesFile(), []models.Message{}); err != nil {
		log.Fatalf("init messages store: %v", err)
	}
	if err := store.EnsureFile(cfg.RequestLogFile(), []models.AccessLogEntry{}); err != nil {
		log.Fatalf("init request log: %v", err)
	}

	// setup router
	r, err := router.SetupRouter(cfg, nil)
	if err != nil {
		log.Fatalf("setup router: %v", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

func ensureDir(dir string) error {
	if dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
