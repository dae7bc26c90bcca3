package main

import (
	"log"

	_ "todoapi/docs"
	"todoapi/internal/config"
	"todoapi/internal/server"
)

// @title           ToDo List API
// @version         1.0
// @description     API for a minimal multi-user to-do list.

// @host      localhost:8080
// @BasePath  /

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
