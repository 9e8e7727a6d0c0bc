// Command api runs the Talent Bridge HTTP server.
package main

import (
	"log"

	"talentbridge-backend/internal/server"
)

// @title Talent Bridge API
// @version 1.0
// @description Job board backend where employers post jobs and candidates apply.
// @BasePath /api/v1
func main() {
	srv := server.NewServer()

	log.Printf("Listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Server error: %s", err)
	}
}
