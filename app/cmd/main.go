package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"kmis/app/server"

	"github.com/joho/godotenv"
)

func init() {
	loadEnvVariables()
}

func main() {
	s := server.NewServer(addr())

	go s.Run()

	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	<-sigch
	log.Println("Received shutdown signal, shutting down server...")
	s.Stop()
}

func addr() string {
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		return v
	}
	return ":8080"
}

func loadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
}
