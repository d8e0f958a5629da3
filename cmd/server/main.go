package main

import (
	"os"

	"bi-assistant/internal/app"
)

// @title        BI Assistant API
// @version      1.0
// @description  Relays chat messages to a local Ollama server.
// @BasePath     /
func main() {
	os.Exit(app.Run())
}
