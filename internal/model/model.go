package model

import "time"

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message string          `json:"message" validate:"required" example:"What is churn rate?"`
	History []PriorExchange `json:"history,omitempty"`
}

// PriorExchange is one earlier turn. Only the user side is replayed into prompts.
type PriorExchange struct {
	User string `json:"user" example:"Generate a report outline"`
}

// ChatResponse is the success body of POST /chat.
type ChatResponse struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status          string `json:"status" example:"healthy"`
	Service         string `json:"service" example:"BI Assistant (Ollama)"`
	OllamaConnected bool   `json:"ollama_connected"`
	Message         string `json:"message,omitempty"`
}
