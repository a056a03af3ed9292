package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the success envelope shared by all endpoints
type Envelope struct {
	Success bool   `json:"success"`
	Count   *int   `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// JSON writes a success envelope with the given data
func JSON(w http.ResponseWriter, status int, data any) {
	write(w, status, Envelope{Success: true, Data: data})
}

// JSONWithCount writes a success envelope with data and a result count
func JSONWithCount(w http.ResponseWriter, status int, data any, count int) {
	write(w, status, Envelope{Success: true, Count: &count, Data: data})
}

// JSONWithMessage writes a success envelope with data and a message
func JSONWithMessage(w http.ResponseWriter, status int, data any, message string) {
	write(w, status, Envelope{Success: true, Message: message, Data: data})
}

// NoCache marks a response as uncacheable. Leaderboard and stats reads use
// this since standings change on every submission.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
}

func write(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}
