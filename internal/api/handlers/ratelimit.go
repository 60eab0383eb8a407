package handlers

import (
	"net/http"

	"github.com/video-stream/transcript/internal/api/middleware"
)

type RateLimitHandler struct {
	limiter *middleware.RateLimiter
}

func NewRateLimitHandler(limiter *middleware.RateLimiter) *RateLimitHandler {
	return &RateLimitHandler{limiter: limiter}
}

// Status returns the tracked clients and their request counts.
func (h *RateLimitHandler) Status(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, h.limiter.Status(), http.StatusOK)
}

// Clear forgets every tracked client.
func (h *RateLimitHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.limiter.Clear()
	w.WriteHeader(http.StatusNoContent)
}
