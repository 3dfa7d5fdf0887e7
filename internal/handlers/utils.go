package handlers

import (
	"net/http"

	"github.com/go-chi/render"
)

type ErrorResponse struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
}

type ValidationErrorResponse struct {
	Status int               `json:"status"`
	Errors map[string]string `json:"errors"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Status: status, Error: message})
}

// Health answers liveness probes.
func Health(w http.ResponseWriter, r *http.Request) {
	render.PlainText(w, r, "OK")
}
