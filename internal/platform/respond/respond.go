// Package respond escribe el sobre JSON que esperan los clientes existentes:
// {"status":"success"|"error", "payload"?, "message"?, "error"?}.
//
// Antes cada módulo tenía su propio writeJSON; con users/pets/adoptions/sessions/mocks
// compartiendo el mismo formato, ya tocaba extraerlo.
package respond

import (
	"encoding/json"
	"net/http"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// InternalErrorMessage es el único texto que ve el cliente en un 500.
const InternalErrorMessage = "Internal server error"

// Envelope es el cuerpo de todas las respuestas de la API.
type Envelope struct {
	Status  string `json:"status"`
	Payload any    `json:"payload,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Payload(w http.ResponseWriter, status int, payload any) {
	JSON(w, status, Envelope{Status: StatusSuccess, Payload: payload})
}

func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Envelope{Status: StatusSuccess, Message: msg})
}

func MessagePayload(w http.ResponseWriter, status int, msg string, payload any) {
	JSON(w, status, Envelope{Status: StatusSuccess, Message: msg, Payload: payload})
}

func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Envelope{Status: StatusError, Error: msg})
}

// Internal responde 500 sin filtrar el error real (se loguea aparte).
func Internal(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, InternalErrorMessage)
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
