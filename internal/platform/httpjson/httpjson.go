package httpjson

import (
	"encoding/json"
	"net/http"
)

// Todas las respuestas de la API JSON comparten el mismo sobre:
// {"success": bool, "message": string, ...campos extra por endpoint}.

// OK escribe una respuesta exitosa con los campos extra del endpoint
// (usuario, mascotas, id, etc.).
func OK(w http.ResponseWriter, status int, message string, extra map[string]any) {
	payload := map[string]any{
		"success": true,
		"message": message,
	}
	for k, v := range extra {
		payload[k] = v
	}
	write(w, status, payload)
}

// Fail escribe una respuesta de error con el mensaje para el usuario.
func Fail(w http.ResponseWriter, status int, message string) {
	write(w, status, map[string]any{
		"success": false,
		"message": message,
	})
}

func write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
