package resp

import (
	"encoding/json"
	"net/http"
)

func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError пишет {"error": msg}
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSONResponse(w, status, map[string]string{"error": msg})
}
