package http

import (
	"log/slog"
	"net/http"
	"strconv"
)

// WriteContent writes body with the given status code. The Content-Type
// header is set to contentType verbatim; no charset is appended.
func WriteContent(w http.ResponseWriter, code int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		slog.Debug("failed to write response body", "err", err)
	}
}
