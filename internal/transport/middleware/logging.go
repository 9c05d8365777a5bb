package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	chiMiddleware "github.com/go-chi/chi/middleware"
)

// maxLoggedBody caps how much of a request body goes into the log.
const maxLoggedBody = 4 << 10

// staleMarker shows up in views served from a snapshot after a failed read.
var staleMarker = []byte(`"stale":true`)

// sensitiveFields are matched as substrings of JSON field names. Contact
// phone numbers and UPI ids are personal data and never logged.
var sensitiveFields = []string{
	"password",
	"token",
	"authorization",
	"secret",
	"key",
	"phone",
	"upi",
}

// LoggingMiddleware writes one line per request. Write requests also log
// their filtered JSON body; response bodies are only scanned for the stale
// marker.
func LoggingMiddleware(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			var body string
			if hasBody(r) {
				body = captureBody(r)
			}

			stale := &staleDetector{}
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ww.Tee(stale)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			level := slog.LevelInfo
			switch {
			case status >= 500:
				level = slog.LevelError
			case status >= 400:
				level = slog.LevelWarn
			}

			attrs := []any{
				"request_id", chiMiddleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"query", r.URL.RawQuery,
				"status_code", status,
				"stale", stale.seen,
				"duration_ms", time.Since(start).Milliseconds(),
				"response_size", ww.BytesWritten(),
			}
			if body != "" {
				attrs = append(attrs, "body", body)
			}
			logger.Log(r.Context(), level, "request", attrs...)
		})
	}
}

func hasBody(r *http.Request) bool {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return r.Body != nil
	}
	return false
}

// captureBody reads the body for logging and puts it back for the handler.
func captureBody(r *http.Request) string {
	raw, err := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil || len(raw) == 0 {
		return ""
	}
	if len(raw) > maxLoggedBody {
		return "[TRUNCATED]"
	}

	var data interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return "[NON-JSON]"
	}
	filtered, err := json.Marshal(filterSensitiveJSON(data))
	if err != nil {
		return ""
	}
	return string(filtered)
}

func isSensitive(name string) bool {
	lower := strings.ToLower(name)
	for _, f := range sensitiveFields {
		if strings.Contains(lower, f) {
			return true
		}
	}
	return false
}

func filterSensitiveJSON(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		filtered := make(map[string]interface{}, len(v))
		for key, value := range v {
			if isSensitive(key) {
				filtered[key] = "[FILTERED]"
			} else {
				filtered[key] = filterSensitiveJSON(value)
			}
		}
		return filtered
	case []interface{}:
		filtered := make([]interface{}, len(v))
		for i, item := range v {
			filtered[i] = filterSensitiveJSON(item)
		}
		return filtered
	default:
		return v
	}
}

// staleDetector sees the response body through the wrapped writer's tee.
// Views are encoded in a single write, so the marker is never split.
type staleDetector struct {
	seen bool
}

func (d *staleDetector) Write(p []byte) (int, error) {
	if !d.seen && bytes.Contains(p, staleMarker) {
		d.seen = true
	}
	return len(p), nil
}
