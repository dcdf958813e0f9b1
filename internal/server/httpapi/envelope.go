// Package httpapi contains the request routers fronting the identity
// provider and the record store. Each router receives one JSON request body,
// dispatches on its action field, and returns a response envelope; no
// failure escapes a router as a panic or error.
package httpapi

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope returned by every entry point. Body is the
// JSON-encoded payload with at least a success flag and a message.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

// corsHeaders returns the fixed headers attached to every response.
func corsHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type",
		"Access-Control-Allow-Methods": "OPTIONS,POST",
	}
}

func respond(status int, payload map[string]any) Response {
	body, err := json.Marshal(payload)
	if err != nil {
		// payloads are built from plain strings and bools; unreachable in
		// practice but never allowed to escape
		status = http.StatusInternalServerError
		body = []byte(`{"success":false,"message":"Internal server error"}`)
	}
	return Response{StatusCode: status, Headers: corsHeaders(), Body: string(body)}
}

func success(status int, message string, extra map[string]any) Response {
	payload := map[string]any{"success": true, "message": message}
	for k, v := range extra {
		payload[k] = v
	}
	return respond(status, payload)
}

func failure(status int, message string) Response {
	return respond(status, map[string]any{"success": false, "message": message})
}
