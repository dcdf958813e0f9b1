package httpapi

import "encoding/json"

// ValidationError reports a missing or malformed request field, detected
// before any external call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// parseBody decodes a JSON request body into a field map. Extraction fails
// closed: a malformed body surfaces as a validation error, not a crash.
func parseBody(body []byte) (map[string]any, error) {
	fields := map[string]any{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, &ValidationError{Message: "Invalid request body"}
	}
	return fields, nil
}

// requireString extracts a required string field. label is the client-facing
// field name used in the error message.
func requireString(fields map[string]any, name, label string) (string, error) {
	v, ok := fields[name].(string)
	if !ok || v == "" {
		return "", &ValidationError{Field: name, Message: label + " is required"}
	}
	return v, nil
}

// optionalString extracts an optional string field, falling back to def.
func optionalString(fields map[string]any, name, def string) string {
	v, ok := fields[name].(string)
	if !ok || v == "" {
		return def
	}
	return v
}

// optionalBool extracts an optional bool field, defaulting to false.
func optionalBool(fields map[string]any, name string) bool {
	v, _ := fields[name].(bool)
	return v
}
