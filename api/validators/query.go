package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/techstore-mx/techstore-backend/pkg/errors"
)

// ParseQueryInt reads an optional numeric query parameter with range bounds.
func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	if value < min || value > max {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter out of range").WithDetails(map[string]any{"field": key, "min": min, "max": max})
	}
	return value, nil
}

// ParseQueryBool reads an optional boolean query parameter. Only the literal
// "true"/"false" strings toggle it; anything else leaves the pointer nil.
func ParseQueryBool(r *http.Request, key string) *bool {
	switch strings.TrimSpace(r.URL.Query().Get(key)) {
	case "true":
		value := true
		return &value
	case "false":
		value := false
		return &value
	}
	return nil
}
