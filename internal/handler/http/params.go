package http

import (
	"net/http"
	"strconv"
)

// intQueryParam reads an integer query parameter, falling back to defaultVal
// when absent or malformed.
func intQueryParam(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}
