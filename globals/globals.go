package globals

import "os"

var JwtSecret = []byte(envOr("JWT_SECRET", "dev-only-secret"))

// Context keys
type ContextKey string

const SessionIDKey ContextKey = "sessionId"

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
