package globals

import (
	"context"
	"os"
)

var JwtSecret = []byte(Getenv("JWT_SECRET", "change_me_in_production"))

// FrontendURL prefixes public share links (/trips/shared/<token>).
var FrontendURL = Getenv("FRONTEND_URL", "http://localhost:5173")

// Context keys
type ContextKey string

const RoleKey ContextKey = "role"
const UserIDKey ContextKey = "userId"

var Ctx = context.Background()

func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
