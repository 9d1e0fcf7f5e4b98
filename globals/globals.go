package globals

import (
	"context"
)

var (
	// JwtSecret is assigned at boot from ACCESS_TOKEN_SECRET, after .env
	// has been loaded. Package init runs before main, so it cannot be
	// read from the environment here.
	JwtSecret []byte
)

// Context keys
type ContextKey string

const ClaimsKey ContextKey = "claims"

var Ctx = context.Background()
