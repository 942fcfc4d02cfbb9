package entity

import "time"

// Scope is the privilege level carried by a credential token.
type Scope string

const (
	// ScopeStandard is issued by a normal login.
	ScopeStandard Scope = "standard"
	// ScopeElevated is issued by re-authentication and gates sensitive
	// mutations; it carries a shorter TTL.
	ScopeElevated Scope = "elevated"
)

// Valid reports whether s is one of the known scopes.
func (s Scope) Valid() bool {
	return s == ScopeStandard || s == ScopeElevated
}

// TokenClaims is the verified content of a credential token as returned by
// the issuer port: identity, scope, the unique token id used for revocation,
// and the expiry.
type TokenClaims struct {
	Identity  string
	Scope     Scope
	TokenID   string
	ExpiresAt time.Time
}

// RemainingTTL is how long the token is still naturally valid. Revocation
// entries use this so a ban never outlives its token by less than zero.
func (c TokenClaims) RemainingTTL(now time.Time) time.Duration {
	return c.ExpiresAt.Sub(now)
}
