package port

import (
	"time"

	"github.com/oksasatya/go-auth-engine/internal/domain/entity"
)

// CredentialIssuer mints and verifies opaque bearer tokens. Every minted
// token carries the identity, a scope, a unique token id and an expiry.
// Verify fails on tampering or natural expiry; it does not consult the
// revocation list, which is the use cases' job.
type CredentialIssuer interface {
	Mint(identity string, scope entity.Scope, ttl time.Duration) (string, error)
	Verify(token string) (*entity.TokenClaims, error)
}
