package provisioning

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/corebank/backend/internal/domain/shared"
)

// normalizeIdentity canonicalizes an identity number for comparison. The old
// format keeps a letter suffix that is case insensitive.
func normalizeIdentity(identityNumber string) string {
	return strings.ToUpper(strings.TrimSpace(identityNumber))
}

// IdentityResolver resolves an identity number against the customer directory
type IdentityResolver struct {
	directory CustomerDirectory
}

// NewIdentityResolver creates a new IdentityResolver
func NewIdentityResolver(directory CustomerDirectory) *IdentityResolver {
	return &IdentityResolver{directory: directory}
}

// Resolve looks up the identity number. A directory miss is a normal outcome
// and yields an unresolved party; only transport or system failures return an
// error.
func (r *IdentityResolver) Resolve(ctx context.Context, identityNumber string) (ResolvedParty, error) {
	record, err := r.directory.FindByIdentity(ctx, identityNumber)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return UnresolvedParty(identityNumber), nil
		}
		return ResolvedParty{}, fmt.Errorf("directory lookup failed: %w", err)
	}

	return ExistingParty(record.CustomerID, record.FullName, record.IdentityNumber), nil
}
