// Package credentials implements login credential issuance for newly
// registered customers.
package credentials

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/corebank/backend/internal/application/provisioning"
	"github.com/corebank/backend/internal/domain/credential"
	"github.com/corebank/backend/internal/domain/shared"
	"github.com/corebank/backend/internal/infrastructure/config"
	"github.com/google/uuid"
)

// passwordCharset deliberately omits ambiguous characters (0/O, 1/l/I)
// since the password is read back to the customer exactly once.
const passwordCharset = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789!@#$%&*"

// fallbackUsername is used when a full name yields no usable characters
const fallbackUsername = "customer"

var nonUsernameChars = regexp.MustCompile(`[^a-z0-9]+`)

// Issuer implements provisioning.CredentialIssuer. It derives a unique
// username from the customer's full name and generates a random one-time
// password. Only the bcrypt hash of the password is persisted.
type Issuer struct {
	logins credential.LoginRepository
	cfg    config.CredentialConfig
}

// NewIssuer creates a new Issuer
func NewIssuer(logins credential.LoginRepository, cfg config.CredentialConfig) *Issuer {
	return &Issuer{logins: logins, cfg: cfg}
}

// IssueLogin generates and persists login credentials for the customer.
// The returned plaintext password is a one-time disclosure.
func (i *Issuer) IssueLogin(ctx context.Context, customerID uuid.UUID, fullName string) (*provisioning.IssuedCredentials, error) {
	username, err := i.deriveUsername(ctx, fullName)
	if err != nil {
		return nil, err
	}

	password, err := generatePassword(i.cfg.PasswordLength)
	if err != nil {
		return nil, err
	}

	login, err := credential.NewLogin(customerID, username, password)
	if err != nil {
		return nil, err
	}

	if err := i.logins.Save(ctx, login); err != nil {
		return nil, err
	}

	return &provisioning.IssuedCredentials{
		Username: login.Username,
		Password: password,
	}, nil
}

// deriveUsername builds a username from the full name and probes the
// repository for an unused variant, appending a numeric suffix when the
// base name is taken.
func (i *Issuer) deriveUsername(ctx context.Context, fullName string) (string, error) {
	base := usernameBase(fullName)

	maxAttempts := i.cfg.UsernameMaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := base
		if attempt > 0 {
			candidate = fmt.Sprintf("%s%d", base, attempt)
		}

		taken, err := i.logins.ExistsByUsername(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", shared.NewDomainError("USERNAME_EXHAUSTED", "Could not find an unused username for the customer")
}

// usernameBase normalizes a full name into username form: lowercase with
// word separators collapsed to dots.
func usernameBase(fullName string) string {
	base := strings.ToLower(strings.TrimSpace(fullName))
	base = nonUsernameChars.ReplaceAllString(base, ".")
	base = strings.Trim(base, ".")
	if len(base) < 3 {
		return fallbackUsername
	}
	return base
}

// generatePassword builds a random password from the charset using
// crypto/rand.
func generatePassword(length int) (string, error) {
	if length <= 0 {
		return "", shared.NewDomainError("INVALID_PASSWORD_LENGTH", "Password length must be positive")
	}

	var sb strings.Builder
	sb.Grow(length)
	max := big.NewInt(int64(len(passwordCharset)))
	for j := 0; j < length; j++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate password: %w", err)
		}
		sb.WriteByte(passwordCharset[n.Int64()])
	}
	return sb.String(), nil
}
