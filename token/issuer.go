package token

import (
	stderrors "errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrInvalidToken is returned by Verify for any token that fails
// signature, structure, or expiry checks.
var ErrInvalidToken = stderrors.New("invalid token")

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// DefaultTTL bounds a session token's lifetime when no explicit TTL is
// configured.
const DefaultTTL = 24 * time.Hour

// Issuer produces and verifies signed session tokens binding a session
// to an account identifier. Tokens are stateless: nothing is persisted
// server-side, so expiry is the only revocation mechanism.
type Issuer struct {
	signer Signer
	ttl    time.Duration
}

// NewIssuer creates an Issuer with the given signer and token lifetime.
func NewIssuer(signer Signer, ttl time.Duration) (*Issuer, error) {
	if signer == nil {
		return nil, errors.New("[NewIssuer] signer is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{signer: signer, ttl: ttl}, nil
}

// Issue creates a signed token for the account identifier. Claims carry
// issued-at and expiry timestamps plus a unique token ID.
func (i *Issuer) Issue(accountID string) (string, error) {
	if accountID == "" {
		return "", errors.New("[Issuer.Issue] account identifier is required")
	}

	now := NowTimeFunc()
	claims := jwt.MapClaims{
		"sub": accountID,
		"iat": now.Unix(),
		"exp": now.Add(i.ttl).Unix(),
		"jti": uuid.New().String(),
	}

	signedToken, err := i.signer.Sign(claims)
	if err != nil {
		return "", errors.Wrap(err, "[Issuer.Issue] signer.Sign")
	}
	return signedToken, nil
}

// Verify parses and validates a raw token, returning the bound account
// identifier. Bad signatures, malformed tokens, missing expiry, and
// expired tokens all fail with ErrInvalidToken.
func (i *Issuer) Verify(rawToken string) (string, error) {
	parsed, err := jwt.Parse(rawToken,
		i.signer.GetVerificationKey,
		jwt.WithValidMethods([]string{i.signer.GetSigningMethod().Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(NowTimeFunc),
	)
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	accountID, err := parsed.Claims.GetSubject()
	if err != nil || accountID == "" {
		return "", ErrInvalidToken
	}
	return accountID, nil
}
