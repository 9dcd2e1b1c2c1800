package auth

import (
	"errors"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Verification failures. Callers match them with errors.Is.
var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenInvalidSignature = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
)

// VerifierConfig configures a TokenVerifier.
type VerifierConfig struct {
	Secret string
	// Leeway tolerates clock skew between issuer and verifier.
	Leeway time.Duration
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// TokenVerifier validates HS256 bearer tokens against a shared secret.
// It holds no mutable state and is safe for concurrent use.
type TokenVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// Claims describes the token payload.
type Claims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// NewTokenVerifier builds a verifier. An empty secret is rejected.
func NewTokenVerifier(cfg VerifierConfig) (*TokenVerifier, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, errors.New("token verifier: secret is required")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if cfg.Leeway > 0 {
		opts = append(opts, jwt.WithLeeway(cfg.Leeway))
	}
	if cfg.Now != nil {
		opts = append(opts, jwt.WithTimeFunc(cfg.Now))
	}

	return &TokenVerifier{secret: []byte(cfg.Secret), parser: jwt.NewParser(opts...)}, nil
}

// Verify checks signature and expiry and returns the decoded claims.
func (v *TokenVerifier) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := v.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, classifyTokenError(err)
	}
	if !parsed.Valid {
		return nil, ErrTokenInvalidSignature
	}
	if claims.UserID <= 0 {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}

// Expiry wins over other claim failures. Signature failures are reported
// as such; anything else about a token, including a future nbf, is treated
// as malformed.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrSignatureInvalid),
		errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrTokenInvalidSignature
	default:
		return ErrTokenMalformed
	}
}

// ExtractBearerToken returns the token segment of an Authorization header, or
// "" when the header carries no bearer token.
func ExtractBearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
