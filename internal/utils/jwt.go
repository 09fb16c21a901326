package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-projects-api/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	errInvalidTokenParams     = errors.New("invalid params for JWT token manager")
	errUnsupportedSignMethod  = errors.New("unsupported JWT signing method")
	errInvalidAuthorization   = errors.New("invalid authorization header")
	errEmptyTokenSubject      = errors.New("empty subject error")
	errTokenWithoutExpiration = errors.New("token has no expiration")
)

// TokenManager issues and validates HMAC-signed access tokens.
//
// Only "sub" (decimal user id), "exp" and "iat" are set. Validation accepts
// nothing but the configured signing method, which rules out "none" and
// asymmetric algorithm confusion.
type TokenManager struct {
	signKey []byte
	method  jwt.SigningMethod
	ttl     time.Duration

	now func() time.Time
}

// NewTokenManager creates a TokenManager signing with algorithm (HS256,
// HS384 or HS512) and signKey. Tokens live for ttl.
//
// Example usage:
//
//	tm, err := utils.NewTokenManager("secret", "HS256", time.Hour)
func NewTokenManager(signKey, algorithm string, ttl time.Duration) (*TokenManager, error) {
	if signKey == "" || ttl <= 0 {
		return nil, errInvalidTokenParams
	}

	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnsupportedSignMethod, algorithm)
	}

	return &TokenManager{
		signKey: []byte(signKey),
		method:  method,
		ttl:     ttl,
		now:     time.Now,
	}, nil
}

// Issue creates a signed token for userID expiring ttl from now.
//
// Returns:
//
//	models.Token - contains the signed token string and the jwt.Token object
//	error        - non-nil if signing fails
func (m *TokenManager) Issue(userID int64) (models.Token, error) {
	now := m.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(m.method, claims)
	tokenString, err := token.SignedString(m.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims,
		SignedString:     tokenString,
		UserID:           userID,
	}, nil
}

// Validate verifies the signature and expiry of tokenString and extracts
// the user id from its subject.
//
// Validation includes:
//   - signing method must equal the configured one
//   - signature verification with the sign key
//   - "exp" must be present and in the future
//   - "sub" must be present and a base-10 int64
func (m *TokenManager) Validate(tokenString string) (models.Token, error) {
	parsed := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		return m.signKey, nil
	},
		jwt.WithValidMethods([]string{m.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if parsed.ExpiresAt == nil {
		return models.Token{}, errTokenWithoutExpiration
	}

	if parsed.Subject == "" {
		return models.Token{}, errEmptyTokenSubject
	}

	userID, err := parsed.GetUserID()
	if err != nil {
		return models.Token{}, err
	}

	parsed.Token = token
	parsed.SignedString = tokenString
	parsed.UserID = userID

	return *parsed, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errInvalidAuthorization
	}

	return parts[1], nil
}
