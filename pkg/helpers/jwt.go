package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wiratama/expense-tracker-api/internal/domain/entity"
)

// ErrTokenExpired is returned by Parse when the assertion is past its
// expiry but otherwise well formed and correctly signed.
var ErrTokenExpired = errors.New("token expired")

// ErrTokenInvalid covers malformed tokens and signature mismatches.
var ErrTokenInvalid = errors.New("invalid token")

// JWTManager issues and verifies the signed identity assertions presented
// on every protected request. Tokens are self-contained; there is no
// refresh flow, expiry forces a new login.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

// DefaultTokenTTL matches the original contract: assertions live 7 days.
const DefaultTokenTTL = 7 * 24 * time.Hour

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTManager{secret: []byte(secret), ttl: ttl}
}

// Claims carries the subject identity and role.
type Claims struct {
	UserID   string          `json:"uid"`
	UserType entity.UserType `json:"role"`
	jwt.RegisteredClaims
}

// Generate issues a signed assertion for the given identity.
func (m *JWTManager) Generate(userID string, userType entity.UserType) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   userID,
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Parse verifies the signature and expiry and decodes the claims.
func (m *JWTManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !tkn.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
