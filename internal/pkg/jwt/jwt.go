package jwt

import (
	"errors"
	"time"

	"guestlink/internal/domain/link"
	"guestlink/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims of a registration link token.
type Claims struct {
	LinkID int64  `json:"link_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey []byte
	issuer    string
	now       func() time.Time
}

// NewService builds the codec. Issue and expiry times are read from clk.
func NewService(secretKey, issuer string, clk clock.Clock) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		now:       clk.Now,
	}
}

// GenerateToken mints a link token. Used by staff tooling and tests; issuing links is not part of the guest flow.
func (s *Service) GenerateToken(linkID int64, role link.Role, expiresAt time.Time) (string, error) {
	claims := Claims{
		LinkID: linkID,
		Role:   role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithTimeFunc(s.now)}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	}, opts...)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.LinkID <= 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Decode converts validated claims into the link domain's view of a token.
func (c *Claims) Decode() *link.DecodedToken {
	d := &link.DecodedToken{
		LinkID: c.LinkID,
		Role:   link.Role(c.Role),
	}
	if c.IssuedAt != nil {
		d.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		d.ExpiresAt = c.ExpiresAt.Time
	}
	return d
}
