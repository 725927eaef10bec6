package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/deskhub/deskhub/internal/application/user/usecases"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/biztime"
)

const purposePasswordReset = "password_reset"

// Claims carry the profile id as the subject. The role is informational:
// the session middleware reloads the profile on every request. Purpose is
// empty on access tokens; reset tokens also carry the password fingerprint
// they were issued against.
type Claims struct {
	Role        authorization.UserRole `json:"role,omitempty"`
	Purpose     string                 `json:"purpose,omitempty"`
	Fingerprint string                 `json:"pwf,omitempty"`
	jwt.RegisteredClaims
}

// UserID parses the subject back into a profile id.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid token subject %q", c.Subject)
	}
	return uint(id), nil
}

type JWTService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

var (
	_ usecases.JWTService        = (*JWTService)(nil)
	_ usecases.ResetTokenService = (*JWTService)(nil)
)

func NewJWTService(secret, issuer string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    biztime.NowUTC,
	}
}

func (s *JWTService) Generate(userID uint, role authorization.UserRole) (*usecases.TokenPair, error) {
	now := s.now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	return &usecases.TokenPair{
		AccessToken: signed,
		ExpiresIn:   int64(s.ttl / time.Second),
	}, nil
}

// Verify accepts access tokens only.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Purpose != "" {
		return nil, fmt.Errorf("%w: not an access token", jwt.ErrTokenInvalidClaims)
	}
	return claims, nil
}

// GenerateResetToken issues a password reset token for userID bound to
// fingerprint, valid for ttl.
func (s *JWTService) GenerateResetToken(userID uint, fingerprint string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := &Claims{
		Purpose:     purposePasswordReset,
		Fingerprint: fingerprint,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign reset token: %w", err)
	}
	return signed, nil
}

// VerifyResetToken returns the user id and fingerprint of a valid reset
// token. Access tokens are rejected.
func (s *JWTService) VerifyResetToken(tokenString string) (uint, string, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return 0, "", err
	}
	if claims.Purpose != purposePasswordReset || claims.Fingerprint == "" {
		return 0, "", fmt.Errorf("%w: not a reset token", jwt.ErrTokenInvalidClaims)
	}
	id, err := claims.UserID()
	if err != nil {
		return 0, "", err
	}
	return id, claims.Fingerprint, nil
}

func (s *JWTService) parse(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// AccessTTL is the lifetime stamped on new tokens.
func (s *JWTService) AccessTTL() time.Duration {
	return s.ttl
}
