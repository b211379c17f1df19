package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid identity token")
	ErrTokenExpired = errors.New("identity token expired")
)

// Claims is the payload of an identity token issued by the identity provider.
type Claims struct {
	jwt.RegisteredClaims
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// IssueIdentityToken signs an HS256 identity token for id, the counterpart
// of ParseIdentityToken. Tests use it to mint tokens.
func IssueIdentityToken(id models.Identity, secret []byte, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		Name:    id.DisplayName,
		Email:   id.Email,
		Picture: id.AvatarURL,
	})

	s, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign identity token: %w", err)
	}
	return s, nil
}

// ParseIdentityToken verifies an HS256 identity token and returns the
// identity snapshot it carries.
func ParseIdentityToken(tokenString string, secret []byte) (models.Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return models.Identity{}, ErrTokenExpired
	case err != nil:
		return models.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	case !token.Valid:
		return models.Identity{}, ErrInvalidToken
	}

	if claims.Subject == "" {
		return models.Identity{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return models.Identity{
		ID:          claims.Subject,
		DisplayName: claims.Name,
		Email:       claims.Email,
		AvatarURL:   claims.Picture,
	}, nil
}
