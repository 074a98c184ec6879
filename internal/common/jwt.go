package common

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret = []byte(os.Getenv("JWT_SECRET"))

// Claims carried by the externally issued identity token. The core does not
// authenticate anyone itself; it only validates tokens minted by the
// identity/session collaborator.
type Claims struct {
	IdentityID uint64 `json:"identity_id"`
	Handle     string `json:"handle"`
	Admin      bool   `json:"admin"`
	jwt.RegisteredClaims
}

// GenerateToken mints a token for an identity. Used by tests and by the
// session collaborator in development setups.
func GenerateToken(identityID uint64, handle string, admin bool) (string, error) {
	claims := &Claims{
		IdentityID: identityID,
		Handle:     handle,
		Admin:      admin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "gocircle",
			Subject:   "viewer-identity",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ValidToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
