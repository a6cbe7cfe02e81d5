package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más la identidad de la sesión.
// Premium viaja en el token para que el techo de ítems no requiera consultar nada.
type Claims struct {
	jwt.RegisteredClaims
	AccountID   string `json:"account_id"`
	DisplayName string `json:"display_name"`
	Premium     bool   `json:"premium"`
}

// Identity datos de sesión que se firman en el token.
type Identity struct {
	AccountID   string
	DisplayName string
	Premium     bool
}

// Generate genera un token JWT firmado con la identidad de la sesión.
func Generate(secret, issuer string, expMinutes int, id Identity) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.AccountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		AccountID:   id.AccountID,
		DisplayName: id.DisplayName,
		Premium:     id.Premium,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve la identidad firmada.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (Identity, error) {
	if secret == "" {
		return Identity{}, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Identity{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.AccountID == "" {
		return Identity{}, fmt.Errorf("claims inválidos")
	}
	return Identity{
		AccountID:   claims.AccountID,
		DisplayName: claims.DisplayName,
		Premium:     claims.Premium,
	}, nil
}
