package security

import (
	"encoding/json"
	"errors"
	"time"

	"request_desk/internal/platform/config"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

var TokenAuth *jwtauth.JWTAuth

func InitJWT() {
	TokenAuth = jwtauth.New("HS256", config.AppConfig.JWTKey, nil)
}

func GenerateToken(userID int, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(config.AppConfig.JWTExp).Unix(),
		"iat":     time.Now().Unix(),
	}
	_, tokenString, err := TokenAuth.Encode(claims)
	return tokenString, err
}

// GetUserIDFromClaims extracts the user id private claim. Decoded JSON numbers
// arrive as float64 or json.Number depending on the decoder.
func GetUserIDFromClaims(claims jwt.MapClaims) (int, error) {
	switch id := claims["user_id"].(type) {
	case float64:
		return int(id), nil
	case json.Number:
		n, err := id.Int64()
		if err != nil {
			return 0, errors.New("user_id claim is not an integer")
		}
		return int(n), nil
	case int:
		return id, nil
	default:
		return 0, errors.New("user_id claim is missing or not a number")
	}
}

func GetUserRoleFromClaims(claims jwt.MapClaims) (string, error) {
	role, ok := claims["role"].(string)
	if !ok {
		return "", errors.New("role claim is missing or not a string")
	}
	return role, nil
}
