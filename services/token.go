package services

import (
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"

	"hostelhub/errors"
	"hostelhub/models"
)

type UserInfo struct {
	UserId uint   `json:"userid"`
	Role   string `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateToken tạo JWT cho user, hết hạn sau 7 ngày
func GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		UserInfo: UserInfo{
			UserId: user.ID,
			Role:   user.Role,
		},
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(7 * 24 * time.Hour).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// GetUserIDFromToken lấy userID và role từ token
func GetUserIDFromToken(tokenString string) (uint, string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "unexpected signing method", nil)
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "invalid or expired token", err)
	}

	if claims.UserInfo.UserId == 0 {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "token has no user info", nil)
	}

	return claims.UserInfo.UserId, claims.UserInfo.Role, nil
}
