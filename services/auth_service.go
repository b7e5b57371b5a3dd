package services

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// HashPassword băm mật khẩu bằng bcrypt
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword so sánh mật khẩu với hash đã lưu
func CheckPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

// NormalizeEmail chuẩn hóa email trước khi lưu hoặc tra cứu
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
