package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
)

const RefreshCookie = "rt"

// NewRefreshToken gera 32 bytes aleatórios em base64url. Só o hash vai
// para o banco.
func NewRefreshToken() (raw string, hash string, err error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", err
	}
	raw = base64.RawURLEncoding.EncodeToString(b)
	return raw, HashRefreshToken(raw), nil
}

func HashRefreshToken(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return base64.RawURLEncoding.EncodeToString(h[:])
}
