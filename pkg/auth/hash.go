package auth

//go:generate mockgen -source=hash.go -destination=mock_hash.go -package=auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/argon2"
)

const (
	defaultTime    = 1
	defaultMemory  = 64 * 1024
	defaultThreads = 2
	keyLen         = 32
	saltLen        = 16
)

type HashServiceInterface interface {
	HashPassword(password string) (hash string, salt string, err error)
	VerifyPassword(password, hash, salt string) bool
}

// HashService hashes passwords with argon2id. Zero fields fall back to defaults.
type HashService struct {
	Time    uint32
	Memory  uint32
	Threads uint8
}

func NewHashService(time, memory uint32, threads uint8) *HashService {
	return &HashService{Time: time, Memory: memory, Threads: threads}
}

func (h *HashService) HashPassword(password string) (string, string, error) {
	if password == "" {
		return "", "", errors.New("password cannot be empty")
	}

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", "", err
	}

	key := h.derive(password, salt)
	return base64.RawStdEncoding.EncodeToString(key), base64.RawStdEncoding.EncodeToString(salt), nil
}

func (h *HashService) VerifyPassword(password, hash, salt string) bool {
	if password == "" || hash == "" || salt == "" {
		return false
	}

	rawSalt, err := base64.RawStdEncoding.DecodeString(salt)
	if err != nil {
		return false
	}
	expected, err := base64.RawStdEncoding.DecodeString(hash)
	if err != nil || len(expected) != keyLen {
		return false
	}

	return subtle.ConstantTimeCompare(h.derive(password, rawSalt), expected) == 1
}

func (h *HashService) derive(password string, salt []byte) []byte {
	t, m, p := h.Time, h.Memory, h.Threads
	if t == 0 {
		t = defaultTime
	}
	if m == 0 {
		m = defaultMemory
	}
	if p == 0 {
		p = defaultThreads
	}
	return argon2.IDKey([]byte(password), salt, t, m, p, keyLen)
}
