package tokens

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// HMACStrategy выпускает и проверяет токены вида base64(payload.signature),
// payload несёт id пользователя и срок действия.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
}

func NewHMACStrategy(secret string, ttl time.Duration) *HMACStrategy {
	return &HMACStrategy{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *HMACStrategy) IssueToken(userID int64) (string, error) {
	expiresAt := time.Now().Add(s.ttl).Unix()
	payload := fmt.Sprintf("%d:%d", userID, expiresAt)
	signature := s.sign(payload)

	token := payload + "." + signature
	return base64.URLEncoding.EncodeToString([]byte(token)), nil
}

func (s *HMACStrategy) ParseToken(token string) (int64, error) {
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return 0, ErrInvalidToken
	}

	payload, signature, ok := strings.Cut(string(raw), ".")
	if !ok {
		return 0, ErrInvalidToken
	}
	if !hmac.Equal([]byte(signature), []byte(s.sign(payload))) {
		return 0, ErrInvalidToken
	}

	userIDPart, expiresPart, ok := strings.Cut(payload, ":")
	if !ok {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(userIDPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	expiresAt, err := strconv.ParseInt(expiresPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	if time.Now().Unix() > expiresAt {
		return 0, ErrTokenExpired
	}

	return userID, nil
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.URLEncoding.EncodeToString(mac.Sum(nil))
}
