package shipment

import (
	"crypto/rand"
	"fmt"
	"strings"
	"unicode"
)

const (
	trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	trackingLength   = 16
)

// NewTrackingNumber генерирует 16 символов A-Z0-9, хранится без разделителей.
func NewTrackingNumber() (string, error) {
	// байты от 252 отбрасываются: 256 не делится на 36 нацело,
	// и остаток по модулю перекосил бы распределение к началу алфавита
	const maxUniform = 256 - 256%36

	out := make([]byte, 0, trackingLength)
	buf := make([]byte, 2*trackingLength)
	for len(out) < trackingLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("generate tracking number: %w", err)
		}
		for _, b := range buf {
			if int(b) >= maxUniform {
				continue
			}
			out = append(out, trackingAlphabet[int(b)%len(trackingAlphabet)])
			if len(out) == trackingLength {
				break
			}
		}
	}
	return string(out), nil
}

// NormalizeTrackingNumber приводит пользовательский ввод к ключу поиска:
// верхний регистр, только буквы и цифры.
func NormalizeTrackingNumber(raw string) string {
	var sb strings.Builder
	for _, char := range strings.ToUpper(raw) {
		if unicode.IsLetter(char) || unicode.IsDigit(char) {
			sb.WriteRune(char)
		}
	}
	return sb.String()
}

// FormatTrackingNumber - отображаемый вид, четвёрки через дефис.
func FormatTrackingNumber(trackingNumber string) string {
	var parts []string
	for i := 0; i < len(trackingNumber); i += 4 {
		end := i + 4
		if end > len(trackingNumber) {
			end = len(trackingNumber)
		}
		parts = append(parts, trackingNumber[i:end])
	}
	return strings.Join(parts, "-")
}
