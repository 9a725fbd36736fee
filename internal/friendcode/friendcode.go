// Package friendcode generates, normalises and renders friend codes.
package friendcode

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	Length   = 6
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// QRSize is the default edge length of the rendered PNG in pixels.
	QRSize = 256
)

var ErrEmpty = errors.New("friend code is empty")

// Generate returns a fresh 6 character uppercase alphanumeric code.
func Generate() string {
	var sb strings.Builder
	sb.Grow(Length)
	limit := big.NewInt(int64(len(alphabet)))
	for i := 0; i < Length; i++ {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			panic(err)
		}
		sb.WriteByte(alphabet[n.Int64()])
	}
	return sb.String()
}

// Normalize trims and upper-cases a code typed by a person. Codes are
// otherwise opaque: any non-empty string is accepted.
func Normalize(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", ErrEmpty
	}
	return code, nil
}

// QR renders code as a PNG QR image.
func QR(code string, size int) ([]byte, error) {
	if code == "" {
		return nil, ErrEmpty
	}
	if size <= 0 {
		size = QRSize
	}
	return qrcode.Encode(code, qrcode.Medium, size)
}
