package generator

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
)

const defaultHexBytes = 16

// Hex produces hex-encoded random bytes. The "length" parameter is the byte
// count before encoding, so the emitted string is twice as long.
type Hex struct{}

func (g *Hex) Generate(params map[string]string) ([]byte, error) {
	length := defaultHexBytes

	for name, value := range params {
		switch name {
		case "length":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, &Error{Kind: KindHex, Reason: fmt.Sprintf("length %q is not a number", value)}
			}
			length = n
		default:
			return nil, &Error{Kind: KindHex, Reason: fmt.Sprintf("unsupported parameter %q", name)}
		}
	}

	if length <= 0 {
		return nil, &Error{Kind: KindHex, Reason: fmt.Sprintf("length must be positive, got %d", length)}
	}

	raw := make([]byte, length)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("reading random source: %w", err)
	}

	encoded := make([]byte, hex.EncodedLen(len(raw)))
	hex.Encode(encoded, raw)
	return encoded, nil
}
