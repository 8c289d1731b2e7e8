package generator

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

const (
	upperChars      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars      = "abcdefghijklmnopqrstuvwxyz"
	digitChars      = "0123456789"
	symbolChars     = "!@#$%&*"
	whitespaceChars = " \t"

	alphanumericChars = upperChars + lowerChars + digitChars
)

// charsetPresets are the named character sets accepted by the "charset"
// parameter. Any other value is treated as a literal character set.
var charsetPresets = map[string]string{
	"all":        upperChars + lowerChars + digitChars + symbolChars,
	"alpha":      upperChars + lowerChars,
	"letters":    upperChars + lowerChars,
	"digits":     digitChars,
	"upper":      upperChars,
	"lower":      lowerChars,
	"symbols":    symbolChars,
	"whitespace": whitespaceChars,
}

// mustClasses maps the boolean "must_*" parameters to the character class
// whose presence they guarantee in the generated value.
var mustClasses = map[string]string{
	"must_upper":      upperChars,
	"must_lower":      lowerChars,
	"must_letter":     upperChars + lowerChars,
	"must_digit":      digitChars,
	"must_symbol":     symbolChars,
	"must_whitespace": whitespaceChars,
}

// Alphanumeric draws a random string from a character set. The default set
// is upper- and lowercase letters plus digits. Each "must_*" parameter
// guarantees at least one character of its class; the class is added to the
// drawing pool if the charset does not already cover it.
type Alphanumeric struct {
	// DefaultLength is used when no "length" parameter is given.
	DefaultLength int
}

func (g *Alphanumeric) Generate(params map[string]string) ([]byte, error) {
	length := g.DefaultLength
	charset := alphanumericChars
	var musts []string

	for name, value := range params {
		switch {
		case name == "length":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, &Error{Kind: KindAlphanumeric, Reason: fmt.Sprintf("length %q is not a number", value)}
			}
			length = n
		case name == "charset":
			if preset, ok := charsetPresets[value]; ok {
				charset = preset
			} else {
				charset = value
			}
		case name == "must_custom":
			if value == "" {
				return nil, &Error{Kind: KindAlphanumeric, Reason: "must_custom must not be empty"}
			}
			musts = append(musts, value)
		default:
			class, ok := mustClasses[name]
			if !ok {
				return nil, &Error{Kind: KindAlphanumeric, Reason: fmt.Sprintf("unsupported parameter %q", name)}
			}
			enabled, err := strconv.ParseBool(value)
			if err != nil {
				return nil, &Error{Kind: KindAlphanumeric, Reason: fmt.Sprintf("%s %q is not a boolean", name, value)}
			}
			if enabled {
				musts = append(musts, class)
			}
		}
	}

	if length <= 0 {
		return nil, &Error{Kind: KindAlphanumeric, Reason: fmt.Sprintf("length must be positive, got %d", length)}
	}
	if charset == "" {
		return nil, &Error{Kind: KindAlphanumeric, Reason: "charset must not be empty"}
	}
	if len(musts) > length {
		return nil, &Error{Kind: KindAlphanumeric, Reason: fmt.Sprintf("length %d cannot satisfy %d required character classes", length, len(musts))}
	}

	pool := []rune(charset)
	for _, class := range musts {
		for _, c := range class {
			if !strings.ContainsRune(charset, c) {
				pool = append(pool, c)
				charset += string(c)
			}
		}
	}

	out := make([]rune, 0, length)
	for _, class := range musts {
		c, err := randomRune([]rune(class))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	for len(out) < length {
		c, err := randomRune(pool)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	// the guaranteed characters must not sit at predictable positions
	if err := shuffle(out); err != nil {
		return nil, err
	}
	return []byte(string(out)), nil
}

func randomRune(chars []rune) (rune, error) {
	index, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
	if err != nil {
		return 0, fmt.Errorf("reading random source: %w", err)
	}
	return chars[index.Int64()], nil
}

func shuffle(chars []rune) error {
	for i := len(chars) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return fmt.Errorf("reading random source: %w", err)
		}
		chars[i], chars[j.Int64()] = chars[j.Int64()], chars[i]
	}
	return nil
}
