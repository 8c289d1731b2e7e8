package generator

import (
	"fmt"

	"github.com/google/uuid"
)

// UUID produces a random (version 4) UUID in its canonical text form.
type UUID struct{}

func (g *UUID) Generate(params map[string]string) ([]byte, error) {
	for name := range params {
		return nil, &Error{Kind: KindUUID, Reason: fmt.Sprintf("unsupported parameter %q", name)}
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("reading random source: %w", err)
	}
	return []byte(id.String()), nil
}
