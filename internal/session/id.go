package session

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateID returns a random token identifier (jti).
func GenerateID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("session: failed to generate id: %w", err)
	}
	return id.String(), nil
}
