package uid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateRunID returns a random 128-bit hex identifier for a self-play run.
func GenerateRunID() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate run ID: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
