package utils

import (
	"strings"

	"github.com/google/uuid"
)

func GetUUID() string {
	return uuid.New().String()
}

// NewShareToken returns an opaque unguessable token for public itinerary links.
func NewShareToken() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
