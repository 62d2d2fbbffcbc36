package models

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID builds a record identifier like "CND3F2A91B04C7D": a short
// entity prefix followed by 12 uppercase hex characters.
func GenerateID(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + strings.ToUpper(raw[:12])
}
