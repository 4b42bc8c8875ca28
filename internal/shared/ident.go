package shared

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewID returns a short identifier scoped by an entity-type prefix,
// e.g. "C-4F2A1B". The suffix is six hex characters of fresh UUID entropy.
func NewID(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(raw[:6]))
}
