package service

import (
	"hash/fnv"
	"strings"

	"github.com/google/uuid"
)

// newID builds a short prefixed identifier like "field-3fa2c1".
func newID(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + hex[:6]
}

// idHash is a stable non-negative hash of an entity id (FNV-1a 32-bit).
// Derived placeholder figures key off it, so the same id always produces the
// same series across runs.
func idHash(id string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return int(h.Sum32())
}
