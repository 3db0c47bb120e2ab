package manifest

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// maxOpenXRNameLength mirrors XR_MAX_ACTION_SET_NAME_SIZE /
// XR_MAX_ACTION_NAME_SIZE minus the terminator OpenXR reserves.
const maxOpenXRNameLength = 63

// legalNameRune reports whether r is one of the characters OpenXR
// allows in an action/action-set name: lowercase ASCII, digits,
// '-', '_', '.'.
func legalNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_' || r == '.':
		return true
	}
	return false
}

// sanitizeName rewrites path into a legal, length-bounded OpenXR name.
// Reserved characters (anything outside legalNameRune) become '_'; a
// name that still exceeds maxOpenXRNameLength after that rewrite is
// replaced by a stable hash-derived alias, so two calls for the same
// path always agree and a collision between two different overlong
// paths is astronomically unlikely.
func sanitizeName(path string) string {
	lower := strings.ToLower(path)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if legalNameRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	clean := strings.Trim(b.String(), "_")
	if clean == "" {
		clean = "action"
	}
	if len(clean) <= maxOpenXRNameLength {
		return clean
	}
	return aliasFor(path)
}

// aliasFor returns a stable, collision-resistant short name for an
// overlong path: a fixed prefix plus the first 16 hex characters of
// the path's blake2b-256 digest.
func aliasFor(path string) string {
	sum := blake2b.Sum256([]byte(path))
	return "xrz-" + hex.EncodeToString(sum[:8])
}
