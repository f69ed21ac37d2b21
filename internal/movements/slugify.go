package movements

import "strings"

// Slugify turns a free-form movement name into a canonical-id shaped string:
// lowercase, runs of whitespace and hyphens become single underscores,
// anything outside [a-z0-9_] is dropped, repeated underscores collapse, and
// leading/trailing underscores are trimmed. An empty result yields
// CanonicalUnknown. For an already-canonical id the transform is the identity.
func Slugify(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	b.Grow(len(lower))
	lastUnderscore := false
	for _, r := range lower {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-' || r == '_':
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastUnderscore = false
		default:
			// dropped
		}
	}

	slug := strings.Trim(b.String(), "_")
	if slug == "" {
		return CanonicalUnknown
	}
	return slug
}

// DisplayName derives a human-readable name from a canonical id: underscores
// become spaces and each token is title-cased.
func DisplayName(canonicalID string) string {
	parts := strings.Split(canonicalID, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
