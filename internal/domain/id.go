package domain

// shortIDLen is the length of the display form of an id. Full ids are stored
// internally but shown (and sometimes stored, depending on the registration
// path) in truncated form.
const shortIDLen = 7

// ShortID truncates an id to its display form.
func ShortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

// IDMatches reports whether a stored id reference (a sponsor id or a deposit
// owner id) refers to the candidate id. Legacy rows hold either the full or
// the truncated form on either side, so the comparison must accept a match on
// the full value, the truncated candidate, or both sides truncated. This is
// the single seam to remove if stored ids are ever migrated to one canonical
// form.
func IDMatches(stored, candidate string) bool {
	if stored == "" {
		return false
	}
	return stored == candidate ||
		stored == ShortID(candidate) ||
		ShortID(stored) == ShortID(candidate)
}
