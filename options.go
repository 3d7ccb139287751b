package casing

// camelConfig holds the per-call settings for [ToCamel].
type camelConfig struct {
	preserveAcronyms bool
}

// CamelOption configures a single [ToCamel] call.
type CamelOption func(*camelConfig)

// PreserveAcronyms keeps a leading acronym token intact instead of
// lowercasing it, so "APIClient" becomes "APIClient" rather than
// "apiClient" and "FOO_BAR" becomes "FOOBar". A token counts as an acronym
// when it is entirely uppercase letters and digits and at least two
// characters long. Tokens after the first are always capitalized the
// regular way.
//
// Default: false.
func PreserveAcronyms(preserve bool) CamelOption {
	return func(c *camelConfig) {
		c.preserveAcronyms = preserve
	}
}
