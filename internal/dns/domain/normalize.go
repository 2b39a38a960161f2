package domain

import (
	"sort"
	"strings"
)

// DecodeName undoes the provider's octal escaping of wildcard and apex
// characters in record names. Route53 returns `*` as `\052` and `@` as
// `\100`, which breaks equality comparison against caller-supplied names.
// Decoding is total: a name without escape sequences is returned unchanged.
func DecodeName(raw string) string {
	decoded := strings.ReplaceAll(raw, `\052`, "*")
	return strings.ReplaceAll(decoded, `\100`, "@")
}

// Fqdn appends a trailing dot to a name that lacks one.
func Fqdn(name string) string {
	if name != "" && !strings.HasSuffix(name, ".") {
		return name + "."
	}
	return name
}

// ParseValues splits a comma-delimited scalar into a normalized value set.
// Whitespace around entries is trimmed and empty entries are dropped.
func ParseValues(raw string) []string {
	return NormalizeValues(strings.Split(raw, ","))
}

// NormalizeValues returns a sorted copy of values with surrounding
// whitespace trimmed and empty entries dropped. The provider does not
// guarantee value ordering, so all comparisons go through this form.
func NormalizeValues(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		normalized = append(normalized, v)
	}
	sort.Strings(normalized)
	return normalized
}
