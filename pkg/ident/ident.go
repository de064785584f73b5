// Package ident holds the identifier, slug and timestamp helpers shared by
// every persistence façade.
package ident

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const idSuffixLen = 9

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Clock returns the current instant. Repositories take one so tests can pin time.
type Clock func() time.Time

// Now is the default Clock: UTC, millisecond precision, no monotonic reading,
// so a value survives a JSON round trip unchanged.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// NewID composes a base36 millisecond timestamp with a random suffix.
// Unique in practice within one process, not a security token.
func NewID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:idSuffixLen]
	return strconv.FormatInt(now.UnixMilli(), 36) + suffix
}

// Slugify lower-cases s, strips diacritics, collapses every run of
// non-alphanumeric characters into one hyphen and trims hyphens at both ends.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, s)
	if err != nil {
		plain = s
	}
	plain = nonAlphanumeric.ReplaceAllString(strings.ToLower(plain), "-")
	return strings.Trim(plain, "-")
}
