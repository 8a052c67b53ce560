package compare

import (
	"strings"
	"time"
)

// wikiPrefix is the only accepted prefix of article URLs.
const wikiPrefix = "https://en.wikipedia.org/wiki/"

// ExtractTitle returns the title part of a Wikipedia article URL,
// taken as-is, without any decoding.
func ExtractTitle(u string) (string, error) {
	if !strings.HasPrefix(u, wikiPrefix) {
		return "", &InvalidInputError{Reason: "URL must be from en.wikipedia.org"}
	}
	return strings.TrimPrefix(u, wikiPrefix), nil
}

// dateLayout is the wire format of dates in the pageviews API.
const dateLayout = "20060102"

// ValidateDate checks that the given string is a valid YYYYMMDD calendar
// date and returns it unchanged.
func ValidateDate(date string) (string, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return "", &InvalidInputError{Reason: "Date must be in YYYYMMDD format"}
	}
	return date, nil
}
