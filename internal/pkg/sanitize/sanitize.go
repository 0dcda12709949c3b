// Package sanitize validates and repairs untrusted admin input before it
// reaches the store. The Repair helpers strip characters outside each
// column's legal alphabet rather than rejecting the cell outright; the
// subsequent validators still reject anything the repair couldn't save.
package sanitize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MinValue = -1000000
	MaxValue = 1000000

	MinYear = 1900
	MaxYear = 2100
)

var (
	uuidChars   = regexp.MustCompile(`[^a-f0-9-]`)
	digitChars  = regexp.MustCompile(`[^0-9]`)
	numberChars = regexp.MustCompile(`[^0-9.\-]`)
	headerChars = regexp.MustCompile(`[^a-z_]`)
	searchChars = regexp.MustCompile(`[^\w\s-]`)
)

func RepairUUID(s string) string {
	return uuidChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "")
}

func RepairYear(s string) string {
	return digitChars.ReplaceAllString(strings.TrimSpace(s), "")
}

func RepairNumber(s string) string {
	return numberChars.ReplaceAllString(strings.TrimSpace(s), "")
}

func RepairHeader(s string) string {
	return headerChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "")
}

// IsValidUUID accepts only the canonical hyphenated form.
func IsValidUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// Number parses a numeric string and rejects values outside the accepted
// range. Returns false for anything non-finite or unparseable.
func Number(s string) (float64, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}

	val := d.InexactFloat64()
	if val < MinValue || val > MaxValue {
		return 0, false
	}

	return val, true
}

// Year parses a 4-digit year within the accepted range.
func Year(s string) (int, bool) {
	if len(s) != 4 {
		return 0, false
	}

	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	if year < MinYear || year > MaxYear {
		return 0, false
	}

	return year, true
}

func SearchQuery(s string) string {
	s = searchChars.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}
