package pagesift

import (
	"regexp"
	"strings"
)

// FieldType is the inferred semantic type of a scalar field value.
type FieldType string

// Field types recognized by Classify.
const (
	FieldEmail    FieldType = "email"
	FieldPhone    FieldType = "phone"
	FieldURL      FieldType = "url"
	FieldDate     FieldType = "date"
	FieldCurrency FieldType = "currency"
	FieldNumber   FieldType = "number"
	FieldRating   FieldType = "rating"
	FieldText     FieldType = "text"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]?[\d\s\-()]{7,15}$`)
	urlPattern   = regexp.MustCompile(`^https?://`)
	datePattern  = regexp.MustCompile(`^\d{1,2}[-/]\d{1,2}[-/]\d{2,4}$|^\d{4}[-/]\d{1,2}[-/]\d{1,2}$`)
	moneyPattern = regexp.MustCompile(`^[$€£¥]?\d+([,.]\d{2,3})*([.,]\d{1,2})?[$€£¥]?$`)
	numPattern   = regexp.MustCompile(`^\d+([.,]\d+)*$`)
	ratePattern  = regexp.MustCompile(`(?i)^\d+(\.\d+)?/\d+$|^\d+(\.\d+)?\s?(star|★|out of)`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// Classify infers the semantic type of a scalar value. It is total over all
// strings and never fails; unrecognized values classify as FieldText.
//
// Checks run in a fixed priority order because the patterns overlap: a
// currency amount would otherwise match the plain number pattern, and a
// rating like "4.5/5" must not be consumed by earlier numeric checks.
// Phone, currency and number tolerate internal whitespace by matching
// against a whitespace-stripped copy of the value.
func Classify(value string) FieldType {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return FieldText
	}
	stripped := spacePattern.ReplaceAllString(trimmed, "")

	switch {
	case emailPattern.MatchString(trimmed):
		return FieldEmail
	case phonePattern.MatchString(stripped):
		return FieldPhone
	case urlPattern.MatchString(trimmed):
		return FieldURL
	case datePattern.MatchString(trimmed):
		return FieldDate
	case moneyPattern.MatchString(stripped):
		return FieldCurrency
	case numPattern.MatchString(stripped):
		return FieldNumber
	case ratePattern.MatchString(trimmed):
		return FieldRating
	default:
		return FieldText
	}
}
