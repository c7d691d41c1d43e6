package pagesift_test

import (
	"testing"

	"github.com/pagesift/pagesift"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  pagesift.FieldType
	}{
		{"email", "a@b.com", pagesift.FieldEmail},
		{"email with subdomain", "user.name@mail.example.org", pagesift.FieldEmail},
		{"phone with separators", "+1 (555) 123-4567", pagesift.FieldPhone},
		{"bare digit run is phone", "1234567", pagesift.FieldPhone},
		{"url http", "http://example.com", pagesift.FieldURL},
		{"url https", "https://example.com/path?q=1", pagesift.FieldURL},
		{"date slash", "12/31/2024", pagesift.FieldDate},
		{"date iso", "2024-01-05", pagesift.FieldDate},
		{"currency dollar", "$19.99", pagesift.FieldCurrency},
		{"currency euro suffix", "1.234,56€", pagesift.FieldCurrency},
		{"currency with spaces", "$ 1 000.50", pagesift.FieldCurrency},
		{"rating fraction", "4.5/5", pagesift.FieldRating},
		{"rating stars", "4 star", pagesift.FieldRating},
		{"rating unicode star", "4.8 ★", pagesift.FieldRating},
		{"rating out of", "9 out of 10", pagesift.FieldRating},
		{"plain text", "hello world", pagesift.FieldText},
		{"empty string", "", pagesift.FieldText},
		{"whitespace only", "   ", pagesift.FieldText},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pagesift.Classify(tt.value))
		})
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	t.Parallel()

	t.Run("email wins over url-like text", func(t *testing.T) {
		t.Parallel()
		// An email-shaped and a URL-shaped string never both match.
		assert.Equal(t, pagesift.FieldEmail, pagesift.Classify("a@b.com"))
		assert.Equal(t, pagesift.FieldURL, pagesift.Classify("https://a.b.com"))
	})

	t.Run("currency wins over number", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, pagesift.FieldCurrency, pagesift.Classify("$100"))
	})

	t.Run("long decimal is number", func(t *testing.T) {
		t.Parallel()
		// Too many fractional digits for the currency pattern.
		assert.Equal(t, pagesift.FieldNumber, pagesift.Classify("1.2345"))
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		for i := 0; i < 3; i++ {
			assert.Equal(t, pagesift.FieldRating, pagesift.Classify("4.5/5"))
		}
	})
}
