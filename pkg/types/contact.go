package types

import "strings"

// Field limits, counted in runes.
const (
	MaxPhoneLen   = 14
	MaxLabelLen   = 29
	MaxCompanyLen = 49
	MaxEmailLen   = 49
)

// Contact is a single stored record.
//
// Blocked is set to false on creation and is not read anywhere else. The
// text format does not persist it.
type Contact struct {
	Phone   string `json:"phone"`
	Label   string `json:"label"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email,omitempty"`
	Blocked bool   `json:"blocked"`
}

// Truncate replaces line breaks with spaces, clips every field to its
// limit, and returns the result. A stored contact always fits on one line.
func (c Contact) Truncate() Contact {
	c.Phone = Clip(SingleLine(c.Phone), MaxPhoneLen)
	c.Label = Clip(SingleLine(c.Label), MaxLabelLen)
	c.Company = Clip(SingleLine(c.Company), MaxCompanyLen)
	c.Email = Clip(SingleLine(c.Email), MaxEmailLen)
	return c
}

// SingleLine returns s with every carriage return and line feed replaced
// by a space.
func SingleLine(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return ' '
		}
		return r
	}, s)
}

// HasCompany reports whether the optional company field is set.
func (c Contact) HasCompany() bool { return c.Company != "" }

// HasEmail reports whether the optional email field is set.
func (c Contact) HasEmail() bool { return c.Email != "" }

// Clip returns s cut to at most n runes.
func Clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
