package kernel

import (
	"strings"
)

// Address is a postal address in the shape the label-purchasing system expects.
// Fields are stored exactly as received; callers decide when to normalize.
type Address struct {
	Name    string `yaml:"name" json:"name"`
	Company string `yaml:"company" json:"company"`
	Street1 string `yaml:"street1" json:"street1"`
	Street2 string `yaml:"street2" json:"street2"`
	City    string `yaml:"city" json:"city"`
	State   string `yaml:"state" json:"state"`
	Zip     string `yaml:"zip" json:"zip"`
	Country string `yaml:"country" json:"country"`
	Phone   string `yaml:"phone" json:"phone"`
	Email   string `yaml:"email" json:"email"`
}

// IsZero reports whether no field is set.
func (a Address) IsZero() bool {
	return a == Address{}
}

// FullName joins first and last name the way recipient names are printed on labels.
func FullName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

// NormalizePostalCode repairs postal codes damaged by spreadsheet round trips.
//
// Rules:
//   - surrounding whitespace is trimmed
//   - all-digit codes shorter than five digits are left-padded with zeros ("2134" -> "02134")
//   - nine-digit codes get the ZIP+4 hyphen ("021341234" -> "02134-1234")
//   - anything else is returned trimmed and otherwise untouched
func NormalizePostalCode(code string) string {
	code = strings.TrimSpace(code)
	if code == "" || !isDigits(code) {
		return code
	}

	switch {
	case len(code) < 5:
		return strings.Repeat("0", 5-len(code)) + code
	case len(code) == 9:
		return code[:5] + "-" + code[5:]
	default:
		return code
	}
}

// isDigits accepts ASCII 0-9 only. Byte length is used for padding.
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
