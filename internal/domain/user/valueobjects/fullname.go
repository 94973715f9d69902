package valueobjects

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type FullName struct {
	value string
}

func NewFullName(value string) (FullName, error) {
	normalized := strings.Join(strings.Fields(value), " ")
	if normalized == "" {
		return FullName{}, fmt.Errorf("full name cannot be empty")
	}
	if len(normalized) > 100 {
		return FullName{}, fmt.Errorf("full name cannot exceed 100 characters")
	}
	return FullName{value: normalized}, nil
}

func (n FullName) String() string {
	return n.value
}

// DisplayName title-cases each word for pickers and headers. A Caser holds
// state, so each call gets its own.
func (n FullName) DisplayName() string {
	return cases.Title(language.Und).String(n.value)
}

func (n FullName) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(n.value) {
		r := []rune(part)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}
