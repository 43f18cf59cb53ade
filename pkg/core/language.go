package core

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language is one content language, stored under content/<Code>.
type Language struct {
	Code string
	Name string
}

func (l Language) String() string {
	return l.Code
}

// ParseLanguage validates a BCP 47 code and resolves its English display name.
// The code is kept as given since it doubles as a directory name.
func ParseLanguage(code string) (Language, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Language{}, fmt.Errorf("%w: empty code", ErrInvalidLanguage)
	}
	tag, err := language.Parse(code)
	if err != nil {
		return Language{}, fmt.Errorf("%w %q: %v", ErrInvalidLanguage, code, err)
	}

	name := display.English.Tags().Name(tag)
	if name == "" {
		name = code
	}
	return Language{Code: code, Name: name}, nil
}

// ParseLanguages parses a list of codes, rejecting duplicates.
func ParseLanguages(codes []string) ([]Language, error) {
	if len(codes) == 0 {
		return nil, ErrNoLanguages
	}

	langs := make([]Language, 0, len(codes))
	seen := make(map[string]bool, len(codes))
	for _, c := range codes {
		l, err := ParseLanguage(c)
		if err != nil {
			return nil, err
		}
		if seen[l.Code] {
			return nil, fmt.Errorf("%w: %q listed twice", ErrInvalidLanguage, l.Code)
		}
		seen[l.Code] = true
		langs = append(langs, l)
	}
	return langs, nil
}
