package exception

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TemplatePrefix is prepended to every derived template name.
const TemplatePrefix = "error/"

const interfaceSuffix = "Interface"

// TemplateName derives the view name for a marker:
//
//	App\Errors\NotFoundInterface    -> error/not-found
//	pkgerror.ServiceUnavailable     -> error/service-unavailable
//	Simple                          -> error/simple
//
// The namespace (anything up to the last '\', '/' or '.') is dropped, a
// trailing "Interface" is removed, and the camel case name is dashed and
// lowercased.
func TemplateName(name string) string {
	if i := strings.LastIndexAny(name, `\/.`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, interfaceSuffix)

	return TemplatePrefix + cases.Lower(language.Und).String(camelCaseToDash(name))
}

// camelCaseToDash inserts '-' before an upper case rune that follows a lower
// case rune or digit, or that starts a new word after an acronym
// ("HTTPVersion" -> "HTTP-Version").
func camelCaseToDash(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			switch {
			case unicode.IsLower(prev), unicode.IsDigit(prev):
				b.WriteByte('-')
			case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				b.WriteByte('-')
			}
		}
		b.WriteRune(r)
	}

	return b.String()
}
