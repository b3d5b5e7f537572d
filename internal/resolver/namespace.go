package resolver

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Separator separates PHP namespace segments
const Separator = `\`

// GenerateNamespace turns a user supplied namespace or path such as
// "app/data/repositories" into a PHP namespace ("App\Data\Repositories").
// Slashes and dots count as separators, empty segments are dropped and the
// first letter of every segment is upper-cased.
func GenerateNamespace(s string) string {
	s = strings.NewReplacer("/", Separator, ".", Separator).Replace(strings.TrimSpace(s))

	var segments []string
	for _, segment := range strings.Split(s, Separator) {
		if segment == "" {
			continue
		}
		segments = append(segments, upperFirst(segment))
	}
	return strings.Join(segments, Separator)
}

// ShortName returns the class name without its namespace
func ShortName(class string) string {
	class = strings.TrimLeft(class, Separator)
	if i := strings.LastIndex(class, Separator); i >= 0 {
		return class[i+1:]
	}
	return class
}

// NamespaceOf returns the namespace part of a fully qualified class name
func NamespaceOf(class string) string {
	class = strings.TrimLeft(class, Separator)
	if i := strings.LastIndex(class, Separator); i >= 0 {
		return class[:i]
	}
	return ""
}

// trimPrefixFold strips prefix from s ignoring case
func trimPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
