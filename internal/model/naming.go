package model

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// slugRe matches characters that are not lowercase alphanumeric or hyphens.
var slugRe = regexp.MustCompile(`[^a-z0-9-]+`)

// Slugify converts a label to a file-name-safe slug: lowercase, hyphens for
// spaces and special characters.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = slugRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	if len(s) > 40 {
		s = s[:40]
		s = strings.TrimRight(s, "-")
	}
	return s
}

var (
	identRe    = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	nonIdentRe = regexp.MustCompile(`[^A-Za-z0-9]+`)
)

// IsIdentifier reports whether s can be used as-is as a class or component
// name in every generated language.
func IsIdentifier(s string) bool {
	return identRe.MatchString(s)
}

// Identifier turns free text such as "login form" or "sign-up" into an
// exported identifier ("LoginForm", "SignUp"). Letters keep their case
// apart from the first of each word. It returns "" when nothing usable
// remains.
func Identifier(s string) string {
	var b strings.Builder
	for _, part := range nonIdentRe.Split(s, -1) {
		if part == "" {
			continue
		}
		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	name := b.String()
	if name != "" && unicode.IsDigit([]rune(name)[0]) {
		name = "UI" + name
	}
	return name
}

// ComponentName turns a label such as a file name ("login-screen.json") into
// an exported identifier ("LoginScreen"). It returns "" when nothing usable
// remains, so callers fall back to the framework default.
func ComponentName(label string) string {
	base := filepath.Base(label)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	slug := Slugify(base)
	if slug == "" {
		return ""
	}
	var b strings.Builder
	for _, part := range strings.Split(slug, "-") {
		if part == "" {
			continue
		}
		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	name := b.String()
	if name == "" || unicode.IsDigit([]rune(name)[0]) {
		name = "UI" + name
	}
	return name
}
