package generator

import (
	"fmt"
	"strings"
)

// line is one output line at a logical nesting depth.
type line struct {
	depth int
	text  string
}

// lines collects output as (depth, text) pairs. Emitters only decide depth;
// rendering to indented text happens once in String.
type lines struct {
	indent string
	out    []line
}

func newLines(indent string) *lines {
	return &lines{indent: indent}
}

// add appends a line at depth.
func (l *lines) add(depth int, text string) {
	l.out = append(l.out, line{depth: depth, text: text})
}

// addf appends a formatted line at depth.
func (l *lines) addf(depth int, format string, args ...any) {
	l.add(depth, fmt.Sprintf(format, args...))
}

// blank appends an empty line.
func (l *lines) blank() {
	l.out = append(l.out, line{})
}

// block appends a multi-line literal, each line shifted by depth. Leading
// spaces inside the literal are kept as-is.
func (l *lines) block(depth int, text string) {
	for _, s := range strings.Split(text, "\n") {
		if s == "" {
			l.blank()
			continue
		}
		l.add(depth, s)
	}
}

// String renders the collected lines. Empty lines carry no indentation.
func (l *lines) String() string {
	var sb strings.Builder
	for i, ln := range l.out {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if ln.text == "" {
			continue
		}
		sb.WriteString(strings.Repeat(l.indent, ln.depth))
		sb.WriteString(ln.text)
	}
	return sb.String()
}
