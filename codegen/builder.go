package codegen

import (
	"fmt"
	"strings"
)

// Options configures a Builder. All fields are optional with sensible
// defaults.
type Options struct {
	// Indent is the starting indentation depth.
	// Default: 0
	Indent int

	// TabString is the text inserted once per indentation level.
	// Default: "\t"
	TabString string

	// IndentBraces adds one extra tab before brace characters themselves
	// (Whitesmiths-style brace placement).
	// Default: false
	IndentBraces bool

	// CommentWrap is the column width comments are word-wrapped to.
	// Zero means the default; negative disables wrapping.
	// Default: 120
	CommentWrap int
}

// Builder accumulates lines of generated source text with controlled
// indentation. Create one per output file and consume it once with
// WriteFile.
type Builder struct {
	lines        []string
	indent       int
	tabStr       string
	indentBraces bool
	commentWrap  int
}

// New creates a Builder. Pass nil for defaults (tab indentation,
// comments wrapped at 120 columns).
func New(opts *Options) *Builder {
	if opts == nil {
		opts = &Options{CommentWrap: 120}
	}
	tab := opts.TabString
	if tab == "" {
		tab = "\t"
	}
	wrap := opts.CommentWrap
	if wrap == 0 {
		wrap = 120
	}
	return &Builder{
		indent:       opts.Indent,
		tabStr:       tab,
		indentBraces: opts.IndentBraces,
		commentWrap:  wrap,
	}
}

// Line appends one line at the current indentation. Empty text appends a
// blank line with no indentation prefix.
func (b *Builder) Line(text string) {
	b.LineAt(0, text)
}

// Linef appends a formatted line at the current indentation.
func (b *Builder) Linef(format string, args ...any) {
	b.Line(fmt.Sprintf(format, args...))
}

// LineAt appends one line indented at the current depth plus adjust.
// Useful for labels and case statements that sit one level shallower than
// the surrounding body. Empty text appends a blank line.
func (b *Builder) LineAt(adjust int, text string) {
	if text == "" {
		b.lines = append(b.lines, "")
		return
	}
	depth := b.indent + adjust
	if depth < 0 {
		depth = 0
	}
	b.lines = append(b.lines, strings.Repeat(b.tabStr, depth)+text)
}

// Raw appends one line verbatim, with no indentation prefix.
func (b *Builder) Raw(text string) {
	b.lines = append(b.lines, text)
}

// Append concatenates text onto the last emitted line. It is a no-op when
// text is empty or no line has been emitted yet.
func (b *Builder) Append(text string) {
	if text == "" || len(b.lines) == 0 {
		return
	}
	b.lines[len(b.lines)-1] += text
}

// InlineBlock appends a compact single-line block `{ text }` at the current
// indentation, with an optional trailing comma. Used for one-line
// initializer lists and table entries.
func (b *Builder) InlineBlock(text string, comma bool) {
	var sb strings.Builder
	if b.indentBraces {
		sb.WriteString(b.tabStr)
	}
	sb.WriteString("{ ")
	sb.WriteString(text)
	sb.WriteString(" }")
	if comma {
		sb.WriteString(",")
	}
	b.Line(sb.String())
}

// Comment appends text as line comments at the current indentation,
// word-wrapped to the configured width. Empty text emits nothing.
func (b *Builder) Comment(text string) {
	for _, line := range wrapWords(text, b.commentWrap) {
		b.Line("// " + line)
	}
}

// Len returns the number of accumulated lines.
func (b *Builder) Len() int {
	return len(b.lines)
}

// Lines returns a copy of the accumulated lines.
func (b *Builder) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// String returns the accumulated text, one trailing newline per line.
func (b *Builder) String() string {
	var sb strings.Builder
	for _, line := range b.lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Bytes returns the accumulated text as a byte slice.
func (b *Builder) Bytes() []byte {
	return []byte(b.String())
}

// wrapWords greedily wraps text at word boundaries so that no line exceeds
// width columns, except for single words longer than the width, which stand
// alone. Width <= 0 disables wrapping. Returns no lines for whitespace-only
// input.
func wrapWords(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= width {
			current += " " + word
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	return append(lines, current)
}
