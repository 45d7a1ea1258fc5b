package codegen

// BlockOptions configures a braced block. All fields default to false.
type BlockOptions struct {
	// Semicolon appends ";" after the closing brace (struct, class and
	// enum definitions).
	Semicolon bool

	// NoIndent keeps the body at the surrounding depth instead of
	// indenting it one level.
	NoIndent bool
}

// Block emits a braced block around body. The opening and closing braces
// are placed on their own lines at the current depth (plus one extra tab
// when IndentBraces is set), and the body runs one level deeper unless
// NoIndent is requested.
//
// The closing brace and the depth restore happen in a deferred call, so
// indentation stays balanced even when body panics. Pass nil opts for
// defaults.
func (b *Builder) Block(opts *BlockOptions, body func()) {
	if opts == nil {
		opts = &BlockOptions{}
	}

	b.brace("{", false)
	if !opts.NoIndent {
		b.indent++
	}

	defer func() {
		if !opts.NoIndent {
			b.indent--
		}
		b.brace("}", opts.Semicolon)
	}()

	body()
}

// Indent emits an optional prefix line, then runs body one indentation
// level deeper. No braces are emitted; the depth is restored via defer.
// Used for preprocessor regions and other visually nested but brace-free
// output. Pass an empty prefix to skip the leading line.
func (b *Builder) Indent(prefix string, body func()) {
	if prefix != "" {
		b.Line(prefix)
	}
	b.indent++
	defer func() { b.indent-- }()

	body()
}

// brace emits a lone brace character at the current depth, honoring the
// IndentBraces style.
func (b *Builder) brace(ch string, semicolon bool) {
	text := ch
	if b.indentBraces {
		text = b.tabStr + ch
	}
	if semicolon {
		text += ";"
	}
	b.Line(text)
}
