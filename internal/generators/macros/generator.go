// Package macros generates a project's convenience-macro headers:
// _macros.inl with logging/validation helper macros for implementation
// files, and _undef_macros.inl which removes them again so headers stay
// unpolluted.
package macros

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Cooolrik/stle/codegen"
	"github.com/Cooolrik/stle/generator"
	"github.com/Cooolrik/stle/project"
)

// Generator emits the paired macro headers for a project.
type Generator struct {
	cfg       project.Config
	outputDir string

	// Prefix is the short macro prefix (ctle -> "ct", giving ctLogError
	// etc.). Derived from the project name when empty.
	Prefix string

	defined []string // macro names emitted so far, in definition order
}

// New creates a macros generator writing into outputDir.
func New(cfg project.Config, outputDir string) *Generator {
	return &Generator{cfg: cfg, outputDir: outputDir}
}

// Generate builds both headers and returns the sync operations for them.
func (g *Generator) Generate() ([]generator.Operation, error) {
	defs := codegen.New(nil)
	g.defined = nil
	g.writeMacros(defs)

	undefs := codegen.New(nil)
	g.writeUndefs(undefs)

	return []generator.Operation{
		&generator.SyncFileOp{
			Path:    filepath.Join(g.outputDir, "_macros.inl"),
			Content: defs.Bytes(),
		},
		&generator.SyncFileOp{
			Path:    filepath.Join(g.outputDir, "_undef_macros.inl"),
			Content: undefs.Bytes(),
		},
	}, nil
}

func (g *Generator) license() *codegen.LicenseConfig {
	return &codegen.LicenseConfig{
		Project: g.cfg.Project,
		Holder:  g.cfg.CopyrightHolder,
		Type:    g.cfg.LicenseType,
		Link:    g.cfg.LicenseLink,
	}
}

// guardPrefix returns the upper-case internal macro prefix, e.g. "_CTLE".
func (g *Generator) guardPrefix() string {
	return "_" + strings.ToUpper(g.cfg.Project)
}

// callPrefix returns the short user-facing macro prefix, e.g. "ct".
func (g *Generator) callPrefix() string {
	if g.Prefix != "" {
		return g.Prefix
	}
	p := strings.ToLower(g.cfg.Project)
	if len(p) > 2 {
		p = p[:2]
	}
	return p
}

// define emits a #define line and records the macro name for the undef
// header. args is the parameter list including parentheses, or empty.
func (g *Generator) define(b *codegen.Builder, name, args, body string) {
	g.defined = append(g.defined, name)
	if body == "" {
		b.Linef("#define %s%s", name, args)
		return
	}
	b.Linef("#define %s%s %s", name, args, body)
}

// defineMultiline emits a #define whose body continues over several
// backslash-terminated lines, indented one level.
func (g *Generator) defineMultiline(b *codegen.Builder, name, args string, body []string) {
	g.defined = append(g.defined, name)
	b.Linef("#define %s%s\\", name, args)
	b.Indent("", func() {
		for i, line := range body {
			if i < len(body)-1 {
				b.Line(line + "\\")
			} else {
				b.Line(line)
			}
		}
	})
}

func (g *Generator) writeMacros(b *codegen.Builder) {
	up := g.guardPrefix()
	ct := g.callPrefix()
	ns := strings.ToLower(g.cfg.Project)

	b.LicenseHeader(g.license())
	b.Line("//")
	b.Comment("_macros.inl & _undef_macros.inl are used to define convenience macros for implementation files.")
	b.Line("//")
	b.Comment("usage: include _macros.inl in implementation, *after* any other header file, so as to not pollute any of those files with the macros defined.")
	b.Comment("Pair each inclusion of _macros.inl with an inclusion of _undef_macros.inl before the next inclusion of _macros.inl.")
	b.Line("")

	b.Comment("Marker that _macros.inl has been included and the macros are defined. Also makes sure the file is not included twice without an _undef_macros.inl in between.")
	b.Linef("#ifdef %s_MACROS_INCLUDED", up)
	b.Line("#error The _macros.inl file is included more than once, without including _undef_macros.inl to undefine the macros before the next include of _macros.inl")
	b.Linef("#endif//%s_MACROS_INCLUDED", up)
	g.define(b, up+"_MACROS_INCLUDED", "", "")
	b.Line("")

	b.Comment("General function signature macro")
	b.Line("#if defined(_MSC_VER)")
	g.define(b, up+"_FUNCTION_SIGNATURE", "", "__FUNCSIG__")
	b.Line("#elif defined(__GNUC__)")
	// redefinition in the other branch; already recorded once
	b.Linef("#define %s_FUNCTION_SIGNATURE __PRETTY_FUNCTION__", up)
	b.Line("#endif")
	b.Line("")

	b.Comment(fmt.Sprintf("%s_STRINGIZE converts a number macro (like __LINE__) into a string. The detail macro is needed because of how macros work in the preprocessor.", up))
	g.define(b, up+"_STRINGIZE_DETAIL", "(x)", "#x")
	g.define(b, up+"_STRINGIZE", "(x)", up+"_STRINGIZE_DETAIL(x)")
	b.Line("")

	b.Comment("Logging macros for the log.h type")
	g.defineMultiline(b, ct+"LogLevel", "( msg_level )", []string{
		fmt.Sprintf("if( %s::log_level::msg_level <= %s::get_global_log_level() ) {", ns, ns),
		fmt.Sprintf("%s::log_msg _%s_log_entry(%s::log_level::msg_level,__FILE__,__LINE__,%s_FUNCTION_SIGNATURE); _%s_log_entry.message()",
			ns, ns, ns, up, ns),
	})
	g.define(b, ct+"LogError", "", ct+"LogLevel( error )")
	g.define(b, ct+"LogWarning", "", ct+"LogLevel( warning )")
	g.define(b, ct+"LogInfo", "", ct+"LogLevel( info )")
	g.define(b, ct+"LogDebug", "", ct+"LogLevel( debug )")
	g.define(b, ct+"LogVerbose", "", ct+"LogLevel( verbose )")
	g.define(b, ct+"LogEnd", "", `""; }`)
	b.Line("")

	b.Comment("Checks an expression, and logs an error and returns if the statement is not true")
	g.define(b, ct+"Validate", "( statement , error_code_on_error )",
		fmt.Sprintf("if( !(statement) ) { const %s::status _%s_error_code = error_code_on_error; %sLogError", ns, ns, ct))
	g.define(b, ct+"ValidateEnd", "", fmt.Sprintf("%sLogEnd; return _%s_error_code; }", ct, ns))
	b.Line("")

	b.Comment("In debug mode, checks expressions which are assumed to be true. if not, throws a runtime error")
	b.Line("#ifndef NDEBUG")
	g.defineMultiline(b, ct+"SanityCheck", "( statement )", []string{
		"if( !(statement) ) {",
		fmt.Sprintf("%sLogError << \"SanityCheck failed: \" << std::string(#statement) << %sLogEnd;", ct, ct),
		fmt.Sprintf("throw std::runtime_error( std::string(\"SanityCheck \" #statement \" failed in \" __FILE__ \" line \" %s_STRINGIZE(__LINE__)) );", up),
		"}",
	})
	b.Line("#else")
	b.Linef("#define %sSanityCheck( statement )", ct)
	b.Line("#endif")
	b.Line("")

	b.Comment("Calls a function which returns a status value, checks the value and reports/returns the value if it is an error, along with a log output")
	g.defineMultiline(b, ct+"StatusCall", "( s )", []string{
		"{",
		fmt.Sprintf("%s::status _%s_call_status = (s);", ns, ns),
		fmt.Sprintf("if( !_%s_call_status ) {", ns),
		fmt.Sprintf("%sLogError << \"Call: \" << #s << \" failed, returned status_code: \" << _%s_call_status << %sLogEnd;", ct, ns, ct),
		fmt.Sprintf("return _%s_call_status;", ns),
		"}",
		"}",
	})
}

func (g *Generator) writeUndefs(b *codegen.Builder) {
	b.LicenseHeader(g.license())
	b.Line("//")
	b.Comment("_undef_macros.inl removes the macros defined by _macros.inl, so implementation macros never leak into other compilation units.")
	b.Line("")

	up := g.guardPrefix()
	b.Linef("#ifndef %s_MACROS_INCLUDED", up)
	b.Line("#error The _undef_macros.inl file is included without a matching _macros.inl include before it")
	b.Linef("#endif//%s_MACROS_INCLUDED", up)
	b.Line("")

	for _, name := range g.defined {
		b.Linef("#undef %s", name)
	}
}
