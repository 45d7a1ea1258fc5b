package checker

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Cooolrik/stle/codegen"
	"github.com/Cooolrik/stle/project"
)

// yearPrefix matches a copyright holder of the form "2024 Some Name".
var yearPrefix = regexp.MustCompile(`^\d{4} (.+)$`)

// HeaderRules builds the rule set a source file must conform to: the
// two-line license comment for every file, plus pragma-once and header
// guards when the file's extension is one of cfg.HeaderExts.
func HeaderRules(path string, cfg project.Config) []LineRule {
	rules := []LineRule{
		copyrightRule(cfg),
		{Line: 2, Fix: fmt.Sprintf("// Licensed under the %s license %s", cfg.LicenseType, cfg.LicenseLink)},
	}

	if isHeader(path, cfg) {
		token := codegen.GuardToken(filepath.Base(path), cfg.Project)
		rules = append(rules,
			LineRule{Line: 3, Fix: "#pragma once"},
			LineRule{Line: 4, Fix: "#ifndef " + token},
			LineRule{Line: 5, Fix: "#define " + token},
			LineRule{Line: -1, Fix: "#endif//" + token},
		)
	}
	return rules
}

// copyrightRule accepts any copyright year but fixes files to the
// configured one, so a tree written over several years still checks out.
func copyrightRule(cfg project.Config) LineRule {
	fix := fmt.Sprintf("// %s Copyright (c) %s", cfg.Project, cfg.CopyrightHolder)

	m := yearPrefix.FindStringSubmatch(cfg.CopyrightHolder)
	if m == nil {
		// holder carries no year: require the exact line
		return LineRule{Line: 1, Fix: fix}
	}
	pattern := fmt.Sprintf(`// %s Copyright \(c\) \d{4} %s`,
		regexp.QuoteMeta(cfg.Project), regexp.QuoteMeta(m[1]))
	return LineRule{Line: 1, Pattern: pattern, Fix: fix}
}

func isHeader(path string, cfg project.Config) bool {
	ext := filepath.Ext(path)
	for _, he := range cfg.HeaderExts {
		if strings.EqualFold(ext, he) {
			return true
		}
	}
	return false
}
