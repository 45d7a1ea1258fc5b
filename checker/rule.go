package checker

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// LineRule pins one line of a file to canonical text.
//
// Line is 1-based; negative values count from the end of the file (-1 is
// the last line). Pattern, when set, is a regular expression the line must
// match in full; Fix is the canonical text written by FixFile. An empty
// Pattern means the line must equal Fix exactly.
type LineRule struct {
	Line    int
	Pattern string
	Fix     string
}

// Violation reports one line that does not conform to its rule.
type Violation struct {
	Path string // file the violation was found in
	Line int    // 1-based resolved line number
	Got  string // current line content ("" when the line is missing)
	Want string // canonical text
}

func (v Violation) String() string {
	return fmt.Sprintf("%s:%d: want %q, got %q", v.Path, v.Line, v.Want, v.Got)
}

// resolve maps the rule's index onto lines, returning a 0-based index.
// Out-of-range rules resolve to -1 (the line is missing).
func (r LineRule) resolve(lineCount int) int {
	idx := r.Line - 1
	if r.Line < 0 {
		idx = lineCount + r.Line
	}
	if idx < 0 || idx >= lineCount {
		return -1
	}
	return idx
}

func (r LineRule) matches(line string) (bool, error) {
	if r.Pattern == "" {
		return line == r.Fix, nil
	}
	re, err := regexp.Compile("^(?:" + r.Pattern + ")$")
	if err != nil {
		return false, fmt.Errorf("invalid rule pattern %q: %w", r.Pattern, err)
	}
	return re.MatchString(line), nil
}

// CheckLines applies rules to a file's lines and returns one Violation per
// non-conforming rule. The path is only used to label violations.
func CheckLines(path string, lines []string, rules []LineRule) ([]Violation, error) {
	var violations []Violation
	for _, rule := range rules {
		idx := rule.resolve(len(lines))
		if idx < 0 {
			violations = append(violations, Violation{
				Path: path, Line: missingLineNumber(rule, len(lines)), Want: rule.Fix,
			})
			continue
		}
		ok, err := rule.matches(lines[idx])
		if err != nil {
			return nil, err
		}
		if !ok {
			violations = append(violations, Violation{
				Path: path, Line: idx + 1, Got: lines[idx], Want: rule.Fix,
			})
		}
	}
	return violations, nil
}

// CheckFile reads path and applies rules to its lines.
func CheckFile(path string, rules []LineRule) ([]Violation, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	return CheckLines(path, lines, rules)
}

// FixFile rewrites every non-conforming rule line to its canonical Fix
// text and reports whether the file changed. Missing lines are created:
// positive indexes pad the file with blank lines, negative indexes append
// at the end. The file keeps its original permission bits.
func FixFile(path string, rules []LineRule) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	lines, err := readLines(path)
	if err != nil {
		return false, err
	}

	changed := false
	for _, rule := range rules {
		idx := rule.resolve(len(lines))
		if idx < 0 {
			if rule.Line > 0 {
				for len(lines) < rule.Line {
					lines = append(lines, "")
				}
				idx = rule.Line - 1
			} else {
				lines = append(lines, "")
				idx = len(lines) - 1
			}
		}

		ok, err := rule.matches(lines[idx])
		if err != nil {
			return false, err
		}
		if ok {
			continue
		}

		// An end-anchored rule only replaces a line that is already the
		// same kind of directive (a stale guard token, say); anything else
		// is real content and the canonical line is appended after it.
		if rule.Line < 0 && directive(lines[idx]) != directive(rule.Fix) {
			lines = append(lines, rule.Fix)
		} else {
			lines[idx] = rule.Fix
		}
		changed = true
	}

	if !changed {
		return false, nil
	}

	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("failed to rewrite %s: %w", path, err)
	}
	return true, nil
}

// directive extracts the leading token of a line: the text before the
// first space, with any trailing line comment stripped. "#endif//_X_H_"
// and "#endif//_Y_H_" share the directive "#endif".
func directive(line string) string {
	line = strings.TrimSpace(line)
	if i := strings.Index(line, " "); i >= 0 {
		line = line[:i]
	}
	if !strings.HasPrefix(line, "//") {
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
	}
	return line
}

// missingLineNumber picks the line number reported for a rule whose target
// line does not exist.
func missingLineNumber(rule LineRule, lineCount int) int {
	if rule.Line > 0 {
		return rule.Line
	}
	return lineCount + 1
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}
