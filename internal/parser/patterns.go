package parser

import "regexp"

// PatternsVersion identifies the line-classification contract below. Bump it
// whenever an expression changes in a way that alters extraction results.
const PatternsVersion = "2"

// Patterns holds the regular expressions the segmenter classifies lines with.
type Patterns struct {
	Version string

	// Header matches a markdown ATX heading; group 1 is the hashes, group 2 the title.
	Header *regexp.Regexp

	// CategoryMarker matches <summary><h3 ...>TITLE</h3></summary> anywhere
	// in a line; group 1 is TITLE, captured non-greedily.
	CategoryMarker *regexp.Regexp

	// SkillBullet matches "- [label](url) <sep> description" where sep is
	// one of -, :, — or absent. Groups: label, url, description.
	SkillBullet *regexp.Regexp
}

// space is \s widened to \v, the Unicode space separators, the line and
// paragraph separators and the BOM. RE2's \s is ASCII only.
const space = `[\t\n\v\f\r \x{a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]`

const (
	headerExpr         = `^(#{1,6})` + space + `+(.+)$`
	categoryMarkerExpr = `<summary><h3[^>]*>(.+?)</h3></summary>`
	skillBulletExpr    = `^` + space + `*[-*]` + space + `+\[([^\]]+)\]\(([^)]+)\)` + space + `*(?:-|:|—)?` + space + `*(.+)$`
)

// DefaultPatterns returns the patterns matching the upstream skills list.
func DefaultPatterns() Patterns {
	return Patterns{
		Version:        PatternsVersion,
		Header:         regexp.MustCompile(headerExpr),
		CategoryMarker: regexp.MustCompile(categoryMarkerExpr),
		SkillBullet:    regexp.MustCompile(skillBulletExpr),
	}
}

// matchHeader returns the heading title, or ok=false.
func (p Patterns) matchHeader(line string) (title string, ok bool) {
	m := p.Header.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[2], true
}

// matchCategory returns the raw captured category title, or ok=false.
func (p Patterns) matchCategory(line string) (title string, ok bool) {
	m := p.CategoryMarker.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// matchSkill returns label, url and description, or ok=false.
func (p Patterns) matchSkill(line string) (name, url, desc string, ok bool) {
	m := p.SkillBullet.FindStringSubmatch(line)
	if m == nil {
		return "", "", "", false
	}
	return m[1], m[2], m[3], true
}
