package parser

import "strings"

// Section is the document region the scanner is currently in.
type Section int

const (
	SectionIntro Section = iota
	SectionInstallation
	SectionAbout
	SectionTOC
	SectionCategories
	SectionFooter
)

func (s Section) String() string {
	switch s {
	case SectionIntro:
		return "intro"
	case SectionInstallation:
		return "installation"
	case SectionAbout:
		return "about"
	case SectionTOC:
		return "toc"
	case SectionCategories:
		return "categories"
	case SectionFooter:
		return "footer"
	}
	return "unknown"
}

// collectsProse reports whether content lines are buffered in this section.
func (s Section) collectsProse() bool {
	return s == SectionIntro || s == SectionInstallation || s == SectionAbout
}

// transition moves the scanner to a new section when a heading title matches.
// Titles are passed already lower-cased.
type transition struct {
	when func(title string) bool
	to   Section
}

// headerTransitions is consulted in order; the first matching rule wins.
// Sections without an entry ignore headings.
var headerTransitions = map[Section][]transition{
	SectionIntro: {
		{when: isInstallTitle, to: SectionInstallation},
		{when: isContentsTitle, to: SectionTOC},
	},
	SectionInstallation: {
		{when: isAboutTitle, to: SectionAbout},
		{when: isContentsTitle, to: SectionTOC},
	},
	SectionAbout: {
		{when: isContentsTitle, to: SectionTOC},
	},
	SectionCategories: {
		{when: isFooterTitle, to: SectionFooter},
	},
}

// nextSection returns the section a heading moves cur to, or ok=false.
func nextSection(cur Section, lowerTitle string) (Section, bool) {
	for _, t := range headerTransitions[cur] {
		if t.when(lowerTitle) {
			return t.to, true
		}
	}
	return cur, false
}

func isInstallTitle(t string) bool {
	return strings.Contains(t, "install")
}

func isContentsTitle(t string) bool {
	return t == "table of contents" || t == "contents"
}

func isAboutTitle(t string) bool {
	return strings.Contains(t, "why this list")
}

func isFooterTitle(t string) bool {
	return strings.Contains(t, "contributing") || strings.Contains(t, "license")
}
