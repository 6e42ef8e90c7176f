package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/skillgallery/internal/sitedoc"
)

// Parser converts a skills-list markdown document into a SiteDocument.
//
// The document is scanned once, top to bottom. Each line is classified as a
// category marker, a heading or content, in that order of priority, and the
// current Section decides what happens to it. Lines that fit nothing are
// dropped; parsing never fails on content.
type Parser struct {
	patterns Patterns
}

func New(patterns Patterns) *Parser {
	return &Parser{patterns: patterns}
}

// PatternsVersion reports which line-classification contract the parser uses.
func (p *Parser) PatternsVersion() string {
	return p.patterns.Version
}

// Parse reads the whole document from r. The only error is a read error.
func (p *Parser) Parse(r io.Reader) (*sitedoc.SiteDocument, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}
	return p.ParseString(string(src)), nil
}

// ParseString parses an in-memory document.
func (p *Parser) ParseString(markdown string) *sitedoc.SiteDocument {
	s := &scan{
		patterns: p.patterns,
		doc:      sitedoc.New(),
		section:  SectionIntro,
		current:  -1,
		prose:    make(map[Section][]string),
	}
	for _, line := range strings.Split(markdown, "\n") {
		s.step(strings.TrimSuffix(line, "\r"))
	}
	return s.finish()
}

// scan is the mutable state of a single Parse call.
type scan struct {
	patterns Patterns
	doc      *sitedoc.SiteDocument
	section  Section
	current  int // index of the open category in doc.Categories, -1 if none
	prose    map[Section][]string
}

func (s *scan) step(line string) {
	if raw, ok := s.patterns.matchCategory(line); ok {
		s.openCategory(cleanTitle(raw))
		return
	}

	if title, ok := s.patterns.matchHeader(line); ok {
		lower := strings.ToLower(strings.TrimSpace(title))
		if next, moved := nextSection(s.section, lower); moved {
			s.enter(next)
			return
		}
		// Headings that move nowhere are handled as ordinary content.
	}

	s.content(line)
}

// openCategory starts a new category from any section. Prose buffered in
// the section being left is not flushed.
func (s *scan) openCategory(name string) {
	s.doc.Categories = append(s.doc.Categories, sitedoc.Category{
		Name:   name,
		Skills: []sitedoc.Skill{},
	})
	s.current = len(s.doc.Categories) - 1
	s.section = SectionCategories
}

// enter applies a heading-driven transition.
func (s *scan) enter(next Section) {
	if s.section.collectsProse() {
		s.flush(s.section)
	}
	if s.section == SectionCategories {
		s.current = -1
	}
	s.section = next
}

func (s *scan) content(line string) {
	switch {
	case s.section == SectionCategories && s.current >= 0:
		name, url, desc, ok := s.patterns.matchSkill(line)
		if !ok {
			return
		}
		cat := &s.doc.Categories[s.current]
		cat.Skills = append(cat.Skills, sitedoc.Skill{
			Name:        strings.TrimSpace(name),
			URL:         strings.TrimSpace(url),
			Description: strings.TrimSpace(desc),
			Category:    cat.Name,
		})
	case s.section.collectsProse():
		s.prose[s.section] = append(s.prose[s.section], line)
	}
}

// flush commits the buffered prose of sec to its document field.
func (s *scan) flush(sec Section) {
	text := strings.TrimSpace(strings.Join(s.prose[sec], "\n"))
	delete(s.prose, sec)
	switch sec {
	case SectionIntro:
		s.doc.Introduction = text
	case SectionInstallation:
		s.doc.Installation = text
	case SectionAbout:
		s.doc.About = text
	}
}

// finish flushes a trailing introduction and drops empty categories.
// Installation or about prose still buffered at end of input is discarded.
func (s *scan) finish() *sitedoc.SiteDocument {
	if s.section == SectionIntro && len(s.prose[SectionIntro]) > 0 {
		s.flush(SectionIntro)
	}
	s.doc.DropEmpty()
	return s.doc
}
