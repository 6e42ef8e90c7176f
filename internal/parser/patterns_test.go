package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPatterns_Header(t *testing.T) {
	p := DefaultPatterns()
	assert.Equal(t, PatternsVersion, p.Version)

	tests := []struct {
		line  string
		title string
		ok    bool
	}{
		{"# Title", "Title", true},
		{"###### Deep", "Deep", true},
		{"####### Too deep", "", false},
		{"#NoSpace", "", false},
		{" # Indented", "", false},
		{"##\u00a0Installation", "Installation", true},
		{"#\u3000Wide", "Wide", true},
		{"#\u200bZeroWidth", "", false},
		{"plain", "", false},
	}
	for _, tt := range tests {
		title, ok := p.matchHeader(tt.line)
		assert.Equal(t, tt.ok, ok, tt.line)
		assert.Equal(t, tt.title, title, tt.line)
	}
}

func TestDefaultPatterns_SkillBullet(t *testing.T) {
	p := DefaultPatterns()

	tests := []struct {
		line            string
		name, url, desc string
		ok              bool
	}{
		{"- [Foo](http://x) - bar", "Foo", "http://x", "bar", true},
		{"* [Foo](http://x): bar", "Foo", "http://x", "bar", true},
		{"- [Foo](http://x) — bar", "Foo", "http://x", "bar", true},
		{"- [Foo](http://x)\u00a0—\u00a0bar", "Foo", "http://x", "bar", true},
		{"-\u00a0[Foo](http://x) - bar", "Foo", "http://x", "bar", true},
		{"\u2003* [Foo](http://x):\u2009bar", "Foo", "http://x", "bar", true},
		{"- [Foo](http://x)\v-\vbar", "Foo", "http://x", "bar", true},
		{"- [Foo](http://x)", "", "", "", false},
		{"-[Foo](http://x) - bar", "", "", "", false},
		{"+ [Foo](http://x) - bar", "", "", "", false},
		{"- Foo http://x - bar", "", "", "", false},
	}
	for _, tt := range tests {
		name, url, desc, ok := p.matchSkill(tt.line)
		assert.Equal(t, tt.ok, ok, tt.line)
		if tt.ok {
			assert.Equal(t, tt.name, name, tt.line)
			assert.Equal(t, tt.url, url, tt.line)
			assert.Equal(t, tt.desc, desc, tt.line)
		}
	}
}

func TestDefaultPatterns_CategoryMarker(t *testing.T) {
	p := DefaultPatterns()

	title, ok := p.matchCategory(`<details><summary><h3 class="x">Cat</h3></summary>`)
	assert.True(t, ok)
	assert.Equal(t, "Cat", title)

	_, ok = p.matchCategory(`<summary><h3></h3></summary>`)
	assert.False(t, ok, "empty title is not a marker")
}

func TestNextSection(t *testing.T) {
	tests := []struct {
		from  Section
		title string
		to    Section
		moved bool
	}{
		{SectionIntro, "installation", SectionInstallation, true},
		{SectionIntro, "quick install", SectionInstallation, true},
		{SectionIntro, "table of contents", SectionTOC, true},
		{SectionIntro, "contents", SectionTOC, true},
		{SectionIntro, "why this list", SectionIntro, false},
		{SectionIntro, "the contents", SectionIntro, false},
		{SectionInstallation, "why this list?", SectionAbout, true},
		{SectionInstallation, "contents", SectionTOC, true},
		{SectionInstallation, "license", SectionInstallation, false},
		{SectionAbout, "table of contents", SectionTOC, true},
		{SectionAbout, "installation", SectionAbout, false},
		{SectionTOC, "installation", SectionTOC, false},
		{SectionCategories, "contributing", SectionFooter, true},
		{SectionCategories, "license (mit)", SectionFooter, true},
		{SectionCategories, "contents", SectionCategories, false},
		{SectionFooter, "installation", SectionFooter, false},
	}
	for _, tt := range tests {
		to, moved := nextSection(tt.from, tt.title)
		assert.Equal(t, tt.moved, moved, "%s + %q", tt.from, tt.title)
		assert.Equal(t, tt.to, to, "%s + %q", tt.from, tt.title)
	}
}

func TestSection_String(t *testing.T) {
	assert.Equal(t, "intro", SectionIntro.String())
	assert.Equal(t, "installation", SectionInstallation.String())
	assert.Equal(t, "about", SectionAbout.String())
	assert.Equal(t, "toc", SectionTOC.String())
	assert.Equal(t, "categories", SectionCategories.String())
	assert.Equal(t, "footer", SectionFooter.String())
	assert.Equal(t, "unknown", Section(42).String())
}
