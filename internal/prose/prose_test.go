package prose

import (
	"testing"

	"github.com/dgallion1/skillgallery/internal/sitedoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Empty(t *testing.T) {
	out, err := NewRenderer().Render("")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRender_DemotesHeadings(t *testing.T) {
	out, err := NewRenderer().Render("# Top\n\n## Second\n\n###### Floor")
	require.NoError(t, err)
	assert.Contains(t, out, "<h2>Top</h2>")
	assert.Contains(t, out, "<h3>Second</h3>")
	assert.Contains(t, out, "<h6>Floor</h6>")
	assert.NotContains(t, out, "<h1>")
}

func TestRender_LinksOpenInNewTab(t *testing.T) {
	out, err := NewRenderer().Render("See [the repo](https://example.test/repo).")
	require.NoError(t, err)
	assert.Contains(t, out, `href="https://example.test/repo"`)
	assert.Contains(t, out, `target="_blank"`)
	assert.Contains(t, out, `rel="noopener noreferrer"`)
}

func TestRender_PassesRawHTML(t *testing.T) {
	out, err := NewRenderer().Render("<div align=\"center\">\n\nHello\n\n</div>")
	require.NoError(t, err)
	assert.Contains(t, out, `<div align="center">`)
	assert.Contains(t, out, "<p>Hello</p>")
}

func TestRender_GFMTablesAndCode(t *testing.T) {
	out, err := NewRenderer().Render("| a | b |\n|---|---|\n| 1 | 2 |\n\n```sh\nclawhub install x\n```")
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, `<code class="language-sh">clawhub install x`)
}

func TestRenderSite(t *testing.T) {
	doc := &sitedoc.SiteDocument{
		Introduction: "**hi**",
		Installation: "",
		About:        "why",
		Categories:   []sitedoc.Category{{Name: "c", Skills: []sitedoc.Skill{{Name: "s"}}}},
	}

	out, err := NewRenderer().RenderSite(doc)
	require.NoError(t, err)
	assert.Equal(t, "<p><strong>hi</strong></p>\n", out.Introduction)
	assert.Equal(t, "", out.Installation)
	assert.Equal(t, "<p>why</p>\n", out.About)
	assert.Equal(t, doc.Categories, out.Categories)
	assert.Equal(t, "**hi**", doc.Introduction, "source document must not change")
}
