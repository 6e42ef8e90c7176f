// Package prose renders the free-form sections of the skills list to HTML.
package prose

import (
	"bytes"
	"fmt"

	"github.com/dgallion1/skillgallery/internal/sitedoc"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Renderer converts section markdown to HTML. Raw HTML in the source is
// passed through, since the upstream list wraps its header in HTML blocks.
type Renderer struct {
	md goldmark.Markdown
}

func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithASTTransformers(util.Prioritized(sectionTransformer{}, 100)),
			),
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
	}
}

// Render converts one markdown section.
func (r *Renderer) Render(src string) (string, error) {
	if src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// RenderSite returns a copy of doc whose prose fields hold HTML. Categories
// are shared with doc, not copied.
func (r *Renderer) RenderSite(doc *sitedoc.SiteDocument) (*sitedoc.SiteDocument, error) {
	out := *doc
	var err error
	if out.Introduction, err = r.Render(doc.Introduction); err != nil {
		return nil, fmt.Errorf("introduction: %w", err)
	}
	if out.Installation, err = r.Render(doc.Installation); err != nil {
		return nil, fmt.Errorf("installation: %w", err)
	}
	if out.About, err = r.Render(doc.About); err != nil {
		return nil, fmt.Errorf("about: %w", err)
	}
	return &out, nil
}

// sectionTransformer demotes headings one level so section prose nests under
// the page's own headings, and makes links open in a new tab.
type sectionTransformer struct{}

func (sectionTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level < 6 {
				node.Level++
			}
		case *ast.Link:
			node.SetAttributeString("target", []byte("_blank"))
			node.SetAttributeString("rel", []byte("noopener noreferrer"))
		}
		return ast.WalkContinue, nil
	})
}
