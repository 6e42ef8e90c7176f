package catalog

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dgallion1/skillgallery/internal/artifact"
	"github.com/dgallion1/skillgallery/internal/sitedoc"
)

// DefaultPageSize matches the gallery's grid of cards.
const DefaultPageSize = 24

// pageWindow is how many page numbers a Result offers around the current page.
const pageWindow = 5

// Catalog is the read side of the artifact: loaded once, then served from
// memory. Reload swaps the whole Snapshot, so a reader holding one never sees
// a mix of old and new data.
type Catalog struct {
	path string
	log  *slog.Logger

	mu   sync.RWMutex
	snap *Snapshot
}

// Snapshot is one loaded version of the artifact. It is immutable once
// published; callers must not modify it.
type Snapshot struct {
	Doc      *sitedoc.SiteDocument
	Skills   []sitedoc.Skill
	Counts   []CategoryCount
	ETag     string // strong validator derived from the artifact bytes
	LoadedAt time.Time
}

// CategoryCount is a category name with its number of skills.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Open loads the artifact at path.
func Open(path string, log *slog.Logger) (*Catalog, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	c := &Catalog{path: abs, log: log}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads the artifact. On failure the current data is kept.
func (c *Catalog) Reload() error {
	doc, raw, err := artifact.Read(c.path)
	if err != nil {
		return err
	}

	counts := make([]CategoryCount, 0, len(doc.Categories))
	for _, cat := range doc.Categories {
		counts = append(counts, CategoryCount{Name: cat.Name, Count: len(cat.Skills)})
	}
	snap := &Snapshot{
		Doc:      doc,
		Skills:   doc.Skills(),
		Counts:   counts,
		ETag:     `"` + artifact.Hash(raw)[:32] + `"`,
		LoadedAt: time.Now(),
	}

	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()

	c.log.Info("catalog loaded",
		"path", c.path,
		"categories", len(doc.Categories),
		"skills", len(snap.Skills),
		"etag", snap.ETag,
	)
	return nil
}

// Snapshot returns the current data. Handlers read everything for one
// response from a single Snapshot so the body and its ETag agree.
func (c *Catalog) Snapshot() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// Path returns the absolute artifact path.
func (c *Catalog) Path() string {
	return c.path
}

// Query selects a page of skills.
type Query struct {
	Text     string // case-insensitive substring of name or description
	Category string // exact category name; empty means all
	Page     int    // 1-based
	PerPage  int
}

// Result is one page of matching skills.
type Result struct {
	Skills     []sitedoc.Skill `json:"skills"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
	TotalPages int             `json:"total_pages"`
	Pages      []int           `json:"pages"`
}

// Search filters by category, then by text, and returns the requested page.
// Pages past the end are empty.
func (snap *Snapshot) Search(q Query) Result {
	skills := snap.Skills

	if q.PerPage <= 0 {
		q.PerPage = DefaultPageSize
	}
	if q.Page < 1 {
		q.Page = 1
	}
	text := strings.ToLower(strings.TrimSpace(q.Text))

	matched := make([]sitedoc.Skill, 0)
	for _, s := range skills {
		if q.Category != "" && s.Category != q.Category {
			continue
		}
		if text != "" &&
			!strings.Contains(strings.ToLower(s.Name), text) &&
			!strings.Contains(strings.ToLower(s.Description), text) {
			continue
		}
		matched = append(matched, s)
	}

	total := len(matched)
	totalPages := (total + q.PerPage - 1) / q.PerPage

	pageSkills := []sitedoc.Skill{}
	if start := (q.Page - 1) * q.PerPage; start < total {
		end := min(start+q.PerPage, total)
		pageSkills = matched[start:end]
	}

	return Result{
		Skills:     pageSkills,
		Total:      total,
		Page:       q.Page,
		PerPage:    q.PerPage,
		TotalPages: totalPages,
		Pages:      pageNumbers(q.Page, totalPages),
	}
}

// pageNumbers returns up to pageWindow page numbers centred on current.
func pageNumbers(current, totalPages int) []int {
	start := max(1, current-pageWindow/2)
	end := min(totalPages, start+pageWindow-1)
	start = max(1, end-pageWindow+1)

	pages := []int{}
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}
