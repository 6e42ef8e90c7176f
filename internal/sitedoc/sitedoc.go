package sitedoc

// SiteDocument is the parsed form of the skills list and the schema of the
// persisted artifact.
type SiteDocument struct {
	Introduction string     `json:"introduction" jsonschema:"description=Prose before the first recognised section"`
	Installation string     `json:"installation" jsonschema:"description=Prose under the installation heading"`
	About        string     `json:"about" jsonschema:"description=Prose under the why-this-list heading"`
	Categories   []Category `json:"categories" jsonschema:"description=Non-empty categories in document order"`
}

// Category is a named group of skills.
type Category struct {
	Name   string  `json:"name"`
	Skills []Skill `json:"skills"`
}

// Skill is one bullet entry. Category repeats the owning Category's name so
// flattened lists stay self-describing.
type Skill struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// New returns an empty document whose slices encode as [] rather than null.
func New() *SiteDocument {
	return &SiteDocument{Categories: []Category{}}
}

// SkillCount totals the skills across all categories.
func (d *SiteDocument) SkillCount() int {
	n := 0
	for _, c := range d.Categories {
		n += len(c.Skills)
	}
	return n
}

// Skills flattens every category's skills, preserving order.
func (d *SiteDocument) Skills() []Skill {
	out := make([]Skill, 0, d.SkillCount())
	for _, c := range d.Categories {
		out = append(out, c.Skills...)
	}
	return out
}

// DropEmpty removes categories without skills.
func (d *SiteDocument) DropEmpty() {
	kept := d.Categories[:0]
	for _, c := range d.Categories {
		if len(c.Skills) > 0 {
			kept = append(kept, c)
		}
	}
	d.Categories = kept
}

// Normalize replaces nil slices with empty ones, e.g. after decoding an
// artifact written by another tool.
func (d *SiteDocument) Normalize() {
	if d.Categories == nil {
		d.Categories = []Category{}
	}
	for i := range d.Categories {
		if d.Categories[i].Skills == nil {
			d.Categories[i].Skills = []Skill{}
		}
	}
}
