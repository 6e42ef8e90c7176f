package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/skillgallery/internal/artifact"
	"github.com/dgallion1/skillgallery/internal/parser"
)

// Fetcher retrieves the raw source document.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Pipeline regenerates the skills artifact: fetch, parse, write. A run
// either writes a complete artifact or leaves the previous one untouched.
type Pipeline struct {
	fetcher Fetcher
	parser  *parser.Parser
	log     *slog.Logger
}

func New(fetcher Fetcher, p *parser.Parser, log *slog.Logger) *Pipeline {
	return &Pipeline{
		fetcher: fetcher,
		parser:  p,
		log:     log,
	}
}

// Summary describes a completed run.
type Summary struct {
	Source          string `json:"source"`
	OutputPath      string `json:"output_path"`
	SourceHash      string `json:"source_hash"`
	PatternsVersion string `json:"patterns_version"`
	Categories      int    `json:"categories"`
	Skills          int    `json:"skills"`
}

// Run fetches sourceURL and writes the parsed document to outPath.
func (p *Pipeline) Run(ctx context.Context, sourceURL, outPath string) (Summary, error) {
	start := time.Now()
	p.log.Info("fetching source", "url", sourceURL)

	src, err := p.fetcher.Fetch(ctx, sourceURL)
	if err != nil {
		p.log.Error("fetch failed", "url", sourceURL, "error", err)
		return Summary{}, err
	}
	p.log.Info("fetched source", "url", sourceURL, "bytes", len(src), "duration_ms", time.Since(start).Milliseconds())

	return p.Process(sourceURL, src, outPath)
}

// Process parses an already retrieved document and writes it to outPath.
// source only labels logs and the summary.
func (p *Pipeline) Process(source string, src []byte, outPath string) (Summary, error) {
	log := p.log.With("source", source)

	doc, err := p.parser.Parse(bytes.NewReader(src))
	if err != nil {
		return Summary{}, fmt.Errorf("parse: %w", err)
	}

	if err := artifact.Write(outPath, doc); err != nil {
		log.Error("write failed", "path", outPath, "error", err)
		return Summary{}, err
	}

	sum := Summary{
		Source:          source,
		OutputPath:      outPath,
		SourceHash:      artifact.Hash(src),
		PatternsVersion: p.parser.PatternsVersion(),
		Categories:      len(doc.Categories),
		Skills:          doc.SkillCount(),
	}
	log.Info("artifact written",
		"path", outPath,
		"source_hash", sum.SourceHash,
		"patterns_version", sum.PatternsVersion,
		"categories", sum.Categories,
		"skills", sum.Skills,
	)
	return sum, nil
}
