// Package goquery implements clinics.Parser on top of goquery and cascadia.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/clinics"
)

// Ensure Parser implements clinics.Parser at compile time.
var _ clinics.Parser = (*Parser)(nil)

// blockMatcher selects record blocks: one definition list per clinic.
var blockMatcher = cascadia.MustCompile("dl")

// Parser extracts one record per definition list, labeled with the text of
// the nearest h3 before it.
type Parser struct {
	policy    clinics.HeadingPolicy
	onMissing func(source string, block int)
}

// Option configures a Parser.
type Option func(*Parser)

// WithHeadingPolicy sets how blocks without a preceding heading are handled.
// Defaults to clinics.HeadingOptional.
func WithHeadingPolicy(policy clinics.HeadingPolicy) Option {
	return func(p *Parser) {
		p.policy = policy
	}
}

// WithMissingHeadingFunc registers fn to be called with the source and the
// zero-based index of every block that has no preceding heading under
// HeadingOptional.
func WithMissingHeadingFunc(fn func(source string, block int)) Option {
	return func(p *Parser) {
		p.onMissing = fn
	}
}

// NewParser creates a new Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{policy: clinics.HeadingOptional}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses raw HTML and returns its records in document order.
func (p *Parser) Parse(source, html string) ([]clinics.Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, clinics.Errorf(clinics.EINVALID, "failed to parse HTML: %v", err)
	}
	return p.ParseDocument(source, doc)
}

// ParseDocument returns one record per record block of an already parsed
// document. Blocks are never skipped: a block with none of the field
// elements still yields a record of empty strings.
func (p *Parser) ParseDocument(source string, doc *goquery.Document) ([]clinics.Record, error) {
	blocks := doc.FindMatcher(blockMatcher)
	records := make([]clinics.Record, 0, blocks.Length())

	for i, node := range blocks.Nodes {
		area, ok := Area(node)
		if !ok {
			if p.policy == clinics.HeadingRequired {
				return nil, clinics.Errorf(clinics.ENOTFOUND, "no section heading precedes record block %d", i+1)
			}
			if p.onMissing != nil {
				p.onMissing(source, i)
			}
		}
		records = append(records, Extract(blocks.Eq(i), area))
	}

	return records, nil
}
