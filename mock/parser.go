package mock

import "github.com/fwojciec/clinics"

var _ clinics.Parser = (*Parser)(nil)

// Parser is a mock implementation of clinics.Parser.
type Parser struct {
	ParseFn func(source, html string) ([]clinics.Record, error)
}

func (p *Parser) Parse(source, html string) ([]clinics.Record, error) {
	return p.ParseFn(source, html)
}
