package encode

import "github.com/signadot/ovitem/format"

type EncState struct {
	style  format.Style
	colors *Colors
}

type EncodeOption func(*EncState)

// WithStyle selects the output style. The default is format.Default().
func WithStyle(s format.Style) EncodeOption {
	return func(es *EncState) { es.style = s }
}

// Collate orders object keys with c.
func Collate(c format.Collation) EncodeOption {
	return func(es *EncState) { es.style.Collate = c }
}

// WithColors colors the output with c. A nil c leaves it plain.
func WithColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

// StyleFromOpts returns the effective style of opts, colors applied.
func StyleFromOpts(opts ...EncodeOption) format.Style {
	es := &EncState{style: format.Default()}
	for _, opt := range opts {
		opt(es)
	}
	if es.colors != nil {
		return es.colors.Apply(es.style)
	}
	return es.style
}
