package parse

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/signadot/ovitem/item"
)

// ParseYAML decodes the first YAML document of d. The YAML data model is
// narrowed to JSON: mapping keys become strings and tags are dropped.
func ParseYAML(d []byte, opts ...ParseOption) (*item.Node, error) {
	pOpts := newOpts(opts)
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("%w: yaml: %w", ErrParse, err)
	}
	res, err := item.FromAny(v, pOpts.itemOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: yaml: %w", ErrParse, err)
	}
	return res, nil
}
