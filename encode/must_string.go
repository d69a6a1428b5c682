package encode

import "github.com/signadot/ovitem/item"

func MustString(node *item.Node, opts ...EncodeOption) string {
	s, err := Encode(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
