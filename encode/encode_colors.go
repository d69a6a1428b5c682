package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/ovitem/format"
	"github.com/signadot/ovitem/item"
)

type ColorAttr int

const (
	// ValueColor colors scalar text and string quotes. Literals share
	// the null color.
	ValueColor ColorAttr = iota
	// SepColor colors brackets, separators and delimiters.
	SepColor
)

type Colorable struct {
	Type item.Type
	Attr ColorAttr
}

// Colors maps item types to terminal colors.
type Colors struct {
	Default *color.Color
	Map     map[Colorable]*color.Color
}

func NewColors() *Colors {
	colors := &Colors{
		Default: color.New(color.Reset),
		Map:     map[Colorable]*color.Color{},
	}
	able := Colorable{Attr: ValueColor}

	able.Type = item.NullType
	colors.Map[able] = color.RGB(168, 0, 196)
	able.Type = item.NumberType
	colors.Map[able] = color.RGB(128, 216, 236)
	able.Type = item.StringType
	colors.Map[able] = color.RGB(8, 196, 16)

	able.Attr = SepColor
	able.Type = item.ArrayType
	colors.Map[able] = color.RGB(255, 0, 196)
	able.Type = item.ObjectType
	colors.Map[able] = color.RGB(196, 128, 128)

	for _, c := range colors.Map {
		c.EnableColor()
	}
	colors.Default.EnableColor()
	return colors
}

func (c *Colors) get(t item.Type, a ColorAttr) *color.Color {
	if x, ok := c.Map[Colorable{Type: t, Attr: a}]; ok {
		return x
	}
	return c.Default
}

// Apply returns s with its tokens wrapped in color escape sequences.
// Scalars are enclosed by their color, container tokens are colored one
// by one. Escape sequences count as output, so sizes stay exact.
func (c *Colors) Apply(s format.Style) format.Style {
	s.Literal = c.enclose(s.Literal, c.get(item.NullType, ValueColor))
	s.Number = c.enclose(s.Number, c.get(item.NumberType, ValueColor))
	s.String = c.enclose(s.String, c.get(item.StringType, ValueColor))
	s.Array = c.each(s.Array, c.get(item.ArrayType, SepColor))
	s.Object = c.each(s.Object, c.get(item.ObjectType, SepColor))
	return s
}

func (c *Colors) enclose(t format.Tokens, x *color.Color) format.Tokens {
	on, off := escapes(x)
	t.Intro = on + t.Intro
	t.Outro = t.Outro + off
	return t
}

func (c *Colors) each(t format.Tokens, x *color.Color) format.Tokens {
	wrap := func(v string) string {
		if v == "" {
			return v
		}
		return x.Sprint(v)
	}
	t.Intro = wrap(t.Intro)
	t.Outro = wrap(t.Outro)
	t.Separator = wrap(t.Separator)
	t.Delimiter = wrap(t.Delimiter)
	return t
}

// escapes returns the sequences x writes before and after text.
func escapes(x *color.Color) (string, string) {
	on, off, _ := strings.Cut(x.Sprint("\x00"), "\x00")
	return on, off
}
