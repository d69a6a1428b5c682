package item

import "fmt"

type Type int

const (
	NullType Type = iota
	TrueType
	FalseType
	NumberType
	StringType
	ArrayType
	ObjectType

	// freedType marks a node released by Free.
	freedType Type = -1
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ObjectType: "Object",
		ArrayType:  "Array",
		StringType: "String",
		NumberType: "Number",
		TrueType:   "True",
		FalseType:  "False",
		NullType:   "Null",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":   NullType,
		"True":   TrueType,
		"False":  FalseType,
		"Number": NumberType,
		"String": StringType,
		"Array":  ArrayType,
		"Object": ObjectType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		TrueType,
		FalseType,
		NumberType,
		StringType,
		ArrayType,
		ObjectType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}

// IsLiteral reports whether t is one of null, true or false.
func (t Type) IsLiteral() bool {
	switch t {
	case NullType, TrueType, FalseType:
		return true
	default:
		return false
	}
}
