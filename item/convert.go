package item

import (
	"fmt"
	"math"
)

// FromAny builds a tree from the generic Go representation of a JSON
// document: nil, bool, numbers, string, []any and maps with string keys.
// A *Node is deep copied.
func FromAny(v any, opts ...Option) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(opts...), nil
	case *Node:
		c := x.Copy()
		if c == nil {
			return nil, ErrInvalid
		}
		return c, nil
	case bool:
		return Bool(x, opts...), nil
	case string:
		return String(x, opts...), nil
	case float64:
		return Number(x, opts...), nil
	case float32:
		return Number(float64(x), opts...), nil
	case int:
		return Int(int64(x), opts...), nil
	case int8:
		return Int(int64(x), opts...), nil
	case int16:
		return Int(int64(x), opts...), nil
	case int32:
		return Int(int64(x), opts...), nil
	case int64:
		return Int(x, opts...), nil
	case uint:
		return Number(float64(x), opts...), nil
	case uint8:
		return Number(float64(x), opts...), nil
	case uint16:
		return Number(float64(x), opts...), nil
	case uint32:
		return Number(float64(x), opts...), nil
	case uint64:
		return Number(float64(x), opts...), nil
	case []any:
		res := Array(opts...)
		for i, e := range x {
			c, err := FromAny(e, opts...)
			if err != nil {
				Free(res)
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			if err := res.Push(c); err != nil {
				Free(res)
				return nil, err
			}
		}
		return res, nil
	case map[string]any:
		res := Object(opts...)
		for k, e := range x {
			c, err := FromAny(e, opts...)
			if err != nil {
				Free(res)
				return nil, fmt.Errorf("%q: %w", k, err)
			}
			if err := res.Set(k, c); err != nil {
				Free(res)
				return nil, err
			}
		}
		return res, nil
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, e := range x {
			ks, ok := k.(string)
			if !ok {
				ks = fmt.Sprint(k)
			}
			m[ks] = e
		}
		return FromAny(m, opts...)
	default:
		return nil, fmt.Errorf("%w: cannot convert %T", ErrType, v)
	}
}

// ToAny returns the generic Go representation of n. Numbers become
// float64, holes become nil.
func (n *Node) ToAny() any {
	if n == nil {
		return nil
	}
	v, err := n.View()
	if err != nil {
		return nil
	}
	switch v.Type {
	case TrueType:
		return true
	case FalseType:
		return false
	case NumberType:
		return v.Number
	case StringType:
		return v.String
	case ArrayType:
		res := make([]any, len(v.Elems))
		for i, e := range v.Elems {
			res[i] = e.ToAny()
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(v.Members))
		for _, m := range v.Members {
			res[m.Key] = m.Val.ToAny()
		}
		return res
	default:
		return nil
	}
}

// ToAnyInts is ToAny with integral numbers in the int64 range reported as
// int64, which suits expression evaluation.
func (n *Node) ToAnyInts() any {
	switch x := n.ToAny().(type) {
	case float64:
		return intIfIntegral(x)
	case []any, map[string]any:
		return intsIn(x)
	default:
		return x
	}
}

func intIfIntegral(f float64) any {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return int64(f)
	}
	return f
}

func intsIn(v any) any {
	switch x := v.(type) {
	case float64:
		return intIfIntegral(x)
	case []any:
		for i := range x {
			x[i] = intsIn(x[i])
		}
		return x
	case map[string]any:
		for k, e := range x {
			x[k] = intsIn(e)
		}
		return x
	default:
		return v
	}
}
