package token

import "fmt"

// Balanced returns the length of the container span starting at d[0],
// which must be '{' or '['. The span ends with the matching closing
// bracket. Brackets inside strings are ignored.
func Balanced(d []byte) (int, error) {
	if len(d) == 0 || (d[0] != '{' && d[0] != '[') {
		return 0, fmt.Errorf("%w: no container at start", ErrDocBalance)
	}
	var stack []byte
	i := 0
	for i < len(d) {
		c := d[i]
		switch c {
		case '"':
			n, err := QuotedSpan(d[i:])
			if err != nil {
				return 0, err
			}
			i += n
			continue
		case '{':
			stack = append(stack, '}')
		case '[':
			stack = append(stack, ']')
		case '}', ']':
			top := len(stack) - 1
			if stack[top] != c {
				return 0, fmt.Errorf("%w: %q closed by %q at offset %d",
					ErrDocBalance, opener(stack[top]), c, i)
			}
			stack = stack[:top]
			if top == 0 {
				return i + 1, nil
			}
		}
		i++
	}
	return 0, fmt.Errorf("%w: unmatched %q", ErrUnterminated, d[0])
}

func opener(closer byte) byte {
	if closer == '}' {
		return '{'
	}
	return '['
}
