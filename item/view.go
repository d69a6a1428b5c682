package item

// Member is one key/value pair of an object.
type Member struct {
	Key string
	Val *Node
}

// View is a snapshot of a single node taken under its lock. Children are
// shared with the node, not copied.
type View struct {
	Type    Type
	Number  float64
	String  string
	Elems   []*Node
	Members []Member
}

// View returns a snapshot of n. Only the fields matching the type are set.
func (n *Node) View() (View, error) {
	if err := n.acquire(); err != nil {
		return View{Type: InvalidType}, err
	}
	defer n.release()
	v := View{Type: n.typ}
	switch n.typ {
	case NumberType:
		v.Number = n.num
	case StringType:
		v.String = n.str
	case ArrayType:
		v.Elems = make([]*Node, len(n.elems))
		copy(v.Elems, n.elems)
	case ObjectType:
		v.Members = make([]Member, 0, len(n.members))
		for k, c := range n.members {
			v.Members = append(v.Members, Member{Key: k, Val: c})
		}
	}
	return v, nil
}

// Copy returns a deep copy of n with no parent. The copy keeps the lock
// timeout of n. It returns nil if n is invalid or a lock times out.
func (n *Node) Copy() *Node {
	v, err := n.View()
	if err != nil {
		return nil
	}
	res := newNode(v.Type, []Option{WithLockTimeout(n.timeout)})
	switch v.Type {
	case NumberType:
		res.num = v.Number
	case StringType:
		res.str = v.String
	case ArrayType:
		res.elems = make([]*Node, len(v.Elems))
		for i, e := range v.Elems {
			if e == nil {
				continue
			}
			c := e.Copy()
			if c == nil {
				Free(res)
				return nil
			}
			c.parent.Store(res)
			res.elems[i] = c
		}
	case ObjectType:
		res.members = make(map[string]*Node, len(v.Members))
		for _, m := range v.Members {
			c := m.Val.Copy()
			if c == nil {
				Free(res)
				return nil
			}
			c.parent.Store(res)
			res.members[m.Key] = c
		}
	}
	return res
}
