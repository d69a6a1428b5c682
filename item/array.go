package item

// Len returns the number of slots of an array, holes included, or 0 if n
// is not an array.
func (n *Node) Len() int {
	if err := n.acquire(); err != nil {
		return 0
	}
	defer n.release()
	if n.typ != ArrayType {
		return 0
	}
	return len(n.elems)
}

// Index returns the element at i without transferring ownership. It
// returns nil when i is out of range or names a hole left by SetIndex.
func (n *Node) Index(i int) *Node {
	if err := n.acquire(); err != nil {
		return nil
	}
	defer n.release()
	if n.typ != ArrayType || i < 0 || i >= len(n.elems) {
		return nil
	}
	return n.elems[i]
}

// Push appends val to the array n, taking ownership of val.
func (n *Node) Push(val *Node) error {
	if err := n.checkInsert(val); err != nil {
		return err
	}
	if err := n.acquire(); err != nil {
		return err
	}
	defer n.release()
	if n.typ != ArrayType {
		return ErrType
	}
	if err := val.adopt(n); err != nil {
		return err
	}
	n.elems = append(n.elems, val)
	return nil
}

// SetIndex stores val at i, freeing any previous element there. Setting
// beyond the end grows the array; the slots in between are left as holes.
func (n *Node) SetIndex(i int, val *Node) error {
	if i < 0 {
		return ErrIndex
	}
	if err := n.checkInsert(val); err != nil {
		return err
	}
	if err := n.acquire(); err != nil {
		return err
	}
	if n.typ != ArrayType {
		n.release()
		return ErrType
	}
	if err := val.adopt(n); err != nil {
		n.release()
		return err
	}
	var old *Node
	if i < len(n.elems) {
		old = n.elems[i]
	} else {
		n.elems = append(n.elems, make([]*Node, i+1-len(n.elems))...)
	}
	n.elems[i] = val
	n.release()
	if old != nil && old != val {
		old.disown()
		Free(old)
	}
	return nil
}

// Pop removes and returns the last element (LIFO order).
func (n *Node) Pop() *Node {
	if err := n.acquire(); err != nil {
		return nil
	}
	defer n.release()
	if n.typ != ArrayType || len(n.elems) == 0 {
		return nil
	}
	last := len(n.elems) - 1
	v := n.elems[last]
	n.elems[last] = nil
	n.elems = n.elems[:last]
	v.disown()
	return v
}

// Shift removes and returns the first element (FIFO order).
func (n *Node) Shift() *Node {
	if err := n.acquire(); err != nil {
		return nil
	}
	defer n.release()
	if n.typ != ArrayType || len(n.elems) == 0 {
		return nil
	}
	v := n.elems[0]
	n.elems[0] = nil
	n.elems = n.elems[1:]
	v.disown()
	return v
}

// Elems returns a snapshot of the array elements. Holes are nil.
func (n *Node) Elems() []*Node {
	res, _ := n.snapshotElems()
	return res
}

func (n *Node) snapshotElems() ([]*Node, error) {
	if err := n.acquire(); err != nil {
		return nil, err
	}
	defer n.release()
	if n.typ != ArrayType {
		return nil, ErrType
	}
	res := make([]*Node, len(n.elems))
	copy(res, n.elems)
	return res, nil
}
