package item

import (
	"maps"
	"slices"
)

// Set stores val under key, taking ownership of val. A previous value
// under key is freed.
func (n *Node) Set(key string, val *Node) error {
	if err := n.checkInsert(val); err != nil {
		return err
	}
	if err := n.acquire(); err != nil {
		return err
	}
	if n.typ != ObjectType {
		n.release()
		return ErrType
	}
	if err := val.adopt(n); err != nil {
		n.release()
		return err
	}
	old := n.members[key]
	n.members[key] = val
	n.release()
	if old != nil && old != val {
		old.disown()
		Free(old)
	}
	return nil
}

// Get returns the value stored under key without transferring ownership.
func (n *Node) Get(key string) *Node {
	if err := n.acquire(); err != nil {
		return nil
	}
	defer n.release()
	if n.typ != ObjectType {
		return nil
	}
	return n.members[key]
}

// Has reports whether the object n has a member key.
func (n *Node) Has(key string) bool {
	return n.Get(key) != nil
}

// Delete frees the value stored under key.
func (n *Node) Delete(key string) error {
	v, err := n.Remove(key)
	if err != nil {
		return err
	}
	Free(v)
	return nil
}

// Remove extracts the value stored under key and returns ownership of it
// to the caller.
func (n *Node) Remove(key string) (*Node, error) {
	if err := n.acquire(); err != nil {
		return nil, err
	}
	defer n.release()
	if n.typ != ObjectType {
		return nil, ErrType
	}
	v, ok := n.members[key]
	if !ok {
		return nil, ErrNotFound
	}
	delete(n.members, key)
	v.disown()
	return v, nil
}

// Keys returns the member keys of an object in unspecified order.
func (n *Node) Keys() []string {
	if err := n.acquire(); err != nil {
		return nil
	}
	defer n.release()
	if n.typ != ObjectType {
		return nil
	}
	return slices.Collect(maps.Keys(n.members))
}

type member struct {
	key string
	val *Node
}

func (n *Node) snapshotMembers() ([]member, error) {
	if err := n.acquire(); err != nil {
		return nil, err
	}
	defer n.release()
	if n.typ != ObjectType {
		return nil, ErrType
	}
	res := make([]member, 0, len(n.members))
	for k, v := range n.members {
		res = append(res, member{key: k, val: v})
	}
	return res, nil
}

// ForEach calls f for each member of the object n until f returns false.
// The members are taken from a snapshot: f may modify the values, and the
// object itself, but must not free n.
func (n *Node) ForEach(f func(key string, val *Node) bool) error {
	ms, err := n.snapshotMembers()
	if err != nil {
		return err
	}
	for _, m := range ms {
		if !f(m.key, m.val) {
			return nil
		}
	}
	return nil
}
