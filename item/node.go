package item

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
)

// InvalidType is reported by Type for nil or freed nodes and when the
// node's lock could not be acquired.
const InvalidType = freedType

// DefaultLockTimeout is the initial process-wide lock acquire timeout.
const DefaultLockTimeout = time.Second

var defaultTimeout atomic.Int64

func init() {
	defaultTimeout.Store(int64(DefaultLockTimeout))
}

// SetDefaultLockTimeout sets the lock acquire timeout of nodes created
// afterwards without WithLockTimeout.
func SetDefaultLockTimeout(d time.Duration) {
	if d <= 0 {
		d = DefaultLockTimeout
	}
	defaultTimeout.Store(int64(d))
}

// LockTimeoutDefault returns the current process-wide lock timeout.
func LockTimeoutDefault() time.Duration {
	return time.Duration(defaultTimeout.Load())
}

// Node is one JSON value. Nodes must be created with the constructors in
// this package; the zero Node is invalid.
//
// Arrays and objects own their children. The parent reference is
// non-owning and is maintained by the container operations.
type Node struct {
	typ     Type
	num     float64
	str     string
	elems   []*Node
	members map[string]*Node

	parent atomic.Pointer[Node]

	sem     *semaphore.Weighted
	timeout time.Duration
}

type Option func(*Node)

// WithLockTimeout overrides the lock acquire timeout of the created node.
func WithLockTimeout(d time.Duration) Option {
	return func(n *Node) {
		if d > 0 {
			n.timeout = d
		}
	}
}

func newNode(t Type, opts []Option) *Node {
	n := &Node{
		typ:     t,
		sem:     semaphore.NewWeighted(1),
		timeout: LockTimeoutDefault(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func Null(opts ...Option) *Node {
	return newNode(NullType, opts)
}

func True(opts ...Option) *Node {
	return newNode(TrueType, opts)
}

func False(opts ...Option) *Node {
	return newNode(FalseType, opts)
}

func Bool(v bool, opts ...Option) *Node {
	if v {
		return True(opts...)
	}
	return False(opts...)
}

func Number(f float64, opts ...Option) *Node {
	n := newNode(NumberType, opts)
	n.num = f
	return n
}

func Int(i int64, opts ...Option) *Node {
	return Number(float64(i), opts...)
}

func String(s string, opts ...Option) *Node {
	n := newNode(StringType, opts)
	n.str = s
	return n
}

// StringPtr is String for a possibly absent value: a nil s yields nil.
func StringPtr(s *string, opts ...Option) *Node {
	if s == nil {
		return nil
	}
	return String(*s, opts...)
}

func Array(opts ...Option) *Node {
	n := newNode(ArrayType, opts)
	n.elems = []*Node{}
	return n
}

func Object(opts ...Option) *Node {
	n := newNode(ObjectType, opts)
	n.members = map[string]*Node{}
	return n
}

// FromSlice returns an array owning vals. It returns nil if any value
// cannot be adopted.
func FromSlice(vals []*Node, opts ...Option) *Node {
	res := Array(opts...)
	for _, v := range vals {
		if err := res.Push(v); err != nil {
			Free(res)
			return nil
		}
	}
	return res
}

// FromMap returns an object owning the values of m. It returns nil if
// any value cannot be adopted.
func FromMap(m map[string]*Node, opts ...Option) *Node {
	res := Object(opts...)
	for k, v := range m {
		if err := res.Set(k, v); err != nil {
			Free(res)
			return nil
		}
	}
	return res
}

// acquire takes the node lock, waiting at most the node's timeout.
func (n *Node) acquire() error {
	if n == nil || n.sem == nil {
		return ErrInvalid
	}
	if !n.sem.TryAcquire(1) {
		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		err := n.sem.Acquire(ctx, 1)
		cancel()
		if err != nil {
			return ErrLockTimeout
		}
	}
	if n.typ == freedType {
		n.sem.Release(1)
		return ErrInvalid
	}
	return nil
}

func (n *Node) release() {
	n.sem.Release(1)
}

// linkMu serializes attaching containers, so that two insertions crossing
// each other cannot both pass the cycle check.
var linkMu sync.Mutex

// adopt makes p the parent of n. p is expected to be locked by the caller.
func (n *Node) adopt(p *Node) error {
	if err := n.acquire(); err != nil {
		return err
	}
	defer n.release()
	if n.typ == ArrayType || n.typ == ObjectType {
		linkMu.Lock()
		defer linkMu.Unlock()
		if p.Root() == n {
			return ErrCycle
		}
	}
	if !n.parent.CompareAndSwap(nil, p) {
		return ErrOwned
	}
	return nil
}

func (n *Node) disown() {
	if n != nil {
		n.parent.Store(nil)
	}
}

// checkInsert validates v for insertion into n.
func (n *Node) checkInsert(v *Node) error {
	if v == nil {
		return ErrInvalid
	}
	if v == n || n.Root() == v {
		return ErrCycle
	}
	return nil
}

func (n *Node) LockTimeout() time.Duration {
	if n == nil {
		return 0
	}
	return n.timeout
}

func (n *Node) Type() Type {
	if err := n.acquire(); err != nil {
		return InvalidType
	}
	defer n.release()
	return n.typ
}

func (n *Node) IsNull() bool   { return n.Type() == NullType }
func (n *Node) IsTrue() bool   { return n.Type() == TrueType }
func (n *Node) IsFalse() bool  { return n.Type() == FalseType }
func (n *Node) IsNumber() bool { return n.Type() == NumberType }
func (n *Node) IsString() bool { return n.Type() == StringType }
func (n *Node) IsArray() bool  { return n.Type() == ArrayType }
func (n *Node) IsObject() bool { return n.Type() == ObjectType }

func (n *Node) IsBool() bool {
	t := n.Type()
	return t == TrueType || t == FalseType
}

// Valid reports whether n was created by a constructor and not freed.
func (n *Node) Valid() bool {
	return n.Type() != InvalidType
}

func (n *Node) BoolValue() (bool, bool) {
	switch n.Type() {
	case TrueType:
		return true, true
	case FalseType:
		return false, true
	default:
		return false, false
	}
}

func (n *Node) StringValue() (string, bool) {
	if err := n.acquire(); err != nil {
		return "", false
	}
	defer n.release()
	if n.typ != StringType {
		return "", false
	}
	return n.str, true
}

func (n *Node) NumberValue() (float64, bool) {
	if err := n.acquire(); err != nil {
		return 0, false
	}
	defer n.release()
	if n.typ != NumberType {
		return 0, false
	}
	return n.num, true
}

// IntValue returns the number truncated toward zero. Values outside the
// int64 range and NaN are reported as not ok.
func (n *Node) IntValue() (int64, bool) {
	f, ok := n.NumberValue()
	if !ok {
		return 0, false
	}
	t := math.Trunc(f)
	if math.IsNaN(t) || t < math.MinInt64 || t >= math.MaxInt64 {
		return 0, false
	}
	return int64(t), true
}

// SetNumber replaces the value of a number node.
func (n *Node) SetNumber(f float64) error {
	if err := n.acquire(); err != nil {
		return err
	}
	defer n.release()
	if n.typ != NumberType {
		return ErrType
	}
	n.num = f
	return nil
}

// Parent returns the container currently holding n, or nil.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent.Load()
}

func (n *Node) Root() *Node {
	res := n
	for {
		p := res.Parent()
		if p == nil {
			return res
		}
		res = p
	}
}

// Count returns 1 for scalars, the number of elements of an array and the
// number of members of an object. It returns 0 for invalid nodes.
func (n *Node) Count() int {
	if err := n.acquire(); err != nil {
		return 0
	}
	defer n.release()
	switch n.typ {
	case ArrayType:
		return len(n.elems)
	case ObjectType:
		return len(n.members)
	default:
		return 1
	}
}

func (n *Node) IsEmpty() bool {
	return n.Count() == 0
}

// take detaches the payload of n, which must be locked, and returns the
// owned children.
func (n *Node) take() []*Node {
	var kids []*Node
	switch n.typ {
	case ArrayType:
		kids = n.elems
	case ObjectType:
		kids = make([]*Node, 0, len(n.members))
		for _, v := range n.members {
			kids = append(kids, v)
		}
	}
	n.elems = nil
	n.members = nil
	n.str = ""
	n.num = 0
	return kids
}

func freeAll(kids []*Node) {
	for _, k := range kids {
		if k == nil {
			continue
		}
		k.disown()
		Free(k)
	}
}

// Clear releases the payload of n and turns it into a null node.
func (n *Node) Clear() error {
	if err := n.acquire(); err != nil {
		return err
	}
	kids := n.take()
	n.typ = NullType
	n.release()
	freeAll(kids)
	return nil
}

// Free releases n and all its children and returns nil. A node still held
// by a container is not freed and is returned unchanged, as is a node
// whose lock cannot be acquired.
func Free(n *Node) *Node {
	if n == nil {
		return nil
	}
	if n.sem == nil {
		// not constructed by this package
		return n
	}
	if err := n.acquire(); err != nil {
		if err == ErrInvalid {
			return nil
		}
		return n
	}
	if n.parent.Load() != nil {
		n.release()
		return n
	}
	kids := n.take()
	n.typ = freedType
	n.release()
	freeAll(kids)
	return nil
}
