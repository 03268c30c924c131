package Trees

import (
	"fmt"
	"io"

	"github.com/g-m-twostay/ordtree/Queues"
	"golang.org/x/exp/constraints"
)

// BSTree is a binary search tree with no repeated values. It applies no
// balancing: its shape depends exclusively on the order of insertions and
// removals, so the height D is O(n) in the worst case and O(log n) on
// average for random input.
// T is the type of values it will hold. The ordering comes from less, which
// must be a strict total order. Two values a, b with !less(a,b) && !less(b,a)
// are treated as equal and only one of them is kept.
// BSTree isn't safe for concurrent use when any goroutine mutates it; read only
// methods may run concurrently with each other. See Locked.
type BSTree[T any] struct {
	root *node[T]
	sz   uint
	less func(a, b T) bool
}

// New returns an empty BSTree ordered by less.
func New[T any](less func(a, b T) bool) *BSTree[T] {
	return &BSTree[T]{less: less}
}

// NewOrdered returns an empty BSTree ordered by the < operator of T.
func NewOrdered[T constraints.Ordered]() *BSTree[T] {
	return New(func(a, b T) bool { return a < b })
}

// From builds a BSTree by inserting vs in the given order. Duplicates are ignored.
// Time: O(n*D)
func From[T any](less func(a, b T) bool, vs ...T) *BSTree[T] {
	u := New(less)
	for i := range vs {
		u.Insert(vs[i])
	}
	return u
}

// Empty [Tree.Empty]
// Time: O(1)
func (u *BSTree[T]) Empty() bool {
	return u.root == nil
}

// Size [Tree.Size]
// Time: O(1)
func (u *BSTree[T]) Size() uint {
	return u.sz
}

// Insert [Tree.Insert]. Recursive.
// Time: O(D)
func (u *BSTree[T]) Insert(v T) bool {
	return u.insert(&v)
}

// InsertMove inserts the value held by p and gives up the caller's copy: *p is
// reset to the zero value of T whether or not v was a duplicate. The resulting
// tree is the same as calling Insert(*p). Recursive.
// Time: O(D)
func (u *BSTree[T]) InsertMove(p *T) bool {
	inserted := u.insert(p)
	*p = *new(T)
	return inserted
}

func (u *BSTree[T]) insert(p *T) bool {
	var inserted bool
	if u.root, inserted = insert(u.root, p, u.less); inserted {
		u.sz++
	}
	return inserted
}

// Remove [Tree.Remove]. Recursive.
// Time: O(D)
func (u *BSTree[T]) Remove(v T) bool {
	var deleted bool
	if u.root, deleted = remove(u.root, v, u.less); deleted {
		u.sz--
	}
	return deleted
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if u.less(v, cur.v) {
			cur = cur.l
		} else if u.less(cur.v, v) {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, error) {
	if u.root == nil {
		return *new(T), &UnderflowError{"Minimum"}
	}
	return minNode(u.root).v, nil
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, error) {
	if u.root == nil {
		return *new(T), &UnderflowError{"Maximum"}
	}
	return maxNode(u.root).v, nil
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Predecessor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if u.less(cur.v, v) {
			p = cur
			cur = cur.r
		} else {
			cur = cur.l
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Successor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if u.less(v, cur.v) {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Clear [Tree.Clear]. Nodes are unlinked in post-order before the root is reset. Recursive.
// Time: O(n)
func (u *BSTree[T]) Clear() {
	release(u.root)
	u.root, u.sz = nil, 0
}

// Height of the tree, the number of nodes on its longest root to leaf path. 0 when empty. Recursive.
// Time: O(n)
func (u *BSTree[T]) Height() uint {
	return height(u.root)
}

// InOrder [Tree.InOrder]
// The iterator keeps its own stack of pending nodes and never writes to the tree,
// so several iterators may walk the same tree at once.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *BSTree[T]) InOrder() func() (T, bool) {
	var st []*node[T]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for next := cur.r; next != nil; next = next.l {
			st = append(st, next)
		}
		return cur.v, true
	}
}

// Range calls f on every element in ascending order until f returns false.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) Range(f func(T) bool) {
	next := u.InOrder()
	for v, ok := next(); ok && f(v); v, ok = next() {
	}
}

// Values of the tree in ascending order.
func (u *BSTree[T]) Values() []T {
	vs := make([]T, 0, u.sz)
	u.Range(func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

// LevelOrder returns the elements breadth first, root first and each level from left to right.
// Time: O(n); Space: O(n)
func (u *BSTree[T]) LevelOrder() []T {
	vs := make([]T, 0, u.sz)
	if u.root == nil {
		return vs
	}
	q := Queues.MakeArrayQueue[*node[T]](u.sz/2 + 1)
	q.Push(u.root)
	for !q.Empty() {
		cur, _ := q.Pop()
		vs = append(vs, cur.v)
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
	return vs
}

// Print writes the elements in ascending order to w, one per line, or the line
// "Empty tree" when there is none.
func (u *BSTree[T]) Print(w io.Writer) (err error) {
	if u.root == nil {
		_, err = fmt.Fprintln(w, "Empty tree")
		return
	}
	u.Range(func(v T) bool {
		_, err = fmt.Fprintln(w, v)
		return err == nil
	})
	return
}

// Clone returns a deep copy of u sharing no nodes with it. Recursive.
// Time: O(n)
func (u *BSTree[T]) Clone() *BSTree[T] {
	return &BSTree[T]{clone(u.root), u.sz, u.less}
}

// Move returns a tree that takes over every node of u, leaving u empty.
// Time: O(1)
func (u *BSTree[T]) Move() *BSTree[T] {
	t := &BSTree[T]{u.root, u.sz, u.less}
	u.root, u.sz = nil, 0
	return t
}

// Swap the contents and orderings of u and o.
// Time: O(1)
func (u *BSTree[T]) Swap(o *BSTree[T]) {
	*u, *o = *o, *u
}

// Assign makes u a deep copy of src. The copy is built completely before u is
// touched, then swapped in; u's previous nodes are released afterwards.
// Assigning a tree to itself does nothing.
// Time: O(n+m)
func (u *BSTree[T]) Assign(src *BSTree[T]) {
	if u == src {
		return
	}
	c := src.Clone()
	u.Swap(c)
	c.Clear()
}

// AssignMove makes u take over every node of src, leaving src empty. u's
// previous nodes are released. Moving a tree into itself does nothing.
// Time: O(m)
func (u *BSTree[T]) AssignMove(src *BSTree[T]) {
	if u == src {
		return
	}
	old := src.Move()
	u.Swap(old)
	old.Clear()
}

// Corrupt [Tree.Corrupt]
// Checks that every node lies strictly between the bounds its ancestors impose
// and that the node count matches Size. Recursive.
// Time: O(n)
func (u *BSTree[T]) Corrupt() bool {
	var n uint
	var check func(cur *node[T], lo, hi *T) bool
	check = func(cur *node[T], lo, hi *T) bool {
		if cur == nil {
			return true
		}
		n++
		if (lo != nil && !u.less(*lo, cur.v)) || (hi != nil && !u.less(cur.v, *hi)) {
			return false
		}
		return check(cur.l, lo, &cur.v) && check(cur.r, &cur.v, hi)
	}
	return !check(u.root, nil, nil) || n != u.sz
}
