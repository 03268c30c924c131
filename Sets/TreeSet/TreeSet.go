package TreeSet

import (
	"github.com/g-m-twostay/ordtree/Sets"
	"github.com/g-m-twostay/ordtree/Trees"
	"golang.org/x/exp/constraints"
)

var _ Sets.ExtendedSet[int] = (*TreeSet[int])(nil)

// TreeSet is a Sets.ExtendedSet kept in a Trees.BSTree, so Range visits the
// elements in ascending order and Take gives the smallest one.
type TreeSet[E any] struct {
	t *Trees.BSTree[E]
}

// New TreeSet ordered by less.
func New[E any](less func(a, b E) bool) *TreeSet[E] {
	return &TreeSet[E]{Trees.New(less)}
}

// NewOrdered TreeSet ordered by <.
func NewOrdered[E constraints.Ordered]() *TreeSet[E] {
	return &TreeSet[E]{Trees.NewOrdered[E]()}
}

func (u *TreeSet[E]) Put(e E) bool {
	return u.t.Insert(e)
}

func (u *TreeSet[E]) Has(e E) bool {
	return u.t.Has(e)
}

func (u *TreeSet[E]) Remove(e E) bool {
	return u.t.Remove(e)
}

func (u *TreeSet[E]) Size() uint {
	return u.t.Size()
}

// Take the smallest element. Returns zero value if the set is empty.
func (u *TreeSet[E]) Take() E {
	e, _ := u.t.Minimum()
	return e
}

// Range over the elements in ascending order. Stops when f returns false.
// The set mustn't be modified by f.
func (u *TreeSet[E]) Range(f func(E) bool) {
	u.t.Range(f)
}

func (u *TreeSet[E]) PutAll(s Sets.Set[E]) (n uint) {
	s.Range(func(e E) bool {
		if u.t.Insert(e) {
			n++
		}
		return true
	})
	return
}

func (u *TreeSet[E]) RemoveAll(s Sets.Set[E]) (n uint) {
	if Sets.Set[E](u) == s {
		n = u.t.Size()
		u.t.Clear()
		return
	}
	s.Range(func(e E) bool {
		if u.t.Remove(e) {
			n++
		}
		return true
	})
	return
}

// Eq reports whether u and s hold the same elements.
func (u *TreeSet[E]) Eq(s Sets.Set[E]) bool {
	if u.t.Size() != s.Size() {
		return false
	}
	eq := true
	u.t.Range(func(e E) bool {
		eq = s.Has(e)
		return eq
	})
	return eq
}

func (u *TreeSet[E]) Union(s Sets.Set[E]) {
	u.PutAll(s)
}

// Intersect keeps only the elements also in s.
func (u *TreeSet[E]) Intersect(s Sets.Set[E]) {
	u.retain(s.Has)
}

// Filter returns a new set of the elements for which keep returns true. u is unchanged.
func (u *TreeSet[E]) Filter(keep func(E) bool) Sets.ExtendedSet[E] {
	c := &TreeSet[E]{u.t.Clone()}
	c.retain(keep)
	return c
}

// retain removes the elements failing keep. Removal happens after the walk
// since the tree mustn't change under its iterator.
func (u *TreeSet[E]) retain(keep func(E) bool) {
	var drop []E
	u.t.Range(func(e E) bool {
		if !keep(e) {
			drop = append(drop, e)
		}
		return true
	})
	for _, e := range drop {
		u.t.Remove(e)
	}
}

// Tree is the underlying tree.
func (u *TreeSet[E]) Tree() *Trees.BSTree[E] {
	return u.t
}
