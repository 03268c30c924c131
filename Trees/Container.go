package Trees

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
)

var (
	_ Tree[int]            = (*BSTree[int])(nil)
	_ containers.Container = container[int]{}
)

// NewWithComparator returns an empty BSTree ordered by a gods comparator,
// c(a,b) < 0 meaning a is less than b.
func NewWithComparator[T any](c utils.Comparator) *BSTree[T] {
	return New(func(a, b T) bool { return c(a, b) < 0 })
}

// container adapts a BSTree to containers.Container.
type container[T any] struct {
	t *BSTree[T]
}

// Container returns a view of u satisfying containers.Container. Changes
// through the view are changes to u.
func (u *BSTree[T]) Container() containers.Container {
	return container[T]{u}
}

func (c container[T]) Empty() bool {
	return c.t.Empty()
}

func (c container[T]) Size() int {
	return int(c.t.Size())
}

func (c container[T]) Clear() {
	c.t.Clear()
}

func (c container[T]) Values() []interface{} {
	vs := make([]interface{}, 0, c.t.Size())
	c.t.Range(func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

func (c container[T]) String() string {
	var sb strings.Builder
	sb.WriteString("BSTree\n")
	c.t.Range(func(v T) bool {
		fmt.Fprintf(&sb, "%v\n", v)
		return true
	})
	return sb.String()
}
