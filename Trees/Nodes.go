package Trees

// A node in the BSTree.
// A nil *node[T] is the empty subtree. Every node is reachable from exactly
// one parent slot (or the root).
type node[T any] struct {
	v    T
	l, r *node[T]
}

// insert v into the subtree rooted at cur recursively and returns the new root
// of that subtree, which is a fresh leaf when cur is nil. The bool reports
// whether a node was created; equal values leave the subtree untouched.
// Time: O(D)
func insert[T any](cur *node[T], v *T, less func(a, b T) bool) (*node[T], bool) {
	if cur == nil {
		return &node[T]{v: *v}, true
	}
	inserted := false
	if less(*v, cur.v) {
		cur.l, inserted = insert(cur.l, v, less)
	} else if less(cur.v, *v) {
		cur.r, inserted = insert(cur.r, v, less)
	}
	return cur, inserted
}

// remove v from the subtree rooted at cur recursively and returns the new root
// of that subtree. A node with two children takes the value of its successor,
// then the successor is removed from the right subtree. A node with at most
// one child is replaced by that child.
// Time: O(D)
func remove[T any](cur *node[T], v T, less func(a, b T) bool) (*node[T], bool) {
	if cur == nil {
		return nil, false
	}
	deleted := false
	if less(v, cur.v) {
		cur.l, deleted = remove(cur.l, v, less)
	} else if less(cur.v, v) {
		cur.r, deleted = remove(cur.r, v, less)
	} else if cur.l != nil && cur.r != nil {
		cur.v = minNode(cur.r).v
		cur.r, _ = remove(cur.r, cur.v, less)
		deleted = true
	} else {
		next := cur.l
		if next == nil {
			next = cur.r
		}
		cur.l, cur.r = nil, nil
		return next, true
	}
	return cur, deleted
}

// minNode is the leftmost node of a non nil subtree.
func minNode[T any](cur *node[T]) *node[T] {
	for cur.l != nil {
		cur = cur.l
	}
	return cur
}

// maxNode is the rightmost node of a non nil subtree.
func maxNode[T any](cur *node[T]) *node[T] {
	for cur.r != nil {
		cur = cur.r
	}
	return cur
}

// clone the subtree rooted at cur recursively. Returns nil for nil.
// Time: O(n)
func clone[T any](cur *node[T]) *node[T] {
	if cur == nil {
		return nil
	}
	return &node[T]{cur.v, clone(cur.l), clone(cur.r)}
}

// release unlinks the subtree rooted at cur in post-order: left subtree, right
// subtree, then the node itself, which also drops its value.
// Time: O(n)
func release[T any](cur *node[T]) {
	if cur == nil {
		return
	}
	release(cur.l)
	release(cur.r)
	cur.l, cur.r = nil, nil
	cur.v = *new(T)
}

// height is the number of nodes on the longest path from cur to a leaf.
func height[T any](cur *node[T]) uint {
	if cur == nil {
		return 0
	}
	return 1 + max(height(cur.l), height(cur.r))
}
