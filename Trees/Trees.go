package Trees

// Tree represents an ordered set implemented using nodes.
// Receivers that have a bool as the second return value indicate whether
// the first return value is defined. For example, calling Predecessor with
// the smallest element returns (x T, false). In this case x is the zero
// value of T and shouldn't be used.
// Minimum and Maximum instead report an *UnderflowError on an empty tree.
// If an implementation didn't specify anything special, then the implemented
// receivers follow the behaviors defined here. Methods implemented recursively
// should be noted, otherwise functions are implemented iteratively.
type Tree[T any] interface {
	//Empty reports whether the tree holds no elements.
	Empty() bool
	//Insert v to the Tree. Returns false when v is already in the tree, in
	//which case nothing changes.
	Insert(v T) bool
	//Remove v from the Tree. Returns false when v isn't in the tree, in
	//which case nothing changes.
	Remove(v T) bool
	//Minimum element of the tree.
	Minimum() (T, error)
	//Maximum element of the tree.
	Maximum() (T, error)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	//Clear removes every element.
	Clear()
	//InOrder returns a closure function f acting like an iterator. f
	//gives elements in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	InOrder() func() (T, bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering of that specific implementation.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}

// UnderflowError is returned when an element is requested from an empty tree.
type UnderflowError struct {
	Op string
}

func (e *UnderflowError) Error() string {
	return "Tree is Empty: cannot " + e.Op + "."
}
