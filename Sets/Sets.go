package Sets

// Set of unique elements.
type Set[E any] interface {
	//Put e into the set. Returns false if e was already in it.
	Put(E) bool
	Has(E) bool
	//Remove e from the set. Returns false if e wasn't in it.
	Remove(E) bool
	Size() uint
	//Take an element without removing it. Returns zero value if the set is empty.
	Take() E
	//Range calls f on the elements until f returns false.
	Range(func(E) bool)
}

type ExtendedSet[E any] interface {
	Set[E]
	//PutAll elements of s, returns the number of elements added.
	PutAll(Set[E]) uint
	//RemoveAll elements of s, returns the number of elements removed.
	RemoveAll(Set[E]) uint
	Eq(Set[E]) bool
	Union(Set[E])
	Intersect(Set[E])
	Filter(func(E) bool) ExtendedSet[E]
}
