package Trees

import (
	"bytes"
	"errors"
	"math/rand"
	"slices"
	"sync"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 4000
	tAddValRange = 8000
)

func randomTree(t *testing.T) (*BSTree[int], map[int]struct{}) {
	t.Helper()
	tree := NewOrdered[int]()
	content := make(map[int]struct{})
	for _i := 0; _i < tAddN; _i++ {
		b := rg.Intn(tAddValRange)
		_, in := content[b]
		if c := tree.Insert(b); c == in {
			t.Fatalf("insert of key %v returned %v", b, c)
		}
		content[b] = struct{}{}
	}
	return tree, content
}

func sortedKeys(content map[int]struct{}) []int {
	s := make([]int, 0, len(content))
	for k := range content {
		s = append(s, k)
	}
	slices.Sort(s)
	return s
}

func TestBSTree_Scenario(t *testing.T) {
	tree := From(func(a, b int) bool { return a < b }, 5, 3, 8, 1, 4, 7, 9)
	if s := tree.Values(); !slices.Equal(s, []int{1, 3, 4, 5, 7, 8, 9}) {
		t.Fatalf("wrong traversal %v", s)
	}
	if !tree.Has(8) {
		t.Error("tree does not have key 8")
	}
	if tree.Has(6) {
		t.Error("tree has non existent key 6")
	}
	if s := tree.LevelOrder(); !slices.Equal(s, []int{5, 3, 8, 1, 4, 7, 9}) {
		t.Errorf("wrong level order %v", s)
	}
	if !tree.Remove(5) {
		t.Fatal("failed to delete key 5")
	}
	if s := tree.Values(); !slices.Equal(s, []int{1, 3, 4, 7, 8, 9}) {
		t.Fatalf("wrong traversal %v", s)
	}
	if tree.Has(5) {
		t.Error("tree has deleted key 5")
	}
	// the successor 7 replaces the root.
	if s := tree.LevelOrder(); !slices.Equal(s, []int{7, 3, 8, 1, 4, 9}) {
		t.Errorf("wrong level order %v", s)
	}
	if tree.Corrupt() {
		t.Error("tree is corrupt")
	}
}

func TestBSTree_Empty(t *testing.T) {
	tree := NewOrdered[int]()
	if !tree.Empty() {
		t.Error("new tree is not empty")
	}
	if tree.Remove(1) {
		t.Error("removed from empty tree")
	}
	if !tree.Empty() {
		t.Error("tree is not empty after removing from it")
	}
	tree.Insert(1)
	if tree.Empty() {
		t.Error("tree is empty after insert")
	}
	tree.Remove(1)
	if !tree.Empty() || tree.Size() != 0 {
		t.Error("tree is not empty after removing its only key")
	}
	var ue *UnderflowError
	if _, err := tree.Minimum(); !errors.As(err, &ue) || ue.Op != "Minimum" {
		t.Errorf("minimum of empty tree returned %v", err)
	}
	if _, err := tree.Maximum(); !errors.As(err, &ue) || ue.Op != "Maximum" {
		t.Errorf("maximum of empty tree returned %v", err)
	}
	if _, ok := tree.InOrder()(); ok {
		t.Error("iterator of empty tree is not exhausted")
	}
	if tree.Height() != 0 || len(tree.LevelOrder()) != 0 {
		t.Error("empty tree has nodes")
	}
}

func TestBSTree_Insert(t *testing.T) {
	tree, content := randomTree(t)
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	t.Logf("height: %d, size: %d.\n", tree.Height(), tree.Size())
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	s := tree.Values()
	if !slices.Equal(s, sortedKeys(content)) {
		t.Errorf("sorted is not sorted")
	}
	for k := range content {
		if tree.Insert(k) {
			t.Errorf("inserted duplicate key %v", k)
		}
	}
	if !slices.Equal(tree.Values(), s) {
		t.Error("duplicate inserts changed the tree")
	}
	if tree.Corrupt() {
		t.Error("tree is corrupt")
	}
}

func TestBSTree_InsertMove(t *testing.T) {
	a, b := New(func(x, y string) bool { return x < y }), New(func(x, y string) bool { return x < y })
	for _, w := range []string{"m", "c", "x", "a", "e", "c"} {
		a.Insert(w)
		v := w
		b.InsertMove(&v)
		if v != "" {
			t.Errorf("moved value %q is still held by the caller", v)
		}
	}
	if !slices.Equal(a.LevelOrder(), b.LevelOrder()) {
		t.Errorf("shapes differ %v %v", a.LevelOrder(), b.LevelOrder())
	}
	if a.Size() != 5 || b.Size() != 5 {
		t.Errorf("tree size is %d %d, want 5", a.Size(), b.Size())
	}
}

func TestBSTree_Remove(t *testing.T) {
	tree, content := randomTree(t)
	for i := 0; i < tAddValRange; i += 1 + rg.Intn(3) {
		_, in := content[i]
		if b := tree.Remove(i); b != in {
			t.Errorf("failed to delete key %v", i)
		}
		if tree.Remove(i) {
			t.Errorf("can delete a second time key %v", i)
		}
		delete(content, i)
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	if !slices.Equal(tree.Values(), sortedKeys(content)) {
		t.Error("wrong traversal after removals")
	}
	if tree.Corrupt() {
		t.Error("tree is corrupt")
	}
}

func TestBSTree_RemoveAbsent(t *testing.T) {
	tree, content := randomTree(t)
	before := tree.Values()
	for _i := 0; _i < 100; _i++ {
		k := tAddValRange + rg.Intn(tAddValRange)
		if tree.Remove(k) {
			t.Errorf("removed non existent key %v", k)
		}
	}
	if !slices.Equal(tree.Values(), before) || int(tree.Size()) != len(content) {
		t.Error("removing absent keys changed the tree")
	}
}

func TestBSTree_MinMax(t *testing.T) {
	tree, _ := randomTree(t)
	s := tree.Values()
	if m, err := tree.Minimum(); err != nil || m != s[0] {
		t.Errorf("wrong minimum %d %v, want %d", m, err, s[0])
	}
	if m, err := tree.Maximum(); err != nil || m != s[len(s)-1] {
		t.Errorf("wrong maximum %d %v, want %d", m, err, s[len(s)-1])
	}
}

func TestBSTree_PreSucc(t *testing.T) {
	content := make([]int, 0, 200)
	tree := NewOrdered[int]()
	for _, i := range rg.Perm(200) {
		tree.Insert(i * 2)
	}
	for i := 0; i < 200; i++ {
		content = append(content, i*2)
	}
	for i := 1; i < len(content)-1; i++ {
		if a, ok := tree.Predecessor(content[i]); !ok || a != content[i-1] {
			t.Fatalf("wrong predecessor %d %d", a, content[i-1])
		}
		if a, ok := tree.Successor(content[i]); !ok || a != content[i+1] {
			t.Fatalf("wrong successor %d %d", a, content[i+1])
		}
		if a, ok := tree.Predecessor(content[i] + 1); !ok || a != content[i] {
			t.Fatalf("wrong predecessor %d %d", a, content[i])
		}
		if a, ok := tree.Successor(content[i] - 1); !ok || a != content[i] {
			t.Fatalf("wrong successor %d %d", a, content[i])
		}
	}
	if _, ok := tree.Predecessor(content[0]); ok {
		t.Fatal("shouldn't have predecessor")
	}
	if _, ok := tree.Successor(content[len(content)-1]); ok {
		t.Fatal("shouldn't have successor")
	}
}

func TestBSTree_InOrder(t *testing.T) {
	tree, content := randomTree(t)
	for _i := 0; _i < 10; _i++ {
		var s []int
		tree.Range(func(v int) bool {
			s = append(s, v)
			return rg.Intn(int(tree.Size()/2)) != 0
		})
		for _, v := range s {
			if _, in := content[v]; !in {
				t.Errorf("sorted has non existent key %v", v)
			}
		}
		if !slices.IsSorted(s) {
			t.Errorf("sorted is not sorted")
		}
	}
	// two iterators interleaved over the same tree.
	f, g := tree.InOrder(), tree.InOrder()
	want := sortedKeys(content)
	for i := range want {
		a, ok1 := f()
		b, ok2 := g()
		if !ok1 || !ok2 || a != want[i] || b != want[i] {
			t.Fatalf("wrong value at index %d", i)
		}
	}
	if _, ok := f(); ok {
		t.Error("iterator is not exhausted")
	}
	if _, ok := f(); ok {
		t.Error("iterator turned valid after exhaustion")
	}
	if tree.Corrupt() {
		t.Error("iteration corrupted the tree")
	}
}

func TestBSTree_Degenerate(t *testing.T) {
	tree := NewOrdered[int]()
	for i := 0; i < 500; i++ {
		tree.Insert(i)
	}
	if tree.Height() != 500 {
		t.Errorf("height is %d, want %d", tree.Height(), 500)
	}
	for i := 0; i < 500; i += 2 {
		tree.Remove(i)
	}
	if tree.Size() != 250 || tree.Corrupt() {
		t.Errorf("tree size is %d, want %d", tree.Size(), 250)
	}
}

func TestBSTree_Clear(t *testing.T) {
	tree, _ := randomTree(t)
	c := tree.Clone()
	tree.Clear()
	if !tree.Empty() || tree.Size() != 0 || len(tree.Values()) != 0 {
		t.Error("tree is not empty after clear")
	}
	if c.Empty() || c.Corrupt() {
		t.Error("clearing a tree changed its clone")
	}
	tree.Insert(3)
	if s := tree.Values(); !slices.Equal(s, []int{3}) {
		t.Errorf("wrong traversal after reuse %v", s)
	}
}

func TestBSTree_Clone(t *testing.T) {
	tree, content := randomTree(t)
	want := tree.Values()
	c := tree.Clone()
	if !slices.Equal(c.Values(), want) || c.Size() != tree.Size() {
		t.Fatal("clone differs from the tree")
	}
	for k := range content {
		if rg.Intn(2) == 0 {
			c.Remove(k)
		}
	}
	for _i := 0; _i < 100; _i++ {
		c.Insert(tAddValRange + rg.Intn(tAddValRange))
	}
	if !slices.Equal(tree.Values(), want) {
		t.Error("mutating the clone changed the tree")
	}
	if tree.Corrupt() || c.Corrupt() {
		t.Error("tree is corrupt")
	}
}

func TestBSTree_Move(t *testing.T) {
	tree, _ := randomTree(t)
	want := tree.Values()
	m := tree.Move()
	if !tree.Empty() || tree.Size() != 0 {
		t.Error("moved from tree is not empty")
	}
	if !slices.Equal(m.Values(), want) {
		t.Error("moved to tree differs")
	}
	tree.Insert(1)
	if m.Corrupt() || tree.Corrupt() {
		t.Error("tree is corrupt")
	}
}

func TestBSTree_Assign(t *testing.T) {
	less := func(a, b int) bool { return a < b }
	src := From(less, 5, 3, 8)
	dst := From(less, 1, 2)
	dst.Assign(src)
	if !slices.Equal(dst.Values(), []int{3, 5, 8}) {
		t.Errorf("wrong traversal after assign %v", dst.Values())
	}
	dst.Insert(9)
	if src.Has(9) {
		t.Error("assigned tree shares nodes with its source")
	}
	dst.Assign(dst)
	if !slices.Equal(dst.Values(), []int{3, 5, 8, 9}) {
		t.Errorf("self assign changed the tree %v", dst.Values())
	}

	dst.AssignMove(src)
	if !slices.Equal(dst.Values(), []int{3, 5, 8}) || !src.Empty() {
		t.Errorf("wrong move assign %v %v", dst.Values(), src.Values())
	}
	dst.AssignMove(dst)
	if dst.Size() != 3 {
		t.Error("self move changed the tree")
	}

	a, b := From(less, 1), From(less, 2, 3)
	a.Swap(b)
	if !slices.Equal(a.Values(), []int{2, 3}) || !slices.Equal(b.Values(), []int{1}) {
		t.Error("wrong swap")
	}
}

func TestBSTree_Print(t *testing.T) {
	var buf bytes.Buffer
	tree := NewOrdered[string]()
	if err := tree.Print(&buf); err != nil || buf.String() != "Empty tree\n" {
		t.Errorf("wrong empty dump %q %v", buf.String(), err)
	}
	buf.Reset()
	for _, s := range []string{"pear", "apple", "fig"} {
		tree.Insert(s)
	}
	if err := tree.Print(&buf); err != nil || buf.String() != "apple\nfig\npear\n" {
		t.Errorf("wrong dump %q %v", buf.String(), err)
	}
}

type point struct{ x, y int }

func TestBSTree_Custom(t *testing.T) {
	tree := New(func(a, b point) bool { return a.x < b.x || (a.x == b.x && a.y < b.y) })
	tree.Insert(point{1, 2})
	tree.Insert(point{1, 1})
	tree.Insert(point{0, 5})
	if tree.Insert(point{1, 1}) {
		t.Error("inserted duplicate point")
	}
	if m, _ := tree.Minimum(); m != (point{0, 5}) {
		t.Errorf("wrong minimum %v", m)
	}
	if m, _ := tree.Maximum(); m != (point{1, 2}) {
		t.Errorf("wrong maximum %v", m)
	}
}

func TestLocked_Concurrent(t *testing.T) {
	tree, content := randomTree(t)
	l := NewLocked(tree)
	if !tree.Empty() {
		t.Error("locked did not take over the tree")
	}
	keys := sortedKeys(content)
	wg := sync.WaitGroup{}
	for g := 0; g < 4; g++ {
		wg.Add(2)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				l.Insert(tAddValRange + base*1000 + i)
			}
		}(g)
		go func() {
			defer wg.Done()
			for _, k := range keys {
				if !l.Has(k) {
					t.Errorf("tree does not have key %v", k)
					return
				}
			}
		}()
	}
	wg.Wait()
	if int(l.Size()) != len(content)+800 {
		t.Errorf("tree size is %d, want %d", l.Size(), len(content)+800)
	}
	if s := l.Values(); !slices.IsSorted(s) {
		t.Error("sorted is not sorted")
	}
	if c := l.Clone(); c.Corrupt() {
		t.Error("tree is corrupt")
	}
	l.Assign(From(func(a, b int) bool { return a < b }, 1))
	if m, err := l.Maximum(); err != nil || m != 1 {
		t.Errorf("wrong maximum %d %v", m, err)
	}
	l.Remove(1)
	if _, err := l.Minimum(); err == nil {
		t.Error("minimum of empty tree succeeded")
	}
	l.Clear()
}
