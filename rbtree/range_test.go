package rbtree

import "reflect"
import "testing"

func rangekeys(t *RBTree, low, high interface{}, incl string) []int {
	keys := make([]int, 0)
	t.Range(low, high, incl, func(item interface{}) bool {
		keys = append(keys, item.(int))
		return true
	})
	return keys
}

func TestWalkStop(t *testing.T) {
	tree := NewRBTree("walkstop", intcmp, nil, nil)
	defer tree.Destroy()

	for key := 1; key <= 100; key++ {
		if err := tree.Insert(key); err != nil {
			t.Fatalf("Insert(%v): %v", key, err)
		}
	}
	keys := make([]int, 0)
	tree.Walk(func(item interface{}) bool {
		keys = append(keys, item.(int))
		return len(keys) < 10
	})
	if len(keys) != 10 {
		t.Errorf("unexpected %v", len(keys))
	}
	for i, key := range keys {
		if key != i+1 {
			t.Errorf("unexpected %v at off %v", key, i)
		}
	}
}

func TestWalkEmpty(t *testing.T) {
	tree := NewRBTree("walkempty", intcmp, nil, nil)
	defer tree.Destroy()

	count := 0
	tree.Walk(func(item interface{}) bool {
		count++
		return true
	})
	if count != 0 {
		t.Errorf("unexpected %v", count)
	}
}

func TestRangeIncl(t *testing.T) {
	tree := NewRBTree("rangeincl", intcmp, nil, nil)
	defer tree.Destroy()

	for key := 10; key <= 100; key += 10 {
		if err := tree.Insert(key); err != nil {
			t.Fatalf("Insert(%v): %v", key, err)
		}
	}

	testcases := []struct {
		incl string
		ref  []int
	}{
		{"both", []int{30, 40, 50, 60}},
		{"low", []int{30, 40, 50}},
		{"high", []int{40, 50, 60}},
		{"none", []int{40, 50}},
	}
	for _, tcase := range testcases {
		keys := rangekeys(tree, 30, 60, tcase.incl)
		if reflect.DeepEqual(keys, tcase.ref) == false {
			t.Errorf("incl %q unexpected %v, expected %v", tcase.incl, keys, tcase.ref)
		}
	}

	// bounds need not be indexed keys.
	keys := rangekeys(tree, 25, 65, "both")
	if ref := []int{30, 40, 50, 60}; reflect.DeepEqual(keys, ref) == false {
		t.Errorf("unexpected %v, expected %v", keys, ref)
	}
}

func TestRangeOpenBounds(t *testing.T) {
	tree := NewRBTree("rangeopen", intcmp, nil, nil)
	defer tree.Destroy()

	for key := 1; key <= 5; key++ {
		if err := tree.Insert(key); err != nil {
			t.Fatalf("Insert(%v): %v", key, err)
		}
	}

	if keys := rangekeys(tree, nil, nil, "both"); len(keys) != 5 {
		t.Errorf("unexpected %v", keys)
	}
	keys := rangekeys(tree, 3, nil, "both")
	if ref := []int{3, 4, 5}; reflect.DeepEqual(keys, ref) == false {
		t.Errorf("unexpected %v, expected %v", keys, ref)
	}
	keys = rangekeys(tree, nil, 3, "none")
	if ref := []int{1, 2}; reflect.DeepEqual(keys, ref) == false {
		t.Errorf("unexpected %v, expected %v", keys, ref)
	}
}

func TestRangeStop(t *testing.T) {
	tree := NewRBTree("rangestop", intcmp, nil, nil)
	defer tree.Destroy()

	for key := 1; key <= 100; key++ {
		if err := tree.Insert(key); err != nil {
			t.Fatalf("Insert(%v): %v", key, err)
		}
	}
	keys := make([]int, 0)
	tree.Range(10, 90, "both", func(item interface{}) bool {
		keys = append(keys, item.(int))
		return len(keys) < 5
	})
	if ref := []int{10, 11, 12, 13, 14}; reflect.DeepEqual(keys, ref) == false {
		t.Errorf("unexpected %v, expected %v", keys, ref)
	}
}
