package util

import "testing"

func TestReverseG(t *testing.T) {
	arr := []int{1, 2, 3, 4, 5}
	rev := ReverseG(arr)

	if len(rev) != len(arr) {
		t.Fatalf("expected len %d, got %d", len(arr), len(rev))
	}
	for i, v := range rev {
		if v != arr[len(arr)-1-i] {
			t.Errorf("index %d: expected %d, got %d", i, arr[len(arr)-1-i], v)
		}
	}
	// original must be untouched
	if arr[0] != 1 || arr[4] != 5 {
		t.Errorf("ReverseG mutated its input")
	}
}
