package typeinfo

import "testing"

func TestIsZeroSize(t *testing.T) {
	if !IsZeroSize[struct{}]() {
		t.Error("struct{} should be zero-size")
	}
	if !IsZeroSize[[0]int]() {
		t.Error("[0]int should be zero-size")
	}
	if IsZeroSize[int]() {
		t.Error("int should not be zero-size")
	}
	if IsZeroSize[struct{ a byte }]() {
		t.Error("struct with a field should not be zero-size")
	}
}

func TestHasPointers(t *testing.T) {
	type flat struct {
		A int32
		B [4]float64
	}
	type linked struct {
		Value int
		Next  *linked
	}

	cases := []struct {
		name string
		got  bool
		want bool
	}{
		{"int", HasPointers[int](), false},
		{"flat struct", HasPointers[flat](), false},
		{"array of flat", HasPointers[[8]flat](), false},
		{"empty array of pointers", HasPointers[[0]*int](), false},
		{"pointer", HasPointers[*int](), true},
		{"string", HasPointers[string](), true},
		{"slice", HasPointers[[]byte](), true},
		{"map", HasPointers[map[int]int](), true},
		{"interface", HasPointers[any](), true},
		{"linked struct", HasPointers[linked](), true},
		{"array of strings", HasPointers[[2]string](), true},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s: HasPointers=%v, want %v", tc.name, tc.got, tc.want)
		}
	}
}

func TestSizeAndAlign(t *testing.T) {
	if SizeOf[int64]() != 8 {
		t.Errorf("SizeOf[int64]=%d, want 8", SizeOf[int64]())
	}
	if AlignOf[byte]() != 1 {
		t.Errorf("AlignOf[byte]=%d, want 1", AlignOf[byte]())
	}
}
