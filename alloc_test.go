package dynarray

import (
	"math"
	"testing"
	"unsafe"

	"github.com/cockroachdb/errors"
)

type testStruct struct {
	a int64
	b int32
	c int16
	d int8
}

func TestAllocate(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantLen int
		wantErr error
	}{
		{"zero", 0, 0, nil},
		{"small", 16, 16, nil},
		{"negative", -1, 0, ErrNegativeLength},
		{"too large", math.MaxInt, 0, ErrAllocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := allocate[testStruct](tt.n)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("allocate(%d) error = %v, want %v", tt.n, err, tt.wantErr)
				}
				if buf != nil {
					t.Errorf("allocate(%d) returned a buffer on failure", tt.n)
				}
				return
			}
			if err != nil {
				t.Fatalf("allocate(%d) error: %v", tt.n, err)
			}
			if len(buf) != tt.wantLen {
				t.Errorf("allocate(%d) length = %d, want %d", tt.n, len(buf), tt.wantLen)
			}
			if tt.n == 0 && buf != nil {
				t.Errorf("allocate(0) = %v, want nil", buf)
			}
			for i, v := range buf {
				if v != (testStruct{}) {
					t.Errorf("allocate(%d)[%d] not zeroed: %+v", tt.n, i, v)
				}
			}
		})
	}
}

func TestAllocateZeroSizedElements(t *testing.T) {
	// Zero-sized elements need no memory, so huge lengths succeed.
	buf, err := allocate[struct{}](math.MaxInt)
	if err != nil {
		t.Fatalf("allocate[struct{}] error: %v", err)
	}
	if len(buf) != math.MaxInt {
		t.Errorf("allocate[struct{}] length = %d, want %d", len(buf), math.MaxInt)
	}
}

func TestCopyElem(t *testing.T) {
	v, err := copyElem(42)
	if err != nil || v != 42 {
		t.Errorf("copyElem(42) = %d, %v; want 42, nil", v, err)
	}

	b := &cloneBudget{left: 1}
	c, err := copyElem(tracked{v: 7, b: b})
	if err != nil || c.v != 7 {
		t.Errorf("copyElem(tracked) = %+v, %v; want v=7, nil", c, err)
	}
	if b.left != 0 {
		t.Errorf("Clone was not used: budget left = %d", b.left)
	}

	if _, err := copyElem(tracked{v: 8, b: b}); !errors.Is(err, errCloneFailed) {
		t.Errorf("copyElem with exhausted budget error = %v, want %v", err, errCloneFailed)
	}
}

func TestCloneIntoAndFill(t *testing.T) {
	b := &cloneBudget{left: 2}
	dst := make([]tracked, 4)
	src := []tracked{{1, b}, {2, b}, {3, b}}

	err := cloneInto(dst, 1, src)
	if !errors.Is(err, errCloneFailed) {
		t.Fatalf("cloneInto error = %v, want %v", err, errCloneFailed)
	}
	if got := err.Error(); got != "copying element 3: clone failed" {
		t.Errorf("cloneInto error = %q", got)
	}
	if dst[1].v != 1 || dst[2].v != 2 || dst[3].v != 0 {
		t.Errorf("cloneInto wrote %+v", dst)
	}

	ints := make([]int, 3)
	if err := fill(ints, 0, 5); err != nil {
		t.Fatal(err)
	}
	for i, v := range ints {
		if v != 5 {
			t.Errorf("fill()[%d] = %d, want 5", i, v)
		}
	}
}

func TestGrownCap(t *testing.T) {
	tests := []struct {
		capacity, required, want int
	}{
		{0, 1, 1},
		{1, 2, 2},
		{2, 3, 4},
		{8, 9, 16},
		{8, 100, 100},
		{0, 5, 5},
	}
	for _, tt := range tests {
		if got := grownCap(tt.capacity, tt.required); got != tt.want {
			t.Errorf("grownCap(%d, %d) = %d, want %d", tt.capacity, tt.required, got, tt.want)
		}
	}
}

func TestElemSize(t *testing.T) {
	if got, want := elemSize[testStruct](), int(unsafe.Sizeof(testStruct{})); got != want {
		t.Errorf("elemSize[testStruct]() = %d, want %d", got, want)
	}
	if got := elemSize[struct{}](); got != 0 {
		t.Errorf("elemSize[struct{}]() = %d, want 0", got)
	}
}
