package label

import (
	"errors"
	"testing"
)

func TestClassOfEmpty(t *testing.T) {
	c, err := ClassOf(Empty())
	if err != nil {
		t.Fatalf("ClassOf(empty): %v", err)
	}
	if c != ClassEmpty {
		t.Fatalf("ClassOf(empty) = %v, want ClassEmpty", c)
	}
}

func TestClassOfLengthOne(t *testing.T) {
	cases := []struct {
		name string
		atom Atom
		want Class
	}{
		{"int constant", IntAtom(42), ClassInt},
		{"negation", NegAtom{Operand: IntAtom(1)}, ClassInt},
		{"indeg", IndegAtom{NodeID: "x"}, ClassInt},
		{"outdeg", OutdegAtom{NodeID: "x"}, ClassInt},
		{"llength", LlengthAtom{ListVar: "xs"}, ClassInt},
		{"slength", SlengthAtom{Operand: StringAtom("s")}, ClassInt},
		{"arithmetic bin", BinAtom{Op: Add, Left: IntAtom(1), Right: IntAtom(2)}, ClassInt},
		{"char constant", CharAtom('a'), ClassString},
		{"string constant", StringAtom("hi"), ClassString},
		{"concat bin", BinAtom{Op: Concat, Left: StringAtom("a"), Right: StringAtom("b")}, ClassString},
		{"variable", VarAtom{Name: "x"}, ClassAtomicVar},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ClassOf(Label{List: []Atom{tc.atom}})
			if err != nil {
				t.Fatalf("ClassOf: %v", err)
			}
			if got != tc.want {
				t.Fatalf("ClassOf(%v) = %v, want %v", tc.atom, got, tc.want)
			}
		})
	}
}

func TestClassOfListLengths(t *testing.T) {
	for n, want := range map[int]Class{2: ClassList2, 3: ClassList3, 4: ClassList4, 5: ClassList5} {
		list := make([]Atom, n)
		for i := range list {
			list[i] = IntAtom(i)
		}
		got, err := ClassOf(Label{List: list})
		if err != nil {
			t.Fatalf("ClassOf(len %d): %v", n, err)
		}
		if got != want {
			t.Fatalf("ClassOf(len %d) = %v, want %v", n, got, want)
		}
	}
}

func TestClassOfTooLong(t *testing.T) {
	list := make([]Atom, 6)
	for i := range list {
		list[i] = IntAtom(i)
	}
	_, err := ClassOf(Label{List: list})
	if !errors.Is(err, ErrLabelTooLong) {
		t.Fatalf("ClassOf(len 6) = %v, want ErrLabelTooLong", err)
	}
}

func TestClassOfListVarOverridesLength(t *testing.T) {
	list := []Atom{IntAtom(1), VarAtom{Name: "xs", IsListVar: true}, IntAtom(2)}
	got, err := ClassOf(Label{List: list})
	if err != nil {
		t.Fatalf("ClassOf: %v", err)
	}
	if got != ClassListVar {
		t.Fatalf("ClassOf(with list var) = %v, want ClassListVar", got)
	}
}

func TestClassStringNames(t *testing.T) {
	want := map[Class]string{
		ClassEmpty:     "empty",
		ClassInt:       "int",
		ClassString:    "string",
		ClassAtomicVar: "atomic_var",
		ClassList2:     "list2",
		ClassList5:     "list5",
		ClassListVar:   "list_var",
	}
	for c, s := range want {
		if c.String() != s {
			t.Fatalf("Class(%d).String() = %q, want %q", c, c.String(), s)
		}
	}
}
