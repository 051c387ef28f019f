// File: class.go
// Role: Class enum and the ClassOf classifier (spec §3's classification
// table).
package label

// Class is the coarse classification of a Label used as a secondary
// index key. It carries no information beyond what's needed to bucket
// entities for the (out-of-scope) matcher.
type Class int

// Class values, in the order spec §3 lists them.
const (
	ClassEmpty Class = iota
	ClassInt
	ClassString
	ClassAtomicVar
	ClassList2
	ClassList3
	ClassList4
	ClassList5
	ClassListVar
)

// String renders c using the names spec §3 uses.
func (c Class) String() string {
	switch c {
	case ClassEmpty:
		return "empty"
	case ClassInt:
		return "int"
	case ClassString:
		return "string"
	case ClassAtomicVar:
		return "atomic_var"
	case ClassList2:
		return "list2"
	case ClassList3:
		return "list3"
	case ClassList4:
		return "list4"
	case ClassList5:
		return "list5"
	case ClassListVar:
		return "list_var"
	default:
		return "class(?)"
	}
}

// ClassOf classifies l per spec §3:
//
//   - a list-length variable anywhere in l.List ⇒ ClassListVar,
//     regardless of length;
//   - empty list ⇒ ClassEmpty;
//   - length 1 ⇒ classified by the single atom's kind (integer or
//     negation ⇒ ClassInt; char, string, or concatenation ⇒ ClassString;
//     variable ⇒ ClassAtomicVar);
//   - length 2..5 ⇒ ClassList2..ClassList5;
//   - length > 5 ⇒ ErrLabelTooLong.
//
// Complexity: O(len(l.List)).
func ClassOf(l Label) (Class, error) {
	for _, a := range l.List {
		if v, ok := a.(VarAtom); ok && v.IsListVar {
			return ClassListVar, nil
		}
	}

	switch n := len(l.List); {
	case n == 0:
		return ClassEmpty, nil
	case n == 1:
		return atomKind(l.List[0]), nil
	case n <= 5:
		return Class(ClassList2 + Class(n-2)), nil
	default:
		return 0, ErrLabelTooLong
	}
}

// atomKind resolves the length-1 classification rule: every atom kind
// that evaluates to an integer classifies ClassInt, every kind that
// evaluates to a string classifies ClassString, and a bare variable
// reference classifies ClassAtomicVar.
func atomKind(a Atom) Class {
	switch v := a.(type) {
	case IntAtom, NegAtom, IndegAtom, OutdegAtom, LlengthAtom, SlengthAtom:
		return ClassInt
	case CharAtom, StringAtom:
		return ClassString
	case VarAtom:
		return ClassAtomicVar
	case BinAtom:
		if v.Op == Concat {
			return ClassString
		}
		return ClassInt
	default:
		// Unreachable for the closed Atom sum defined in this package.
		return ClassAtomicVar
	}
}
