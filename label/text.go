// File: text.go
// Role: textual forms from spec §6 (atom form, mark keywords, label
// list form). package serialize builds the full node/edge entry syntax
// ("# <mark>" suffix, "(R)"/"(B)" flags) on top of these.
package label

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders m as the GP2 mark keyword. None renders as the empty
// string: the textual grammar omits "# none" entirely.
func (m Mark) String() string {
	switch m {
	case None:
		return ""
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Grey:
		return "grey"
	case Dashed:
		return "dashed"
	case Any:
		return "any"
	default:
		return "mark(?)"
	}
}

// String renders a in the atom textual form of spec §6.
func (a IntAtom) String() string { return strconv.FormatInt(int64(a), 10) }

// String renders a as a single-quoted character literal.
func (a CharAtom) String() string { return "'" + string(rune(a)) + "'" }

// String renders a as a double-quoted string literal.
func (a StringAtom) String() string { return strconv.Quote(string(a)) }

// String renders a as its variable name.
func (a VarAtom) String() string { return a.Name }

// String renders a as indeg(<id>).
func (a IndegAtom) String() string { return fmt.Sprintf("indeg(%s)", a.NodeID) }

// String renders a as outdeg(<id>).
func (a OutdegAtom) String() string { return fmt.Sprintf("outdeg(%s)", a.NodeID) }

// String renders a as llength(<list>).
func (a LlengthAtom) String() string { return fmt.Sprintf("llength(%s)", a.ListVar) }

// String renders a as slength(<atom>).
func (a SlengthAtom) String() string { return fmt.Sprintf("slength(%s)", a.Operand) }

// String renders a as "- <atom>".
func (a NegAtom) String() string { return fmt.Sprintf("- %s", a.Operand) }

// String renders a as "(<a> <op> <b>)".
func (a BinAtom) String() string {
	return fmt.Sprintf("(%s %c %s)", a.Left, byte(a.Op), a.Right)
}

// String renders l's atom list per spec §6: "empty" for the empty
// list, otherwise its atoms joined by " : ". The mark suffix is not
// included here — see package serialize for the full node/edge entry
// syntax.
func (l Label) String() string {
	if len(l.List) == 0 {
		return "empty"
	}
	parts := make([]string, len(l.List))
	for i, a := range l.List {
		parts[i] = a.String()
	}
	return strings.Join(parts, " : ")
}
