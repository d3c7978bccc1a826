// Completion: 100% - Type descriptors complete
package mir

import (
	"strings"
)

// Type is a type descriptor attached to some Mir nodes.
// Descriptors are carried through evaluation untouched.
type Type interface {
	String() string
	typeNode()
}

type PrimitiveKind int

const (
	KindI8 PrimitiveKind = iota
	KindI16
	KindI32
	KindI64
	KindIsz
	KindU8
	KindU16
	KindU32
	KindU64
	KindUsz
	KindF32
	KindF64
	KindChar
	KindBool
	KindUnit
	KindPointer
)

func (k PrimitiveKind) String() string {
	switch k {
	case KindI8:
		return "i8"
	case KindI16:
		return "i16"
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindIsz:
		return "isz"
	case KindU8:
		return "u8"
	case KindU16:
		return "u16"
	case KindU32:
		return "u32"
	case KindU64:
		return "u64"
	case KindUsz:
		return "usz"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	case KindChar:
		return "char"
	case KindBool:
		return "bool"
	case KindUnit:
		return "unit"
	case KindPointer:
		return "ptr"
	default:
		return "unknown"
	}
}

// PrimitiveType is a machine-level scalar type
type PrimitiveType struct {
	Kind PrimitiveKind
}

func (p PrimitiveType) String() string { return p.Kind.String() }
func (p PrimitiveType) typeNode()      {}

// FunctionType describes a lambda or extern signature
type FunctionType struct {
	Params      []Type
	Return      Type
	CompileTime bool
}

func (f *FunctionType) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = typeString(p)
	}
	arrow := " -> "
	if f.CompileTime {
		arrow = " => "
	}
	return "fn(" + strings.Join(params, ", ") + ")" + arrow + typeString(f.Return)
}
func (f *FunctionType) typeNode() {}

type TupleType struct {
	Fields []Type
}

func (t *TupleType) String() string {
	fields := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		fields[i] = typeString(f)
	}
	return "{" + strings.Join(fields, ", ") + "}"
}
func (t *TupleType) typeNode() {}

func typeString(t Type) string {
	if t == nil {
		return "_"
	}
	return t.String()
}
