// Completion: 100% - Builtin catalog complete
package mir

import "fmt"

// BuiltinOp is one of the fixed catalog of primitive operations.
// Builtins are never executed by this pass, only their operands are reduced.
type BuiltinOp int

const (
	AddInt BuiltinOp = iota
	AddFloat
	SubInt
	SubFloat
	MulInt
	MulFloat
	DivSigned
	DivUnsigned
	DivFloat
	ModSigned
	ModUnsigned
	ModFloat
	LessSigned
	LessUnsigned
	LessFloat
	EqInt
	EqFloat
	EqChar
	EqBool
	SignExtend
	ZeroExtend
	SignedToFloat
	UnsignedToFloat
	FloatToSigned
	FloatToUnsigned
	FloatPromote
	FloatDemote
	BitwiseAnd
	BitwiseOr
	BitwiseXor
	BitwiseNot
	StackAlloc
	Truncate
	Deref
	Transmute
	Offset

	numBuiltinOps
)

// builtinShape is the operand layout of a builtin
type builtinShape struct {
	name     string
	operands int
	typed    bool // carries a type descriptor
}

var builtinShapes = [numBuiltinOps]builtinShape{
	AddInt:          {"AddInt", 2, false},
	AddFloat:        {"AddFloat", 2, false},
	SubInt:          {"SubInt", 2, false},
	SubFloat:        {"SubFloat", 2, false},
	MulInt:          {"MulInt", 2, false},
	MulFloat:        {"MulFloat", 2, false},
	DivSigned:       {"DivSigned", 2, false},
	DivUnsigned:     {"DivUnsigned", 2, false},
	DivFloat:        {"DivFloat", 2, false},
	ModSigned:       {"ModSigned", 2, false},
	ModUnsigned:     {"ModUnsigned", 2, false},
	ModFloat:        {"ModFloat", 2, false},
	LessSigned:      {"LessSigned", 2, false},
	LessUnsigned:    {"LessUnsigned", 2, false},
	LessFloat:       {"LessFloat", 2, false},
	EqInt:           {"EqInt", 2, false},
	EqFloat:         {"EqFloat", 2, false},
	EqChar:          {"EqChar", 2, false},
	EqBool:          {"EqBool", 2, false},
	SignExtend:      {"SignExtend", 1, true},
	ZeroExtend:      {"ZeroExtend", 1, true},
	SignedToFloat:   {"SignedToFloat", 1, true},
	UnsignedToFloat: {"UnsignedToFloat", 1, true},
	FloatToSigned:   {"FloatToSigned", 1, true},
	FloatToUnsigned: {"FloatToUnsigned", 1, true},
	FloatPromote:    {"FloatPromote", 1, true},
	FloatDemote:     {"FloatDemote", 1, true},
	BitwiseAnd:      {"BitwiseAnd", 2, false},
	BitwiseOr:       {"BitwiseOr", 2, false},
	BitwiseXor:      {"BitwiseXor", 2, false},
	BitwiseNot:      {"BitwiseNot", 1, false},
	StackAlloc:      {"StackAlloc", 1, false},
	Truncate:        {"Truncate", 1, true},
	Deref:           {"Deref", 1, true},
	Transmute:       {"Transmute", 1, true},
	Offset:          {"Offset", 2, true},
}

// AllBuiltinOps lists the whole catalog in declaration order
func AllBuiltinOps() []BuiltinOp {
	ops := make([]BuiltinOp, numBuiltinOps)
	for i := range ops {
		ops[i] = BuiltinOp(i)
	}
	return ops
}

func (op BuiltinOp) Valid() bool {
	return op >= 0 && op < numBuiltinOps
}

func (op BuiltinOp) String() string {
	if !op.Valid() {
		return fmt.Sprintf("Builtin(%d)", int(op))
	}
	return builtinShapes[op].name
}

// Operands returns how many atom operands the operation takes (1 or 2)
func (op BuiltinOp) Operands() int {
	if !op.Valid() {
		return 0
	}
	return builtinShapes[op].operands
}

// Typed reports whether the operation carries a type descriptor
func (op BuiltinOp) Typed() bool {
	return op.Valid() && builtinShapes[op].typed
}

// checkShape reports why b does not fit its operation's shape, or "" if it does
func (b *Builtin) checkShape() string {
	if !b.Op.Valid() {
		return fmt.Sprintf("unknown builtin operation %d", int(b.Op))
	}
	if len(b.Args) != b.Op.Operands() {
		return fmt.Sprintf("%s takes %d operand(s), got %d", b.Op, b.Op.Operands(), len(b.Args))
	}
	if b.Op.Typed() && b.Type == nil {
		return fmt.Sprintf("%s requires a type descriptor", b.Op)
	}
	return ""
}
