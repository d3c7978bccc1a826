// Completion: 100% - Mir node vocabulary complete
package mir

// Mir nodes
type Node interface {
	String() string
}

// DefinitionID identifies a variable binding. IDs are assigned upstream
// and are unique across a program.
type DefinitionID uint32

// Ast is any Mir expression. Every Atom is also an Ast.
type Ast interface {
	Node
	astNode()
}

// Atom is a leaf-level value form
type Atom interface {
	Ast
	atomNode()
}

// LiteralKind says how a Literal's raw Value is read
type LiteralKind int

const (
	LitInteger LiteralKind = iota
	LitFloat
	LitCString
	LitChar
	LitBool
	LitUnit
)

// Literal is an inert constant. Value holds the raw bits: integers as-is,
// floats as IEEE-754 bits, chars as the code point, bools as 0/1 and
// C strings as the index into the string table.
type Literal struct {
	Kind    LiteralKind
	Value   uint64
	IntKind PrimitiveKind // only meaningful for LitInteger
}

// Variable refers to a binding by its DefinitionID. Name is for printing only.
type Variable struct {
	ID   DefinitionID
	Name string
}

// Lambda is a closure. Params must carry distinct IDs.
type Lambda struct {
	Params      []*Variable
	Body        Ast
	CompileTime bool
	Type        *FunctionType
}

// Extern names a symbol defined outside the program
type Extern struct {
	Name string
	Type Type
}

// Effect marks an algebraic effect. The CPS pass removes all of them.
type Effect struct {
	ID   DefinitionID
	Name string
	Type Type
}

func (l *Literal) astNode()   {}
func (l *Literal) atomNode()  {}
func (v *Variable) astNode()  {}
func (v *Variable) atomNode() {}
func (l *Lambda) astNode()    {}
func (l *Lambda) atomNode()   {}
func (e *Extern) astNode()    {}
func (e *Extern) atomNode()   {}
func (e *Effect) astNode()    {}
func (e *Effect) atomNode()   {}

// FunctionCall applies Function to Args. CompileTime marks a call site that
// must be reduced before code generation.
type FunctionCall struct {
	Function    Atom
	Args        []Atom
	CompileTime bool
}

// Let binds Variable to the result of Expr within Body
type Let struct {
	Variable *Variable
	Expr     Ast
	Body     Ast
}

// If branches on a boolean atom
type If struct {
	Condition  Atom
	Then       Ast
	Otherwise  Ast
	ResultType Type
}

// Match selects one of Branches by walking DecisionTree
type Match struct {
	DecisionTree DecisionTree
	Branches     []Ast
	ResultType   Type
}

// Return leaves the enclosing function with Expression
type Return struct {
	Expression Atom
}

// Assignment stores RHS through the reference LHS
type Assignment struct {
	LHS Atom
	RHS Atom
}

// MemberAccess reads field Index of the tuple LHS
type MemberAccess struct {
	LHS   Atom
	Index uint32
	Type  Type
}

// Tuple builds an anonymous product value
type Tuple struct {
	Fields []Atom
}

// Builtin applies a primitive operation
type Builtin struct {
	Op   BuiltinOp
	Args []Atom
	Type Type // nil unless Op.Typed()
}

// Handle installs an effect handler. The CPS pass removes all of them.
type Handle struct {
	Effects    []*Effect
	Expression Ast
	Handler    Ast
}

func (f *FunctionCall) astNode() {}
func (l *Let) astNode()          {}
func (i *If) astNode()           {}
func (m *Match) astNode()        {}
func (r *Return) astNode()       {}
func (a *Assignment) astNode()   {}
func (m *MemberAccess) astNode() {}
func (t *Tuple) astNode()        {}
func (b *Builtin) astNode()      {}
func (h *Handle) astNode()       {}

// DecisionTree is a compiled pattern match
type DecisionTree interface {
	Node
	decisionTreeNode()
}

// DecisionLeaf selects the Match branch at index Branch
type DecisionLeaf struct {
	Branch int
}

// DecisionLet binds a value extracted from the scrutinee, e.g. a tuple field
type DecisionLet struct {
	Variable *Variable
	Expr     Ast
	Body     DecisionTree
}

// SwitchCase continues with Tree when the discriminant equals Tag
type SwitchCase struct {
	Tag  uint32
	Tree DecisionTree
}

// DecisionSwitch branches on an integer tag. Else may be nil when Cases is
// exhaustive.
type DecisionSwitch struct {
	Discriminant Atom
	Cases        []SwitchCase
	Else         DecisionTree
}

func (d *DecisionLeaf) decisionTreeNode()   {}
func (d *DecisionLet) decisionTreeNode()    {}
func (d *DecisionSwitch) decisionTreeNode() {}

// Function is a top-level definition
type Function struct {
	ID   DefinitionID
	Name string
	Body Ast
}

// Program is a whole lowered program keyed by function identity
type Program struct {
	Functions map[DefinitionID]*Function
}

// NewProgram builds a program from functions keyed by their ID
func NewProgram(functions ...*Function) *Program {
	p := &Program{Functions: make(map[DefinitionID]*Function, len(functions))}
	for _, f := range functions {
		p.Functions[f.ID] = f
	}
	return p
}

// Convenience constructors

// Int builds an i32 integer literal
func Int(value int64) *Literal {
	return &Literal{Kind: LitInteger, Value: uint64(value), IntKind: KindI32}
}

// Bool builds a boolean literal
func Bool(value bool) *Literal {
	var v uint64
	if value {
		v = 1
	}
	return &Literal{Kind: LitBool, Value: v}
}

// Unit builds the unit literal
func Unit() *Literal {
	return &Literal{Kind: LitUnit}
}

// Var builds a variable reference
func Var(id DefinitionID, name string) *Variable {
	return &Variable{ID: id, Name: name}
}

// Lam builds a runtime lambda
func Lam(params []*Variable, body Ast) *Lambda {
	return &Lambda{Params: params, Body: body}
}

// CTLam builds a compile-time lambda
func CTLam(params []*Variable, body Ast) *Lambda {
	return &Lambda{Params: params, Body: body, CompileTime: true}
}

// Call builds a runtime call site
func Call(function Atom, args ...Atom) *FunctionCall {
	return &FunctionCall{Function: function, Args: args}
}

// CTCall builds a call site that demands compile-time evaluation
func CTCall(function Atom, args ...Atom) *FunctionCall {
	return &FunctionCall{Function: function, Args: args, CompileTime: true}
}

// Op builds a builtin application
func Op(op BuiltinOp, typ Type, args ...Atom) *Builtin {
	return &Builtin{Op: op, Args: args, Type: typ}
}
