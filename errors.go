// Completion: 100% - Error handling complete, every invariant is named
package mir

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorLevel indicates the severity of an error
type ErrorLevel int

const (
	LevelWarning ErrorLevel = iota
	LevelError
	LevelFatal
)

func (l ErrorLevel) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal error"
	default:
		return "unknown"
	}
}

// ErrorCategory classifies the type of error
type ErrorCategory int

const (
	CategorySemantic ErrorCategory = iota
	CategoryInternal
)

func (c ErrorCategory) String() string {
	switch c {
	case CategorySemantic:
		return "semantic"
	case CategoryInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Invariant names the pipeline contract a diagnostic is about
type Invariant string

const (
	InvEffectAfterCPS    Invariant = "effect-after-cps"
	InvHandleAfterCPS    Invariant = "handle-after-cps"
	InvArityMismatch     Invariant = "arity-mismatch"
	InvNonCallable       Invariant = "non-callable"
	InvCompileTimeCallee Invariant = "compile-time-callee"
	InvBuiltinShape      Invariant = "builtin-arity"
	InvBranchIndex       Invariant = "branch-index"
	InvUnknownNode       Invariant = "unknown-node"
	InvInlineDepth       Invariant = "inline-depth"
	InvResidualCall      Invariant = "residual-call"
)

// Location is the function a diagnostic was raised in
type Location struct {
	Function DefinitionID
	Name     string
}

func (loc Location) String() string {
	if loc.Name == "" {
		return fmt.Sprintf("fn#%d", loc.Function)
	}
	return fmt.Sprintf("%s#%d", loc.Name, loc.Function)
}

// ErrorContext provides additional context for an error
type ErrorContext struct {
	Node     string // printed form of the offending node
	HelpText string
}

// CompilerError is a single diagnostic raised by the evaluation pass
type CompilerError struct {
	Level     ErrorLevel
	Category  ErrorCategory
	Invariant Invariant
	Message   string
	Location  Location
	Context   ErrorContext
}

// Error implements the error interface
func (e CompilerError) Error() string {
	return fmt.Sprintf("%s: %s [%s]", e.Location, e.Message, e.Invariant)
}

// Format returns a formatted diagnostic with the offending node and help text
func (e CompilerError) Format(useColor bool) string {
	var sb strings.Builder

	if useColor {
		sb.WriteString("\033[1;31m") // Bold red
	}
	sb.WriteString(e.Level.String())
	sb.WriteString(": ")
	if useColor {
		sb.WriteString("\033[0m")
	}
	sb.WriteString(e.Message)
	sb.WriteString("\n")

	if useColor {
		sb.WriteString("\033[1;34m") // Bold blue
	}
	sb.WriteString("  --> ")
	sb.WriteString(e.Location.String())
	if useColor {
		sb.WriteString("\033[0m")
	}
	sb.WriteString("\n")

	if e.Context.Node != "" {
		sb.WriteString("   | ")
		sb.WriteString(e.Context.Node)
		sb.WriteString("\n")
	}

	sb.WriteString("   = invariant: ")
	sb.WriteString(string(e.Invariant))
	sb.WriteString("\n")

	if e.Context.HelpText != "" {
		if useColor {
			sb.WriteString("\033[1;36m") // Bold cyan
		}
		sb.WriteString("   note: ")
		if useColor {
			sb.WriteString("\033[0m")
		}
		sb.WriteString(e.Context.HelpText)
		sb.WriteString("\n")
	}

	return sb.String()
}

// IsInternalError reports whether err carries a fatal internal diagnostic
func IsInternalError(err error) bool {
	var ce CompilerError
	return errors.As(err, &ce) && ce.Category == CategoryInternal
}

// ErrorCollector accumulates diagnostics so they can be reported together
type ErrorCollector struct {
	errors   []CompilerError
	warnings []CompilerError
}

func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{
		errors:   make([]CompilerError, 0),
		warnings: make([]CompilerError, 0),
	}
}

// AddError adds a diagnostic, sorted by level
func (ec *ErrorCollector) AddError(err CompilerError) {
	if err.Level == LevelFatal || err.Level == LevelError {
		ec.errors = append(ec.errors, err)
	} else {
		ec.warnings = append(ec.warnings, err)
	}
}

func (ec *ErrorCollector) AddWarning(warn CompilerError) {
	warn.Level = LevelWarning
	ec.warnings = append(ec.warnings, warn)
}

func (ec *ErrorCollector) HasErrors() bool {
	return len(ec.errors) > 0
}

func (ec *ErrorCollector) ErrorCount() int {
	return len(ec.errors)
}

func (ec *ErrorCollector) WarningCount() int {
	return len(ec.warnings)
}

func (ec *ErrorCollector) Warnings() []CompilerError {
	return ec.warnings
}

// Report formats all errors and warnings for display
func (ec *ErrorCollector) Report(useColor bool) string {
	var sb strings.Builder

	for i, err := range ec.errors {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(err.Format(useColor))
	}

	for i, warn := range ec.warnings {
		if i > 0 || len(ec.errors) > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(warn.Format(useColor))
	}

	if len(ec.errors) > 0 || len(ec.warnings) > 0 {
		sb.WriteString("\n")
		if len(ec.errors) > 0 {
			sb.WriteString(fmt.Sprintf("%d error(s)", len(ec.errors)))
		}
		if len(ec.warnings) > 0 {
			if len(ec.errors) > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(fmt.Sprintf("%d warning(s)", len(ec.warnings)))
		}
		sb.WriteString(" found\n")
	}

	return sb.String()
}

// Err folds the collected errors into a single error, or nil
func (ec *ErrorCollector) Err() error {
	if len(ec.errors) == 0 {
		return nil
	}
	errs := make([]error, len(ec.errors))
	for i, e := range ec.errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// Helper functions for creating the pass's diagnostics

const internalHelp = "This is an internal compiler error. Please report this bug."

func internalError(inv Invariant, loc Location, node Node, message string) CompilerError {
	var printed string
	if node != nil {
		printed = node.String()
	}
	return CompilerError{
		Level:     LevelFatal,
		Category:  CategoryInternal,
		Invariant: inv,
		Message:   message,
		Location:  loc,
		Context: ErrorContext{
			Node:     printed,
			HelpText: internalHelp,
		},
	}
}

func EffectAfterCPSError(loc Location, effect *Effect) CompilerError {
	return internalError(InvEffectAfterCPS, loc, effect,
		"effect node reached compile-time evaluation; the CPS conversion pass did not run or did not complete")
}

func HandleAfterCPSError(loc Location, handle *Handle) CompilerError {
	return internalError(InvHandleAfterCPS, loc, handle,
		"handle expression reached compile-time evaluation; the CPS conversion pass did not run or did not complete")
}

func ArityMismatchError(loc Location, call Node, params, args int) CompilerError {
	return internalError(InvArityMismatch, loc, call,
		fmt.Sprintf("compile-time lambda takes %d argument(s) but was called with %d", params, args))
}

func NonCallableError(loc Location, call Node) CompilerError {
	return internalError(InvNonCallable, loc, call, "call of a value that is not a function")
}

// CompileTimeCalleeError is raised for a compile-time call site whose callee
// could not be reduced to a lambda. It is a warning unless strict.
func CompileTimeCalleeError(loc Location, call Node, strict bool) CompilerError {
	err := internalError(InvCompileTimeCallee, loc, call,
		"call site is flagged compile-time but its callee does not reduce to a lambda; left as a runtime call")
	if !strict {
		err.Level = LevelWarning
		err.Category = CategorySemantic
		err.Context.HelpText = "set MIR_STRICT to make this fatal"
	}
	return err
}

func BuiltinShapeError(loc Location, builtin *Builtin, reason string) CompilerError {
	return internalError(InvBuiltinShape, loc, builtin, "malformed builtin: "+reason)
}

func BranchIndexError(loc Location, leaf *DecisionLeaf, branches int) CompilerError {
	return internalError(InvBranchIndex, loc, leaf,
		fmt.Sprintf("decision tree leaf selects branch %d of a match with %d branch(es)", leaf.Branch, branches))
}

func UnknownNodeError(loc Location, node any) CompilerError {
	err := internalError(InvUnknownNode, loc, nil, fmt.Sprintf("no evaluation rule for node type %T", node))
	if n, ok := node.(Node); ok && n != nil {
		err.Context.Node = n.String()
	}
	return err
}

func InlineDepthError(loc Location, call Node, limit int) CompilerError {
	return internalError(InvInlineDepth, loc, call,
		fmt.Sprintf("compile-time reduction nested deeper than %d inlined calls; the compile-time code does not terminate", limit))
}

func ResidualCallError(loc Location, count int) CompilerError {
	return internalError(InvResidualCall, loc, nil,
		fmt.Sprintf("%d compile-time call(s) remain after evaluation", count))
}
