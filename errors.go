package glyphmerge

import (
	"fmt"
	"strings"
)

// ParseError is the error taxonomy produced by Parse (spec.md §7). The
// concrete cause is available via a type assertion or errors.As against
// the specific *UnrecognisedTokenError / *WrongNumberOfArgumentsError /
// *NotImplementedError types, all of which also satisfy ParseError's
// own interface.
type ParseError interface {
	error
	TokenIndex() int
}

type parseErrorBase struct {
	msg        string
	tokenIndex int
	tokenName  string
	stack      []CsToken
}

func (e *parseErrorBase) TokenIndex() int { return e.tokenIndex }

func (e *parseErrorBase) Error() string {
	var sb strings.Builder
	sb.WriteString(e.msg)
	sb.WriteString(fmt.Sprintf(" (token index: %d, token name: %q, stack: [", e.tokenIndex, e.tokenName))
	for i, tok := range e.stack {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(tok.String())
	}
	sb.WriteString("])")
	return sb.String()
}

// UnrecognisedTokenError is raised when an operator name is not in the
// supported set.
type UnrecognisedTokenError struct {
	parseErrorBase
	Token CsToken
}

func newUnrecognisedTokenError(tok CsToken, idx int, stack []CsToken) *UnrecognisedTokenError {
	return &UnrecognisedTokenError{
		parseErrorBase: parseErrorBase{
			msg:        "unrecognised token",
			tokenIndex: idx,
			tokenName:  tok.String(),
			stack:      append([]CsToken(nil), stack...),
		},
		Token: tok,
	}
}

// WrongNumberOfArgumentsError is raised when an operand count fails
// every modular class the operator accepts.
type WrongNumberOfArgumentsError struct {
	parseErrorBase
	OperatorName string
	NumArgs      int
}

func newWrongNumberOfArgumentsError(operatorName string, numArgs, idx int, stack []CsToken) *WrongNumberOfArgumentsError {
	return &WrongNumberOfArgumentsError{
		parseErrorBase: parseErrorBase{
			msg:        "wrong number of arguments",
			tokenIndex: idx,
			tokenName:  operatorName,
			stack:      append([]CsToken(nil), stack...),
		},
		OperatorName: operatorName,
		NumArgs:      numArgs,
	}
}

// NotImplementedError is raised for known-but-unimplemented operators
// (flex, hflex, hflex1, flex1).
type NotImplementedError struct {
	parseErrorBase
	OperatorName string
}

func newNotImplementedError(operatorName string, idx int, stack []CsToken) *NotImplementedError {
	return &NotImplementedError{
		parseErrorBase: parseErrorBase{
			msg:        fmt.Sprintf("token %q is not implemented", operatorName),
			tokenIndex: idx,
			tokenName:  operatorName,
			stack:      append([]CsToken(nil), stack...),
		},
		OperatorName: operatorName,
	}
}

// genericParseError covers residual-stack and similar whole-stream
// failures that aren't tied to one specific operator's argument rules.
type genericParseError struct {
	parseErrorBase
}

func newGenericParseError(msg string, idx int, stack []CsToken) *genericParseError {
	return &genericParseError{parseErrorBase{
		msg:        msg,
		tokenIndex: idx,
		tokenName:  "",
		stack:      append([]CsToken(nil), stack...),
	}}
}

// GeometryException is the error taxonomy produced by the polygon
// bridge and boolean engine (spec.md §7).
type GeometryException interface {
	error
	geometryException()
}

type geometryExceptionBase struct {
	msg string
}

func (e *geometryExceptionBase) Error() string      { return e.msg }
func (e *geometryExceptionBase) geometryException() {}

// NoncontiguousCurvesError is raised from user-driven Path.Append when
// a curve's initial point doesn't match the path's final point beyond
// tolerance. Path.Append is the only place it is returned — the same
// condition arising inside toPathList's reconstruction is recovered
// locally instead (spec.md §4.4.2/§7).
type NoncontiguousCurvesError struct {
	geometryExceptionBase
	PathEnd, CurveStart Point
}

func newNoncontiguousCurvesError(pathEnd, curveStart Point) *NoncontiguousCurvesError {
	return &NoncontiguousCurvesError{
		geometryExceptionBase: geometryExceptionBase{
			msg: fmt.Sprintf("paths must consist of contiguous curves; path end: %s, curve start: %s", pathEnd, curveStart),
		},
		PathEnd:    pathEnd,
		CurveStart: curveStart,
	}
}

// NotClosedError is raised when ToPolyList is given a path that is not
// closed under tolerance.
type NotClosedError struct {
	geometryExceptionBase
}

func newNotClosedError() *NotClosedError {
	return &NotClosedError{geometryExceptionBase{msg: "cannot make polygon from path; path is not closed"}}
}

// KernelError wraps a failure from the arithmetic kernel underlying the
// boolean engine (spec.md §4.5/§7): degenerate or unsupported geometry
// discovered while building the planar arrangement.
type KernelError struct {
	geometryExceptionBase
	Expression  string
	Explanation string
}

func newKernelError(expression, explanation string) *KernelError {
	return &KernelError{
		geometryExceptionBase: geometryExceptionBase{
			msg: fmt.Sprintf("error from geometry kernel: (expression: %s, explanation: %s)", expression, explanation),
		},
		Expression:  expression,
		Explanation: explanation,
	}
}
