package main

import (
	"testing"

	"github.com/nalgeon/be"
)

func intConst(v int64) *ASTNode {
	return &ASTNode{Kind: NodeConstant, Const: ConstInt, Integer: v}
}

func floatConst(v float64) *ASTNode {
	return &ASTNode{Kind: NodeConstant, Const: ConstFloat, Float: v}
}

func textConst(s string) *ASTNode {
	return &ASTNode{Kind: NodeConstant, Const: ConstString, String: s}
}

func boolConst(b bool) *ASTNode {
	return &ASTNode{Kind: NodeConstant, Const: ConstBool, Boolean: b}
}

func nameNode(id string) *ASTNode {
	return &ASTNode{Kind: NodeName, String: id}
}

func binOp(op string, left, right *ASTNode) *ASTNode {
	return &ASTNode{Kind: NodeBinOp, Op: op, Children: []*ASTNode{left, right}}
}

// inferSource infers the type of the expression in input against a table
// holding the given variables.
func inferSource(t *testing.T, input string, vars map[string]InferredType) (InferredType, error) {
	t.Helper()
	l := NewLexer([]byte(input))
	l.NextToken()
	node := ParseExpression(l)
	be.Equal(t, l.Errors.String(), "")

	st := NewSymbolTable()
	for v, typ := range vars {
		st.Declare(v, typ)
	}
	return NewInferrer(st).InferExpression(node)
}

func TestInferLiterals(t *testing.T) {
	inf := NewInferrer(NewSymbolTable())

	tests := []struct {
		node *ASTNode
		want InferredType
	}{
		{intConst(42), TypeInteger},
		{floatConst(1.5), TypeFloat},
		{textConst("hi"), TypeText},
		{boolConst(true), TypeBoolean},
	}

	for _, tt := range tests {
		typ, err := inf.InferExpression(tt.node)
		be.Err(t, err, nil)
		be.Equal(t, typ, tt.want)
		be.Equal(t, tt.node.Type, tt.want)
	}
}

func TestInferIntegerLiteralRange(t *testing.T) {
	inf := NewInferrer(NewSymbolTable())

	for _, v := range []int64{2147483647, -2147483648, 0} {
		typ, err := inf.InferExpression(intConst(v))
		be.Err(t, err, nil)
		be.Equal(t, typ, TypeInteger)
	}

	_, err := inf.InferExpression(intConst(3000000000))
	be.Err(t, err, ErrUnsupportedExpression)
	be.Err(t, err, "integer literal 3000000000 does not fit in a C int")

	_, err = inf.InferExpression(intConst(-2147483649))
	be.Err(t, err, ErrUnsupportedExpression)
}

func TestInferNone(t *testing.T) {
	inf := NewInferrer(NewSymbolTable())
	_, err := inf.InferExpression(&ASTNode{Kind: NodeConstant, Const: ConstNone})
	be.Err(t, err, ErrUnsupportedExpression)
}

func TestInferName(t *testing.T) {
	st := NewSymbolTable()
	st.Declare("x", TypeFloat)
	inf := NewInferrer(st)

	typ, err := inf.InferExpression(nameNode("x"))
	be.Err(t, err, nil)
	be.Equal(t, typ, TypeFloat)

	_, err = inf.InferExpression(&ASTNode{Kind: NodeName, String: "y", Pos: Position{Line: 3, Column: 7}})
	be.Err(t, err, ErrUnknownIdentifier)
	be.Equal(t, err.Error(), "3:7: UnknownIdentifier: name 'y' is not defined")
}

func TestInferArithmeticWidening(t *testing.T) {
	tests := []struct {
		input string
		want  InferredType
	}{
		{"1 + 2", TypeInteger},
		{"1 + 2.0", TypeFloat},
		{"b + b", TypeInteger},
		{"b * 1.5", TypeFloat},
		{"i - b", TypeInteger},
		{"1 / 2", TypeFloat},
		{"1 // 2", TypeInteger},
		{"1.0 // 2", TypeFloat},
		{"7 % 2", TypeInteger},
		{"2 ** 3", TypeInteger},
		{"2 ** 0.5", TypeFloat},
		{"f ** i", TypeFloat},
		{"i & 1", TypeInteger},
		{"b | b", TypeInteger},
		{"i << 2", TypeInteger},
		{"-b", TypeInteger},
		{"-f", TypeFloat},
		{"~i", TypeInteger},
		{"not i", TypeBoolean},
		{"1 if b else 2.5", TypeFloat},
		{"s if b else s", TypeText},
	}

	vars := map[string]InferredType{"b": TypeBoolean, "i": TypeInteger, "f": TypeFloat, "s": TypeText}
	for _, tt := range tests {
		typ, err := inferSource(t, tt.input, vars)
		be.Err(t, err, nil)
		be.Equal(t, typ, tt.want)
	}
}

func TestInferComparisonsAndBoolOps(t *testing.T) {
	tests := []string{
		"1 < 2",
		"i == f",
		"s != s",
		"0 <= i < 10",
		"i and f",
		"b or not b",
	}

	vars := map[string]InferredType{"b": TypeBoolean, "i": TypeInteger, "f": TypeFloat, "s": TypeText}
	for _, input := range tests {
		typ, err := inferSource(t, input, vars)
		be.Err(t, err, nil)
		be.Equal(t, typ, TypeBoolean)
	}
}

func TestInferTypeConflicts(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{`"a" + 1`, "unsupported operand types for +: Text and Integer"},
		{`s * 2`, "unsupported operand types for *: Text and Integer"},
		{`1.5 & 1`, "unsupported operand types for &: FloatingPoint and Integer"},
		{`s < 1`, "cannot compare Text < Integer"},
		{`-s`, "bad operand type for unary -: Text"},
		{`~f`, "bad operand type for unary ~: FloatingPoint"},
		{`s and b`, "Text operand of 'and' must be numeric or Boolean"},
		{`1 if s else 2`, "Text cannot be used as a condition"},
		{`s if b else 1`, "conditional expression yields Text or Integer"},
		{`len(1)`, "object of type Integer has no len()"},
		{`abs(s)`, "bad operand type for abs(): Text"},
		{`int(s)`, "cannot convert Text to Integer"},
	}

	vars := map[string]InferredType{"b": TypeBoolean, "f": TypeFloat, "s": TypeText}
	for _, tt := range tests {
		_, err := inferSource(t, tt.input, vars)
		be.Err(t, err, ErrTypeConflict)
		be.Err(t, err, tt.message)
	}
}

func TestInferUnsupported(t *testing.T) {
	tests := []struct {
		input string
		kind  ErrorKind
	}{
		{"x in y", ErrUnsupportedExpression},
		{"[1]", ErrUnsupportedExpression},
		{"o.attr", ErrUnsupportedExpression},
		{"foo()", ErrUnsupportedCall},
		{"o.m()", ErrUnsupportedCall},
		{"print(1)", ErrUnsupportedExpression},
		{"range(3)", ErrUnsupportedCall},
		{"abs(1, 2)", ErrUnsupportedCall},
		{"abs(1, key=2)", ErrUnsupportedCall},
	}

	vars := map[string]InferredType{"x": TypeInteger, "y": TypeInteger, "o": TypeInteger}
	for _, tt := range tests {
		_, err := inferSource(t, tt.input, vars)
		be.Err(t, err, tt.kind)
	}
}

func TestInferBuiltinResults(t *testing.T) {
	tests := []struct {
		input string
		want  InferredType
	}{
		{"abs(-1)", TypeInteger},
		{"abs(b)", TypeInteger},
		{"abs(-1.5)", TypeFloat},
		{"int(2.5)", TypeInteger},
		{"float(1)", TypeFloat},
		{"len(s)", TypeInteger},
	}

	vars := map[string]InferredType{"b": TypeBoolean, "s": TypeText}
	for _, tt := range tests {
		typ, err := inferSource(t, tt.input, vars)
		be.Err(t, err, nil)
		be.Equal(t, typ, tt.want)
	}
}

func TestInferAssignCreatesUndeclaredEntry(t *testing.T) {
	st := NewSymbolTable()
	inf := NewInferrer(st)

	entry, err := inf.InferAssign(nameNode("x"), intConst(1))
	be.Err(t, err, nil)
	be.Equal(t, entry.Name, "x")
	be.Equal(t, entry.Type, TypeInteger)
	be.Equal(t, entry.Declared, false)
	be.True(t, st.Lookup("x") == entry)
}

func TestInferAssignTypeStability(t *testing.T) {
	st := NewSymbolTable()
	inf := NewInferrer(st)

	first, err := inf.InferAssign(nameNode("x"), intConst(1))
	be.Err(t, err, nil)
	again, err := inf.InferAssign(nameNode("x"), binOp("+", nameNode("x"), intConst(1)))
	be.Err(t, err, nil)
	be.True(t, first == again)

	_, err = inf.InferAssign(nameNode("x"), textConst("a"))
	be.Err(t, err, ErrTypeConflict)
	be.Err(t, err, "variable 'x' is Integer, cannot assign Text")

	_, err = inf.InferAssign(nameNode("x"), floatConst(1))
	be.Err(t, err, ErrTypeConflict)
	be.Equal(t, st.Lookup("x").Type, TypeInteger)
}

func TestInferAssignInInnerScopeFindsOuterEntry(t *testing.T) {
	st := NewSymbolTable()
	inf := NewInferrer(st)
	outer, err := inf.InferAssign(nameNode("x"), intConst(1))
	be.Err(t, err, nil)

	st.EnterScope()
	inner, err := inf.InferAssign(nameNode("x"), intConst(2))
	be.Err(t, err, nil)
	be.True(t, inner == outer)
	be.Equal(t, len(st.Current().Names()), 0)
}

func TestInferAssignToNonName(t *testing.T) {
	inf := NewInferrer(NewSymbolTable())
	target := &ASTNode{Kind: NodeSubscript, Children: []*ASTNode{nameNode("a"), intConst(0)}}
	_, err := inf.InferAssign(target, intConst(1))
	be.Err(t, err, ErrUnsupportedStatement)
}

func TestInferAugAssign(t *testing.T) {
	st := NewSymbolTable()
	st.Declare("n", TypeInteger)
	st.Declare("f", TypeFloat)
	inf := NewInferrer(st)

	aug := func(target, op string, value *ASTNode) *ASTNode {
		return &ASTNode{Kind: NodeAugAssign, Op: op, Children: []*ASTNode{nameNode(target), value}}
	}

	_, err := inf.InferAugAssign(aug("n", "+", intConst(1)))
	be.Err(t, err, nil)
	_, err = inf.InferAugAssign(aug("f", "+", intConst(1)))
	be.Err(t, err, nil)
	_, err = inf.InferAugAssign(aug("n", "/", intConst(2)))
	be.Err(t, err, "variable 'n' is Integer, '/=' would make it FloatingPoint")
	_, err = inf.InferAugAssign(aug("n", "+", floatConst(0.5)))
	be.Err(t, err, ErrTypeConflict)
	_, err = inf.InferAugAssign(aug("m", "+", intConst(1)))
	be.Err(t, err, ErrUnknownIdentifier)
}
