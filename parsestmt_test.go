package main

import (
	"errors"
	"testing"

	"github.com/nalgeon/be"
)

func parseProgram(t *testing.T, input string) string {
	t.Helper()
	tree, err := Parse(input)
	be.Err(t, err, nil)
	return ToSExpr(tree)
}

func TestParseSimpleStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "(module)"},
		{"pass", "(module (pass))"},
		{"x = 1", `(module (assign (name "x") (int 1)))`},
		{"a = b = 1", `(module (assign (name "a") (name "b") (int 1)))`},
		{"x += 1", `(module (augassign "+" (name "x") (int 1)))`},
		{"x //= 2", `(module (augassign "//" (name "x") (int 2)))`},
		{"x >>= 2", `(module (augassign ">>" (name "x") (int 2)))`},
		{"print(x)", `(module (expr (call (name "print") (name "x"))))`},
		{"x = 1; y = 2", `(module (assign (name "x") (int 1)) (assign (name "y") (int 2)))`},
		{"x = 1;", `(module (assign (name "x") (int 1)))`},
		{"x: int = 1", `(module (annassign (name "x") (name "int") (int 1)))`},
		{"return", "(module (return))"},
		{"return 1, 2", "(module (return (tuple (int 1) (int 2))))"},
		{"x = 1, 2", `(module (assign (name "x") (tuple (int 1) (int 2))))`},
	}

	for _, test := range tests {
		be.Equal(t, parseProgram(t, test.input), test.expected)
	}
}

func TestParseIfStatement(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{
			input:    "if x:\n    y = 1\n",
			expected: `(module (if (name "x") (block (assign (name "y") (int 1)))))`,
		},
		{
			input:    "if x:\n    pass\nelse:\n    pass\n",
			expected: `(module (if (name "x") (block (pass)) (else (pass))))`,
		},
		{
			input:    "if a:\n    pass\nelif b:\n    pass\nelse:\n    break\n",
			expected: `(module (if (name "a") (block (pass)) (else (if (name "b") (block (pass)) (else (break))))))`,
		},
		{
			input:    "if x: pass\nelse: continue\n",
			expected: `(module (if (name "x") (block (pass)) (else (continue))))`,
		},
	}

	for _, test := range tests {
		be.Equal(t, parseProgram(t, test.input), test.expected)
	}
}

func TestParseLoops(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{
			input:    "while x < 3:\n    x += 1\n",
			expected: `(module (while (compare (name "x") "<" (int 3)) (block (augassign "+" (name "x") (int 1)))))`,
		},
		{
			input:    "while x:\n    pass\nelse:\n    pass\n",
			expected: `(module (while (name "x") (block (pass)) (else (pass))))`,
		},
		{
			input:    "for i in range(3):\n    print(i)\n",
			expected: `(module (for (name "i") (call (name "range") (int 3)) (block (expr (call (name "print") (name "i"))))))`,
		},
		{
			input:    "for i in range(0, 10, 2): pass\nelse: pass\n",
			expected: `(module (for (name "i") (call (name "range") (int 0) (int 10) (int 2)) (block (pass)) (else (pass))))`,
		},
		{
			input:    "for k, v in d:\n    pass\n",
			expected: `(module (for (tuple (name "k") (name "v")) (name "d") (block (pass))))`,
		},
	}

	for _, test := range tests {
		be.Equal(t, parseProgram(t, test.input), test.expected)
	}
}

func TestParseNestedBlocks(t *testing.T) {
	input := `x = 0
for i in range(3):
    if i == 1:
        x = i

    # comment between statements
    else:
        pass
print(x)
`
	be.Equal(t, parseProgram(t, input),
		`(module (assign (name "x") (int 0)) `+
			`(for (name "i") (call (name "range") (int 3)) (block `+
			`(if (compare (name "i") "==" (int 1)) (block (assign (name "x") (name "i"))) (else (pass))))) `+
			`(expr (call (name "print") (name "x"))))`)
}

func TestParseFunctionDef(t *testing.T) {
	tree, err := Parse("def f(a, b=2, *args, c: int = 3, **kw) -> None:\n    return a\n")
	be.Err(t, err, nil)
	fn := tree.Children[0]
	be.Equal(t, fn.Kind, NodeFunctionDef)
	be.Equal(t, fn.String, "f")
	be.Equal(t, fn.ParameterNames, []string{"a", "b", "c"})
	be.Equal(t, ToSExpr(fn), `(def "f" (block (return (name "a"))))`)
}

func TestParseOpaqueStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"import os, sys", "(module (import))"},
		{"from a import (b,\n    c)", "(module (importfrom))"},
		{"class A(B):\n    x = 1\n    def f(self):\n        pass\ny = 1", `(module (classdef) (assign (name "y") (int 1)))`},
		{"try:\n    pass\nexcept E as e:\n    pass\nelse:\n    pass\nfinally:\n    pass\n", "(module (try))"},
		{"with open(f) as g:\n    pass\n", "(module (with))"},
		{"global x", "(module (global))"},
		{"del x", "(module (delete))"},
		{"raise ValueError()", "(module (raise))"},
		{"assert x, 'message'", "(module (assert))"},
	}

	for _, test := range tests {
		be.Equal(t, parseProgram(t, test.input), test.expected)
	}
}

func TestParseStatementPositions(t *testing.T) {
	tree, err := Parse("x = 1\nif x:\n    y = 2\n")
	be.Err(t, err, nil)
	be.Equal(t, tree.Pos, Position{Line: 1, Column: 1})
	be.Equal(t, tree.Children[0].Pos, Position{Line: 1, Column: 1})
	be.Equal(t, tree.Children[1].Pos, Position{Line: 2, Column: 1})
	be.Equal(t, tree.Children[1].Body[0].Pos, Position{Line: 3, Column: 5})
	be.Equal(t, tree.Children[1].Body[0].Children[1].Pos, Position{Line: 3, Column: 9})
}

func TestParseErrorsAreCollected(t *testing.T) {
	tree, err := Parse("x = )\ny = (\n")
	be.True(t, tree == nil)

	var errs *ErrorCollection
	be.True(t, errors.As(err, &errs))
	be.True(t, errs.Count() >= 2)
	be.Equal(t, errs.Errors()[0].Pos, Position{Line: 1, Column: 5})
	be.Equal(t, errs.Errors()[0].Message, "unexpected ')'")
}

func TestParseStatementErrors(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{"if x:\npass", "expected an indented block"},
		{"x = 1\n  y = 2", "unexpected indent"},
		{"elif x:\n    pass", "'elif' without a matching statement"},
		{"while x\n    pass", "expected ':', got newline"},
		{"for i range(3):\n    pass", "expected 'in', got 'range'"},
		{"x = 1 2", "expected end of statement, got '2'"},
		{"def (x):\n    pass", "expected function name, got '('"},
	}

	for _, test := range tests {
		_, err := Parse(test.input)
		be.Err(t, err, test.message)
	}
}
