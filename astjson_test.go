package main

import (
	"os"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func decodeJSON(t *testing.T, input string) *ASTNode {
	t.Helper()
	tree, err := DecodeASTJSON(strings.NewReader(input))
	be.Err(t, err, nil)
	return tree
}

func TestDecodeMatchesParser(t *testing.T) {
	data, err := os.ReadFile("testdata/scenario.json")
	be.Err(t, err, nil)
	fromJSON := decodeJSON(t, string(data))

	source, err := os.ReadFile("testdata/scenario.py")
	be.Err(t, err, nil)
	fromSource, err := Parse(string(source))
	be.Err(t, err, nil)

	be.Equal(t, ToSExpr(fromJSON), ToSExpr(fromSource))
}

func TestDecodePositions(t *testing.T) {
	tree := decodeJSON(t, `{"_type": "Module", "body": [
		{"_type": "Pass", "lineno": 4, "col_offset": 2}]}`)
	be.Equal(t, tree.Pos, Position{})
	be.Equal(t, tree.Children[0].Pos, Position{Line: 4, Column: 3})
}

func TestDecodeConstants(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{`42`, "(int 42)"},
		{`-7`, "(int -7)"},
		{`2.5`, `(float "2.5")`},
		{`1e3`, `(float "1e3")`},
		{`"hi"`, `(string "hi")`},
		{`true`, "(bool true)"},
		{`null`, "(none)"},
	}

	for _, tt := range tests {
		node := decodeJSON(t, `{"_type": "Constant", "value": `+tt.value+`}`)
		be.Equal(t, node.Kind, NodeConstant)
		be.Equal(t, ToSExpr(node), tt.want)
	}
}

func TestDecodeLegacyConstants(t *testing.T) {
	be.Equal(t, ToSExpr(decodeJSON(t, `{"_type": "Num", "n": 3}`)), "(int 3)")
	be.Equal(t, ToSExpr(decodeJSON(t, `{"_type": "Str", "s": "x"}`)), `(string "x")`)
	be.Equal(t, ToSExpr(decodeJSON(t, `{"_type": "NameConstant", "value": false}`)), "(bool false)")
}

func TestDecodeOperators(t *testing.T) {
	tree := decodeJSON(t, `{"_type": "BoolOp", "op": {"_type": "And"}, "values": [
		{"_type": "UnaryOp", "op": {"_type": "Not"}, "operand": {"_type": "Name", "id": "a"}},
		{"_type": "BinOp", "op": {"_type": "FloorDiv"},
		 "left": {"_type": "Name", "id": "b"}, "right": {"_type": "Constant", "value": 2}}]}`)
	be.Equal(t, ToSExpr(tree), `(boolop "and" (unary "not" (name "a")) (binary "//" (name "b") (int 2)))`)
}

func TestDecodeCallKeywords(t *testing.T) {
	tree := decodeJSON(t, `{"_type": "Call", "func": {"_type": "Name", "id": "print"},
		"args": [{"_type": "Constant", "value": 1}],
		"keywords": [{"_type": "keyword", "arg": "end", "value": {"_type": "Constant", "value": ""}}]}`)
	be.Equal(t, tree.ParameterNames, []string{"", "end"})
	be.Equal(t, tree.Keyword("end").String, "")
	be.Equal(t, len(tree.Args()), 2)
}

func TestDecodeUnknownNodeKeepsKind(t *testing.T) {
	tree := decodeJSON(t, `{"_type": "Module", "body": [
		{"_type": "Import", "lineno": 1, "col_offset": 0, "names": [{"_type": "alias", "name": "os"}]}]}`)
	be.Equal(t, tree.Children[0].Kind, NodeKind("Import"))

	_, err := Translate(tree, Options{Logger: discardLogger()})
	be.Err(t, err, ErrUnsupportedStatement)
	be.Err(t, err, "1:1: UnsupportedStatement: Import statements are not supported")
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`not json`, "decoding syntax tree"},
		{`{"body": []}`, "node object without _type"},
		{`{"_type": "Module", "body": [3]}`, "expected a node object, got json.Number"},
		{`{"_type": "BinOp", "op": {"_type": "Spaceship"}}`, `unknown operator "Spaceship"`},
		{`{"_type": "Expr", "lineno": 2, "col_offset": 0}`, "Expr at 2:1: missing value"},
		{`{"_type": "Constant", "value": 99999999999999999999}`, "out of range"},
		{`{"_type": "Constant", "value": [1]}`, "unsupported constant"},
	}

	for _, tt := range tests {
		_, err := DecodeASTJSON(strings.NewReader(tt.input))
		be.Err(t, err, tt.want)
	}
}
