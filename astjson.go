package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Python operator class names and their source spelling.
var jsonOperators = map[string]string{
	"Add": "+", "Sub": "-", "Mult": "*", "Div": "/", "FloorDiv": "//",
	"Mod": "%", "Pow": "**", "LShift": "<<", "RShift": ">>",
	"BitOr": "|", "BitXor": "^", "BitAnd": "&", "MatMult": "@",
	"And": "and", "Or": "or",
	"Not": "not", "USub": "-", "UAdd": "+", "Invert": "~",
	"Eq": "==", "NotEq": "!=", "Lt": "<", "LtE": "<=", "Gt": ">", "GtE": ">=",
	"Is": "is", "IsNot": "is not", "In": "in", "NotIn": "not in",
}

// DecodeASTJSON reads a syntax tree in the JSON form of Python's ast
// module, where every node is an object carrying its class name in
// "_type". Node classes without a counterpart keep their Python name as
// their kind, so the translator can report them.
func DecodeASTJSON(r io.Reader) (*ASTNode, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding syntax tree: %w", err)
	}
	return decodeJSONNode(raw)
}

type jsonNode map[string]any

func decodeJSONNode(raw any) (*ASTNode, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a node object, got %T", raw)
	}
	j := jsonNode(obj)
	typ := j.str("_type")
	if typ == "" {
		return nil, fmt.Errorf("node object without _type")
	}
	node := &ASTNode{Kind: NodeKind(typ), Pos: j.position()}

	var err error
	switch typ {
	case "Module":
		node.Children, err = j.nodes("body")
	case "Expr":
		node.Children, err = j.children("value")
	case "Assign":
		node.Children, err = j.nodes("targets")
		if err == nil {
			var value *ASTNode
			value, err = j.node("value")
			node.Children = append(node.Children, value)
		}
	case "AugAssign":
		node.Op, err = j.op("op")
		if err == nil {
			node.Children, err = j.children("target", "value")
		}
	case "If", "While":
		node.Children, err = j.children("test")
		if err == nil {
			err = j.blocks(node)
		}
	case "For":
		node.Children, err = j.children("target", "iter")
		if err == nil {
			err = j.blocks(node)
		}
	case "FunctionDef":
		node.String = j.str("name")
		node.Body, err = j.nodes("body")
		if args, ok := j["args"].(map[string]any); ok {
			for _, arg := range list(args["args"]) {
				if a, ok := arg.(map[string]any); ok {
					node.ParameterNames = append(node.ParameterNames, jsonNode(a).str("arg"))
				}
			}
		}
	case "Return":
		if j["value"] != nil {
			node.Children, err = j.children("value")
		}
	case "Call":
		err = j.call(node)
	case "Compare":
		node.Children, err = j.children("left")
		if err == nil {
			var comparators []*ASTNode
			comparators, err = j.nodes("comparators")
			node.Children = append(node.Children, comparators...)
		}
		for _, op := range list(j["ops"]) {
			if err != nil {
				break
			}
			var text string
			text, err = opName(op)
			node.Ops = append(node.Ops, text)
		}
	case "BinOp":
		node.Op, err = j.op("op")
		if err == nil {
			node.Children, err = j.children("left", "right")
		}
	case "BoolOp":
		node.Op, err = j.op("op")
		if err == nil {
			node.Children, err = j.nodes("values")
		}
	case "UnaryOp":
		node.Op, err = j.op("op")
		if err == nil {
			node.Children, err = j.children("operand")
		}
	case "IfExp":
		node.Children, err = j.children("test", "body", "orelse")
	case "Name":
		node.String = j.str("id")
	case "Constant", "NameConstant":
		err = decodeConstant(node, j["value"])
	case "Num":
		err = decodeConstant(node, j["n"])
	case "Str":
		err = decodeConstant(node, j["s"])
	case "List", "Tuple", "Set":
		node.Children, err = j.nodes("elts")
	case "Attribute":
		node.String = j.str("attr")
		node.Children, err = j.children("value")
	case "Subscript":
		node.Children, err = j.children("value")
	case "Pass", "Break", "Continue":
	}
	if err != nil {
		return nil, fmt.Errorf("%s at %s: %w", typ, node.Pos, err)
	}
	return node, nil
}

func decodeConstant(node *ASTNode, value any) error {
	node.Kind = NodeConstant
	switch v := value.(type) {
	case nil:
		node.Const = ConstNone
	case bool:
		node.Const = ConstBool
		node.Boolean = v
	case string:
		node.Const = ConstString
		node.String = v
	case json.Number:
		text := v.String()
		node.String = text
		if strings.ContainsAny(text, ".eE") {
			f, err := v.Float64()
			if err != nil {
				return fmt.Errorf("invalid float constant %s", text)
			}
			node.Const = ConstFloat
			node.Float = f
			return nil
		}
		n, err := v.Int64()
		if err != nil {
			return fmt.Errorf("integer constant %s is out of range", text)
		}
		node.Const = ConstInt
		node.Integer = n
	default:
		return fmt.Errorf("unsupported constant of type %T", value)
	}
	return nil
}

func list(v any) []any {
	items, _ := v.([]any)
	return items
}

func (j jsonNode) str(key string) string {
	s, _ := j[key].(string)
	return s
}

func (j jsonNode) number(key string) int {
	n, ok := j[key].(json.Number)
	if !ok {
		return 0
	}
	v, err := n.Int64()
	if err != nil {
		return 0
	}
	return int(v)
}

// position converts lineno and the 0-based col_offset to a Position.
func (j jsonNode) position() Position {
	line := j.number("lineno")
	if line == 0 {
		return Position{}
	}
	return Position{Line: line, Column: j.number("col_offset") + 1}
}

func (j jsonNode) node(key string) (*ASTNode, error) {
	raw, ok := j[key]
	if !ok || raw == nil {
		return nil, fmt.Errorf("missing %s", key)
	}
	return decodeJSONNode(raw)
}

// children decodes the single-node fields named by keys, in order.
func (j jsonNode) children(keys ...string) ([]*ASTNode, error) {
	nodes := make([]*ASTNode, len(keys))
	for i, key := range keys {
		n, err := j.node(key)
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}
	return nodes, nil
}

func (j jsonNode) nodes(key string) ([]*ASTNode, error) {
	var nodes []*ASTNode
	for _, raw := range list(j[key]) {
		n, err := decodeJSONNode(raw)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (j jsonNode) blocks(node *ASTNode) error {
	var err error
	node.Body, err = j.nodes("body")
	if err != nil {
		return err
	}
	node.OrElse, err = j.nodes("orelse")
	return err
}

func (j jsonNode) op(key string) (string, error) {
	return opName(j[key])
}

func opName(raw any) (string, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return "", fmt.Errorf("expected an operator object, got %T", raw)
	}
	name := jsonNode(obj).str("_type")
	text, ok := jsonOperators[name]
	if !ok {
		return "", fmt.Errorf("unknown operator %q", name)
	}
	return text, nil
}

func (j jsonNode) call(node *ASTNode) error {
	callee, err := j.node("func")
	if err != nil {
		return err
	}
	node.Children = []*ASTNode{callee}
	args, err := j.nodes("args")
	if err != nil {
		return err
	}
	for _, arg := range args {
		node.Children = append(node.Children, arg)
		node.ParameterNames = append(node.ParameterNames, "")
	}
	for _, raw := range list(j["keywords"]) {
		obj, ok := raw.(map[string]any)
		if !ok {
			return fmt.Errorf("expected a keyword object, got %T", raw)
		}
		kw := jsonNode(obj)
		value, err := kw.node("value")
		if err != nil {
			return err
		}
		name := kw.str("arg")
		if name == "" {
			// **kwargs
			value = &ASTNode{Kind: "Starred", Pos: value.Pos, Children: []*ASTNode{value}}
		}
		node.Children = append(node.Children, value)
		node.ParameterNames = append(node.ParameterNames, name)
	}
	return nil
}
