package main

import (
	"strconv"
	"strings"
)

// NodeKind represents different types of AST nodes
type NodeKind string

const (
	NodeModule      NodeKind = "Module"
	NodeFunctionDef NodeKind = "FunctionDef"
	NodeAssign      NodeKind = "Assign"
	NodeAugAssign   NodeKind = "AugAssign"
	NodeIf          NodeKind = "If"
	NodeFor         NodeKind = "For"
	NodeWhile       NodeKind = "While"
	NodeExpr        NodeKind = "Expr"
	NodePass        NodeKind = "Pass"
	NodeBreak       NodeKind = "Break"
	NodeContinue    NodeKind = "Continue"
	NodeCall        NodeKind = "Call"
	NodeCompare     NodeKind = "Compare"
	NodeBinOp       NodeKind = "BinOp"
	NodeBoolOp      NodeKind = "BoolOp"
	NodeUnaryOp     NodeKind = "UnaryOp"
	NodeName        NodeKind = "Name"
	NodeConstant    NodeKind = "Constant"
	NodeReturn      NodeKind = "Return"
	NodeIfExp       NodeKind = "IfExp"

	// Parsed so that they can be reported precisely, never translated.
	NodeList      NodeKind = "List"
	NodeTuple     NodeKind = "Tuple"
	NodeDict      NodeKind = "Dict"
	NodeAttribute NodeKind = "Attribute"
	NodeSubscript NodeKind = "Subscript"
	NodeJoinedStr NodeKind = "JoinedStr"
)

// ConstKind tells which payload field of a NodeConstant is meaningful.
type ConstKind string

const (
	ConstInt    ConstKind = "int"
	ConstFloat  ConstKind = "float"
	ConstString ConstKind = "string"
	ConstBool   ConstKind = "bool"
	ConstNone   ConstKind = "none"
)

// Position is a 1-based source location. The zero value means "unknown".
type Position struct {
	Line   int
	Column int
}

func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// ASTNode represents a node in the Abstract Syntax Tree.
//
// Children layout per kind:
//
//	Module:      Children = statements
//	FunctionDef: String = name, Body
//	Assign:      Children[:len-1] = targets, Children[len-1] = value
//	Return:      Children = optional value
//	AugAssign:   Op, Children[0] = target, Children[1] = value
//	If, While:   Children[0] = test, Body, OrElse
//	For:         Children[0] = target, Children[1] = iterable, Body, OrElse
//	Expr:        Children[0] = value
//	Call:        Children[0] = callee, Children[1:] = arguments
//	Compare:     Children[0] = left, Children[1:] = comparators, Ops
//	BinOp:       Op, Children[0] = left, Children[1] = right
//	BoolOp:      Op ("and", "or"), Children = operands (two or more)
//	UnaryOp:     Op ("not", "-", "+", "~"), Children[0] = operand
//	IfExp:       Children = test, body, orelse
//	Attribute:   String = attribute, Children[0] = value
//	Subscript:   Children[0] = value, Children[1] = index
//	List, Tuple, Dict: Children = elements (keys and values alternate)
type ASTNode struct {
	Kind NodeKind
	Pos  Position

	// NodeName, NodeFunctionDef: identifier. NodeConstant: literal source
	// text for numbers, decoded value for strings.
	String string

	// NodeConstant:
	Const   ConstKind
	Integer int64
	Float   float64
	Boolean bool

	// NodeBinOp, NodeBoolOp, NodeUnaryOp, NodeAugAssign:
	Op string
	// NodeCompare:
	Ops []string

	Children []*ASTNode
	Body     []*ASTNode
	OrElse   []*ASTNode

	// NodeCall: keyword name per argument, "" for positional ones.
	ParameterNames []string

	// Type is written by the inference engine.
	Type InferredType
}

// Args returns the positional and keyword arguments of a call.
func (n *ASTNode) Args() []*ASTNode {
	if n.Kind != NodeCall || len(n.Children) == 0 {
		return nil
	}
	return n.Children[1:]
}

// Keyword returns the argument passed under name, or nil.
func (n *ASTNode) Keyword(name string) *ASTNode {
	for i, arg := range n.Args() {
		if i < len(n.ParameterNames) && n.ParameterNames[i] == name {
			return arg
		}
	}
	return nil
}

// CalleeName returns the called identifier for calls of plain names.
func (n *ASTNode) CalleeName() (string, bool) {
	if n.Kind != NodeCall || len(n.Children) == 0 || n.Children[0].Kind != NodeName {
		return "", false
	}
	return n.Children[0].String, true
}

// ToSExpr converts an AST node to s-expression string representation
func ToSExpr(node *ASTNode) string {
	if node == nil {
		return "()"
	}
	switch node.Kind {
	case NodeModule:
		return "(module" + sexprList(node.Children) + ")"
	case NodeFunctionDef:
		return "(def " + strconv.Quote(node.String) + " (block" + sexprList(node.Body) + "))"
	case NodeAssign:
		return "(assign" + sexprList(node.Children) + ")"
	case NodeReturn:
		return "(return" + sexprList(node.Children) + ")"
	case NodeIfExp:
		return "(ifexp" + sexprList(node.Children) + ")"
	case NodeAugAssign:
		return "(augassign " + strconv.Quote(node.Op) + " " + ToSExpr(node.Children[0]) + " " + ToSExpr(node.Children[1]) + ")"
	case NodeIf:
		return "(if " + ToSExpr(node.Children[0]) + " (block" + sexprList(node.Body) + ")" + sexprElse(node.OrElse) + ")"
	case NodeWhile:
		return "(while " + ToSExpr(node.Children[0]) + " (block" + sexprList(node.Body) + ")" + sexprElse(node.OrElse) + ")"
	case NodeFor:
		return "(for " + ToSExpr(node.Children[0]) + " " + ToSExpr(node.Children[1]) + " (block" + sexprList(node.Body) + ")" + sexprElse(node.OrElse) + ")"
	case NodeExpr:
		return "(expr " + ToSExpr(node.Children[0]) + ")"
	case NodePass:
		return "(pass)"
	case NodeBreak:
		return "(break)"
	case NodeContinue:
		return "(continue)"
	case NodeCall:
		result := "(call " + ToSExpr(node.Children[0])
		for i, arg := range node.Args() {
			if i < len(node.ParameterNames) && node.ParameterNames[i] != "" {
				result += " " + strconv.Quote(node.ParameterNames[i])
			}
			result += " " + ToSExpr(arg)
		}
		return result + ")"
	case NodeCompare:
		result := "(compare " + ToSExpr(node.Children[0])
		for i, op := range node.Ops {
			result += " " + strconv.Quote(op) + " " + ToSExpr(node.Children[i+1])
		}
		return result + ")"
	case NodeBinOp:
		return "(binary " + strconv.Quote(node.Op) + " " + ToSExpr(node.Children[0]) + " " + ToSExpr(node.Children[1]) + ")"
	case NodeBoolOp:
		return "(boolop " + strconv.Quote(node.Op) + sexprList(node.Children) + ")"
	case NodeUnaryOp:
		return "(unary " + strconv.Quote(node.Op) + " " + ToSExpr(node.Children[0]) + ")"
	case NodeName:
		return "(name " + strconv.Quote(node.String) + ")"
	case NodeConstant:
		switch node.Const {
		case ConstInt:
			return "(int " + strconv.FormatInt(node.Integer, 10) + ")"
		case ConstFloat:
			return "(float " + strconv.Quote(node.String) + ")"
		case ConstString:
			return "(string " + strconv.Quote(node.String) + ")"
		case ConstBool:
			return "(bool " + strconv.FormatBool(node.Boolean) + ")"
		case ConstNone:
			return "(none)"
		}
	}
	result := "(" + strings.ToLower(string(node.Kind))
	if node.String != "" {
		result += " " + strconv.Quote(node.String)
	}
	return result + sexprList(node.Children) + ")"
}

func sexprList(nodes []*ASTNode) string {
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(" ")
		sb.WriteString(ToSExpr(n))
	}
	return sb.String()
}

func sexprElse(nodes []*ASTNode) string {
	if len(nodes) == 0 {
		return ""
	}
	return " (else" + sexprList(nodes) + ")"
}
