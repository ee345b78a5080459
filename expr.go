package main

import (
	"fmt"
	"strings"
)

var compareOperators = map[string]bool{
	"==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true,
}

var boolOperators = map[string]string{
	"and": "&&",
	"or":  "||",
}

// translateExpression renders an expression whose type has already been
// inferred. Compound expressions are always parenthesised, so the result
// can be embedded anywhere without regard to C precedence.
func (t *Translator) translateExpression(node *ASTNode) (string, error) {
	switch node.Kind {
	case NodeName:
		return node.String, nil

	case NodeConstant:
		return t.translateConstant(node)

	case NodeCompare:
		return t.translateCompare(node)

	case NodeBinOp:
		left, err := t.translateExpression(node.Children[0])
		if err != nil {
			return "", err
		}
		right, err := t.translateExpression(node.Children[1])
		if err != nil {
			return "", err
		}
		return t.formatBinary(node, node.Op, node.Children[0].Type, node.Children[1].Type, node.Type, left, right)

	case NodeBoolOp:
		cop, ok := boolOperators[node.Op]
		if !ok {
			return "", newError(ErrUnsupportedExpression, node, "operator '%s' is not supported", node.Op)
		}
		parts := make([]string, len(node.Children))
		for i, child := range node.Children {
			text, err := t.translateExpression(child)
			if err != nil {
				return "", err
			}
			parts[i] = text
		}
		return "(" + strings.Join(parts, " "+cop+" ") + ")", nil

	case NodeUnaryOp:
		operand, err := t.translateExpression(node.Children[0])
		if err != nil {
			return "", err
		}
		switch node.Op {
		case "not":
			return "(!" + operand + ")", nil
		case "-", "+", "~":
			return "(" + node.Op + operand + ")", nil
		}
		return "", newError(ErrUnsupportedExpression, node, "unary operator '%s' is not supported", node.Op)

	case NodeIfExp:
		parts := make([]string, 3)
		for i, child := range node.Children {
			text, err := t.translateExpression(child)
			if err != nil {
				return "", err
			}
			parts[i] = text
		}
		return fmt.Sprintf("(%s ? %s : %s)", parts[0], parts[1], parts[2]), nil

	case NodeCall:
		name, _ := node.CalleeName()
		b := lookupBuiltin(name)
		if b == nil || b.translate == nil {
			return "", newError(ErrUnsupportedCall, node, "call to unsupported function '%s'", name)
		}
		t.log.Debug("built-in call", "name", name)
		return b.translate(t, node)
	}

	return "", newError(ErrUnsupportedExpression, node, "%s is not a supported expression", node.Kind)
}

func (t *Translator) translateCompare(node *ASTNode) (string, error) {
	texts := make([]string, len(node.Children))
	for i, child := range node.Children {
		text, err := t.translateExpression(child)
		if err != nil {
			return "", err
		}
		texts[i] = text
	}

	parts := make([]string, len(node.Ops))
	for i, op := range node.Ops {
		if !compareOperators[op] {
			return "", newError(ErrUnsupportedExpression, node, "comparison operator '%s' is not supported", op)
		}
		left, right := texts[i], texts[i+1]
		if node.Children[i].Type == TypeText {
			t.features.Use(FeatureString)
			parts[i] = fmt.Sprintf("(strcmp(%s, %s) %s 0)", left, right, op)
		} else {
			parts[i] = fmt.Sprintf("(%s %s %s)", left, op, right)
		}
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return "(" + strings.Join(parts, " && ") + ")", nil
}

// formatBinary renders an arithmetic operator given operand and result
// types. Operators whose C meaning differs from Python's are rewritten.
func (t *Translator) formatBinary(node *ASTNode, op string, lt, rt, result InferredType, left, right string) (string, error) {
	switch op {
	case "+", "-", "*", "&", "|", "^", "<<", ">>":
		return fmt.Sprintf("(%s %s %s)", left, op, right), nil
	case "/":
		if lt.IsIntegral() && rt.IsIntegral() {
			return fmt.Sprintf("((double)%s / %s)", left, right), nil
		}
		return fmt.Sprintf("(%s / %s)", left, right), nil
	case "//":
		if result == TypeInteger {
			return fmt.Sprintf("(%s / %s)", left, right), nil
		}
		t.features.Use(FeatureMath)
		return fmt.Sprintf("floor(%s / %s)", left, right), nil
	case "%":
		if result == TypeInteger {
			return fmt.Sprintf("(%s %% %s)", left, right), nil
		}
		t.features.Use(FeatureMath)
		return fmt.Sprintf("fmod(%s, %s)", left, right), nil
	case "**":
		t.features.Use(FeatureMath)
		if result == TypeInteger {
			return fmt.Sprintf("((int)pow(%s, %s))", left, right), nil
		}
		return fmt.Sprintf("pow(%s, %s)", left, right), nil
	}
	return "", newError(ErrUnsupportedExpression, node, "operator '%s' is not supported", op)
}

// conditionText renders a test expression with the parentheses C requires
// around if and while conditions.
func (t *Translator) conditionText(node *ASTNode) (string, error) {
	typ, err := t.infer.InferExpression(node)
	if err != nil {
		return "", err
	}
	if !typ.IsNumeric() {
		return "", newError(ErrTypeConflict, node, "%s cannot be used as a condition", typ)
	}
	text, err := t.translateExpression(node)
	if err != nil {
		return "", err
	}
	switch node.Kind {
	case NodeCompare, NodeBoolOp, NodeUnaryOp:
		return text, nil
	}
	return "(" + text + ")", nil
}
