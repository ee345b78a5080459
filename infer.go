package main

import "math"

// Inferrer assigns static types to expressions and creates symbol entries
// on first assignment. It shares its SymbolTable with the translator.
type Inferrer struct {
	symbols *SymbolTable
}

func NewInferrer(symbols *SymbolTable) *Inferrer {
	return &Inferrer{symbols: symbols}
}

// InferExpression returns the type of node and records it in node.Type.
func (inf *Inferrer) InferExpression(node *ASTNode) (InferredType, error) {
	typ, err := inf.infer(node)
	if err != nil {
		return TypeUnknown, err
	}
	node.Type = typ
	return typ, nil
}

func (inf *Inferrer) infer(node *ASTNode) (InferredType, error) {
	switch node.Kind {
	case NodeConstant:
		switch node.Const {
		case ConstInt:
			if node.Integer > math.MaxInt32 || node.Integer < math.MinInt32 {
				return TypeUnknown, newError(ErrUnsupportedExpression, node, "integer literal %d does not fit in a C int", node.Integer)
			}
			return TypeInteger, nil
		case ConstFloat:
			return TypeFloat, nil
		case ConstString:
			return TypeText, nil
		case ConstBool:
			return TypeBoolean, nil
		}
		return TypeUnknown, newError(ErrUnsupportedExpression, node, "None has no static type")

	case NodeName:
		entry := inf.symbols.Lookup(node.String)
		if entry == nil {
			return TypeUnknown, newError(ErrUnknownIdentifier, node, "name '%s' is not defined", node.String)
		}
		return entry.Type, nil

	case NodeCompare:
		types := make([]InferredType, len(node.Children))
		for i, child := range node.Children {
			typ, err := inf.InferExpression(child)
			if err != nil {
				return TypeUnknown, err
			}
			types[i] = typ
		}
		for i, op := range node.Ops {
			if !compareOperators[op] {
				return TypeUnknown, newError(ErrUnsupportedExpression, node, "comparison operator '%s' is not supported", op)
			}
			left, right := types[i], types[i+1]
			if !(left.IsNumeric() && right.IsNumeric()) && !(left == TypeText && right == TypeText) {
				return TypeUnknown, newError(ErrTypeConflict, node, "cannot compare %s %s %s", left, op, right)
			}
		}
		return TypeBoolean, nil

	case NodeBoolOp:
		for _, child := range node.Children {
			typ, err := inf.InferExpression(child)
			if err != nil {
				return TypeUnknown, err
			}
			if !typ.IsNumeric() {
				return TypeUnknown, newError(ErrTypeConflict, child, "%s operand of '%s' must be numeric or Boolean", typ, node.Op)
			}
		}
		return TypeBoolean, nil

	case NodeUnaryOp:
		typ, err := inf.InferExpression(node.Children[0])
		if err != nil {
			return TypeUnknown, err
		}
		if !typ.IsNumeric() {
			return TypeUnknown, newError(ErrTypeConflict, node, "bad operand type for unary %s: %s", node.Op, typ)
		}
		switch node.Op {
		case "not":
			return TypeBoolean, nil
		case "~":
			if !typ.IsIntegral() {
				return TypeUnknown, newError(ErrTypeConflict, node, "bad operand type for unary ~: %s", typ)
			}
			return TypeInteger, nil
		}
		if typ == TypeBoolean {
			return TypeInteger, nil
		}
		return typ, nil

	case NodeBinOp:
		left, err := inf.InferExpression(node.Children[0])
		if err != nil {
			return TypeUnknown, err
		}
		right, err := inf.InferExpression(node.Children[1])
		if err != nil {
			return TypeUnknown, err
		}
		return binaryResultType(node, node.Op, left, right)

	case NodeIfExp:
		test, err := inf.InferExpression(node.Children[0])
		if err != nil {
			return TypeUnknown, err
		}
		if !test.IsNumeric() {
			return TypeUnknown, newError(ErrTypeConflict, node.Children[0], "%s cannot be used as a condition", test)
		}
		body, err := inf.InferExpression(node.Children[1])
		if err != nil {
			return TypeUnknown, err
		}
		orelse, err := inf.InferExpression(node.Children[2])
		if err != nil {
			return TypeUnknown, err
		}
		switch {
		case body == orelse:
			return body, nil
		case body.IsNumeric() && orelse.IsNumeric():
			return wider(body, orelse), nil
		}
		return TypeUnknown, newError(ErrTypeConflict, node, "conditional expression yields %s or %s", body, orelse)

	case NodeCall:
		return inf.inferCall(node)
	}

	return TypeUnknown, newError(ErrUnsupportedExpression, node, "%s is not a supported expression", node.Kind)
}

// binaryResultType applies the widening rules to an arithmetic operator.
func binaryResultType(node *ASTNode, op string, left, right InferredType) (InferredType, error) {
	if !left.IsNumeric() || !right.IsNumeric() {
		return TypeUnknown, newError(ErrTypeConflict, node, "unsupported operand types for %s: %s and %s", op, left, right)
	}
	switch op {
	case "/":
		return TypeFloat, nil
	case "&", "|", "^", "<<", ">>":
		if !left.IsIntegral() || !right.IsIntegral() {
			return TypeUnknown, newError(ErrTypeConflict, node, "unsupported operand types for %s: %s and %s", op, left, right)
		}
		return TypeInteger, nil
	case "**":
		if left.IsIntegral() && right.IsIntegral() {
			return TypeInteger, nil
		}
		return TypeFloat, nil
	}
	// Python arithmetic on bools yields ints.
	return wider(wider(left, right), TypeInteger), nil
}

func (inf *Inferrer) inferCall(node *ASTNode) (InferredType, error) {
	name, ok := node.CalleeName()
	if !ok {
		return TypeUnknown, newError(ErrUnsupportedCall, node, "only calls of built-in names are supported")
	}
	b := lookupBuiltin(name)
	if b == nil {
		return TypeUnknown, newError(ErrUnsupportedCall, node, "call to unsupported function '%s'", name)
	}
	if b.result == nil {
		return TypeUnknown, newError(b.valueErrKind, node, "%s", b.valueErr)
	}
	args, err := inf.inferArgs(node, b)
	if err != nil {
		return TypeUnknown, err
	}
	return b.result(node, args)
}

// inferArgs checks the argument shape of a built-in call and infers the
// positional arguments.
func (inf *Inferrer) inferArgs(node *ASTNode, b *builtin) ([]InferredType, error) {
	var types []InferredType
	for i, arg := range node.Args() {
		if i < len(node.ParameterNames) && node.ParameterNames[i] != "" {
			if !b.acceptsKeyword(node.ParameterNames[i]) {
				return nil, newError(ErrUnsupportedCall, node, "%s() got an unsupported keyword argument '%s'", b.name, node.ParameterNames[i])
			}
			continue
		}
		typ, err := inf.InferExpression(arg)
		if err != nil {
			return nil, err
		}
		types = append(types, typ)
	}
	if len(types) < b.minArgs || (b.maxArgs >= 0 && len(types) > b.maxArgs) {
		return nil, newError(ErrUnsupportedCall, node, "%s() takes %s", b.name, b.arity())
	}
	return types, nil
}

// InferAssign infers value and binds target to its type. The first
// assignment of a fresh name creates an undeclared entry in the innermost
// scope; later assignments must keep the type.
func (inf *Inferrer) InferAssign(target, value *ASTNode) (*SymbolEntry, error) {
	if target.Kind != NodeName {
		return nil, newError(ErrUnsupportedStatement, target, "assignment to %s is not supported", target.Kind)
	}
	typ, err := inf.InferExpression(value)
	if err != nil {
		return nil, err
	}
	if typ == TypeUnknown {
		return nil, newError(ErrTypeConflict, value, "cannot infer a static type for '%s'", target.String)
	}
	target.Type = typ
	entry := inf.symbols.Lookup(target.String)
	if entry == nil {
		return inf.symbols.Declare(target.String, typ), nil
	}
	if entry.Type != typ {
		return nil, newError(ErrTypeConflict, value, "variable '%s' is %s, cannot assign %s", target.String, entry.Type, typ)
	}
	return entry, nil
}

// InferAugAssign checks `target op= value`; the target must exist and keep
// its type.
func (inf *Inferrer) InferAugAssign(node *ASTNode) (*SymbolEntry, error) {
	target, value := node.Children[0], node.Children[1]
	if target.Kind != NodeName {
		return nil, newError(ErrUnsupportedStatement, target, "augmented assignment to %s is not supported", target.Kind)
	}
	entry := inf.symbols.Lookup(target.String)
	if entry == nil {
		return nil, newError(ErrUnknownIdentifier, target, "name '%s' is not defined", target.String)
	}
	target.Type = entry.Type
	typ, err := inf.InferExpression(value)
	if err != nil {
		return nil, err
	}
	result, err := binaryResultType(node, node.Op, entry.Type, typ)
	if err != nil {
		return nil, err
	}
	if result != entry.Type {
		return nil, newError(ErrTypeConflict, node, "variable '%s' is %s, '%s=' would make it %s", target.String, entry.Type, node.Op, result)
	}
	return entry, nil
}
