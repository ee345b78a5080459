package main

import (
	"fmt"
	"strconv"
	"strings"
)

func (t *Translator) translateStatements(stmts []*ASTNode) error {
	for _, stmt := range stmts {
		if err := t.translateStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (t *Translator) translateStatement(node *ASTNode) error {
	switch node.Kind {
	case NodeAssign:
		return t.translateAssign(node)
	case NodeAugAssign:
		return t.translateAugAssign(node)
	case NodeIf:
		return t.translateIf(node)
	case NodeFor:
		return t.translateFor(node)
	case NodeWhile:
		return t.translateWhile(node)
	case NodeExpr:
		return t.translateExprStatement(node)
	case NodePass:
		return nil
	case NodeBreak, NodeContinue:
		keyword := strings.ToLower(string(node.Kind))
		if t.loopDepth == 0 {
			return newError(ErrUnsupportedStatement, node, "'%s' outside loop", keyword)
		}
		t.buf.Line(keyword + ";")
		return nil
	case NodeFunctionDef:
		return newError(ErrUnsupportedStatement, node, "function definitions are not supported")
	case NodeReturn:
		return newError(ErrUnsupportedStatement, node, "'return' outside function")
	}
	return newError(ErrUnsupportedStatement, node, "%s statements are not supported", node.Kind)
}

// declaration renders "<type> name" with the pointer star attached to the
// name.
func declaration(typ InferredType, name string) string {
	ctype := typ.CType()
	if strings.HasSuffix(ctype, "*") {
		return ctype + name
	}
	return ctype + " " + name
}

func (t *Translator) translateAssign(node *ASTNode) error {
	if len(node.Children) != 2 {
		return newError(ErrUnsupportedStatement, node, "chained assignment is not supported")
	}
	target, value := node.Children[0], node.Children[1]
	entry, err := t.infer.InferAssign(target, value)
	if err != nil {
		return err
	}
	text, err := t.translateExpression(value)
	if err != nil {
		return err
	}

	if entry.Declared {
		t.buf.Line(fmt.Sprintf("%s = %s;", entry.Name, text))
		return nil
	}
	if entry.Type == TypeUnknown {
		return newError(ErrTypeConflict, node, "cannot declare '%s' without a static type", entry.Name)
	}
	if entry.Type == TypeBoolean {
		t.features.Use(FeatureBool)
	}
	t.buf.Line(fmt.Sprintf("%s = %s;", declaration(entry.Type, entry.Name), text))
	t.symbols.MarkDeclared(entry.Name)
	t.log.Debug("declared variable", "name", entry.Name, "type", entry.Type, "scope", entry.ScopeDepth)
	return nil
}

func (t *Translator) translateAugAssign(node *ASTNode) error {
	entry, err := t.infer.InferAugAssign(node)
	if err != nil {
		return err
	}
	value := node.Children[1]
	text, err := t.translateExpression(value)
	if err != nil {
		return err
	}

	switch {
	case node.Op == "+" || node.Op == "-" || node.Op == "*" || node.Op == "/",
		node.Op == "&" || node.Op == "|" || node.Op == "^" || node.Op == "<<" || node.Op == ">>",
		node.Op == "%" && entry.Type == TypeInteger:
		t.buf.Line(fmt.Sprintf("%s %s= %s;", entry.Name, node.Op, text))
		return nil
	}
	expanded, err := t.formatBinary(node, node.Op, entry.Type, value.Type, entry.Type, entry.Name, text)
	if err != nil {
		return err
	}
	t.buf.Line(fmt.Sprintf("%s = %s;", entry.Name, expanded))
	return nil
}

// translateBlock translates a branch or loop body in its own scope.
func (t *Translator) translateBlock(stmts []*ASTNode) error {
	t.symbols.EnterScope()
	t.log.Debug("enter scope", "depth", t.symbols.Depth())
	err := t.translateStatements(stmts)
	t.symbols.ExitScope()
	return err
}

// translateIf emits an if/else-if/else chain. An else branch consisting of
// a single if statement is rendered as "else if".
func (t *Translator) translateIf(node *ASTNode) error {
	cond, err := t.conditionText(node.Children[0])
	if err != nil {
		return err
	}
	t.buf.Open("if " + cond)
	if err := t.translateBlock(node.Body); err != nil {
		return err
	}

	current := node
	for {
		orelse := current.OrElse
		if len(orelse) == 1 && orelse[0].Kind == NodeIf {
			current = orelse[0]
			cond, err := t.conditionText(current.Children[0])
			if err != nil {
				return err
			}
			t.buf.Continue("else if " + cond)
			if err := t.translateBlock(current.Body); err != nil {
				return err
			}
			continue
		}
		if len(orelse) > 0 {
			t.buf.Continue("else")
			if err := t.translateBlock(orelse); err != nil {
				return err
			}
		}
		break
	}
	t.buf.Close()
	return nil
}

func (t *Translator) translateWhile(node *ASTNode) error {
	if len(node.OrElse) > 0 {
		return newError(ErrUnsupportedStatement, node, "while ... else is not supported")
	}
	cond, err := t.conditionText(node.Children[0])
	if err != nil {
		return err
	}
	t.buf.Open("while " + cond)
	t.loopDepth++
	err = t.translateBlock(node.Body)
	t.loopDepth--
	if err != nil {
		return err
	}
	t.buf.Close()
	return nil
}

// translateFor emits a counting loop for `for name in range(...)`. Bounds
// that are not literals are copied into temporaries declared alongside the
// counter so they are evaluated once, as Python does.
//
// The target is the C loop counter only when it is unbound before the loop
// and never rebound inside it. Otherwise a hidden counter drives the loop
// and the target is assigned from it at the top of each iteration, so the
// target keeps its last value after the loop and rebinding it in the body
// does not change the iteration.
func (t *Translator) translateFor(node *ASTNode) error {
	target, iter := node.Children[0], node.Children[1]
	if len(node.OrElse) > 0 {
		return newError(ErrUnsupportedStatement, node, "for ... else is not supported")
	}
	if target.Kind != NodeName {
		return newError(ErrUnsupportedStatement, target, "for loop target must be a single name")
	}
	if name, ok := iter.CalleeName(); !ok || name != "range" {
		return newError(ErrUnsupportedIterable, iter, "only range() can be iterated over")
	}
	args := iter.Args()
	for _, pname := range iter.ParameterNames {
		if pname != "" {
			return newError(ErrUnsupportedIterable, iter, "range() does not take keyword arguments")
		}
	}
	if len(args) < 1 || len(args) > 3 {
		return newError(ErrUnsupportedIterable, iter, "range() takes 1 to 3 arguments, got %d", len(args))
	}

	texts := make([]string, len(args))
	for i, arg := range args {
		typ, err := t.infer.InferExpression(arg)
		if err != nil {
			return err
		}
		if typ != TypeInteger {
			return newError(ErrUnsupportedIterable, arg, "range() arguments must be Integer, got %s", typ)
		}
		if mentions(arg, target.String) {
			return newError(ErrUnsupportedIterable, arg, "range() arguments must not refer to the loop variable '%s'", target.String)
		}
		text, err := t.translateExpression(arg)
		if err != nil {
			return err
		}
		texts[i] = text
	}

	name := target.String
	outer := t.symbols.Lookup(name)
	if outer != nil && outer.Type != TypeInteger {
		return newError(ErrTypeConflict, target, "variable '%s' is %s, cannot assign Integer", name, outer.Type)
	}
	counter := name
	if outer != nil || assigns(node.Body, name) {
		counter = t.temporaryName(name + "_iter")
	}

	start, stop := "0", texts[0]
	stopNode := args[0]
	if len(args) >= 2 {
		start, stop = texts[0], texts[1]
		stopNode = args[1]
	}

	decls := []string{counter + " = " + start}
	if _, ok := constantInt(stopNode); !ok {
		tmp := t.temporaryName(name + "_stop")
		decls = append(decls, tmp+" = "+stop)
		stop = tmp
	}

	var cond, incr string
	step, stepKnown := int64(1), true
	if len(args) == 3 {
		step, stepKnown = constantInt(args[2])
	}
	switch {
	case stepKnown && step == 0:
		return newError(ErrUnsupportedIterable, args[2], "range() step must not be zero")
	case stepKnown && step == 1:
		cond, incr = fmt.Sprintf("%s < %s", counter, stop), counter+"++"
	case stepKnown && step == -1:
		cond, incr = fmt.Sprintf("%s > %s", counter, stop), counter+"--"
	case stepKnown && step > 0:
		cond, incr = fmt.Sprintf("%s < %s", counter, stop), counter+" += "+strconv.FormatInt(step, 10)
	case stepKnown:
		cond, incr = fmt.Sprintf("%s > %s", counter, stop), counter+" -= "+strconv.FormatInt(-step, 10)
	default:
		tmp := t.temporaryName(name + "_step")
		decls = append(decls, tmp+" = "+texts[2])
		cond = fmt.Sprintf("(%s > 0 ? %s < %s : %s > %s)", tmp, counter, stop, counter, stop)
		incr = counter + " += " + tmp
	}

	t.buf.Open(fmt.Sprintf("for (int %s; %s; %s)", strings.Join(decls, ", "), cond, incr))
	t.symbols.EnterScope()
	switch {
	case outer != nil:
		t.buf.Line(fmt.Sprintf("%s = %s;", name, counter))
	case counter != name:
		t.buf.Line(fmt.Sprintf("%s = %s;", declaration(TypeInteger, name), counter))
		fallthrough
	default:
		t.symbols.Declare(name, TypeInteger)
		t.symbols.MarkDeclared(name)
		t.log.Debug("declared loop counter", "name", name, "scope", t.symbols.Depth())
	}
	t.loopDepth++
	err := t.translateStatements(node.Body)
	t.loopDepth--
	t.symbols.ExitScope()
	if err != nil {
		return err
	}
	t.buf.Close()
	return nil
}

// temporaryName returns base, or base with a numeric suffix, such that it
// does not collide with a visible variable.
func (t *Translator) temporaryName(base string) string {
	name := base
	for i := 2; t.symbols.Lookup(name) != nil; i++ {
		name = base + strconv.Itoa(i)
	}
	return name
}

// assigns reports whether stmts rebind name, looking into nested blocks.
func assigns(stmts []*ASTNode, name string) bool {
	for _, stmt := range stmts {
		switch stmt.Kind {
		case NodeAssign:
			for _, target := range stmt.Children[:len(stmt.Children)-1] {
				if target.Kind == NodeName && target.String == name {
					return true
				}
			}
		case NodeAugAssign, NodeFor:
			if target := stmt.Children[0]; target.Kind == NodeName && target.String == name {
				return true
			}
		}
		if assigns(stmt.Body, name) || assigns(stmt.OrElse, name) {
			return true
		}
	}
	return false
}

// mentions reports whether node references the variable name.
func mentions(node *ASTNode, name string) bool {
	if node.Kind == NodeName && node.String == name {
		return true
	}
	for _, child := range node.Children {
		if mentions(child, name) {
			return true
		}
	}
	return false
}

func (t *Translator) translateExprStatement(node *ASTNode) error {
	value := node.Children[0]
	switch value.Kind {
	case NodeConstant:
		// Docstrings and other bare literals have no effect.
		if value.Const == ConstString {
			return nil
		}
	case NodeCall:
		name, ok := value.CalleeName()
		if !ok {
			return newError(ErrUnsupportedCall, value, "only calls of built-in names are supported")
		}
		b := lookupBuiltin(name)
		if b == nil {
			return newError(ErrUnsupportedCall, value, "call to unsupported function '%s'", name)
		}
		if b.result != nil {
			if _, err := t.infer.InferExpression(value); err != nil {
				return err
			}
		} else if b.translate == nil {
			return newError(b.valueErrKind, value, "%s", b.valueErr)
		}
		text, err := t.translateExpression(value)
		if err != nil {
			return err
		}
		t.buf.Line(text + ";")
		return nil
	}
	return newError(ErrUnsupportedStatement, node, "%s expression statements are not supported", value.Kind)
}
