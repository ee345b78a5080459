package main

import "strings"

// nodeInvalid stands in for a construct the parser could not read. It is
// only produced together with a diagnostic in l.Errors.
const nodeInvalid NodeKind = "Invalid"

// Statements that are recognised and skipped, then reported by the
// translator under their Python node name.
var opaqueStatements = map[TokenType]NodeKind{
	IMPORT:   "Import",
	FROM:     "ImportFrom",
	CLASS:    "ClassDef",
	TRY:      "Try",
	WITH:     "With",
	GLOBAL:   "Global",
	NONLOCAL: "Nonlocal",
	DEL:      "Delete",
	RAISE:    "Raise",
	ASSERT:   "Assert",
	ASYNC:    "Async",
}

var augmentedOperators = map[TokenType]string{
	PLUS_ASSIGN:      "+",
	MINUS_ASSIGN:     "-",
	ASTERISK_ASSIGN:  "*",
	POWER_ASSIGN:     "**",
	SLASH_ASSIGN:     "/",
	FLOOR_DIV_ASSIGN: "//",
	PERCENT_ASSIGN:   "%",
	BIT_AND_ASSIGN:   "&",
	BIT_OR_ASSIGN:    "|",
	XOR_ASSIGN:       "^",
	SHL_ASSIGN:       "<<",
	SHR_ASSIGN:       ">>",
}

// Parse parses a complete program. Lexing and parsing diagnostics are
// returned together as an *ErrorCollection.
func Parse(source string) (*ASTNode, error) {
	l := NewLexer([]byte(source))
	l.NextToken()
	module := ParseProgram(l)
	if l.Errors.HasErrors() {
		return nil, l.Errors
	}
	return module, nil
}

// ParseProgram parses statements until EOF and returns a Module node.
func ParseProgram(l *Lexer) *ASTNode {
	module := &ASTNode{Kind: NodeModule, Pos: Position{Line: 1, Column: 1}}
	for l.CurrTokenType != EOF {
		switch l.CurrTokenType {
		case NEWLINE, DEDENT:
			l.NextToken()
		case INDENT:
			l.Errors.Add(l.CurrPos, "unexpected indent")
			l.NextToken()
		default:
			module.Children = append(module.Children, ParseStatement(l))
		}
	}
	return module
}

func describeToken(l *Lexer) string {
	switch l.CurrTokenType {
	case NEWLINE:
		return "newline"
	case EOF:
		return "end of input"
	case INDENT:
		return "indent"
	case DEDENT:
		return "dedent"
	}
	return "'" + l.CurrLiteral + "'"
}

// expect consumes a token of type tt or records a diagnostic.
func expect(l *Lexer, tt TokenType, what string) bool {
	if l.CurrTokenType == tt {
		l.NextToken()
		return true
	}
	l.Errors.Add(l.CurrPos, "expected %s, got %s", what, describeToken(l))
	return false
}

func skipToLineEnd(l *Lexer) {
	for l.CurrTokenType != NEWLINE && l.CurrTokenType != EOF {
		l.NextToken()
	}
}

// ParseStatement parses one statement. A compound statement includes its
// blocks; a simple statement includes its terminating ';' or newline.
func ParseStatement(l *Lexer) *ASTNode {
	switch l.CurrTokenType {
	case IF:
		return parseIf(l)
	case WHILE:
		return parseWhile(l)
	case FOR:
		return parseFor(l)
	case DEF:
		return parseFunctionDef(l)
	case ELIF, ELSE, EXCEPT, FINALLY:
		pos := l.CurrPos
		l.Errors.Add(pos, "'%s' without a matching statement", l.CurrLiteral)
		skipToLineEnd(l)
		return &ASTNode{Kind: nodeInvalid, Pos: pos}
	}
	if kind, ok := opaqueStatements[l.CurrTokenType]; ok {
		return parseOpaqueStatement(l, kind)
	}

	stmt := parseSimpleStatement(l)
	endStatement(l)
	return stmt
}

func endStatement(l *Lexer) {
	switch l.CurrTokenType {
	case SEMICOLON:
		l.NextToken()
		if l.CurrTokenType == NEWLINE {
			l.NextToken()
		}
	case NEWLINE:
		l.NextToken()
	case EOF:
	default:
		l.Errors.Add(l.CurrPos, "expected end of statement, got %s", describeToken(l))
		skipToLineEnd(l)
		if l.CurrTokenType == NEWLINE {
			l.NextToken()
		}
	}
}

func parseSimpleStatement(l *Lexer) *ASTNode {
	pos := l.CurrPos
	switch l.CurrTokenType {
	case PASS:
		l.NextToken()
		return &ASTNode{Kind: NodePass, Pos: pos}
	case BREAK:
		l.NextToken()
		return &ASTNode{Kind: NodeBreak, Pos: pos}
	case CONTINUE:
		l.NextToken()
		return &ASTNode{Kind: NodeContinue, Pos: pos}
	case RETURN:
		l.NextToken()
		node := &ASTNode{Kind: NodeReturn, Pos: pos}
		if startsExpression(l.CurrTokenType) {
			node.Children = []*ASTNode{parseExpressionList(l)}
		}
		return node
	}

	expr := parseExpressionList(l)

	if op, ok := augmentedOperators[l.CurrTokenType]; ok {
		l.NextToken()
		value := parseExpressionList(l)
		return &ASTNode{Kind: NodeAugAssign, Pos: pos, Op: op, Children: []*ASTNode{expr, value}}
	}

	switch l.CurrTokenType {
	case ASSIGN:
		children := []*ASTNode{expr}
		for l.CurrTokenType == ASSIGN {
			l.NextToken()
			children = append(children, parseExpressionList(l))
		}
		return &ASTNode{Kind: NodeAssign, Pos: pos, Children: children}

	case COLON:
		// Annotated assignment: x: int = 5
		l.NextToken()
		children := []*ASTNode{expr, ParseExpression(l)}
		if l.CurrTokenType == ASSIGN {
			l.NextToken()
			children = append(children, parseExpressionList(l))
		}
		return &ASTNode{Kind: "AnnAssign", Pos: pos, Children: children}
	}

	return &ASTNode{Kind: NodeExpr, Pos: pos, Children: []*ASTNode{expr}}
}

// parseSuite parses the ':' and the block of a compound statement.
func parseSuite(l *Lexer) []*ASTNode {
	if !expect(l, COLON, "':'") {
		skipToLineEnd(l)
	}
	return parseBlock(l)
}

// parseBlock parses either an indented block or the simple statements
// following the colon on the same line.
func parseBlock(l *Lexer) []*ASTNode {
	if l.CurrTokenType != NEWLINE {
		return parseInlineBlock(l)
	}
	l.NextToken()
	if l.CurrTokenType != INDENT {
		l.Errors.Add(l.CurrPos, "expected an indented block")
		return nil
	}
	l.NextToken()

	var stmts []*ASTNode
	for l.CurrTokenType != DEDENT && l.CurrTokenType != EOF {
		switch l.CurrTokenType {
		case NEWLINE:
			l.NextToken()
		case INDENT:
			l.Errors.Add(l.CurrPos, "unexpected indent")
			l.NextToken()
		default:
			stmts = append(stmts, ParseStatement(l))
		}
	}
	if l.CurrTokenType == DEDENT {
		l.NextToken()
	}
	return stmts
}

func parseInlineBlock(l *Lexer) []*ASTNode {
	var stmts []*ASTNode
	for {
		stmts = append(stmts, parseSimpleStatement(l))
		if l.CurrTokenType != SEMICOLON {
			break
		}
		l.NextToken()
		if l.CurrTokenType == NEWLINE || l.CurrTokenType == EOF {
			break
		}
	}
	endStatement(l)
	return stmts
}

// parseIf parses "if" and, recursively, each "elif" as a nested If in the
// else branch.
func parseIf(l *Lexer) *ASTNode {
	node := &ASTNode{Kind: NodeIf, Pos: l.CurrPos}
	l.NextToken() // if or elif
	node.Children = []*ASTNode{ParseExpression(l)}
	node.Body = parseSuite(l)

	switch l.CurrTokenType {
	case ELIF:
		node.OrElse = []*ASTNode{parseIf(l)}
	case ELSE:
		l.NextToken()
		node.OrElse = parseSuite(l)
	}
	return node
}

func parseWhile(l *Lexer) *ASTNode {
	node := &ASTNode{Kind: NodeWhile, Pos: l.CurrPos}
	l.SkipToken(WHILE)
	node.Children = []*ASTNode{ParseExpression(l)}
	node.Body = parseSuite(l)
	if l.CurrTokenType == ELSE {
		l.NextToken()
		node.OrElse = parseSuite(l)
	}
	return node
}

func parseFor(l *Lexer) *ASTNode {
	node := &ASTNode{Kind: NodeFor, Pos: l.CurrPos}
	l.SkipToken(FOR)

	// Targets stop below comparisons so that "in" is not read as an operator.
	targetPos := l.CurrPos
	target := parseBinary(l, 1)
	if l.CurrTokenType == COMMA {
		elements := []*ASTNode{target}
		for l.CurrTokenType == COMMA {
			l.NextToken()
			if l.CurrTokenType == IN {
				break
			}
			elements = append(elements, parseBinary(l, 1))
		}
		target = &ASTNode{Kind: NodeTuple, Pos: targetPos, Children: elements}
	}

	if !expect(l, IN, "'in'") {
		skipToLineEnd(l)
		node.Children = []*ASTNode{target, {Kind: nodeInvalid, Pos: l.CurrPos}}
		node.Body = parseBlock(l)
		return node
	}
	iter := parseExpressionList(l)
	node.Children = []*ASTNode{target, iter}
	node.Body = parseSuite(l)
	if l.CurrTokenType == ELSE {
		l.NextToken()
		node.OrElse = parseSuite(l)
	}
	return node
}

// parseFunctionDef reads the signature only for the parameter names;
// annotations and defaults are skipped.
func parseFunctionDef(l *Lexer) *ASTNode {
	node := &ASTNode{Kind: NodeFunctionDef, Pos: l.CurrPos}
	l.SkipToken(DEF)
	if l.CurrTokenType == IDENT {
		node.String = l.CurrLiteral
		l.NextToken()
	} else {
		l.Errors.Add(l.CurrPos, "expected function name, got %s", describeToken(l))
	}

	if expect(l, LPAREN, "'('") {
		prev := TokenType(LPAREN)
		for depth := 1; depth > 0 && l.CurrTokenType != EOF; {
			switch l.CurrTokenType {
			case LPAREN, LBRACKET, LBRACE:
				depth++
			case RPAREN, RBRACKET, RBRACE:
				depth--
			case IDENT:
				if depth == 1 && (prev == LPAREN || prev == COMMA) {
					node.ParameterNames = append(node.ParameterNames, l.CurrLiteral)
				}
			}
			prev = l.CurrTokenType
			l.NextToken()
		}
	}
	if l.CurrTokenType == ARROW {
		l.NextToken()
		ParseExpression(l)
	}
	node.Body = parseSuite(l)
	return node
}

// parseOpaqueStatement skips a statement that is never translated,
// including any block it owns, and returns a childless node for it.
func parseOpaqueStatement(l *Lexer, kind NodeKind) *ASTNode {
	node := &ASTNode{Kind: kind, Pos: l.CurrPos}
	for {
		skipToLineEnd(l)
		if l.CurrTokenType == NEWLINE {
			l.NextToken()
		}
		if l.CurrTokenType == INDENT {
			skipBlock(l)
		}
		// Handlers of a try statement belong to it.
		if kind != "Try" {
			return node
		}
		switch l.CurrTokenType {
		case EXCEPT, ELSE, FINALLY:
			continue
		}
		return node
	}
}

func skipBlock(l *Lexer) {
	depth := 0
	for l.CurrTokenType != EOF {
		switch l.CurrTokenType {
		case INDENT:
			depth++
		case DEDENT:
			depth--
		}
		l.NextToken()
		if depth == 0 {
			return
		}
	}
}

func startsExpression(tt TokenType) bool {
	switch tt {
	case IDENT, INT, FLOAT, STRING, FSTRING, TRUE, FALSE, NONE,
		LPAREN, LBRACKET, LBRACE, MINUS, PLUS, TILDE, NOT, LAMBDA, AWAIT, YIELD:
		return true
	}
	return false
}

// parseExpressionList parses one expression, or a tuple when commas follow.
func parseExpressionList(l *Lexer) *ASTNode {
	pos := l.CurrPos
	first := ParseExpression(l)
	if l.CurrTokenType != COMMA {
		return first
	}
	elements := []*ASTNode{first}
	for l.CurrTokenType == COMMA {
		l.NextToken()
		if !startsExpression(l.CurrTokenType) {
			break
		}
		elements = append(elements, ParseExpression(l))
	}
	return &ASTNode{Kind: NodeTuple, Pos: pos, Children: elements}
}

// ParseExpression parses a full expression, including conditional
// expressions and lambdas.
func ParseExpression(l *Lexer) *ASTNode {
	pos := l.CurrPos
	if l.CurrTokenType == LAMBDA {
		l.NextToken()
		for l.CurrTokenType != COLON && l.CurrTokenType != NEWLINE && l.CurrTokenType != EOF {
			l.NextToken()
		}
		expect(l, COLON, "':'")
		return &ASTNode{Kind: "Lambda", Pos: pos, Children: []*ASTNode{ParseExpression(l)}}
	}

	expr := parseOr(l)
	switch l.CurrTokenType {
	case IF:
		l.NextToken()
		test := parseOr(l)
		expect(l, ELSE, "'else'")
		orelse := ParseExpression(l)
		return &ASTNode{Kind: NodeIfExp, Pos: pos, Children: []*ASTNode{test, expr, orelse}}
	case WALRUS:
		l.NextToken()
		value := ParseExpression(l)
		return &ASTNode{Kind: "NamedExpr", Pos: pos, Children: []*ASTNode{expr, value}}
	}
	return expr
}

func parseOr(l *Lexer) *ASTNode {
	pos := l.CurrPos
	left := parseAnd(l)
	if l.CurrTokenType != OR {
		return left
	}
	node := &ASTNode{Kind: NodeBoolOp, Pos: pos, Op: "or", Children: []*ASTNode{left}}
	for l.CurrTokenType == OR {
		l.NextToken()
		node.Children = append(node.Children, parseAnd(l))
	}
	return node
}

func parseAnd(l *Lexer) *ASTNode {
	pos := l.CurrPos
	left := parseNot(l)
	if l.CurrTokenType != AND {
		return left
	}
	node := &ASTNode{Kind: NodeBoolOp, Pos: pos, Op: "and", Children: []*ASTNode{left}}
	for l.CurrTokenType == AND {
		l.NextToken()
		node.Children = append(node.Children, parseNot(l))
	}
	return node
}

func parseNot(l *Lexer) *ASTNode {
	if l.CurrTokenType == NOT {
		pos := l.CurrPos
		l.NextToken()
		return &ASTNode{Kind: NodeUnaryOp, Pos: pos, Op: "not", Children: []*ASTNode{parseNot(l)}}
	}
	return parseComparison(l)
}

// comparisonOperator returns the operator at the current token, consuming
// the first word of the two-word forms "not in" and "is not".
func comparisonOperator(l *Lexer) (string, bool) {
	switch l.CurrTokenType {
	case LT, GT, EQ, NOT_EQ, LE, GE:
		return l.CurrLiteral, true
	case IN:
		return "in", true
	case IS:
		if l.PeekToken() == NOT {
			l.NextToken()
			return "is not", true
		}
		return "is", true
	case NOT:
		if l.PeekToken() == IN {
			l.NextToken()
			return "not in", true
		}
	}
	return "", false
}

func parseComparison(l *Lexer) *ASTNode {
	left := parseBinary(l, 1)
	op, ok := comparisonOperator(l)
	if !ok {
		return left
	}
	node := &ASTNode{Kind: NodeCompare, Pos: left.Pos, Children: []*ASTNode{left}}
	for ok {
		l.NextToken()
		node.Ops = append(node.Ops, op)
		node.Children = append(node.Children, parseBinary(l, 1))
		op, ok = comparisonOperator(l)
	}
	return node
}

// precedence returns the binding power of a binary arithmetic or bitwise
// operator, or 0 for other tokens.
func precedence(tokenType TokenType) int {
	switch tokenType {
	case BIT_OR:
		return 1
	case XOR:
		return 2
	case BIT_AND:
		return 3
	case SHL, SHR:
		return 4
	case PLUS, MINUS:
		return 5
	case ASTERISK, SLASH, FLOOR_DIV, PERCENT:
		return 6
	default:
		return 0
	}
}

// parseBinary implements precedence climbing over the left-associative
// binary operators.
func parseBinary(l *Lexer, minPrec int) *ASTNode {
	left := parseUnary(l)
	for {
		prec := precedence(l.CurrTokenType)
		if prec == 0 || prec < minPrec {
			return left
		}
		op := l.CurrLiteral
		l.NextToken()
		right := parseBinary(l, prec+1)
		left = &ASTNode{Kind: NodeBinOp, Pos: left.Pos, Op: op, Children: []*ASTNode{left, right}}
	}
}

func parseUnary(l *Lexer) *ASTNode {
	switch l.CurrTokenType {
	case MINUS, PLUS, TILDE:
		pos := l.CurrPos
		op := l.CurrLiteral
		l.NextToken()
		return &ASTNode{Kind: NodeUnaryOp, Pos: pos, Op: op, Children: []*ASTNode{parseUnary(l)}}
	}
	return parsePower(l)
}

// parsePower parses "**", which binds tighter than a unary operator on its
// left and is right-associative.
func parsePower(l *Lexer) *ASTNode {
	base := parsePostfix(l)
	if l.CurrTokenType != POWER {
		return base
	}
	l.NextToken()
	exponent := parseUnary(l)
	return &ASTNode{Kind: NodeBinOp, Pos: base.Pos, Op: "**", Children: []*ASTNode{base, exponent}}
}

func parsePostfix(l *Lexer) *ASTNode {
	node := parsePrimary(l)
	for {
		switch l.CurrTokenType {
		case LPAREN:
			node = parseCall(l, node)
		case DOT:
			l.NextToken()
			attr := &ASTNode{Kind: NodeAttribute, Pos: node.Pos, Children: []*ASTNode{node}}
			if l.CurrTokenType == IDENT {
				attr.String = l.CurrLiteral
				l.NextToken()
			} else {
				l.Errors.Add(l.CurrPos, "expected attribute name, got %s", describeToken(l))
			}
			node = attr
		case LBRACKET:
			node = parseSubscript(l, node)
		default:
			return node
		}
	}
}

func parseCall(l *Lexer, callee *ASTNode) *ASTNode {
	l.SkipToken(LPAREN)
	node := &ASTNode{Kind: NodeCall, Pos: callee.Pos, Children: []*ASTNode{callee}}

	for l.CurrTokenType != RPAREN && l.CurrTokenType != EOF {
		var paramName string
		var arg *ASTNode
		switch {
		case l.CurrTokenType == IDENT && l.PeekToken() == ASSIGN:
			paramName = l.CurrLiteral
			l.SkipToken(IDENT)
			l.SkipToken(ASSIGN)
			arg = ParseExpression(l)
		case l.CurrTokenType == ASTERISK || l.CurrTokenType == POWER:
			pos := l.CurrPos
			l.NextToken()
			arg = &ASTNode{Kind: "Starred", Pos: pos, Children: []*ASTNode{ParseExpression(l)}}
		default:
			arg = ParseExpression(l)
		}
		node.ParameterNames = append(node.ParameterNames, paramName)
		node.Children = append(node.Children, arg)

		if l.CurrTokenType == COMMA {
			l.NextToken()
		} else if l.CurrTokenType != RPAREN {
			break
		}
	}
	expect(l, RPAREN, "',' or ')'")
	return node
}

func parseSubscript(l *Lexer, value *ASTNode) *ASTNode {
	l.SkipToken(LBRACKET)
	node := &ASTNode{Kind: NodeSubscript, Pos: value.Pos, Children: []*ASTNode{value}}
	if l.CurrTokenType == COLON || !startsExpression(l.CurrTokenType) {
		node.Children = append(node.Children, &ASTNode{Kind: "Slice", Pos: l.CurrPos})
	} else {
		node.Children = append(node.Children, parseExpressionList(l))
	}
	if l.CurrTokenType == COLON {
		// Slices are only recognised, so their bounds are skipped.
		slice := &ASTNode{Kind: "Slice", Pos: l.CurrPos}
		for l.CurrTokenType != RBRACKET && l.CurrTokenType != NEWLINE && l.CurrTokenType != EOF {
			l.NextToken()
		}
		node.Children[1] = slice
	}
	expect(l, RBRACKET, "']'")
	return node
}

// parseStrings concatenates adjacent string literals. A sequence that
// contains an f-string becomes a JoinedStr.
func parseStrings(l *Lexer) *ASTNode {
	node := &ASTNode{Kind: NodeConstant, Const: ConstString, Pos: l.CurrPos}
	var sb strings.Builder
	for l.CurrTokenType == STRING || l.CurrTokenType == FSTRING {
		if l.CurrTokenType == FSTRING {
			node.Kind = NodeJoinedStr
			node.Const = ""
		}
		sb.WriteString(l.CurrLiteral)
		l.NextToken()
	}
	node.String = sb.String()
	return node
}

// parseSequence parses comma-separated elements up to the closing token.
// It also reports whether a comma and whether a "key: value" pair was seen.
func parseSequence(l *Lexer, closing TokenType, closingText string) ([]*ASTNode, bool, bool) {
	var elements []*ASTNode
	sawComma, sawColon := false, false
	for l.CurrTokenType != closing && l.CurrTokenType != EOF {
		elements = append(elements, ParseExpression(l))
		if l.CurrTokenType == COLON {
			sawColon = true
			l.NextToken()
			elements = append(elements, ParseExpression(l))
		}
		if l.CurrTokenType != COMMA {
			break
		}
		sawComma = true
		l.NextToken()
	}
	expect(l, closing, closingText)
	return elements, sawComma, sawColon
}

// parsePrimary handles primary expressions (literals, identifiers, parentheses)
func parsePrimary(l *Lexer) *ASTNode {
	pos := l.CurrPos
	switch l.CurrTokenType {
	case INT:
		node := &ASTNode{Kind: NodeConstant, Pos: pos, Const: ConstInt, Integer: l.CurrIntValue, String: l.CurrLiteral}
		l.SkipToken(INT)
		return node

	case FLOAT:
		node := &ASTNode{Kind: NodeConstant, Pos: pos, Const: ConstFloat, Float: l.CurrFloatValue, String: l.CurrLiteral}
		l.SkipToken(FLOAT)
		return node

	case STRING, FSTRING:
		return parseStrings(l)

	case TRUE, FALSE:
		node := &ASTNode{Kind: NodeConstant, Pos: pos, Const: ConstBool, Boolean: l.CurrTokenType == TRUE}
		l.NextToken()
		return node

	case NONE:
		l.SkipToken(NONE)
		return &ASTNode{Kind: NodeConstant, Pos: pos, Const: ConstNone}

	case IDENT:
		node := &ASTNode{Kind: NodeName, Pos: pos, String: l.CurrLiteral}
		l.SkipToken(IDENT)
		return node

	case LPAREN:
		l.SkipToken(LPAREN)
		if l.CurrTokenType == RPAREN {
			l.SkipToken(RPAREN)
			return &ASTNode{Kind: NodeTuple, Pos: pos}
		}
		expr := ParseExpression(l)
		if l.CurrTokenType == COMMA {
			l.NextToken()
			rest, _, _ := parseSequence(l, RPAREN, "')'")
			return &ASTNode{Kind: NodeTuple, Pos: pos, Children: append([]*ASTNode{expr}, rest...)}
		}
		expect(l, RPAREN, "')'")
		return expr

	case LBRACKET:
		l.SkipToken(LBRACKET)
		elements, _, _ := parseSequence(l, RBRACKET, "']'")
		return &ASTNode{Kind: NodeList, Pos: pos, Children: elements}

	case LBRACE:
		l.SkipToken(LBRACE)
		elements, _, isDict := parseSequence(l, RBRACE, "'}'")
		if isDict || len(elements) == 0 {
			return &ASTNode{Kind: NodeDict, Pos: pos, Children: elements}
		}
		return &ASTNode{Kind: "Set", Pos: pos, Children: elements}

	case YIELD, AWAIT:
		kind := NodeKind("Yield")
		if l.CurrTokenType == AWAIT {
			kind = "Await"
		}
		l.NextToken()
		node := &ASTNode{Kind: kind, Pos: pos}
		if startsExpression(l.CurrTokenType) {
			node.Children = []*ASTNode{ParseExpression(l)}
		}
		return node

	case ILLEGAL:
		// Already reported by the lexer.
		l.NextToken()
		return &ASTNode{Kind: nodeInvalid, Pos: pos}
	}

	l.Errors.Add(pos, "unexpected %s", describeToken(l))
	switch l.CurrTokenType {
	case NEWLINE, EOF, INDENT, DEDENT:
	default:
		l.NextToken()
	}
	return &ASTNode{Kind: nodeInvalid, Pos: pos}
}
