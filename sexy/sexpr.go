package sexy

import (
	"fmt"
	"strconv"
	"strings"
)

// NodeType represents the type of a Node
type NodeType int

const (
	NodeSymbol NodeType = iota
	NodeString
	NodeInteger
	NodeEllipsis
	NodeList
)

// Node is one s-expression datum.
type Node struct {
	Type NodeType

	// NodeSymbol, NodeInteger: source text. NodeString: decoded value.
	Text string

	// NodeList
	Items []*Node
}

func (n *Node) String() string {
	switch n.Type {
	case NodeSymbol, NodeInteger:
		return n.Text
	case NodeString:
		return strconv.Quote(n.Text)
	case NodeEllipsis:
		return "..."
	case NodeList:
		parts := make([]string, len(n.Items))
		for i, item := range n.Items {
			parts[i] = item.String()
		}
		return "(" + strings.Join(parts, " ") + ")"
	}
	return fmt.Sprintf("UNKNOWN_NODE_TYPE_%d", n.Type)
}

func NewSymbol(name string) *Node {
	return &Node{Type: NodeSymbol, Text: name}
}

func NewString(value string) *Node {
	return &Node{Type: NodeString, Text: value}
}

func NewInteger(text string) *Node {
	return &Node{Type: NodeInteger, Text: text}
}

func NewEllipsis() *Node {
	return &Node{Type: NodeEllipsis}
}

func NewList(items ...*Node) *Node {
	return &Node{Type: NodeList, Items: items}
}

// IsAtom checks if the node is an atomic value
func (n *Node) IsAtom() bool {
	return n.Type != NodeList
}

// Match reports whether value has the shape of pattern. Inside a pattern
// list, "..." matches any run of items, including an empty one.
func Match(pattern, value *Node) bool {
	if pattern.Type == NodeEllipsis {
		return true
	}
	if pattern.Type != value.Type {
		return false
	}
	if pattern.Type != NodeList {
		return pattern.Text == value.Text
	}
	return matchItems(pattern.Items, value.Items)
}

func matchItems(patterns, values []*Node) bool {
	if len(patterns) == 0 {
		return len(values) == 0
	}
	if patterns[0].Type == NodeEllipsis {
		for skip := 0; skip <= len(values); skip++ {
			if matchItems(patterns[1:], values[skip:]) {
				return true
			}
		}
		return false
	}
	if len(values) == 0 || !Match(patterns[0], values[0]) {
		return false
	}
	return matchItems(patterns[1:], values[1:])
}

type parser struct {
	lexer        *lexer
	currentToken token
}

// Parse parses the entire input and returns the top-level datum
func Parse(input string) (*Node, error) {
	p := &parser{lexer: &lexer{input: input}}
	if err := p.nextToken(); err != nil {
		return nil, err
	}

	result, err := p.parseDatum()
	if err != nil {
		return nil, err
	}
	if p.currentToken.Type != tokenEOF {
		return nil, fmt.Errorf("offset %d: expected EOF but got %s", p.currentToken.Position, p.currentToken.Type)
	}
	return result, nil
}

func (p *parser) nextToken() error {
	tok, err := p.lexer.nextToken()
	if err != nil {
		return err
	}
	p.currentToken = tok
	return nil
}

func (p *parser) parseDatum() (*Node, error) {
	tok := p.currentToken
	var node *Node
	switch tok.Type {
	case tokenSymbol:
		node = NewSymbol(tok.Value)
	case tokenString:
		node = NewString(tok.Value)
	case tokenInteger:
		node = NewInteger(tok.Value)
	case tokenEllipsis:
		node = NewEllipsis()
	case tokenLParen:
		return p.parseList()
	default:
		return nil, fmt.Errorf("offset %d: unexpected token: %s", tok.Position, tok.Type)
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *parser) parseList() (*Node, error) {
	list := NewList()
	if err := p.nextToken(); err != nil { // consume '('
		return nil, err
	}
	for p.currentToken.Type != tokenRParen && p.currentToken.Type != tokenEOF {
		item, err := p.parseDatum()
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, item)
	}
	if p.currentToken.Type != tokenRParen {
		return nil, fmt.Errorf("offset %d: expected ')' but got %s", p.currentToken.Position, p.currentToken.Type)
	}
	if err := p.nextToken(); err != nil { // consume ')'
		return nil, err
	}
	return list, nil
}

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenSymbol
	tokenString
	tokenInteger
	tokenEllipsis
	tokenLParen
	tokenRParen
)

func (t tokenType) String() string {
	switch t {
	case tokenEOF:
		return "EOF"
	case tokenSymbol:
		return "symbol"
	case tokenString:
		return "string"
	case tokenInteger:
		return "integer"
	case tokenEllipsis:
		return "ellipsis"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	default:
		return fmt.Sprintf("unknown token %d", int(t))
	}
}

type token struct {
	Type     tokenType
	Value    string
	Position int
}

type lexer struct {
	input    string
	position int
}

func (l *lexer) peek(offset int) byte {
	if l.position+offset >= len(l.input) {
		return 0
	}
	return l.input[l.position+offset]
}

func (l *lexer) nextToken() (token, error) {
	for {
		for isSpace(l.peek(0)) {
			l.position++
		}
		start := l.position
		c := l.peek(0)

		switch {
		case l.position >= len(l.input):
			return token{Type: tokenEOF, Position: start}, nil
		case c == ';':
			for l.peek(0) != '\n' && l.position < len(l.input) {
				l.position++
			}
			continue
		case c == '(':
			l.position++
			return token{Type: tokenLParen, Value: "(", Position: start}, nil
		case c == ')':
			l.position++
			return token{Type: tokenRParen, Value: ")", Position: start}, nil
		case c == '"':
			value, err := l.readString()
			if err != nil {
				return token{}, fmt.Errorf("offset %d: %w", start, err)
			}
			return token{Type: tokenString, Value: value, Position: start}, nil
		case c == '.' && l.peek(1) == '.' && l.peek(2) == '.':
			l.position += 3
			return token{Type: tokenEllipsis, Value: "...", Position: start}, nil
		case isDigit(c) || ((c == '-' || c == '+') && isDigit(l.peek(1))):
			l.position++
			for isDigit(l.peek(0)) {
				l.position++
			}
			return token{Type: tokenInteger, Value: l.input[start:l.position], Position: start}, nil
		case isSymbolChar(c):
			for isSymbolChar(l.peek(0)) {
				l.position++
			}
			return token{Type: tokenSymbol, Value: l.input[start:l.position], Position: start}, nil
		}
		return token{}, fmt.Errorf("offset %d: unexpected character %q", start, c)
	}
}

// readString reads a Go-syntax quoted string, the form strconv.Quote
// produces.
func (l *lexer) readString() (string, error) {
	start := l.position
	l.position++ // skip opening quote
	for {
		switch l.peek(0) {
		case 0, '\n':
			if l.position >= len(l.input) || l.peek(0) == '\n' {
				return "", fmt.Errorf("unterminated string")
			}
		case '\\':
			l.position++
		case '"':
			l.position++
			value, err := strconv.Unquote(l.input[start:l.position])
			if err != nil {
				return "", fmt.Errorf("invalid string %s: %w", l.input[start:l.position], err)
			}
			return value, nil
		}
		l.position++
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isSymbolChar(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || isDigit(c) || c == '-' || c == '_' || c >= 0x80
}
