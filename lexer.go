package main

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// TokenType is the type of token (identifier, operator, literal, etc.).
type TokenType string

// Definition of token types
const (
	// Special tokens
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"
	NEWLINE = "NEWLINE"
	INDENT  = "INDENT"
	DEDENT  = "DEDENT"

	// Identifiers + literals
	IDENT   = "IDENT"  // main, foo, _bar
	INT     = "INT"    // 12345, 0x1f, 1_000
	FLOAT   = "FLOAT"  // 1.5, 1e3, .5
	STRING  = "STRING" // 'a', "a", """a""", r'a'
	FSTRING = "FSTRING"

	// Operators
	ASSIGN    = "="
	PLUS      = "+"
	MINUS     = "-"
	ASTERISK  = "*"
	POWER     = "**"
	SLASH     = "/"
	FLOOR_DIV = "//"
	PERCENT   = "%"
	BIT_AND   = "&"
	BIT_OR    = "|"
	XOR       = "^"
	TILDE     = "~"
	SHL       = "<<"
	SHR       = ">>"
	ARROW     = "->"
	WALRUS    = ":="

	PLUS_ASSIGN      = "+="
	MINUS_ASSIGN     = "-="
	ASTERISK_ASSIGN  = "*="
	POWER_ASSIGN     = "**="
	SLASH_ASSIGN     = "/="
	FLOOR_DIV_ASSIGN = "//="
	PERCENT_ASSIGN   = "%="
	BIT_AND_ASSIGN   = "&="
	BIT_OR_ASSIGN    = "|="
	XOR_ASSIGN       = "^="
	SHL_ASSIGN       = "<<="
	SHR_ASSIGN       = ">>="

	LT     = "<"
	GT     = ">"
	EQ     = "=="
	NOT_EQ = "!="
	LE     = "<="
	GE     = ">="

	// Delimiters
	COMMA     = ","
	SEMICOLON = ";"
	COLON     = ":"
	LPAREN    = "("
	RPAREN    = ")"
	LBRACE    = "{"
	RBRACE    = "}"
	LBRACKET  = "["
	RBRACKET  = "]"
	DOT       = "."

	// Keywords
	IF       = "IF"
	ELIF     = "ELIF"
	ELSE     = "ELSE"
	FOR      = "FOR"
	IN       = "IN"
	WHILE    = "WHILE"
	DEF      = "DEF"
	RETURN   = "RETURN"
	PASS     = "PASS"
	BREAK    = "BREAK"
	CONTINUE = "CONTINUE"
	AND      = "AND"
	OR       = "OR"
	NOT      = "NOT"
	IS       = "IS"
	TRUE     = "TRUE"
	FALSE    = "FALSE"
	NONE     = "NONE"
	LAMBDA   = "LAMBDA"

	// Statements that are recognised but never translated.
	IMPORT   = "IMPORT"
	FROM     = "FROM"
	CLASS    = "CLASS"
	TRY      = "TRY"
	EXCEPT   = "EXCEPT"
	FINALLY  = "FINALLY"
	WITH     = "WITH"
	GLOBAL   = "GLOBAL"
	NONLOCAL = "NONLOCAL"
	DEL      = "DEL"
	RAISE    = "RAISE"
	ASSERT   = "ASSERT"
	YIELD    = "YIELD"
	ASYNC    = "ASYNC"
	AWAIT    = "AWAIT"
)

var keywords = map[string]TokenType{
	"if":       IF,
	"elif":     ELIF,
	"else":     ELSE,
	"for":      FOR,
	"in":       IN,
	"while":    WHILE,
	"def":      DEF,
	"return":   RETURN,
	"pass":     PASS,
	"break":    BREAK,
	"continue": CONTINUE,
	"and":      AND,
	"or":       OR,
	"not":      NOT,
	"is":       IS,
	"True":     TRUE,
	"False":    FALSE,
	"None":     NONE,
	"lambda":   LAMBDA,
	"import":   IMPORT,
	"from":     FROM,
	"class":    CLASS,
	"try":      TRY,
	"except":   EXCEPT,
	"finally":  FINALLY,
	"with":     WITH,
	"global":   GLOBAL,
	"nonlocal": NONLOCAL,
	"del":      DEL,
	"raise":    RAISE,
	"assert":   ASSERT,
	"yield":    YIELD,
	"async":    ASYNC,
	"await":    AWAIT,
}

// Operators ordered longest first so that the first match wins.
var operators = []string{
	"**=", "//=", "<<=", ">>=",
	"**", "//", "<<", ">>", "<=", ">=", "==", "!=", "->", ":=",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"+", "-", "*", "/", "%", "&", "|", "^", "~", "<", ">", "=",
	",", ";", ":", "(", ")", "{", "}", "[", "]", ".",
}

// tabSize is the column multiple a tab advances indentation to.
const tabSize = 8

// Token is one lexed token, as returned by Tokenize.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// Lexer turns Python source into tokens, one NextToken call at a time. The
// current token is exposed through the Curr* fields.
type Lexer struct {
	input     []byte // NFC-normalised source, terminated by a 0 byte
	pos       int
	line      int
	lineStart int

	CurrTokenType  TokenType
	CurrLiteral    string
	CurrIntValue   int64   // only meaningful when CurrTokenType == INT
	CurrFloatValue float64 // only meaningful when CurrTokenType == FLOAT
	CurrPos        Position

	indents        []int
	altIndents     []int // indents measured with tabs as one column
	pendingDedents int
	parenDepth     int
	atLineStart    bool

	Errors *ErrorCollection
}

// NewLexer prepares source for lexing. The text is normalised to NFC and
// line endings to "\n"; a trailing 0 byte is optional.
func NewLexer(source []byte) *Lexer {
	if n := len(source); n > 0 && source[n-1] == 0 {
		source = source[:n-1]
	}
	text := norm.NFC.Bytes(source)
	text = []byte(strings.ReplaceAll(strings.ReplaceAll(string(text), "\r\n", "\n"), "\r", "\n"))
	text = append(text, 0)
	return &Lexer{
		input:       text,
		line:        1,
		indents:     []int{0},
		altIndents:  []int{0},
		atLineStart: true,
		Errors:      &ErrorCollection{},
	}
}

// Tokenize lexes the whole input, up to and including EOF.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		l.NextToken()
		tokens = append(tokens, Token{Type: l.CurrTokenType, Literal: l.CurrLiteral, Pos: l.CurrPos})
		if l.CurrTokenType == EOF {
			return tokens
		}
	}
}

func (l *Lexer) position() Position {
	return Position{Line: l.line, Column: l.pos - l.lineStart + 1}
}

func (l *Lexer) set(typ TokenType, literal string, pos Position) {
	l.CurrTokenType = typ
	l.CurrLiteral = literal
	l.CurrPos = pos
}

func (l *Lexer) newline() {
	l.pos++
	l.line++
	l.lineStart = l.pos
}

// NextToken scans the next token and stores it in the Curr* fields.
// Call repeatedly until CurrTokenType == EOF.
func (l *Lexer) NextToken() {
	l.CurrIntValue = 0
	l.CurrFloatValue = 0

	if l.pendingDedents > 0 {
		l.pendingDedents--
		l.set(DEDENT, "", l.position())
		return
	}
	if l.atLineStart && l.parenDepth == 0 {
		l.atLineStart = false
		if l.readIndentation() {
			return
		}
	}

	l.skipWhitespace()
	start := l.position()
	c := l.input[l.pos]

	switch {
	case c == 0:
		switch l.CurrTokenType {
		case NEWLINE, DEDENT, EOF, "":
		default:
			l.set(NEWLINE, "", start)
			return
		}
		switch {
		case len(l.indents) > 1:
			l.indents = l.indents[:len(l.indents)-1]
			l.altIndents = l.altIndents[:len(l.altIndents)-1]
			l.set(DEDENT, "", start)
		default:
			if l.parenDepth > 0 {
				l.Errors.Add(start, "unexpected end of input inside brackets")
				l.parenDepth = 0
			}
			l.set(EOF, "", start)
		}

	case c == '\n':
		l.newline()
		l.atLineStart = true
		l.set(NEWLINE, "", start)

	case c == '"' || c == '\'':
		l.readString(start, "")

	case isLetter(c):
		lit := l.readIdentifier()
		if isStringPrefix(lit) && (l.input[l.pos] == '"' || l.input[l.pos] == '\'') {
			l.readString(start, strings.ToLower(lit))
			return
		}
		if kw, ok := keywords[lit]; ok {
			l.set(kw, lit, start)
		} else {
			l.set(IDENT, lit, start)
		}

	case isDigit(c) || (c == '.' && isDigit(l.input[l.pos+1])):
		l.readNumber(start)

	default:
		for _, op := range operators {
			if l.hasPrefix(op) {
				l.pos += len(op)
				switch op {
				case "(", "[", "{":
					l.parenDepth++
				case ")", "]", "}":
					if l.parenDepth > 0 {
						l.parenDepth--
					}
				}
				l.set(TokenType(op), op, start)
				return
			}
		}
		_, size := utf8.DecodeRune(l.input[l.pos:])
		lit := string(l.input[l.pos : l.pos+size])
		l.pos += size
		l.Errors.Add(start, "invalid character %q", lit)
		l.set(ILLEGAL, lit, start)
	}
}

func (l *Lexer) hasPrefix(s string) bool {
	return strings.HasPrefix(string(l.input[l.pos:min(l.pos+len(s), len(l.input))]), s)
}

// readIndentation measures the indentation of the next logical line and
// emits INDENT or DEDENT when it changes. Blank and comment-only lines are
// skipped. It reports whether a token was emitted.
func (l *Lexer) readIndentation() bool {
	for {
		column, alt := 0, 0
	scan:
		for {
			switch l.input[l.pos] {
			case ' ':
				column++
				alt++
			case '\t':
				column = (column/tabSize + 1) * tabSize
				alt++
			case '\f':
				column, alt = 0, 0
			default:
				break scan
			}
			l.pos++
		}

		switch l.input[l.pos] {
		case '#':
			l.skipComment()
			fallthrough
		case '\n':
			if l.input[l.pos] == '\n' {
				l.newline()
				continue
			}
			return false
		case 0:
			return false
		}

		start := l.position()
		top := l.indents[len(l.indents)-1]
		altTop := l.altIndents[len(l.altIndents)-1]
		switch {
		case column > top:
			if alt <= altTop {
				l.Errors.Add(start, "inconsistent use of tabs and spaces in indentation")
			}
			l.indents = append(l.indents, column)
			l.altIndents = append(l.altIndents, alt)
			l.set(INDENT, "", start)
			return true
		case column < top:
			dedents := 0
			for len(l.indents) > 1 && l.indents[len(l.indents)-1] > column {
				l.indents = l.indents[:len(l.indents)-1]
				l.altIndents = l.altIndents[:len(l.altIndents)-1]
				dedents++
			}
			switch {
			case l.indents[len(l.indents)-1] != column:
				l.Errors.Add(start, "unindent does not match any outer indentation level")
			case l.altIndents[len(l.altIndents)-1] != alt:
				l.Errors.Add(start, "inconsistent use of tabs and spaces in indentation")
			}
			l.pendingDedents = dedents - 1
			l.set(DEDENT, "", start)
			return true
		}
		if alt != altTop {
			l.Errors.Add(start, "inconsistent use of tabs and spaces in indentation")
		}
		return false
	}
}

func (l *Lexer) skipComment() {
	for l.input[l.pos] != '\n' && l.input[l.pos] != 0 {
		l.pos++
	}
}

// skipWhitespace skips blanks, comments and explicit line joins; inside
// brackets newlines are skipped as well.
func (l *Lexer) skipWhitespace() {
	for {
		switch c := l.input[l.pos]; {
		case c == ' ' || c == '\t' || c == '\f':
			l.pos++
		case c == '#':
			l.skipComment()
		case c == '\\' && l.input[l.pos+1] == '\n':
			l.pos++
			l.newline()
		case c == '\n' && l.parenDepth > 0:
			l.newline()
		default:
			return
		}
	}
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_' || c >= 0x80
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isStringPrefix(s string) bool {
	switch strings.ToLower(s) {
	case "r", "u", "b", "f", "br", "rb", "fr", "rf":
		return true
	}
	return false
}

func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.input[l.pos]) || isDigit(l.input[l.pos]) {
		l.pos++
	}
	return string(l.input[start:l.pos])
}

func (l *Lexer) readNumber(start Position) {
	begin := l.pos
	isFloat := false

	if l.input[l.pos] == '0' && strings.ContainsRune("xXoObB", rune(l.input[l.pos+1])) {
		l.pos += 2
		for isLetter(l.input[l.pos]) || isDigit(l.input[l.pos]) {
			l.pos++
		}
	} else {
		l.skipDigits()
		if l.input[l.pos] == '.' {
			isFloat = true
			l.pos++
			l.skipDigits()
		}
		if c := l.input[l.pos]; c == 'e' || c == 'E' {
			next := l.input[l.pos+1]
			if isDigit(next) || ((next == '+' || next == '-') && isDigit(l.input[l.pos+2])) {
				isFloat = true
				l.pos += 2
				l.skipDigits()
			}
		}
	}

	lit := string(l.input[begin:l.pos])
	if c := l.input[l.pos]; c == 'j' || c == 'J' {
		l.pos++
		l.Errors.Add(start, "complex literal %sj is not supported", lit)
		l.set(ILLEGAL, lit+"j", start)
		return
	}
	if isLetter(l.input[l.pos]) {
		l.Errors.Add(start, "invalid decimal literal %q", lit+l.readIdentifier())
		l.set(ILLEGAL, lit, start)
		return
	}

	digits := strings.ReplaceAll(lit, "_", "")
	if strings.Contains(lit, "__") || strings.HasSuffix(lit, "_") {
		l.Errors.Add(start, "invalid number literal %q", lit)
	}

	if isFloat {
		val, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			l.Errors.Add(start, "invalid float literal %q", lit)
		}
		l.set(FLOAT, lit, start)
		l.CurrFloatValue = val
		return
	}

	base := 10
	if len(digits) > 1 && digits[0] == '0' {
		if isDigit(digits[1]) {
			if strings.Trim(digits, "0") != "" {
				l.Errors.Add(start, "leading zeros in decimal integer literals are not permitted")
			}
		} else {
			base = 0
		}
	}
	val, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			l.Errors.Add(start, "integer literal %s is too large", lit)
		} else {
			l.Errors.Add(start, "invalid integer literal %q", lit)
		}
	}
	l.set(INT, lit, start)
	l.CurrIntValue = val
}

func (l *Lexer) skipDigits() {
	for isDigit(l.input[l.pos]) || (l.input[l.pos] == '_' && isDigit(l.input[l.pos+1])) {
		l.pos++
	}
}

// readString reads a quoted literal starting at the current quote. The
// decoded value becomes CurrLiteral, except for f-strings, whose raw text
// is kept.
func (l *Lexer) readString(start Position, prefix string) {
	quote := l.input[l.pos]
	triple := l.input[l.pos+1] == quote && l.input[l.pos+2] == quote
	if triple {
		l.pos += 3
	} else {
		l.pos++
	}
	raw := strings.Contains(prefix, "r")
	contentStart := l.pos

	var sb strings.Builder
	for {
		c := l.input[l.pos]
		switch {
		case c == 0:
			l.Errors.Add(start, "unterminated string literal")
			l.set(ILLEGAL, string(l.input[contentStart:l.pos]), start)
			return
		case c == '\n' && !triple:
			l.Errors.Add(start, "unterminated string literal")
			l.set(ILLEGAL, string(l.input[contentStart:l.pos]), start)
			return
		case c == quote && (!triple || (l.input[l.pos+1] == quote && l.input[l.pos+2] == quote)):
			rawText := string(l.input[contentStart:l.pos])
			if triple {
				l.pos += 3
			} else {
				l.pos++
			}
			switch {
			case strings.Contains(prefix, "b"):
				l.Errors.Add(start, "bytes literals are not supported")
				l.set(ILLEGAL, rawText, start)
			case strings.Contains(prefix, "f"):
				l.set(FSTRING, rawText, start)
			default:
				l.set(STRING, sb.String(), start)
			}
			return
		case c == '\n':
			sb.WriteByte(c)
			l.newline()
		case c == '\\' && raw:
			sb.WriteByte(c)
			l.pos++
			if next := l.input[l.pos]; next == quote || next == '\\' {
				sb.WriteByte(next)
				l.pos++
			}
		case c == '\\':
			l.readEscape(&sb)
		default:
			sb.WriteByte(c)
			l.pos++
		}
	}
}

var simpleEscapes = map[byte]byte{
	'\\': '\\', '\'': '\'', '"': '"',
	'a': '\a', 'b': '\b', 'f': '\f', 'n': '\n', 'r': '\r', 't': '\t', 'v': '\v',
}

func (l *Lexer) readEscape(sb *strings.Builder) {
	escPos := l.position()
	l.pos++ // skip backslash
	c := l.input[l.pos]

	if v, ok := simpleEscapes[c]; ok {
		sb.WriteByte(v)
		l.pos++
		return
	}
	switch {
	case c == '\n':
		l.newline()
	case '0' <= c && c <= '7':
		val := 0
		for i := 0; i < 3 && '0' <= l.input[l.pos] && l.input[l.pos] <= '7'; i++ {
			val = val*8 + int(l.input[l.pos]-'0')
			l.pos++
		}
		sb.WriteRune(rune(val))
	case c == 'x' || c == 'u' || c == 'U':
		width := map[byte]int{'x': 2, 'u': 4, 'U': 8}[c]
		l.pos++
		hex := string(l.input[l.pos:min(l.pos+width, len(l.input)-1)])
		val, err := strconv.ParseUint(hex, 16, 32)
		if len(hex) != width || err != nil || !utf8.ValidRune(rune(val)) {
			l.Errors.Add(escPos, "invalid \\%c escape", c)
			return
		}
		l.pos += width
		sb.WriteRune(rune(val))
	case c == 'N':
		l.Errors.Add(escPos, "\\N{...} escapes are not supported")
		l.pos++
	default:
		// Unknown escapes are kept verbatim.
		sb.WriteByte('\\')
	}
}

// PeekToken returns the next token type without advancing the lexer.
// Useful for lookahead parsing decisions.
func (l *Lexer) PeekToken() TokenType {
	saved := *l
	savedIndents := append([]int(nil), l.indents...)
	savedAltIndents := append([]int(nil), l.altIndents...)
	savedErrors := l.Errors.Count()

	l.NextToken()
	nextType := l.CurrTokenType

	*l = saved
	l.indents = savedIndents
	l.altIndents = savedAltIndents
	l.Errors.truncate(savedErrors)
	return nextType
}

// SkipToken advances past the current token, asserting it matches the expected type.
//
// Panics if the current token doesn't match the expected type.
func (l *Lexer) SkipToken(expectedType TokenType) {
	if l.CurrTokenType != expectedType {
		panic("Expected token " + string(expectedType) + " but got " + string(l.CurrTokenType))
	}
	l.NextToken()
}
