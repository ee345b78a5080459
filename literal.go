package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// quoteC renders s as a C string literal. Control bytes use 3-digit octal
// escapes, which cannot swallow a following digit the way \x escapes do.
func quoteC(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			if c < 0x20 || c == 0x7f {
				fmt.Fprintf(&sb, `\%03o`, c)
			} else {
				sb.WriteByte(c)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// escapeFormat makes s safe to embed in a printf format string.
func escapeFormat(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}

// formatFloat returns the shortest text that reads back as v and is still
// a floating literal in C.
func formatFloat(v float64) (string, error) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "", fmt.Errorf("%v has no C literal", v)
	}
	text := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(text, ".e") {
		text += ".0"
	}
	return text, nil
}

// constantInt returns the value of an integer literal, including a
// negated one.
func constantInt(node *ASTNode) (int64, bool) {
	switch node.Kind {
	case NodeConstant:
		if node.Const == ConstInt {
			return node.Integer, true
		}
	case NodeUnaryOp:
		if v, ok := constantInt(node.Children[0]); ok {
			switch node.Op {
			case "-":
				return -v, true
			case "+":
				return v, true
			}
		}
	}
	return 0, false
}

func (t *Translator) translateConstant(node *ASTNode) (string, error) {
	switch node.Const {
	case ConstInt:
		return strconv.FormatInt(node.Integer, 10), nil
	case ConstFloat:
		text, err := formatFloat(node.Float)
		if err != nil {
			return "", newError(ErrUnsupportedExpression, node, "%v", err)
		}
		return text, nil
	case ConstString:
		return quoteC(node.String), nil
	case ConstBool:
		t.features.Use(FeatureBool)
		if node.Boolean {
			return "true", nil
		}
		return "false", nil
	}
	return "", newError(ErrUnsupportedExpression, node, "None has no C equivalent")
}
