package main

import (
	"fmt"
	"strconv"
	"strings"
)

// builtin describes a recognised Python call and its C rendering.
type builtin struct {
	name     string
	minArgs  int
	maxArgs  int // -1 for variadic
	keywords []string

	// result infers the value type; nil for calls that have no value.
	result       func(node *ASTNode, args []InferredType) (InferredType, error)
	valueErrKind ErrorKind
	valueErr     string

	translate func(t *Translator, node *ASTNode) (string, error)
}

func (b *builtin) acceptsKeyword(name string) bool {
	for _, k := range b.keywords {
		if k == name {
			return true
		}
	}
	return false
}

func (b *builtin) arity() string {
	switch {
	case b.maxArgs < 0:
		return "at least " + strconv.Itoa(b.minArgs) + " arguments"
	case b.minArgs == b.maxArgs && b.minArgs == 1:
		return "exactly one argument"
	case b.minArgs == b.maxArgs:
		return "exactly " + strconv.Itoa(b.minArgs) + " arguments"
	}
	return strconv.Itoa(b.minArgs) + " to " + strconv.Itoa(b.maxArgs) + " arguments"
}

var builtins map[string]*builtin

func init() {
	builtins = map[string]*builtin{
		"print": {
			name: "print", minArgs: 0, maxArgs: -1, keywords: []string{"sep", "end"},
			valueErrKind: ErrUnsupportedExpression, valueErr: "print() does not produce a value",
			translate: translatePrint,
		},
		"range": {
			name: "range", minArgs: 1, maxArgs: 3,
			valueErrKind: ErrUnsupportedCall, valueErr: "range() is only supported as a for loop iterable",
		},
		"abs": {
			name: "abs", minArgs: 1, maxArgs: 1,
			result: func(node *ASTNode, args []InferredType) (InferredType, error) {
				if !args[0].IsNumeric() {
					return TypeUnknown, newError(ErrTypeConflict, node, "bad operand type for abs(): %s", args[0])
				}
				return wider(args[0], TypeInteger), nil
			},
			translate: translateAbs,
		},
		"int": {
			name: "int", minArgs: 1, maxArgs: 1,
			result:    numericConversion(TypeInteger),
			translate: castTo("int"),
		},
		"float": {
			name: "float", minArgs: 1, maxArgs: 1,
			result:    numericConversion(TypeFloat),
			translate: castTo("double"),
		},
		"len": {
			name: "len", minArgs: 1, maxArgs: 1,
			result: func(node *ASTNode, args []InferredType) (InferredType, error) {
				if args[0] != TypeText {
					return TypeUnknown, newError(ErrTypeConflict, node, "object of type %s has no len()", args[0])
				}
				return TypeInteger, nil
			},
			translate: translateLen,
		},
	}
}

func lookupBuiltin(name string) *builtin {
	return builtins[name]
}

func numericConversion(to InferredType) func(*ASTNode, []InferredType) (InferredType, error) {
	return func(node *ASTNode, args []InferredType) (InferredType, error) {
		if !args[0].IsNumeric() {
			return TypeUnknown, newError(ErrTypeConflict, node, "cannot convert %s to %s", args[0], to)
		}
		return to, nil
	}
}

func castTo(ctype string) func(*Translator, *ASTNode) (string, error) {
	return func(t *Translator, node *ASTNode) (string, error) {
		arg, err := t.translateExpression(node.Args()[0])
		if err != nil {
			return "", err
		}
		return "((" + ctype + ")" + arg + ")", nil
	}
}

func translateAbs(t *Translator, node *ASTNode) (string, error) {
	argNode := node.Args()[0]
	arg, err := t.translateExpression(argNode)
	if err != nil {
		return "", err
	}
	if argNode.Type == TypeFloat {
		t.features.Use(FeatureMath)
		return "fabs(" + arg + ")", nil
	}
	t.features.Use(FeatureStdlib)
	return "abs(" + arg + ")", nil
}

func translateLen(t *Translator, node *ASTNode) (string, error) {
	arg, err := t.translateExpression(node.Args()[0])
	if err != nil {
		return "", err
	}
	t.features.Use(FeatureString)
	return "((int)strlen(" + arg + "))", nil
}

// translatePrint maps print() to one printf call whose format string is
// built from the inferred type of each argument.
func translatePrint(t *Translator, node *ASTNode) (string, error) {
	b := lookupBuiltin("print")
	if _, err := t.infer.inferArgs(node, b); err != nil {
		return "", err
	}
	sep, err := printKeyword(node, "sep", " ")
	if err != nil {
		return "", err
	}
	end, err := printKeyword(node, "end", "\n")
	if err != nil {
		return "", err
	}

	var specs, values []string
	for i, arg := range node.Args() {
		if i < len(node.ParameterNames) && node.ParameterNames[i] != "" {
			continue
		}
		text, err := t.translateExpression(arg)
		if err != nil {
			return "", err
		}
		switch arg.Type {
		case TypeBoolean:
			text = "(" + text + " ? \"True\" : \"False\")"
		case TypeUnknown:
			return "", newError(ErrTypeConflict, arg, "cannot print a value of unknown type")
		}
		specs = append(specs, arg.Type.FormatSpecifier())
		values = append(values, text)
	}

	t.features.Use(FeaturePrint)
	t.log.Debug("built-in call", "name", "print", "args", len(values))
	format := quoteC(strings.Join(specs, escapeFormat(sep)) + escapeFormat(end))
	if len(values) == 0 {
		return "printf(" + format + ")", nil
	}
	return fmt.Sprintf("printf(%s, %s)", format, strings.Join(values, ", ")), nil
}

func printKeyword(node *ASTNode, name, def string) (string, error) {
	arg := node.Keyword(name)
	if arg == nil {
		return def, nil
	}
	if arg.Kind == NodeConstant && arg.Const == ConstNone {
		return def, nil
	}
	if arg.Kind != NodeConstant || arg.Const != ConstString {
		return "", newError(ErrUnsupportedCall, arg, "print() %s= must be a string literal", name)
	}
	return arg.String, nil
}
