package main

// InferredType is the static type assigned to an expression or variable.
type InferredType int

const (
	TypeUnknown InferredType = iota
	TypeBoolean
	TypeInteger
	TypeFloat
	TypeText
)

func (t InferredType) String() string {
	switch t {
	case TypeBoolean:
		return "Boolean"
	case TypeInteger:
		return "Integer"
	case TypeFloat:
		return "FloatingPoint"
	case TypeText:
		return "Text"
	default:
		return "Unknown"
	}
}

// IsNumeric reports whether t takes part in arithmetic.
func (t InferredType) IsNumeric() bool {
	return t == TypeBoolean || t == TypeInteger || t == TypeFloat
}

// IsIntegral reports whether t is Boolean or Integer.
func (t InferredType) IsIntegral() bool {
	return t == TypeBoolean || t == TypeInteger
}

// CType returns the C spelling used in declarations.
func (t InferredType) CType() string {
	switch t {
	case TypeBoolean:
		return "bool"
	case TypeInteger:
		return "int"
	case TypeFloat:
		return "double"
	case TypeText:
		return "const char *"
	default:
		return ""
	}
}

// FormatSpecifier returns the printf conversion for values of type t.
func (t InferredType) FormatSpecifier() string {
	switch t {
	case TypeInteger:
		return "%d"
	case TypeFloat:
		return "%g"
	case TypeText, TypeBoolean:
		return "%s"
	default:
		return ""
	}
}

// wider returns the wider of two numeric types, ordered
// Boolean < Integer < FloatingPoint.
func wider(a, b InferredType) InferredType {
	if a > b {
		return a
	}
	return b
}
