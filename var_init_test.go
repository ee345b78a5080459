package main

import (
	"testing"

	"github.com/nalgeon/be"
)

// Tests for variable declaration at first assignment

func TestBasicVariableInitialization(t *testing.T) {
	program := mustTranslate(t, "x = 42\nprint(x)\n")
	be.Equal(t, bodyOf(program), []string{
		"int x = 42;",
		`printf("%d\n", x);`,
	})
}

func TestVariableTypesFromInitializer(t *testing.T) {
	program := mustTranslate(t, `i = 1
f = 1.5
s = "text"
b = False
e = 1e3
`)
	be.Equal(t, bodyOf(program), []string{
		"int i = 1;",
		"double f = 1.5;",
		`const char *s = "text";`,
		"bool b = false;",
		"double e = 1000.0;",
	})
}

func TestVariableDeclaredOnce(t *testing.T) {
	program := mustTranslate(t, "x = 10\ny = 20\nx = x + y\nx = 0\n")
	be.Equal(t, bodyOf(program), []string{
		"int x = 10;",
		"int y = 20;",
		"x = (x + y);",
		"x = 0;",
	})
}

func TestVariableFromAnotherVariable(t *testing.T) {
	program := mustTranslate(t, "x = 2.5\ny = x\n")
	be.Equal(t, bodyOf(program), []string{
		"double x = 2.5;",
		"double y = x;",
	})
}

func TestVariableKeepsItsType(t *testing.T) {
	tests := []string{
		"x = 1\nx = 1.5\n",
		"x = 1.5\nx = 1\n",
		"x = True\nx = 1\n",
		"x = \"a\"\nx = 1\n",
	}

	for _, source := range tests {
		_, err := translatePython(t, source)
		be.Err(t, err, ErrTypeConflict)
	}
}

func TestVariableUsedBeforeAssignment(t *testing.T) {
	_, err := translatePython(t, "y = x + 1\nx = 1\n")
	be.Err(t, err, ErrUnknownIdentifier)
	be.Err(t, err, "name 'x' is not defined")
}

func TestVariableAssignmentForms(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"a = b = 1\n", "chained assignment is not supported"},
		{"a, b = 1, 2\n", "assignment to Tuple is not supported"},
		{"a = None\n", "None has no static type"},
		{"n = 1\nn.x = 2\n", "assignment to Attribute is not supported"},
		{"x += 1\n", "name 'x' is not defined"},
		{"x = 3000000000\n", "integer literal 3000000000 does not fit in a C int"},
		{"x = 1\nx = x * 0x80000000\n", "does not fit in a C int"},
	}

	for _, tt := range tests {
		_, err := translatePython(t, tt.source)
		be.Err(t, err, tt.want)
	}
}
