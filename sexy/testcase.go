package sexy

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// InputType is the language of the input code fence of a test case.
type InputType string

const (
	InputTypePythonProgram InputType = "python-program"
	InputTypePythonJSON    InputType = "python-json"
)

// AssertionType is the language of an assertion code fence.
type AssertionType string

const (
	// AssertionTypeAST matches the parsed tree against an s-expression
	// pattern.
	AssertionTypeAST AssertionType = "ast"
	// AssertionTypeC compares the complete generated C program.
	AssertionTypeC AssertionType = "c"
	// AssertionTypeError expects the given text in the error of a failed
	// parse or translation.
	AssertionTypeError AssertionType = "error"
)

// Assertion represents a single assertion in a test case.
type Assertion struct {
	Type       AssertionType
	Content    string // raw fence content without the trailing newline
	ParsedSexy *Node  // only for AssertionTypeAST
	Line       int
}

// TestCase represents a complete test case extracted from Markdown.
type TestCase struct {
	Name       string // the heading text after "Test: "
	Input      string
	InputType  InputType
	Line       int
	Assertions []Assertion
}

// ExtractTestCases parses a Markdown document and extracts every test
// case. A test case starts at a heading "Test: <name>" and owns the fences
// up to the next such heading: exactly one input fence and at least one
// assertion fence.
func ExtractTestCases(markdownContent string) ([]TestCase, error) {
	source := []byte(markdownContent)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var testCases []TestCase
	var current *TestCase
	finish := func() error {
		if current == nil {
			return nil
		}
		if err := validateTestCase(current); err != nil {
			return err
		}
		testCases = append(testCases, *current)
		return nil
	}

	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			headingText := extractTextFromNode(n, source)
			name, ok := strings.CutPrefix(headingText, "Test: ")
			if !ok {
				return ast.WalkContinue, nil
			}
			if err := finish(); err != nil {
				return ast.WalkStop, err
			}
			current = &TestCase{Name: name, Line: getLineNumber(n, source)}

		case *ast.FencedCodeBlock:
			language := string(n.Language(source))
			content := strings.TrimRight(extractCodeBlockContent(n, source), "\n")
			lineNum := getLineNumber(n, source)

			if current == nil {
				if language == "" {
					// Plain code blocks are documentation.
					return ast.WalkContinue, nil
				}
				return ast.WalkStop, fmt.Errorf("line %d: %s fence found outside of test case", lineNum, language)
			}

			switch {
			case isInputFence(language):
				if current.InputType != "" {
					return ast.WalkStop, fmt.Errorf("line %d: multiple input fences found in test '%s'", lineNum, current.Name)
				}
				current.Input = content
				current.InputType = InputType(language)
			case isAssertionFence(language):
				assertion := Assertion{Type: AssertionType(language), Content: content, Line: lineNum}
				if assertion.Type == AssertionTypeAST {
					parsed, err := Parse(content)
					if err != nil {
						return ast.WalkStop, fmt.Errorf("line %d: failed to parse s-expression in test '%s': %w", lineNum, current.Name, err)
					}
					assertion.ParsedSexy = parsed
				}
				current.Assertions = append(current.Assertions, assertion)
			case language != "":
				return ast.WalkStop, fmt.Errorf("line %d: unknown fence language '%s' in test '%s'", lineNum, language, current.Name)
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking markdown AST: %w", err)
	}
	if err := finish(); err != nil {
		return nil, err
	}
	return testCases, nil
}

// extractTextFromNode extracts plain text content from a markdown node
func extractTextFromNode(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if text, ok := n.(*ast.Text); ok {
				buf.Write(text.Segment.Value(source))
			}
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

func extractCodeBlockContent(codeBlock *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	for i := 0; i < codeBlock.Lines().Len(); i++ {
		line := codeBlock.Lines().At(i)
		buf.Write(line.Value(source))
	}
	return buf.String()
}

func isInputFence(language string) bool {
	switch InputType(language) {
	case InputTypePythonProgram, InputTypePythonJSON:
		return true
	}
	return false
}

func isAssertionFence(language string) bool {
	switch AssertionType(language) {
	case AssertionTypeAST, AssertionTypeC, AssertionTypeError:
		return true
	}
	return false
}

func validateTestCase(testCase *TestCase) error {
	if testCase.InputType == "" {
		return fmt.Errorf("test '%s' has no input fence", testCase.Name)
	}
	if len(testCase.Assertions) == 0 {
		return fmt.Errorf("test '%s' has no assertion fences", testCase.Name)
	}
	return nil
}

// getLineNumber returns the 1-based line of the first line of node. For a
// fence this is its first content line.
func getLineNumber(node ast.Node, source []byte) int {
	if node.Lines().Len() == 0 {
		return 1
	}
	startPos := node.Lines().At(0).Start
	return bytes.Count(source[:min(startPos, len(source))], []byte("\n")) + 1
}
