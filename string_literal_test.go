package main

import (
	"math"
	"strconv"
	"testing"

	"github.com/nalgeon/be"
)

func TestQuoteC(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", `""`},
		{"hello", `"hello"`},
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"a\nb\tc\rd", `"a\nb\tc\rd"`},
		{"\x01", `"\001"`},
		{"\x00" + "7", `"\0007"`},
		{"\x1b[0m", `"\033[0m"`},
		{"\x7f", `"\177"`},
		{"olá", "\"olá\""},
		{"100%", `"100%"`},
	}

	for _, test := range tests {
		be.Equal(t, quoteC(test.input), test.expected)
	}
}

func TestQuoteCRoundTrip(t *testing.T) {
	// C and Go agree on the escapes quoteC produces.
	inputs := []string{"plain", "tab\there", "quote\"and\\slash", "bell\a", "nul\x00byte", "ünïcödé"}
	for _, input := range inputs {
		decoded, err := strconv.Unquote(quoteC(input))
		be.Err(t, err, nil)
		be.Equal(t, decoded, input)
	}
}

func TestEscapeFormat(t *testing.T) {
	be.Equal(t, escapeFormat("50%"), "50%%")
	be.Equal(t, escapeFormat("%d%%"), "%%d%%%%")
	be.Equal(t, escapeFormat("none"), "none")
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{1.5, "1.5"},
		{2, "2.0"},
		{0, "0.0"},
		{0.1, "0.1"},
		{1e21, "1e+21"},
		{1.5e-7, "1.5e-07"},
		{1234567, "1.234567e+06"},
	}

	for _, test := range tests {
		text, err := formatFloat(test.input)
		be.Err(t, err, nil)
		be.Equal(t, text, test.expected)
	}
}

func TestFormatFloatNotFinite(t *testing.T) {
	_, err := formatFloat(math.Inf(1))
	be.Err(t, err, "has no C literal")
	_, err = formatFloat(math.NaN())
	be.Err(t, err, "has no C literal")
}

func TestFloatLiteralOverflow(t *testing.T) {
	_, err := Parse("x = 1e999\n")
	be.Err(t, err, `invalid float literal "1e999"`)

	// A decoded JSON tree can still carry an infinite constant.
	module := &ASTNode{Kind: NodeModule, Children: []*ASTNode{{
		Kind:     NodeAssign,
		Children: []*ASTNode{nameNode("x"), floatConst(math.Inf(1))},
	}}}
	_, err = Translate(module, Options{Logger: discardLogger()})
	be.Err(t, err, ErrUnsupportedExpression)
	be.Err(t, err, "+Inf has no C literal")
}

func TestStringLiteralTranslation(t *testing.T) {
	program := mustTranslate(t, `s = 'it\'s'
t = "tab\tand\nnewline"
u = r"\d+"
v = """multi
line"""
`)
	be.Equal(t, bodyOf(program), []string{
		`const char *s = "it's";`,
		`const char *t = "tab\tand\nnewline";`,
		`const char *u = "\\d+";`,
		`const char *v = "multi\nline";`,
	})
}

func TestPrintEscapesPercentInSeparators(t *testing.T) {
	body := bodyOf(mustTranslate(t, "print(1, 2, sep=\"%\", end=\"%\\n\")\n"))
	be.Equal(t, body, []string{`printf("%d%%%d%%\n", 1, 2);`})
}

func TestPrintKeywords(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"print()\n", `printf("\n");`},
		{"print(end=\"\")\n", `printf("");`},
		{"print(1, 2, sep=\", \")\n", `printf("%d, %d\n", 1, 2);`},
		{"print(\"a\", end=None)\n", `printf("%s\n", "a");`},
		{"print(1.5, \"x\")\n", `printf("%g %s\n", 1.5, "x");`},
	}

	for _, tt := range tests {
		body := bodyOf(mustTranslate(t, tt.source))
		be.Equal(t, body, []string{tt.want})
	}
}

func TestPrintKeywordErrors(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"s = \",\"\nprint(1, sep=s)\n", "print() sep= must be a string literal"},
		{"print(1, file=None)\n", "unsupported keyword argument 'file'"},
	}

	for _, tt := range tests {
		_, err := translatePython(t, tt.source)
		be.Err(t, err, ErrUnsupportedCall)
		be.Err(t, err, tt.want)
	}
}
