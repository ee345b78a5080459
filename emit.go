package main

import "strings"

// EmissionBuffer collects output lines at a tracked indentation depth.
// Blocks are only opened and closed through Open, Continue and Close, so
// braces always match the nesting of the source.
type EmissionBuffer struct {
	lines     []string
	depth     int
	baseDepth int
	indent    string
}

// NewEmissionBuffer creates a buffer whose first line is written at depth.
// An indentWidth of 0 indents with tabs.
func NewEmissionBuffer(indentWidth, depth int) *EmissionBuffer {
	indent := "\t"
	if indentWidth > 0 {
		indent = strings.Repeat(" ", indentWidth)
	}
	return &EmissionBuffer{depth: depth, baseDepth: depth, indent: indent}
}

func (b *EmissionBuffer) Depth() int {
	return b.depth
}

// Line appends one line at the current depth.
func (b *EmissionBuffer) Line(text string) {
	b.lines = append(b.lines, strings.Repeat(b.indent, b.depth)+text)
}

// Open writes "header {" and indents the following lines.
func (b *EmissionBuffer) Open(header string) {
	b.Line(header + " {")
	b.depth++
}

// Continue closes the current block and opens the next one on the same
// line, as in "} else {".
func (b *EmissionBuffer) Continue(header string) {
	b.dedent()
	b.Line("} " + header + " {")
	b.depth++
}

// Close ends the innermost block.
func (b *EmissionBuffer) Close() {
	b.dedent()
	b.Line("}")
}

func (b *EmissionBuffer) dedent() {
	if b.depth <= b.baseDepth {
		panic("EmissionBuffer: closing a block that was never opened")
	}
	b.depth--
}

// String joins the lines, each terminated by a newline.
func (b *EmissionBuffer) String() string {
	if len(b.lines) == 0 {
		return ""
	}
	return strings.Join(b.lines, "\n") + "\n"
}
