package main

import (
	"sort"
	"strings"
)

// Feature is a C library facility the translated program relies on.
type Feature string

const (
	FeaturePrint  Feature = "print"
	FeatureBool   Feature = "bool"
	FeatureString Feature = "string"
	FeatureMath   Feature = "math"
	FeatureStdlib Feature = "stdlib"
)

var featureHeaders = map[Feature]string{
	FeaturePrint:  "stdio.h",
	FeatureBool:   "stdbool.h",
	FeatureString: "string.h",
	FeatureMath:   "math.h",
	FeatureStdlib: "stdlib.h",
}

// FeatureSet records which features a translation referenced.
type FeatureSet map[Feature]bool

func (fs FeatureSet) Use(f Feature) {
	fs[f] = true
}

// Headers returns the sorted include list for the used features.
func (fs FeatureSet) Headers() []string {
	var headers []string
	for f := range fs {
		if h, ok := featureHeaders[f]; ok {
			headers = append(headers, h)
		}
	}
	sort.Strings(headers)
	return headers
}

// Assemble wraps an already indented body in a main function and prefixes
// the includes needed by features.
func Assemble(body string, features FeatureSet, indentWidth int) string {
	indent := "\t"
	if indentWidth > 0 {
		indent = strings.Repeat(" ", indentWidth)
	}

	var sb strings.Builder
	headers := features.Headers()
	for _, h := range headers {
		sb.WriteString("#include <" + h + ">\n")
	}
	if len(headers) > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString("int main(void) {\n")
	sb.WriteString(body)
	sb.WriteString(indent + "return 0;\n")
	sb.WriteString("}\n")
	return sb.String()
}
