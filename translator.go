package main

import "log/slog"

// Options controls the shape of the generated C.
type Options struct {
	// IndentWidth is the number of spaces per level; 0 means tabs.
	IndentWidth int
	Logger      *slog.Logger
}

// DefaultOptions returns four-space indentation and the default logger.
func DefaultOptions() Options {
	return Options{IndentWidth: 4}
}

// Translator holds the state of one translation run. It must not be
// reused; Translate creates a fresh one per tree.
type Translator struct {
	opts      Options
	symbols   *SymbolTable
	infer     *Inferrer
	buf       *EmissionBuffer
	features  FeatureSet
	loopDepth int
	log       *slog.Logger
}

func NewTranslator(opts Options) *Translator {
	symbols := NewSymbolTable()
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Translator{
		opts:     opts,
		symbols:  symbols,
		infer:    NewInferrer(symbols),
		buf:      NewEmissionBuffer(opts.IndentWidth, 1),
		features: make(FeatureSet),
		log:      logger,
	}
}

// Translate converts a Module tree into a complete C program. On error no
// text is returned.
func Translate(module *ASTNode, opts Options) (string, error) {
	return NewTranslator(opts).TranslateModule(module)
}

// TranslateModule runs the statement translator over the module body and
// assembles the program.
func (t *Translator) TranslateModule(module *ASTNode) (string, error) {
	if module == nil || module.Kind != NodeModule {
		return "", newError(ErrUnsupportedStatement, module, "expected a Module at the root of the tree")
	}
	if err := t.translateStatements(module.Children); err != nil {
		t.log.Debug("translation failed", "error", err)
		return "", err
	}
	out := Assemble(t.buf.String(), t.features, t.opts.IndentWidth)
	t.log.Debug("translation finished", "headers", t.features.Headers(), "bytes", len(out))
	return out, nil
}

// Features returns the features referenced so far.
func (t *Translator) Features() FeatureSet {
	return t.features
}
