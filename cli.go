package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// errReported is returned by a command that has already printed its
// diagnostics.
var errReported = errors.New("errors reported")

// cli carries the state shared by the pytoc commands of one invocation.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	envFile string
	indent  string
	verbose bool
	noColor bool

	cfg    Config
	logger *slog.Logger
}

func newRootCommand(c *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pytoc",
		Short: "pytoc translates a subset of Python into C",
		Long: `pytoc translates programs written in a small, statically typed subset of
Python (integers, floats, booleans, strings, if/while/for-range and
print) into a single self-contained C translation unit.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.configure()
		},
	}
	rootCmd.SetIn(c.stdin)
	rootCmd.SetOut(c.stdout)
	rootCmd.SetErr(c.stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.envFile, "env", "", "Path to a .env file (default .env)")
	flags.StringVar(&c.indent, "indent", "", "Spaces per indentation level of the generated C, or \"tab\" (default PYTOC_INDENT or 4)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Show verbose translation details")
	flags.BoolVar(&c.noColor, "no-color", false, "Disable coloured diagnostics")

	rootCmd.AddCommand(c.runCommand(), c.buildCommand(), c.evalCommand(), c.checkCommand(), c.astCommand())
	return rootCmd
}

// configure loads the configuration and applies the global flags.
func (c *cli) configure() error {
	cfg, err := LoadConfig(c.envFile)
	if err != nil {
		return err
	}
	if c.indent != "" {
		width, err := parseIndent(c.indent)
		if err != nil {
			return fmt.Errorf("--indent: %w", err)
		}
		cfg.IndentWidth = width
	}
	if c.verbose {
		cfg.LogLevel = slog.LevelDebug
	}
	if c.noColor {
		cfg.Color = false
	}
	color.NoColor = !cfg.Color
	c.cfg = cfg
	c.logger = NewLogger(c.stderr, cfg.LogLevel)
	return nil
}

func (c *cli) runCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "run [--json] <file>",
		Short: "Translate a Python file, compile the C and execute it",
		Long: `Translate a Python file, compile the generated C with the compiler named by
PYTOC_CC (default cc) and execute the program.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			code, err := c.translateFile(filename, asJSON)
			if err != nil {
				return c.report(filename, err)
			}

			dir, err := os.MkdirTemp("", "pytoc-run-")
			if err != nil {
				return err
			}
			defer os.RemoveAll(dir)
			source := filepath.Join(dir, "main.c")
			binary := filepath.Join(dir, "main")
			if err := os.WriteFile(source, []byte(code), 0644); err != nil {
				return err
			}

			c.logger.Debug("compiling", "cc", c.cfg.CC, "source", source)
			compile := exec.Command(c.cfg.CC, "-std=c99", "-o", binary, source, "-lm")
			compile.Stdout = c.stderr
			compile.Stderr = c.stderr
			if err := compile.Run(); err != nil {
				return fmt.Errorf("compiling with %s: %w", c.cfg.CC, err)
			}

			c.logger.Debug("executing", "binary", binary)
			program := exec.Command(binary)
			program.Stdin = c.stdin
			program.Stdout = c.stdout
			program.Stderr = c.stderr
			if err := program.Run(); err != nil {
				return fmt.Errorf("execution failed: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Read a JSON syntax tree instead of Python source")
	return cmd
}

func (c *cli) buildCommand() *cobra.Command {
	var output string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "build [-o output] [--json] <file>",
		Short: "Translate a Python file to C",
		Long: `Translate a Python file to C. The output defaults to the input path with
its extension replaced by .c. With --json the input is a syntax tree in the
JSON form of Python's ast module instead of source text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			outputFile := output
			if outputFile == "" {
				if filename == "-" {
					return fmt.Errorf("-o is required when reading standard input")
				}
				outputFile = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".c"
			}
			c.logger.Debug("building", "input", filename, "output", outputFile)

			code, err := c.translateFile(filename, asJSON)
			if err != nil {
				return c.report(filename, err)
			}
			if err := os.WriteFile(outputFile, []byte(code), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", outputFile, err)
			}
			fmt.Fprintf(c.stdout, "Generated %s (%d bytes)\n", outputFile, len(code))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: <file>.c)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Read a JSON syntax tree instead of Python source")
	return cmd
}

func (c *cli) evalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <code>",
		Short: "Translate inline Python code and print the C",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.logger.Debug("evaluating", "code", args[0])
			code, err := c.translateSource(args[0])
			if err != nil {
				return c.report("<eval>", err)
			}
			fmt.Fprint(c.stdout, code)
			return nil
		},
	}
}

func (c *cli) checkCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "check [--json] <file>",
		Short: "Parse and translate a file, reporting errors only",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			tree, err := c.readTree(filename, asJSON)
			if err != nil {
				return c.report(filename, err)
			}
			if _, err := Translate(tree, c.cfg.TranslateOptions(c.logger)); err != nil {
				return c.report(filename, err)
			}
			fmt.Fprintf(c.stdout, "%s: no errors found\n", filename)
			if c.verbose {
				fmt.Fprintf(c.stdout, "AST: %s\n", ToSExpr(tree))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Read a JSON syntax tree instead of Python source")
	return cmd
}

func (c *cli) astCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "ast [--json] <file>",
		Short: "Print the syntax tree of a file as an s-expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := c.readTree(args[0], asJSON)
			if err != nil {
				return c.report(args[0], err)
			}
			fmt.Fprintln(c.stdout, ToSExpr(tree))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Read a JSON syntax tree instead of Python source")
	return cmd
}

// readTree reads a file, or standard input for "-", as Python source or a
// JSON syntax tree.
func (c *cli) readTree(filename string, asJSON bool) (*ASTNode, error) {
	var r io.Reader = c.stdin
	if filename != "-" {
		f, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	if asJSON {
		return DecodeASTJSON(r)
	}
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return Parse(string(source))
}

func (c *cli) translateFile(filename string, asJSON bool) (string, error) {
	tree, err := c.readTree(filename, asJSON)
	if err != nil {
		return "", err
	}
	return Translate(tree, c.cfg.TranslateOptions(c.logger))
}

func (c *cli) translateSource(source string) (string, error) {
	tree, err := Parse(source)
	if err != nil {
		return "", err
	}
	return Translate(tree, c.cfg.TranslateOptions(c.logger))
}

// report prints err as compiler-style diagnostics prefixed with filename
// and returns errReported.
func (c *cli) report(filename string, err error) error {
	bold := color.New(color.Bold).SprintFunc()
	red := color.New(color.FgRed, color.Bold).SprintFunc()

	var parseErrs *ErrorCollection
	var translateErr *TranslateError
	switch {
	case errors.As(err, &parseErrs):
		for _, e := range parseErrs.Errors() {
			fmt.Fprintf(c.stderr, "%s %s %s\n", bold(filename+":"+e.Pos.String()+":"), red("error:"), e.Message)
		}
	case errors.As(err, &translateErr):
		where := filename
		if translateErr.Pos.IsValid() {
			where += ":" + translateErr.Pos.String()
		}
		fmt.Fprintf(c.stderr, "%s %s %s\n", bold(where+":"), red(string(translateErr.Kind)+":"), translateErr.Message)
	default:
		fmt.Fprintf(c.stderr, "%s %s %v\n", bold(filename+":"), red("error:"), err)
	}
	return errReported
}

// run executes the pytoc command line and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := &cli{stdin: stdin, stdout: stdout, stderr: stderr, logger: slog.Default()}
	rootCmd := newRootCommand(c)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			red := color.New(color.FgRed, color.Bold).SprintFunc()
			fmt.Fprintf(stderr, "%s %v\n", red("Error:"), err)
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
