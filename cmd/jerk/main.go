// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jerk canonicalizes JSON documents and dumps their tokens.
//
// Usage:
//
//	jerk fmt [--level-order] [--raw] [FILE...]
//	jerk tokens [--raw] [FILE]
//
// With no files, or a file named "-", input is read from stdin.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/creachadair/jerk"
	"github.com/creachadair/jerk/ast"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type settings struct {
	verbose    bool
	raw        bool
	levelOrder bool

	log *zap.Logger
}

// tokenizer returns a tokenizer for src as selected by the --raw flag.
func (s *settings) tokenizer(src string) *jerk.Tokenizer {
	if s.raw {
		return jerk.NewTokenizer(src)
	}
	return jerk.NewUnescapingTokenizer(src)
}

func newRootCmd() *cobra.Command {
	s := &settings{log: zap.NewNop()}
	root := &cobra.Command{
		Use:           "jerk",
		Short:         "Canonicalize JSON documents and dump their tokens",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if s.verbose {
				s.log = newLogger(cmd.ErrOrStderr())
			}
		},
		PersistentPostRun: func(*cobra.Command, []string) { s.log.Sync() },
	}
	root.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "Enable debug logging to stderr")
	root.PersistentFlags().BoolVar(&s.raw, "raw", false, "Do not decode escape sequences in strings")

	fmtCmd := &cobra.Command{
		Use:   "fmt [FILE...]",
		Short: "Print the canonical form of each JSON document",
		RunE:  func(cmd *cobra.Command, args []string) error { return runFmt(s, cmd, args) },
	}
	fmtCmd.Flags().BoolVar(&s.levelOrder, "level-order", false, "Build values in level order")

	tokensCmd := &cobra.Command{
		Use:   "tokens [FILE]",
		Short: "Print the tokens of a JSON document, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE:  func(cmd *cobra.Command, args []string) error { return runTokens(s, cmd, args) },
	}

	root.AddCommand(fmtCmd, tokensCmd)
	return root
}

func newLogger(w io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

func runFmt(s *settings, cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	build := ast.Build
	if s.levelOrder {
		build = ast.BuildLevelOrder
	}
	for _, name := range args {
		src, err := readInput(cmd, name)
		if err != nil {
			return err
		}
		start := time.Now()
		v, err := build(s.tokenizer(src))
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		s.log.Debug("parsed document",
			zap.String("file", name),
			zap.Int("bytes", len(src)),
			zap.Bool("levelOrder", s.levelOrder),
			zap.Duration("elapsed", time.Since(start)),
		)
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), v.JSON()); err != nil {
			return err
		}
	}
	return nil
}

func runTokens(s *settings, cmd *cobra.Command, args []string) error {
	name := "-"
	if len(args) != 0 {
		name = args[0]
	}
	src, err := readInput(cmd, name)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	t := s.tokenizer(src)
	var n int
	for {
		tok := t.Read()
		if tok.Kind == jerk.EndOfInput {
			break
		}
		n++
		if tok.Kind == jerk.Unknown {
			s.log.Warn("unknown token", zap.Int("pos", tok.Pos), zap.String("text", tok.Text))
		}
		if _, err := fmt.Fprintf(out, "%v\t%d\t%s\n", tok.Kind, tok.Pos, jerk.Quote(tok.Text)); err != nil {
			return err
		}
	}
	s.log.Debug("read tokens", zap.String("file", name), zap.Int("count", n))
	return nil
}

// readInput reads the contents of the named file, or of stdin if name is "-".
func readInput(cmd *cobra.Command, name string) (string, error) {
	var data []byte
	var err error
	if name == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
