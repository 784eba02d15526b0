package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dtromb/automata"
	"github.com/dtromb/automata/internal/watcher"
	"github.com/spf13/cobra"
)

var errCheckFailed = errors.New("check failed")

func verdict(accepted bool) string {
	if accepted {
		return "accept"
	}
	return "reject"
}

func newTestCmd(a *app) *cobra.Command {
	var compiled bool
	cmd := &cobra.Command{
		Use:   "test FILE [INPUT...]",
		Short: "Report whether each input word is accepted",
		Long: `Test each INPUT against the automaton in FILE and print accept or reject.
Without INPUT arguments one word per line is read from standard input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			doc, err := a.load(ctx, args[0])
			if err != nil {
				return err
			}
			m, err := a.machine(ctx, doc, compiled)
			if err != nil {
				return err
			}
			inputs := args[1:]
			if len(inputs) == 0 {
				if inputs, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			for _, in := range inputs {
				fmt.Fprintf(out, "%s\t%q\n", verdict(m.Test(a.symbols(in))), in)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&compiled, "compiled", false, "compile to a DFA before testing")
	return cmd
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	return lines, sc.Err()
}

func newTraceCmd(a *app) *cobra.Command {
	var compiled bool
	cmd := &cobra.Command{
		Use:   "trace FILE INPUT",
		Short: "Step through an input word one symbol at a time",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			doc, err := a.load(ctx, args[0])
			if err != nil {
				return err
			}
			m, err := a.machine(ctx, doc, compiled)
			if err != nil {
				return err
			}
			tr := m.Trace(a.symbols(args[1]))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "start\t%s\n", automata.NewStateSet(tr.Start...))
			for _, step := range tr.Steps {
				if step.Err != nil {
					fmt.Fprintf(out, "%q\terror: %v\n", step.Symbol, step.Err)
					continue
				}
				fmt.Fprintf(out, "%q\t%s\n", step.Symbol, automata.NewStateSet(step.States...))
			}
			fmt.Fprintln(out, verdict(tr.Accepted))
			return nil
		},
	}
	cmd.Flags().BoolVar(&compiled, "compiled", false, "compile to a DFA before tracing")
	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	var compiled bool
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Run the accept and reject words embedded in definitions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.check(cmd.Context(), cmd.OutOrStdout(), args, compiled)
		},
	}
	cmd.Flags().BoolVar(&compiled, "compiled", false, "also check the compiled DFA")
	return cmd
}

// check runs every document's words and prints one line per document. It
// returns errCheckFailed when any word or document failed.
func (a *app) check(ctx context.Context, out io.Writer, paths []string, compiled bool) error {
	failed := false
	for _, path := range paths {
		if err := a.checkFile(ctx, out, path, compiled); err != nil {
			if !errors.Is(err, errCheckFailed) {
				fmt.Fprintf(out, "FAIL\t%s\t%v\n", path, err)
			}
			failed = true
		}
	}
	if failed {
		return errCheckFailed
	}
	return nil
}

func (a *app) checkFile(ctx context.Context, out io.Writer, path string, compiled bool) error {
	doc, err := a.load(ctx, path)
	if err != nil {
		return err
	}
	variants := []bool{false}
	if compiled {
		variants = append(variants, true)
	}
	failed := false
	for _, c := range variants {
		m, err := a.machine(ctx, doc, c)
		if err != nil {
			return err
		}
		rep := doc.Check(m)
		label := string(m.Kind())
		for _, f := range rep.Failures() {
			failed = true
			fmt.Fprintf(out, "FAIL\t%s\t%s\t%q: want %s, got %s\n", path, label, []string(f.Input), verdict(f.Want), verdict(f.Got))
		}
		if rep.Passed() {
			fmt.Fprintf(out, "ok\t%s\t%s\t%d words\n", path, label, len(rep.Results))
		}
	}
	if failed {
		return errCheckFailed
	}
	return nil
}

func newCompileCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "compile FILE",
		Short: "Compile a definition to an equivalent DFA definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			doc, err := a.load(ctx, args[0])
			if err != nil {
				return err
			}
			dfa, err := doc.Compile()
			if err != nil {
				return err
			}
			a.logger.Info(ctx, "compiled", "path", args[0], "from", string(doc.Kind), "final", len(dfa.Final))
			if output == "" || output == "-" {
				return dfa.Encode(cmd.OutOrStdout())
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := dfa.Encode(f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func newDumpCmd(a *app) *cobra.Command {
	var compiled bool
	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print the automaton's states and transitions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			doc, err := a.load(ctx, args[0])
			if err != nil {
				return err
			}
			m, err := a.machine(ctx, doc, compiled)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), m.String())
			return err
		},
	}
	cmd.Flags().BoolVar(&compiled, "compiled", false, "dump the compiled DFA")
	return cmd
}

func newWatchCmd(a *app) *cobra.Command {
	var compiled bool
	cmd := &cobra.Command{
		Use:   "watch FILE...",
		Short: "Re-run check whenever a definition changes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			fw, err := watcher.NewFileWatcher(a.cfg.Watch.Debounce, a.logger)
			if err != nil {
				return err
			}
			defer fw.Close()
			for _, path := range args {
				if err := fw.AddFile(path); err != nil {
					return err
				}
			}
			if err := a.check(ctx, out, args, compiled); err != nil && !errors.Is(err, errCheckFailed) {
				return err
			}
			a.logger.Info(ctx, "watching", "files", len(args))
			return fw.Run(ctx, func(ctx context.Context, paths []string) error {
				err := a.check(ctx, out, paths, compiled)
				if errors.Is(err, errCheckFailed) {
					return nil
				}
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&compiled, "compiled", false, "also check the compiled DFA")
	return cmd
}
