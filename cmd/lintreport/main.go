// Command lintreport converts the linter's JSON result document into a
// report that can be posted as a pull request comment.
//
// The complete document is read from stdin and rendered either as GitHub
// flavoured Markdown or as nested HTML disclosure blocks. The exit status
// reflects the overall outcome: 1 if any file failed to build or any test
// failed, 0 otherwise.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkoosis/modelci/pkg/lintreport"
)

func main() {
	if err := newCommand(os.Stdin, os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand(in io.Reader, stdout io.Writer) *cobra.Command {
	var mode, output string

	cmd := &cobra.Command{
		Use:   "lintreport",
		Short: "Format a lint result document as a pull request comment",
		Long: `Read the linter's JSON result document from stdin and render a
per-file, per-test pass/fail report.

Exit code: 0 when everything passed, 1 on malformed input or when any
file or test failed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(in, stdout, mode, output)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&mode, "mode", "html", "output mode: markdown or html")
	cmd.Flags().StringVar(&output, "output", "stdout", `output destination: "stdout" or a file path`)

	return cmd
}

func run(in io.Reader, stdout io.Writer, modeName, output string) error {
	mode, err := lintreport.ParseMode(modeName)
	if err != nil {
		return err
	}

	report, err := lintreport.Decode(in)
	if err != nil {
		return err
	}

	w := stdout
	if output != "stdout" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("could not open the output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := lintreport.Render(w, report, mode); err != nil {
		return err
	}

	if report.Failed() {
		return errors.New("lint failures detected")
	}
	return nil
}
