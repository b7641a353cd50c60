// Command buildfiles extracts the YANG modules required to build a model.
//
// Each model directory carries a .spec.yml file naming the set of files
// that should be handed to the model compiler. Given one such file,
// buildfiles emits one line per build entry in the form
//
//	<run-ci flag>!<comma-joined files>!<model name>
//
// collapsing to the short form "0!" when the entry has CI disabled.
// Given a model root instead, it walks the tree and emits every build
// file of every CI-enabled entry as a single space-separated line.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkoosis/modelci/pkg/buildspec"
)

func main() {
	if err := newCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand(out io.Writer) *cobra.Command {
	var specFile, modelRoot string

	cmd := &cobra.Command{
		Use:   "buildfiles",
		Short: "Extract the YANG files required to build each model",
		Long: `Read .spec.yml build specification documents and report, per build
entry, whether CI is enabled and which files build the model.

Exit code: 0 on success, 1 on unreadable input or a malformed entry.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if modelRoot != "" {
				tree, err := buildspec.ParseTree(modelRoot)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, tree.BuildFileLine())
				return err
			}
			entries, err := buildspec.ParseFile(specFile)
			if err != nil {
				return err
			}
			return buildspec.Render(out, entries)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVarP(&specFile, "specfile", "s", "", "build specification file")
	cmd.Flags().StringVar(&modelRoot, "modelroot", "", "models root directory; list all build files on a single line")
	cmd.MarkFlagsOneRequired("specfile", "modelroot")
	cmd.MarkFlagsMutuallyExclusive("specfile", "modelroot")

	return cmd
}
