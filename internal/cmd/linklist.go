package cmd

import (
	"fmt"
	"os"

	"github.com/chronos-tachyon/huffreport/internal/linklist"
	"github.com/spf13/cobra"
)

// NewLinkListCmd creates and returns the linklist subcommand for the
// huffreport CLI.
func NewLinkListCmd() *cobra.Command {
	var (
		inPath  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "linklist",
		Short: "Rewrite a sync log into a list of link paths",
		Long: `Scan a sync log for lines introduced by '>' and write one path per such
line: the text before the first space is dropped and every space becomes '/'.
All other lines are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLinkList(cmd, inPath, outPath)
		},
	}

	cmd.Flags().StringVarP(&inPath, "in", "i", "logs/sync_list.log", "Sync log to read")
	cmd.Flags().StringVarP(&outPath, "out", "o", "logs/make_link_list", "Link list to write ('-' for stdout)")

	return cmd
}

func runLinkList(cmd *cobra.Command, inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	if outPath == "-" {
		_, err = linklist.Rewrite(in, cmd.OutOrStdout())
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	stats, err := linklist.Rewrite(in, out)
	if err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d paths to %s\n", stats.Lines, outPath)
	return err
}
