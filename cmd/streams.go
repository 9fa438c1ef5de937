package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"go.withmatt.com/narrow/internal/config"
)

var streamsCmd = &cobra.Command{
	Use:   "streams",
	Short: "List streams in the local store",
	Args:  cobra.NoArgs,
	RunE:  runStreams,
}

func init() {
	rootCmd.AddCommand(streamsCmd)
}

func runStreams(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}
	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("unable to open message store: %w", err)
	}
	defer st.Close()

	streams, err := st.Streams(cmd.Context())
	if err != nil {
		return fmt.Errorf("unable to list streams: %w", err)
	}
	if len(streams) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No messages. Run 'narrow import' first.")
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "stream\tmessages\tunread")
	fmt.Fprintln(writer, "------\t--------\t------")
	for _, s := range streams {
		fmt.Fprintf(writer, "%s\t%d\t%d\n", s.Name, s.Total, s.Unread)
	}
	return writer.Flush()
}
