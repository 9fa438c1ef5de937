package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"go.withmatt.com/narrow/internal/config"
	"go.withmatt.com/narrow/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import FILE...",
	Short: "Import message exports",
	Long:  "Import JSON message exports into the local store. Re-importing a message updates it but never marks it unread again.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}

	batches := make([][]store.Message, len(args))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, path := range args {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			messages, err := store.DecodeExport(data)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			batches[i] = messages
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("unable to read export: %w", err)
	}

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("unable to open message store: %w", err)
	}
	defer st.Close()

	total := 0
	for i, messages := range batches {
		n, err := st.Insert(ctx, messages)
		if err != nil {
			return fmt.Errorf("unable to import %s: %w", args[i], err)
		}
		total += n
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d messages from %d files.\n", total, len(args))
	return nil
}
