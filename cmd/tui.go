package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"go.withmatt.com/narrow/internal/cache"
	"go.withmatt.com/narrow/internal/config"
	"go.withmatt.com/narrow/internal/log"
	"go.withmatt.com/narrow/internal/store"
	"go.withmatt.com/narrow/internal/tui"
)

var narrowFlags store.Narrow

func init() {
	rootCmd.Flags().StringVar(&narrowFlags.Stream, "stream", "", "open a stream")
	rootCmd.Flags().StringVar(&narrowFlags.Topic, "topic", "", "open a topic of --stream")
	rootCmd.Flags().StringVar(&narrowFlags.Search, "search", "", "open the messages matching a search")
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if narrowFlags.Topic != "" && narrowFlags.Stream == "" {
		return errors.New("--topic needs --stream")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}
	theme, err := config.ResolveTheme(cfg.Theme)
	if err != nil {
		return fmt.Errorf("unable to resolve theme: %w", err)
	}

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("unable to open message store: %w", err)
	}
	defer st.Close()

	narrow := narrowFlags
	if narrow == (store.Narrow{}) && isatty.IsTerminal(os.Stdin.Fd()) {
		narrow, err = pickStream(ctx, st)
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	pointers, err := cache.LoadPointers()
	if err != nil {
		// A broken cache only costs the remembered positions.
		log.Printf("unable to load pointer cache: %v", err)
		pointers = cache.Pointers{}
	}

	debug, _ := cmd.Flags().GetBool("debug")
	pointers, err = tui.Run(ctx, tui.Options{
		Store:    st,
		Narrow:   narrow,
		Theme:    theme,
		UI:       cfg.UI,
		Keys:     cfg.Keys,
		Pointers: pointers,
		Debug:    debug,
	})
	if saveErr := cache.SavePointers(pointers); saveErr != nil {
		log.Printf("unable to save pointer cache: %v", saveErr)
	}
	if err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

func openStore(cfg *config.Config) (*store.Store, error) {
	if path := cfg.DatabasePath(); path != "" {
		return store.Open(path)
	}
	return store.OpenDefault()
}

// pickStream asks which stream to open. Choosing the first option opens every
// message.
func pickStream(ctx context.Context, st *store.Store) (store.Narrow, error) {
	streams, err := st.Streams(ctx)
	if err != nil {
		return store.Narrow{}, fmt.Errorf("unable to list streams: %w", err)
	}
	if len(streams) == 0 {
		return store.Narrow{}, nil
	}

	options := make([]huh.Option[string], 0, len(streams)+1)
	options = append(options, huh.NewOption("All messages", ""))
	for _, s := range streams {
		label := fmt.Sprintf("#%s (%d unread)", s.Name, s.Unread)
		options = append(options, huh.NewOption(label, s.Name))
	}

	var stream string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Stream").
				Options(options...).
				Value(&stream),
		),
	).WithProgramOptions(tea.WithAltScreen())
	if err := form.RunWithContext(ctx); err != nil {
		return store.Narrow{}, err
	}
	return store.Narrow{Stream: stream}, nil
}
