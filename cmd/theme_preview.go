package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"go.withmatt.com/narrow/internal/config"
	"go.withmatt.com/narrow/internal/render"
	"go.withmatt.com/narrow/internal/store"
)

const previewWidth = 72

var previewThemeName string

var themePreviewCmd = &cobra.Command{
	Use:   "theme-preview",
	Short: "Preview a theme on sample messages",
	Args:  cobra.NoArgs,
	RunE:  runThemePreview,
}

func init() {
	themePreviewCmd.Flags().StringVar(&previewThemeName, "name", "", "theme name to preview")
	rootCmd.AddCommand(themePreviewCmd)
}

func runThemePreview(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	theme := cfg.Theme
	if previewThemeName != "" {
		theme.Name = previewThemeName
	}
	resolved, err := config.ResolveTheme(theme)
	if err != nil {
		return fmt.Errorf("unable to resolve theme: %w", err)
	}
	return writeThemePreview(cmd.Context(), cmd.OutOrStdout(), resolved, time.Now())
}

// previewMessages covers every message style: read, unread, selected and a
// link.
func previewMessages(now time.Time) []store.Message {
	return []store.Message{
		{ID: 1, Stream: "general", Topic: "welcome", Sender: "Ada", SentAt: now.Add(-26 * time.Hour), Read: true,
			Content: "<p>Read message from yesterday.</p>"},
		{ID: 2, Stream: "general", Topic: "welcome", Sender: "Bo", SentAt: now.Add(-2 * time.Hour),
			Content: "<p>Selected and unread, with <strong>bold</strong> and <code>code</code>.</p>"},
		{ID: 3, Stream: "dev", Topic: "deploys", Sender: "Cy", SentAt: now.Add(-5 * time.Minute),
			Content: `<p>Unread, see <a href="https://example.com/build/42">build 42</a>.</p>`},
	}
}

func writeThemePreview(ctx context.Context, out io.Writer, theme config.Theme, now time.Time) error {
	label := theme.Name
	if label == "" {
		label = "custom"
	}
	fmt.Fprintf(out, "Theme preview: %s\n\n", label)

	renderer := render.NewRenderer(render.Options{
		Theme:       theme,
		Concurrency: 1,
		Now:         func() time.Time { return now },
	})
	table, err := renderer.Layout(ctx, "preview", previewMessages(now), 1, previewWidth)
	if err != nil {
		return fmt.Errorf("unable to render preview: %w", err)
	}
	fmt.Fprintln(out, table.Content())

	slots := []struct{ label, value string }{
		{"status", theme.Status.Bg},
		{"mode", theme.Status.ModeBg},
		{"sender", theme.Message.SenderFg},
		{"unread", theme.Message.UnreadFg},
		{"selected", theme.Message.SelectedFg},
		{"link", theme.Message.LinkFg},
		{"error", theme.Message.ErrorFg},
		{"border", theme.Modal.BorderFg},
	}
	fmt.Fprintln(out)
	for _, slot := range slots {
		fmt.Fprintf(out, "  %-9s %s %s\n", slot.label, renderSwatch(slot.value), slot.value)
	}
	return nil
}

func renderSwatch(color string) string {
	if color == "" {
		return "  "
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Render("  ")
}
