package config

import (
	"fmt"
	"strings"

	"go.withmatt.com/themes"
)

const defaultThemeName = "Nord"

type Theme struct {
	Name    string       `toml:"name"`
	Status  ThemeStatus  `toml:"status"`
	Message ThemeMessage `toml:"message"`
	Modal   ThemeModal   `toml:"modal"`
}

type ThemeStatus struct {
	Bg     string `toml:"bg"`
	Fg     string `toml:"fg"`
	Dim    string `toml:"dim"`
	ModeBg string `toml:"mode_bg"`
	ModeFg string `toml:"mode_fg"`
}

type ThemeMessage struct {
	SenderFg   string `toml:"sender_fg"`
	MetaFg     string `toml:"meta_fg"`
	UnreadFg   string `toml:"unread_fg"`
	SelectedFg string `toml:"selected_fg"`
	SelectedBg string `toml:"selected_bg"`
	LinkFg     string `toml:"link_fg"`
	ErrorFg    string `toml:"error_fg"`
}

type ThemeModal struct {
	BorderFg string `toml:"border_fg"`
	FooterFg string `toml:"footer_fg"`
}

// colors lists every colour slot of the theme so merging and name
// resolution stay in one place.
func (t *Theme) colors() []*string {
	return []*string{
		&t.Status.Bg, &t.Status.Fg, &t.Status.Dim, &t.Status.ModeBg, &t.Status.ModeFg,
		&t.Message.SenderFg, &t.Message.MetaFg, &t.Message.UnreadFg,
		&t.Message.SelectedFg, &t.Message.SelectedBg, &t.Message.LinkFg, &t.Message.ErrorFg,
		&t.Modal.BorderFg, &t.Modal.FooterFg,
	}
}

// ResolveTheme fills unset colours from the named palette and turns palette
// colour names ("bright_magenta") into hex values.
func ResolveTheme(theme Theme) (Theme, error) {
	palette, err := paletteForTheme(theme.Name)
	if err != nil {
		return Theme{}, err
	}
	base := themeFromPalette(palette)

	out := theme
	dst, src := out.colors(), base.colors()
	for i := range dst {
		if strings.TrimSpace(*dst[i]) == "" {
			*dst[i] = *src[i]
		}
		*dst[i] = resolveColorName(*dst[i], palette)
	}
	return out, nil
}

func themeFromPalette(palette *themes.Theme) Theme {
	accent := firstNonEmpty(palette.Magenta, palette.Foreground)
	return Theme{
		Status: ThemeStatus{
			Bg:     palette.Background,
			Fg:     palette.Foreground,
			Dim:    palette.Foreground,
			ModeBg: accent,
			ModeFg: palette.Background,
		},
		Message: ThemeMessage{
			SenderFg:   firstNonEmpty(palette.BrightBlue, palette.Blue, palette.Foreground),
			MetaFg:     palette.Foreground,
			UnreadFg:   firstNonEmpty(palette.BrightMagenta, palette.Magenta, palette.Foreground),
			SelectedFg: firstNonEmpty(palette.BrightGreen, palette.Green, palette.Foreground),
			SelectedBg: palette.Background,
			LinkFg:     firstNonEmpty(palette.Cyan, palette.BrightCyan, palette.Blue, palette.Foreground),
			ErrorFg:    firstNonEmpty(palette.Red, palette.Foreground),
		},
		Modal: ThemeModal{
			BorderFg: accent,
			FooterFg: palette.Foreground,
		},
	}
}

func firstNonEmpty(candidates ...string) string {
	for _, candidate := range candidates {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return ""
}

func paletteForTheme(name string) (*themes.Theme, error) {
	themeName := strings.TrimSpace(name)
	if themeName == "" {
		themeName = defaultThemeName
	}
	palette, err := themes.GetTheme(themeName)
	if err != nil {
		return nil, fmt.Errorf("theme %q: %w", themeName, err)
	}
	return palette, nil
}

func resolveColorName(value string, palette *themes.Theme) string {
	if palette == nil {
		return value
	}
	switch normalizeColorName(value) {
	case "foreground":
		return palette.Foreground
	case "background":
		return palette.Background
	case "cursor":
		return palette.Cursor
	case "black":
		return palette.Black
	case "red":
		return palette.Red
	case "green":
		return palette.Green
	case "yellow":
		return palette.Yellow
	case "blue":
		return palette.Blue
	case "magenta":
		return palette.Magenta
	case "cyan":
		return palette.Cyan
	case "white":
		return palette.White
	case "brightblack":
		return palette.BrightBlack
	case "brightred":
		return palette.BrightRed
	case "brightgreen":
		return palette.BrightGreen
	case "brightyellow":
		return palette.BrightYellow
	case "brightblue":
		return palette.BrightBlue
	case "brightmagenta":
		return palette.BrightMagenta
	case "brightcyan":
		return palette.BrightCyan
	case "brightwhite":
		return palette.BrightWhite
	default:
		return value
	}
}

func normalizeColorName(value string) string {
	normalized := strings.ToLower(strings.TrimSpace(value))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(normalized)
}
