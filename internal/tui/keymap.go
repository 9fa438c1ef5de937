package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"go.withmatt.com/narrow/internal/config"
)

type streamKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Recenter key.Binding
	OpenLink key.Binding
	Search   key.Binding
	Refresh  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

type searchKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

type keyMap struct {
	searchActive bool

	stream streamKeyMap
	search searchKeyMap
}

func keyMapFromConfig(cfg config.KeyMap) keyMap {
	return keyMap{
		stream: streamKeyMap{
			Up:   makeBinding(bindingDef{keys: []string{"k", "up"}, desc: "prev"}, cfg.Stream.Up),
			Down: makeBinding(bindingDef{keys: []string{"j", "down"}, desc: "next"}, cfg.Stream.Down),
			Home: makeBinding(
				bindingDef{keys: []string{"g", "home"}, desc: "first"},
				cfg.Stream.Home,
			),
			End: makeBinding(
				bindingDef{keys: []string{"G", "end"}, desc: "last"},
				cfg.Stream.End,
			),
			PageUp: makeBinding(
				bindingDef{keys: []string{"pgup"}, desc: "page up"},
				cfg.Stream.PageUp,
			),
			PageDown: makeBinding(
				bindingDef{keys: []string{"pgdown", " "}, desc: "page down"},
				cfg.Stream.PageDown,
			),
			Recenter: makeBinding(
				bindingDef{keys: []string{"z"}, desc: "recenter"},
				cfg.Stream.Recenter,
			),
			OpenLink: makeBinding(
				bindingDef{keys: []string{"o"}, desc: "open link"},
				cfg.Stream.OpenLink,
			),
			Search: makeBinding(
				bindingDef{keys: []string{"/"}, desc: "search"},
				cfg.Stream.Search,
			),
			Refresh: makeBinding(
				bindingDef{keys: []string{"r"}, desc: "refresh"},
				cfg.Stream.Refresh,
			),
			Help: makeBinding(bindingDef{keys: []string{"?"}, desc: "help"}, cfg.Stream.Help),
			Quit: makeBinding(
				bindingDef{keys: []string{"q", "ctrl+c"}, desc: "quit"},
				cfg.Stream.Quit,
			),
		},
		search: searchKeyMap{
			Submit: makeBinding(
				bindingDef{keys: []string{"enter"}, desc: "apply"},
				cfg.Search.Submit,
			),
			Cancel: makeBinding(
				bindingDef{keys: []string{"esc"}, desc: "cancel"},
				cfg.Search.Cancel,
			),
			Quit: makeBinding(
				bindingDef{keys: []string{"ctrl+c"}, desc: "quit"},
				cfg.Search.Quit,
			),
		},
	}
}

func (m Model) keyMap() keyMap {
	km := m.keys
	km.searchActive = m.search.active
	return km
}

type bindingDef struct {
	keys []string
	desc string
}

func makeBinding(def bindingDef, override []string) key.Binding {
	keys := def.keys
	if len(override) > 0 {
		keys = override
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(formatHelpKeys(keys), def.desc),
	)
}

func formatHelpKeys(keys []string) string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		label := formatKeyLabel(key)
		if label == "" {
			continue
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	return strings.Join(out, "/")
}

func formatKeyLabel(key string) string {
	switch key {
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "pgdown":
		return "pgdn"
	case " ":
		return "space"
	default:
		return key
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	if k.searchActive {
		return []key.Binding{k.search.Submit, k.search.Cancel, k.search.Quit}
	}
	return []key.Binding{
		k.stream.Up,
		k.stream.Down,
		k.stream.End,
		k.stream.Search,
		k.stream.Help,
		k.stream.Quit,
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	if k.searchActive {
		return [][]key.Binding{
			{k.search.Submit, k.search.Cancel},
			{k.search.Quit},
		}
	}
	return [][]key.Binding{
		{k.stream.Up, k.stream.Down, k.stream.Home, k.stream.End},
		{k.stream.PageUp, k.stream.PageDown, k.stream.Recenter},
		{k.stream.OpenLink, k.stream.Search, k.stream.Refresh},
		{k.stream.Help, k.stream.Quit},
	}
}
