package config

type KeyMap struct {
	Stream StreamKeyMap `toml:"stream"`
	Search SearchKeyMap `toml:"search"`
}

type StreamKeyMap struct {
	Up       []string `toml:"up"`
	Down     []string `toml:"down"`
	Home     []string `toml:"home"`
	End      []string `toml:"end"`
	PageUp   []string `toml:"page_up"`
	PageDown []string `toml:"page_down"`
	Recenter []string `toml:"recenter"`
	OpenLink []string `toml:"open_link"`
	Search   []string `toml:"search"`
	Refresh  []string `toml:"refresh"`
	Help     []string `toml:"help"`
	Quit     []string `toml:"quit"`
}

type SearchKeyMap struct {
	Submit []string `toml:"submit"`
	Cancel []string `toml:"cancel"`
	Quit   []string `toml:"quit"`
}
