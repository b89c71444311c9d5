package structures

// InfoLine is a single labeled system fact, e.g. "OS: CachyOS".
// Lines are immutable once collected; slice order is display order.
type InfoLine struct {
	Label string
	Value string
}

// Section groups info lines under a title (Core, Hardware, Userspace).
type Section struct {
	Title string
	Lines []InfoLine
}

// Width returns the widest "Label: Value" (or title) cell width of the
// section, as counted by the given measure function.
func (s Section) Width(measure func(string) int) int {
	w := measure(s.Title)
	for _, line := range s.Lines {
		if lw := measure(line.Label) + 2 + measure(line.Value); lw > w {
			w = lw
		}
	}
	return w
}

// OSArtMode controls whether OS-specific art is used.
type OSArtMode int

const (
	OSArtDisabled OSArtMode = iota
	OSArtAuto
	OSArtSpecific
)

// OSArtSetting is the resolved os_art config value: disabled, auto-detect
// from the collected OS fact, or a specific art name.
type OSArtSetting struct {
	Mode OSArtMode
	Name string
}

// Palette maps small art color indices (1-9) plus the theme roles to hex
// colors. Indices referenced by art but absent here render with the
// fallback color (the value color), never failing the run.
type Palette struct {
	Border string
	Title  string
	Key    string
	Value  string

	// Art holds colors for indices 1..9; Art[0] is unused.
	Art [10]string
}

// Color returns the hex color for an art palette index, falling back to
// the Value color for out-of-range or unset indices.
func (p Palette) Color(index int) string {
	if index >= 1 && index < len(p.Art) && p.Art[index] != "" {
		return p.Art[index]
	}
	return p.Value
}

// Config is the resolved application configuration. It is built once
// before the core runs and passed by value; nothing reads it globally.
type Config struct {
	OSArt     OSArtSetting
	CustomArt string
	Image     bool
	ImagePath string
	Colors    Palette
}

// FileConfig mirrors config.toml. os_art may be a bool or a string, so it
// is decoded into an any and resolved in the config package.
type FileConfig struct {
	OSArt     any         `toml:"os_art"`
	CustomArt string      `toml:"custom_art"`
	Image     bool        `toml:"image"`
	ImagePath string      `toml:"image_path"`
	Colors    ColorConfig `toml:"colors"`
}

// ColorConfig is the [colors] table of config.toml, hex strings.
type ColorConfig struct {
	Border string `toml:"border"`
	Title  string `toml:"title"`
	Key    string `toml:"key"`
	Value  string `toml:"value"`
	Art1   string `toml:"art_1"`
	Art2   string `toml:"art_2"`
	Art3   string `toml:"art_3"`
	Art4   string `toml:"art_4"`
	Art5   string `toml:"art_5"`
	Art6   string `toml:"art_6"`
	Art7   string `toml:"art_7"`
	Art8   string `toml:"art_8"`
	Art9   string `toml:"art_9"`
}

// Palette converts the raw color config into a render palette.
func (c ColorConfig) Palette() Palette {
	p := Palette{
		Border: c.Border,
		Title:  c.Title,
		Key:    c.Key,
		Value:  c.Value,
	}
	for i, hex := range []string{
		c.Art1, c.Art2, c.Art3, c.Art4, c.Art5, c.Art6, c.Art7, c.Art8, c.Art9,
	} {
		p.Art[i+1] = hex
	}
	return p
}
