package icon

// Icon identifies a UI symbol in the global registry.
type Icon int

const (
	Progress Icon = iota
	Success
	Fail
	Image
	Palette
)

// icons maps each identifier to its visual representations across all supported variants.
var icons = map[Icon]*iconDef{
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(￣ω￣;)",
		squares: "◧",
	},
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "OK",
		kaomoji: "(≧▽≦)",
		squares: "■",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "X",
		kaomoji: "(╯°□°)╯",
		squares: "□",
	},
	Image: {
		emoji:   "🖼️",
		nerd:    "",
		plain:   "img",
		kaomoji: "(o^▽^o)",
		squares: "◨",
	},
	Palette: {
		emoji:   "🎨",
		nerd:    "",
		plain:   "#",
		kaomoji: "(☆▽☆)",
		squares: "▥",
	},
}
