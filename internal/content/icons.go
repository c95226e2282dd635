package content

// glyphs maps icon identifiers used in the content file to a single
// printable glyph. Both the web page and the terminal browser use it.
var glyphs = map[string]string{
	"truck":          "🚚",
	"hash":           "#",
	"clipboard-list": "📋",
	"scale":          "⚖",
	"calculator":     "🧮",
	"save":           "💾",
	"log-out":        "🚪",
	"server":         "🖥",
	"database":       "🗄",
	"banknote":       "💵",
	"building":       "🏦",
	"credit-card":    "💳",
}

// Glyph returns the glyph for an icon identifier, or "•" when unknown.
func Glyph(icon string) string {
	if g, ok := glyphs[icon]; ok {
		return g
	}
	return "•"
}
