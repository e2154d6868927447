package site

import "github.com/muurk/findar/internal/content"

// ThemeStyle is the rendering of a content.Theme.
type ThemeStyle struct {
	Gradient string // Tailwind from-/to- pair
	From     string // hex colour of the gradient start
	To       string // hex colour of the gradient end
}

// Themes maps every known theme token to its style.
var Themes = map[content.Theme]ThemeStyle{
	content.ThemeBlueCyan:     {Gradient: "from-blue-500 to-cyan-500", From: "#3B82F6", To: "#06B6D4"},
	content.ThemeRosePink:     {Gradient: "from-rose-500 to-pink-500", From: "#F43F5E", To: "#EC4899"},
	content.ThemeEmeraldTeal:  {Gradient: "from-emerald-500 to-teal-500", From: "#10B981", To: "#14B8A6"},
	content.ThemeAmberOrange:  {Gradient: "from-amber-500 to-orange-500", From: "#F59E0B", To: "#F97316"},
	content.ThemePurpleIndigo: {Gradient: "from-purple-500 to-indigo-500", From: "#A855F7", To: "#6366F1"},
	content.ThemeGreenEmerald: {Gradient: "from-green-500 to-emerald-500", From: "#22C55E", To: "#10B981"},
}

// ThemeOf returns the style for t, falling back to blue-cyan.
func ThemeOf(t content.Theme) ThemeStyle {
	if s, ok := Themes[t]; ok {
		return s
	}
	return Themes[content.ThemeBlueCyan]
}
