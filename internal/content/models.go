package content

// Theme is a symbolic gradient token used purely for presentation.
type Theme string

const (
	ThemeBlueCyan     Theme = "blue-cyan"
	ThemeRosePink     Theme = "rose-pink"
	ThemeEmeraldTeal  Theme = "emerald-teal"
	ThemeAmberOrange  Theme = "amber-orange"
	ThemePurpleIndigo Theme = "purple-indigo"
	ThemeGreenEmerald Theme = "green-emerald"
)

// KnownThemes lists every theme token the view layer can render.
var KnownThemes = []Theme{
	ThemeBlueCyan,
	ThemeRosePink,
	ThemeEmeraldTeal,
	ThemeAmberOrange,
	ThemePurpleIndigo,
	ThemeGreenEmerald,
}

// Icon names an SVG glyph known to the view layer.
type Icon string

const (
	IconSearch Icon = "search"
	IconHeart  Icon = "heart"
	IconHome   Icon = "home"
	IconBell   Icon = "bell"
	IconChat   Icon = "chat"
	IconShield Icon = "shield"
)

// KnownIcons lists every icon name the view layer can render.
var KnownIcons = []Icon{IconSearch, IconHeart, IconHome, IconBell, IconChat, IconShield}

// Content is the whole landing page document.
type Content struct {
	Version  int            `yaml:"version"`
	Brand    string         `yaml:"brand"`
	Nav      []NavLink      `yaml:"nav"`
	Hero     Hero           `yaml:"hero"`
	Features FeatureSection `yaml:"features"`
	About    TextSection    `yaml:"about"`
	Contact  ContactSection `yaml:"contact"`
	Footer   Footer         `yaml:"footer"`
}

// NavLink is a navigation bar entry. Href is an in-page anchor such as "#about".
type NavLink struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Hero is the banner at the top of the page.
type Hero struct {
	Headline          string `yaml:"headline"`
	Highlight         string `yaml:"highlight"` // rendered in the accent colour after Headline
	Lead              string `yaml:"lead"`
	CTALabel          string `yaml:"cta_label"`
	CTAURL            string `yaml:"cta_url"`
	ScreenshotCaption string `yaml:"screenshot_caption"`
}

// FeatureRecord is one carousel entry. Records are immutable once loaded.
type FeatureRecord struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Icon        Icon   `yaml:"icon" json:"icon"`
	Theme       Theme  `yaml:"theme" json:"theme"`
}

// FeatureSection wraps the carousel catalog with its section copy.
type FeatureSection struct {
	Badge             string          `yaml:"badge"`
	Heading           string          `yaml:"heading"`
	Subheading        string          `yaml:"subheading"`
	ScreenshotCaption string          `yaml:"screenshot_caption"`
	CTALabel          string          `yaml:"cta_label"`
	CTAURL            string          `yaml:"cta_url"`
	Items             []FeatureRecord `yaml:"items"`
}

// TextSection is a titled block whose Body is Markdown.
type TextSection struct {
	Badge   string `yaml:"badge"`
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
}

// ContactSection is the contact block.
type ContactSection struct {
	TextSection `yaml:",inline"`
	Email       string `yaml:"email"`
	Phone       string `yaml:"phone"`
}

// Footer is the page footer.
type Footer struct {
	Tagline   string `yaml:"tagline"`
	Copyright string `yaml:"copyright"`
}

// IsKnownTheme reports whether t is in KnownThemes.
func IsKnownTheme(t Theme) bool {
	for _, k := range KnownThemes {
		if k == t {
			return true
		}
	}
	return false
}

// IsKnownIcon reports whether i is in KnownIcons.
func IsKnownIcon(i Icon) bool {
	for _, k := range KnownIcons {
		if k == i {
			return true
		}
	}
	return false
}
