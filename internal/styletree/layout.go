// Package styletree composes the per-component style trees of a theme from
// a colour scheme and a table of layout tokens.
package styletree

// FontFamilies names the UI and code typefaces.
type FontFamilies struct {
	Sans string
	Mono string
}

// FontSizes is the type scale, smallest first.
type FontSizes struct {
	XXXS float64
	XXS  float64
	XS   float64
	SM   float64
	MD   float64
	LG   float64
	XL   float64
}

// Layout is the immutable table of non-colour tokens every style function
// reads from.
type Layout struct {
	Fonts FontFamilies
	Sizes FontSizes

	CornerRadius    float64
	Spacing         float64
	TabHeight       float64
	TitlebarHeight  float64
	StatusBarHeight float64
	SidebarWidth    float64
	PanelRowHeight  float64
	AvatarWidth     float64
	IconWidth       float64
	PopoverWidth    float64
	ModalWidth      float64
}

// DefaultLayout returns the stock token table.
func DefaultLayout() Layout {
	return Layout{
		Fonts: FontFamilies{
			Sans: "Zed Sans",
			Mono: "Zed Mono",
		},
		Sizes: FontSizes{
			XXXS: 8,
			XXS:  10,
			XS:   12,
			SM:   14,
			MD:   16,
			LG:   18,
			XL:   20,
		},
		CornerRadius:    6,
		Spacing:         8,
		TabHeight:       32,
		TitlebarHeight:  32,
		StatusBarHeight: 30,
		SidebarWidth:    30,
		PanelRowHeight:  22,
		AvatarWidth:     18,
		IconWidth:       8,
		PopoverWidth:    220,
		ModalWidth:      600,
	}
}
