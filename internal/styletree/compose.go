package styletree

import (
	"github.com/opencode-ai/themeforge/internal/scheme"
	"github.com/opencode-ai/themeforge/internal/style"
)

// Component builds the style subtree of one UI component.
type Component func(*scheme.Scheme, Layout) *style.Node

// components is the fixed emission order of the theme's top-level keys.
var components = []struct {
	name  string
	build Component
}{
	{"meta", meta},
	{"players", func(s *scheme.Scheme, _ Layout) *style.Node { return players(s) }},
	{"workspace", workspace},
	{"tabBar", tabBar},
	{"statusBar", statusBar},
	{"contextMenu", contextMenu},
	{"editor", editor},
	{"projectPanel", projectPanel},
	{"contactsPanel", contactsPanel},
	{"chatPanel", chatPanel},
	{"picker", picker},
	{"commandPalette", commandPalette},
	{"projectDiagnostics", projectDiagnostics},
	{"search", search},
	{"tooltip", tooltip},
	{"terminal", terminal},
	{"updateNotification", updateNotification},
}

// ComponentNames returns the top-level keys Compose emits, in order.
func ComponentNames() []string {
	names := make([]string, len(components))
	for i, c := range components {
		names[i] = c.name
	}
	return names
}

// Compose builds the unresolved style tree of a theme. The result may carry
// extends and references; pass it through style.Resolve before emitting.
func Compose(s *scheme.Scheme, l Layout) *style.Node {
	root := style.New()
	for _, c := range components {
		root.Set(c.name, c.build(s, l))
	}
	return root
}
