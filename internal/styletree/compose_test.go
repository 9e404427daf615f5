package styletree

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/themeforge/internal/color"
	"github.com/opencode-ai/themeforge/internal/scheme"
	"github.com/opencode-ai/themeforge/internal/style"
)

func testScheme(t *testing.T, appearance scheme.Appearance) *scheme.Scheme {
	t.Helper()
	ramps := map[string]*color.Ramp{
		scheme.Neutral: color.MustRamp([]color.Color{color.MustParse("#000000"), color.MustParse("#ffffff")}),
	}
	hues := map[string]string{
		scheme.Red:     "#f7768e",
		scheme.Orange:  "#ff9e64",
		scheme.Yellow:  "#e0af68",
		scheme.Green:   "#9ece6a",
		scheme.Cyan:    "#7dcfff",
		scheme.Blue:    "#7aa2f7",
		scheme.Violet:  "#9d7cd8",
		scheme.Magenta: "#bb9af7",
	}
	for role, hex := range hues {
		ramps[role] = color.ExpandRamp(color.MustParse(hex))
	}
	s, err := scheme.Build("Test", appearance, ramps)
	require.NoError(t, err)
	return s
}

func resolved(t *testing.T, appearance scheme.Appearance) *style.Node {
	t.Helper()
	root, err := style.Resolve(Compose(testScheme(t, appearance), DefaultLayout()))
	require.NoError(t, err)
	return root
}

func lookup(t *testing.T, n *style.Node, path string) any {
	t.Helper()
	v, ok := n.Lookup(path)
	require.True(t, ok, path)
	return v
}

func TestComposeEmitsComponentsInOrder(t *testing.T) {
	root := Compose(testScheme(t, scheme.Dark), DefaultLayout())
	require.Equal(t, ComponentNames(), root.Keys())
	require.Equal(t, "meta", root.Keys()[0])
	require.Contains(t, root.Keys(), "contactsPanel")
	require.Contains(t, root.Keys(), "updateNotification")
}

func TestComposeResolvesForBothAppearances(t *testing.T) {
	for _, appearance := range []scheme.Appearance{scheme.Dark, scheme.Light} {
		root := resolved(t, appearance)
		data, err := json.Marshal(root)
		require.NoError(t, err)
		require.NotContains(t, string(data), `"extends"`)
		require.NotContains(t, string(data), `"$`)
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	a, err := json.Marshal(resolved(t, scheme.Dark))
	require.NoError(t, err)
	b, err := json.Marshal(resolved(t, scheme.Dark))
	require.NoError(t, err)
	require.Equal(t, string(a), string(b))
}

func TestActiveTabExtendsTab(t *testing.T) {
	s := testScheme(t, scheme.Dark)
	root := resolved(t, scheme.Dark)

	require.Equal(t, s.Background.Base, lookup(t, root, "tabBar.activeTab.background"))
	require.Equal(t, s.Text.Active, lookup(t, root, "tabBar.activeTab.text.color"))
	require.Equal(t, lookup(t, root, "tabBar.tab.height"), lookup(t, root, "tabBar.activeTab.height"))
	require.Equal(t, s.Icon.Warning, lookup(t, root, "tabBar.activeTab.iconConflict"))

	// Nested border merges key by key.
	require.Equal(t, false, lookup(t, root, "tabBar.activeTab.border.bottom"))
	require.Equal(t, true, lookup(t, root, "tabBar.activeTab.border.left"))
	require.Equal(t, s.Border.Primary, lookup(t, root, "tabBar.activeTab.border.color"))

	// Chained through activeTab.
	require.Equal(t, s.Text.Secondary, lookup(t, root, "tabBar.inactivePaneActiveTab.text.color"))
	require.Equal(t, s.Background.Base, lookup(t, root, "tabBar.inactivePaneActiveTab.background"))
}

func TestContextMenuActiveItemExtendsItem(t *testing.T) {
	s := testScheme(t, scheme.Dark)
	root := resolved(t, scheme.Dark)

	require.Equal(t, s.Background.OnPanel.Active, lookup(t, root, "contextMenu.activeItem.background"))
	require.Equal(t, s.Text.Active, lookup(t, root, "contextMenu.activeItem.label.color"))
	require.Equal(t, lookup(t, root, "contextMenu.item.padding.left"), lookup(t, root, "contextMenu.activeItem.padding.left"))
	require.Equal(t, s.Background.OnPanel.Hovered, lookup(t, root, "contextMenu.activeHoveredItem.background"))
	require.Equal(t, s.Text.Active, lookup(t, root, "contextMenu.activeHoveredItem.label.color"))

	item := lookup(t, root, "contextMenu.item").(*style.Node)
	_, ok := item.Get("background")
	require.False(t, ok)
}

func TestSidebarsMirrorEachOther(t *testing.T) {
	s := testScheme(t, scheme.Dark)
	root := resolved(t, scheme.Dark)

	require.Equal(t, true, lookup(t, root, "workspace.rightSidebar.border.left"))
	_, ok := root.Lookup("workspace.rightSidebar.border.right")
	require.False(t, ok)
	require.Equal(t, true, lookup(t, root, "workspace.leftSidebar.border.right"))
	require.Equal(t, s.Icon.Active, lookup(t, root, "workspace.rightSidebar.activeItem.iconColor"))
	require.Equal(t, DefaultLayout().SidebarWidth, lookup(t, root, "workspace.rightSidebar.activeItem.height"))
}

func TestGuestSelectionsReferencePlayers(t *testing.T) {
	s := testScheme(t, scheme.Dark)
	root := resolved(t, scheme.Dark)

	guests := lookup(t, root, "editor.guestSelections").([]any)
	require.Len(t, guests, scheme.PlayerCount-1)
	require.Equal(t, s.Players[1].Cursor, lookup(t, root, "editor.guestSelections.0.cursor"))
	require.Equal(t, s.Players[7].Selection, lookup(t, root, "editor.guestSelections.6.selection"))
}

func TestTerminalColorsAreAbsolute(t *testing.T) {
	for _, appearance := range []scheme.Appearance{scheme.Dark, scheme.Light} {
		root := resolved(t, appearance)
		black := lookup(t, root, "terminal.colors.black").(color.Color)
		white := lookup(t, root, "terminal.colors.brightWhite").(color.Color)
		require.Equal(t, "#000000", black.String(), appearance)
		require.Equal(t, "#ffffff", white.String(), appearance)
		require.Equal(t,
			lookup(t, root, "terminal.colors.modalBackground"),
			lookup(t, root, "terminal.modalContainer.background"),
		)
	}
}

func TestMetaDescribesScheme(t *testing.T) {
	root := resolved(t, scheme.Light)
	require.Equal(t, "Test", lookup(t, root, "meta.name"))
	require.Equal(t, "light", lookup(t, root, "meta.appearance"))
	require.Equal(t, true, lookup(t, root, "meta.isLight"))
}

func TestSyntaxTableFollowsScheme(t *testing.T) {
	s := testScheme(t, scheme.Dark)
	root := resolved(t, scheme.Dark)

	syntax := lookup(t, root, "editor.syntax").(*style.Node)
	require.Equal(t, len(s.Syntax), syntax.Len())
	strong, ok := syntax.Child("emphasis.strong")
	require.True(t, ok)
	weight, _ := strong.Get("weight")
	require.Equal(t, "bold", weight)
}
