package styletree

import (
	"github.com/opencode-ai/themeforge/internal/scheme"
	"github.com/opencode-ai/themeforge/internal/style"
)

func meta(s *scheme.Scheme, _ Layout) *style.Node {
	return style.New(
		style.F("name", s.Name),
		style.F("appearance", string(s.Appearance)),
		style.F("isLight", s.IsLight()),
	)
}

func workspace(s *scheme.Scheme, l Layout) *style.Node {
	avatar := style.New(
		style.F("cornerRadius", l.AvatarWidth/2),
		style.F("width", l.AvatarWidth),
	)

	return style.New(
		style.F("background", s.Background.Panel.Base),
		style.F("leaderBorderOpacity", 0.7),
		style.F("leaderBorderWidth", 2.0),
		style.F("titlebar", style.New(
			style.F("avatarWidth", l.AvatarWidth),
			style.F("avatarMargin", l.Spacing),
			style.F("height", l.TitlebarHeight),
			style.F("background", s.Background.Titlebar.Base),
			style.F("border", Border(s.Border.Primary, Bottom())),
			style.F("padding", Edges{Left: 80}),
			style.F("title", Text(l, Sans, l.Sizes.SM, s.Text.Primary)),
			style.F("avatar", avatar),
			style.F("offlineIcon", style.New(
				style.F("color", s.Icon.Secondary),
				style.F("width", 16.0),
				style.F("margin", Edges{Left: l.Spacing}),
				style.F("padding", Edges{Right: 4}),
			)),
			style.F("outdatedWarning", style.Extending("$workspace.titlebar.offlineIcon",
				style.F("color", s.Text.Warning),
				style.F("size", l.Sizes.XS),
			)),
			style.F("signInPrompt", containedText(
				Text(l, Sans, l.Sizes.SM, s.Text.Secondary),
				axes(1, 6),
				style.F("background", s.Background.Titlebar.Base),
				style.F("border", Border(s.Border.Secondary)),
				style.F("cornerRadius", l.CornerRadius),
				style.F("margin", Edges{Left: l.Spacing}),
			)),
			style.F("hoveredSignInPrompt", style.Extending("$workspace.titlebar.signInPrompt",
				style.F("background", s.Background.Titlebar.Hovered),
				style.F("color", s.Text.Primary),
			)),
		)),
		style.F("paneDivider", style.New(
			style.F("color", s.Border.Secondary),
			style.F("width", 1.0),
		)),
		style.F("leftSidebar", sidebar(s, l, "leftSidebar", Right())),
		style.F("rightSidebar", sidebar(s, l, "rightSidebar", Left())),
		style.F("disconnectedOverlay", style.New(
			style.F("background", s.Background.Base.WithAlpha(0.8)),
			style.F("text", Text(l, Sans, l.Sizes.SM, s.Text.Primary)),
		)),
	)
}

func sidebar(s *scheme.Scheme, l Layout, key string, edge BorderOption) *style.Node {
	return style.New(
		style.F("width", l.SidebarWidth),
		style.F("border", Border(s.Border.Primary, edge)),
		style.F("item", style.New(
			style.F("iconColor", s.Icon.Secondary),
			style.F("iconSize", l.Sizes.MD),
			style.F("height", l.SidebarWidth),
		)),
		style.F("activeItem", style.Extending("$workspace."+key+".item",
			style.F("iconColor", s.Icon.Active),
		)),
		style.F("resizeHandle", style.New(
			style.F("background", s.Border.Primary),
			style.F("padding", Edges{Left: 1}),
		)),
	)
}

func tabBar(s *scheme.Scheme, l Layout) *style.Node {
	tab := style.New(
		style.F("height", l.TabHeight),
		style.F("background", s.Background.Titlebar.Base),
		style.F("border", Border(s.Border.Primary, Left(), Bottom(), Overlay())),
		style.F("iconClose", s.Icon.Muted),
		style.F("iconCloseActive", s.Icon.Active),
		style.F("iconConflict", s.Icon.Warning),
		style.F("iconDirty", s.Icon.Info),
		style.F("iconWidth", l.IconWidth),
		style.F("spacing", l.IconWidth),
		style.F("text", Text(l, Sans, l.Sizes.SM, s.Text.Secondary)),
		style.F("padding", axes(0, l.Spacing)),
		style.F("description", style.New(
			style.F("margin", Edges{Left: l.Spacing}),
			style.F("text", Text(l, Sans, l.Sizes.XS, s.Text.Placeholder)),
		)),
	)

	return style.New(
		style.F("height", l.TabHeight),
		style.F("background", s.Background.Titlebar.Base),
		style.F("border", Border(s.Border.Primary, Bottom())),
		style.F("tab", tab),
		style.F("activeTab", style.Extending("$tabBar.tab",
			style.F("background", s.Background.Base),
			style.F("text", Text(l, Sans, l.Sizes.SM, s.Text.Active)),
			style.F("border", style.New(
				style.F("bottom", false),
			)),
		)),
		style.F("inactivePaneActiveTab", style.Extending("$tabBar.activeTab",
			style.F("text", Text(l, Sans, l.Sizes.SM, s.Text.Secondary)),
		)),
		style.F("draggedTab", style.Extending("$tabBar.activeTab",
			style.F("background", s.Background.Base.WithAlpha(0.8)),
			style.F("shadow", PopoverShadow(s)),
		)),
		style.F("paneButton", style.New(
			style.F("color", s.Icon.Secondary),
			style.F("iconWidth", 12.0),
			style.F("buttonWidth", l.TabHeight),
			style.F("hover", style.New(
				style.F("color", s.Icon.Active),
				style.F("background", s.Background.Titlebar.Hovered),
			)),
		)),
	)
}

func statusBar(s *scheme.Scheme, l Layout) *style.Node {
	item := style.New(
		style.F("margin", Edges{Right: 6}),
		style.F("text", Text(l, Sans, l.Sizes.XS, s.Text.Secondary)),
		style.F("iconColor", s.Icon.Secondary),
		style.F("iconWidth", 14.0),
	)

	return style.New(
		style.F("height", l.StatusBarHeight),
		style.F("itemSpacing", l.Spacing),
		style.F("padding", axes(0, 6)),
		style.F("border", Border(s.Border.Primary, Top(), Overlay())),
		style.F("background", s.Background.Titlebar.Base),
		style.F("cursorPosition", Text(l, Sans, l.Sizes.XS, s.Text.Muted)),
		style.F("autoUpdateProgressMessage", Text(l, Sans, l.Sizes.XS, s.Text.Muted)),
		style.F("autoUpdateDoneMessage", Text(l, Sans, l.Sizes.XS, s.Text.Muted)),
		style.F("lspStatus", style.New(
			style.F("iconSpacing", 4.0),
			style.F("iconWidth", 14.0),
			style.F("height", 18.0),
			style.F("message", Text(l, Sans, l.Sizes.XS, s.Text.Muted)),
			style.F("iconColor", s.Icon.Muted),
			style.F("hover", style.New(
				style.F("message", Text(l, Sans, l.Sizes.XS, s.Text.Primary)),
				style.F("iconColor", s.Icon.Primary),
				style.F("background", s.Background.Titlebar.Hovered),
			)),
		)),
		style.F("diagnosticSummary", style.New(
			style.F("height", 16.0),
			style.F("iconWidth", 14.0),
			style.F("iconSpacing", 2.0),
			style.F("summarySpacing", 6.0),
			style.F("text", Text(l, Sans, l.Sizes.SM, s.Text.Primary)),
			style.F("iconColorOk", s.Icon.Muted),
			style.F("iconColorWarning", s.Icon.Warning),
			style.F("iconColorError", s.Icon.Error),
			style.F("containerOk", style.New(
				style.F("cornerRadius", l.CornerRadius),
				style.F("padding", axes(0, 3)),
			)),
			style.F("containerWarning", style.Extending("$statusBar.diagnosticSummary.containerOk",
				style.F("background", s.Background.Warning.Base),
				style.F("border", Border(s.Border.Warning)),
			)),
			style.F("containerError", style.Extending("$statusBar.diagnosticSummary.containerOk",
				style.F("background", s.Background.Error.Base),
				style.F("border", Border(s.Border.Error)),
			)),
		)),
		style.F("sidebarButtons", style.New(
			style.F("groupLeft", style.New(style.F("margin", Edges{Right: 20}))),
			style.F("groupRight", style.New(style.F("margin", Edges{Left: 6}))),
			style.F("item", item),
			style.F("activeItem", style.Extending("$statusBar.sidebarButtons.item",
				style.F("iconColor", s.Icon.Active),
			)),
		)),
	)
}
