package styletree

import (
	"github.com/opencode-ai/themeforge/internal/scheme"
	"github.com/opencode-ai/themeforge/internal/style"
)

func panel(s *scheme.Scheme, l Layout) *style.Node {
	return style.New(
		style.F("background", s.Background.Panel.Base),
		style.F("padding", axes(l.Spacing*1.5, 0)),
	)
}

func projectPanel(s *scheme.Scheme, l Layout) *style.Node {
	entry := style.New(
		style.F("height", l.PanelRowHeight),
		style.F("iconColor", s.Icon.Muted),
		style.F("iconSize", l.IconWidth),
		style.F("iconSpacing", l.IconWidth),
		style.F("text", Text(l, Mono, l.Sizes.SM, s.Text.Secondary)),
	)

	n := panel(s, l)
	n.Set("indentWidth", l.Spacing)
	n.Set("entry", entry)
	n.Set("hoveredEntry", style.Extending("$projectPanel.entry",
		style.F("background", s.Background.Panel.Hovered),
	))
	n.Set("selectedEntry", style.Extending("$projectPanel.entry",
		style.F("text", Text(l, Mono, l.Sizes.SM, s.Text.Primary)),
	))
	n.Set("hoveredSelectedEntry", style.Extending("$projectPanel.selectedEntry",
		style.F("background", s.Background.Panel.Hovered),
	))
	n.Set("ignoredEntryFade", 0.5)
	n.Set("cutEntryFade", 0.4)
	n.Set("filenameEditor", style.New(
		style.F("background", s.Background.OnPanel.Active),
		style.F("text", Text(l, Mono, l.Sizes.SM, s.Text.Active)),
		style.F("selection", s.Players[0].Selection),
	))
	return n
}

func contactsPanel(s *scheme.Scheme, l Layout) *style.Node {
	projectRow := style.New(
		style.F("guestAvatarSpacing", 4.0),
		style.F("height", 24.0),
		style.F("guestAvatar", style.New(
			style.F("cornerRadius", 8.0),
			style.F("width", 14.0),
		)),
		style.F("name", style.New(
			style.F("text", Text(l, Mono, l.Sizes.SM, s.Text.Placeholder)),
			style.F("margin", Edges{Left: l.Spacing, Right: 6}),
		)),
		style.F("guests", style.New(
			style.F("margin", Edges{Left: l.Spacing, Right: l.Spacing}),
		)),
		style.F("padding", axes(0, l.Spacing)),
	)

	contactButton := style.New(
		style.F("background", s.Background.OnPanel.Base),
		style.F("color", s.Icon.Secondary),
		style.F("iconWidth", 8.0),
		style.F("buttonWidth", 16.0),
		style.F("cornerRadius", 8.0),
	)

	n := panel(s, l)
	n.Set("userQueryEditor", style.New(
		style.F("background", s.Background.OnPanel.Base),
		style.F("cornerRadius", l.CornerRadius),
		style.F("text", Text(l, Mono, l.Sizes.SM, s.Text.Primary)),
		style.F("placeholderText", Text(l, Mono, l.Sizes.SM, s.Text.Placeholder)),
		style.F("selection", s.Players[0].Selection),
		style.F("border", Border(s.Border.Secondary)),
		style.F("padding", axes(4, l.Spacing)),
		style.F("margin", Edges{Left: 6}),
	))
	n.Set("userQueryEditorHeight", 32.0)
	n.Set("addContactButton", style.New(
		style.F("margin", Edges{Left: 6, Right: 6}),
		style.F("color", s.Icon.Primary),
		style.F("buttonWidth", l.Spacing*2),
		style.F("iconWidth", l.Spacing*2),
	))
	n.Set("rowHeight", 28.0)
	n.Set("treeBranchColor", s.Border.Muted)
	n.Set("treeBranchWidth", 1.0)
	n.Set("headerRow", style.New(
		style.F("text", Text(l, Mono, l.Sizes.SM, s.Text.Secondary)),
		style.F("margin", Edges{Top: 14}),
		style.F("padding", Edges{Left: l.Spacing * 1.5, Right: l.Spacing * 1.5}),
	))
	n.Set("contactRow", style.New(
		style.F("padding", Edges{Left: l.Spacing * 1.5}),
		style.F("contactAvatar", style.New(
			style.F("cornerRadius", 10.0),
			style.F("width", l.AvatarWidth),
		)),
		style.F("contactUsername", Text(l, Mono, l.Sizes.SM, s.Text.Primary)),
	))
	n.Set("contactButton", contactButton)
	n.Set("disabledContactButton", style.Extending("$contactsPanel.contactButton",
		style.F("color", s.Icon.Muted),
	))
	n.Set("projectRow", projectRow)
	n.Set("sharedProjectRow", style.Extending("$contactsPanel.projectRow",
		style.F("name", style.New(
			style.F("text", Text(l, Mono, l.Sizes.SM, s.Text.Primary)),
		)),
	))
	n.Set("hoveredSharedProjectRow", style.Extending("$contactsPanel.sharedProjectRow",
		style.F("background", s.Background.OnPanel.Hovered),
		style.F("cornerRadius", l.CornerRadius),
	))
	n.Set("unsharedProjectRow", style.Extending("$contactsPanel.projectRow",
		style.F("name", style.New(
			style.F("text", Text(l, Mono, l.Sizes.SM, s.Text.Muted)),
		)),
	))
	n.Set("inviteRow", style.New(
		style.F("padding", Edges{Left: l.Spacing * 1.5, Right: l.Spacing * 1.5}),
		style.F("border", Border(s.Border.Primary, Top())),
		style.F("text", Text(l, Sans, l.Sizes.SM, s.Text.Secondary)),
		style.F("hover", style.New(
			style.F("text", Text(l, Sans, l.Sizes.SM, s.Text.Active)),
		)),
	))
	return n
}

func chatPanel(s *scheme.Scheme, l Layout) *style.Node {
	message := style.New(
		style.F("body", Text(l, Sans, l.Sizes.SM, s.Text.Secondary)),
		style.F("timestamp", Text(l, Sans, l.Sizes.SM, s.Text.Muted)),
		style.F("padding", Edges{Bottom: 6}),
		style.F("sender", style.New(
			style.F("text", Text(l, Sans, l.Sizes.SM, s.Text.Primary).WithWeight(scheme.WeightBold)),
			style.F("margin", Edges{Right: 8}),
		)),
	)

	channelName := Text(l, Sans, l.Sizes.SM, s.Text.Primary).WithWeight(scheme.WeightBold)

	n := panel(s, l)
	n.Set("channelName", channelName)
	n.Set("channelNameHash", style.Extending("$chatPanel.channelName",
		style.F("color", s.Text.Muted),
		style.F("weight", string(scheme.WeightNormal)),
		style.F("padding", Edges{Right: l.Spacing}),
	))
	n.Set("channelSelect", style.New(
		style.F("header", style.New(
			style.F("name", Text(l, Sans, l.Sizes.SM, s.Text.Primary)),
			style.F("padding", Edges{Bottom: 4, Left: 0}),
			style.F("hash", style.New(
				style.F("text", Text(l, Sans, l.Sizes.SM, s.Text.Muted)),
				style.F("margin", Edges{Right: l.Spacing}),
			)),
		)),
		style.F("item", style.New(
			style.F("name", Text(l, Sans, l.Sizes.SM, s.Text.Secondary)),
			style.F("padding", axes(4, l.Spacing)),
			style.F("hash", style.New(
				style.F("text", Text(l, Sans, l.Sizes.SM, s.Text.Muted)),
				style.F("margin", Edges{Right: l.Spacing}),
			)),
		)),
		style.F("hoveredItem", style.Extending("$chatPanel.channelSelect.item",
			style.F("background", s.Background.OnPanel.Hovered),
			style.F("cornerRadius", l.CornerRadius),
		)),
		style.F("activeItem", style.Extending("$chatPanel.channelSelect.item",
			style.F("name", Text(l, Sans, l.Sizes.SM, s.Text.Primary)),
		)),
		style.F("menu", style.New(
			style.F("background", s.Background.OnPanel.Base),
			style.F("cornerRadius", l.CornerRadius),
			style.F("border", Border(s.Border.Primary)),
			style.F("padding", even(4)),
			style.F("shadow", PopoverShadow(s)),
		)),
	))
	n.Set("signInPrompt", Text(l, Sans, l.Sizes.SM, s.Text.Secondary).WithUnderline(true))
	n.Set("hoveredSignInPrompt", style.Extending("$chatPanel.signInPrompt",
		style.F("color", s.Text.Primary),
	))
	n.Set("message", message)
	n.Set("pendingMessage", style.Extending("$chatPanel.message",
		style.F("body", style.New(style.F("color", s.Text.Muted))),
		style.F("sender", style.New(
			style.F("text", style.New(style.F("color", s.Text.Muted))),
		)),
		style.F("timestamp", style.New(style.F("color", s.Text.Muted))),
	))
	n.Set("inputEditor", style.New(
		style.F("background", s.Background.OnPanel.Base),
		style.F("cornerRadius", l.CornerRadius),
		style.F("text", Text(l, Mono, l.Sizes.SM, s.Text.Primary)),
		style.F("placeholderText", Text(l, Mono, l.Sizes.SM, s.Text.Placeholder)),
		style.F("border", Border(s.Border.Secondary)),
		style.F("padding", axes(7, l.Spacing)),
		style.F("selection", s.Players[0].Selection),
	))
	return n
}
