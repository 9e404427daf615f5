package styletree

import (
	"github.com/opencode-ai/themeforge/internal/scheme"
	"github.com/opencode-ai/themeforge/internal/style"
)

func contextMenu(s *scheme.Scheme, l Layout) *style.Node {
	item := style.New(
		style.F("iconSpacing", l.Spacing),
		style.F("iconWidth", 14.0),
		style.F("padding", axes(2, l.Spacing)),
		style.F("cornerRadius", l.CornerRadius),
		style.F("label", Text(l, Sans, l.Sizes.SM, s.Text.Primary)),
		style.F("keystroke", style.New(
			style.F("text", Text(l, Sans, l.Sizes.SM, s.Text.Muted).WithWeight(scheme.WeightBold)),
			style.F("padding", axes(0, 3)),
		)),
	)

	return style.New(
		style.F("background", s.Background.OnPanel.Base),
		style.F("cornerRadius", l.CornerRadius*2),
		style.F("shadow", PopoverShadow(s)),
		style.F("border", Border(s.Border.Primary)),
		style.F("keystrokeMargin", 30.0),
		style.F("itemBackground", Background(s.Background.OnPanel)),
		style.F("item", item),
		style.F("hoveredItem", style.Extending("$contextMenu.item",
			style.F("background", s.Background.OnPanel.Hovered),
		)),
		style.F("activeItem", style.Extending("$contextMenu.item",
			style.F("background", s.Background.OnPanel.Active),
			style.F("label", Text(l, Sans, l.Sizes.SM, s.Text.Active)),
		)),
		style.F("activeHoveredItem", style.Extending("$contextMenu.activeItem",
			style.F("background", s.Background.OnPanel.Hovered),
		)),
		style.F("separator", style.New(
			style.F("background", s.Border.Primary),
			style.F("margin", axes(2, 0)),
		)),
	)
}

func picker(s *scheme.Scheme, l Layout) *style.Node {
	item := style.New(
		style.F("padding", axes(4, 12)),
		style.F("margin", Edges{Top: 1, Left: 4, Right: 4}),
		style.F("cornerRadius", l.CornerRadius),
		style.F("text", Text(l, Sans, l.Sizes.SM, s.Text.Secondary)),
		style.F("highlightText", Text(l, Sans, l.Sizes.SM, s.Text.Feature).WithWeight(scheme.WeightBold)),
	)

	return style.New(
		style.F("background", s.Background.OnPanel.Base),
		style.F("cornerRadius", l.CornerRadius*2),
		style.F("padding", even(l.Spacing)),
		style.F("shadow", ModalShadow(s)),
		style.F("border", Border(s.Border.Primary)),
		style.F("width", l.ModalWidth),
		style.F("item", item),
		style.F("activeItem", style.Extending("$picker.item",
			style.F("background", s.Background.OnPanel.Active),
			style.F("text", Text(l, Sans, l.Sizes.SM, s.Text.Active)),
		)),
		style.F("hoveredItem", style.Extending("$picker.item",
			style.F("background", s.Background.OnPanel.Hovered),
		)),
		style.F("empty", style.New(
			style.F("text", Text(l, Sans, l.Sizes.SM, s.Text.Muted)),
			style.F("padding", axes(l.Spacing, 16)),
		)),
		style.F("inputEditor", style.New(
			style.F("placeholderText", Text(l, Sans, l.Sizes.SM, s.Text.Placeholder)),
			style.F("selection", s.Players[0].Selection),
			style.F("text", Text(l, Mono, l.Sizes.SM, s.Text.Active)),
			style.F("background", s.Background.OnPanel.Base),
			style.F("border", Border(s.Border.Secondary)),
			style.F("cornerRadius", l.CornerRadius),
			style.F("padding", axes(7, l.Spacing)),
		)),
	)
}

func commandPalette(s *scheme.Scheme, l Layout) *style.Node {
	return style.New(
		style.F("keystrokeSpacing", l.Spacing),
		style.F("key", style.New(
			style.F("text", Text(l, Mono, l.Sizes.XS, s.Text.Secondary)),
			style.F("cornerRadius", 4.0),
			style.F("background", s.Background.OnPanel.Base),
			style.F("border", Border(s.Border.Secondary)),
			style.F("padding", Edges{Top: 2, Bottom: 2, Left: l.Spacing, Right: l.Spacing}),
			style.F("margin", Edges{Left: 2}),
		)),
		style.F("activeKey", style.Extending("$commandPalette.key",
			style.F("text", Text(l, Mono, l.Sizes.XS, s.Text.Active)),
			style.F("background", s.Background.OnPanel.Active),
		)),
	)
}

func tooltip(s *scheme.Scheme, l Layout) *style.Node {
	return style.New(
		style.F("background", s.Background.OnPanel.Base),
		style.F("border", Border(s.Border.Secondary)),
		style.F("padding", axes(2, l.Spacing)),
		style.F("margin", Edges{Top: 6, Left: 6}),
		style.F("shadow", PopoverShadow(s)),
		style.F("cornerRadius", l.CornerRadius),
		style.F("text", Text(l, Sans, l.Sizes.XS, s.Text.Primary)),
		style.F("keystroke", style.New(
			style.F("background", s.Background.OnPanel.Active),
			style.F("cornerRadius", 4.0),
			style.F("margin", Edges{Left: 6}),
			style.F("padding", axes(1, 3)),
			style.F("text", Text(l, Mono, l.Sizes.XS, s.Text.Secondary).WithWeight(scheme.WeightBold)),
		)),
		style.F("maxTextWidth", l.PopoverWidth+80),
	)
}

func updateNotification(s *scheme.Scheme, l Layout) *style.Node {
	return style.New(
		style.F("message", style.New(
			style.F("text", Text(l, Sans, l.Sizes.XS, s.Text.Secondary)),
			style.F("margin", Edges{Left: l.IconWidth + l.Spacing, Right: l.Spacing}),
		)),
		style.F("actionMessage", style.New(
			style.F("text", Text(l, Sans, l.Sizes.XS, s.Text.Secondary)),
			style.F("margin", Edges{Left: l.IconWidth + l.Spacing, Top: 6, Bottom: 6}),
		)),
		style.F("hoverActionMessage", style.Extending("$updateNotification.actionMessage",
			style.F("text", Text(l, Sans, l.Sizes.XS, s.Text.Primary)),
		)),
		style.F("dismissButton", style.New(
			style.F("color", s.Icon.Secondary),
			style.F("iconWidth", l.IconWidth),
			style.F("iconHeight", l.IconWidth),
			style.F("buttonWidth", l.IconWidth),
			style.F("buttonHeight", l.IconWidth),
			style.F("hover", style.New(
				style.F("color", s.Icon.Primary),
			)),
		)),
		style.F("container", style.New(
			style.F("background", s.Background.OnPanel.Base),
			style.F("border", Border(s.Border.Primary)),
			style.F("cornerRadius", l.CornerRadius),
			style.F("padding", even(l.Spacing)),
			style.F("shadow", ModalShadow(s)),
			style.F("width", l.PopoverWidth+160),
		)),
	)
}
