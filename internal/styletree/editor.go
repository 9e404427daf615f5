package styletree

import (
	"strconv"

	"github.com/opencode-ai/themeforge/internal/color"
	"github.com/opencode-ai/themeforge/internal/scheme"
	"github.com/opencode-ai/themeforge/internal/style"
)

func syntaxTable(s *scheme.Scheme) *style.Node {
	n := style.New()
	for _, entry := range s.Syntax {
		h := style.New(style.F("color", entry.Color))
		if entry.Weight != "" && entry.Weight != scheme.WeightNormal {
			h.Set("weight", string(entry.Weight))
		}
		if entry.Italic {
			h.Set("italic", true)
		}
		if entry.Underline {
			h.Set("underline", true)
		}
		n.Set(entry.Kind, h)
	}
	return n
}

func players(s *scheme.Scheme) *style.Node {
	n := style.New()
	for i, p := range s.Players {
		n.Set(playerKey(i), style.New(
			style.F("cursor", p.Cursor),
			style.F("selection", p.Selection),
			style.F("border", p.Border),
		))
	}
	return n
}

func playerKey(i int) string {
	return "player" + strconv.Itoa(i+1)
}

func diagnostic(l Layout, c color.Color) *style.Node {
	return style.New(
		style.F("textScaleFactor", 0.857),
		style.F("header", style.New(
			style.F("border", Border(c, Top())),
		)),
		style.F("message", style.New(
			style.F("text", Text(l, Sans, l.Sizes.SM, c)),
			style.F("highlightText", Text(l, Sans, l.Sizes.SM, c).WithWeight(scheme.WeightBold)),
		)),
	)
}

func editor(s *scheme.Scheme, l Layout) *style.Node {
	autocompleteItem := style.New(
		style.F("cornerRadius", l.CornerRadius/2),
		style.F("padding", axes(2, 4)),
	)

	return style.New(
		style.F("textColor", s.Text.Primary),
		style.F("background", s.Editor.Background),
		style.F("activeLineBackground", s.Editor.ActiveLine),
		style.F("highlightedLineBackground", s.Editor.HighlightedLine),
		style.F("codeActions", style.New(
			style.F("indicator", s.Icon.Secondary),
			style.F("verticalScale", 0.618),
		)),
		style.F("diffBackgroundDeleted", s.Background.Error.Base),
		style.F("diffBackgroundInserted", s.Background.Ok.Base),
		style.F("documentHighlightReadBackground", s.Editor.DocumentHighlightRead),
		style.F("documentHighlightWriteBackground", s.Editor.DocumentHighlightWrite),
		style.F("errorColor", s.Text.Error),
		style.F("gutterBackground", s.Editor.Background),
		style.F("gutterPaddingFactor", 3.5),
		style.F("lineNumber", s.Editor.GutterPrimary),
		style.F("lineNumberActive", s.Editor.GutterActive),
		style.F("renameFade", 0.6),
		style.F("unnecessaryCodeFade", 0.5),
		style.F("selection", s.Players[0].Selection),
		style.F("guestSelections", guestSelections(s)),
		style.F("indentGuide", s.Editor.IndentGuide),
		style.F("indentGuideActive", s.Editor.IndentGuideActive),
		style.F("matchingBracket", s.Editor.MatchingBracket),
		style.F("occurrence", s.Editor.Occurrence),
		style.F("activeOccurrence", s.Editor.ActiveOccurrence),
		style.F("autocomplete", style.New(
			style.F("background", s.Background.OnEditor.Base),
			style.F("cornerRadius", l.CornerRadius),
			style.F("padding", even(4)),
			style.F("border", Border(s.Border.Secondary)),
			style.F("shadow", PopoverShadow(s)),
			style.F("matchHighlight", Text(l, Mono, l.Sizes.SM, s.Text.Feature)),
			style.F("margin", Edges{Left: -14}),
			style.F("item", autocompleteItem),
			style.F("hoveredItem", style.Extending("$editor.autocomplete.item",
				style.F("background", s.Background.OnEditor.Hovered),
			)),
			style.F("selectedItem", style.Extending("$editor.autocomplete.item",
				style.F("background", s.Background.OnEditor.Active),
			)),
		)),
		style.F("diagnosticHeader", style.New(
			style.F("background", s.Background.Panel.Base),
			style.F("iconWidthFactor", 1.5),
			style.F("textScaleFactor", 0.857),
			style.F("border", Border(s.Border.Secondary, Top(), Bottom())),
			style.F("code", Text(l, Mono, l.Sizes.SM, s.Text.Muted).WithItalic(true)),
			style.F("message", style.New(
				style.F("highlightText", Text(l, Sans, l.Sizes.SM, s.Text.Primary).WithWeight(scheme.WeightBold)),
				style.F("text", Text(l, Sans, l.Sizes.SM, s.Text.Secondary)),
			)),
		)),
		style.F("diagnosticPathHeader", style.New(
			style.F("background", s.Editor.ActiveLine),
			style.F("textScaleFactor", 0.857),
			style.F("filename", Text(l, Mono, l.Sizes.SM, s.Text.Primary)),
			style.F("path", style.New(
				style.F("text", Text(l, Mono, l.Sizes.SM, s.Text.Muted)),
				style.F("margin", Edges{Left: 12}),
			)),
		)),
		style.F("errorDiagnostic", diagnostic(l, s.Text.Error)),
		style.F("warningDiagnostic", diagnostic(l, s.Text.Warning)),
		style.F("informationDiagnostic", diagnostic(l, s.Text.Info)),
		style.F("hintDiagnostic", diagnostic(l, s.Text.Info)),
		style.F("invalidErrorDiagnostic", style.Extending("$editor.errorDiagnostic",
			style.F("message", style.New(
				style.F("text", Text(l, Sans, l.Sizes.SM, s.Text.Muted)),
			)),
		)),
		style.F("invalidWarningDiagnostic", style.Extending("$editor.warningDiagnostic",
			style.F("message", style.New(
				style.F("text", Text(l, Sans, l.Sizes.SM, s.Text.Muted)),
			)),
		)),
		style.F("syntax", syntaxTable(s)),
	)
}

func guestSelections(s *scheme.Scheme) []any {
	out := make([]any, 0, len(s.Players)-1)
	for i := 1; i < len(s.Players); i++ {
		out = append(out, style.RefTo("$players."+playerKey(i)))
	}
	return out
}
