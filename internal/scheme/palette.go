package scheme

import "github.com/opencode-ai/themeforge/internal/color"

// neutralSteps is the number of intervals the neutral position tables are
// written in: step 0 is the background end, step 7 the foreground end.
const neutralSteps = 7

// Alphas applied to hue-tinted status surfaces and collaborator colours.
const (
	statusBaseAlpha    = 0.15
	statusHoveredAlpha = 0.20
	statusActiveAlpha  = 0.25

	playerSelectionAlpha = 0.24
	playerBorderAlpha    = 0.8
)

// hueMid is the sample position of a hue ramp's pure colour.
const hueMid = 0.5

func (s *Scheme) neutral(step float64) color.Color {
	return s.Sample(Neutral, step/neutralSteps)
}

// neutralStates samples neutral at five steps: base, hovered, active,
// focused, disabled.
func (s *Scheme) neutralStates(base, hovered, active, focused, disabled float64) States {
	return States{
		Base:     s.neutral(base),
		Hovered:  s.neutral(hovered),
		Active:   s.neutral(active),
		Focused:  s.neutral(focused),
		Disabled: s.neutral(disabled),
	}
}

func (s *Scheme) statusStates(role string) States {
	hue := s.Sample(role, hueMid)
	return States{
		Base:     hue.WithAlpha(statusBaseAlpha),
		Hovered:  hue.WithAlpha(statusHoveredAlpha),
		Active:   hue.WithAlpha(statusActiveAlpha),
		Focused:  hue.WithAlpha(statusActiveAlpha),
		Disabled: hue.WithAlpha(statusBaseAlpha),
	}
}

func buildBackgrounds(s *Scheme) Backgrounds {
	return Backgrounds{
		States:   s.neutralStates(0, 0.25, 0.5, 0.5, 0),
		Titlebar: s.neutralStates(1.25, 1.5, 1.75, 1.75, 1.25),
		Panel:    s.neutralStates(1, 1.25, 1.5, 1.5, 1),
		OnPanel:  s.neutralStates(0, 0.5, 1, 1, 0),
		OnEditor: s.neutralStates(1.25, 1.5, 1.75, 1.75, 1.25),
		Ok:       s.statusStates(Green),
		Error:    s.statusStates(Red),
		Warning:  s.statusStates(Yellow),
		Info:     s.statusStates(Blue),
	}
}

// borderStep picks the dark or light table entry; borders are the one role
// whose positions differ between appearances beyond the ramp reversal.
func (s *Scheme) borderStep(dark, light float64) color.Color {
	if s.IsLight() {
		return s.neutral(light)
	}
	return s.neutral(dark)
}

func buildBorders(s *Scheme) Borders {
	return Borders{
		Primary:   s.borderStep(0.25, 1.5),
		Secondary: s.borderStep(1, 1.25),
		Muted:     s.borderStep(3, 1.25),
		Active:    s.borderStep(3, 4),
		OnMedia:   s.darkest().WithAlpha(0.1),
		Ok:        s.Sample(Green, hueMid).WithAlpha(statusBaseAlpha),
		Error:     s.Sample(Red, hueMid).WithAlpha(statusBaseAlpha),
		Warning:   s.Sample(Yellow, hueMid).WithAlpha(statusBaseAlpha),
		Info:      s.Sample(Blue, hueMid).WithAlpha(statusBaseAlpha),
	}
}

func buildTexts(s *Scheme) Texts {
	return Texts{
		Primary:     s.neutral(6),
		Secondary:   s.neutral(5),
		Muted:       s.neutral(4),
		Placeholder: s.neutral(3),
		Active:      s.neutral(7),
		Feature:     s.Sample(Blue, hueMid),
		Ok:          s.Sample(Green, hueMid),
		Error:       s.Sample(Red, hueMid),
		Warning:     s.Sample(Yellow, hueMid),
		Info:        s.Sample(Blue, hueMid),
		OnMedia:     s.darkest(),
	}
}

func buildIcons(s *Scheme) Icons {
	return Icons{
		Primary:     s.neutral(4),
		Secondary:   s.neutral(3),
		Muted:       s.neutral(2),
		Placeholder: s.neutral(1),
		Active:      s.neutral(7),
		Feature:     s.Sample(Blue, hueMid),
		Ok:          s.Sample(Green, hueMid),
		Error:       s.Sample(Red, hueMid),
		Warning:     s.Sample(Yellow, hueMid),
		Info:        s.Sample(Blue, hueMid),
	}
}

// playerRoles assigns one hue per collaborator slot.
var playerRoles = [PlayerCount]string{Blue, Green, Magenta, Orange, Violet, Cyan, Red, Yellow}

func buildPlayers(s *Scheme) [PlayerCount]Player {
	var players [PlayerCount]Player
	for i, role := range playerRoles {
		hue := s.Sample(role, hueMid)
		players[i] = Player{
			Cursor:    hue,
			Selection: hue.WithAlpha(playerSelectionAlpha),
			Border:    hue.WithAlpha(playerBorderAlpha),
		}
	}
	return players
}

func buildEditor(s *Scheme) EditorColors {
	return EditorColors{
		Background:             s.Background.Base,
		IndentGuide:            s.Border.Muted,
		IndentGuideActive:      s.Border.Secondary,
		ActiveLine:             s.neutral(1).WithAlpha(0.5),
		HighlightedLine:        s.neutral(1.25),
		Selection:              s.Players[0].Selection,
		Occurrence:             s.Text.Active.WithAlpha(0.12),
		ActiveOccurrence:       s.Text.Active.WithAlpha(0.16),
		MatchingBracket:        s.Background.Active,
		Match:                  s.Sample(Violet, 0.15),
		ActiveMatch:            s.Sample(Violet, 0.4).WithAlpha(0.25),
		Related:                s.Background.Focused,
		GutterPrimary:          s.Text.Placeholder,
		GutterActive:           s.Text.Active,
		DocumentHighlightRead:  s.Sample(Blue, hueMid).WithAlpha(0.1),
		DocumentHighlightWrite: s.Sample(Blue, hueMid).WithAlpha(0.2),
	}
}
