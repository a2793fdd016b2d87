package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/jask/privix/internal/state"
)

// maxJumpDistance bounds how far a typed name may be from a screen name and
// still resolve. Short input gets half its length at most.
const maxJumpDistance = 3

// jumpAliases are extra names accepted by the command prompt.
var jumpAliases = map[string]state.Screen{
	"dashboard":   state.ScreenHome,
	"fix":         state.ScreenQuickFix,
	"quick fix":   state.ScreenQuickFix,
	"permissions": state.ScreenQuickFix,
	"compare":     state.ScreenComparison,
	"screenshots": state.ScreenScreenshot,
	"weekly":      state.ScreenReport,
	"start":       state.ScreenOnboarding,
}

// resolveScreen maps typed input to a screen: exact names and titles first,
// then the closest candidate within jumpLimit edits.
func resolveScreen(input string) (state.Screen, error) {
	q := strings.ToLower(strings.TrimSpace(input))
	if q == "" {
		return "", fmt.Errorf("type a screen name")
	}
	if s, err := state.ParseScreen(q); err == nil {
		return s, nil
	}

	candidates := make(map[string]state.Screen)
	for _, s := range state.Screens() {
		candidates[string(s)] = s
		candidates[strings.ToLower(s.Title())] = s
	}
	for alias, s := range jumpAliases {
		candidates[alias] = s
	}
	if s, ok := candidates[q]; ok {
		return s, nil
	}

	limit := jumpLimit(q)
	best, bestDist := state.Screen(""), limit+1
	bestName := ""
	for name, s := range candidates {
		d := levenshtein.ComputeDistance(q, name)
		// ties resolve to the alphabetically first name so results are stable
		if d < bestDist || (d == bestDist && name < bestName) {
			best, bestDist, bestName = s, d, name
		}
	}
	if bestDist > limit {
		return "", fmt.Errorf("no screen matches %q", input)
	}
	return best, nil
}

func jumpLimit(q string) int {
	return min(maxJumpDistance, utf8.RuneCountInString(q)/2)
}

func newPrompt() textinput.Model {
	inp := textinput.New()
	inp.Prompt = ":"
	inp.Placeholder = "screen name"
	inp.CharLimit = 32
	inp.Width = 28
	return inp
}
