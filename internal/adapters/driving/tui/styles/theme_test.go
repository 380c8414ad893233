package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)

	palette := map[string]lipgloss.Color{
		"Primary":    theme.Primary,
		"Secondary":  theme.Secondary,
		"Background": theme.Background,
		"Foreground": theme.Foreground,
		"Muted":      theme.Muted,
		"Success":    theme.Success,
		"Warning":    theme.Warning,
		"Error":      theme.Error,
		"Border":     theme.Border,
	}
	for name, colour := range palette {
		assert.NotEmpty(t, string(colour), "%s must be set", name)
	}
}

func TestDefaultTheme_AccentsAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	accents := []lipgloss.Color{
		theme.Primary,
		theme.Secondary,
		theme.Success,
		theme.Warning,
		theme.Error,
	}

	seen := make(map[string]bool)
	for _, accent := range accents {
		s := string(accent)
		assert.False(t, seen[s], "duplicate accent: %s", s)
		seen[s] = true
	}
}

func TestNewStyles(t *testing.T) {
	theme := DefaultTheme()

	styles := NewStyles(theme)

	require.NotNil(t, styles)
	assert.Equal(t, theme, styles.Theme())
}

func TestNewStyles_NilThemeFallsBackToDefault(t *testing.T) {
	styles := NewStyles(nil)

	require.NotNil(t, styles)
	assert.NotNil(t, styles.Theme())
}

func TestDefaultStyles(t *testing.T) {
	styles := DefaultStyles()

	require.NotNil(t, styles)
	assert.NotNil(t, styles.Theme())
}

func TestStyles_AllInitialisedAndRender(t *testing.T) {
	styles := DefaultStyles()

	testCases := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Title", styles.Title},
		{"Subtitle", styles.Subtitle},
		{"Normal", styles.Normal},
		{"Muted", styles.Muted},
		{"Selected", styles.Selected},
		{"Error", styles.Error},
		{"Success", styles.Success},
		{"Warning", styles.Warning},
		{"Badge", styles.Badge},
		{"EmphasisHigh", styles.EmphasisHigh},
		{"EmphasisMedium", styles.EmphasisMedium},
		{"InputField", styles.InputField},
		{"StatusBar", styles.StatusBar},
		{"Help", styles.Help},
		{"Border", styles.Border},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotEqual(t, lipgloss.Style{}, tc.style, "style must be configured")
			assert.NotEmpty(t, tc.style.Render("spark plug"), "style must render text")
		})
	}
}

// Overlay rendering relies on the emphasis levels staying visually
// distinct: high is bold in the warning colour, medium is the plain
// secondary colour.
func TestStyles_EmphasisLevelsAreDistinct(t *testing.T) {
	theme := DefaultTheme()
	styles := NewStyles(theme)

	assert.True(t, styles.EmphasisHigh.GetBold(), "high emphasis is bold")
	assert.Equal(t, theme.Warning, styles.EmphasisHigh.GetForeground())

	assert.False(t, styles.EmphasisMedium.GetBold(), "medium emphasis is not bold")
	assert.Equal(t, theme.Secondary, styles.EmphasisMedium.GetForeground())
}

func TestStyles_BadgeStandsOut(t *testing.T) {
	theme := DefaultTheme()
	styles := NewStyles(theme)

	assert.True(t, styles.Badge.GetBold())
	assert.Equal(t, theme.Warning, styles.Badge.GetBackground())
	assert.Equal(t, 1, styles.Badge.GetPaddingLeft(), "badge text is padded")
}
