package dashboard

import (
	"bytes"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/econviz/internal/logger"
	"github.com/alexisbeaulieu97/econviz/internal/series"
)

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m := loadedModel(t, Options{})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.False(t, m.showError)
}

func TestUpdate_WindowSizeMsg_TooSmall(t *testing.T) {
	m := loadedModel(t, Options{})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(Model)
	assert.True(t, m.showError, "Should show error for small terminal")
	assert.Contains(t, m.errorMsg, "Terminal too small")

	next, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	assert.False(t, m.showError, "size error clears once the terminal is large enough")
}

func TestRegionKeys(t *testing.T) {
	tests := []struct {
		name  string
		start series.Region
		key   tea.KeyMsg
		want  series.Region
	}{
		{"tab advances", series.US, tea.KeyMsg{Type: tea.KeyTab}, series.AUS},
		{"tab wraps", series.EU, tea.KeyMsg{Type: tea.KeyTab}, series.US},
		{"shift+tab wraps", series.US, tea.KeyMsg{Type: tea.KeyShiftTab}, series.EU},
		{"digit selects", series.US, runes("3"), series.EU},
		{"digit two", series.EU, runes("2"), series.AUS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := loadedModel(t, Options{Region: tt.start})

			m, cmd := press(t, m, tt.key)
			assert.Equal(t, tt.want, m.Region())
			assert.True(t, m.Loading())
			assert.Equal(t, 0, m.Cursor())

			m = runCmd(t, m, cmd)
			require.Len(t, m.Panels(), 12)
			assert.Equal(t, tt.want.String()+"_btn_0", m.Panels()[0].ActionKey)
		})
	}
}

func TestSameRegionDoesNotRerender(t *testing.T) {
	m := loadedModel(t, Options{})

	m, cmd := press(t, m, runes("1"))
	assert.Nil(t, cmd)
	assert.False(t, m.Loading())
}

func TestCursorMovement(t *testing.T) {
	m := loadedModel(t, Options{})

	right := tea.KeyMsg{Type: tea.KeyRight}
	down := tea.KeyMsg{Type: tea.KeyDown}

	m, _ = press(t, m, right)
	assert.Equal(t, 1, m.Cursor())
	m, _ = press(t, m, right)
	m, _ = press(t, m, right)
	assert.Equal(t, 2, m.Cursor(), "right stops at the end of the row")

	m, _ = press(t, m, down)
	assert.Equal(t, 5, m.Cursor())
	m, _ = press(t, m, runes("h"))
	assert.Equal(t, 4, m.Cursor())

	for range 5 {
		m, _ = press(t, m, runes("j"))
	}
	assert.Equal(t, 10, m.Cursor(), "down stops at the last row")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 7, m.Cursor())
}

func TestThemePicker(t *testing.T) {
	m := loadedModel(t, Options{Theme: "dark"})

	m, cmd := press(t, m, runes("t"))
	assert.Nil(t, cmd)
	assert.Equal(t, ViewThemePicker, m.ViewMode())
	assert.Contains(t, m.View(), "Select Theme")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ViewGrid, m.ViewMode())
	assert.Equal(t, "light", m.ThemeName())
	assert.True(t, m.Loading())

	m = runCmd(t, m, cmd)
	require.NotEmpty(t, m.Panels())
	assert.Equal(t, "plotly_white", m.Panels()[0].Figure.Template)
}

func TestThemePickerEscapeKeepsTheme(t *testing.T) {
	m := loadedModel(t, Options{Theme: "dark"})

	m, _ = press(t, m, runes("t"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEscape})

	assert.Nil(t, cmd)
	assert.Equal(t, ViewGrid, m.ViewMode())
	assert.Equal(t, "dark", m.ThemeName())
}

func TestPurchaseOnlyLogs(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	m := NewModel(newTestGallery(), log, Options{})
	m = runCmd(t, m, m.Init())
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	before := m.Panels()

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, before, m.Panels())
	assert.Equal(t, ViewGrid, m.ViewMode())
	assert.Contains(t, buf.String(), "purchase pressed")
	assert.Contains(t, buf.String(), "us_btn_1")

	_, cmd = press(t, m, runes("p"))
	assert.Nil(t, cmd)
}

func TestHelpToggle(t *testing.T) {
	m := loadedModel(t, Options{})

	m, _ = press(t, m, runes("?"))
	assert.Equal(t, ViewHelp, m.ViewMode())
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	m, _ = press(t, m, runes("?"))
	assert.Equal(t, ViewGrid, m.ViewMode())
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m := loadedModel(t, Options{})
		_, cmd := press(t, m, k)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestPanelsErrorShowsBanner(t *testing.T) {
	m := loadedModel(t, Options{})

	next, _ := m.Update(PanelsErrorMsg{Pass: m.pass, Error: errors.New("boom")})
	m = next.(Model)
	assert.True(t, m.showError)
	assert.Empty(t, m.Panels())
	assert.Contains(t, m.View(), "Render failed: boom")

	m, _ = press(t, m, runes("x"))
	assert.False(t, m.showError)
}
