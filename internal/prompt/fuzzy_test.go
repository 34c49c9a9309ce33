package prompt

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var labels = []string{"Uplink", "Marvel's Spider-Man Remastered", "Team Fortress 2"}

func send(t *testing.T, m chooserModel, msgs ...tea.Msg) (chooserModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(chooserModel)
		require.True(t, ok)
	}
	return m, cmd
}

func TestChooserModel_EnterPicksFirst(t *testing.T) {
	m, cmd := send(t, newChooserModel("pick", labels), tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.done)
	assert.False(t, m.cancelled)
	assert.Equal(t, 0, m.chosen)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestChooserModel_MoveDownThenPick(t *testing.T) {
	m, _ := send(t, newChooserModel("pick", labels),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	assert.True(t, m.done)
	assert.Equal(t, 2, m.chosen)
}

func TestChooserModel_EscCancels(t *testing.T) {
	m, cmd := send(t, newChooserModel("pick", labels), tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, m.done)
	assert.True(t, m.cancelled)
	assert.Equal(t, -1, m.chosen)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestChooserModel_CtrlCWhileFiltering(t *testing.T) {
	m, _ := send(t, newChooserModel("pick", labels),
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}},
		tea.KeyMsg{Type: tea.KeyCtrlC},
	)

	assert.True(t, m.cancelled)
}

func TestChooserModel_ViewShowsPrompt(t *testing.T) {
	m := newChooserModel("What game?", labels)
	view := m.View()

	assert.Contains(t, view, "What game?")
	assert.Contains(t, view, "Uplink")
}

func TestChooserModel_ViewEmptyWhenDone(t *testing.T) {
	m, _ := send(t, newChooserModel("pick", labels), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.View())
}

func TestFuzzy_EmptyLabelsCancels(t *testing.T) {
	var out bytes.Buffer
	f := NewFuzzy(strings.NewReader(""), &out)

	idx, ok, err := f.Choose(context.Background(), "pick", nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, idx)
	assert.Empty(t, out.String())
}
