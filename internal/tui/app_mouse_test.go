package tui

import (
	"testing"

	"github.com/theirongolddev/splitabill/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	n := len(components.Tabs)
	for active := 0; active < n; active++ {
		a := App{activeTab: active}
		pos := 0

		for i := 0; i < n; i++ {
			w := tabWidthForTest(i, active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < n-1 {
				pos++ // separator
			}
		}

		if got := a.tabAtX(pos + 5); got != -1 {
			t.Fatalf("active=%d x=%d past the last tab -> %d, want -1", active, pos+5, got)
		}
	}
}

func TestMouseClickSwitchesTab(t *testing.T) {
	a := newTestApp(t)

	// Second tab starts after "Dashboard" (active, 11 cols) and a separator.
	m, _ := a.Update(tea.MouseMsg{X: 14, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	a = m.(App)
	if a.activeTab != tabExpenses {
		t.Fatalf("activeTab = %d, want %d", a.activeTab, tabExpenses)
	}

	// Clicks below the tab bar are ignored.
	m, _ = a.Update(tea.MouseMsg{X: 2, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if got := m.(App).activeTab; got != tabExpenses {
		t.Fatalf("click below tab bar changed tab to %d", got)
	}
}

func tabWidthForTest(tabIdx, activeIdx int) int {
	w := len(components.Tabs[tabIdx].Name) + 2 // horizontal padding in tab renderer
	if tabIdx != activeIdx && components.Tabs[tabIdx].KeyPos < 0 {
		w += 3 // inactive Settings adds "[x]"
	}
	return w
}
