package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexkorep-games/omega-void-sub000/internal/game"
	"github.com/alexkorep-games/omega-void-sub000/internal/market"
)

var (
	dockedTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("14")).
				Bold(true).
				Padding(0, 1)
	dockedFrameStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)
	dockedStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// marketKeys returns the docked market's commodity keys in catalog order.
func marketKeys(st *game.State) []string {
	if st.DockedMarket == nil {
		return nil
	}
	keys := make([]string, 0, len(st.DockedMarket.Prices))
	for _, c := range market.Commodities {
		if _, ok := st.DockedMarket.Prices[c.Key]; ok {
			keys = append(keys, c.Key)
		}
	}
	return keys
}

// newMarketTable builds the trade table for the station currently docked at.
func newMarketTable(st *game.State, screenH int) table.Model {
	columns := []table.Column{
		{Title: "Commodity", Width: 18},
		{Title: "Price", Width: 8},
		{Title: "Stock", Width: 8},
		{Title: "Held", Width: 6},
	}

	height := screenH - 10
	if height < 5 {
		height = 5
	}
	if height > len(market.Commodities)+1 {
		height = len(market.Commodities) + 1
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	t.SetRows(marketRows(st))
	return t
}

// marketRows rebuilds table rows from the live market and the cargo hold.
func marketRows(st *game.State) []table.Row {
	keys := marketKeys(st)
	rows := make([]table.Row, len(keys))
	for i, k := range keys {
		rows[i] = table.Row{
			game.CommodityName(k),
			strconv.Itoa(st.DockedMarket.Prices[k]),
			strconv.Itoa(st.DockedMarket.Quantities[k]),
			strconv.Itoa(st.Cargo[k]),
		}
	}
	return rows
}

// handleDockedKey processes input while docked: trading, upgrades, undock.
func (m Model) handleDockedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.dockKeys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.dockKeys.Undock):
		m.undock = true
		return m, nil

	case key.Matches(msg, m.dockKeys.Buy):
		m.trade(func(k string) error { return m.state.Buy(k, 1, m.rec) }, "bought")
		return m, nil

	case key.Matches(msg, m.dockKeys.Sell):
		m.trade(func(k string) error { return m.state.Sell(k, 1, m.rec) }, "sold")
		return m, nil

	case key.Matches(msg, m.dockKeys.Cargo):
		m.upgrade(game.UpgradeCargoHold)
		return m, nil

	case key.Matches(msg, m.dockKeys.Shield):
		m.upgrade(game.UpgradeShield)
		return m, nil
	}

	var cmd tea.Cmd
	m.market, cmd = m.market.Update(msg)
	return m, cmd
}

// trade runs a buy or sell against the selected row and refreshes the table.
func (m *Model) trade(op func(key string) error, verb string) {
	keys := marketKeys(m.state)
	cur := m.market.Cursor()
	if cur < 0 || cur >= len(keys) {
		return
	}
	k := keys[cur]
	if err := op(k); err != nil {
		m.status = err.Error()
	} else {
		m.status = fmt.Sprintf("%s 1 %s", verb, game.CommodityName(k))
	}
	m.market.SetRows(marketRows(m.state))
}

func (m *Model) upgrade(key string) {
	cost := m.state.UpgradeCost(key)
	if err := m.state.BuyUpgrade(key, m.rec); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("installed %s for %d cr", key, cost)
}

// dockedView renders the station trade screen.
func (m Model) dockedView() string {
	name := m.state.DockingStationID
	var tech int
	if st := m.world.StationByID(m.state.DockingStationID); st != nil {
		name = st.Name
		tech = st.TechLevel
	}

	var sb strings.Builder
	sb.WriteString(dockedTitleStyle.Render(fmt.Sprintf("DOCKED - %s (tech %d)", name, tech)))
	sb.WriteString("\n")
	sb.WriteString(dockedFrameStyle.Render(m.market.View()))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(" credits %d | hold %d/%d | cargo lvl %d | shield lvl %d\n",
		m.state.Cash, m.state.CargoUsed(), m.state.CargoCapacity(),
		m.state.Upgrades[game.UpgradeCargoHold], m.state.Upgrades[game.UpgradeShield]))
	if m.status != "" {
		sb.WriteString(dockedStatusStyle.Render(" " + m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.dockKeys))
	return sb.String()
}
