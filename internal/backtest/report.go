package backtest

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

const moneyPlaces = 8

var (
	subtle  = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	special = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	warning = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"}

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(subtle).
			Width(18)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)
)

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(moneyPlaces)
}

func profitStyle(v float64) lipgloss.Style {
	if v < 0 {
		return lipgloss.NewStyle().Foreground(warning).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(special).Bold(true)
}

// Render formats the report as a bordered terminal block.
func (r Report) Render() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s · %s", r.Pair, r.Strategy)))
	b.WriteString("\n")

	rows := [][2]string{
		{"ticks", fmt.Sprintf("%d", r.Ticks)},
		{"initial main", money(r.MainInitial)},
		{"initial alt", money(r.AltInitial)},
		{"final main", money(r.MainFinal)},
		{"final alt", money(r.AltFinal)},
		{"main difference", money(r.MainDiff)},
		{"alt difference", money(r.AltDiff)},
		{"fills", fmt.Sprintf("%d", r.Fills)},
		{"moved main", money(r.MovedMain)},
		{"moved alt", money(r.MovedAlt)},
		{"fees", money(r.Fees)},
		{"wins / losses", fmt.Sprintf("%d / %d", r.Wins, r.Losses)},
		{"accuracy", fmt.Sprintf("%.2f%%", r.Accuracy)},
	}
	if r.SummaryOK {
		rows = append(rows,
			[2]string{"rsi", fmt.Sprintf("%.2f", r.Summary.RSI)},
			[2]string{"atr", money(r.Summary.ATR)},
			[2]string{"macd / signal", fmt.Sprintf("%s / %s", money(r.Summary.MACD), money(r.Summary.MACDSignal))},
		)
	}

	for _, row := range rows {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(row[0]), row[1]))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render("profit"), profitStyle(r.Profit).Render(money(r.Profit))))

	return boxStyle.Render(b.String())
}

// TotalProfit sums the profit of every report.
func TotalProfit(reports []Report) float64 {
	total := 0.0
	for _, r := range reports {
		total += r.Profit
	}
	return total
}

// RenderAll formats every report followed by the total profit.
func RenderAll(reports []Report) string {
	blocks := make([]string, 0, len(reports)+1)
	for _, r := range reports {
		blocks = append(blocks, r.Render())
	}

	total := TotalProfit(reports)
	blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render("total profit"), profitStyle(total).Render(money(total))))

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
