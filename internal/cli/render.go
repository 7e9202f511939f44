package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/nimesh4992/Stack-sub000/internal/model"
)

// FormatAmount renders a signed, colored amount with two decimals.
func FormatAmount(txn *model.ParsedTransaction) string {
	text := txn.SignedAmount().StringFixed(2)
	if txn.Type == model.TypeExpense {
		return ExpenseStyle.Render(text)
	}
	return IncomeStyle.Render("+" + text)
}

// RenderTransaction renders one parsed SMS as a box.
func RenderTransaction(txn *model.ParsedTransaction) string {
	var b strings.Builder

	fmt.Fprintf(&b, "  Bank: %s\n", txn.BankName)
	fmt.Fprintf(&b, "  Type: %s\n", txn.Type)
	fmt.Fprintf(&b, "  Amount: %s\n", FormatAmount(txn))
	fmt.Fprintf(&b, "  Merchant: %s\n", txn.MerchantName)
	if txn.AccountLast4 != "" {
		fmt.Fprintf(&b, "  Account: XX%s\n", txn.AccountLast4)
	}
	if txn.HasBalance() {
		fmt.Fprintf(&b, "  Balance: %s\n", txn.Balance.Decimal.StringFixed(2))
	}
	if txn.Category != nil {
		fmt.Fprintf(&b, "  Category: %s %s", txn.Category.CategoryLabel,
			SubtleStyle.Render(fmt.Sprintf("(%.0f%%)", txn.Category.Confidence*100)))
	}

	return RenderBox("Transaction", strings.TrimRight(b.String(), "\n"))
}

// RenderEntries renders ledger entries as a table, newest first as given.
func RenderEntries(entries []model.LedgerEntry) string {
	if len(entries) == 0 {
		return SubtleStyle.Render("No entries.")
	}

	headers := []string{"DATE", "BANK", "MERCHANT", "CATEGORY", "AMOUNT"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		category := "-"
		if e.Transaction.Category != nil {
			category = e.Transaction.Category.CategoryLabel
		}
		rows = append(rows, []string{
			e.ReceivedAt.Local().Format("2006-01-02 15:04"),
			strings.ToUpper(e.Transaction.BankID),
			e.Transaction.MerchantName,
			category,
			e.Transaction.SignedAmount().StringFixed(2),
		})
	}

	return renderTable(headers, rows)
}

// RenderTotals renders per-category totals in category display order.
func RenderTotals(totals map[model.CategoryID]decimal.Decimal) string {
	if len(totals) == 0 {
		return SubtleStyle.Render("No spending recorded.")
	}

	order := make(map[model.CategoryID]int)
	for i, id := range model.AllCategories() {
		order[id] = i
	}
	ids := make([]model.CategoryID, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return order[ids[i]] < order[ids[j]] })

	sum := decimal.Zero
	rows := make([][]string, 0, len(ids)+1)
	for _, id := range ids {
		sum = sum.Add(totals[id])
		rows = append(rows, []string{id.Label(), totals[id].StringFixed(2)})
	}
	rows = append(rows, []string{BoldStyle.Render("Total"), BoldStyle.Render(sum.StringFixed(2))})

	return renderTable([]string{"CATEGORY", "AMOUNT"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	renderRow := func(cells []string, style lipgloss.Style) string {
		out := make([]string, len(cells))
		for i, cell := range cells {
			out[i] = TableCellStyle.Width(widths[i] + 2).Render(cell)
		}
		return style.Render(lipgloss.JoinHorizontal(lipgloss.Top, out...))
	}

	lines := []string{renderRow(headers, TableHeaderStyle)}
	for _, row := range rows {
		lines = append(lines, renderRow(row, lipgloss.NewStyle()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
