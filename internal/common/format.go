package common

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// DefaultWidth fits the summary boxes printed by the CLIs.
	DefaultWidth = 80
	// WideWidth fits the five-column statement layout in cmd/ledger.
	WideWidth = 100
)

// FormatAmount renders a money amount with the plaza's currency symbol,
// e.g. "Rs. 85000". Amounts are whole currency units; decimal keeps any
// fractional part a record may carry.
func FormatAmount(symbol string, amount decimal.Decimal) string {
	return fmt.Sprintf("%s %s", symbol, amount.String())
}

// PrintSeparator prints a rule of the given character and width.
func PrintSeparator(char string, width int) {
	fmt.Println(strings.Repeat(char, width))
}

// PrintSeparatorNewline prints a rule preceded by a blank line.
func PrintSeparatorNewline(char string, width int) {
	fmt.Println("\n" + strings.Repeat(char, width))
}

// PrintHeader prints a boxed title line for a report or statement.
func PrintHeader(title string, width int) {
	PrintSeparatorNewline("=", width)
	fmt.Println(title)
	PrintSeparator("=", width)
}

// PrintFooter prints a closing message under a report.
func PrintFooter(message string, width int) {
	PrintSeparatorNewline("=", width)
	fmt.Println(message)
	fmt.Println(strings.Repeat("=", width) + "\n")
}

// PrintBoxSeparator prints a box-drawing rule between report sub-sections.
func PrintBoxSeparator(width int) {
	fmt.Println("├" + strings.Repeat("─", width))
}

// BoxPrefix returns the box-drawing prefix for a row in a tenant or
// record listing.
func BoxPrefix(isLast bool) string {
	if isLast {
		return "└  "
	}
	return "│  "
}

// BoxDetailPrefix returns the prefix for detail lines under a listing row.
func BoxDetailPrefix(isLast bool) string {
	if isLast {
		return "   "
	}
	return "│  "
}
