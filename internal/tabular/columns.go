// Package tabular normalizes row-oriented statement sources (delimited
// text and spreadsheet workbooks) whose column names vary across banks.
// Column roles are inferred from keyword lists with positional fallbacks.
package tabular

import "strings"

// Keyword lists for role inference. Matching is case-insensitive
// substring, first matching column wins, columns scanned in source
// order. The lists and their fallbacks are fixed: downstream behavior
// depends on this exact priority, so do not re-derive them.
var (
	amountKeywords      = []string{"amount", "debit", "credit", "balance", "transaction"}
	dateKeywords        = []string{"date", "posted", "transaction"}
	descriptionKeywords = []string{"description", "memo", "details", "narration"}
	withdrawalKeywords  = []string{"withdrawal", "debit", "dr"}
	depositKeywords     = []string{"deposit", "credit", "cr"}
)

// ColumnRoles is the inferred semantic meaning of a header set. An empty
// string means no column was assigned to that role.
type ColumnRoles struct {
	Amount      string
	Date        string
	Description string
	Withdrawal  string
	Deposit     string
}

// InferRoles assigns roles to the given columns. The result depends only
// on the header names, never on row values.
func InferRoles(columns []string) ColumnRoles {
	roles := ColumnRoles{
		Amount:      findColumn(columns, amountKeywords),
		Date:        findColumn(columns, dateKeywords),
		Description: findColumn(columns, descriptionKeywords),
		Withdrawal:  findColumn(columns, withdrawalKeywords),
		Deposit:     findColumn(columns, depositKeywords),
	}

	// Positional fallbacks: amount is usually the last column, date the
	// first, description the second.
	if roles.Amount == "" && len(columns) > 0 {
		roles.Amount = columns[len(columns)-1]
	}
	if roles.Date == "" && len(columns) > 1 {
		roles.Date = columns[0]
	}
	if roles.Description == "" && len(columns) > 2 {
		roles.Description = columns[1]
	}

	return roles
}

func findColumn(columns []string, keywords []string) string {
	for _, col := range columns {
		lower := strings.ToLower(col)
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				return col
			}
		}
	}
	return ""
}
