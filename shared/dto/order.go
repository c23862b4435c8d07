package dto

import (
	"fmt"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// OrderBy is one ORDER BY term. Column must come from a whitelist, it is
// rendered verbatim.
type OrderBy struct {
	Column  string
	SortDir string
}

func (o OrderBy) String() string {
	dir := strings.ToUpper(o.SortDir)
	if dir != SortDirAsc && dir != SortDirDesc {
		dir = SortDirAsc
	}

	return fmt.Sprintf("%s %s", o.Column, dir)
}

// OrderClause renders "ORDER BY a ASC, b DESC", or an empty string.
func OrderClause(orders ...OrderBy) string {
	if len(orders) == 0 {
		return ""
	}

	terms := make([]string, len(orders))
	for i, order := range orders {
		terms[i] = order.String()
	}

	return "ORDER BY " + strings.Join(terms, ", ")
}
