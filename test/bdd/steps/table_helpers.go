package steps

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/cucumber/messages/go/v21"
)

// getCellValue gets a cell value from a row by column name, using the first row as header
func getCellValue(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	if len(table.Rows) == 0 {
		return ""
	}

	for i, headerCell := range table.Rows[0].Cells {
		if headerCell.Value == columnName {
			if i < len(row.Cells) {
				return row.Cells[i].Value
			}
			return ""
		}
	}

	return ""
}

// dataRows returns the table rows after the header
func dataRows(table *godog.Table) []*messages.PickleTableRow {
	if len(table.Rows) < 2 {
		return nil
	}
	return table.Rows[1:]
}

func parseIntCell(table *godog.Table, row *messages.PickleTableRow, columnName string) (int, error) {
	value := getCellValue(table, row, columnName)
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("column %s: invalid integer %q", columnName, value)
	}
	return n, nil
}

func parseFloatCell(table *godog.Table, row *messages.PickleTableRow, columnName string) (float64, error) {
	value := getCellValue(table, row, columnName)
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: invalid number %q", columnName, value)
	}
	return f, nil
}

// parseIDList parses "1, 2, 3"
func parseIDList(list string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
