// Package export renders the transaction collection as a spreadsheet.
package export

import (
	"fmt"
	"io"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/utils"
	"github.com/SscSPs/expense_tracker/internal/utils/accounting"
	"github.com/xuri/excelize/v2"
)

const (
	SheetName   = "Transactions"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Header is the first row of the sheet.
var Header = []any{"ID", "Date", "Description", "Location", "Type", "Category", "Signed Amount", "Display"}

// WriteXLSX writes txns, one row per transaction in collection order, followed by a
// summary block with the aggregate totals.
func WriteXLSX(w io.Writer, txns []domain.Transaction, agg domain.Aggregate) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := setRow(f, 1, Header); err != nil {
		return err
	}

	for i, txn := range txns {
		amount, _ := accounting.CalculateSignedAmount(txn).Float64()
		row := []any{
			txn.ID,
			txn.Date,
			txn.Description,
			txn.Location,
			string(txn.Type),
			string(txn.Category),
			amount,
			utils.FormatMoney(txn.Sign(), txn.Amount),
		}
		if err := setRow(f, i+2, row); err != nil {
			return err
		}
	}

	summaryStart := len(txns) + 3
	summary := [][]any{
		{"Total Credit", utils.FormatMoney("+", agg.TotalCredit)},
		{"Total Debit", utils.FormatMoney("-", agg.TotalDebit)},
		{"Balance", utils.FormatBalance(agg.Balance)},
	}
	for i, row := range summary {
		if err := setRow(f, summaryStart+i, row); err != nil {
			return err
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header row: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("invalid row %d: %w", row, err)
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}
