package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/segyhp/loan-guide/internal/domain"
	"github.com/segyhp/loan-guide/internal/presentation"
	"github.com/segyhp/loan-guide/pkg/utils"
)

const (
	sheetName   = "Loan Guide"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// TimelineXLSX renders the timeline as a workbook: one row per payment date,
// one column per loan account. Empty cells mean no schedule on that date.
func TimelineXLSX(view *domain.LoanGuideView) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, "", err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, "", err
	}

	header := []interface{}{"Month", "Payment Date"}
	for _, account := range view.LoanAccounts {
		header = append(header, account.LoanAccount.Name)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, "", err
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return nil, "", err
	}
	if err := f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle); err != nil {
		return nil, "", err
	}

	for i, row := range view.Timeline {
		values := []interface{}{row.Month, row.PaymentDate}
		for _, account := range view.LoanAccounts {
			values = append(values, cellText(row.Schedules[account.LoanAccount.Key()]))
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, "", err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("loan_guide_%s.xlsx", view.LoanID)
	return buf.Bytes(), filename, nil
}

func cellText(schedule *domain.PaymentSchedule) string {
	if schedule == nil {
		return ""
	}

	cell, err := presentation.Describe(*schedule)
	if err != nil {
		return string(schedule.Type)
	}

	text := cell.Label()
	if cell.Fines != nil {
		text += fmt.Sprintf(" (fines %s)", utils.FormatAmount(*cell.Fines))
	}
	if cell.Note != "" {
		text += " - " + cell.Note
	}
	return text
}
