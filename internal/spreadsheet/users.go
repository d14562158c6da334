// Package spreadsheet exports admin listings to xlsx files.
package spreadsheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/at-ishikawa/aiboost/internal/user"
)

const UsersSheet = "Users"

var userHeader = []string{"ID", "Name", "Email", "Role", "Suspended", "Enrolled courses"}

// WriteUsers writes users to a new workbook at path.
func WriteUsers(path string, users []user.User) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("f.Close() > %w", closeErr)
		}
	}()

	if err := f.SetSheetName("Sheet1", UsersSheet); err != nil {
		return fmt.Errorf("f.SetSheetName() > %w", err)
	}
	if err := writeRow(f, 1, toAny(userHeader)); err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("f.NewStyle() > %w", err)
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(userHeader), 1)
	if err != nil {
		return fmt.Errorf("excelize.CoordinatesToCellName() > %w", err)
	}
	if err := f.SetCellStyle(UsersSheet, "A1", lastHeader, headerStyle); err != nil {
		return fmt.Errorf("f.SetCellStyle() > %w", err)
	}

	for i, u := range users {
		suspended := "no"
		if u.Suspended {
			suspended = "yes"
		}
		row := []any{u.ID, u.Name, u.Email, string(u.Role), suspended, strings.Join(u.EnrolledCourses, ", ")}
		if err := writeRow(f, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("f.SaveAs(%s) > %w", path, err)
	}
	return nil
}

func writeRow(f *excelize.File, row int, values []any) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("excelize.CoordinatesToCellName() > %w", err)
		}
		if err := f.SetCellValue(UsersSheet, cell, value); err != nil {
			return fmt.Errorf("f.SetCellValue(%s) > %w", cell, err)
		}
	}
	return nil
}

func toAny(values []string) []any {
	result := make([]any, len(values))
	for i, v := range values {
		result[i] = v
	}
	return result
}
