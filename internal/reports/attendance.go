package reports

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/diefthyntis/Savasana/internal/sessions"
	"github.com/diefthyntis/Savasana/internal/users"
)

// BuildAttendancePDF renders the printable roster sheet handed to the front
// desk before a class: session header, teacher, one row per attendee with a
// signature column.
func BuildAttendancePDF(sess *sessions.Session, teacherName string, attendees []users.User) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Attendance Sheet", false)
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Attendance Sheet")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, fmt.Sprintf("Session: %s", sess.Name))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", sess.Date.Format("2006-01-02 15:04")))
	pdf.Ln(5)
	if teacherName != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Teacher: %s", teacherName))
		pdf.Ln(5)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Registered: %d", len(attendees)))
	pdf.Ln(10)

	pdf.SetTextColor(20, 20, 20)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(245, 245, 245)
	pdf.SetFont("Helvetica", "B", 10)

	colW := []float64{12, 60, 70, 40}
	pdf.CellFormat(colW[0], 8, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colW[1], 8, "NAME", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colW[2], 8, "EMAIL", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colW[3], 8, "SIGNATURE", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for i, u := range attendees {
		name := fmt.Sprintf("%s %s", u.FirstName, u.LastName)
		pdf.CellFormat(colW[0], 8, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[1], 8, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[2], 8, u.Email, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[3], 8, "", "1", 1, "C", false, 0, "")
	}
	if len(attendees) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 8, "No one has joined this session yet", "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
