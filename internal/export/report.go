package export

import (
	"fmt"
	"io"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// Table é o conteúdo comum às duas saídas.
type Table struct {
	Title       string
	GeneratedAt time.Time
	Columns     []string
	Widths      []float64
	Rows        [][]string
}

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPDF, FormatXLSX:
		return Format(s), nil
	case "":
		return FormatPDF, nil
	}
	return "", httperr.ErrBusiness("invalid_format")
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/pdf"
}

func (f Format) Filename(base string, at time.Time) string {
	return fmt.Sprintf("%s-%s.%s", base, at.Format("20060102-1504"), f)
}

func Write(w io.Writer, f Format, t Table) error {
	if f == FormatXLSX {
		return WriteXLSX(w, t)
	}
	return WritePDF(w, t)
}

// AppointmentsTable monta a tabela de agendamentos no fuso informado.
func AppointmentsTable(title string, aps []models.Appointment, loc *time.Location, now time.Time) Table {
	t := Table{
		Title:       title,
		GeneratedAt: now.In(loc),
		Columns:     []string{"Data", "Início", "Fim", "Profissional", "Cliente", "Telefone", "Status"},
		Widths:      []float64{24, 16, 16, 50, 50, 32, 24},
		Rows:        make([][]string, 0, len(aps)),
	}

	for _, ap := range aps {
		start := ap.StartTime.In(loc)
		t.Rows = append(t.Rows, []string{
			start.Format("02/01/2006"),
			start.Format("15:04"),
			ap.EndTime.In(loc).Format("15:04"),
			ap.Professional.Name,
			ap.Client.Name,
			ap.Client.Phone,
			ap.Status,
		})
	}
	return t
}
