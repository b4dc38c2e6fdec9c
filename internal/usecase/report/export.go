package report

import (
	"context"
	"io"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/export"
	"github.com/BruksfildServices01/clinic-scheduler/internal/session"
	ucappointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

// ExportFile é o resultado pronto para ser enviado como anexo.
type ExportFile struct {
	Filename    string
	ContentType string
	Format      export.Format
	Table       export.Table
}

func (f *ExportFile) Render(w io.Writer) error {
	return export.Write(w, f.Format, f.Table)
}

type ExportAppointments struct {
	repo AppointmentLister
	loc  *time.Location
	now  func() time.Time
}

func NewExportAppointments(repo AppointmentLister, loc *time.Location) *ExportAppointments {
	return &ExportAppointments{
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
}

// Execute aplica o mesmo filtro da listagem e prepara a tabela. A
// serialização fica para Render, direto no corpo da resposta.
func (uc *ExportAppointments) Execute(
	ctx context.Context,
	sess session.Session,
	in ucappointment.ListInput,
	format string,
) (*ExportFile, error) {

	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, err
	}

	filter, err := ucappointment.BuildFilter(in, uc.loc)
	if err != nil {
		return nil, err
	}

	aps, err := uc.repo.ListAppointments(ctx, sess.OrganizationID, filter)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	return &ExportFile{
		Filename:    f.Filename("agendamentos", now.In(uc.loc)),
		ContentType: f.ContentType(),
		Format:      f,
		Table:       export.AppointmentsTable("Relatório de agendamentos", aps, uc.loc, now),
	}, nil
}
