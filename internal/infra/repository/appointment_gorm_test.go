package repository_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

var _ = Describe("AppointmentGormRepository", func() {
	Describe("UpdateAppointment", func() {
		It("updates scoped by organization and reports a missing row instead of inserting", func() {
			db, stmts := dryRunDB()
			repo := repository.NewAppointmentGormRepository(db)

			start := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
			err := repo.UpdateAppointment(context.Background(), &models.Appointment{
				ID:             7,
				OrganizationID: 3,
				ProfessionalID: 2,
				ClientID:       4,
				StartTime:      start,
				EndTime:        start.Add(time.Hour),
				Status:         "Confirmado",
			})
			Expect(err).To(MatchError(gorm.ErrRecordNotFound))

			Expect(*stmts).To(HaveLen(1))
			sql := (*stmts)[0].SQL
			Expect(sql).To(HavePrefix(`UPDATE "appointments" SET`))
			Expect(sql).To(ContainSubstring(`"status"=`))
			Expect(sql).To(ContainSubstring(`"notes"=`))
			Expect(sql).To(ContainSubstring("id = $"))
			Expect(sql).To(ContainSubstring("organization_id = $"))
			Expect(sql).NotTo(ContainSubstring(`"created_at"`))
			Expect(sql).NotTo(ContainSubstring("INSERT"))
			Expect((*stmts)[0].Vars).To(ContainElements("Confirmado", "", uint(7), uint(3)))
		})
	})
})
