package appointment_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/realtime"
	"github.com/BruksfildServices01/clinic-scheduler/internal/session"
	ucappointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

var brt = time.FixedZone("BRT", -3*60*60)

var _ = Describe("Appointment use cases", func() {
	var (
		ctx      context.Context
		repo     *memoryRepo
		pub      *recordingPublisher
		notifier *recordingNotifier
		sess     session.Session

		create *ucappointment.CreateAppointment
		book   *ucappointment.BookAppointmentByName
		update *ucappointment.UpdateAppointment
		remove *ucappointment.DeleteAppointment
		list   *ucappointment.ListAppointments

		ana models.Professional
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = newMemoryRepo()
		pub = &recordingPublisher{}
		notifier = &recordingNotifier{}
		sess = session.Session{UserID: 10, OrganizationID: 1, Role: models.RoleOwner}

		create = ucappointment.NewCreateAppointment(repo, pub, notifier, brt)
		book = ucappointment.NewBookAppointmentByName(repo, create, notifier)
		update = ucappointment.NewUpdateAppointment(repo, pub, brt)
		remove = ucappointment.NewDeleteAppointment(repo, pub)
		list = ucappointment.NewListAppointments(repo, brt)

		ana = repo.addProfessional(1, "Dra. Ana")
	})

	Describe("CreateAppointment", func() {
		It("creates a one hour pending appointment with a new client", func() {
			ap, err := create.Execute(ctx, sess, ucappointment.CreateAppointmentInput{
				ProfessionalID: ana.ID,
				NewClientName:  "  João Silva ",
				NewClientPhone: "(11) 98888-7777",
				Date:           "2024-03-20",
				Time:           "09:00",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(ap.ID).NotTo(BeZero())
			Expect(ap.OrganizationID).To(Equal(uint(1)))
			Expect(ap.StartTime).To(Equal(time.Date(2024, 3, 20, 9, 0, 0, 0, brt)))
			Expect(ap.EndTime).To(Equal(time.Date(2024, 3, 20, 10, 0, 0, 0, brt)))
			Expect(ap.Status).To(Equal(string(domain.StatusPending)))
			Expect(ap.Client.Name).To(Equal("João Silva"))
			Expect(ap.Client.Phone).To(Equal("11988887777"))
			Expect(ap.Professional.Name).To(Equal("Dra. Ana"))
			Expect(repo.clientCount()).To(Equal(1))
		})

		It("publishes an insert event and a success notification", func() {
			c := repo.addClient(1, "Maria")
			ap, err := create.Execute(ctx, sess, ucappointment.CreateAppointmentInput{
				ProfessionalID: ana.ID,
				ClientID:       c.ID,
				Date:           "2024-03-20",
				Time:           "14:00",
				Status:         "confirmado",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(ap.Status).To(Equal("Confirmado"))

			Expect(pub.Events()).To(ConsistOf(And(
				HaveField("Table", realtime.TableAppointments),
				HaveField("Kind", realtime.KindInsert),
				HaveField("ID", ap.ID),
				HaveField("OrganizationID", uint(1)),
			)))

			Expect(notifier.Events()).To(HaveLen(1))
			Expect(notifier.Events()[0].Type).To(Equal(models.NotificationSuccess))
			Expect(notifier.Events()[0].UserID).To(Equal(uint(10)))
			Expect(notifier.Events()[0].Message).To(ContainSubstring("20/03/2024 14:00"))
		})

		It("accepts overlapping appointments for the same professional", func() {
			in := ucappointment.CreateAppointmentInput{
				ProfessionalID: ana.ID,
				NewClientName:  "Pedro",
				Date:           "2024-03-20",
				Time:           "09:00",
			}
			_, err := create.Execute(ctx, sess, in)
			Expect(err).NotTo(HaveOccurred())
			_, err = create.Execute(ctx, sess, in)
			Expect(err).NotTo(HaveOccurred())
		})

		DescribeTable("rejects invalid input and notifies the failure",
			func(in ucappointment.CreateAppointmentInput, code string) {
				_, err := create.Execute(ctx, sess, in)
				Expect(httperr.IsBusiness(err, code)).To(BeTrue(), "got %v", err)

				Expect(pub.Events()).To(BeEmpty())
				Expect(notifier.Events()).To(HaveLen(1))
				Expect(notifier.Events()[0].Type).To(Equal(models.NotificationError))
			},
			Entry("missing client", ucappointment.CreateAppointmentInput{
				ProfessionalID: 1, Date: "2024-03-20", Time: "09:00",
			}, "missing_client"),
			Entry("bad date", ucappointment.CreateAppointmentInput{
				ProfessionalID: 1, NewClientName: "X", Date: "2024-13-01", Time: "09:00",
			}, "invalid_date_or_time"),
			Entry("unknown professional", ucappointment.CreateAppointmentInput{
				ProfessionalID: 999, NewClientName: "X", Date: "2024-03-20", Time: "09:00",
			}, "professional_not_found"),
			Entry("unknown client", ucappointment.CreateAppointmentInput{
				ProfessionalID: 1, ClientID: 999, Date: "2024-03-20", Time: "09:00",
			}, "client_not_found"),
		)

		It("does not see professionals of another organization", func() {
			other := repo.addProfessional(2, "Dr. Outro")
			_, err := create.Execute(ctx, sess, ucappointment.CreateAppointmentInput{
				ProfessionalID: other.ID,
				NewClientName:  "X",
				Date:           "2024-03-20",
				Time:           "09:00",
			})
			Expect(httperr.IsKind(err, httperr.KindNotFound)).To(BeTrue())
		})
	})

	Describe("BookAppointmentByName", func() {
		input := func(prof, client string) ucappointment.BookByNameInput {
			return ucappointment.BookByNameInput{
				ProfessionalName: prof,
				ClientName:       client,
				Date:             "2024-03-20",
				Time:             "09:00",
			}
		}

		It("books Dr. Silva for João Santos in a one hour slot", func() {
			repo.addProfessional(1, "Dr. Silva")
			repo.addClient(1, "João Santos")

			in := input("Dr. Silva", "João Santos")
			in.Status = "Pendente"
			ap, err := book.Execute(ctx, sess, in)
			Expect(err).NotTo(HaveOccurred())

			Expect(ap.StartTime).To(Equal(time.Date(2024, 3, 20, 9, 0, 0, 0, brt)))
			Expect(ap.EndTime).To(Equal(time.Date(2024, 3, 20, 10, 0, 0, 0, brt)))
			Expect(ap.Status).To(Equal("Pendente"))
			Expect(ap.Professional.Name).To(Equal("Dr. Silva"))
			Expect(ap.Client.Name).To(Equal("João Santos"))
			Expect(repo.clientCount()).To(Equal(1))
		})

		It("reuses the lowest id among clients with the same name", func() {
			first := repo.addClient(1, "Maria")
			repo.addClient(1, "Maria")

			ap, err := book.Execute(ctx, sess, input("Dra. Ana", "Maria"))
			Expect(err).NotTo(HaveOccurred())
			Expect(ap.ClientID).To(Equal(first.ID))
			Expect(repo.clientCount()).To(Equal(2))
		})

		It("creates the client when the name is new", func() {
			ap, err := book.Execute(ctx, sess, input("Dra. Ana", "Carlos"))
			Expect(err).NotTo(HaveOccurred())
			Expect(ap.Client.Name).To(Equal("Carlos"))
			Expect(repo.clientCount()).To(Equal(1))
		})

		It("fails when the professional name is ambiguous", func() {
			repo.addProfessional(1, "Dra. Ana")

			_, err := book.Execute(ctx, sess, input("Dra. Ana", "Carlos"))
			Expect(httperr.IsBusiness(err, "ambiguous_professional")).To(BeTrue())
			Expect(repo.clientCount()).To(BeZero())
		})

		It("fails when the professional does not exist", func() {
			_, err := book.Execute(ctx, sess, input("Dr. Ninguém", "Carlos"))
			Expect(httperr.IsBusiness(err, "professional_not_found")).To(BeTrue())
			Expect(notifier.Events()).To(HaveLen(1))
			Expect(notifier.Events()[0].Title).To(Equal("Erro ao criar agendamento"))
		})
	})

	Describe("UpdateAppointment", func() {
		var ap *models.Appointment

		BeforeEach(func() {
			var err error
			ap, err = create.Execute(ctx, sess, ucappointment.CreateAppointmentInput{
				ProfessionalID: ana.ID,
				NewClientName:  "Maria",
				Date:           "2024-03-20",
				Time:           "09:00",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("keeps the times when only the status changes", func() {
			status := "Concluído"
			updated, err := update.Execute(ctx, sess, ap.ID, ucappointment.UpdateAppointmentInput{Status: &status})
			Expect(err).NotTo(HaveOccurred())

			Expect(updated.Status).To(Equal("Concluído"))
			Expect(updated.StartTime).To(BeTemporally("==", ap.StartTime))
			Expect(updated.EndTime).To(BeTemporally("==", ap.EndTime))
		})

		It("recomputes the end when the time changes", func() {
			hm := "15:00"
			updated, err := update.Execute(ctx, sess, ap.ID, ucappointment.UpdateAppointmentInput{Time: &hm})
			Expect(err).NotTo(HaveOccurred())

			Expect(updated.StartTime).To(BeTemporally("==", time.Date(2024, 3, 20, 15, 0, 0, 0, brt)))
			Expect(updated.EndTime).To(BeTemporally("==", time.Date(2024, 3, 20, 16, 0, 0, 0, brt)))
			Expect(pub.Events()).To(ContainElement(HaveField("Kind", realtime.KindUpdate)))
		})

		It("returns appointment_not_found for unknown ids", func() {
			notes := "x"
			_, err := update.Execute(ctx, sess, 999, ucappointment.UpdateAppointmentInput{Notes: &notes})
			Expect(httperr.IsBusiness(err, "appointment_not_found")).To(BeTrue())
		})

		It("does not bring back an appointment deleted during the edit", func() {
			racing := &deletingRepo{memoryRepo: repo}
			racingUpdate := ucappointment.NewUpdateAppointment(racing, pub, brt)

			status := "Confirmado"
			_, err := racingUpdate.Execute(ctx, sess, ap.ID, ucappointment.UpdateAppointmentInput{Status: &status})
			Expect(httperr.IsBusiness(err, "appointment_not_found")).To(BeTrue())

			out, err := list.Execute(ctx, sess, ucappointment.ListInput{})
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(BeEmpty())
			Expect(pub.Events()).NotTo(ContainElement(HaveField("Kind", realtime.KindUpdate)))
		})
	})

	Describe("DeleteAppointment", func() {
		It("removes the appointment and publishes a delete event", func() {
			ap, err := create.Execute(ctx, sess, ucappointment.CreateAppointmentInput{
				ProfessionalID: ana.ID,
				NewClientName:  "Maria",
				Date:           "2024-03-20",
				Time:           "09:00",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(remove.Execute(ctx, sess, ap.ID)).To(Succeed())

			out, err := list.Execute(ctx, sess, ucappointment.ListInput{})
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(BeEmpty())

			Expect(pub.Events()).To(ContainElement(And(
				HaveField("Kind", realtime.KindDelete),
				HaveField("ID", ap.ID),
			)))
		})

		It("returns appointment_not_found for unknown ids", func() {
			err := remove.Execute(ctx, sess, 999)
			Expect(httperr.IsBusiness(err, "appointment_not_found")).To(BeTrue())
		})
	})

	Describe("ListAppointments", func() {
		BeforeEach(func() {
			for _, d := range []string{"2024-03-19", "2024-03-20", "2024-03-21"} {
				_, err := create.Execute(ctx, sess, ucappointment.CreateAppointmentInput{
					ProfessionalID: ana.ID,
					NewClientName:  "Cliente " + d,
					Date:           d,
					Time:           "23:00",
				})
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("treats the to date as inclusive", func() {
			out, err := list.Execute(ctx, sess, ucappointment.ListInput{From: "2024-03-20", To: "2024-03-20"})
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(HaveLen(1))
			Expect(out[0].ClientName).To(Equal("Cliente 2024-03-20"))
		})

		It("orders by start time", func() {
			out, err := list.Execute(ctx, sess, ucappointment.ListInput{})
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(HaveLen(3))
			Expect(out[0].StartTime).To(BeTemporally("<", out[1].StartTime))
			Expect(out[1].StartTime).To(BeTemporally("<", out[2].StartTime))
		})

		It("rejects malformed dates", func() {
			_, err := list.Execute(ctx, sess, ucappointment.ListInput{From: "ontem"})
			Expect(httperr.IsBusiness(err, "invalid_date")).To(BeTrue())
		})
	})

	Describe("GetSlots", func() {
		It("hides slots taken by active bookings", func() {
			Expect(repo.ReplaceAvailability(ctx, ana.ID, []models.AvailabilityWindow{
				{ProfessionalID: ana.ID, DayOfWeek: int(time.Wednesday), StartTime: "08:00", EndTime: "10:00"},
			})).To(Succeed())

			_, err := create.Execute(ctx, sess, ucappointment.CreateAppointmentInput{
				ProfessionalID: ana.ID,
				NewClientName:  "Maria",
				Date:           "2024-03-20",
				Time:           "08:00",
			})
			Expect(err).NotTo(HaveOccurred())

			slots, err := ucappointment.NewGetSlots(repo, brt).Execute(ctx, sess, ana.ID, "2024-03-20")
			Expect(err).NotTo(HaveOccurred())
			Expect(slots).To(Equal([]domain.TimeSlot{{Start: "09:00", End: "10:00"}}))
		})
	})
})
