package repository_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
)

var _ = Describe("client search", func() {
	DescribeTable("ClientSearchPatterns",
		func(query, text, phone string) {
			gotText, gotPhone := repository.ClientSearchPatterns(query)
			Expect(gotText).To(Equal(text))
			Expect(gotPhone).To(Equal(phone))
		},
		Entry("empty means no filter", "   ", "", ""),
		Entry("name only", " Maria ", "%maria%", ""),
		Entry("formatted phone matches stored digits", "(11) 98888", "%(11) 98888%", "%1198888%"),
		Entry("wildcards are literal", "50%_off", `%50\%\_off%`, "%50%"),
		Entry("lone plus is not a phone", "+", "%+%", ""),
	)

	It("leaves the phone column out of a text-only search", func() {
		db, stmts := dryRunDB()
		repo := repository.NewClientGormRepository(db)

		_, err := repo.ListClients(context.Background(), 3, "Maria")
		Expect(err).NotTo(HaveOccurred())

		Expect(*stmts).To(HaveLen(1))
		Expect((*stmts)[0].SQL).To(ContainSubstring("LOWER(name) LIKE"))
		Expect((*stmts)[0].SQL).NotTo(ContainSubstring("phone LIKE"))
		Expect((*stmts)[0].Vars).To(ContainElements(uint(3), "%maria%"))
	})

	It("searches the phone column with digits only", func() {
		db, stmts := dryRunDB()
		repo := repository.NewClientGormRepository(db)

		_, err := repo.ListClients(context.Background(), 3, "(11) 9888")
		Expect(err).NotTo(HaveOccurred())

		Expect((*stmts)[0].SQL).To(ContainSubstring("phone LIKE"))
		Expect((*stmts)[0].Vars).To(ContainElement("%119888%"))
	})
})
