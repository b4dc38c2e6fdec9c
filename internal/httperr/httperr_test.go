package httperr_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

func respond(err error) (int, httperr.HTTPError) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	httperr.FromError(c, err)

	var body httperr.HTTPError
	Expect(json.Unmarshal(w.Body.Bytes(), &body)).To(Succeed())
	return w.Code, body
}

var _ = Describe("FromError", func() {
	DescribeTable("maps errors to status and code",
		func(err error, status int, code string) {
			gotStatus, body := respond(err)
			Expect(gotStatus).To(Equal(status))
			Expect(body.Code).To(Equal(code))
			Expect(body.Message).NotTo(BeEmpty())
		},
		Entry("validation", httperr.ErrBusiness("missing_client"), http.StatusBadRequest, "missing_client"),
		Entry("not found", httperr.ErrNotFound("client_not_found"), http.StatusNotFound, "client_not_found"),
		Entry("authentication", httperr.ErrUnauthenticated("invalid_token"), http.StatusUnauthorized, "invalid_token"),
		Entry("authorization", httperr.ErrForbidden("no_membership"), http.StatusForbidden, "no_membership"),
		Entry("conflict", httperr.ErrConflict("client_in_use"), http.StatusConflict, "client_in_use"),
		Entry("unavailable", httperr.ErrUnavailable("storage_disabled"), http.StatusServiceUnavailable, "storage_disabled"),
		Entry("wrapped business error", fmt.Errorf("ctx: %w", httperr.ErrNotFound("appointment_not_found")), http.StatusNotFound, "appointment_not_found"),
		Entry("gorm not found", gorm.ErrRecordNotFound, http.StatusNotFound, "not_found"),
		Entry("unique violation", &pgconn.PgError{Code: "23505"}, http.StatusConflict, "already_exists"),
		Entry("anything else", errors.New("connection reset"), http.StatusInternalServerError, "storage_error"),
	)

	It("uses the Portuguese message of the code", func() {
		_, body := respond(httperr.ErrBusiness("ambiguous_professional"))
		Expect(body.Message).To(Equal("Mais de um profissional com este nome."))
	})
})

var _ = Describe("postgres helpers", func() {
	It("recognizes foreign key violations through wrapping", func() {
		err := fmt.Errorf("delete client: %w", &pgconn.PgError{Code: "23503"})
		Expect(httperr.IsForeignKeyViolation(err)).To(BeTrue())
		Expect(httperr.IsUniqueViolation(err)).To(BeFalse())
	})

	It("exposes the violated unique index", func() {
		err := fmt.Errorf("signup: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_organizations_slug"})
		Expect(httperr.UniqueConstraint(err)).To(Equal("idx_organizations_slug"))
		Expect(httperr.UniqueConstraint(&pgconn.PgError{Code: "23503", ConstraintName: "fk_x"})).To(BeEmpty())
		Expect(httperr.UniqueConstraint(errors.New("boom"))).To(BeEmpty())
	})

	It("falls back to a generic message for unknown codes", func() {
		Expect(httperr.Message("nope")).To(Equal("Não foi possível concluir a operação."))
	})
})
