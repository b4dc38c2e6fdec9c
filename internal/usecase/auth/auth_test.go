package auth_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	authtoken "github.com/BruksfildServices01/clinic-scheduler/internal/auth"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/session"
	"github.com/BruksfildServices01/clinic-scheduler/internal/usecase/auth"
)

var _ = Describe("Auth use cases", func() {
	var (
		ctx    context.Context
		repo   *accountRepo
		signer *authtoken.Signer
		issuer *auth.Issuer

		signUp  *auth.SignUp
		signIn  *auth.SignIn
		refresh *auth.Refresh
		signOut *auth.SignOut
	)

	validInput := func() auth.SignUpInput {
		return auth.SignUpInput{
			OrganizationName: "Clínica São José",
			Name:             "Ana",
			Email:            " Ana@Example.com ",
			Password:         "segredo",
			Phone:            "(11) 91234-5678",
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		repo = newAccountRepo()
		signer = authtoken.NewSigner("segredo-de-teste", 15*time.Minute)
		issuer = auth.NewIssuer(repo, signer, 24*time.Hour)

		signUp = auth.NewSignUp(repo, issuer).WithEmailCheck(func(string) bool { return true })
		signIn = auth.NewSignIn(repo, issuer)
		refresh = auth.NewRefresh(issuer)
		signOut = auth.NewSignOut(issuer)
	})

	Describe("SignUp", func() {
		It("creates the organization with its owner and signs in", func() {
			view, err := signUp.Execute(ctx, validInput())
			Expect(err).NotTo(HaveOccurred())

			Expect(view.Organization.Slug).To(Equal("clinica-sao-jose"))
			Expect(view.Role).To(Equal(models.RoleOwner))
			Expect(view.User.Email).To(Equal("ana@example.com"))
			Expect(view.User.Phone).To(Equal("11912345678"))

			Expect(view.Tokens).NotTo(BeNil())
			Expect(view.Tokens.TokenType).To(Equal("Bearer"))
			Expect(view.Tokens.ExpiresIn).To(Equal(900))

			userID, err := signer.Parse(view.Tokens.AccessToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(userID).To(Equal(view.User.ID))
		})

		It("rejects a second organization with the same slug", func() {
			_, err := signUp.Execute(ctx, validInput())
			Expect(err).NotTo(HaveOccurred())

			in := validInput()
			in.Email = "outra@example.com"
			_, err = signUp.Execute(ctx, in)
			Expect(httperr.IsBusiness(err, "slug_already_exists")).To(BeTrue())
		})

		It("reports a slug taken between the check and the insert as a slug conflict", func() {
			_, err := signUp.Execute(ctx, validInput())
			Expect(err).NotTo(HaveOccurred())

			repo.staleSlugCheck = true
			in := validInput()
			in.Email = "outra@example.com"
			_, err = signUp.Execute(ctx, in)
			Expect(httperr.IsBusiness(err, "slug_already_exists")).To(BeTrue())
			Expect(httperr.IsKind(err, httperr.KindConflict)).To(BeTrue())
		})

		It("rejects a repeated e-mail", func() {
			_, err := signUp.Execute(ctx, validInput())
			Expect(err).NotTo(HaveOccurred())

			in := validInput()
			in.OrganizationName = "Outra Clínica"
			_, err = signUp.Execute(ctx, in)
			Expect(httperr.IsBusiness(err, "email_already_exists")).To(BeTrue())
			Expect(httperr.IsKind(err, httperr.KindConflict)).To(BeTrue())
		})

		It("rejects e-mails whose domain does not resolve", func() {
			uc := auth.NewSignUp(repo, issuer).WithEmailCheck(func(string) bool { return false })
			_, err := uc.Execute(ctx, validInput())
			Expect(httperr.IsBusiness(err, "invalid_email_domain")).To(BeTrue())
		})

		DescribeTable("rejects incomplete input",
			func(mutate func(*auth.SignUpInput)) {
				in := validInput()
				mutate(&in)
				_, err := signUp.Execute(ctx, in)
				Expect(httperr.IsBusiness(err, "invalid_request")).To(BeTrue())
			},
			Entry("short password", func(in *auth.SignUpInput) { in.Password = "12345" }),
			Entry("blank name", func(in *auth.SignUpInput) { in.Name = "  " }),
			Entry("blank organization", func(in *auth.SignUpInput) { in.OrganizationName = "" }),
			Entry("organization without letters or digits", func(in *auth.SignUpInput) { in.OrganizationName = "!!!" }),
		)
	})

	Describe("SignIn", func() {
		BeforeEach(func() {
			_, err := signUp.Execute(ctx, validInput())
			Expect(err).NotTo(HaveOccurred())
		})

		It("accepts the e-mail in any case", func() {
			view, err := signIn.Execute(ctx, "ANA@example.com", "segredo")
			Expect(err).NotTo(HaveOccurred())
			Expect(view.Organization.Name).To(Equal("Clínica São José"))
			Expect(view.Tokens.RefreshToken).NotTo(BeEmpty())
		})

		It("does not tell a wrong password from an unknown e-mail", func() {
			_, err1 := signIn.Execute(ctx, "ana@example.com", "errada")
			_, err2 := signIn.Execute(ctx, "ninguem@example.com", "segredo")
			Expect(err1).To(Equal(err2))
			Expect(httperr.IsBusiness(err1, "invalid_credentials")).To(BeTrue())
		})

		It("forbids users without membership", func() {
			user, err := repo.GetUserByEmail(ctx, "ana@example.com")
			Expect(err).NotTo(HaveOccurred())
			repo.dropMembership(user.ID)

			_, err = signIn.Execute(ctx, "ana@example.com", "segredo")
			Expect(httperr.IsBusiness(err, "no_membership")).To(BeTrue())
		})
	})

	Describe("Refresh and SignOut", func() {
		var first *auth.Tokens

		BeforeEach(func() {
			view, err := signUp.Execute(ctx, validInput())
			Expect(err).NotTo(HaveOccurred())
			first = view.Tokens
		})

		It("rotates the token inside the same family", func() {
			next, err := refresh.Execute(ctx, first.RefreshToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(next.RefreshToken).NotTo(Equal(first.RefreshToken))

			Expect(repo.familyOf(authtoken.HashRefreshToken(next.RefreshToken))).
				To(Equal(repo.familyOf(authtoken.HashRefreshToken(first.RefreshToken))))

			_, err = refresh.Execute(ctx, first.RefreshToken)
			Expect(httperr.IsBusiness(err, "invalid_refresh")).To(BeTrue())
		})

		It("rejects empty and unknown tokens", func() {
			_, err := refresh.Execute(ctx, "")
			Expect(httperr.IsBusiness(err, "invalid_refresh")).To(BeTrue())

			_, err = refresh.Execute(ctx, "desconhecido")
			Expect(httperr.IsBusiness(err, "invalid_refresh")).To(BeTrue())
		})

		It("revokes on sign out and stays idempotent", func() {
			Expect(signOut.Execute(ctx, first.RefreshToken)).To(Succeed())
			Expect(signOut.Execute(ctx, first.RefreshToken)).To(Succeed())
			Expect(signOut.Execute(ctx, "")).To(Succeed())
			Expect(signOut.Execute(ctx, "desconhecido")).To(Succeed())

			_, err := refresh.Execute(ctx, first.RefreshToken)
			Expect(httperr.IsBusiness(err, "invalid_refresh")).To(BeTrue())
		})
	})

	Describe("GetSession", func() {
		It("returns the user and organization without tokens", func() {
			view, err := signUp.Execute(ctx, validInput())
			Expect(err).NotTo(HaveOccurred())

			got, err := auth.NewGetSession(repo).Execute(ctx, session.Session{
				UserID:         view.User.ID,
				OrganizationID: view.Organization.ID,
				Role:           view.Role,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(got.User).To(Equal(view.User))
			Expect(got.Organization.Slug).To(Equal("clinica-sao-jose"))
			Expect(got.Tokens).To(BeNil())
		})
	})
})
