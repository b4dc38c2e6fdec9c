package professional_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/session"
	"github.com/BruksfildServices01/clinic-scheduler/internal/usecase/professional"
)

type professionalRepo struct {
	items  map[uint]models.Professional
	nextID uint
}

func (r *professionalRepo) ListProfessionals(_ context.Context, orgID uint) ([]models.Professional, error) {
	out := []models.Professional{}
	for _, p := range r.items {
		if p.OrganizationID == orgID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *professionalRepo) GetProfessional(_ context.Context, orgID, id uint) (*models.Professional, error) {
	p, ok := r.items[id]
	if !ok || p.OrganizationID != orgID {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *professionalRepo) CreateProfessional(_ context.Context, p *models.Professional) error {
	r.nextID++
	p.ID = r.nextID
	r.items[p.ID] = *p
	return nil
}

func (r *professionalRepo) UpdateProfessional(_ context.Context, p *models.Professional) error {
	r.items[p.ID] = *p
	return nil
}

func (r *professionalRepo) DeleteProfessional(_ context.Context, orgID, id uint) error {
	p, ok := r.items[id]
	if !ok || p.OrganizationID != orgID {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

type memoryStore struct {
	keys []string
	fail bool
}

func (s *memoryStore) Put(_ context.Context, key string, body []byte, contentType string) (string, error) {
	if s.fail {
		return "", errors.New("bucket unavailable")
	}
	Expect(contentType).To(Equal("image/webp"))
	Expect(body).NotTo(BeEmpty())
	s.keys = append(s.keys, key)
	return "https://cdn.example.com/" + key, nil
}

func ptr(s string) *string { return &s }

func pngPhoto() *bytes.Buffer {
	var buf bytes.Buffer
	Expect(png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 64, 64)))).To(Succeed())
	return &buf
}

var _ = Describe("professional use cases", func() {
	var (
		ctx  context.Context
		repo *professionalRepo
		sess session.Session
		ana  *models.Professional
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = &professionalRepo{items: map[uint]models.Professional{}}
		sess = session.Session{UserID: 1, OrganizationID: 2}

		var err error
		ana, err = professional.NewCreateProfessional(repo).Execute(ctx, sess, professional.Input{
			Name:      ptr(" Dra. Ana "),
			Specialty: ptr("Fisioterapia"),
			Email:     ptr("ANA@clinica.com"),
		})
		Expect(err).NotTo(HaveOccurred())
	})

	It("creates with trimmed and normalized fields", func() {
		Expect(ana.Name).To(Equal("Dra. Ana"))
		Expect(ana.Email).To(Equal("ana@clinica.com"))
		Expect(ana.OrganizationID).To(Equal(uint(2)))
		Expect(ana.Availability).NotTo(BeNil())
	})

	It("requires a name", func() {
		_, err := professional.NewCreateProfessional(repo).Execute(ctx, sess, professional.Input{Specialty: ptr("x")})
		Expect(httperr.IsBusiness(err, "invalid_request")).To(BeTrue())
	})

	It("updates only informed fields", func() {
		p, err := professional.NewUpdateProfessional(repo).Execute(ctx, sess, ana.ID, professional.Input{Phone: ptr("(21) 3333-4444")})
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Phone).To(Equal("2133334444"))
		Expect(p.Specialty).To(Equal("Fisioterapia"))
	})

	It("scopes get and delete to the organization", func() {
		other := session.Session{OrganizationID: 3}

		_, err := professional.NewGetProfessional(repo).Execute(ctx, other, ana.ID)
		Expect(httperr.IsBusiness(err, "professional_not_found")).To(BeTrue())

		err = professional.NewDeleteProfessional(repo).Execute(ctx, other, ana.ID)
		Expect(httperr.IsBusiness(err, "professional_not_found")).To(BeTrue())

		Expect(professional.NewDeleteProfessional(repo).Execute(ctx, sess, ana.ID)).To(Succeed())
		list, err := professional.NewListProfessionals(repo).Execute(ctx, sess)
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(BeEmpty())
	})

	Describe("UploadPhoto", func() {
		It("stores a webp under the organization prefix and saves the url", func() {
			store := &memoryStore{}
			p, err := professional.NewUploadPhoto(repo, store).Execute(ctx, sess, ana.ID, pngPhoto())
			Expect(err).NotTo(HaveOccurred())

			Expect(store.keys).To(HaveLen(1))
			Expect(store.keys[0]).To(MatchRegexp(`^organizations/2/professionals/\d+/[0-9a-f-]{36}\.webp$`))
			Expect(p.PhotoURL).To(Equal("https://cdn.example.com/" + store.keys[0]))
			Expect(repo.items[ana.ID].PhotoURL).To(Equal(p.PhotoURL))
		})

		It("reports storage as unavailable when it is not configured", func() {
			_, err := professional.NewUploadPhoto(repo, nil).Execute(ctx, sess, ana.ID, pngPhoto())
			Expect(httperr.IsBusiness(err, "storage_disabled")).To(BeTrue())
		})

		It("keeps the old photo when the upload fails", func() {
			_, err := professional.NewUploadPhoto(repo, &memoryStore{fail: true}).Execute(ctx, sess, ana.ID, pngPhoto())
			Expect(err).To(HaveOccurred())
			Expect(repo.items[ana.ID].PhotoURL).To(BeEmpty())
		})
	})
})
