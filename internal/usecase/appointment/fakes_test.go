package appointment_test

import (
	"context"
	"sort"
	"sync"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/notify"
	"github.com/BruksfildServices01/clinic-scheduler/internal/realtime"
)

// memoryRepo guarda tudo em mapas; IDs são sequenciais por tabela.
type memoryRepo struct {
	mu sync.Mutex

	nextID        uint
	professionals map[uint]models.Professional
	clients       map[uint]models.Client
	appointments  map[uint]models.Appointment
	availability  map[uint][]models.AvailabilityWindow
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		professionals: map[uint]models.Professional{},
		clients:       map[uint]models.Client{},
		appointments:  map[uint]models.Appointment{},
		availability:  map[uint][]models.AvailabilityWindow{},
	}
}

func (r *memoryRepo) id() uint {
	r.nextID++
	return r.nextID
}

func (r *memoryRepo) addProfessional(orgID uint, name string) models.Professional {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := models.Professional{ID: r.id(), OrganizationID: orgID, Name: name}
	r.professionals[p.ID] = p
	return p
}

func (r *memoryRepo) addClient(orgID uint, name string) models.Client {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := models.Client{ID: r.id(), OrganizationID: orgID, Name: name}
	r.clients[c.ID] = c
	return c
}

func (r *memoryRepo) clientCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

func (r *memoryRepo) GetProfessional(_ context.Context, orgID, id uint) (*models.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.professionals[id]
	if !ok || p.OrganizationID != orgID {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *memoryRepo) FindProfessionalsByName(_ context.Context, orgID uint, name string) ([]models.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Professional
	for _, p := range r.professionals {
		if p.OrganizationID == orgID && p.Name == name {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryRepo) GetClient(_ context.Context, orgID, id uint) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[id]
	if !ok || c.OrganizationID != orgID {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *memoryRepo) FindClientsByName(_ context.Context, orgID uint, name string) ([]models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Client
	for _, c := range r.clients {
		if c.OrganizationID == orgID && c.Name == name {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryRepo) CreateAppointment(_ context.Context, ap *models.Appointment, newClient *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if newClient != nil {
		newClient.ID = r.id()
		r.clients[newClient.ID] = *newClient
		ap.ClientID = newClient.ID
	}
	ap.ID = r.id()
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *memoryRepo) GetAppointment(_ context.Context, orgID, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap, ok := r.appointments[id]
	if !ok || ap.OrganizationID != orgID {
		return nil, gorm.ErrRecordNotFound
	}
	ap.Professional = r.professionals[ap.ProfessionalID]
	ap.Client = r.clients[ap.ClientID]
	return &ap, nil
}

func (r *memoryRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.appointments[ap.ID]; !ok || cur.OrganizationID != ap.OrganizationID {
		return gorm.ErrRecordNotFound
	}
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *memoryRepo) DeleteAppointment(_ context.Context, orgID, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap, ok := r.appointments[id]
	if !ok || ap.OrganizationID != orgID {
		return gorm.ErrRecordNotFound
	}
	delete(r.appointments, id)
	return nil
}

func (r *memoryRepo) ListAppointments(_ context.Context, orgID uint, f domain.Filter) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Appointment{}
	for _, ap := range r.appointments {
		switch {
		case ap.OrganizationID != orgID:
		case f.ProfessionalID != 0 && ap.ProfessionalID != f.ProfessionalID:
		case f.ClientID != 0 && ap.ClientID != f.ClientID:
		case f.Status != "" && ap.Status != f.Status:
		case f.From != nil && ap.StartTime.Before(*f.From):
		case f.To != nil && !ap.StartTime.Before(*f.To):
		default:
			ap.Professional = r.professionals[ap.ProfessionalID]
			ap.Client = r.clients[ap.ClientID]
			out = append(out, ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *memoryRepo) ListAvailability(_ context.Context, professionalID uint) ([]models.AvailabilityWindow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.AvailabilityWindow(nil), r.availability[professionalID]...), nil
}

func (r *memoryRepo) ReplaceAvailability(_ context.Context, professionalID uint, windows []models.AvailabilityWindow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.availability[professionalID] = append([]models.AvailabilityWindow(nil), windows...)
	return nil
}

var _ domain.Repository = (*memoryRepo)(nil)

type recordingPublisher struct {
	mu     sync.Mutex
	events []realtime.Event
}

func (p *recordingPublisher) Publish(_ context.Context, ev realtime.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) Events() []realtime.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]realtime.Event(nil), p.events...)
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []notify.Event
}

func (n *recordingNotifier) Dispatch(ev notify.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
}

func (n *recordingNotifier) Events() []notify.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notify.Event(nil), n.events...)
}

// deletingRepo apaga o agendamento logo depois de lê-lo, como um delete
// concorrente entre a leitura e a gravação.
type deletingRepo struct {
	*memoryRepo
}

func (r *deletingRepo) GetAppointment(ctx context.Context, orgID, id uint) (*models.Appointment, error) {
	ap, err := r.memoryRepo.GetAppointment(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if err := r.memoryRepo.DeleteAppointment(ctx, orgID, id); err != nil {
		return nil, err
	}
	return ap, nil
}
