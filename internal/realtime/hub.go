package realtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

const subscriptionBuffer = 32

// Hub distribui eventos para as assinaturas do processo. Cada assinatura só
// recebe eventos da própria organização e das tabelas pedidas.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]*Subscription
	logger *slog.Logger
	now    func() time.Time
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		subs:   make(map[string]*Subscription),
		logger: logger,
		now:    time.Now,
	}
}

type Subscription struct {
	ID             string
	OrganizationID uint

	tables map[string]bool
	events chan Event
	hub    *Hub
	once   sync.Once
}

func (s *Subscription) Events() <-chan Event {
	return s.events
}

// Close remove a assinatura e fecha o canal. Pode ser chamado mais de uma vez.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.subs, s.ID)
		close(s.events)
		s.hub.mu.Unlock()
	})
}

func (s *Subscription) wants(ev Event) bool {
	if ev.OrganizationID != s.OrganizationID {
		return false
	}
	return len(s.tables) == 0 || s.tables[ev.Table]
}

// Subscribe sem tabelas recebe todas as tabelas da organização.
func (h *Hub) Subscribe(organizationID uint, tables ...string) *Subscription {
	sub := &Subscription{
		ID:             uuid.NewString(),
		OrganizationID: organizationID,
		tables:         make(map[string]bool, len(tables)),
		events:         make(chan Event, subscriptionBuffer),
		hub:            h,
	}
	for _, t := range tables {
		sub.tables[t] = true
	}

	h.mu.Lock()
	h.subs[sub.ID] = sub
	h.mu.Unlock()

	return sub
}

// Publish entrega localmente. Assinatura com buffer cheio perde o evento; o
// cliente converge na próxima consulta.
func (h *Hub) Publish(ctx context.Context, ev Event) error {
	if ev.At.IsZero() {
		ev.At = h.now()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs {
		if !sub.wants(ev) {
			continue
		}
		select {
		case sub.events <- ev:
		default:
			h.logger.WarnContext(ctx, "realtime subscriber slow, dropping event",
				"subscription_id", sub.ID,
				"table", ev.Table,
				"kind", ev.Kind,
			)
		}
	}
	return nil
}

// CloseAll encerra todas as assinaturas; os handlers WebSocket veem o canal
// fechado e desconectam o cliente.
func (h *Hub) CloseAll() {
	h.mu.RLock()
	subs := make([]*Subscription, 0, len(h.subs))
	for _, sub := range h.subs {
		subs = append(subs, sub)
	}
	h.mu.RUnlock()

	for _, sub := range subs {
		sub.Close()
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

var _ Publisher = (*Hub)(nil)
