package notify

import (
	"context"
	"log/slog"
	"sync"
)

type Event struct {
	OrganizationID uint
	UserID         uint
	Type           string
	Title          string
	Message        string
}

type writer interface {
	Write(ctx context.Context, ev Event) error
}

// Dispatcher grava notificações fora do caminho da requisição.
type Dispatcher struct {
	writer writer
	queue  chan Event
	logger *slog.Logger

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(w writer, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dispatcher{
		writer: w,
		queue:  make(chan Event, 100),
		logger: logger,
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.writer.Write(context.Background(), ev); err != nil {
			d.logger.Error("notification write failed",
				"organization_id", ev.OrganizationID,
				"user_id", ev.UserID,
				"error", err,
			)
		}
	}
}

// Dispatch nunca bloqueia: com a fila cheia a notificação é descartada.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.logger.Warn("notification queue full, dropping event",
			"organization_id", ev.OrganizationID,
			"title", ev.Title,
		)
	}
}

// Close drena a fila e espera o worker. Dispatch depois de Close é ignorado.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
