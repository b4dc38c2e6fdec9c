package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/realtime"
)

const (
	wsPingInterval = 30 * time.Second
	wsPongWait     = 60 * time.Second
	wsWriteWait    = 10 * time.Second
)

type RealtimeHandler struct {
	hub      *realtime.Hub
	upgrader websocket.Upgrader
}

// NewRealtimeHandler: origens vazias aceitam qualquer origem, como no CORS.
func NewRealtimeHandler(hub *realtime.Hub, origins []string) *RealtimeHandler {
	allow := make(map[string]bool, len(origins))
	for _, o := range origins {
		allow[o] = true
	}

	return &RealtimeHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return len(allow) == 0 || origin == "" || allow[origin]
			},
		},
	}
}

// Subscribe: GET /api/realtime?tables=appointments,notifications
// A conexão vive até erro de leitura; o servidor manda ping a cada 30s.
func (h *RealtimeHandler) Subscribe(c *gin.Context) {
	sess := middleware.Session(c)
	ctx := c.Request.Context()

	tables, ok := parseTables(c.Query("tables"))
	if !ok {
		httperr.FromError(c, httperr.ErrBusiness("invalid_tables"))
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.WarnContext(ctx, "websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	sub := h.hub.Subscribe(sess.OrganizationID, tables...)
	defer sub.Close()

	slog.DebugContext(ctx, "realtime subscribed", "subscription_id", sub.ID)

	// Leitura só para detectar fechamento e responder pongs.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(wsPongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return

		case <-ctx.Done():
			return

		case ev, ok := <-sub.Events():
			if !ok {
				// Hub encerrado no shutdown.
				_ = conn.WriteControl(
					websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
					time.Now().Add(wsWriteWait),
				)
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(ev); err != nil {
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// parseTables: vazio significa todas as tabelas; uma lista sem nenhuma tabela
// conhecida é rejeitada.
func parseTables(raw string) ([]string, bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, true
	}
	var out []string
	for _, t := range strings.Split(raw, ",") {
		switch t = strings.TrimSpace(t); t {
		case realtime.TableAppointments, realtime.TableNotifications:
			out = append(out, t)
		}
	}
	return out, len(out) > 0
}
