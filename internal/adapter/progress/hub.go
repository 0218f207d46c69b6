// Package progress carries sync progress events to observers. Reporting is
// best-effort: nothing here can block or fail a sync.
package progress

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

const writeTimeout = 5 * time.Second

// Hub fans progress events out to subscribers, typically websocket clients.
// Each subscriber has its own buffer; when it is full the event is dropped
// for that subscriber only.
type Hub struct {
	buffer  int
	origins []string
	logger  *slog.Logger

	mu      sync.RWMutex
	subs    map[*subscriber]struct{}
	closed  bool
	dropped atomic.Int64
}

type subscriber struct {
	setID string
	ch    chan domain.ProgressEvent
}

var _ port.ProgressReporter = (*Hub)(nil)

// NewHub creates a hub. origins are the websocket origin patterns accepted
// besides the request's own host.
func NewHub(buffer int, logger *slog.Logger, origins ...string) *Hub {
	if buffer <= 0 {
		buffer = 64
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		buffer:  buffer,
		origins: origins,
		logger:  logger,
		subs:    make(map[*subscriber]struct{}),
	}
}

// Report implements port.ProgressReporter. It never blocks.
func (h *Hub) Report(_ context.Context, e domain.ProgressEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.subs {
		if s.setID != "" && s.setID != e.CampaignSetID {
			continue
		}
		select {
		case s.ch <- e:
		default:
			h.dropped.Add(1)
		}
	}
}

// Subscribe registers a subscriber for one set, or for all sets when setID
// is empty. The returned function unsubscribes and closes the channel.
func (h *Hub) Subscribe(setID string) (<-chan domain.ProgressEvent, func()) {
	s := &subscriber{setID: setID, ch: make(chan domain.ProgressEvent, h.buffer)}
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(s.ch)
		return s.ch, func() {}
	}
	h.subs[s] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return s.ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if _, ok := h.subs[s]; ok {
				delete(h.subs, s)
				close(s.ch)
			}
		})
	}
}

// Subscribers returns the number of active subscribers.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Dropped returns how many events were dropped on full buffers.
func (h *Hub) Dropped() int64 { return h.dropped.Load() }

// Close ends every subscription. Later subscriptions are closed at once.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for s := range h.subs {
		delete(h.subs, s)
		close(s.ch)
	}
}

// ServeHTTP upgrades the request to a websocket and streams progress events
// as JSON until the client goes away or the hub closes. The optional
// campaignSetId query parameter filters events.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: h.origins})
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}
	defer conn.CloseNow()

	setID := r.URL.Query().Get("campaignSetId")
	events, unsubscribe := h.Subscribe(setID)
	defer unsubscribe()

	// clients only listen; CloseRead handles control frames and cancels ctx
	// when the client disconnects
	ctx := conn.CloseRead(r.Context())
	logger := h.logger.With(slog.String("remote", r.RemoteAddr), slog.String("campaign_set_id", setID))
	logger.Debug("progress subscriber connected")

	for {
		select {
		case <-ctx.Done():
			logger.Debug("progress subscriber gone")
			return
		case e, ok := <-events:
			if !ok {
				_ = conn.Close(websocket.StatusGoingAway, "shutting down")
				return
			}
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(wctx, conn, e)
			cancel()
			if err != nil {
				logger.Debug("progress write failed", slog.Any("error", err))
				return
			}
		}
	}
}
