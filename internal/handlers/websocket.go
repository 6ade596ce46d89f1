package handlers

import (
	"context"
	"net/http"
	"slices"
	"strconv"
	"time"

	"todo_api"
	"todo_api/internal/logger"
	"todo_api/internal/models"
	"todo_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait       = 10 * time.Second
	pongWait        = 60 * time.Second
	pingPeriod      = (pongWait * 9) / 10
	maxMsgSize      = 1 << 12 // 4 KB
	defaultInterval = 1 * time.Second
	minInterval     = 10 * time.Millisecond
	maxInterval     = 10 * time.Second

	wsTypeItems = "items"
	wsTypeError = "error"
)

type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// itemStream serves one client. The list is polled every tick and written
// only when it differs from the last list the client received.
type itemStream struct {
	conn *websocket.Conn
	list service.TodoList
	log  *logger.Logger

	last []models.TodoItem
	sent bool
}

// @Summary      Stream todo items
// @Description  Upgrades to a WebSocket. The full item list is pushed on connect and again whenever it changes; the list is polled every interval.
// @Tags         todo
// @Param        interval     query  string  false  "Poll interval as a Go duration, clamped to [10ms, 10s]"  example(2s)
// @Param        interval_ms  query  int     false  "Poll interval in milliseconds, clamped to [10, 10000]"
// @Router       /todo/ws [get]
func (h *Handler) wsConnect(c *gin.Context) {
	interval := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err, "request_id", requestID(c))
		}
		return
	}
	defer func() { _ = conn.Close() }()

	s := &itemStream{conn: conn, list: h.services.TodoList, log: h.log}
	if err := s.run(c.Request.Context(), interval); err != nil && h.log != nil {
		h.log.Infow("ws_stream_closed", "err", err, "request_id", requestID(c))
	}
}

func (s *itemStream) run(ctx context.Context, interval time.Duration) error {
	s.conn.SetReadLimit(maxMsgSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	closed := make(chan error, 1)
	go s.drain(closed)

	if err := s.poll(ctx); err != nil {
		return err
	}

	poll := time.NewTicker(interval)
	defer poll.Stop()
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case err := <-closed:
			return err
		case <-ctx.Done():
			return ctx.Err()
		case <-ping.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return err
			}
		case <-poll.C:
			if err := s.poll(ctx); err != nil {
				return err
			}
		}
	}
}

// drain reads until the client goes away so control frames get handled.
func (s *itemStream) drain(closed chan<- error) {
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			closed <- err
			return
		}
	}
}

// poll fetches the list and pushes it if it changed. A storage failure is
// reported to the client with its static reason and ends the stream.
func (s *itemStream) poll(ctx context.Context) error {
	items, err := s.list.List(ctx)
	if err != nil {
		if s.log != nil {
			s.log.Errorw("ws_todo_list_failed", "err", err)
		}
		_ = s.write(wsEnvelope{Type: wsTypeError, Error: storageReason(err, errFetchItems)})
		return err
	}
	if s.sent && slices.Equal(items, s.last) {
		return nil
	}
	if err := s.write(wsEnvelope{Type: wsTypeItems, Data: todo_api.TodoList{Items: items}}); err != nil {
		return err
	}
	s.last, s.sent = items, true
	return nil
}

func (s *itemStream) write(env wsEnvelope) error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(env)
}

// parseInterval reads ?interval=2s, or ?interval_ms=2000 when interval is
// absent or unparsable. Parsed values are clamped to [minInterval, maxInterval];
// anything else falls back to the configured interval.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if d, err := time.ParseDuration(c.Query("interval")); err == nil && d > 0 {
		return clampInterval(d)
	}
	if v, err := strconv.Atoi(c.Query("interval_ms")); err == nil && v > 0 {
		return clampInterval(time.Duration(v) * time.Millisecond)
	}
	return h.streamInterval
}

func clampInterval(d time.Duration) time.Duration {
	return min(max(d, minInterval), maxInterval)
}
