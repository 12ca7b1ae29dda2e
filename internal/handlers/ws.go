package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math"
	"net/http"
	"sync"
	"time"

	"AI_PROCTOR/go-backend/internal/database"
	"AI_PROCTOR/go-backend/internal/models"
	"AI_PROCTOR/go-backend/internal/services"
	"AI_PROCTOR/go-backend/internal/session"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var errExtractorUnavailable = errors.New("extraction service unavailable")

// Reporter delivers a session's final score to the record keeping backend.
type Reporter interface {
	Report(ctx context.Context, employeeID string, score float64) error
}

type inboundKind int

const (
	inboundUnknown inboundKind = iota
	inboundIdentity
	inboundFrame
)

// inboundMessage is the tagged form of one WebSocket message, decided once
// at the boundary.
type inboundMessage struct {
	kind       inboundKind
	employeeID string
	frame      []byte
}

func classifyInbound(messageType int, data []byte) inboundMessage {
	switch messageType {
	case websocket.BinaryMessage:
		return inboundMessage{kind: inboundFrame, frame: data}
	case websocket.TextMessage:
		var msg models.InitMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return inboundMessage{}
		}
		if msg.Type == "init" && msg.EmployeeID != "" {
			return inboundMessage{kind: inboundIdentity, employeeID: msg.EmployeeID}
		}
		return inboundMessage{}
	default:
		return inboundMessage{}
	}
}

type wsClient struct {
	conn *websocket.Conn
	send chan models.AnalysisResult
	sess *session.Session
}

// WSHandler drives the lifecycle of every streaming session: registry
// insertion on connect, the frame-gated analysis loop, and the final report
// on disconnect.
type WSHandler struct {
	registry  *session.Registry
	gate      *session.FrameGate
	extractor services.Extractor
	reporter  Reporter
	metrics   *services.Metrics
	archive   bool

	// MaxConnections and MaxMessageBytes are enforced when positive. Set
	// them before the handler starts serving.
	MaxConnections  int
	MaxMessageBytes int64

	mu      sync.Mutex
	clients map[uint64]*wsClient

	conns   sync.WaitGroup
	reports sync.WaitGroup
}

func NewWSHandler(maxFPS int, extractor services.Extractor, reporter Reporter, archiveReports bool) *WSHandler {
	return &WSHandler{
		registry:  session.NewRegistry(),
		gate:      session.NewFrameGate(maxFPS),
		extractor: extractor,
		reporter:  reporter,
		metrics:   services.GetMetrics(),
		archive:   archiveReports,
		clients:   make(map[uint64]*wsClient),
	}
}

func (h *WSHandler) ActiveSessions() int {
	return h.registry.Count()
}

func (h *WSHandler) HandleWS(w http.ResponseWriter, r *http.Request) {
	if h.MaxConnections > 0 && h.registry.Count() >= h.MaxConnections {
		log.Printf("Refusing connection: %d sessions already active", h.registry.Count())
		http.Error(w, "Too many connections", http.StatusServiceUnavailable)
		return
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	h.conns.Add(1)
	defer h.conns.Done()

	sess := h.registry.Add()
	h.metrics.IncrementWebSocketConnections()
	h.metrics.SetActiveSessions(h.registry.Count())
	log.Printf("New client connected: %s (handle %d)", sess.ClientID, sess.Handle)

	client := &wsClient{
		conn: conn,
		send: make(chan models.AnalysisResult, 256),
		sess: sess,
	}

	h.mu.Lock()
	h.clients[sess.Handle] = client
	h.mu.Unlock()

	go h.writePump(client)

	// The read loop owns the session state for the life of the connection.
	h.readPump(client)
	h.finish(client)
}

func (h *WSHandler) readPump(client *wsClient) {
	conn := client.conn

	if h.MaxMessageBytes > 0 {
		conn.SetReadLimit(h.MaxMessageBytes)
	}
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error for %s: %v", client.sess.ClientID, err)
				h.metrics.IncrementWebSocketErrors()
			}
			return
		}
		h.metrics.IncrementWebSocketMessages()

		msg := classifyInbound(messageType, data)
		switch msg.kind {
		case inboundIdentity:
			// Last write wins when init arrives more than once.
			client.sess.EmployeeID = msg.employeeID
			log.Printf("employee_id bound for %s: %s", client.sess.ClientID, msg.employeeID)
		case inboundFrame:
			h.handleFrame(client, msg.frame)
		default:
			log.Printf("Ignoring unrecognized message from %s", client.sess.ClientID)
		}
	}
}

func (h *WSHandler) handleFrame(client *wsClient, frame []byte) {
	sess := client.sess

	if !h.gate.ShouldProcess(sess, time.Now()) {
		h.metrics.IncrementDroppedFrames()
		return
	}

	if len(frame) == 0 {
		log.Printf("Empty frame received from %s", sess.ClientID)
		return
	}

	sess.Frames++
	start := time.Now()

	var result models.AnalysisResult
	obs, err := h.analyze(frame, int32(sess.Frames))
	if err != nil {
		// The client still gets a result, it just carries status "error"
		// and the score stays where it was.
		log.Printf("Extraction failed for %s: %v", sess.ClientID, err)
		h.metrics.IncrementExtractionErrors()
		result = sess.Scorer.ErrorResult()
	} else {
		result = sess.Scorer.Update(obs)
	}
	sess.RecordScore(result.CredibilityScore)

	h.metrics.IncrementFrames()
	h.metrics.RecordLatency(time.Since(start))

	h.dispatch(client, result)
}

func (h *WSHandler) analyze(frame []byte, sequence int32) (models.Observation, error) {
	if h.extractor == nil {
		return models.Observation{}, errExtractorUnavailable
	}
	return h.extractor.AnalyzeFrame(context.Background(), frame, sequence)
}

// dispatch hands the result to the write pump without ever blocking the read
// loop. A saturated or dead outbound path costs this frame's result, nothing
// else.
func (h *WSHandler) dispatch(client *wsClient, result models.AnalysisResult) {
	select {
	case client.send <- result:
	default:
		log.Printf("Dropping result for %s: send buffer full", client.sess.ClientID)
	}
}

func (h *WSHandler) writePump(client *wsClient) {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		client.conn.Close()
	}()

	for {
		select {
		case result, ok := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

			if !ok {
				client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := client.conn.WriteJSON(result); err != nil {
				return
			}

		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// finish runs the closing path of a session: report the aggregate score when
// it exists and an identity was bound, then release everything.
func (h *WSHandler) finish(client *wsClient) {
	sess := client.sess

	final, ok := sess.FinalScore()
	if ok && sess.EmployeeID != "" {
		log.Printf("Final score for %s (employee %s): %.2f over %d frames",
			sess.ClientID, sess.EmployeeID, final, len(sess.Scores))
		h.reports.Add(1)
		go h.deliverReport(sess, final)
	} else if ok {
		// Frames were scored but no identity was ever bound, so the score
		// is dropped.
		log.Printf("Session %s ended with %d scored frames and no employee_id, score discarded",
			sess.ClientID, len(sess.Scores))
	}

	h.registry.Remove(sess.Handle)

	h.mu.Lock()
	delete(h.clients, sess.Handle)
	h.mu.Unlock()

	close(client.send)
	client.conn.Close()

	h.metrics.DecrementWebSocketConnections()
	h.metrics.SetActiveSessions(h.registry.Count())
	log.Printf("Client disconnected: %s", sess.ClientID)
}

func (h *WSHandler) deliverReport(sess *session.Session, final float64) {
	defer h.reports.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	delivered := false
	if err := h.reporter.Report(ctx, sess.EmployeeID, final); err != nil {
		// At-most-once: the report for this session is lost.
		log.Printf("Backend report failed for employee %s: %v", sess.EmployeeID, err)
		h.metrics.IncrementReportsFailed()
	} else {
		delivered = true
		log.Printf("Score saved for employee %s", sess.EmployeeID)
		h.metrics.IncrementReportsSent()
	}

	if h.archive {
		report := models.CredibilityReport{
			ID:         uuid.New(),
			EmployeeID: sess.EmployeeID,
			Score:      int(math.Round(final)),
			FrameCount: sess.Frames,
			Delivered:  delivered,
			StartedAt:  sess.StartedAt,
			EndedAt:    time.Now(),
		}
		if err := database.SaveReport(ctx, report); err != nil {
			log.Printf("Report archive failed for employee %s: %v", sess.EmployeeID, err)
		}
	}
}

// DrainReports waits during shutdown for closing sessions to run their
// teardown and for the backend reports they launched to land. Reports still
// pending when the timeout expires are lost.
func (h *WSHandler) DrainReports(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		// Connection goroutines first: a session closed moments ago may not
		// have registered its report yet.
		h.conns.Wait()
		h.reports.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// CloseAll closes every live connection. Each read loop then exits and runs
// its normal closing path.
func (h *WSHandler) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, client := range h.clients {
		client.conn.Close()
		log.Printf("Closed connection for client: %s", client.sess.ClientID)
	}
}
