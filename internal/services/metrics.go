package services

import (
	"sync"
	"sync/atomic"
	"time"
)

type Metrics struct {
	framesProcessed  atomic.Int64
	framesDropped    atomic.Int64
	extractionErrors atomic.Int64
	totalLatency     atomic.Int64
	activeSessions   atomic.Int32
	lastFrameTime    atomic.Int64

	wsConnections atomic.Int64
	wsMessages    atomic.Int64
	wsErrors      atomic.Int64

	reportsSent   atomic.Int64
	reportsFailed atomic.Int64
}

var (
	metricsInstance *Metrics
	metricsOnce     sync.Once
)

func NewMetrics() *Metrics {
	return &Metrics{}
}

func GetMetrics() *Metrics {
	metricsOnce.Do(func() {
		metricsInstance = NewMetrics()
	})
	return metricsInstance
}

func (m *Metrics) IncrementFrames() {
	m.framesProcessed.Add(1)
	m.lastFrameTime.Store(time.Now().Unix())
}

func (m *Metrics) IncrementDroppedFrames() {
	m.framesDropped.Add(1)
}

func (m *Metrics) IncrementExtractionErrors() {
	m.extractionErrors.Add(1)
}

func (m *Metrics) RecordLatency(duration time.Duration) {
	m.totalLatency.Add(duration.Milliseconds())
}

func (m *Metrics) SetActiveSessions(count int) {
	m.activeSessions.Store(int32(count))
}

func (m *Metrics) GetFramesProcessed() int64 {
	return m.framesProcessed.Load()
}

func (m *Metrics) GetFramesDropped() int64 {
	return m.framesDropped.Load()
}

func (m *Metrics) GetExtractionErrors() int64 {
	return m.extractionErrors.Load()
}

func (m *Metrics) GetAvgLatency() float64 {
	frames := m.framesProcessed.Load()
	if frames == 0 {
		return 0
	}
	return float64(m.totalLatency.Load()) / float64(frames)
}

func (m *Metrics) GetActiveSessions() int {
	return int(m.activeSessions.Load())
}

func (m *Metrics) GetLastFrameTime() int64 {
	return m.lastFrameTime.Load()
}

func (m *Metrics) IncrementWebSocketConnections() {
	m.wsConnections.Add(1)
}

// DecrementWebSocketConnections decrements WebSocket connection count
func (m *Metrics) DecrementWebSocketConnections() {
	m.wsConnections.Add(-1)
}

// GetWebSocketConnections returns current WebSocket connections
func (m *Metrics) GetWebSocketConnections() int64 {
	return m.wsConnections.Load()
}

// IncrementWebSocketMessages increments WebSocket message count
func (m *Metrics) IncrementWebSocketMessages() {
	m.wsMessages.Add(1)
}

// IncrementWebSocketErrors increments WebSocket error count
func (m *Metrics) IncrementWebSocketErrors() {
	m.wsErrors.Add(1)
}

// IncrementReportsSent increments delivered backend report count
func (m *Metrics) IncrementReportsSent() {
	m.reportsSent.Add(1)
}

// IncrementReportsFailed increments failed backend report count
func (m *Metrics) IncrementReportsFailed() {
	m.reportsFailed.Add(1)
}

func (m *Metrics) GetReportsSent() int64 {
	return m.reportsSent.Load()
}

func (m *Metrics) GetReportsFailed() int64 {
	return m.reportsFailed.Load()
}

// GetWebSocketMetrics returns WebSocket-specific metrics
func (m *Metrics) GetWebSocketMetrics() map[string]interface{} {
	return map[string]interface{}{
		"connections": m.wsConnections.Load(),
		"messages":    m.wsMessages.Load(),
		"errors":      m.wsErrors.Load(),
	}
}
