package net

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"LocalSketch/internal/state"
)

// Source is the drawing a Mirror shows.
type Source interface {
	ID() string
	Size() (width, height float64)
	Traces() []state.Trace
}

// Frame is one message sent to viewers.
type Frame struct {
	Document string        `json:"document"`
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
	Traces   []state.Trace `json:"traces"`
	Sent     time.Time     `json:"sent"`
}

const sendBuffer = 8

type viewer struct {
	conn *websocket.Conn
	send chan []byte
}

// Mirror streams a drawing to read-only websocket viewers. Every viewer
// gets the current frame when it connects and a new one on each Publish.
// Anything viewers send is discarded.
type Mirror struct {
	src      Source
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	viewers map[*viewer]bool
	server  *http.Server
}

// NewMirror creates a mirror of src.
func NewMirror(src Source) *Mirror {
	return &Mirror{
		src:     src,
		viewers: make(map[*viewer]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the request and keeps the viewer until it leaves.
func (m *Mirror) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[MIRROR] Upgrade failed for %s: %v", r.RemoteAddr, err)
		return
	}
	v := &viewer{conn: conn, send: make(chan []byte, sendBuffer)}

	data, err := m.frame()
	if err != nil {
		log.Printf("[MIRROR] Encoding frame: %v", err)
		conn.Close()
		return
	}
	v.send <- data
	m.add(v)

	go m.write(v)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	m.remove(v)
}

// Publish sends the current drawing to every viewer. A viewer that cannot
// keep up is dropped.
func (m *Mirror) Publish() {
	data, err := m.frame()
	if err != nil {
		log.Printf("[MIRROR] Encoding frame: %v", err)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for v := range m.viewers {
		select {
		case v.send <- data:
		default:
			log.Printf("[MIRROR] Dropping slow viewer %s", v.conn.RemoteAddr())
			delete(m.viewers, v)
			close(v.send)
		}
	}
}

// Viewers is the number of connected viewers.
func (m *Mirror) Viewers() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.viewers)
}

// ListenAndServe serves the mirror at /ws on addr until Close.
func (m *Mirror) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", m)

	m.mu.Lock()
	m.server = &http.Server{Addr: addr, Handler: mux}
	srv := m.server
	m.mu.Unlock()

	log.Printf("[MIRROR] Listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close stops the server and disconnects every viewer.
func (m *Mirror) Close() error {
	m.mu.Lock()
	srv := m.server
	for v := range m.viewers {
		delete(m.viewers, v)
		close(v.send)
	}
	m.mu.Unlock()

	if srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func (m *Mirror) frame() ([]byte, error) {
	w, h := m.src.Size()
	return json.Marshal(Frame{
		Document: m.src.ID(),
		Width:    w,
		Height:   h,
		Traces:   m.src.Traces(),
		Sent:     time.Now(),
	})
}

func (m *Mirror) add(v *viewer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.viewers[v] = true
	log.Printf("[MIRROR] Viewer connected from %s", v.conn.RemoteAddr())
}

func (m *Mirror) remove(v *viewer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.viewers[v] {
		delete(m.viewers, v)
		close(v.send)
	}
	log.Printf("[MIRROR] Viewer %s left", v.conn.RemoteAddr())
}

func (m *Mirror) write(v *viewer) {
	defer v.conn.Close()
	for data := range v.send {
		if err := v.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("[MIRROR] Write to %s: %v", v.conn.RemoteAddr(), err)
			return
		}
	}
	v.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
