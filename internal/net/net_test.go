package net

import (
	"encoding/json"
	"net"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalSketch/internal/geom"
	"LocalSketch/internal/state"
)

type fakeSource struct {
	mu     sync.Mutex
	traces []state.Trace
}

func (f *fakeSource) ID() string                { return "doc-1" }
func (f *fakeSource) Size() (float64, float64) { return 640, 480 }

func (f *fakeSource) Traces() []state.Trace {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]state.Trace(nil), f.traces...)
}

func (f *fakeSource) add(t state.Trace) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.traces = append(f.traces, t)
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var f Frame
	require.NoError(t, json.Unmarshal(data, &f))
	return f
}

func TestMirrorStreamsFrames(t *testing.T) {
	src := &fakeSource{}
	m := NewMirror(src)
	srv := httptest.NewServer(m)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	first := readFrame(t, conn)
	assert.Equal(t, "doc-1", first.Document)
	assert.Equal(t, 640.0, first.Width)
	assert.Empty(t, first.Traces)

	require.Eventually(t, func() bool { return m.Viewers() == 1 }, 2*time.Second, 10*time.Millisecond)

	src.add(state.Trace{ID: 9, Points: []geom.Point{geom.Pt(1, 2), geom.Pt(3, 4)}})
	m.Publish()

	next := readFrame(t, conn)
	require.Len(t, next.Traces, 1)
	assert.Equal(t, uint64(9), next.Traces[0].ID)
	assert.Equal(t, 3.0, next.Traces[0].Points[1].X)

	require.NoError(t, m.Close())
	require.Eventually(t, func() bool { return m.Viewers() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestMirrorForgetsClosedViewer(t *testing.T) {
	m := NewMirror(&fakeSource{})
	srv := httptest.NewServer(m)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	readFrame(t, conn)
	require.Eventually(t, func() bool { return m.Viewers() == 1 }, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return m.Viewers() == 0 }, 2*time.Second, 10*time.Millisecond)
	m.Publish()
}

func TestMirrorURL(t *testing.T) {
	assert.Equal(t, "ws://192.168.1.5:8888/ws", MirrorURL(net.IPv4(192, 168, 1, 5), 8888))
}

func TestGetOutgoingIP(t *testing.T) {
	ip := net.ParseIP(GetOutgoingIP())
	assert.NotNil(t, ip)
}
