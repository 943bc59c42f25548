package server_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlviz/core"
	"github.com/katalvlaran/lvlviz/internal/logging"
	"github.com/katalvlaran/lvlviz/internal/server"
)

const wsReadTimeout = 2 * time.Second

// dialHub serves the hub over httptest and connects one client. The
// caller should have published at least one frame first: reading the
// late-join replay is what proves the registration went through.
func dialHub(t *testing.T, hub *server.Hub) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/ws", hub.Handle)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) server.Frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(wsReadTimeout)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var f server.Frame
	require.NoError(t, json.Unmarshal(data, &f))
	return f
}

func arrayFrame(values ...int) core.ArraySnapshot {
	return core.CopyElements(core.NewElements(values))
}

func TestHubLateJoinerReceivesLatestFrame(t *testing.T) {
	hub := server.NewHub(logging.NewNop())
	t.Cleanup(hub.Close)

	hub.PublishArray(arrayFrame(3, 1, 2))

	conn := dialHub(t, hub)
	f := readFrame(t, conn)

	assert.Equal(t, server.FrameArray, f.Type)
	assert.Equal(t, int64(1), f.Seq)
	require.Len(t, f.Array, 3)
	assert.Equal(t, 3, f.Array[0].Value)
}

func TestHubBroadcastsInOrder(t *testing.T) {
	hub := server.NewHub(logging.NewNop())
	t.Cleanup(hub.Close)

	hub.PublishArray(arrayFrame(1))
	conn := dialHub(t, hub)
	require.Equal(t, int64(1), readFrame(t, conn).Seq)

	hub.PublishArray(arrayFrame(2, 1))
	hub.PublishStatus(server.Status{RunID: "r1", Algorithm: "bubble", State: "running"})

	f2 := readFrame(t, conn)
	assert.Equal(t, server.FrameArray, f2.Type)
	assert.Equal(t, int64(2), f2.Seq)

	f3 := readFrame(t, conn)
	assert.Equal(t, server.FrameStatus, f3.Type)
	assert.Equal(t, int64(3), f3.Seq)
	require.NotNil(t, f3.Status)
	assert.Equal(t, "bubble", f3.Status.Algorithm)
	assert.Equal(t, "running", f3.Status.State)
}

func TestHubGraphFrameWire(t *testing.T) {
	hub := server.NewHub(logging.NewNop())
	t.Cleanup(hub.Close)

	hub.PublishGraph(core.GraphSnapshot{
		Nodes: []core.Node{
			{ID: "A", X: 10, Y: 20, Visited: true, Dist: 0},
			{ID: "B", InQueue: true, Dist: core.Unreached},
		},
		Edges: []core.Edge{{From: "A", To: "B", Weight: 4, Highlighted: true}},
		Order: []string{"A"},
	})

	conn := dialHub(t, hub)
	f := readFrame(t, conn)

	require.Equal(t, server.FrameGraph, f.Type)
	require.NotNil(t, f.Graph)
	require.Len(t, f.Graph.Nodes, 2)

	a, b := f.Graph.Nodes[0], f.Graph.Nodes[1]
	require.NotNil(t, a.Dist)
	assert.Equal(t, int64(0), *a.Dist)
	assert.True(t, a.Visited)
	assert.Equal(t, 10.0, a.X)
	assert.Nil(t, b.Dist, "an unreached distance travels as null")
	assert.True(t, b.InQueue)

	require.Len(t, f.Graph.Edges, 1)
	assert.Equal(t, int64(4), f.Graph.Edges[0].Weight)
	assert.True(t, f.Graph.Edges[0].Highlighted)
	assert.Equal(t, []string{"A"}, f.Graph.Order)
}

func TestHubLatest(t *testing.T) {
	hub := server.NewHub(logging.NewNop())
	t.Cleanup(hub.Close)

	assert.Nil(t, hub.Latest(), "no frame before the first publish")

	hub.PublishStatus(server.Status{RunID: "r", Algorithm: "bfs", State: "running"})

	first := hub.Latest()
	require.NotNil(t, first)
	assert.Contains(t, string(first), `"seq":1`)

	// Latest hands out copies; a caller cannot corrupt the stored frame.
	first[0] = 'X'
	assert.NotEqual(t, first[0], hub.Latest()[0])
}

func TestHubCloseDisconnectsClients(t *testing.T) {
	hub := server.NewHub(logging.NewNop())

	hub.PublishArray(arrayFrame(1))
	conn := dialHub(t, hub)
	_ = readFrame(t, conn)

	hub.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(wsReadTimeout)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err, "the hub closed the connection")

	// Publishing into a closed hub neither blocks nor panics.
	hub.PublishArray(arrayFrame(2))
	hub.Close()
}
