package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleRenderWebSocket(t *testing.T) {
	ts := httptest.NewServer(newTestServer().Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/render/ws?scene=default&width=32&height=32&tileSize=16"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	var events []StreamEvent
	conn.SetReadDeadline(time.Now().Add(30 * time.Second))
	for {
		var event StreamEvent
		if err := conn.ReadJSON(&event); err != nil {
			assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "unexpected error: %v", err)
			break
		}
		events = append(events, event)
	}

	assert.Len(t, eventsOfType(events, "tile"), 4)
	require.NotEmpty(t, events)
	last := events[len(events)-1]
	require.Equal(t, "complete", last.Type)

	var complete CompleteUpdate
	require.NoError(t, json.Unmarshal(last.Data, &complete))
	assert.Equal(t, 32, complete.Width)
	assert.Equal(t, complete.Stats.TotalTiles, complete.Stats.CompletedTiles)
}

func TestHandleRenderWebSocket_InvalidRequest(t *testing.T) {
	ts := httptest.NewServer(newTestServer().Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/render/ws?tileSize=1"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(10 * time.Second))
	var event StreamEvent
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, "error", event.Type)
}
