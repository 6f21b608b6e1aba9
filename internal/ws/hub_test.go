package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThePyromage/dungeonGenerator/internal/models"
)

// dialHub connects one client to a hub served over httptest
func dialHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		hub.Add(conn)
		defer hub.Remove(conn)
		<-conn.CloseRead(context.Background()).Done()
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })

	require.Eventually(t, func() bool { return hub.Len() == 1 }, 5*time.Second, 10*time.Millisecond)
	return conn
}

func TestHub_PublishInSequence(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub)

	const publishers, each = 8, 25
	var wg sync.WaitGroup
	for i := 0; i < publishers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < each; j++ {
				assert.NoError(t, hub.Publish("Generated", j))
			}
		}()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for want := uint64(1); want <= publishers*each; want++ {
		_, data, err := conn.Read(ctx)
		require.NoError(t, err)

		var env models.PatchEnvelope
		require.NoError(t, json.Unmarshal(data, &env))
		require.Equal(t, want, env.Sequence)
		assert.Equal(t, "Generated", env.Type)
	}
	wg.Wait()
}

func TestHub_PublishUnencodable(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub)

	require.Error(t, hub.Publish("Generated", make(chan int)))
	require.NoError(t, hub.Publish("Generated", "ok"))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var env models.PatchEnvelope
	require.NoError(t, json.Unmarshal(data, &env))
	assert.Equal(t, uint64(1), env.Sequence, "a failed publish uses no sequence number")
}
