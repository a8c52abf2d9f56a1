package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectn/internal/api/ws"
	"connectn/internal/config"
	"connectn/internal/room"
	"connectn/internal/shared"
	"connectn/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := config.Default()
	log := zaptest.NewLogger(t)
	rm := room.NewManager(store.NewMemoryStore(), cfg, log)
	hub := ws.NewHub(rm, log)
	rm.SetBroadcaster(hub)
	return NewRouter(rm, hub, cfg, log)
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type roomEnvelope struct {
	RoomCode string           `json:"roomCode"`
	Room     shared.RoomState `json:"room"`
}

func createRoom(t *testing.T, r *gin.Engine, body interface{}) shared.RoomState {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/rooms", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var env roomEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Equal(t, env.RoomCode, env.Room.Code)
	return env.Room
}

func activate(t *testing.T, r *gin.Engine, code string, cellID int) ActivateResponse {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/rooms/"+code+"/activate", gin.H{"cellId": cellID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp ActivateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestDefaults(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/api/config/defaults", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Game   config.GameDefaults `json:"game"`
		Limits config.Limits       `json:"limits"`
		Colors []string            `json:"colors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, config.Default().Game, body.Game)
	assert.Equal(t, 5, body.Limits.MaxPlayers)
	assert.Len(t, body.Colors, 5)
}

func TestCreateRoomWithoutBodyUsesDefaults(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/api/rooms", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var env roomEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, config.Default().Game.BoardSize, env.Room.Config.BoardSize)
}

func TestCreateRoomRejectsInvalidConfig(t *testing.T) {
	r := newTestRouter(t)
	for _, body := range []gin.H{
		{"boardSize": 3, "players": 2, "connect": 3},
		{"boardSize": 6, "players": 6, "connect": 4},
		{"boardSize": -1},
		{"boardSize": 6, "players": 2, "connect": 7},
	} {
		w := do(t, r, http.MethodPost, "/api/rooms", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "%v", body)
	}
}

func TestGetRoom(t *testing.T) {
	r := newTestRouter(t)
	st := createRoom(t, r, gin.H{"boardSize": 5, "players": 2, "connect": 4})

	w := do(t, r, http.MethodGet, "/api/rooms/"+st.Code, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var env roomEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, st.ID, env.Room.ID)
	assert.Len(t, env.Room.Board, 5)

	w = do(t, r, http.MethodGet, "/api/rooms/ZZZZZZ", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestActivateFlowToWin(t *testing.T) {
	r := newTestRouter(t)
	st := createRoom(t, r, gin.H{"boardSize": 4, "players": 2, "connect": 4, "playerNames": []string{"Ana", "Bo"}})

	for _, col := range []int{0, 0, 1, 1, 2, 2} {
		resp := activate(t, r, st.Code, col)
		require.True(t, resp.Accepted)
	}
	resp := activate(t, r, st.Code, 3)
	require.True(t, resp.Accepted)
	assert.Equal(t, "won", resp.Room.Status)
	assert.Equal(t, "Ana won!", resp.Room.Message)
	assert.Equal(t, []int{12, 13, 14, 15}, resp.Room.Connected)

	resp = activate(t, r, st.Code, 4)
	assert.False(t, resp.Accepted)
	assert.Equal(t, "game over", resp.Reason)
	assert.Equal(t, 7, resp.Room.Turn)
}

func TestActivateRejectedMoves(t *testing.T) {
	r := newTestRouter(t)
	st := createRoom(t, r, gin.H{"boardSize": 4, "players": 2, "connect": 4})

	require.True(t, activate(t, r, st.Code, 12).Accepted)
	resp := activate(t, r, st.Code, 12)
	assert.False(t, resp.Accepted)
	assert.Equal(t, "cell already filled", resp.Reason)
	assert.Equal(t, 1, resp.Room.Turn)

	resp = activate(t, r, st.Code, 40)
	assert.False(t, resp.Accepted)
	assert.Equal(t, "unknown cell id", resp.Reason)

	w := do(t, r, http.MethodPost, "/api/rooms/"+st.Code+"/activate", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/rooms/NOPE00/activate", gin.H{"cellId": 0})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHoverAndNewGame(t *testing.T) {
	r := newTestRouter(t)
	st := createRoom(t, r, gin.H{"boardSize": 4, "players": 2, "connect": 4})

	w := do(t, r, http.MethodPost, "/api/rooms/"+st.Code+"/hover", gin.H{"cellId": 1, "enter": true})
	require.Equal(t, http.StatusOK, w.Code)
	var env roomEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Room.Board[3][1].IsHighlighted)

	w = do(t, r, http.MethodPost, "/api/rooms/"+st.Code+"/hover", gin.H{"cellId": 99, "enter": false})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	require.True(t, activate(t, r, st.Code, 1).Accepted)
	w = do(t, r, http.MethodPost, "/api/rooms/"+st.Code+"/new-game", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, 0, env.Room.Turn)
	assert.False(t, env.Room.Board[3][1].IsFilled)
	assert.False(t, env.Room.Board[3][1].IsHighlighted)

	w = do(t, r, http.MethodPost, "/api/rooms/NOPE00/new-game", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRoom(t *testing.T) {
	r := newTestRouter(t)
	st := createRoom(t, r, nil)

	w := do(t, r, http.MethodDelete, "/api/rooms/"+st.Code, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/api/rooms/"+st.Code, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(t, r, http.MethodDelete, "/api/rooms/"+st.Code, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
