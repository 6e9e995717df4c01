package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/Quarmire/chord/chord"
	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, maxID uint64) (*Router, *chord.Chord) {
	t.Helper()
	ch := chord.NewChord(maxID, chord.NewRand(11), logr.Discard())
	return New(nil, ch, logr.Discard()), ch
}

func do(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func Test_Router_AddSearchDelete(t *testing.T) {
	r, ch := newTestRouter(t, 64)

	rec := do(t, r, http.MethodPost, "/api/nodes")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	added := decode[AddReply](t, rec)
	assert.Equal(t, 1, ch.Len())

	rec = do(t, r, http.MethodGet, "/api/search/"+itoa(added.ID))
	require.Equal(t, http.StatusOK, rec.Code)
	found := decode[SearchReply](t, rec)
	assert.Equal(t, added.ID, found.Node)
	assert.Equal(t, added.ID, found.Key)

	rec = do(t, r, http.MethodGet, "/api/nodes/"+itoa(added.ID)+"/predecessor")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, added.ID, decode[NodeReply](t, rec).ID)

	rec = do(t, r, http.MethodGet, "/api/ring")
	require.Equal(t, http.StatusOK, rec.Code)
	ring := decode[RingReply](t, rec)
	assert.Equal(t, uint64(64), ring.MaxID)
	assert.Equal(t, []uint64{added.ID}, ring.Nodes)

	rec = do(t, r, http.MethodDelete, "/api/nodes/"+itoa(added.ID))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, r, http.MethodDelete, "/api/nodes/"+itoa(added.ID))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decode[ErrorBody](t, rec).Error, "node does not exist")
}

func Test_Router_ErrorStatuses(t *testing.T) {
	r, ch := newTestRouter(t, 2)

	rec := do(t, r, http.MethodGet, "/api/search/1")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, decode[ErrorBody](t, rec).Error, "no nodes exist")

	rec = do(t, r, http.MethodGet, "/api/ring")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []uint64{}, decode[RingReply](t, rec).Nodes)

	for i := 0; i < 2; i++ {
		_, err := ch.AddNode(context.Background())
		require.NoError(t, err)
	}

	tests := []struct {
		method string
		path   string
		status int
	}{
		{method: http.MethodPost, path: "/api/nodes", status: http.StatusConflict},
		{method: http.MethodGet, path: "/api/search/2", status: http.StatusBadRequest},
		{method: http.MethodGet, path: "/api/search/abc", status: http.StatusBadRequest},
		{method: http.MethodGet, path: "/api/search/-1", status: http.StatusBadRequest},
		{method: http.MethodDelete, path: "/api/nodes/x1", status: http.StatusBadRequest},
		{method: http.MethodGet, path: "/api/nodes/7/predecessor", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		rec := do(t, r, tt.method, tt.path)
		assert.Equalf(t, tt.status, rec.Code, "%s %s", tt.method, tt.path)
	}
	assert.Equal(t, 2, ch.Len())
}

func Test_Router_Dump(t *testing.T) {
	r, ch := newTestRouter(t, 64)
	_, err := ch.AddNode(context.Background())
	require.NoError(t, err)

	rec := do(t, r, http.MethodGet, "/api/dump")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rec.Body.String(), "ring size=64 members=1")
}

func itoa(v uint64) string {
	return strconv.FormatUint(v, 10)
}
