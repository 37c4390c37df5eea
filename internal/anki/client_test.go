package anki

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ankiStub answers AnkiConnect RPC calls from a canned action table.
func ankiStub(t *testing.T, results map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Action  string          `json:"action"`
			Version int             `json:"version"`
			Params  json.RawMessage `json:"params"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Version != protocolVersion {
			t.Errorf("version = %d, want %d", req.Version, protocolVersion)
		}
		result, ok := results[req.Action]
		if !ok {
			msg := "unsupported action"
			json.NewEncoder(w).Encode(map[string]any{"result": nil, "error": msg})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"result": result, "error": nil})
	}))
}

func TestClientVersion(t *testing.T) {
	t.Parallel()

	srv := ankiStub(t, map[string]any{"version": 6})
	defer srv.Close()

	c := NewClientWithURL(srv.URL, newTestLogger())
	v, err := c.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, v)
}

func TestClientErrorEnvelope(t *testing.T) {
	t.Parallel()

	srv := ankiStub(t, map[string]any{})
	defer srv.Close()

	c := NewClientWithURL(srv.URL, newTestLogger())
	_, err := c.FindNotes(context.Background(), "deck:current")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported action")
}

func TestClientIntervalsConvertsSeconds(t *testing.T) {
	t.Parallel()

	// Learning-phase cards report negative seconds.
	srv := ankiStub(t, map[string]any{"getIntervals": []float64{30, -86400, -43200}})
	defer srv.Close()

	c := NewClientWithURL(srv.URL, newTestLogger())
	got, err := c.Intervals(context.Background(), []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{30, 1, 0.5}, got)
}

func TestSourceFetch(t *testing.T) {
	t.Parallel()

	notes := []map[string]any{
		{
			"noteId":    int64(1),
			"modelName": "Mining",
			"fields": map[string]any{
				"Word":    map[string]any{"value": "食べる", "order": 0},
				"Reading": map[string]any{"value": "たべる", "order": 1},
			},
			"cards": []int64{11},
		},
		{
			"noteId":    int64(2),
			"modelName": "Mining",
			"fields": map[string]any{
				// Kana term with no reading field filled in.
				"Word":    map[string]any{"value": "いただく", "order": 0},
				"Reading": map[string]any{"value": "", "order": 1},
			},
			"cards": []int64{12},
		},
		{
			"noteId":    int64(3),
			"modelName": "Mining",
			"fields": map[string]any{
				// Blank term: skipped.
				"Word":    map[string]any{"value": "  ", "order": 0},
				"Reading": map[string]any{"value": "x", "order": 1},
			},
			"cards": []int64{13},
		},
	}

	srv := ankiStub(t, map[string]any{
		"findNotes":    []int64{1, 2, 3},
		"notesInfo":    notes,
		"getIntervals": []float64{21, -86400, 5},
	})
	defer srv.Close()

	src := NewSource(
		NewClientWithURL(srv.URL, newTestLogger()),
		map[string]FieldMapping{"Mining": {TermField: "Word", ReadingField: "Reading"}},
		newTestLogger(),
	)

	entries, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "食べる", entries[0].Term)
	assert.Equal(t, "たべる", entries[0].Reading)
	require.True(t, entries[0].HasInterval)
	assert.Equal(t, 21.0, entries[0].IntervalDays)

	assert.Equal(t, "いただく", entries[1].Term)
	assert.Equal(t, "いただく", entries[1].Reading)
	assert.Equal(t, 1.0, entries[1].IntervalDays)
}

func TestSourceFetchNoNotes(t *testing.T) {
	t.Parallel()

	srv := ankiStub(t, map[string]any{"findNotes": []int64{}})
	defer srv.Close()

	src := NewSource(
		NewClientWithURL(srv.URL, newTestLogger()),
		map[string]FieldMapping{"Mining": {TermField: "Word", ReadingField: "Reading"}},
		newTestLogger(),
	)

	entries, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSourceFetchPropagatesError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	src := NewSource(
		NewClientWithURL(srv.URL, newTestLogger()),
		map[string]FieldMapping{"Mining": {TermField: "Word"}},
		newTestLogger(),
	)

	_, err := src.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `model "Mining"`)
}
