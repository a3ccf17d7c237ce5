package httpadapter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/stillpage/stillpage/internal/adapters/http"
	"github.com/stillpage/stillpage/internal/adapters/storage/memory"
	"github.com/stillpage/stillpage/internal/app/journal"
	"github.com/stillpage/stillpage/internal/domain"
)

func newTestServer(t *testing.T, store domain.EntryStore) http.Handler {
	t.Helper()
	if store == nil {
		store = memory.NewEntryStore()
	}
	svc, err := journal.NewService(store, journal.Config{})
	require.NoError(t, err)
	return httpadapter.NewServer(svc)
}

func postEntry(t *testing.T, srv http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/entries", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateEntry(t *testing.T) {
	srv := newTestServer(t, nil)

	w := postEntry(t, srv, `{"session_id":"s1","text":"Today was a wonderful day and I felt really happy."}`)
	require.Equal(t, http.StatusCreated, w.Code, "body=%s", w.Body.String())

	var resp struct {
		EntryID        int64  `json:"entry_id"`
		SessionID      string `json:"session_id"`
		Reflection     string `json:"reflection"`
		EngagementNote string `json:"engagement_note"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, int64(1), resp.EntryID)
	assert.Equal(t, "s1", resp.SessionID)
	assert.NotEmpty(t, resp.Reflection)
	assert.Empty(t, resp.EngagementNote, "first entry never carries a note")
}

func TestCreateEntryMintsSessionID(t *testing.T) {
	srv := newTestServer(t, nil)

	w := postEntry(t, srv, `{"text":"just writing"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
}

func TestCreateEntryInvalidJSON(t *testing.T) {
	srv := newTestServer(t, nil)

	w := postEntry(t, srv, `{"text": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEmptyTextAccepted(t *testing.T) {
	srv := newTestServer(t, nil)

	w := postEntry(t, srv, `{"session_id":"s1","text":"   "}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

// The wire format must never leak an internal mode identifier, whatever
// the entry's tone.
func TestNoModeLeaksInResponse(t *testing.T) {
	srv := newTestServer(t, nil)

	texts := []string{
		"I don't feel sad or happy, just kind of blank and passing the time.",
		"My mind keeps looping on everything I should have done differently.",
		"There's so much to do, but I don't feel like doing any of it.",
		"I'm exhausted and have no motivation today.",
		"Today was a wonderful day and I felt really happy.",
	}

	for _, text := range texts {
		body, err := json.Marshal(map[string]string{"session_id": "leak-check", "text": text})
		require.NoError(t, err)

		w := postEntry(t, srv, string(body))
		require.Equal(t, http.StatusCreated, w.Code)

		lower := strings.ToLower(w.Body.String())
		for _, m := range domain.AllModes {
			assert.NotContains(t, lower, string(m))
		}
		assert.NotContains(t, lower, "polarity")
		assert.NotContains(t, lower, "anxiety")
	}
}

type downStore struct{}

func (downStore) AppendEntry(context.Context, *domain.Entry) (int64, error) {
	return 0, errors.New("connection refused")
}

func (downStore) RecentEntries(context.Context, domain.SessionID, int) ([]*domain.Entry, error) {
	return nil, errors.New("connection refused")
}

func TestStoreDownReturns503(t *testing.T) {
	srv := newTestServer(t, downStore{})

	w := postEntry(t, srv, `{"session_id":"s1","text":"hello"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
