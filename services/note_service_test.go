package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/augie-sif/sif-backend/dto"
	"github.com/augie-sif/sif-backend/models"
)

func TestNoteMutationsRevalidate(t *testing.T) {
	var payloads []map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "s3cret", r.Header.Get("X-Revalidate-Secret"))
		var p map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		payloads = append(payloads, p)
	}))
	defer server.Close()
	t.Setenv("REVALIDATE_URL", server.URL)
	t.Setenv("REVALIDATE_SECRET", "s3cret")

	store := newFakeNoteStore(models.Note{ID: "n1", Title: "April minutes", Content: "..."})
	svc := &NoteService{notes: store}

	created, err := svc.Create(dto.NoteRequest{Title: "May minutes", Content: "...", MeetingDate: time.Now()})
	require.NoError(t, err)

	require.NoError(t, svc.Update("n1", dto.NoteRequest{Title: "April minutes (rev)", Content: "...", MeetingDate: time.Now()}))
	require.NoError(t, svc.Delete("n1"))

	// Every mutation signals the rendered notes page
	require.Len(t, payloads, 3)
	assert.Equal(t, map[string]string{"page": "notes", "id": created.ID}, payloads[0])
	assert.Equal(t, map[string]string{"page": "notes", "id": "n1"}, payloads[1])
	assert.Equal(t, map[string]string{"page": "notes", "id": "n1"}, payloads[2])
}

func TestNoteUpdateNotFound(t *testing.T) {
	svc := &NoteService{notes: newFakeNoteStore()}

	err := svc.Update("missing", dto.NoteRequest{Title: "a", Content: "b"})
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, svc.Delete("missing"), ErrNotFound)
}
