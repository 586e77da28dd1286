package dao

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/haierkeys/notes-app-service/internal/domain"
	"github.com/haierkeys/notes-app-service/pkg/code"
	"github.com/haierkeys/notes-app-service/pkg/graphql"
	"github.com/haierkeys/notes-app-service/pkg/storage/local_fs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingBackend 记录收到的 GraphQL 请求并返回预设响应
type recordingBackend struct {
	mu       sync.Mutex
	requests []graphql.Request
	reply    map[string]string
}

func (b *recordingBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req graphql.Request
	body, _ := io.ReadAll(r.Body)
	_ = json.Unmarshal(body, &req)

	b.mu.Lock()
	b.requests = append(b.requests, req)
	b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, b.reply[req.OperationName])
}

func newTestDao(t *testing.T, reply map[string]string) (*Dao, *recordingBackend) {
	t.Helper()
	backend := &recordingBackend{reply: reply}
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	store, err := local_fs.NewClient(&local_fs.Config{SavePath: t.TempDir()})
	require.NoError(t, err)

	return New(graphql.NewClient(graphql.Config{Endpoint: srv.URL}), store), backend
}

func TestNoteRepository_List(t *testing.T) {
	d, backend := newTestDao(t, map[string]string{
		opListNotes: `{"data":{"listNotes":{"items":[
			{"id":"a","name":"N1","description":"D1","image":null,"createdAt":"2024-01-05T10:00:00.000Z","updatedAt":"2024-01-05T10:00:00.000Z"},
			null,
			{"id":"b","name":"N2","description":null,"image":"pic.png","createdAt":"2024-01-06T10:00:00.000Z","updatedAt":"2024-01-06T10:00:00.000Z"}
		],"nextToken":null}}}`,
	})

	notes, err := NewNoteRepository(d).List(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 2)

	assert.Equal(t, "N1", notes[0].Name)
	assert.False(t, notes[0].HasImage())
	assert.Equal(t, "", notes[1].Description)
	assert.Equal(t, "pic.png", notes[1].Image)

	require.Len(t, backend.requests, 1)
	assert.Equal(t, opListNotes, backend.requests[0].OperationName)
	assert.Contains(t, backend.requests[0].Query, "listNotes")
}

func TestNoteRepository_CreateSendsEmptyImage(t *testing.T) {
	d, backend := newTestDao(t, map[string]string{
		opCreateNote: `{"data":{"createNote":{"id":"c","name":"N1","description":"D1","image":"","createdAt":"x","updatedAt":"x"}}}`,
	})

	note, err := NewNoteRepository(d).Create(context.Background(), &domain.NoteInput{Name: "N1", Description: "D1"})
	require.NoError(t, err)
	assert.Equal(t, "c", note.ID)

	input := backend.requests[0].Variables["input"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"name": "N1", "description": "D1", "image": ""}, input)
}

func TestNoteRepository_DeleteError(t *testing.T) {
	d, backend := newTestDao(t, map[string]string{
		opDeleteNote: `{"data":{"deleteNote":null},"errors":[{"message":"The conditional request failed"}]}`,
	})

	err := NewNoteRepository(d).Delete(context.Background(), "abc")
	require.Error(t, err)

	var gqlErrs graphql.Errors
	assert.ErrorAs(t, err, &gqlErrs)
	assert.Equal(t, map[string]interface{}{"id": "abc"}, backend.requests[0].Variables["input"])
}

func TestBlobRepository_RoundTrip(t *testing.T) {
	d, _ := newTestDao(t, nil)
	blobs := NewBlobRepository(d)
	ctx := context.Background()

	require.NoError(t, blobs.Put(ctx, "N1", strings.NewReader("img"), "image/png"))

	url, err := blobs.URL(ctx, "N1")
	require.NoError(t, err)
	assert.Equal(t, "/storage/N1", url)

	assert.NoError(t, blobs.Remove(ctx, "N1"))
}

func TestBlobRepository_NotConfigured(t *testing.T) {
	blobs := NewBlobRepository(New(graphql.NewClient(graphql.Config{}), nil))

	_, err := blobs.URL(context.Background(), "N1")
	assert.ErrorIs(t, err, code.ErrorStorageNotConfigured)
	assert.ErrorIs(t, blobs.Remove(context.Background(), "N1"), code.ErrorStorageNotConfigured)
}
