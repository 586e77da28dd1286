package mockapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/haierkeys/notes-app-service/internal/dao"
	"github.com/haierkeys/notes-app-service/internal/domain"
	"github.com/haierkeys/notes-app-service/pkg/graphql"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, apiKey string) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := NewDBEngine(DatabaseConfig{
		Type:         "sqlite",
		Path:         filepath.Join(t.TempDir(), "db", "mock.sqlite3"),
		MaxIdleConns: 1,
		MaxOpenConns: 1,
	}, false)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	store, err := NewStore(db)
	require.NoError(t, err)

	srv := httptest.NewServer(NewServer(Config{APIKey: apiKey}, store, nil).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func newRepo(srv *httptest.Server, apiKey string) domain.NoteRepository {
	client := graphql.NewClient(graphql.Config{Endpoint: srv.URL + "/graphql", APIKey: apiKey})
	return dao.NewNoteRepository(dao.New(client, nil))
}

func TestServer_NoteLifecycle(t *testing.T) {
	srv := newTestServer(t, "k1")
	repo := newRepo(srv, "k1")
	ctx := context.Background()

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)

	n1, err := repo.Create(ctx, &domain.NoteInput{Name: "N1", Description: "D1", Image: "pic.png"})
	require.NoError(t, err)
	assert.NotEmpty(t, n1.ID)
	assert.Equal(t, "pic.png", n1.Image)
	assert.True(t, strings.HasSuffix(n1.CreatedAt, "Z"))

	_, err = repo.Create(ctx, &domain.NoteInput{Name: "N2", Description: "D2"})
	require.NoError(t, err)

	notes, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	byName := map[string]*domain.Note{}
	for _, n := range notes {
		byName[n.Name] = n
	}
	assert.Equal(t, "pic.png", byName["N1"].Image)
	assert.Equal(t, "", byName["N2"].Image)
	// 时间经数据库读回后保持不变
	assert.Equal(t, n1.CreatedAt, byName["N1"].CreatedAt)
	assert.False(t, strings.HasPrefix(byName["N1"].UpdatedAt, "0001-"))
	assert.Equal(t, "D2", byName["N2"].Description)

	require.NoError(t, repo.Delete(ctx, n1.ID))

	notes, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "N2", notes[0].Name)

	err = repo.Delete(ctx, n1.ID)
	var gqlErrs graphql.Errors
	require.True(t, errors.As(err, &gqlErrs))
	assert.Equal(t, "ConditionalCheckFailedException", gqlErrs[0].ErrorType)
}

func TestServer_RejectsWrongAPIKey(t *testing.T) {
	srv := newTestServer(t, "k1")

	_, err := newRepo(srv, "wrong").List(context.Background())
	var statusErr *graphql.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
}

func TestServer_CreateRequiresName(t *testing.T) {
	srv := newTestServer(t, "")

	_, err := newRepo(srv, "").Create(context.Background(), &domain.NoteInput{Description: "D1"})
	var gqlErrs graphql.Errors
	require.True(t, errors.As(err, &gqlErrs))
	assert.Equal(t, "ValidationError", gqlErrs[0].ErrorType)
}

func TestServer_UnknownOperation(t *testing.T) {
	srv := newTestServer(t, "")

	resp, err := http.Post(srv.URL+"/graphql", "application/json",
		strings.NewReader(`{"query":"query Other { other }","operationName":"Other"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out struct {
		Errors graphql.Errors `json:"errors"`
	}
	require.NoError(t, decodeJSON(resp, &out))
	require.Len(t, out.Errors, 1)
	assert.Equal(t, "UnknownOperation", out.Errors[0].ErrorType)
}

func TestResolveOperation(t *testing.T) {
	assert.Equal(t, OpListNotes, resolveOperation(&graphql.Request{Query: "query { listNotes { items { id } } }"}))
	assert.Equal(t, OpDeleteNote, resolveOperation(&graphql.Request{OperationName: OpDeleteNote}))
	assert.Equal(t, "X", resolveOperation(&graphql.Request{OperationName: "X", Query: "query X { x }"}))
}

func TestUserDialector_Unsupported(t *testing.T) {
	_, err := userDialector(DatabaseConfig{Type: "oracle"})
	assert.Error(t, err)
}
