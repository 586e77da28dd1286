package graphql

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listResult struct {
	ListNotes struct {
		Items []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"items"`
	} `json:"listNotes"`
}

func TestClient_Do(t *testing.T) {
	var got Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "k-123", r.Header.Get("x-api-key"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"data":{"listNotes":{"items":[{"id":"a","name":"N1"}]}}}`)
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL, APIKey: "k-123", AuthToken: "tok"})

	var out listResult
	err := c.Do(context.Background(), &Request{
		Query:         "query ListNotes { listNotes { items { id name } } }",
		OperationName: "ListNotes",
		Variables:     map[string]interface{}{"limit": 10},
	}, &out)
	require.NoError(t, err)

	assert.Equal(t, "ListNotes", got.OperationName)
	assert.Equal(t, float64(10), got.Variables["limit"])
	require.Len(t, out.ListNotes.Items, 1)
	assert.Equal(t, "N1", out.ListNotes.Items[0].Name)
}

func TestClient_DoFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		checkFn func(t *testing.T, err error)
	}{
		{
			name:   "graphql errors",
			status: http.StatusOK,
			body:   `{"data":null,"errors":[{"message":"Not Authorized to access listNotes"}]}`,
			checkFn: func(t *testing.T, err error) {
				var gqlErrs Errors
				require.ErrorAs(t, err, &gqlErrs)
				assert.Contains(t, err.Error(), "Not Authorized")
			},
		},
		{
			name:   "non 2xx",
			status: http.StatusUnauthorized,
			body:   `{"message":"denied"}`,
			checkFn: func(t *testing.T, err error) {
				var statusErr *StatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
			},
		},
		{
			name:   "malformed body",
			status: http.StatusOK,
			body:   `not json`,
			checkFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			err := NewClient(Config{Endpoint: srv.URL}).Do(context.Background(), &Request{Query: "{}"}, nil)
			tt.checkFn(t, err)
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	err := NewClient(Config{Endpoint: srv.URL}).Do(context.Background(), &Request{Query: "{}", OperationName: "ListNotes"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ListNotes")
}
