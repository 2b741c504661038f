package scripture_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/graceware/prayerdeck/internal/scripture"
)

func TestSearch(t *testing.T) {
	var gotPath string
	var gotAuth string
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "peace of God", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"reference":"Philippians 4:7"}]}`))
	}))
	defer stub.Close()

	client := scripture.NewWithBaseURL("test_key", stub.URL)
	body, err := client.Search(context.Background(), "peace of God")
	assert.NoError(t, err)
	assert.Equal(t, "/passage/search/", gotPath)
	assert.Equal(t, "Token test_key", gotAuth)
	assert.JSONEq(t, `{"results":[{"reference":"Philippians 4:7"}]}`, string(body))
}

func TestPassageText(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/passage/text/", r.URL.Path)
		assert.Equal(t, "John 3:16", r.URL.Query().Get("q"))
		assert.Equal(t, "false", r.URL.Query().Get("include-headings"))
		assert.Equal(t, "false", r.URL.Query().Get("include-verse-numbers"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"passages":["For God so loved the world"]}`))
	}))
	defer stub.Close()

	client := scripture.NewWithBaseURL("test_key", stub.URL)
	body, err := client.PassageText(context.Background(), "John 3:16")
	assert.NoError(t, err)
	assert.JSONEq(t, `{"passages":["For God so loved the world"]}`, string(body))
}

func TestUpstreamFailures(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer stub.Close()
		client := scripture.NewWithBaseURL("bad_key", stub.URL)
		_, err := client.Search(context.Background(), "peace")
		assert.ErrorContains(t, err, "status 403")
	})
	t.Run("non-JSON body", func(t *testing.T) {
		stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>not json</html>"))
		}))
		defer stub.Close()
		client := scripture.NewWithBaseURL("test_key", stub.URL)
		_, err := client.Search(context.Background(), "peace")
		assert.ErrorContains(t, err, "non-JSON")
	})
	t.Run("unreachable server", func(t *testing.T) {
		client := scripture.NewWithBaseURL("test_key", "http://127.0.0.1:1")
		_, err := client.Search(context.Background(), "peace")
		assert.Error(t, err)
	})
}
