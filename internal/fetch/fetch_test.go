package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><title>Hello</title></html>"))
	}))
	defer ts.Close()

	result, err := URL(context.Background(), ts.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "<html><title>Hello</title></html>", result.HTML)
}

func TestURLNonOK(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer ts.Close()

	result, err := URL(context.Background(), ts.URL, nil)
	require.Error(t, err, "404 should fail")
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
}

func TestURLInvalid(t *testing.T) {
	for _, bad := range []string{"", "not-a-url", "://missing-scheme"} {
		_, err := URL(context.Background(), bad, nil)
		assert.Error(t, err, "url %q", bad)
	}
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			"title element",
			`<html><head><title>Learn SQL  in  10 Steps</title></head></html>`,
			"Learn SQL in 10 Steps",
		},
		{
			"og title wins",
			`<html><head><title>site.com</title><meta property="og:title" content="Guitar Basics"></head></html>`,
			"Guitar Basics",
		},
		{
			"empty og falls back",
			`<html><head><title>Fallback Title</title><meta property="og:title" content=""></head></html>`,
			"Fallback Title",
		},
		{
			"no title",
			`<html><body><p>nothing here</p></body></html>`,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractTitle(tt.html)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
