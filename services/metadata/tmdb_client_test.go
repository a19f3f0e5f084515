package metadata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTMDBClientBearerAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer token123" {
			t.Errorf("Authorization = %q", got)
		}
		if r.URL.Query().Get("api_key") != "" {
			t.Error("api_key must not be sent in bearer mode")
		}
		if got := r.URL.Query().Get("language"); got != "en-US" {
			t.Errorf("language = %q", got)
		}
		w.Write([]byte(`{"results":[{"id":1,"title":"Dune"}]}`))
	}))
	defer srv.Close()

	c := newTMDBClient("token123", "", srv.Client())
	c.baseURL = srv.URL
	items, err := c.trending(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].Title != "Dune" {
		t.Fatalf("items = %+v", items)
	}
}

func TestTMDBClientAPIKeyAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("api_key"); got != "key123" {
			t.Errorf("api_key = %q", got)
		}
		if r.Header.Get("Authorization") != "" {
			t.Error("Authorization must not be sent in api-key mode")
		}
		if got := r.URL.Query().Get("region"); got != "IN" {
			t.Errorf("region = %q", got)
		}
		w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	c := newTMDBClient("", "key123", srv.Client())
	c.baseURL = srv.URL
	if _, err := c.upcoming(context.Background(), "IN"); err != nil {
		t.Fatal(err)
	}
}

func TestTMDBClientMissingCredentials(t *testing.T) {
	// No server: the error must surface before any network call.
	c := newTMDBClient("", "", &http.Client{})
	_, err := c.trending(context.Background())
	if !errors.Is(err, errCredentialsMissing) {
		t.Fatalf("err = %v, want errCredentialsMissing", err)
	}
}

func TestTMDBClientUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status_message":"Invalid API key"}`))
	}))
	defer srv.Close()

	c := newTMDBClient("bad", "", srv.Client())
	c.baseURL = srv.URL
	if _, err := c.trending(context.Background()); err == nil {
		t.Fatal("expected error on 401")
	}
}

func TestTMDBClientMovieVideos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/603/videos" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"results":[{"key":"abc","name":"Trailer","site":"YouTube","size":1080}]}`))
	}))
	defer srv.Close()

	c := newTMDBClient("token", "", srv.Client())
	c.baseURL = srv.URL
	videos, err := c.movieVideos(context.Background(), 603)
	if err != nil {
		t.Fatal(err)
	}
	if len(videos) != 1 || videos[0].movieID != 603 || videos[0].Key != "abc" {
		t.Fatalf("videos = %+v", videos)
	}
}
