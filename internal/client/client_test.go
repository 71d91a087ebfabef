package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mrdomrivera-isd/ISDJOBS/internal/dtos"
	"github.com/mrdomrivera-isd/ISDJOBS/internal/models"
)

func TestSearchRequiresAPIBase(t *testing.T) {
	c := New("   ")
	_, err := c.Search(context.Background(), models.DefaultCriteria())
	if !errors.Is(err, ErrNoAPIBase) {
		t.Fatalf("expected ErrNoAPIBase, got %v", err)
	}
}

func TestSearchDecodesResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/search" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var criteria models.SearchCriteria
		if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if len(criteria.Keywords) == 0 {
			t.Error("criteria keywords missing from request body")
		}
		json.NewEncoder(w).Encode(dtos.SearchResponse{
			Results: []models.JobListing{{Title: "Instructional Designer", URL: "https://jobs/1"}},
			Meta:    dtos.SearchMeta{Count: 1},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Search(context.Background(), models.DefaultCriteria())
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].URL != "https://jobs/1" {
		t.Fatalf("unexpected results: %+v", resp.Results)
	}
}

func TestSearchNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Search(context.Background(), models.DefaultCriteria()); err == nil {
		t.Fatal("expected an error on 502")
	}
}

func TestSaveBookmarkPatchSucceeds(t *testing.T) {
	var posts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			posts++
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.SaveBookmark(context.Background(), dtos.BookmarkRequest{URL: "https://jobs/1", Status: "applied"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if posts != 0 {
		t.Fatalf("PATCH succeeded but %d POSTs were sent", posts)
	}
}

func TestSaveBookmarkFallsBackToCreateOn404(t *testing.T) {
	var patchBody, postBody []byte
	var posts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		switch r.Method {
		case http.MethodPatch:
			patchBody = body
			w.WriteHeader(http.StatusNotFound)
		case http.MethodPost:
			posts++
			postBody = body
			w.WriteHeader(http.StatusCreated)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.SaveBookmark(context.Background(), dtos.BookmarkRequest{URL: "https://jobs/1", Status: "interested", Notes: "follow up"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if posts != 1 {
		t.Fatalf("expected exactly one POST after 404, got %d", posts)
	}
	if string(patchBody) != string(postBody) {
		t.Fatalf("fallback POST body differs from PATCH body:\n%s\n%s", patchBody, postBody)
	}
}

func TestSaveBookmarkOtherErrorDoesNotFallBack(t *testing.T) {
	var posts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			posts++
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.SaveBookmark(context.Background(), dtos.BookmarkRequest{URL: "https://jobs/1"})
	if err == nil {
		t.Fatal("expected an error on 500")
	}
	if posts != 0 {
		t.Fatalf("500 must not trigger the create fallback, got %d POSTs", posts)
	}
}
