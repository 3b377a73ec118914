package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"genie-scoreboard-service/internal/domain"
)

func TestClientFetchRubrics(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[
			{"id":"r2","title":"Drapeaux","order":2,"questions":[
				{"id":"q1","type":"flag","image":"/flags/sn.png","solution":"Sénégal"}
			]},
			{"id":"r1","title":"Questions éclair","order":1,"questions":[]}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL + "/", APIKey: "secret"})
	rubrics, err := client.FetchRubrics(context.Background())
	if err != nil {
		t.Fatalf("FetchRubrics returned error: %v", err)
	}

	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization header = %q, want %q", gotAuth, "Bearer secret")
	}
	if gotPath != "/rubrics" {
		t.Errorf("request path = %q, want /rubrics", gotPath)
	}
	if len(rubrics) != 2 {
		t.Fatalf("expected 2 rubrics, got %d", len(rubrics))
	}
	if rubrics[0].ID != "r1" || rubrics[1].ID != "r2" {
		t.Errorf("rubrics not sorted by order: %q, %q", rubrics[0].ID, rubrics[1].ID)
	}
	if rubrics[1].Questions[0].Type != domain.QuestionFlagImage {
		t.Errorf("question type = %q, want %q", rubrics[1].Questions[0].Type, domain.QuestionFlagImage)
	}
}

func TestClientFetchRubricsNoAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Errorf("unexpected Authorization header %q", auth)
		}
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	if _, err := client.FetchRubrics(context.Background()); err != nil {
		t.Fatalf("FetchRubrics returned error: %v", err)
	}
}

func TestClientFetchRubricsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("store offline"))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.FetchRubrics(context.Background())
	if err == nil {
		t.Fatal("expected error for 503 response")
	}
	if !strings.Contains(err.Error(), "503") || !strings.Contains(err.Error(), "store offline") {
		t.Errorf("error missing status/body: %v", err)
	}
}

func TestClientFetchRubricsContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	client := NewClient(Config{BaseURL: srv.URL})
	if _, err := client.FetchRubrics(ctx); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	if got := normalizeBaseURL("http://example.com///"); got != "http://example.com" {
		t.Errorf("normalizeBaseURL = %q", got)
	}
}
