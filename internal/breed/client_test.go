package breed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := DefaultConfig()
	config.BaseURL = server.URL + "/api"

	client, err := NewClient(config)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return client
}

func TestClient_Images(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET method, got '%s'", r.Method)
		}
		if r.URL.Path != "/api/breed/bulldog/images" {
			t.Errorf("Expected path '/api/breed/bulldog/images', got '%s'", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"message":["https://images.dog.ceo/breeds/bulldog-boston/1.jpg","https://images.dog.ceo/breeds/bulldog-boston/2.jpg"],"status":"success"}`)
	})

	images, err := client.Images(context.Background(), "BullDog")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(images) != 2 {
		t.Fatalf("Expected 2 images, got %d", len(images))
	}
	if images[0] != "https://images.dog.ceo/breeds/bulldog-boston/1.jpg" {
		t.Errorf("Unexpected first image: %s", images[0])
	}
}

func TestClient_ImagesSubBreed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/breed/hound/afghan/images" {
			t.Errorf("Expected sub-breed path, got '%s'", r.URL.Path)
		}
		fmt.Fprint(w, `{"message":[],"status":"success"}`)
	})

	images, err := client.Images(context.Background(), "Hound/Afghan")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(images) != 0 {
		t.Errorf("Expected no images, got %d", len(images))
	}
}

func TestClient_ImagesErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantType    ErrorType
		wantDisplay string
	}{
		{
			name:        "unknown breed",
			status:      http.StatusNotFound,
			body:        `{"status":"error","message":"Breed not found (main breed does not exist)","code":404}`,
			wantType:    ErrTypeNotFound,
			wantDisplay: "Breed not found (main breed does not exist)",
		},
		{
			name:        "error without message",
			status:      http.StatusOK,
			body:        `{"status":"error"}`,
			wantType:    ErrTypeNotFound,
			wantDisplay: NotFoundMessage,
		},
		{
			name:     "html error page",
			status:   http.StatusBadGateway,
			body:     `<html>bad gateway</html>`,
			wantType: ErrTypeStatus,
		},
		{
			name:     "garbage body",
			status:   http.StatusOK,
			body:     `not json`,
			wantType: ErrTypeDecode,
		},
		{
			name:     "message is not a list",
			status:   http.StatusOK,
			body:     `{"status":"success","message":"https://images.dog.ceo/x.jpg"}`,
			wantType: ErrTypeDecode,
		},
		{
			name:     "unknown status",
			status:   http.StatusOK,
			body:     `{"status":"maybe","message":[]}`,
			wantType: ErrTypeDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			})

			_, err := client.Images(context.Background(), "not-a-breed")
			if err == nil {
				t.Fatal("Expected error but got none")
			}

			var le *LookupError
			if !errors.As(err, &le) {
				t.Fatalf("Expected *LookupError, got %T", err)
			}
			if le.Type != tt.wantType {
				t.Errorf("Expected type %s, got %s", tt.wantType, le.Type)
			}
			if le.Breed != "not-a-breed" {
				t.Errorf("Expected breed 'not-a-breed', got '%s'", le.Breed)
			}
			if tt.wantDisplay != "" && le.Display() != tt.wantDisplay {
				t.Errorf("Expected display '%s', got '%s'", tt.wantDisplay, le.Display())
			}
			if le.Display() == "" {
				t.Error("Expected non-empty display message")
			}
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	config := DefaultConfig()
	config.BaseURL = baseURL
	client, err := NewClient(config)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	_, err = client.Images(context.Background(), "pug")
	if !IsNetworkError(err) {
		t.Fatalf("Expected network error, got %v", err)
	}
	if errors.Is(err, &LookupError{Type: ErrTypeNotFound}) {
		t.Error("Transport failure must not be reported as not found")
	}
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	config := DefaultConfig()
	config.BaseURL = server.URL
	client, err := NewClient(config)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = client.Images(ctx, "akita")
	var le *LookupError
	if !errors.As(err, &le) || le.Type != ErrTypeTimeout {
		t.Fatalf("Expected timeout error, got %v", err)
	}
}

func TestClient_Breeds(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/breeds/list/all" {
			t.Errorf("Expected path '/api/breeds/list/all', got '%s'", r.URL.Path)
		}
		fmt.Fprint(w, `{"message":{"pug":[],"hound":["afghan","basset"],"akita":[]},"status":"success"}`)
	})

	breeds, err := client.Breeds(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := []string{"akita", "hound", "hound/afghan", "hound/basset", "pug"}
	if strings.Join(breeds, ",") != strings.Join(want, ",") {
		t.Errorf("Expected %v, got %v", want, breeds)
	}
	if !sort.StringsAreSorted(breeds) {
		t.Error("Expected sorted breeds")
	}
}

func TestNewClient_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		field  string
	}{
		{name: "empty base url", config: &Config{Timeout: time.Second}, field: "base_url"},
		{name: "bad scheme", config: &Config{BaseURL: "ftp://dog.ceo", Timeout: time.Second}, field: "base_url"},
		{name: "zero timeout", config: &Config{BaseURL: DefaultBaseURL}, field: "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.config)
			if !IsConfigurationError(err) {
				t.Fatalf("Expected configuration error, got %v", err)
			}
			var ce *ConfigurationError
			if errors.As(err, &ce) && ce.Field != tt.field {
				t.Errorf("Expected field '%s', got '%s'", tt.field, ce.Field)
			}
		})
	}
}

func TestLookupError_Is(t *testing.T) {
	err := NewLookupErrorWithCause(ErrTypeNetwork, "request failed", "pug", errors.New("connection refused"))

	if !errors.Is(err, &LookupError{Type: ErrTypeNetwork}) {
		t.Error("Expected errors.Is to match by type")
	}
	if errors.Is(err, &LookupError{Type: ErrTypeNotFound}) {
		t.Error("Expected errors.Is not to match a different type")
	}
	if err.Display() != "connection refused" {
		t.Errorf("Expected display to be the cause, got '%s'", err.Display())
	}
	if !strings.Contains(err.Error(), "breed=pug") {
		t.Errorf("Expected breed in error string, got '%s'", err.Error())
	}
}
