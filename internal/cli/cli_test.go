package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate keeps user config files and BREEDVIEW_* variables out of a test
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "BREEDVIEW_") {
			t.Setenv(strings.SplitN(kv, "=", 2)[0], "")
		}
	}
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand("1.2.3", "abc123", "2025-01-01")

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func dogServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/breed/pug/images":
			images := make([]string, 0, 7)
			for i := 1; i <= 7; i++ {
				images = append(images, fmt.Sprintf("https://images.dog.ceo/breeds/pug/%d.jpg", i))
			}
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"message": images, "status": "success"})
		case "/api/breeds/list/all":
			fmt.Fprint(w, `{"message":{"pug":[],"terrier":["yorkshire","boston"],"akita":[]},"status":"success"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"status":"error","message":"Breed not found (main breed does not exist)","code":404}`)
		}
	}))
	t.Cleanup(server.Close)
	t.Setenv("BREEDVIEW_LOOKUP_BASE_URL", server.URL+"/api")
	return server
}

func TestVersionCommand(t *testing.T) {
	isolate(t)

	out, err := executeCommand(t, "version")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(out, "breedview 1.2.3 (abc123) built on 2025-01-01") {
		t.Errorf("Unexpected version output: %q", out)
	}
}

func TestLookupCommand_JSON(t *testing.T) {
	isolate(t)
	dogServer(t)

	out, err := executeCommand(t, "lookup", "PUG", "-o", "json")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var result struct {
		Query  string   `json:"query"`
		Status string   `json:"status"`
		Images []string `json:"images"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("Output is not JSON: %v\n%s", err, out)
	}
	if result.Status != "results" {
		t.Errorf("Expected status 'results', got '%s'", result.Status)
	}
	if len(result.Images) != 5 {
		t.Errorf("Expected 5 images, got %d", len(result.Images))
	}
	if result.Images[0] != "https://images.dog.ceo/breeds/pug/1.jpg" {
		t.Errorf("Expected images in service order, got %s", result.Images[0])
	}
}

func TestLookupCommand_UnknownBreed(t *testing.T) {
	isolate(t)
	dogServer(t)

	out, err := executeCommand(t, "lookup", "unicorn", "--no-emoji")
	if err == nil {
		t.Fatal("Expected an error for an unknown breed")
	}
	if !errors.Is(err, errLookupFailed) {
		t.Errorf("Expected errLookupFailed, got %v", err)
	}
	if !strings.Contains(out, "Breed not found") {
		t.Errorf("Expected the not-found message in output, got %q", out)
	}
}

func TestLookupCommand_RequiresBreed(t *testing.T) {
	isolate(t)

	if _, err := executeCommand(t, "lookup"); err == nil {
		t.Error("Expected an error without a breed argument")
	}
}

func TestBreedsCommand(t *testing.T) {
	isolate(t)
	dogServer(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "all",
			args: []string{"breeds"},
			want: []string{"akita", "pug", "terrier", "terrier/boston", "terrier/yorkshire"},
		},
		{
			name: "filtered",
			args: []string{"breeds", "--filter", "TERRIER"},
			want: []string{"terrier", "terrier/boston", "terrier/yorkshire"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.args...)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			got := strings.Fields(out)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "breedview.yaml")
	if _, err := executeCommand(t, "config", "init", "--minimal", "--path", path); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !fileExists(path) {
		t.Fatalf("Expected config file at %s", path)
	}

	if _, err := executeCommand(t, "config", "init", "--path", path); err == nil {
		t.Error("Expected init to refuse overwriting without --force")
	}

	out, err := executeCommand(t, "config", "validate", "--config", path)
	if err != nil {
		t.Fatalf("config validate failed: %v", err)
	}
	if !strings.Contains(out, "Configuration is valid") {
		t.Errorf("Unexpected validate output: %q", out)
	}
}

func TestConfigShow_JSON(t *testing.T) {
	isolate(t)
	t.Setenv("BREEDVIEW_DEBOUNCE_DELAY", "250ms")

	out, err := executeCommand(t, "config", "show", "--format", "json")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}

	var shown map[string]interface{}
	if err := json.Unmarshal([]byte(out), &shown); err != nil {
		t.Fatalf("Output is not JSON: %v", err)
	}
	if _, ok := shown["lookup"]; !ok {
		t.Errorf("Expected lookup section in %v", shown)
	}
	debounce, ok := shown["debounce"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected debounce section in %v", shown)
	}
	if debounce["delay"] != float64(250*time.Millisecond) {
		t.Errorf("Expected env override of the delay, got %v", debounce["delay"])
	}
}

func TestBreedsCommand_Unreachable(t *testing.T) {
	isolate(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL + "/api"
	server.Close()
	t.Setenv("BREEDVIEW_LOOKUP_BASE_URL", baseURL)

	_, err := executeCommand(t, "breeds")
	if err == nil {
		t.Fatal("Expected an error when the service is down")
	}
	if !strings.Contains(err.Error(), "cannot reach the image service") {
		t.Errorf("Expected unreachable hint, got %v", err)
	}
}
