package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/swaggo/swag"

	"github.com/quicktest/backend/internal/api"
	"github.com/quicktest/backend/internal/auth"

	_ "github.com/quicktest/backend/docs"
)

// Every documented operation must hit a registered route, and every
// registered route must be documented.
func TestSwaggerDocMatchesRoutes(t *testing.T) {
	raw, err := swag.ReadDoc()
	if err != nil {
		t.Fatalf("failed to read swagger doc: %v", err)
	}
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("swagger doc is not valid JSON: %v", err)
	}

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, &api.Handler{}, auth.NewLimiter(1, 1))

	var documented []string
	for path, ops := range doc.Paths {
		for method := range ops {
			pattern := strings.ToUpper(method) + " " + path
			documented = append(documented, pattern)

			req := httptest.NewRequest(strings.ToUpper(method), strings.ReplaceAll(path, "{testID}", "abc"), nil)
			if _, matched := mux.Handler(req); matched != pattern {
				t.Errorf("documented %q is routed as %q", pattern, matched)
			}
		}
	}
	sort.Strings(documented)

	const routes = 22 // everything RegisterRoutes mounts
	if len(documented) != routes {
		t.Errorf("expected %d documented operations, got %d: %v", routes, len(documented), documented)
	}
}
