package api

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/quicktest/backend/internal/domain/quiztest"
)

// ── Request / Response types ────────────────────────────────────────────────

// ImportRequest is the portable test document produced by export.
type ImportRequest quiztest.Document

func (r *ImportRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if len(r.Questions) == 0 {
		return errors.New("questions are required")
	}
	return nil
}

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func exportFilename(name string) string {
	base := strings.Trim(unsafeFilename.ReplaceAllString(name, "_"), "_")
	if base == "" {
		base = "test"
	}
	return base + ".json"
}

// ── Handlers ────────────────────────────────────────────────────────────────

// exportTest downloads a test as a portable document without IDs.
// @Summary      Export a test
// @Tags         Import/Export
// @Produce      json
// @Security     BearerAuth
// @Param        testID  path      string  true  "Test ID"
// @Success      200     {object}  quiztest.Document
// @Failure      404     {object}  map[string]string
// @Router       /tests/{testID}/export [get]
func (h *Handler) exportTest(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.ExportTest(r.Context(), userID(r), r.PathValue("testID"))
	if h.handleStoreError(w, err, "test") {
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(doc.Name)))
	respondJSON(w, http.StatusOK, doc)
}

// importTest creates a new test from an exported document. Importing the
// same document twice creates two tests.
// @Summary      Import a test
// @Tags         Import/Export
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      quiztest.Document  true  "Exported test document"
// @Success      201   {object}  TestResponse
// @Failure      400   {object}  map[string]string
// @Router       /tests/import [post]
func (h *Handler) importTest(w http.ResponseWriter, r *http.Request) {
	var req ImportRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	t, err := h.store.ImportTest(r.Context(), userID(r), quiztest.Document(req))
	if h.handleStoreError(w, err, "test") {
		return
	}

	h.logger.Info("test imported", "user_id", userID(r), "test_id", t.ID, "questions", len(t.Questions))
	respondJSON(w, http.StatusCreated, newTestResponse(t))
}
