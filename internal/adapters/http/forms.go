package httpadapter

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// emailShape is deliberately loose: something@something.tld. Real validation
// happens wherever the mail is actually sent.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// requiredFields lists the mandatory fields per form. Unknown form names are
// rejected outright.
var requiredFields = map[string][]string{
	"home":    {"email", "mensaje"},
	"contact": {"nombre", "email", "mensaje"},
}

func validateForm(form string, fields map[string]string) (map[string]string, bool) {
	required, ok := requiredFields[form]
	if !ok {
		return nil, false
	}
	errs := map[string]string{}
	for _, name := range required {
		if strings.TrimSpace(fields[name]) == "" {
			errs[name] = "required"
		}
	}
	if email := strings.TrimSpace(fields["email"]); email != "" && !emailShape.MatchString(email) {
		errs["email"] = "invalid"
	}
	return errs, true
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	form := chi.URLParam(r, "form")

	var fields map[string]string
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid body"})
		return
	}

	errs, known := validateForm(form, fields)
	if !known {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "unknown form"})
		return
	}
	if len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}

	if err := s.forms.ForwardForm(r.Context(), form, fields); err != nil {
		s.log.Error("form forward failed", zap.String("form", form), zap.Error(err))
		writeJSON(w, http.StatusBadGateway, map[string]any{"error": "upstream"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
