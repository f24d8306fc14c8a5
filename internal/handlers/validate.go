package handlers

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"regsite/internal/store"
)

// Validation limits for content fields.
const (
	maxTitleLen    = 200
	maxExcerptLen  = 500
	maxBodyLen     = 100_000
	maxNameLen     = 100
	maxSubjectLen  = 300
	maxMessageLen  = 5_000
	maxQuestionLen = 500
	maxAnswerLen   = 10_000
	minPasswordLen = 8
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validEmail reports whether s looks like an email address.
func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// checkRequired adds an error for every blank field in the map.
func checkRequired(errs map[string]string, fields map[string]string) {
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			errs[name] = name + " is required"
		}
	}
}

// checkLen adds an error when value exceeds max runes.
func checkLen(errs map[string]string, name, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		errs[name] = name + " is too long (max " + strconv.Itoa(max) + " characters)"
	}
}

// checkProvided adds an error for every field that was supplied but
// blank. Absent fields pass; partial updates only validate what the
// caller sent.
func checkProvided(errs map[string]string, fields map[string]*string) {
	for name, value := range fields {
		if value != nil && strings.TrimSpace(*value) == "" {
			errs[name] = name + " is required"
		}
	}
}

// checkLenPtr applies checkLen only when the field was supplied.
func checkLenPtr(errs map[string]string, name string, value *string, max int) {
	if value != nil {
		checkLen(errs, name, *value, max)
	}
}

// pageFromQuery parses page/limit query parameters, normalized against
// the endpoint's default limit.
func pageFromQuery(r *http.Request, defaultLimit int) store.Page {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return store.Page{Number: page, Limit: limit}.Normalize(defaultLimit)
}

// idParam parses the {id} URL parameter as a UUID. Writes a 400 and
// returns false on malformed input.
func idParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}
