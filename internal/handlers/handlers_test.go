package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"regsite/internal/ai"
	"regsite/internal/audit"
	"regsite/internal/config"
	"regsite/internal/middleware"
	"regsite/internal/models"
	"regsite/internal/rbac"
	"regsite/internal/store"
	"regsite/internal/token"
)

func newTestAPI(t *testing.T) (*API, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{Env: "testing"}
	tokens := token.NewService("test-secret", "test-refresh-secret", time.Minute, time.Hour)
	trail := audit.NewRecorder(store.NewAuditStore(db))
	stores := Stores{
		Users:        store.NewUserStore(db),
		News:         store.NewNewsStore(db),
		Publications: store.NewPublicationStore(db),
		Regulations:  store.NewRegulationStore(db),
		Media:        store.NewMediaStore(db),
		Pages:        store.NewPageStore(db),
		Portals:      store.NewPortalStore(db),
		FAQs:         store.NewFAQStore(db),
		BoardMembers: store.NewBoardMemberStore(db),
		Ads:          store.NewAdStore(db),
		Settings:     store.NewSettingsStore(db),
		Contacts:     store.NewContactStore(db),
	}
	api := NewAPI(cfg, tokens, trail, stores, nil, nil, ai.NewAssistant(ai.ProviderConfig{}))
	return api, mock
}

const userCols = "id, email, password_hash, first_name, last_name, role, is_active, last_login, created_at, updated_at"

func userRow(u *models.User) *sqlmock.Rows {
	return sqlmock.NewRows(strings.Split(userCols, ", ")).AddRow(
		u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName,
		u.Role, u.IsActive, u.LastLogin, u.CreatedAt, u.UpdatedAt,
	)
}

func auditRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "actor_id", "action", "resource_type", "resource_id",
		"changes", "ip_address", "user_agent", "created_at",
	}).AddRow(uuid.New(), uuid.New(), "login", "User", nil, nil, nil, nil, time.Now())
}

func TestLogin_UnknownEmail(t *testing.T) {
	api, mock := newTestAPI(t)
	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	r := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"ghost@example.com","password":"whatever"}`))
	w := httptest.NewRecorder()
	api.Login(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	out := decodeEnvelope(t, w)
	assert.Equal(t, "Invalid credentials", out["message"])
}

func TestLogin_WrongPassword(t *testing.T) {
	api, mock := newTestAPI(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	u := &models.User{
		ID: uuid.New(), Email: "editor@example.com", PasswordHash: string(hash),
		FirstName: "Ada", LastName: "Obi", Role: rbac.RoleEditor, IsActive: true,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs(u.Email).
		WillReturnRows(userRow(u))

	r := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"editor@example.com","password":"wrong"}`))
	w := httptest.NewRecorder()
	api.Login(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	out := decodeEnvelope(t, w)
	assert.Equal(t, "Invalid credentials", out["message"])
}

func TestLogin_Success(t *testing.T) {
	api, mock := newTestAPI(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	u := &models.User{
		ID: uuid.New(), Email: "editor@example.com", PasswordHash: string(hash),
		FirstName: "Ada", LastName: "Obi", Role: rbac.RoleEditor, IsActive: true,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs(u.Email).
		WillReturnRows(userRow(u))
	mock.ExpectExec("UPDATE users SET last_login").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO audit_entries").
		WillReturnRows(auditRow())

	r := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"editor@example.com","password":"correct-password"}`))
	w := httptest.NewRecorder()
	api.Login(w, r)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	out := decodeEnvelope(t, w)
	data := out["data"].(map[string]any)
	pair := data["tokens"].(map[string]any)
	assert.NotEmpty(t, pair["accessToken"])
	assert.NotEmpty(t, pair["refreshToken"])
	assert.Contains(t, data, "user")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_InactiveUser(t *testing.T) {
	api, mock := newTestAPI(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	u := &models.User{
		ID: uuid.New(), Email: "gone@example.com", PasswordHash: string(hash),
		FirstName: "Old", LastName: "Account", Role: rbac.RoleAdmin, IsActive: false,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs(u.Email).
		WillReturnRows(userRow(u))

	r := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"gone@example.com","password":"correct-password"}`))
	w := httptest.NewRecorder()
	api.Login(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	out := decodeEnvelope(t, w)
	assert.Equal(t, "Invalid credentials", out["message"])
}

func TestChat_FallbackWithoutProvider(t *testing.T) {
	api, _ := newTestAPI(t)

	r := httptest.NewRequest(http.MethodPost, "/api/ai/chat",
		strings.NewReader(`{"message":"what does the commission regulate?"}`))
	w := httptest.NewRecorder()
	api.Chat(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	out := decodeEnvelope(t, w)
	data := out["data"].(map[string]any)
	assert.Contains(t, data["reply"], "Nuno")
}

func TestChat_MissingMessage(t *testing.T) {
	api, _ := newTestAPI(t)

	r := httptest.NewRequest(http.MethodPost, "/api/ai/chat", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	api.Chat(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpload_StorageUnavailable(t *testing.T) {
	api, _ := newTestAPI(t)

	r := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	w := httptest.NewRecorder()
	api.Upload(w, r)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSubmitContact_Validation(t *testing.T) {
	api, _ := newTestAPI(t)

	r := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"A","email":"not-an-email","subject":"Hello","message":"Hi"}`))
	w := httptest.NewRecorder()
	api.SubmitContact(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	out := decodeEnvelope(t, w)
	errs := out["errors"].(map[string]any)
	assert.Contains(t, errs, "email")
}

func TestListPublishedAds(t *testing.T) {
	api, mock := newTestAPI(t)

	rows := sqlmock.NewRows([]string{
		"id", "title", "type", "content", "link", "col_span", "row_span",
		"status", "sort_order", "author_id", "created_at", "updated_at",
	}).AddRow(uuid.New(), nil, "text", "Apply for new licences online", nil,
		2, 1, "published", 0, uuid.New(), time.Now(), time.Now())
	mock.ExpectQuery("SELECT (.+) FROM ads WHERE status = 'published'").
		WillReturnRows(rows)

	r := httptest.NewRequest(http.MethodGet, "/api/ads/published", nil)
	w := httptest.NewRecorder()
	api.ListPublishedAds(w, r)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	out := decodeEnvelope(t, w)
	data := out["data"].([]any)
	assert.Len(t, data, 1)
}

// finderFunc adapts a function to the middleware.UserFinder interface.
type finderFunc func(id uuid.UUID) (*models.User, error)

func (f finderFunc) FindByID(id uuid.UUID) (*models.User, error) { return f(id) }

// editorMux mounts a handler behind real bearer authentication and
// returns the router plus an Authorization header for an active editor.
func editorMux(t *testing.T, method, pattern string, h http.HandlerFunc) (chi.Router, string) {
	t.Helper()

	editor := &models.User{
		ID: uuid.New(), Email: "editor@example.com", Role: rbac.RoleEditor,
		IsActive: true,
	}
	tokens := token.NewService("test-secret", "test-refresh-secret", time.Minute, time.Hour)
	gate := middleware.NewGate(tokens, finderFunc(func(id uuid.UUID) (*models.User, error) {
		if id == editor.ID {
			return editor, nil
		}
		return nil, nil
	}))

	mux := chi.NewRouter()
	mux.With(gate.Authenticate).Method(method, pattern, h)

	access, err := tokens.IssueAccessToken(editor)
	require.NoError(t, err)
	return mux, "Bearer " + access
}

func newsCols() []string {
	return []string{
		"id", "title", "slug", "content", "excerpt", "featured_image",
		"category", "tags", "author_id", "status", "published_at", "views",
		"created_at", "updated_at",
	}
}

func TestCreateNews_SlugConflict(t *testing.T) {
	api, mock := newTestAPI(t)

	existing := sqlmock.NewRows(newsCols()).AddRow(
		uuid.New(), "Annual Report", "annual-report", "body", "", nil,
		"reports", []byte(`[]`), uuid.New(), "published", time.Now(), 0,
		time.Now(), time.Now())
	mock.ExpectQuery("SELECT (.+) FROM news WHERE slug").
		WithArgs("annual-report").
		WillReturnRows(existing)

	mux, auth := editorMux(t, http.MethodPost, "/api/news", api.CreateNews)

	r := httptest.NewRequest(http.MethodPost, "/api/news",
		strings.NewReader(`{"title":"Annual Report","content":"The yearly numbers.","category":"reports"}`))
	r.Header.Set("Authorization", auth)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	out := decodeEnvelope(t, w)
	assert.Equal(t, "An article with this slug already exists", out["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListNews_AnonymousForcedPublished(t *testing.T) {
	api, mock := newTestAPI(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM news`).
		WithArgs("published").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT (.+) FROM news WHERE 1=1 AND status").
		WithArgs("published", 10, 0).
		WillReturnRows(sqlmock.NewRows(newsCols()).AddRow(
			uuid.New(), "Gas flaring update", "gas-flaring-update", "body", "",
			nil, "industry", []byte(`[]`), uuid.New(), "published", time.Now(),
			3, time.Now(), time.Now()))

	// The supplied draft filter must never reach the database for an
	// anonymous caller.
	r := httptest.NewRequest(http.MethodGet, "/api/news?status=draft", nil)
	w := httptest.NewRecorder()
	api.ListNews(w, r)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	out := decodeEnvelope(t, w)
	data := out["data"].([]any)
	assert.Len(t, data, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateNews_PartialMerge(t *testing.T) {
	api, mock := newTestAPI(t)

	id := uuid.New()
	author := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM news WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(newsCols()).AddRow(
			id, "Quarterly outlook", "quarterly-outlook", "Full text.", "Summary",
			nil, "industry", []byte(`[]`), author, "draft", nil, 0,
			time.Now(), time.Now()))

	// No slug lookup is expected: an omitted title must not re-derive
	// the slug. The next statement is the update itself.
	now := time.Now()
	mock.ExpectQuery("UPDATE news").
		WillReturnRows(sqlmock.NewRows(newsCols()).AddRow(
			id, "Quarterly outlook", "quarterly-outlook", "Full text.", "Summary",
			nil, "industry", []byte(`[]`), author, "published", now, 0,
			now, now))
	mock.ExpectQuery("INSERT INTO audit_entries").WillReturnRows(auditRow())

	mux, auth := editorMux(t, http.MethodPut, "/api/news/{id}", api.UpdateNews)

	r := httptest.NewRequest(http.MethodPut, "/api/news/"+id.String(),
		strings.NewReader(`{"status":"published"}`))
	r.Header.Set("Authorization", auth)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	out := decodeEnvelope(t, w)
	data := out["data"].(map[string]any)
	assert.Equal(t, "published", data["status"])
	assert.Equal(t, "Quarterly outlook", data["title"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteFAQ_SingleAuditEntry(t *testing.T) {
	api, mock := newTestAPI(t)

	id := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM faqs WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "question", "answer", "category", "sort_order",
			"is_published", "created_by", "created_at", "updated_at",
		}).AddRow(id, "How do I apply?", "Online.", "licencing", 0, true,
			uuid.New(), time.Now(), time.Now()))
	mock.ExpectExec("DELETE FROM faqs").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Exactly one audit row per mutation. Expectations are ordered, so
	// a second write would surface as an unexpected statement.
	mock.ExpectQuery("INSERT INTO audit_entries").WillReturnRows(auditRow())

	mux, auth := editorMux(t, http.MethodDelete, "/api/faqs/{id}", api.DeleteFAQ)

	r := httptest.NewRequest(http.MethodDelete, "/api/faqs/"+id.String(), nil)
	r.Header.Set("Authorization", auth)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUser_SelfDeletionBlocked(t *testing.T) {
	api, _ := newTestAPI(t)

	admin := &models.User{
		ID: uuid.New(), Email: "root@example.com", Role: rbac.RoleSuperAdmin,
		IsActive: true,
	}
	tokens := token.NewService("test-secret", "test-refresh-secret", time.Minute, time.Hour)
	gate := middleware.NewGate(tokens, finderFunc(func(id uuid.UUID) (*models.User, error) {
		if id == admin.ID {
			return admin, nil
		}
		return nil, nil
	}))

	mux := chi.NewRouter()
	mux.With(gate.Authenticate).Delete("/api/users/{id}", api.DeleteUser)

	access, err := tokens.IssueAccessToken(admin)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodDelete, "/api/users/"+admin.ID.String(), nil)
	r.Header.Set("Authorization", "Bearer "+access)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	out := decodeEnvelope(t, w)
	assert.Equal(t, "You cannot delete your own account", out["message"])
}
