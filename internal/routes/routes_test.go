package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shulchan-app/shulchan-backend/internal/config"
	"github.com/shulchan-app/shulchan-backend/internal/handlers"
	"github.com/shulchan-app/shulchan-backend/internal/services"
)

const testJWTSecret = "routes-test-secret"

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        testJWTSecret,
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
		AdminToken:       "ops-token",
		GeocodeTimeout:   time.Second,
		GeocodeCacheTTL:  time.Minute,
	}
}

func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}

	cfg := testConfig()

	authService := services.NewAuthService(gdb, cfg)
	userService := services.NewUserService(gdb)
	profileService := services.NewProfileService(gdb)
	directoryService := services.NewDirectoryService(gdb)
	geoService := services.NewGeoService(cfg)

	app := fiber.New()
	Setup(app, cfg, gdb,
		handlers.NewAuthHandler(authService, userService),
		handlers.NewUserHandler(userService),
		handlers.NewHostHandler(profileService),
		handlers.NewGuestHandler(profileService),
		handlers.NewDirectoryHandler(directoryService, userService),
		handlers.NewAdminHandler(userService),
		handlers.NewGeoHandler(geoService),
		handlers.NewHealthHandler(gdb),
		handlers.NewLegalHandler("Shulchan"),
	)
	return app, mock
}

func signToken(t *testing.T, subject, email string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(10 * time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestHealthIsPublic(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if resp.StatusCode != http.StatusOK {
		t.Errorf("health returned %d", resp.StatusCode)
	}
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	app, _ := newTestApp(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/guests"},
		{http.MethodGet, "/api/hosts"},
		{http.MethodGet, "/api/users/me"},
		{http.MethodGet, "/api/people"},
		{http.MethodPost, "/api/hosts"},
		{http.MethodGet, "/api/admin/users"},
	}
	for _, p := range paths {
		resp := doRequest(t, app, httptest.NewRequest(p.method, p.path, nil))
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("%s %s without token returned %d, want 401", p.method, p.path, resp.StatusCode)
		}
	}
}

func TestPublicHostsNeedsNoToken(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT (.+) FROM "hosts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "auth_user_id"}))

	resp := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/public/hosts", nil))
	if resp.StatusCode != http.StatusOK {
		t.Errorf("public hosts returned %d, want 200", resp.StatusCode)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGuestProfileNullWhenAbsent(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT (.+) FROM "guests"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "auth_user_id"}))

	req := httptest.NewRequest(http.MethodGet, "/api/guests/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "subject-1", "g@example.com"))

	resp := doRequest(t, app, req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("guests/me returned %d, want 200", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var parsed struct {
		Guest *json.RawMessage `json:"guest"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("invalid body %q: %v", body, err)
	}
	if parsed.Guest != nil && string(*parsed.Guest) != "null" {
		t.Errorf("expected null guest, got %s", *parsed.Guest)
	}
}

func TestAdminTokenBypassesRoleLookup(t *testing.T) {
	app, mock := newTestApp(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "auth_user_id", "role", "is_verified", "email", "name", "image", "created_at", "updated_at"}).
			AddRow(uuid.New(), "subject-1", "user", false, "u@example.com", "U", "", now, now))
	mock.ExpectQuery(`SELECT (.+) FROM "hosts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "auth_user_id"}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "subject-9", "ops@example.com"))
	req.Header.Set("X-Admin-Token", "ops-token")

	resp := doRequest(t, app, req)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("admin list with ops token returned %d, want 200", resp.StatusCode)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAdminRoutesForbiddenForPlainUser(t *testing.T) {
	app, mock := newTestApp(t)

	now := time.Now()
	// role lookup inside the admin middleware
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "auth_user_id", "role", "is_verified", "email", "name", "image", "created_at", "updated_at"}).
			AddRow(uuid.New(), "subject-1", "user", false, "u@example.com", "U", "", now, now))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "subject-1", "u@example.com"))

	resp := doRequest(t, app, req)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("admin list as plain user returned %d, want 403", resp.StatusCode)
	}
}

func TestGeocodeRejectsEmptyBatch(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/geo/geocode", nil)
	req.Header.Set("Content-Type", "application/json")

	resp := doRequest(t, app, req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("empty geocode body returned %d, want 400", resp.StatusCode)
	}
}
