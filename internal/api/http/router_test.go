package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mrpavithran/WorkShop/internal/api/http/handlers"
	"github.com/mrpavithran/WorkShop/internal/auth"
	"github.com/mrpavithran/WorkShop/internal/config"
	"github.com/mrpavithran/WorkShop/internal/events"
	"github.com/mrpavithran/WorkShop/internal/ledger"
	"github.com/mrpavithran/WorkShop/internal/observability"
	"github.com/mrpavithran/WorkShop/internal/service"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.Config{}
	cfg.App.Name = "workshop-registration-service-test"
	cfg.App.Version = "test"
	cfg.App.PublicOrigin = "http://localhost:8080"
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.AccessTokenTTLMinutes = 5
	cfg.Auth.BcryptCost = 4
	cfg.Payment.ProcessingDelayMs = 0

	logger := zap.NewNop()
	store := ledger.NewStore()
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	authService := service.NewAuthService(cfg, store)
	workshopService := service.NewWorkshopService(service.WorkshopDependencies{Store: store, Dispatcher: dispatcher})
	registrationService := service.NewRegistrationService(service.RegistrationDependencies{Store: store, Dispatcher: dispatcher})
	profileService := service.NewProfileService(store)
	paymentService := service.NewPaymentService(registrationService, logger, cfg.Payment)

	app := fiber.New()
	RegisterMiddlewares(app, logger, metrics, 0)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, store, metrics),
		Users:          handlers.NewUsersHandler(authService),
		Workshops:      handlers.NewWorkshopsHandler(workshopService, paymentService, cfg.App.PublicOrigin),
		Creator:        handlers.NewCreatorHandler(workshopService, registrationService),
		Profile:        handlers.NewProfileHandler(profileService, registrationService, workshopService),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager(), store),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req, err := nethttp.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	decoded := map[string]any{}
	if len(raw) > 0 && resp.Header.Get("Content-Type") != "image/png" {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp.StatusCode, decoded
}

func signUp(t *testing.T, app *fiber.App, name, email, role string) string {
	t.Helper()
	status, body := doJSON(t, app, "POST", "/auth/register", "", map[string]any{
		"name": name, "email": email, "password": "hunter2", "role": role,
	})
	require.Equal(t, nethttp.StatusCreated, status, "body: %v", body)
	data := body["data"].(map[string]any)
	return data["auth"].(map[string]any)["token"].(string)
}

func errorCode(body map[string]any) string {
	errObj, ok := body["error"].(map[string]any)
	if !ok {
		return ""
	}
	code, _ := errObj["code"].(string)
	return code
}

func TestWorkshopLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)

	creatorToken := signUp(t, app, "Casey Creator", "casey@example.com", "CREATOR")
	participantToken := signUp(t, app, "Pat Participant", "pat@example.com", "PARTICIPANT")

	// Create a workshop as the creator.
	status, body := doJSON(t, app, "POST", "/creator/workshops", creatorToken, map[string]any{
		"title": "Intro to X", "description": "Learn X from scratch",
		"date": "2030-01-01", "time": "10:00", "price": 100.0, "capacity": 2,
	})
	require.Equal(t, nethttp.StatusCreated, status, "body: %v", body)
	workshopID := int64(body["data"].(map[string]any)["id"].(float64))

	// Participants cannot use the creator surface.
	status, _ = doJSON(t, app, "POST", "/creator/workshops", participantToken, map[string]any{})
	require.Equal(t, nethttp.StatusForbidden, status)

	// Public listing sees it.
	status, body = doJSON(t, app, "GET", "/workshops", "", nil)
	require.Equal(t, nethttp.StatusOK, status)
	require.Equal(t, float64(1), body["data"].(map[string]any)["count"])

	// Price filter excludes the paid workshop.
	status, body = doJSON(t, app, "GET", "/workshops?price=free", "", nil)
	require.Equal(t, nethttp.StatusOK, status)
	require.Equal(t, float64(0), body["data"].(map[string]any)["count"])

	// Authenticated registration links the account.
	status, body = doJSON(t, app, "POST", fmt.Sprintf("/workshops/%d/register", workshopID), participantToken, map[string]any{
		"name": "Pat Participant", "email": "pat@example.com", "phone": "555-0100",
	})
	require.Equal(t, nethttp.StatusCreated, status, "body: %v", body)
	registrationID := int64(body["data"].(map[string]any)["id"].(float64))

	// Duplicate registration is rejected.
	status, body = doJSON(t, app, "POST", fmt.Sprintf("/workshops/%d/register", workshopID), "", map[string]any{
		"name": "Pat Again", "email": "pat@example.com", "phone": "555-0100",
	})
	require.Equal(t, nethttp.StatusConflict, status)
	require.Equal(t, "ALREADY_REGISTERED", errorCode(body))

	// Guest takes the last seat, then the workshop is full.
	status, _ = doJSON(t, app, "POST", fmt.Sprintf("/workshops/%d/register", workshopID), "", map[string]any{
		"name": "Gus Guest", "email": "gus@example.com", "phone": "555-0101",
	})
	require.Equal(t, nethttp.StatusCreated, status)

	status, body = doJSON(t, app, "POST", fmt.Sprintf("/workshops/%d/register", workshopID), "", map[string]any{
		"name": "Late Larry", "email": "larry@example.com", "phone": "555-0102",
	})
	require.Equal(t, nethttp.StatusConflict, status)
	require.Equal(t, "CAPACITY_EXCEEDED", errorCode(body))

	// Creator dashboard aggregates.
	status, body = doJSON(t, app, "GET", "/creator/dashboard", creatorToken, nil)
	require.Equal(t, nethttp.StatusOK, status)
	dashboard := body["data"].(map[string]any)
	require.Equal(t, float64(1), dashboard["workshop_count"])
	require.Equal(t, float64(2), dashboard["total_participants"])
	require.Equal(t, float64(200), dashboard["total_revenue"])

	// Attendance toggle, creator only.
	status, _ = doJSON(t, app, "PUT", fmt.Sprintf("/creator/registrations/%d/attendance", registrationID), participantToken, map[string]any{"attended": true})
	require.Equal(t, nethttp.StatusForbidden, status)

	status, body = doJSON(t, app, "PUT", fmt.Sprintf("/creator/registrations/%d/attendance", registrationID), creatorToken, map[string]any{"attended": true})
	require.Equal(t, nethttp.StatusOK, status)
	require.Equal(t, true, body["data"].(map[string]any)["attended"])

	// Participant profile shows the registration and spend.
	status, body = doJSON(t, app, "GET", "/profile", participantToken, nil)
	require.Equal(t, nethttp.StatusOK, status)
	profile := body["data"].(map[string]any)
	require.Equal(t, float64(100), profile["total_spent"])
	require.Len(t, profile["upcoming"].([]any), 1)

	// Feedback is one-shot.
	status, _ = doJSON(t, app, "POST", fmt.Sprintf("/profile/registrations/%d/feedback", registrationID), participantToken, map[string]any{"feedback": "Great!"})
	require.Equal(t, nethttp.StatusOK, status)

	status, body = doJSON(t, app, "POST", fmt.Sprintf("/profile/registrations/%d/feedback", registrationID), participantToken, map[string]any{"feedback": "Better!"})
	require.Equal(t, nethttp.StatusConflict, status)
	require.Equal(t, "ALREADY_SUBMITTED", errorCode(body))
}

func TestPublicAssetsOverHTTP(t *testing.T) {
	app := newTestApp(t)

	creatorToken := signUp(t, app, "Casey Creator", "casey@example.com", "CREATOR")
	participantToken := signUp(t, app, "Pat Participant", "pat@example.com", "PARTICIPANT")

	status, body := doJSON(t, app, "POST", "/creator/workshops", creatorToken, map[string]any{
		"title": "Intro to X", "description": "Learn X from scratch",
		"date": "2030-01-01", "time": "10:00", "price": 100.0, "capacity": 5,
	})
	require.Equal(t, nethttp.StatusCreated, status)
	workshopID := int64(body["data"].(map[string]any)["id"].(float64))

	// QR code is public.
	req, err := nethttp.NewRequest("GET", fmt.Sprintf("/workshops/%d/qr", workshopID), nil)
	require.NoError(t, err)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	require.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	resp.Body.Close()

	// Register and request a certificate before attendance: rejected.
	status, body = doJSON(t, app, "POST", fmt.Sprintf("/workshops/%d/register", workshopID), participantToken, map[string]any{
		"name": "Pat Participant", "email": "pat@example.com", "phone": "555-0100",
	})
	require.Equal(t, nethttp.StatusCreated, status)
	registrationID := int64(body["data"].(map[string]any)["id"].(float64))

	status, body = doJSON(t, app, "GET", fmt.Sprintf("/registrations/%d/certificate", registrationID), participantToken, nil)
	require.Equal(t, nethttp.StatusConflict, status)
	require.Equal(t, "CONFLICT", errorCode(body))

	// After attendance the certificate renders.
	status, _ = doJSON(t, app, "PUT", fmt.Sprintf("/creator/registrations/%d/attendance", registrationID), creatorToken, map[string]any{"attended": true})
	require.Equal(t, nethttp.StatusOK, status)

	req, err = nethttp.NewRequest("GET", fmt.Sprintf("/registrations/%d/certificate", registrationID), nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+participantToken)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	require.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	resp.Body.Close()

	// Unknown workshop yields the standard error envelope.
	status, body = doJSON(t, app, "GET", "/workshops/999", "", nil)
	require.Equal(t, nethttp.StatusNotFound, status)
	require.Equal(t, "NOT_FOUND", errorCode(body))
}

func TestHealthAndMetricsOverHTTP(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "GET", "/health/live", "", nil)
	require.Equal(t, nethttp.StatusOK, status)
	require.Equal(t, "alive", body["status"])

	status, body = doJSON(t, app, "GET", "/health/ready", "", nil)
	require.Equal(t, nethttp.StatusOK, status)
	require.Equal(t, "ready", body["status"])

	status, body = doJSON(t, app, "GET", "/metrics", "", nil)
	require.Equal(t, nethttp.StatusOK, status)
	require.Contains(t, body, "requests")
}
