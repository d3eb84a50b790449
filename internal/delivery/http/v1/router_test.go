package v1_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-izcloud-backend/config"
	v1 "go-izcloud-backend/internal/delivery/http/v1"
	"go-izcloud-backend/internal/domain"
	"go-izcloud-backend/internal/usecase"
	"go-izcloud-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendContactNotification(ctx context.Context, req *domain.ContactRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockMailer) SendContactConfirmation(ctx context.Context, req *domain.ContactRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockMailer) SendGDPRNotification(ctx context.Context, req *domain.GDPRRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockMailer) SendGDPRConfirmation(ctx context.Context, req *domain.GDPRRequest) error {
	return m.Called(ctx, req).Error(0)
}

func newTestRouter(mailer domain.Mailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validate := validation.New()
	return v1.NewRouter(v1.RouterDeps{
		ContactUC: usecase.NewContactUsecase(mailer, validate),
		GDPRUC:    usecase.NewGDPRUsecase(mailer, validate),
		Config: &config.Config{
			RateLimitWindowSeconds: 3600,
			RateLimitContactMax:    5,
			RateLimitGDPRMax:       3,
		},
	})
}

func postJSON(r *gin.Engine, path, body, ip string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", ip)
	r.ServeHTTP(w, req)
	return w
}

func happyMailer() *MockMailer {
	mailer := new(MockMailer)
	mailer.On("SendContactNotification", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendContactConfirmation", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendGDPRNotification", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendGDPRConfirmation", mock.Anything, mock.Anything).Return(nil)
	return mailer
}

func TestContactEndpoint(t *testing.T) {
	t.Run("Should accept a valid submission", func(t *testing.T) {
		mailer := happyMailer()
		r := newTestRouter(mailer)

		w := postJSON(r, "/v1/contact",
			`{"name":"Jean Dupont","email":"jean@entreprise.fr","message":"Besoin d'un audit"}`,
			"198.51.100.10")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"message":"Emails sent successfully"}`, w.Body.String())
		mailer.AssertCalled(t, "SendContactNotification", mock.Anything, mock.Anything)
		mailer.AssertCalled(t, "SendContactConfirmation", mock.Anything, mock.Anything)
	})

	t.Run("Should reject disposable email addresses", func(t *testing.T) {
		mailer := happyMailer()
		r := newTestRouter(mailer)

		w := postJSON(r, "/v1/contact",
			`{"name":"Jean","email":"test@mailinator.com","message":"hello"}`,
			"198.51.100.11")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Disposable email addresses are not allowed"}`, w.Body.String())
		mailer.AssertNotCalled(t, "SendContactNotification", mock.Anything, mock.Anything)
	})

	t.Run("Should reject malformed JSON bodies", func(t *testing.T) {
		r := newTestRouter(happyMailer())

		w := postJSON(r, "/v1/contact", `{"name":`, "198.51.100.12")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
	})

	t.Run("Should rate limit the sixth submission within the window", func(t *testing.T) {
		r := newTestRouter(happyMailer())
		body := `{"name":"Jean","email":"jean@entreprise.fr","message":"hello"}`

		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusOK, postJSON(r, "/v1/contact", body, "198.51.100.13").Code)
		}

		w := postJSON(r, "/v1/contact", body, "198.51.100.13")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "3600", w.Header().Get("Retry-After"))
		assert.JSONEq(t, `{"error":"Too many requests. Please try again later."}`, w.Body.String())
	})

	t.Run("Should answer server errors with a generic message", func(t *testing.T) {
		mailer := new(MockMailer)
		mailer.On("SendContactNotification", mock.Anything, mock.Anything).
			Return(errors.New("resend: unexpected status 500: {\"name\":\"internal_server_error\"}"))
		r := newTestRouter(mailer)

		w := postJSON(r, "/v1/contact",
			`{"name":"Jean","email":"jean@entreprise.fr","message":"hello"}`,
			"198.51.100.14")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"An error occurred while processing your request."}`, w.Body.String())
		assert.NotContains(t, w.Body.String(), "resend")
		mailer.AssertNotCalled(t, "SendContactConfirmation", mock.Anything, mock.Anything)
	})

	t.Run("Should still succeed when the confirmation email fails", func(t *testing.T) {
		mailer := new(MockMailer)
		mailer.On("SendContactNotification", mock.Anything, mock.Anything).Return(nil)
		mailer.On("SendContactConfirmation", mock.Anything, mock.Anything).
			Return(errors.New("resend: unexpected status 503"))
		r := newTestRouter(mailer)

		w := postJSON(r, "/v1/contact",
			`{"name":"Jean","email":"jean@entreprise.fr","message":"hello"}`,
			"198.51.100.15")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Should answer preflight with permissive CORS headers and no body", func(t *testing.T) {
		r := newTestRouter(happyMailer())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/v1/contact", nil)
		req.Header.Set("Origin", "https://izcloud.fr")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "authorization, x-client-info, apikey, content-type", w.Header().Get("Access-Control-Allow-Headers"))
	})
}

func TestGDPREndpoint(t *testing.T) {
	validBody := `{"name":"Jean Dupont","email":"jean@entreprise.fr","requestType":"deletion","requestTypeLabel":"Droit à l'effacement - Supprimer mes données","message":"Supprimez mes données"}`

	t.Run("Should accept a valid data-rights request", func(t *testing.T) {
		mailer := happyMailer()
		r := newTestRouter(mailer)

		w := postJSON(r, "/v1/gdpr-request", validBody, "198.51.100.20")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"message":"GDPR request sent successfully"}`, w.Body.String())
		mailer.AssertCalled(t, "SendGDPRNotification", mock.Anything, mock.Anything)
	})

	t.Run("Should require the request type", func(t *testing.T) {
		r := newTestRouter(happyMailer())

		w := postJSON(r, "/v1/gdpr-request",
			`{"name":"Jean","email":"jean@entreprise.fr","requestType":"","message":"hello"}`,
			"198.51.100.21")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Request type is required"}`, w.Body.String())
	})

	t.Run("Should enforce the stricter 3-per-window limit", func(t *testing.T) {
		r := newTestRouter(happyMailer())

		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusOK, postJSON(r, "/v1/gdpr-request", validBody, "198.51.100.22").Code)
		}

		w := postJSON(r, "/v1/gdpr-request", validBody, "198.51.100.22")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "3600", w.Header().Get("Retry-After"))
	})

	t.Run("Should keep contact and GDPR buckets separate", func(t *testing.T) {
		r := newTestRouter(happyMailer())
		ip := "198.51.100.23"

		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusOK, postJSON(r, "/v1/gdpr-request", validBody, ip).Code)
		}
		assert.Equal(t, http.StatusTooManyRequests, postJSON(r, "/v1/gdpr-request", validBody, ip).Code)

		// The same client can still reach the contact form.
		w := postJSON(r, "/v1/contact",
			`{"name":"Jean","email":"jean@entreprise.fr","message":"hello"}`, ip)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(happyMailer())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"System operational"}`, w.Body.String())
}
