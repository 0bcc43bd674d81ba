package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"loginapi/internal/api/handler"
	"loginapi/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, username, email, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	return s.registerFn(ctx, username, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	return s.loginFn(ctx, email, password)
}

// newTestServer wires the stub service into a full echo instance so responses
// go through the central error handler, exactly as in production.
func newTestServer(svc *stubAuthService) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())

	h := handler.NewAuthHandler(svc)
	e.POST("/register", h.Register)
	e.POST("/login", h.Login)
	return e
}

func doJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestErrorHandler_RegisterConflict(t *testing.T) {
	e := newTestServer(&stubAuthService{
		registerFn: func(ctx context.Context, username, email, password string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	})

	rec := doJSON(e, "/register", `{"username":"alice","email":"a@x.com","password":"s3cret"}`)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "user already exists") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestErrorHandler_RegisterValidation(t *testing.T) {
	e := newTestServer(&stubAuthService{
		registerFn: func(ctx context.Context, username, email, password string) (*domain.User, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	})

	rec := doJSON(e, "/register", `{"email":"a@x.com","password":"s3cret"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "username is required") {
		t.Fatalf("expected field detail, got %s", rec.Body.String())
	}
}

func TestErrorHandler_LoginFailuresShareOneBody(t *testing.T) {
	e := newTestServer(&stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			// Wrong password and unknown email are already collapsed by the
			// service; both arrive here as the same sentinel.
			return nil, domain.ErrInvalidCredentials
		},
	})

	wrongPass := doJSON(e, "/login", `{"email":"a@x.com","password":"wrong"}`)
	unknown := doJSON(e, "/login", `{"email":"nobody@x.com","password":"s3cret"}`)

	if wrongPass.Code != http.StatusUnauthorized || unknown.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", wrongPass.Code, unknown.Code)
	}
	if wrongPass.Body.String() != unknown.Body.String() {
		t.Fatalf("401 bodies must be identical: %s vs %s", wrongPass.Body.String(), unknown.Body.String())
	}
	if !strings.Contains(wrongPass.Body.String(), "invalid credentials") {
		t.Fatalf("unexpected body: %s", wrongPass.Body.String())
	}
}

func TestErrorHandler_StoreFailureIsGeneric500(t *testing.T) {
	e := newTestServer(&stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			return nil, errors.New("connection reset by peer")
		},
	})

	rec := doJSON(e, "/login", `{"email":"a@x.com","password":"s3cret"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection reset") {
		t.Fatalf("internal detail leaked to client: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "internal server error") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestResolveError_MissingFields(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	code, msg := resolveError(domain.ErrMissingFields, zerolog.Nop(), c)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if msg != "missing required fields" {
		t.Fatalf("unexpected message: %s", msg)
	}
}
