package middleware

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wiratama/expense-tracker-api/internal/domain/entity"
	"github.com/wiratama/expense-tracker-api/internal/testutil"
	"github.com/wiratama/expense-tracker-api/pkg/helpers"
	"github.com/wiratama/expense-tracker-api/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func seedUser(t *testing.T, repo *testutil.MemoryUserRepo, email string, role entity.UserType) *entity.User {
	t.Helper()
	u := &entity.User{Name: "Test", Email: email, Password: "hash", UserType: role}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func protectedRouter(repo *testutil.MemoryUserRepo, jwt *helpers.JWTManager) *gin.Engine {
	r := gin.New()
	r.Use(ErrorNormalizer(quietLogger(), true))
	r.GET("/me", Protect(repo, jwt), func(c *gin.Context) {
		u, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": u.ID})
	})
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	return doGetPath(r, "/me", authHeader)
}

func doGetPath(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeErrorEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.ErrorEnvelope {
	t.Helper()
	var env response.ErrorEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode error envelope: %v (%s)", err, w.Body.String())
	}
	return env
}

func TestProtectMissingToken(t *testing.T) {
	repo := testutil.NewMemoryUserRepo()
	jwt := helpers.NewJWTManager("s", time.Hour)
	r := protectedRouter(repo, jwt)

	for _, header := range []string{"", "Basic abc123", "bearer-without-scheme"} {
		w := doGet(r, header)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, w.Code)
		}
		env := decodeErrorEnvelope(t, w)
		if env.Message != "Unauthorized, no token provided" {
			t.Errorf("header %q: message = %q", header, env.Message)
		}
		if env.Status != "fail" {
			t.Errorf("header %q: status field = %q, want fail", header, env.Status)
		}
	}
}

func TestProtectInvalidToken(t *testing.T) {
	repo := testutil.NewMemoryUserRepo()
	jwt := helpers.NewJWTManager("s", time.Hour)
	r := protectedRouter(repo, jwt)

	w := doGet(r, "Bearer garbage")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if env := decodeErrorEnvelope(t, w); env.Message != "Unauthorized, invalid token" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestProtectExpiredToken(t *testing.T) {
	repo := testutil.NewMemoryUserRepo()
	u := seedUser(t, repo, "ann@x.com", entity.RoleUser)

	expired := helpers.NewJWTManager("s", -time.Minute)
	token, err := expired.Generate(u.ID, u.UserType)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	r := protectedRouter(repo, helpers.NewJWTManager("s", time.Hour))
	w := doGet(r, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 for expired token", w.Code)
	}
	if env := decodeErrorEnvelope(t, w); env.Message != "Unauthorized, invalid token" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestProtectDanglingIdentity(t *testing.T) {
	repo := testutil.NewMemoryUserRepo()
	jwt := helpers.NewJWTManager("s", time.Hour)
	u := seedUser(t, repo, "ann@x.com", entity.RoleUser)

	token, err := jwt.Generate(u.ID, u.UserType)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// Identity vanishes between issuing and using the token: the gate
	// must fail rather than attach an empty user.
	repo.Delete(u.ID)

	r := protectedRouter(repo, jwt)
	w := doGet(r, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 for dangling identity", w.Code)
	}
}

func TestProtectAttachesCurrentUser(t *testing.T) {
	repo := testutil.NewMemoryUserRepo()
	jwt := helpers.NewJWTManager("s", time.Hour)
	u := seedUser(t, repo, "ann@x.com", entity.RoleUser)

	token, err := jwt.Generate(u.ID, u.UserType)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	r := protectedRouter(repo, jwt)
	w := doGet(r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["id"] != u.ID {
		t.Errorf("attached id = %q, want %q", body["id"], u.ID)
	}
}
