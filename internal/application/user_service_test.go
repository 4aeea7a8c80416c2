package application

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wiratama/expense-tracker-api/internal/domain/entity"
	"github.com/wiratama/expense-tracker-api/internal/testutil"
	"github.com/wiratama/expense-tracker-api/pkg/apperr"
	"github.com/wiratama/expense-tracker-api/pkg/helpers"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newUserService() (*UserService, *testutil.MemoryUserRepo, *helpers.JWTManager) {
	repo := testutil.NewMemoryUserRepo()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	return NewUserService(repo, jwt, quietLogger()), repo, jwt
}

func TestRegisterIssuesVerifiableToken(t *testing.T) {
	svc, _, jwt := newUserService()

	resp, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.UserType != entity.RoleUser {
		t.Errorf("UserType = %q, want default user", resp.UserType)
	}

	claims, err := jwt.Parse(resp.Token)
	if err != nil {
		t.Fatalf("Parse token: %v", err)
	}
	if claims.UserID != resp.ID {
		t.Errorf("token uid = %q, want %q", claims.UserID, resp.ID)
	}
	if claims.UserType != resp.UserType {
		t.Errorf("token role = %q, want %q", claims.UserType, resp.UserType)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newUserService()
	ctx := context.Background()

	in := RegisterInput{Name: "Ann", Email: "ann@x.com", Password: "secret1"}
	if _, err := svc.Register(ctx, in); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	in.Name = "Other"
	in.Password = "different"
	_, err := svc.Register(ctx, in)
	if apperr.KindOf(err) != apperr.AlreadyExists {
		t.Errorf("second Register = %v, want AlreadyExists", err)
	}
}

func TestRegisterNeverStoresPlaintext(t *testing.T) {
	svc, repo, _ := newUserService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, RegisterInput{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	stored, err := repo.GetByID(ctx, resp.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Password == "secret1" {
		t.Error("password stored in plaintext")
	}
	if !helpers.CompareHashAndPassword(stored.Password, "secret1") {
		t.Error("stored hash does not verify the original password")
	}
}

func TestLogin(t *testing.T) {
	svc, _, jwt := newUserService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err = svc.Login(ctx, "nobody@x.com", "secret1")
	if apperr.KindOf(err) != apperr.NotFound {
		t.Errorf("unknown email: got %v, want NotFound", err)
	}

	_, err = svc.Login(ctx, "ann@x.com", "wrong")
	if apperr.KindOf(err) != apperr.InvalidCredentials {
		t.Errorf("wrong password: got %v, want InvalidCredentials", err)
	}

	resp, err := svc.Login(ctx, "ann@x.com", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims, err := jwt.Parse(resp.Token)
	if err != nil {
		t.Fatalf("Parse token: %v", err)
	}
	if claims.UserID != reg.ID {
		t.Errorf("login token uid = %q, want %q", claims.UserID, reg.ID)
	}
}

func TestGetProfileExcludesPassword(t *testing.T) {
	svc, _, _ := newUserService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	u, err := svc.GetProfile(ctx, reg.ID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if u.Password != "" {
		t.Error("profile leaked the password hash")
	}
}

func TestUpdateProfileImmutableFields(t *testing.T) {
	svc, repo, _ := newUserService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{Name: "Ann", Email: "ann@x.com", Password: "secret1", Phone: "5550001234"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	name := "Anna"
	phone := "5559998888"
	u, err := svc.UpdateProfile(ctx, reg.ID, UpdateProfileInput{Name: &name, Phone: &phone})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if u.Name != "Anna" || u.Phone != "5559998888" {
		t.Errorf("update not applied: %+v", u)
	}

	stored, err := repo.GetByID(ctx, reg.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Email != "ann@x.com" {
		t.Errorf("email changed to %q; it is immutable via profile update", stored.Email)
	}
	if stored.UserType != entity.RoleUser {
		t.Errorf("role changed to %q; it is immutable via profile update", stored.UserType)
	}
}

func TestUpdateProfileEmptyName(t *testing.T) {
	svc, _, _ := newUserService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	empty := ""
	_, err = svc.UpdateProfile(ctx, reg.ID, UpdateProfileInput{Name: &empty})
	if apperr.KindOf(err) != apperr.Validation {
		t.Errorf("empty name: got %v, want Validation", err)
	}
}
