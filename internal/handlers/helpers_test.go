package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/fleet-manager/internal/apperr"
	"github.com/BruksfildServices01/fleet-manager/internal/audit"
	"github.com/BruksfildServices01/fleet-manager/internal/auth"
	domainVehicle "github.com/BruksfildServices01/fleet-manager/internal/domain/vehicle"
	"github.com/BruksfildServices01/fleet-manager/internal/middleware"
	"github.com/BruksfildServices01/fleet-manager/internal/models"
	ucAccount "github.com/BruksfildServices01/fleet-manager/internal/usecase/account"
	ucVehicle "github.com/BruksfildServices01/fleet-manager/internal/usecase/vehicle"
)

const testSecret = "handlers-test-secret"

// ---------------------------------------------------------------------------
// In-memory stores

type fakeUserStore struct {
	mu    sync.Mutex
	seq   uint
	users map[uint]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uint]models.User)}
}

func (f *fakeUserStore) Create(ctx context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, stored := range f.users {
		if stored.Email == u.Email {
			return apperr.Conflict("User with this email already exists")
		}
	}
	f.seq++
	u.ID = f.seq
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, apperr.NotFound("User not found")
}

func (f *fakeUserStore) FindByID(ctx context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok {
		return nil, apperr.NotFound("User not found")
	}
	u.PasswordHash = ""
	return &u, nil
}

func (f *fakeUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) Delete(ctx context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[id]; !ok {
		return apperr.NotFound("User not found")
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserStore) projection(id uint) models.User {
	f.mu.Lock()
	defer f.mu.Unlock()

	u := f.users[id]
	return models.User{ID: u.ID, Email: u.Email}
}

type fakeVehicleStore struct {
	mu       sync.Mutex
	seq      uint
	vehicles map[uint]models.Vehicle
	owners   *fakeUserStore
}

func newFakeVehicleStore(owners *fakeUserStore) *fakeVehicleStore {
	return &fakeVehicleStore{vehicles: make(map[uint]models.Vehicle), owners: owners}
}

func (f *fakeVehicleStore) Create(ctx context.Context, v *models.Vehicle) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	v.ID = f.seq
	v.CreatedAt = time.Now().Add(time.Duration(f.seq) * time.Millisecond)
	v.UpdatedAt = v.CreatedAt
	f.vehicles[v.ID] = *v
	return nil
}

func (f *fakeVehicleStore) FindByID(ctx context.Context, ownerID, id uint) (*models.Vehicle, error) {
	f.mu.Lock()
	v, ok := f.vehicles[id]
	f.mu.Unlock()

	if !ok || v.UserID != ownerID {
		return nil, apperr.NotFound("Vehicle not found")
	}
	v.User = f.owners.projection(v.UserID)
	return &v, nil
}

func (f *fakeVehicleStore) List(ctx context.Context, ownerID uint, status domainVehicle.Status) ([]models.Vehicle, error) {
	f.mu.Lock()
	var out []models.Vehicle
	for _, v := range f.vehicles {
		if v.UserID != ownerID {
			continue
		}
		if status != "" && v.Status != string(status) {
			continue
		}
		out = append(out, v)
	}
	f.mu.Unlock()

	for i := range out {
		out[i].User = f.owners.projection(out[i].UserID)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeVehicleStore) PlateExists(ctx context.Context, ownerID uint, plate string, excludeID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, v := range f.vehicles {
		if v.UserID == ownerID && v.Plate == plate && v.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeVehicleStore) Update(ctx context.Context, v *models.Vehicle) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.vehicles[v.ID]
	if !ok {
		return apperr.NotFound("Vehicle not found")
	}
	updated := *v
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = time.Now()
	updated.User = models.User{}
	f.vehicles[v.ID] = updated
	return nil
}

func (f *fakeVehicleStore) Delete(ctx context.Context, ownerID, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.vehicles[id]
	if !ok || v.UserID != ownerID {
		return apperr.NotFound("Vehicle not found")
	}
	delete(f.vehicles, id)
	return nil
}

type nopRecorder struct{}

func (nopRecorder) Record(ctx context.Context, entry models.AuditLog) error { return nil }

// ---------------------------------------------------------------------------
// Router

type testAPI struct {
	router     *gin.Engine
	users      *fakeUserStore
	vehicles   *fakeVehicleStore
	dispatcher *audit.Dispatcher
}

// newTestAPI assembles the API with in-memory stores, mirroring the
// production route layout minus the redis throttle and audit-log listing.
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	tokens, err := auth.NewTokenService(testSecret)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	users := newFakeUserStore()
	vehicles := newFakeVehicleStore(users)
	dispatcher := audit.NewDispatcher(nopRecorder{}, log)
	t.Cleanup(dispatcher.Close)

	authHandler := NewAuthHandler(
		ucAccount.NewRegister(users, tokens, dispatcher),
		ucAccount.NewLogin(users, tokens),
		ucAccount.NewProfile(users),
		ucAccount.NewDelete(users, dispatcher),
		log,
	)
	vehicleHandler := NewVehicleHandler(
		ucVehicle.NewCreate(vehicles, dispatcher),
		ucVehicle.NewGet(vehicles),
		ucVehicle.NewList(vehicles),
		ucVehicle.NewUpdate(vehicles, dispatcher),
		ucVehicle.NewDelete(vehicles, dispatcher),
		ucVehicle.NewSetStatus(vehicles, dispatcher),
		log,
	)

	r := gin.New()
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/me", middleware.TokenMiddleware(tokens), authHandler.Me)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens, users))
		{
			secured.DELETE("/auth/me", authHandler.DeleteMe)

			secured.GET("/vehicles", vehicleHandler.List)
			secured.POST("/vehicles", vehicleHandler.Create)
			secured.GET("/vehicles/:id", vehicleHandler.Get)
			secured.PUT("/vehicles/:id", vehicleHandler.Update)
			secured.DELETE("/vehicles/:id", vehicleHandler.Delete)
			secured.PATCH("/vehicles/:id/status", vehicleHandler.SetStatus)
		}
	}

	return &testAPI{router: r, users: users, vehicles: vehicles, dispatcher: dispatcher}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func (a *testAPI) registerUser(t *testing.T, name, email, password string) string {
	t.Helper()

	w := a.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": password,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d, body %s", email, w.Code, w.Body.String())
	}
	token, _ := decode(t, w)["token"].(string)
	if token == "" {
		t.Fatalf("register %s: no token in response", email)
	}
	return token
}
