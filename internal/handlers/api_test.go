package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestVehicleLifecycle(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerUser(t, "Ana", "ana@x.com", "secret1")

	// Create with a lowercase plate; the stored plate comes back normalized
	// and the status defaults to active.
	w := api.do(t, http.MethodPost, "/api/vehicles", token, gin.H{
		"name":  "Delivery Van",
		"plate": "abc1234",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status %d, body %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	vehicle := body["vehicle"].(map[string]any)
	if vehicle["plate"] != "ABC1234" {
		t.Errorf("plate = %v, want ABC1234", vehicle["plate"])
	}
	if vehicle["status"] != "active" {
		t.Errorf("status = %v, want active", vehicle["status"])
	}
	owner := vehicle["user"].(map[string]any)
	if owner["email"] != "ana@x.com" {
		t.Errorf("owner = %v", owner)
	}
	id := uint(vehicle["id"].(float64))

	// Archive it.
	w = api.do(t, http.MethodPatch, fmt.Sprintf("/api/vehicles/%d/status", id), token, gin.H{"status": "inactive"})
	if w.Code != http.StatusOK {
		t.Fatalf("patch status: %d, body %s", w.Code, w.Body.String())
	}
	body = decode(t, w)
	if body["message"] != "Vehicle archived successfully" {
		t.Errorf("message = %v", body["message"])
	}
	if body["vehicle"].(map[string]any)["status"] != "inactive" {
		t.Errorf("status after patch = %v", body["vehicle"].(map[string]any)["status"])
	}

	// Delete, then confirm it is gone.
	w = api.do(t, http.MethodDelete, fmt.Sprintf("/api/vehicles/%d", id), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: %d, body %s", w.Code, w.Body.String())
	}

	w = api.do(t, http.MethodGet, fmt.Sprintf("/api/vehicles/%d", id), token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete: %d, body %s", w.Code, w.Body.String())
	}
	if decode(t, w)["error"] != "Vehicle not found" {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestLoginWrongPassword(t *testing.T) {
	api := newTestAPI(t)
	api.registerUser(t, "Ana", "ana@x.com", "secret1")

	w := api.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "ana@x.com",
		"password": "wrong00",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if decode(t, w)["error"] != "Invalid credentials" {
		t.Errorf("body = %s", w.Body.String())
	}

	// Unknown email produces the identical response.
	w2 := api.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "ghost@x.com",
		"password": "secret1",
	})
	if w2.Code != http.StatusUnauthorized || decode(t, w2)["error"] != "Invalid credentials" {
		t.Errorf("unknown email: status %d, body %s", w2.Code, w2.Body.String())
	}
}

func TestUpdateInvalidPlateLeavesRecord(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerUser(t, "Ana", "ana@x.com", "secret1")

	w := api.do(t, http.MethodPost, "/api/vehicles", token, gin.H{"name": "Van", "plate": "ABC1234"})
	id := uint(decode(t, w)["vehicle"].(map[string]any)["id"].(float64))

	w = api.do(t, http.MethodPut, fmt.Sprintf("/api/vehicles/%d", id), token, gin.H{"plate": "AB"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if decode(t, w)["error"] != "Plate must have exactly 7 characters" {
		t.Errorf("body = %s", w.Body.String())
	}

	w = api.do(t, http.MethodGet, fmt.Sprintf("/api/vehicles/%d", id), token, nil)
	if got := decode(t, w)["vehicle"].(map[string]any)["plate"]; got != "ABC1234" {
		t.Errorf("plate after rejected update = %v", got)
	}
}

func TestCrossOwnerIsNotFound(t *testing.T) {
	api := newTestAPI(t)
	anaToken := api.registerUser(t, "Ana", "ana@x.com", "secret1")
	bobToken := api.registerUser(t, "Bob", "bob@x.com", "secret1")

	w := api.do(t, http.MethodPost, "/api/vehicles", anaToken, gin.H{"name": "Van", "plate": "ABC1234"})
	id := uint(decode(t, w)["vehicle"].(map[string]any)["id"].(float64))

	for _, probe := range []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, fmt.Sprintf("/api/vehicles/%d", id), nil},
		{http.MethodPut, fmt.Sprintf("/api/vehicles/%d", id), gin.H{"name": "Hijack"}},
		{http.MethodPatch, fmt.Sprintf("/api/vehicles/%d/status", id), gin.H{"status": "inactive"}},
		{http.MethodDelete, fmt.Sprintf("/api/vehicles/%d", id), nil},
	} {
		w := api.do(t, probe.method, probe.path, bobToken, probe.body)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s %s as other owner: status %d, body %s", probe.method, probe.path, w.Code, w.Body.String())
		}
	}

	// Bob's listing never includes Ana's vehicle.
	w = api.do(t, http.MethodGet, "/api/vehicles", bobToken, nil)
	if got := decode(t, w)["count"].(float64); got != 0 {
		t.Errorf("count = %v, want 0", got)
	}
}

func TestDuplicatePlateConflict(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerUser(t, "Ana", "ana@x.com", "secret1")
	bobToken := api.registerUser(t, "Bob", "bob@x.com", "secret1")

	w := api.do(t, http.MethodPost, "/api/vehicles", token, gin.H{"name": "Van", "plate": "ABC1234"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: %d", w.Code)
	}

	w = api.do(t, http.MethodPost, "/api/vehicles", token, gin.H{"name": "Second", "plate": "abc 1234"})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate: status %d, body %s", w.Code, w.Body.String())
	}
	if decode(t, w)["error"] != "Vehicle with this plate already exists" {
		t.Errorf("body = %s", w.Body.String())
	}

	// A different owner may register the same plate.
	w = api.do(t, http.MethodPost, "/api/vehicles", bobToken, gin.H{"name": "Bob Van", "plate": "ABC1234"})
	if w.Code != http.StatusCreated {
		t.Errorf("other owner same plate: status %d, body %s", w.Code, w.Body.String())
	}
}

func TestListStatusFilter(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerUser(t, "Ana", "ana@x.com", "secret1")

	api.do(t, http.MethodPost, "/api/vehicles", token, gin.H{"name": "Van A", "plate": "ABC1234"})
	api.do(t, http.MethodPost, "/api/vehicles", token, gin.H{"name": "Van B", "plate": "ABC1D23", "status": "inactive"})

	w := api.do(t, http.MethodGet, "/api/vehicles?status=inactive", token, nil)
	body := decode(t, w)
	if body["count"].(float64) != 1 {
		t.Fatalf("count = %v, body %s", body["count"], w.Body.String())
	}
	vehicles := body["vehicles"].([]any)
	if vehicles[0].(map[string]any)["plate"] != "ABC1D23" {
		t.Errorf("filtered list = %s", w.Body.String())
	}

	// Newest first without a filter.
	w = api.do(t, http.MethodGet, "/api/vehicles", token, nil)
	body = decode(t, w)
	all := body["vehicles"].([]any)
	if len(all) != 2 || all[0].(map[string]any)["plate"] != "ABC1D23" {
		t.Errorf("unfiltered list = %s", w.Body.String())
	}
}

func TestProfileAndAccountDeletion(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerUser(t, "Ana", "ana@x.com", "secret1")

	w := api.do(t, http.MethodGet, "/api/auth/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me: %d, body %s", w.Code, w.Body.String())
	}
	user := decode(t, w)["user"].(map[string]any)
	if user["email"] != "ana@x.com" || user["name"] != "Ana" {
		t.Errorf("user = %v", user)
	}
	if _, leaked := user["passwordHash"]; leaked {
		t.Error("profile leaks password hash")
	}

	w = api.do(t, http.MethodDelete, "/api/auth/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete me: %d, body %s", w.Code, w.Body.String())
	}

	// The token is still formally valid but points at a deleted account:
	// the profile read answers 404, while store-backed routes answer 401.
	w = api.do(t, http.MethodGet, "/api/auth/me", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("me after deletion: %d, body %s", w.Code, w.Body.String())
	}
	if decode(t, w)["error"] != "User not found" {
		t.Errorf("body = %s", w.Body.String())
	}

	w = api.do(t, http.MethodGet, "/api/vehicles", token, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("vehicles after deletion: %d, body %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["error"] != "User not found" || body["code"] != "AUTHENTICATION_FAILED" {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestMalformedRequests(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerUser(t, "Ana", "ana@x.com", "secret1")

	w := api.do(t, http.MethodGet, "/api/vehicles/abc", token, nil)
	if w.Code != http.StatusBadRequest || decode(t, w)["error"] != "Invalid vehicle ID" {
		t.Errorf("non-numeric id: status %d, body %s", w.Code, w.Body.String())
	}

	req := api.do(t, http.MethodPost, "/api/vehicles", token, "not an object")
	if req.Code != http.StatusBadRequest {
		t.Errorf("bad body: status %d, body %s", req.Code, req.Body.String())
	}

	w = api.do(t, http.MethodGet, "/api/vehicles", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("missing token: status %d, body %s", w.Code, w.Body.String())
	}
}

func TestRegisterDuplicateEmailHTTP(t *testing.T) {
	api := newTestAPI(t)
	api.registerUser(t, "Ana", "ana@x.com", "secret1")

	w := api.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Ana Again",
		"email":    "ana@x.com",
		"password": "secret2",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if decode(t, w)["error"] != "User with this email already exists" {
		t.Errorf("body = %s", w.Body.String())
	}
}
