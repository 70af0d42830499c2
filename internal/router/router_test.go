package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	imgstore "adoptme/internal/adapters/images"
	"adoptme/internal/config"
	"adoptme/internal/platform/logger"
	"adoptme/internal/router"
)

type envelope struct {
	Status  string          `json:"status"`
	Payload json.RawMessage `json:"payload"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func newServer(t *testing.T, mutate func(*config.Config)) *httptest.Server {
	t.Helper()

	cfg := config.Default()
	cfg.Images.Dir = t.TempDir()
	if mutate != nil {
		mutate(&cfg)
	}

	h, err := router.NewRouter(router.Options{Config: &cfg, Logger: logger.Nop(), HashCost: 4})
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_Adoption_ConcreteScenario(t *testing.T) {
	ts := newServer(t, nil)

	userID := registerUser(t, ts.URL, "ana@example.com")
	petID := createPet(t, ts.URL, "Firulais")

	// 1) adopción OK
	{
		st, env := doEnvelope(t, http.DefaultClient, ts.URL, "POST", "/api/adoptions/"+userID+"/"+petID, nil)
		if st != http.StatusOK || env.Status != "success" || env.Message != "Pet adopted" {
			t.Fatalf("expected 200 Pet adopted, got %d %+v", st, env)
		}
		if len(env.Payload) != 0 {
			t.Fatalf("adopt must not return payload, got %s", env.Payload)
		}
	}

	// 2) la mascota queda adoptada por el usuario
	{
		st, env := doEnvelope(t, http.DefaultClient, ts.URL, "GET", "/api/pets/"+petID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get pet, got %d", st)
		}
		var pet struct {
			Adopted bool    `json:"adopted"`
			Owner   *string `json:"owner"`
		}
		_ = json.Unmarshal(env.Payload, &pet)
		if !pet.Adopted || pet.Owner == nil || *pet.Owner != userID {
			t.Fatalf("expected adopted by %s, got %s", userID, env.Payload)
		}
	}

	// 3) el usuario la tiene en su colección
	{
		_, env := doEnvelope(t, http.DefaultClient, ts.URL, "GET", "/api/users/"+userID, nil)
		var u struct {
			Pets []struct {
				ID string `json:"_id"`
			} `json:"pets"`
		}
		_ = json.Unmarshal(env.Payload, &u)
		if len(u.Pets) != 1 || u.Pets[0].ID != petID {
			t.Fatalf("expected user pets [%s], got %s", petID, env.Payload)
		}
	}

	// 4) exactamente un registro de adopción
	adoptionID := ""
	{
		list := listAdoptions(t, ts.URL)
		if len(list) != 1 || list[0].Owner != userID || list[0].Pet != petID {
			t.Fatalf("expected one adoption {%s,%s}, got %+v", userID, petID, list)
		}
		adoptionID = list[0].ID
	}

	// 5) get by id
	{
		st, env := doEnvelope(t, http.DefaultClient, ts.URL, "GET", "/api/adoptions/"+adoptionID, nil)
		if st != http.StatusOK || !strings.Contains(string(env.Payload), adoptionID) {
			t.Fatalf("expected 200 get adoption, got %d %s", st, env.Payload)
		}
	}

	// 6) repetir el mismo request cae en "already adopted" y no crea registro
	{
		st, env := doEnvelope(t, http.DefaultClient, ts.URL, "POST", "/api/adoptions/"+userID+"/"+petID, nil)
		if st != http.StatusBadRequest || env.Error != "Pet is already adopted" {
			t.Fatalf("expected 400 already adopted, got %d %+v", st, env)
		}
		if n := len(listAdoptions(t, ts.URL)); n != 1 {
			t.Fatalf("expected still 1 adoption, got %d", n)
		}
	}
}

func TestHTTP_Adoption_NotFoundPaths(t *testing.T) {
	ts := newServer(t, nil)

	userID := registerUser(t, ts.URL, "ana@example.com")
	petID := createPet(t, ts.URL, "Michi")
	missing := "6f1c3f0e-9a4b-4d3c-8a47-2f0c3b7d9e10"

	cases := []struct {
		path    string
		status  int
		message string
	}{
		{"/api/adoptions/" + missing + "/" + petID, http.StatusNotFound, "user Not found"},
		{"/api/adoptions/invalid-id/" + petID, http.StatusNotFound, "user Not found"},
		{"/api/adoptions/invalid-id/invalid-id", http.StatusNotFound, "user Not found"},
		{"/api/adoptions/" + userID + "/" + missing, http.StatusNotFound, "Pet not found"},
		{"/api/adoptions/" + userID + "/invalid-id", http.StatusNotFound, "Pet not found"},
	}
	for _, c := range cases {
		st, env := doEnvelope(t, http.DefaultClient, ts.URL, "POST", c.path, nil)
		if st != c.status || env.Status != "error" || env.Error != c.message {
			t.Fatalf("POST %s: expected %d %q, got %d %+v", c.path, c.status, c.message, st, env)
		}
	}

	for _, id := range []string{missing, "invalid-id"} {
		st, env := doEnvelope(t, http.DefaultClient, ts.URL, "GET", "/api/adoptions/"+id, nil)
		if st != http.StatusNotFound || env.Error != "Adoption not found" {
			t.Fatalf("GET adoption %s: expected 404 Adoption not found, got %d %+v", id, st, env)
		}
	}

	if n := len(listAdoptions(t, ts.URL)); n != 0 {
		t.Fatalf("failed adoptions must not create records, got %d", n)
	}
}

func TestHTTP_Adoption_EmptyListIsArray(t *testing.T) {
	ts := newServer(t, nil)

	st, body := doReq(t, http.DefaultClient, ts.URL, "GET", "/api/adoptions", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	if strings.TrimSpace(string(body)) != `{"status":"success","payload":[]}` {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestHTTP_Adoption_ConcurrentRequestsSingleWinner(t *testing.T) {
	ts := newServer(t, nil)

	petID := createPet(t, ts.URL, "Popular")
	const n = 8
	userIDs := make([]string, n)
	for i := range userIDs {
		userIDs[i] = registerUser(t, ts.URL, "user"+string(rune('a'+i))+"@example.com")
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		statuses = map[int]int{}
	)
	for _, uid := range userIDs {
		wg.Add(1)
		go func(uid string) {
			defer wg.Done()
			res, err := http.Post(ts.URL+"/api/adoptions/"+uid+"/"+petID, "application/json", nil)
			if err != nil {
				t.Errorf("post adoption: %v", err)
				return
			}
			_ = res.Body.Close()
			mu.Lock()
			statuses[res.StatusCode]++
			mu.Unlock()
		}(uid)
	}
	wg.Wait()

	if statuses[http.StatusOK] != 1 || statuses[http.StatusBadRequest] != n-1 {
		t.Fatalf("expected 1 winner and %d rejections, got %v", n-1, statuses)
	}
	if got := len(listAdoptions(t, ts.URL)); got != 1 {
		t.Fatalf("expected 1 adoption record, got %d", got)
	}
}

func TestHTTP_Sessions_LoginCurrentLogout(t *testing.T) {
	ts := newServer(t, nil)

	jar, _ := cookiejar.New(nil)
	client := &http.Client{Jar: jar}

	_ = registerUser(t, ts.URL, "ana@example.com")

	{
		st, env := doEnvelope(t, client, ts.URL, "POST", "/api/sessions/login", map[string]any{"email": "ana@example.com", "password": "wrong"})
		if st != http.StatusBadRequest || env.Error != "Incorrect password" {
			t.Fatalf("expected 400 Incorrect password, got %d %+v", st, env)
		}
	}
	{
		st, env := doEnvelope(t, client, ts.URL, "POST", "/api/sessions/login", map[string]any{"email": "nobody@example.com", "password": "secret"})
		if st != http.StatusNotFound || env.Error != "User doesn't exist" {
			t.Fatalf("expected 404 User doesn't exist, got %d %+v", st, env)
		}
	}
	{
		st, env := doEnvelope(t, client, ts.URL, "POST", "/api/sessions/login", map[string]any{"email": "ana@example.com", "password": "secret"})
		if st != http.StatusOK || env.Message != "Logged in" {
			t.Fatalf("expected 200 Logged in, got %d %+v", st, env)
		}
	}
	{
		st, env := doEnvelope(t, client, ts.URL, "GET", "/api/sessions/current", nil)
		if st != http.StatusOK || !strings.Contains(string(env.Payload), `"email":"ana@example.com"`) {
			t.Fatalf("expected current user, got %d %s", st, env.Payload)
		}
	}
	{
		st, env := doEnvelope(t, client, ts.URL, "POST", "/api/sessions/logout", nil)
		if st != http.StatusOK || env.Message != "Logged out" {
			t.Fatalf("expected 200 Logged out, got %d %+v", st, env)
		}
	}
	{
		st, env := doEnvelope(t, client, ts.URL, "GET", "/api/sessions/current", nil)
		if st != http.StatusUnauthorized || env.Error != "Not authenticated" {
			t.Fatalf("expected 401 after logout, got %d %+v", st, env)
		}
	}
}

func TestHTTP_Register_Duplicate(t *testing.T) {
	ts := newServer(t, nil)
	_ = registerUser(t, ts.URL, "ana@example.com")

	st, env := doEnvelope(t, http.DefaultClient, ts.URL, "POST", "/api/sessions/register", map[string]any{
		"first_name": "Ana", "last_name": "Otra", "email": "ana@example.com", "password": "x",
	})
	if st != http.StatusBadRequest || env.Error != "User already exists" {
		t.Fatalf("expected 400 User already exists, got %d %+v", st, env)
	}
}

func TestHTTP_Pets_WithImage(t *testing.T) {
	ts := newServer(t, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("name", "Foto")
	_ = mw.WriteField("specie", "Gato")
	_ = mw.WriteField("birthDate", "2021-05-01")
	fw, _ := mw.CreateFormFile("image", "foto.png")
	_, _ = fw.Write([]byte("fake-png"))
	_ = mw.Close()

	req, _ := http.NewRequest("POST", ts.URL+"/api/pets/withimage", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	var env envelope
	_ = json.NewDecoder(res.Body).Decode(&env)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d %+v", res.StatusCode, env)
	}
	var pet struct {
		Image string `json:"image"`
	}
	_ = json.Unmarshal(env.Payload, &pet)
	if !strings.HasPrefix(pet.Image, "/img/") || !strings.HasSuffix(pet.Image, ".png") {
		t.Fatalf("unexpected image ref %q", pet.Image)
	}

	st, body := doReq(t, http.DefaultClient, ts.URL, "GET", pet.Image, nil)
	if st != http.StatusOK || string(body) != "fake-png" {
		t.Fatalf("expected stored image, got %d %q", st, body)
	}
}

func TestHTTP_ServesImagesFromProvidedFSStore(t *testing.T) {
	cfg := config.Default()
	cfg.Images.Dir = t.TempDir() // no debe usarse

	store, err := imgstore.NewFSStore(t.TempDir(), "/img")
	if err != nil {
		t.Fatalf("new fs store: %v", err)
	}
	ref, err := store.Put(context.Background(), "perro.jpg", strings.NewReader("jpg-bytes"), 9, "image/jpeg")
	if err != nil {
		t.Fatalf("put: %v", err)
	}

	h, err := router.NewRouter(router.Options{Config: &cfg, Logger: logger.Nop(), Images: store, HashCost: 4})
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	ts := httptest.NewServer(h)
	defer ts.Close()

	st, body := doReq(t, http.DefaultClient, ts.URL, "GET", ref, nil)
	if st != http.StatusOK || string(body) != "jpg-bytes" {
		t.Fatalf("expected image from store dir, got %d %q", st, body)
	}
}

func TestHTTP_Platform(t *testing.T) {
	ts := newServer(t, nil)

	res, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	_ = res.Body.Close()
	if res.StatusCode != http.StatusOK || res.Header.Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("unexpected health response %d %v", res.StatusCode, res.Header)
	}

	_, _ = doReq(t, http.DefaultClient, ts.URL, "GET", "/api/adoptions", nil)
	st, body := doReq(t, http.DefaultClient, ts.URL, "GET", "/metrics", nil)
	if st != http.StatusOK || !strings.Contains(string(body), `adoptme_http_requests_total{method="GET",route="/api/adoptions`) {
		t.Fatalf("metrics missing adoption route: %d", st)
	}

	st, body = doReq(t, http.DefaultClient, ts.URL, "GET", "/api/docs/doc.json", nil)
	if st != http.StatusOK || !strings.Contains(string(body), "/api/adoptions/{uid}/{pid}") {
		t.Fatalf("expected swagger doc, got %d", st)
	}

	st, env := doEnvelope(t, http.DefaultClient, ts.URL, "GET", "/api/nope", nil)
	if st != http.StatusNotFound || env.Error != "Route not found" {
		t.Fatalf("expected 404 Route not found, got %d %+v", st, env)
	}
}

func TestHTTP_MocksDisabled(t *testing.T) {
	ts := newServer(t, func(c *config.Config) { c.Mocks.Enabled = false })

	st, _ := doReq(t, http.DefaultClient, ts.URL, "GET", "/api/mocks/mockingpets", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 with mocks disabled, got %d", st)
	}
}

func TestHTTP_MocksThenAdopt(t *testing.T) {
	ts := newServer(t, nil)

	st, env := doEnvelope(t, http.DefaultClient, ts.URL, "POST", "/api/mocks/generateData", map[string]any{"users": 2, "pets": 2})
	if st != http.StatusOK {
		t.Fatalf("expected 200 generateData, got %d %+v", st, env)
	}

	_, usersEnv := doEnvelope(t, http.DefaultClient, ts.URL, "GET", "/api/users", nil)
	_, petsEnv := doEnvelope(t, http.DefaultClient, ts.URL, "GET", "/api/pets", nil)
	var us, ps []struct {
		ID string `json:"_id"`
	}
	_ = json.Unmarshal(usersEnv.Payload, &us)
	_ = json.Unmarshal(petsEnv.Payload, &ps)
	if len(us) != 2 || len(ps) != 2 {
		t.Fatalf("expected 2 users and 2 pets, got %d/%d", len(us), len(ps))
	}

	st, env = doEnvelope(t, http.DefaultClient, ts.URL, "POST", "/api/adoptions/"+us[0].ID+"/"+ps[1].ID, nil)
	if st != http.StatusOK || env.Message != "Pet adopted" {
		t.Fatalf("expected adoption of mock pet, got %d %+v", st, env)
	}
}

func TestHTTP_MocksConcurrentRequests(t *testing.T) {
	ts := newServer(t, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			res, err := http.Get(ts.URL + "/api/mocks/mockingpets")
			if err != nil {
				t.Errorf("mockingpets: %v", err)
				return
			}
			_ = res.Body.Close()
			if res.StatusCode != http.StatusOK {
				t.Errorf("mockingpets: expected 200, got %d", res.StatusCode)
			}
		}()
		go func() {
			defer wg.Done()
			res, err := http.Get(ts.URL + "/api/mocks/mockingusers")
			if err != nil {
				t.Errorf("mockingusers: %v", err)
				return
			}
			_ = res.Body.Close()
			if res.StatusCode != http.StatusOK {
				t.Errorf("mockingusers: expected 200, got %d", res.StatusCode)
			}
		}()
	}
	wg.Wait()
}

type crudCase struct {
	name    string
	method  string
	path    string
	body    any
	status  int
	message string // message si status 200, error si no
}

func runCRUDCases(t *testing.T, baseURL string, cases []crudCase) {
	t.Helper()

	for _, c := range cases {
		st, env := doEnvelope(t, http.DefaultClient, baseURL, c.method, c.path, c.body)
		got := env.Error
		if st == http.StatusOK {
			got = env.Message
		}
		if st != c.status || got != c.message {
			t.Fatalf("%s: %s %s: expected %d %q, got %d %+v", c.name, c.method, c.path, c.status, c.message, st, env)
		}
	}
}

func TestHTTP_Users_CRUD(t *testing.T) {
	ts := newServer(t, nil)

	anaID := registerUser(t, ts.URL, "ana@example.com")
	_ = registerUser(t, ts.URL, "bob@example.com")
	missing := "6f1c3f0e-9a4b-4d3c-8a47-2f0c3b7d9e10"

	runCRUDCases(t, ts.URL, []crudCase{
		{"rename", "PUT", "/api/users/" + anaID, map[string]any{"first_name": "Anita"}, http.StatusOK, "User updated"},
		{"promote", "PUT", "/api/users/" + anaID, map[string]any{"role": "admin"}, http.StatusOK, "User updated"},
		{"bad role", "PUT", "/api/users/" + anaID, map[string]any{"role": "superuser"}, http.StatusBadRequest, "Invalid role"},
		{"email taken", "PUT", "/api/users/" + anaID, map[string]any{"email": "BOB@example.com"}, http.StatusBadRequest, "Email already in use"},
		{"blank name", "PUT", "/api/users/" + anaID, map[string]any{"last_name": "  "}, http.StatusBadRequest, "Incomplete values"},
		{"update missing", "PUT", "/api/users/" + missing, map[string]any{"first_name": "X"}, http.StatusNotFound, "User not found"},
		{"update malformed id", "PUT", "/api/users/invalid-id", map[string]any{"first_name": "X"}, http.StatusNotFound, "User not found"},
	})

	st, env := doEnvelope(t, http.DefaultClient, ts.URL, "GET", "/api/users/"+anaID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get user, got %d", st)
	}
	var u struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Role      string `json:"role"`
		Password  string `json:"password"`
	}
	_ = json.Unmarshal(env.Payload, &u)
	if u.FirstName != "Anita" || u.LastName != "Pérez" || u.Email != "ana@example.com" || u.Role != "admin" {
		t.Fatalf("unexpected user after updates %s", env.Payload)
	}
	if u.Password != "" || strings.Contains(string(env.Payload), "password") {
		t.Fatalf("user payload must not expose password: %s", env.Payload)
	}

	runCRUDCases(t, ts.URL, []crudCase{
		{"delete", "DELETE", "/api/users/" + anaID, nil, http.StatusOK, "User deleted"},
		{"delete again", "DELETE", "/api/users/" + anaID, nil, http.StatusNotFound, "User not found"},
		{"get deleted", "GET", "/api/users/" + anaID, nil, http.StatusNotFound, "User not found"},
		{"delete malformed id", "DELETE", "/api/users/invalid-id", nil, http.StatusNotFound, "User not found"},
	})
}

func TestHTTP_Pets_CRUD(t *testing.T) {
	ts := newServer(t, nil)

	petID := createPet(t, ts.URL, "Firulais")
	userID := registerUser(t, ts.URL, "ana@example.com")
	missing := "6f1c3f0e-9a4b-4d3c-8a47-2f0c3b7d9e10"

	runCRUDCases(t, ts.URL, []crudCase{
		{"create incomplete", "POST", "/api/pets", map[string]any{"name": "Solo"}, http.StatusBadRequest, "Incomplete values"},
		{"rename ignoring adoption fields", "PUT", "/api/pets/" + petID, map[string]any{
			"name":    "Rex",
			"adopted": true,
			"owner":   userID,
		}, http.StatusOK, "pet updated"},
		{"bad birthDate", "PUT", "/api/pets/" + petID, map[string]any{"birthDate": "ayer"}, http.StatusBadRequest, "birthDate must be YYYY-MM-DD"},
		{"blank specie", "PUT", "/api/pets/" + petID, map[string]any{"specie": " "}, http.StatusBadRequest, "Incomplete values"},
		{"update missing", "PUT", "/api/pets/" + missing, map[string]any{"name": "X"}, http.StatusNotFound, "Pet not found"},
		{"update malformed id", "PUT", "/api/pets/invalid-id", map[string]any{"name": "X"}, http.StatusNotFound, "Pet not found"},
	})

	st, env := doEnvelope(t, http.DefaultClient, ts.URL, "GET", "/api/pets/"+petID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get pet, got %d", st)
	}
	var pet struct {
		Name    string  `json:"name"`
		Adopted bool    `json:"adopted"`
		Owner   *string `json:"owner"`
	}
	_ = json.Unmarshal(env.Payload, &pet)
	if pet.Name != "Rex" || pet.Adopted || pet.Owner != nil {
		t.Fatalf("update must only touch editable fields, got %s", env.Payload)
	}

	// la mascota sigue disponible para adoptar
	st, env = doEnvelope(t, http.DefaultClient, ts.URL, "POST", "/api/adoptions/"+userID+"/"+petID, nil)
	if st != http.StatusOK || env.Message != "Pet adopted" {
		t.Fatalf("expected adoption after update, got %d %+v", st, env)
	}

	runCRUDCases(t, ts.URL, []crudCase{
		{"delete", "DELETE", "/api/pets/" + petID, nil, http.StatusOK, "pet deleted"},
		{"delete again", "DELETE", "/api/pets/" + petID, nil, http.StatusNotFound, "Pet not found"},
		{"get deleted", "GET", "/api/pets/" + petID, nil, http.StatusNotFound, "Pet not found"},
		{"delete malformed id", "DELETE", "/api/pets/invalid-id", nil, http.StatusNotFound, "Pet not found"},
	})
}

type adoptionView struct {
	ID    string `json:"_id"`
	Owner string `json:"owner"`
	Pet   string `json:"pet"`
}

func listAdoptions(t *testing.T, baseURL string) []adoptionView {
	t.Helper()

	st, env := doEnvelope(t, http.DefaultClient, baseURL, "GET", "/api/adoptions", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list adoptions, got %d", st)
	}
	var out []adoptionView
	if err := json.Unmarshal(env.Payload, &out); err != nil {
		t.Fatalf("decode adoptions: %v", err)
	}
	return out
}

func registerUser(t *testing.T, baseURL, email string) string {
	t.Helper()

	st, env := doEnvelope(t, http.DefaultClient, baseURL, "POST", "/api/sessions/register", map[string]any{
		"first_name": "Ana",
		"last_name":  "Pérez",
		"email":      email,
		"password":   "secret",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 register, got %d %+v", st, env)
	}

	var id string
	_ = json.Unmarshal(env.Payload, &id)
	if id == "" {
		t.Fatalf("register: missing id %+v", env)
	}
	return id
}

func createPet(t *testing.T, baseURL, name string) string {
	t.Helper()

	st, env := doEnvelope(t, http.DefaultClient, baseURL, "POST", "/api/pets", map[string]any{
		"name":      name,
		"specie":    "Perro",
		"birthDate": "2020-01-01",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 create pet, got %d %+v", st, env)
	}

	var resp struct {
		ID      string `json:"_id"`
		Adopted bool   `json:"adopted"`
	}
	_ = json.Unmarshal(env.Payload, &resp)
	if resp.ID == "" || resp.Adopted {
		t.Fatalf("create pet: unexpected payload %s", env.Payload)
	}
	return resp.ID
}

func doEnvelope(t *testing.T, client *http.Client, baseURL, method, path string, body any) (int, envelope) {
	t.Helper()

	st, raw := doReq(t, client, baseURL, method, path, body)
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("%s %s: invalid envelope %q: %v", method, path, raw, err)
	}
	return st, env
}

func doReq(t *testing.T, client *http.Client, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
