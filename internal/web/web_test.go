package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bookit-web/config"
	"bookit-web/internal/apiclient"
	"bookit-web/internal/model"
	"bookit-web/internal/probe"
	"bookit-web/internal/sample"
)

type stubResponse struct {
	status int
	body   string
}

// stubBackend answers by "METHOD /path" and records request bodies.
type stubBackend struct {
	mu       sync.Mutex
	routes   map[string]stubResponse
	received map[string]string
	hits     int
}

func newStubBackend() *stubBackend {
	return &stubBackend{routes: map[string]stubResponse{}, received: map[string]string{}}
}

func (b *stubBackend) on(method, path string, status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[method+" "+path] = stubResponse{status, body}
}

func (b *stubBackend) onJSON(t *testing.T, method, path string, v any) {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	b.on(method, path, http.StatusOK, string(data))
}

func (b *stubBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	key := r.Method + " " + r.URL.Path

	b.mu.Lock()
	b.hits++
	b.received[key] = string(body)
	resp, ok := b.routes[key]
	b.mu.Unlock()

	if !ok {
		resp = stubResponse{http.StatusNotFound, "no route"}
	}
	w.WriteHeader(resp.status)
	_, _ = io.WriteString(w, resp.body)
}

func (b *stubBackend) body(key string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.received[key]
}

func (b *stubBackend) hitCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits
}

type harness struct {
	backend *stubBackend
	client  *apiclient.Client
	router  *gin.Engine
}

func newHarness(t *testing.T) *harness {
	gin.SetMode(gin.TestMode)

	backend := newStubBackend()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.API.BaseURL = srv.URL
	cfg.Server.RateLimitPerSec = 1000
	cfg.Server.RateLimitBurst = 1000

	reg := prometheus.NewRegistry()
	client, err := apiclient.New(cfg.API, zap.NewNop(), apiclient.WithRegisterer(reg))
	require.NoError(t, err)

	router, err := NewRouter(NewServer(client, cfg, zap.NewNop()), reg)
	require.NoError(t, err)

	return &harness{backend: backend, client: client, router: router}
}

func (h *harness) get(target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func (h *harness) post(target string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.router.ServeHTTP(w, req)
	return w
}

func TestHome(t *testing.T) {
	h := newHarness(t)

	w := h.get("/")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Streamline Your Meeting Room Management")
	assert.Contains(t, body, `data-preloader-delay="1500"`)
	assert.Contains(t, body, `data-preloader-fade="500"`)
	assert.Contains(t, body, `data-scroll-threshold="300"`)
	assert.Contains(t, body, `class="sidebar"`)
	assert.NotContains(t, body, `class="faq-item active"`)
	assert.Equal(t, 0, h.backend.hitCount())
}

func TestHome_FAQAndSidebarState(t *testing.T) {
	h := newHarness(t)

	body := h.get("/?faq=1&sidebar=open").Body.String()

	assert.Contains(t, body, `class="sidebar active"`)
	assert.Contains(t, body, `class="faq-item active" data-faq="1"`)
	assert.Contains(t, body, `href="/#faq"`)
	assert.Contains(t, body, `href="/?faq=0#faq"`)

	body = h.get("/?faq=99").Body.String()
	assert.NotContains(t, body, `class="faq-item active"`)
}

func TestHome_IsCached(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, "miss", h.get("/").Header().Get("X-Bookit-Cache"))
	assert.Equal(t, "hit", h.get("/").Header().Get("X-Bookit-Cache"))
}

func TestAdminDashboard_Live(t *testing.T) {
	h := newHarness(t)
	h.backend.onJSON(t, http.MethodGet, "/admin/getAllRoom", []model.Room{sample.Rooms()[0]})

	w := h.get("/admin")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Bhimtal")
	assert.Contains(t, body, "Coffee Machine, Wifi")
	assert.Contains(t, body, `<td class="total-cost">120</td>`)
	assert.NotContains(t, body, "Showing sample data")
}

func TestAdminDashboard_FallsBackWhenBackendFails(t *testing.T) {
	h := newHarness(t)
	h.backend.on(http.MethodGet, "/admin/getAllRoom", http.StatusInternalServerError, "boom")

	w := h.get("/admin")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "The backend could not be reached. Showing sample data.")
	for _, r := range sample.Rooms() {
		assert.Contains(t, body, r.RoomName)
	}
}

func TestDataSourceSwitch(t *testing.T) {
	h := newHarness(t)

	w := h.post("/admin/data-source", url.Values{"source": {"sample"}, "return_to": {"/admin/amenities"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/amenities", w.Header().Get("Location"))
	assert.Equal(t, apiclient.DataSourceSample, h.client.DataSource())

	body := h.get("/admin").Body.String()
	assert.Contains(t, body, "Showing sample data.")
	assert.Contains(t, body, "Use live backend")
	assert.Equal(t, 0, h.backend.hitCount())

	w = h.post("/admin/data-source", url.Values{"source": {"backend"}, "return_to": {"//evil.example"}})
	assert.Equal(t, "/admin", w.Header().Get("Location"))
	assert.Equal(t, apiclient.DataSourceBackend, h.client.DataSource())

	w = h.post("/admin/data-source", url.Values{"source": {"cloud"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAmenities_Empty(t *testing.T) {
	h := newHarness(t)
	h.backend.on(http.MethodGet, "/admin/getAllAmenities", http.StatusOK, "[]")

	body := h.get("/admin/amenities").Body.String()

	assert.Contains(t, body, "No amenities found")
}

func TestAmenities_Table(t *testing.T) {
	h := newHarness(t)
	h.backend.on(http.MethodGet, "/admin/getAllAmenities", http.StatusOK,
		`[{"amenity_id":"1","amenityName":"WATER_DISPENSER","creditCost":5,"is_active":false},
		  {"amenity_id":"2","name":"TV","creditsScore":10}]`)

	body := h.get("/admin/amenities").Body.String()

	assert.Contains(t, body, "Water Dispenser")
	assert.Contains(t, body, "Inactive")
	assert.Contains(t, body, "<td>Tv</td>")
	assert.Contains(t, body, "Active")
}

func TestCreateAmenity(t *testing.T) {
	h := newHarness(t)
	h.backend.on(http.MethodPost, "/admin/addAmenitie", http.StatusOK,
		`{"amenity_id":"n1","amenityName":"COFFEE_MACHINE","creditCost":10,"is_active":true}`)

	w := h.post("/admin/amenities/new", url.Values{"amenityName": {"coffee machine"}, "creditCost": {"10"}})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/amenities?notice=Amenity+Coffee+Machine+added", w.Header().Get("Location"))
	sent := h.backend.body("POST /admin/addAmenitie")
	assert.Contains(t, sent, `"amenityName":"COFFEE_MACHINE"`)
	assert.Contains(t, sent, `"creditCost":10`)
}

func TestCreateAmenity_ShowsBackendError(t *testing.T) {
	h := newHarness(t)
	h.backend.on(http.MethodPost, "/admin/addAmenitie", http.StatusConflict, "Amenity already exists")

	w := h.post("/admin/amenities/new", url.Values{"amenityName": {"WIFI"}, "creditCost": {"10"}})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `<div class="alert alert-danger">Amenity already exists</div>`)
	assert.Contains(t, w.Body.String(), `value="WIFI"`)
}

func TestCreateAmenity_Validation(t *testing.T) {
	h := newHarness(t)

	w := h.post("/admin/amenities/new", url.Values{"amenityName": {"  "}, "creditCost": {"10"}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Please enter an amenity name.")

	w = h.post("/admin/amenities/new", url.Values{"amenityName": {"TV"}, "creditCost": {"-3"}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Credits must be a whole number of zero or more.")
	assert.Equal(t, 0, h.backend.hitCount())
}

func TestForms_RejectUnreadableBody(t *testing.T) {
	h := newHarness(t)

	for _, target := range []string{"/admin/amenities/new", "/admin/rooms/new"} {
		req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(`{"roomName":`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Contains(t, w.Body.String(), "The form could not be read.", target)
	}
	assert.Empty(t, h.backend.body("POST /admin/addAmenitie"))
	assert.Empty(t, h.backend.body("POST /admin/createRoom"))
}

func TestDeleteAmenity(t *testing.T) {
	h := newHarness(t)
	h.backend.on(http.MethodDelete, "/admin/amenities/a-1", http.StatusOK, "Amenity deleted successfully")

	w := h.post("/admin/amenities/a-1/delete", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/amenities?notice=Amenity+deleted+successfully", w.Header().Get("Location"))

	w = h.post("/admin/amenities/a-2/delete", nil)
	assert.Equal(t, "/admin/amenities?error=no+route", w.Header().Get("Location"))
}

func TestRoomForm_Preview(t *testing.T) {
	h := newHarness(t)
	h.backend.onJSON(t, http.MethodGet, "/admin/getAllAmenities", sample.Amenities())

	w := h.post("/admin/rooms/new", url.Values{
		"roomName":        {"Almora"},
		"roomType":        {"Meeting"},
		"seatingCapacity": {"8"},
		"perHourCost":     {"100"},
		"amenities":       {"WIFI", "TV"},
		"action":          {"preview"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<strong id="costPreview">120</strong>`)
	assert.Contains(t, body, `value="WIFI" checked`)
	assert.Contains(t, body, `<option value="Meeting" selected>`)
	assert.Empty(t, h.backend.body("POST /admin/createRoom"))
}

func TestRoomForm_Create(t *testing.T) {
	h := newHarness(t)
	h.backend.onJSON(t, http.MethodGet, "/admin/getAllAmenities", sample.Amenities())
	h.backend.on(http.MethodPost, "/admin/createRoom", http.StatusCreated, `{"roomId":"r-1","roomName":"Almora"}`)

	w := h.post("/admin/rooms/new", url.Values{
		"roomName":        {"Almora"},
		"roomType":        {"Huddle"},
		"seatingCapacity": {"4"},
		"perHourCost":     {"40"},
		"amenities":       {"WHITEBOARD"},
		"action":          {"create"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin?notice=Room+Almora+created", w.Header().Get("Location"))

	var sent model.RoomInput
	require.NoError(t, json.Unmarshal([]byte(h.backend.body("POST /admin/createRoom")), &sent))
	assert.Equal(t, model.RoomTypeHuddle, sent.RoomType)
	assert.Equal(t, []string{"WHITEBOARD"}, sent.Amenities)
}

func TestRoomForm_Validation(t *testing.T) {
	h := newHarness(t)
	h.backend.onJSON(t, http.MethodGet, "/admin/getAllAmenities", sample.Amenities())

	w := h.post("/admin/rooms/new", url.Values{"roomName": {"Almora"}, "roomType": {"Closet"}, "seatingCapacity": {"4"}})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Please choose a room type.")
}

func TestDeleteRoom(t *testing.T) {
	h := newHarness(t)
	h.backend.on(http.MethodDelete, "/admin/rooms/r-1", http.StatusOK, "Room deleted successfully")

	w := h.post("/admin/rooms/r-1/delete", nil)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin?notice=Room+deleted+successfully", w.Header().Get("Location"))
}

func TestManagerProfile_FallsBack(t *testing.T) {
	h := newHarness(t)

	body := h.get("/manager").Body.String()

	assert.Contains(t, body, "John Doe")
	assert.Contains(t, body, `<dd id="availableCredits">10</dd>`)
	assert.Contains(t, body, "The backend could not be reached.")
}

func TestDataEnvelopes(t *testing.T) {
	h := newHarness(t)
	h.backend.on(http.MethodGet, "/admin/getAllRoom", http.StatusBadGateway, "")
	h.backend.onJSON(t, http.MethodGet, "/manager/profile", model.ManagerProfile{UserID: "u-9", Name: "Asha"})

	var rooms apiclient.Envelope[[]model.Room]
	w := h.get("/data/rooms")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	assert.True(t, rooms.Success)
	assert.Equal(t, apiclient.SourceFallback, rooms.Source)
	assert.Len(t, rooms.Data, len(sample.Rooms()))

	var profile apiclient.Envelope[model.ManagerProfile]
	require.NoError(t, json.Unmarshal(h.get("/data/profile").Body.Bytes(), &profile))
	assert.Equal(t, apiclient.SourceLive, profile.Source)
	assert.Equal(t, "Asha", profile.Data.Name)

	var amenities apiclient.Envelope[[]model.Amenity]
	require.NoError(t, json.Unmarshal(h.get("/data/amenities").Body.Bytes(), &amenities))
	assert.True(t, amenities.Success)
	assert.Equal(t, apiclient.SourceFallback, amenities.Source)
}

func TestRoomCostData(t *testing.T) {
	h := newHarness(t)

	var env apiclient.Envelope[roomCostView]
	w := h.get("/data/room-cost?base=300&amenities=PROJECTOR,CONFERENCE_CALL,TV,WIFI,COFFEE_MACHINE")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, 350, env.Data.Total)

	w = h.get("/data/room-cost?base=80")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, 80, env.Data.Total)

	assert.Equal(t, apiclient.SourceFallback, env.Source)

	w = h.get("/data/room-cost?base=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoomCostData_MatchesFormPreview(t *testing.T) {
	h := newHarness(t)
	h.backend.onJSON(t, http.MethodGet, "/admin/getAllAmenities", []model.Amenity{
		{AmenityID: "a-1", AmenityName: "SPEAKER_PHONE", CreditCost: 3, IsActive: true},
		{AmenityID: "a-2", AmenityName: "WIFI", CreditCost: 25, IsActive: true},
		{AmenityID: "a-3", AmenityName: "TV", CreditCost: 40, IsActive: false},
	})

	w := h.post("/admin/rooms/new", url.Values{
		"roomName":        {"Almora"},
		"roomType":        {"Meeting"},
		"seatingCapacity": {"8"},
		"perHourCost":     {"100"},
		"amenities":       {"WIFI", "SPEAKER_PHONE", "TV"},
		"action":          {"preview"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<strong id="costPreview">128</strong>`)

	var env apiclient.Envelope[roomCostView]
	w = h.get("/data/room-cost?base=100&amenities=WIFI,SPEAKER_PHONE,TV")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, 128, env.Data.Total)
	assert.Equal(t, apiclient.SourceLive, env.Source)
}

func TestLogoutHealthAndMetrics(t *testing.T) {
	h := newHarness(t)

	w := h.get("/logout")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	assert.Equal(t, "ok", h.get("/healthz").Body.String())

	h.get("/admin")
	metrics := h.get("/metrics").Body.String()
	assert.Contains(t, metrics, "bookit_client_fallbacks_total")
}

type downPinger struct{}

func (downPinger) Ping(context.Context) error { return errors.New("dial tcp: connection refused") }

func TestAdminPages_ShowProbeStatus(t *testing.T) {
	h := newHarness(t)
	svc := probe.NewService(downPinger{}, time.Minute, time.Second, zap.NewNop(), nil)
	svc.CheckOnce(context.Background())

	cfg := config.Default()
	router, err := NewRouter(NewServer(h.client, cfg, zap.NewNop()).WithProbe(svc), nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/manager", nil))

	assert.Contains(t, w.Body.String(), "unreachable")
	assert.Contains(t, w.Body.String(), `title="dial tcp: connection refused"`)
}
