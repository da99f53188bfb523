package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vivekjangir90/mobile-repair-shop/internal/model"
	customersvc "github.com/Vivekjangir90/mobile-repair-shop/internal/service/customer"
	dashboardsvc "github.com/Vivekjangir90/mobile-repair-shop/internal/service/dashboard"
	repairsvc "github.com/Vivekjangir90/mobile-repair-shop/internal/service/repair"
)

// Stub services backed by canned data. The handler tests exercise
// routing, status mapping and payload shapes, not business rules.

type stubDashboard struct {
	overview *dashboardsvc.Overview
	err      error
}

func (s *stubDashboard) Overview(context.Context) (*dashboardsvc.Overview, error) {
	return s.overview, s.err
}

type stubCustomers struct {
	customers []*model.Customer
	createdID string
	summary   *model.CustomerSummary
	err       error
}

func (s *stubCustomers) List(context.Context, string) ([]*model.Customer, error) {
	return s.customers, s.err
}

func (s *stubCustomers) Create(context.Context, customersvc.CreateCustomerParams) (string, error) {
	return s.createdID, s.err
}

func (s *stubCustomers) FindByPhone(context.Context, string) (*model.Customer, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.customers[0], nil
}

func (s *stubCustomers) Summary(context.Context, string) (*model.CustomerSummary, error) {
	return s.summary, s.err
}

type stubRepairs struct {
	jobs      []*model.RepairJob
	createdID string
	photoURL  string
	err       error

	gotUpdate repairsvc.UpdateJobParams
}

func (s *stubRepairs) List(context.Context, string) ([]*model.RepairJob, error) {
	return s.jobs, s.err
}

func (s *stubRepairs) Create(context.Context, repairsvc.CreateJobParams) (string, error) {
	return s.createdID, s.err
}

func (s *stubRepairs) Update(_ context.Context, _ string, params repairsvc.UpdateJobParams) error {
	s.gotUpdate = params
	return s.err
}

func (s *stubRepairs) AttachPhoto(context.Context, string, string, io.Reader) (string, error) {
	return s.photoURL, s.err
}

type stubBilling struct {
	sales     []*model.Sale
	createdID string
	err       error
}

func (s *stubBilling) Sales(context.Context) ([]*model.Sale, error) { return s.sales, s.err }

func (s *stubBilling) RecordSale(context.Context, int64) (string, error) {
	return s.createdID, s.err
}

type stubInventory struct {
	overview *model.InventoryOverview
	err      error
}

func (s *stubInventory) Overview(context.Context) (*model.InventoryOverview, error) {
	return s.overview, s.err
}

func (s *stubInventory) UpdateStock(context.Context, string, int64) error { return s.err }

type stubPhotos struct {
	content string
	err     error
}

// Download writes content before reporting err, so tests can model a
// transfer that fails partway through.
func (s *stubPhotos) Download(_ context.Context, _ string, w io.Writer) error {
	if _, err := io.WriteString(w, s.content); err != nil {
		return err
	}
	return s.err
}

type stubAppState struct {
	view       model.View
	refreshErr error
}

func (s *stubAppState) Refresh(context.Context) error { return s.refreshErr }
func (s *stubAppState) SetView(v model.View)          { s.view = v }
func (s *stubAppState) CurrentView() model.View       { return s.view }

type handlerDeps struct {
	dashboard *stubDashboard
	customers *stubCustomers
	repairs   *stubRepairs
	billing   *stubBilling
	inventory *stubInventory
	photos    *stubPhotos
	state     *stubAppState
}

func newTestServer(t *testing.T, d handlerDeps) *httptest.Server {
	t.Helper()

	h := NewShopHandler(
		d.dashboard, d.customers, d.repairs, d.billing, d.inventory, d.photos, d.state,
	)

	r := chi.NewRouter()
	h.Routes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func defaultDeps() handlerDeps {
	return handlerDeps{
		dashboard: &stubDashboard{overview: &dashboardsvc.Overview{}},
		customers: &stubCustomers{},
		repairs:   &stubRepairs{},
		billing:   &stubBilling{},
		inventory: &stubInventory{overview: &model.InventoryOverview{}},
		photos:    &stubPhotos{},
		state:     &stubAppState{view: model.ViewDashboard},
	}
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestRenderViewFallback(t *testing.T) {
	t.Parallel()

	d := defaultDeps()
	d.dashboard.overview = &dashboardsvc.Overview{
		Stats: model.DashboardStats{PendingJobs: 3},
	}
	srv := newTestServer(t, d)

	resp, err := http.Get(srv.URL + "/api/v1/views/settings")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		View    string             `json:"view"`
		Payload *DashboardResponse `json:"payload"`
	}
	decodeBody(t, resp, &body)

	assert.Equal(t, "dashboard", body.View)
	require.NotNil(t, body.Payload)
	assert.Equal(t, 3, body.Payload.Stats.PendingJobs)
}

func TestRenderKnownView(t *testing.T) {
	t.Parallel()

	d := defaultDeps()
	d.repairs.jobs = []*model.RepairJob{{ID: "j-1", Status: model.StatusPending, CreatedAt: time.Now()}}
	srv := newTestServer(t, d)

	resp, err := http.Get(srv.URL + "/api/v1/views/repairs")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		View    string              `json:"view"`
		Payload []RepairJobResponse `json:"payload"`
	}
	decodeBody(t, resp, &body)

	assert.Equal(t, "repairs", body.View)
	require.Len(t, body.Payload, 1)
	assert.Equal(t, "j-1", body.Payload[0].ID)
}

func TestSetViewAndNavigation(t *testing.T) {
	t.Parallel()

	d := defaultDeps()
	srv := newTestServer(t, d)

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/v1/views/inventory", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var nav NavigationResponse
	decodeBody(t, resp, &nav)

	assert.Equal(t, "Inventory", nav.Header)
	require.Len(t, nav.Sections, 5)
	for _, s := range nav.Sections {
		assert.Equal(t, s.View == model.ViewInventory, s.Active, string(s.View))
	}
	assert.Equal(t, model.ViewInventory, d.state.view)
}

func TestCreateCustomer(t *testing.T) {
	t.Parallel()

	d := defaultDeps()
	d.customers.createdID = "c-new"
	srv := newTestServer(t, d)

	resp, err := http.Post(
		srv.URL+"/api/v1/customers",
		"application/json",
		strings.NewReader(`{"name":"Rahul Sharma","phone":"9876543210"}`),
	)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body CreatedResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "c-new", body.ID)
}

func TestCreateCustomerMalformedBody(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, defaultDeps())

	resp, err := http.Post(
		srv.URL+"/api/v1/customers",
		"application/json",
		strings.NewReader(`{"name":`),
	)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestErrorStatusMapping(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name       string
		err        error
		wantStatus int
	}

	tests := []testCase{
		{name: "validation", err: fmt.Errorf("op: %w", model.ErrValidation), wantStatus: http.StatusBadRequest},
		{name: "empty update", err: model.ErrEmptyUpdate, wantStatus: http.StatusBadRequest},
		{name: "customer not found", err: model.ErrCustomerNotFound, wantStatus: http.StatusNotFound},
		{name: "unexpected", err: fmt.Errorf("op: connection reset"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := defaultDeps()
			d.customers.err = tt.err
			srv := newTestServer(t, d)

			resp, err := http.Get(srv.URL + "/api/v1/customers/lookup?phone=123")
			require.NoError(t, err)
			require.Equal(t, tt.wantStatus, resp.StatusCode)

			var body errorResponse
			decodeBody(t, resp, &body)
			assert.Equal(t, tt.wantStatus, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestUpdateRepairStatus(t *testing.T) {
	t.Parallel()

	d := defaultDeps()
	srv := newTestServer(t, d)

	req, err := http.NewRequest(
		http.MethodPatch,
		srv.URL+"/api/v1/repairs/j-1",
		strings.NewReader(`{"status":"completed"}`),
	)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.NotNil(t, d.repairs.gotUpdate.Status)
	assert.Equal(t, model.StatusCompleted, *d.repairs.gotUpdate.Status)
}

func TestUploadPhoto(t *testing.T) {
	t.Parallel()

	d := defaultDeps()
	d.repairs.photoURL = "http://localhost:8080/photos/abc"
	srv := newTestServer(t, d)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("photo", "front.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/api/v1/repairs/j-1/photos", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body PhotoResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, d.repairs.photoURL, body.URL)
}

func TestUploadPhotoMissingFile(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, defaultDeps())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("note", "no file here"))
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/api/v1/repairs/j-1/photos", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDownloadPhoto(t *testing.T) {
	t.Parallel()

	d := defaultDeps()
	d.photos.content = "jpeg-bytes"
	srv := newTestServer(t, d)

	resp, err := http.Get(srv.URL + "/photos/abc123")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/octet-stream", resp.Header.Get("Content-Type"))
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(raw))
}

func TestDownloadPhotoMidStreamFailure(t *testing.T) {
	t.Parallel()

	d := defaultDeps()
	d.photos.content = "jpeg-by"
	d.photos.err = model.ErrPhotoNotFound
	srv := newTestServer(t, d)

	resp, err := http.Get(srv.URL + "/photos/abc123")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body errorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, http.StatusNotFound, body.Code)
}

func TestRefreshState(t *testing.T) {
	t.Parallel()

	d := defaultDeps()
	srv := newTestServer(t, d)

	resp, err := http.Post(srv.URL+"/api/v1/state/refresh", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestRecordSale(t *testing.T) {
	t.Parallel()

	d := defaultDeps()
	d.billing.createdID = "s-new"
	srv := newTestServer(t, d)

	resp, err := http.Post(
		srv.URL+"/api/v1/sales",
		"application/json",
		strings.NewReader(`{"total_amount_cents":150000}`),
	)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body CreatedResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "s-new", body.ID)
}
