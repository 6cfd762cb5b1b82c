package applications_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/aristide12005/ERNAM--sub002/internal/app/approval"
	"github.com/aristide12005/ERNAM--sub002/internal/app/features/applications"
	applicationstore "github.com/aristide12005/ERNAM--sub002/internal/app/store/applications"
	"github.com/aristide12005/ERNAM--sub002/internal/app/store/audit"
	orgadminstore "github.com/aristide12005/ERNAM--sub002/internal/app/store/orgadmins"
	organizationstore "github.com/aristide12005/ERNAM--sub002/internal/app/store/organizations"
	userstore "github.com/aristide12005/ERNAM--sub002/internal/app/store/users"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/auditlog"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/mailer"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/status"
	"github.com/aristide12005/ERNAM--sub002/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type harness struct {
	db       *mongo.Database
	fixtures *testutil.Fixtures
	apps     *applicationstore.Store
	orgs     *organizationstore.Store
	users    *userstore.Store
	router   http.Handler
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	apps := applicationstore.New(db)
	orgs := organizationstore.New(db)
	users := userstore.New(db)
	links := orgadminstore.New(db)
	auditLog := auditlog.New(audit.New(db), logger, auditlog.Config{Admin: "db"})

	workflow := approval.NewOrchestrator(apps, orgs, users, links, auditLog, logger)
	mail := mailer.New(mailer.Config{}, logger)

	h := applications.NewHandler(apps, workflow, auditLog, mail, "ERNAM", logger)

	return &harness{
		db:       db,
		fixtures: testutil.NewFixtures(t, db),
		apps:     apps,
		orgs:     orgs,
		users:    users,
		router:   applications.Routes(h),
	}
}

func (h *harness) do(t *testing.T, req *http.Request) *testutil.ResponseRecorder {
	t.Helper()
	rec := testutil.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func TestHandleSubmit_CreatesPendingApplication(t *testing.T) {
	h := newHarness(t)

	body := strings.NewReader(`{
		"organization_name": "Acme Flight School",
		"applicant_name": "Jordan Doe",
		"applicant_email": "jordan@acme.test",
		"org_type": "training_center",
		"message": "We train commercial pilots."
	}`)
	rec := h.do(t, testutil.NewJSONRequest(http.MethodPost, "/", body))
	rec.AssertStatus(t, http.StatusCreated)

	var resp struct {
		ID        string `json:"id"`
		Reference string `json:"reference"`
		Status    string `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(resp.Reference, "ERNAM-") {
		t.Errorf("reference: got %q, want ERNAM- prefix", resp.Reference)
	}
	if resp.Status != status.Pending {
		t.Errorf("status: got %q, want %q", resp.Status, status.Pending)
	}
}

func TestHandleSubmit_RequiresOrganizationName(t *testing.T) {
	h := newHarness(t)

	body := strings.NewReader(`{"applicant_name": "Jordan", "applicant_email": "j@x.test"}`)
	rec := h.do(t, testutil.NewJSONRequest(http.MethodPost, "/", body))
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "organization_name")
}

func TestHandleSubmit_RejectsBadEmail(t *testing.T) {
	h := newHarness(t)

	body := strings.NewReader(`{"organization_name": "Acme", "applicant_name": "Jordan", "applicant_email": "not-an-email"}`)
	rec := h.do(t, testutil.NewJSONRequest(http.MethodPost, "/", body))
	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestHandleSubmit_SanitizesMessage(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	body := strings.NewReader(`{
		"organization_name": "Acme",
		"applicant_name": "Jordan",
		"applicant_email": "j@acme.test",
		"message": "<script>alert(1)</script><b>legit</b>"
	}`)
	rec := h.do(t, testutil.NewJSONRequest(http.MethodPost, "/", body))
	rec.AssertStatus(t, http.StatusCreated)

	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	apps, err := h.apps.List(ctx, applicationstore.Filter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("expected 1 application, got %d", len(apps))
	}
	msg := apps[0].Details["message"]
	if strings.Contains(msg, "<script>") {
		t.Errorf("message not sanitized: %q", msg)
	}
	if !strings.Contains(msg, "legit") {
		t.Errorf("safe content stripped: %q", msg)
	}
}

func TestHandleList_RequiresAdmin(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, testutil.NewRequest(http.MethodGet, "/"))
	rec.AssertStatus(t, http.StatusUnauthorized)

	rec = h.do(t, testutil.NewAuthenticatedRequest(http.MethodGet, "/", testutil.ParticipantUser()))
	rec.AssertStatus(t, http.StatusForbidden)
}

func TestHandleList_FiltersByStatus(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	h.fixtures.CreateApplication(ctx, "Alpha Aviation", "a@alpha.test", status.Pending)
	h.fixtures.CreateApplication(ctx, "Beta Flight", "b@beta.test", status.Rejected)

	rec := h.do(t, testutil.NewAuthenticatedRequest(http.MethodGet, "/?status=pending", testutil.ErnamAdminUser()))
	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Applications []struct {
			OrganizationName string `json:"organization_name"`
		} `json:"applications"`
		Total int64 `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("total: got %d, want 1", resp.Total)
	}
	if len(resp.Applications) != 1 || resp.Applications[0].OrganizationName != "Alpha Aviation" {
		t.Errorf("unexpected page: %+v", resp.Applications)
	}
}

func TestHandleView(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	app := h.fixtures.CreateApplication(ctx, "Acme", "j@acme.test", status.Pending)

	rec := h.do(t, testutil.NewAuthenticatedRequest(http.MethodGet, "/"+app.ID.Hex(), testutil.ErnamAdminUser()))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, app.Reference)

	rec = h.do(t, testutil.NewAuthenticatedRequest(http.MethodGet, "/ffffffffffffffffffffffff", testutil.ErnamAdminUser()))
	rec.AssertStatus(t, http.StatusNotFound)

	rec = h.do(t, testutil.NewAuthenticatedRequest(http.MethodGet, "/not-a-hex-id", testutil.ErnamAdminUser()))
	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestHandleApproveByID_FullFlow(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := h.fixtures.CreateOrganization(ctx, "Acme Flight School", status.Pending)
	applicant := h.fixtures.CreateParticipant(ctx, "Jordan Doe", "jordan@acme.test")
	app := h.fixtures.CreateApplication(ctx, "Acme Flight School", "jordan@acme.test", status.Pending)

	rec := h.do(t, testutil.NewAuthenticatedRequest(http.MethodPost, "/"+app.ID.Hex()+"/approve", testutil.ErnamAdminUser()))
	rec.AssertStatus(t, http.StatusOK)

	var summary struct {
		OrganizationID  string `json:"organizationId"`
		PrincipalLinked bool   `json:"principalLinked"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if summary.OrganizationID != org.ID.Hex() {
		t.Errorf("organizationId: got %q, want %q", summary.OrganizationID, org.ID.Hex())
	}
	if !summary.PrincipalLinked {
		t.Error("expected principal to be linked")
	}

	gotOrg, err := h.orgs.GetByID(ctx, org.ID)
	if err != nil {
		t.Fatalf("GetByID org: %v", err)
	}
	if gotOrg.Status != status.Approved {
		t.Errorf("org status: got %q, want %q", gotOrg.Status, status.Approved)
	}

	gotApp, err := h.apps.GetByID(ctx, app.ID)
	if err != nil {
		t.Fatalf("GetByID app: %v", err)
	}
	if gotApp.Status != status.Approved {
		t.Errorf("app status: got %q, want %q", gotApp.Status, status.Approved)
	}
	if gotApp.ReviewedBy == nil {
		t.Error("expected reviewer to be recorded")
	}

	gotUser, err := h.users.GetByID(ctx, applicant.ID)
	if err != nil {
		t.Fatalf("GetByID user: %v", err)
	}
	if gotUser.Role != "org_admin" {
		t.Errorf("applicant role: got %q, want org_admin", gotUser.Role)
	}
}

func TestHandleApprove_ByOrganizationID(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := h.fixtures.CreateOrganization(ctx, "Beta Flight", status.Pending)
	app := h.fixtures.CreateApplication(ctx, "Beta Flight", "b@beta.test", status.Pending)

	body := strings.NewReader(`{"organization_id": "` + org.ID.Hex() + `"}`)
	req := testutil.NewJSONRequest(http.MethodPost, "/approve", body)
	rec := h.do(t, testutil.WithUser(req, testutil.ErnamAdminUser()))
	rec.AssertStatus(t, http.StatusOK)

	gotApp, err := h.apps.GetByID(ctx, app.ID)
	if err != nil {
		t.Fatalf("GetByID app: %v", err)
	}
	if gotApp.Status != status.Approved {
		t.Errorf("app status: got %q, want %q", gotApp.Status, status.Approved)
	}
}

func TestHandleApprove_AlreadyApproved(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	app := h.fixtures.CreateApplication(ctx, "Gamma Aero", "g@gamma.test", status.Approved)

	rec := h.do(t, testutil.NewAuthenticatedRequest(http.MethodPost, "/"+app.ID.Hex()+"/approve", testutil.ErnamAdminUser()))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "alreadyApproved")
}

func TestHandleApprove_MissingApplicationRecord(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := h.fixtures.CreateOrganization(ctx, "Orphan Org", status.Pending)

	body := strings.NewReader(`{"organization_id": "` + org.ID.Hex() + `"}`)
	req := testutil.NewJSONRequest(http.MethodPost, "/approve", body)
	rec := h.do(t, testutil.WithUser(req, testutil.ErnamAdminUser()))
	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "no_application_record")
}

func TestHandleApprove_NoIdentifiers(t *testing.T) {
	h := newHarness(t)

	req := testutil.NewJSONRequest(http.MethodPost, "/approve", strings.NewReader(`{}`))
	rec := h.do(t, testutil.WithUser(req, testutil.ErnamAdminUser()))
	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestHandleReject(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	app := h.fixtures.CreateApplication(ctx, "Delta Wings", "d@delta.test", status.Pending)

	body := strings.NewReader(`{"reason": "incomplete paperwork"}`)
	req := testutil.NewJSONRequest(http.MethodPost, "/"+app.ID.Hex()+"/reject", body)
	rec := h.do(t, testutil.WithUser(req, testutil.ErnamAdminUser()))
	rec.AssertStatus(t, http.StatusOK)

	gotApp, err := h.apps.GetByID(ctx, app.ID)
	if err != nil {
		t.Fatalf("GetByID app: %v", err)
	}
	if gotApp.Status != status.Rejected {
		t.Errorf("app status: got %q, want %q", gotApp.Status, status.Rejected)
	}
}

func TestHandleReject_ApprovedIsTerminal(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	app := h.fixtures.CreateApplication(ctx, "Echo Air", "e@echo.test", status.Approved)

	rec := h.do(t, testutil.NewAuthenticatedRequest(http.MethodPost, "/"+app.ID.Hex()+"/reject", testutil.ErnamAdminUser()))
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "cannot be rejected")
}

func TestHandleReactivate(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	app := h.fixtures.CreateApplication(ctx, "Foxtrot Academy", "f@foxtrot.test", status.Rejected)

	rec := h.do(t, testutil.NewAuthenticatedRequest(http.MethodPost, "/"+app.ID.Hex()+"/reactivate", testutil.ErnamAdminUser()))
	rec.AssertStatus(t, http.StatusOK)

	gotApp, err := h.apps.GetByID(ctx, app.ID)
	if err != nil {
		t.Fatalf("GetByID app: %v", err)
	}
	if gotApp.Status != status.Pending {
		t.Errorf("app status: got %q, want %q", gotApp.Status, status.Pending)
	}
}

func TestHandleReactivate_PendingFails(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	app := h.fixtures.CreateApplication(ctx, "Golf Aviation", "g@golf.test", status.Pending)

	rec := h.do(t, testutil.NewAuthenticatedRequest(http.MethodPost, "/"+app.ID.Hex()+"/reactivate", testutil.ErnamAdminUser()))
	rec.AssertStatus(t, http.StatusBadRequest)
}
