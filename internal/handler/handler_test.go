package handler

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/copdrey/resilience-backend/internal/domain"
	"github.com/copdrey/resilience-backend/internal/gocardless"
	"github.com/copdrey/resilience-backend/internal/handler/dto"
	hmocks "github.com/copdrey/resilience-backend/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

const testWebhookSecret = "whsec_test"

type handlerMocks struct {
	enrollment *hmocks.MockEnrollmentSvc
	credit     *hmocks.MockCreditSvc
	product    *hmocks.MockProductSvc
	payment    *hmocks.MockPaymentSvc
	export     *hmocks.MockExportSvc
}

func setupRouter(t *testing.T) (handlerMocks, http.Handler) {
	t.Helper()
	m := handlerMocks{
		enrollment: hmocks.NewMockEnrollmentSvc(t),
		credit:     hmocks.NewMockCreditSvc(t),
		product:    hmocks.NewMockProductSvc(t),
		payment:    hmocks.NewMockPaymentSvc(t),
		export:     hmocks.NewMockExportSvc(t),
	}

	h := NewHandler(m.enrollment, m.credit, m.product, m.payment, m.export, testWebhookSecret)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/courses", h.CreateCourse)
		api.GET("/courses", h.ListCourses)
		api.POST("/courses/:id/enroll", h.Enroll)
		api.DELETE("/courses/:id/enroll/:memberID", h.Unenroll)
		api.GET("/courses/:id/roster", h.GetRoster)
		api.GET("/courses/:id/fill", h.GetFill)
		api.GET("/credits/balance/:memberID", h.GetBalance)
		api.POST("/credits/grant", h.GrantCredits)
		api.POST("/credits/products", h.CreateProduct)
		api.GET("/credits/products", h.ListProducts)
		api.GET("/members/export.json", h.ExportMembersJSON)
		api.GET("/members/export.csv", h.ExportMembersCSV)
	}
	gc := r.Group("/gc")
	{
		gc.POST("/redirect-flow", h.CreateRedirectFlow)
		gc.GET("/success", h.PaymentSuccess)
		gc.POST("/webhook", h.Webhook)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Courses ---

func TestHandler_CreateCourse_Success(t *testing.T) {
	m, r := setupRouter(t)

	course := &domain.Course{ID: "c1", Name: "Pilates", Capacity: 12}
	m.enrollment.EXPECT().CreateCourse(mock.Anything, mock.Anything).Return(course, nil)

	w := doJSON(t, r, http.MethodPost, "/api/courses", dto.CreateCourseRequest{Name: "Pilates", Capacity: 12})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CourseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Pilates", resp.Name)
}

func TestHandler_CreateCourse_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/courses", map[string]any{"capacity": 12})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Enroll_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"course full", domain.ErrCourseFull, http.StatusConflict},
		{"already enrolled", domain.ErrAlreadyEnrolled, http.StatusConflict},
		{"insufficient credits", domain.ErrInsufficientCredits, http.StatusPaymentRequired},
		{"unknown course", domain.ErrCourseNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, r := setupRouter(t)

			m.enrollment.EXPECT().Enroll(mock.Anything, "c1", "m1", true).Return(nil, tc.err)

			w := doJSON(t, r, http.MethodPost, "/api/courses/c1/enroll", dto.EnrollRequest{MemberID: "m1"})

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestHandler_Enroll_Success(t *testing.T) {
	m, r := setupRouter(t)

	fill := &domain.CourseFill{CourseID: "c1", CourseName: "Pilates", Capacity: 10, Enrolled: 3, FillRate: 30}
	m.enrollment.EXPECT().Enroll(mock.Anything, "c1", "m1", true).Return(fill, nil)

	w := doJSON(t, r, http.MethodPost, "/api/courses/c1/enroll", dto.EnrollRequest{MemberID: "m1"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CourseFillResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Enrolled)
	assert.Equal(t, 30, resp.FillRate)
}

func TestHandler_Enroll_WaiveCredits(t *testing.T) {
	m, r := setupRouter(t)

	waive := false
	fill := &domain.CourseFill{CourseID: "c1", Capacity: 10, Enrolled: 1, FillRate: 10}
	m.enrollment.EXPECT().Enroll(mock.Anything, "c1", "m1", false).Return(fill, nil)

	w := doJSON(t, r, http.MethodPost, "/api/courses/c1/enroll", dto.EnrollRequest{MemberID: "m1", RequireCredits: &waive})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Unenroll_RefundFlag(t *testing.T) {
	m, r := setupRouter(t)

	fill := &domain.CourseFill{CourseID: "c1", Capacity: 10}
	m.enrollment.EXPECT().Unenroll(mock.Anything, "c1", "m1", true).Return(fill, nil)

	w := doJSON(t, r, http.MethodDelete, "/api/courses/c1/enroll/m1?refund=1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Credits ---

func TestHandler_GetBalance(t *testing.T) {
	m, r := setupRouter(t)

	m.credit.EXPECT().Balance(mock.Anything, "m1").Return(4, nil)

	w := doJSON(t, r, http.MethodGet, "/api/credits/balance/m1", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BalanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Balance)
}

func TestHandler_GrantCredits(t *testing.T) {
	m, r := setupRouter(t)

	m.credit.EXPECT().Grant(mock.Anything, "m1", 5, domain.LedgerSource("admin"), "geste commercial").Return(9, nil)

	w := doJSON(t, r, http.MethodPost, "/api/credits/grant", dto.GrantRequest{
		MemberID: "m1", Delta: 5, Source: "admin", Note: "geste commercial",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.GrantResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, 9, resp.Balance)
}

func TestHandler_GrantCredits_ValidationError(t *testing.T) {
	m, r := setupRouter(t)

	m.credit.EXPECT().Grant(mock.Anything, "m1", 3, domain.LedgerSource("loyalty"), "").Return(0, domain.ErrValidation)

	w := doJSON(t, r, http.MethodPost, "/api/credits/grant", dto.GrantRequest{
		MemberID: "m1", Delta: 3, Source: "loyalty",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Payments ---

func TestHandler_CreateRedirectFlow(t *testing.T) {
	m, r := setupRouter(t)

	m.payment.EXPECT().CreateRedirectFlow(mock.Anything, mock.Anything).Return("https://pay.gocardless.com/flow/RE1", nil)

	w := doJSON(t, r, http.MethodPost, "/gc/redirect-flow", dto.RedirectFlowRequest{
		SessionToken: "sess-1", MemberID: "m1", ProductID: "p1",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RedirectFlowResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://pay.gocardless.com/flow/RE1", resp.RedirectURL)
}

func TestHandler_PaymentSuccess_RedirectsToDeepLink(t *testing.T) {
	m, r := setupRouter(t)

	m.payment.EXPECT().CompleteRedirectFlow(mock.Anything, "RE1", "sess-1").
		Return("resilience://gc/success?mandate=MD1&credits=10", nil)

	w := doJSON(t, r, http.MethodGet, "/gc/success?redirect_flow_id=RE1&session_token=sess-1", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "resilience://gc/success?mandate=MD1&credits=10", w.Header().Get("Location"))
}

func TestHandler_PaymentSuccess_GatewayError(t *testing.T) {
	m, r := setupRouter(t)

	m.payment.EXPECT().CompleteRedirectFlow(mock.Anything, "RE1", "sess-1").Return("", domain.ErrPaymentGateway)

	w := doJSON(t, r, http.MethodGet, "/gc/success?redirect_flow_id=RE1&session_token=sess-1", nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func signBody(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestHandler_Webhook_ValidSignature(t *testing.T) {
	m, r := setupRouter(t)

	body := []byte(`{"events":[{"id":"EV1","action":"confirmed","resource_type":"payments","links":{"payment":"PM1"}}]}`)

	m.payment.EXPECT().HandleWebhook(mock.Anything, mock.MatchedBy(func(events []gocardless.Event) bool {
		return len(events) == 1 && events[0].ID == "EV1" && events[0].Links.Payment == "PM1"
	})).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/gc/webhook", bytes.NewReader(body))
	req.Header.Set("Webhook-Signature", signBody(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_Webhook_BadSignature(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"events":[]}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/gc/webhook", bytes.NewReader(body))
	req.Header.Set("Webhook-Signature", "deadbeef")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Webhook_ProcessingErrorTriggersRedelivery(t *testing.T) {
	m, r := setupRouter(t)

	body := []byte(`{"events":[{"id":"EV1","action":"confirmed","resource_type":"payments","links":{"payment":"PM1"}}]}`)

	m.payment.EXPECT().HandleWebhook(mock.Anything, mock.Anything).Return(assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/gc/webhook", bytes.NewReader(body))
	req.Header.Set("Webhook-Signature", signBody(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// --- Exports ---

func TestHandler_ExportMembersCSV(t *testing.T) {
	m, r := setupRouter(t)

	csv := []byte("id;full_name\nm1;Alice Martin\n")
	m.export.EXPECT().MembersCSV(mock.Anything, 0).Return(csv, nil)

	w := doJSON(t, r, http.MethodGet, "/api/members/export.csv", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "members-")
	assert.Equal(t, csv, w.Body.Bytes())
}

func TestHandler_ExportMembersJSON_Limit(t *testing.T) {
	m, r := setupRouter(t)

	members := []*domain.Member{{ID: "m1", FullName: "Alice Martin"}}
	m.export.EXPECT().Members(mock.Anything, 50).Return(members, nil)

	w := doJSON(t, r, http.MethodGet, "/api/members/export.json?limit=50", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MembersExportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Members, 1)
	assert.Equal(t, "m1", resp.Members[0].ID)
}
