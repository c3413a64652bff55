package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/copdrey/resilience-backend/internal/domain"
	"github.com/copdrey/resilience-backend/internal/export"
	"github.com/copdrey/resilience-backend/internal/gocardless"
	"github.com/copdrey/resilience-backend/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type EnrollmentSvc interface {
	Enroll(ctx context.Context, courseID, memberID string, requireCredits bool) (*domain.CourseFill, error)
	Unenroll(ctx context.Context, courseID, memberID string, refund bool) (*domain.CourseFill, error)
	Roster(ctx context.Context, courseID string) ([]domain.RosterEntry, error)
	Fill(ctx context.Context, courseID string) (*domain.CourseFill, error)
	CreateCourse(ctx context.Context, input domain.CreateCourseInput) (*domain.Course, error)
	ListCourses(ctx context.Context) ([]*domain.Course, error)
}

type CreditSvc interface {
	Balance(ctx context.Context, memberID string) (int, error)
	Grant(ctx context.Context, memberID string, delta int, source domain.LedgerSource, note string) (int, error)
}

type ProductSvc interface {
	Create(ctx context.Context, input domain.CreateProductInput) (*domain.CreditProduct, error)
	List(ctx context.Context, active *bool) ([]*domain.CreditProduct, error)
}

type PaymentSvc interface {
	CreateRedirectFlow(ctx context.Context, input domain.CreateFlowInput) (string, error)
	CompleteRedirectFlow(ctx context.Context, flowID, sessionToken string) (string, error)
	HandleWebhook(ctx context.Context, events []gocardless.Event) error
}

type ExportSvc interface {
	Members(ctx context.Context, limit int) ([]*domain.Member, error)
	MembersCSV(ctx context.Context, limit int) ([]byte, error)
}

type Handler struct {
	enrollmentService EnrollmentSvc
	creditService     CreditSvc
	productService    ProductSvc
	paymentService    PaymentSvc
	exportService     ExportSvc

	webhookSecret string
}

func NewHandler(
	enrollmentService EnrollmentSvc,
	creditService CreditSvc,
	productService ProductSvc,
	paymentService PaymentSvc,
	exportService ExportSvc,
	webhookSecret string,
) *Handler {
	return &Handler{
		enrollmentService: enrollmentService,
		creditService:     creditService,
		productService:    productService,
		paymentService:    paymentService,
		exportService:     exportService,
		webhookSecret:     webhookSecret,
	}
}

// Courses

func (h *Handler) CreateCourse(c *ginext.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	course, err := h.enrollmentService.CreateCourse(c.Request.Context(), domain.CreateCourseInput{
		Name:     req.Name,
		Capacity: req.Capacity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCourseResponse(course))
}

func (h *Handler) ListCourses(c *ginext.Context) {
	courses, err := h.enrollmentService.ListCourses(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		resp = append(resp, dto.ToCourseResponse(course))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Enroll(c *ginext.Context) {
	courseID := c.Param("id")

	var req dto.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	requireCredits := true
	if req.RequireCredits != nil {
		requireCredits = *req.RequireCredits
	}

	fill, err := h.enrollmentService.Enroll(c.Request.Context(), courseID, req.MemberID, requireCredits)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCourseFillResponse(fill))
}

func (h *Handler) Unenroll(c *ginext.Context) {
	courseID := c.Param("id")
	memberID := c.Param("memberID")
	refund := c.Query("refund") == "1"

	fill, err := h.enrollmentService.Unenroll(c.Request.Context(), courseID, memberID, refund)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCourseFillResponse(fill))
}

func (h *Handler) GetRoster(c *ginext.Context) {
	roster, err := h.enrollmentService.Roster(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RosterResponse{Roster: dto.ToRosterResponse(roster)})
}

func (h *Handler) GetFill(c *ginext.Context) {
	fill, err := h.enrollmentService.Fill(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCourseFillResponse(fill))
}

// Credits

func (h *Handler) GetBalance(c *ginext.Context) {
	memberID := c.Param("memberID")

	balance, err := h.creditService.Balance(c.Request.Context(), memberID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{MemberID: memberID, Balance: balance})
}

func (h *Handler) GrantCredits(c *ginext.Context) {
	var req dto.GrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	balance, err := h.creditService.Grant(
		c.Request.Context(),
		req.MemberID, req.Delta, domain.LedgerSource(req.Source), req.Note,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GrantResponse{OK: true, Balance: balance})
}

// Products

func (h *Handler) CreateProduct(c *ginext.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	product, err := h.productService.Create(c.Request.Context(), domain.CreateProductInput{
		Name:       req.Name,
		Credits:    req.Credits,
		PriceCents: req.PriceCents,
		Active:     req.Active,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

func (h *Handler) ListProducts(c *ginext.Context) {
	var active *bool
	switch c.Query("active") {
	case "1":
		v := true
		active = &v
	case "0":
		v := false
		active = &v
	}

	products, err := h.productService.List(c.Request.Context(), active)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.ProductListResponse{Products: make([]dto.ProductResponse, 0, len(products))}
	for _, p := range products {
		resp.Products = append(resp.Products, dto.ToProductResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

// Exports

func (h *Handler) ExportMembersJSON(c *ginext.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	members, err := h.exportService.Members(c.Request.Context(), limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MembersExportResponse{Members: members})
}

func (h *Handler) ExportMembersCSV(c *ginext.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	csvData, err := h.exportService.MembersCSV(c.Request.Context(), limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.Filename(time.Now())+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", csvData)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrCourseNotFound),
		errors.Is(err, domain.ErrMemberNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrFlowNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyEnrolled),
		errors.Is(err, domain.ErrCourseFull):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInsufficientCredits):
		c.JSON(http.StatusPaymentRequired, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPaymentGateway):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
