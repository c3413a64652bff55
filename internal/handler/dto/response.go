package dto

import (
	"time"

	"github.com/copdrey/resilience-backend/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type CourseResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	CreatedAt string `json:"created_at"`
}

type RosterEntryResponse struct {
	MemberID   string `json:"member_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	EnrolledAt string `json:"enrolled_at"`
}

type CourseFillResponse struct {
	CourseID   string                `json:"course_id"`
	CourseName string                `json:"course_name"`
	Capacity   int                   `json:"capacity"`
	Enrolled   int                   `json:"enrolled"`
	FillRate   int                   `json:"fill_rate"`
	Roster     []RosterEntryResponse `json:"roster"`
}

type RosterResponse struct {
	Roster []RosterEntryResponse `json:"roster"`
}

type BalanceResponse struct {
	MemberID string `json:"member_id"`
	Balance  int    `json:"balance"`
}

type GrantResponse struct {
	OK      bool `json:"ok"`
	Balance int  `json:"balance"`
}

type ProductResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Credits    int    `json:"credits"`
	PriceCents int    `json:"price_cents"`
	Active     bool   `json:"active"`
	CreatedAt  string `json:"created_at"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

type RedirectFlowResponse struct {
	RedirectURL string `json:"redirect_url"`
}

type MembersExportResponse struct {
	Members []*domain.Member `json:"members"`
}

func ToCourseResponse(c *domain.Course) CourseResponse {
	return CourseResponse{
		ID:        c.ID,
		Name:      c.Name,
		Capacity:  c.Capacity,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func ToRosterResponse(roster []domain.RosterEntry) []RosterEntryResponse {
	res := make([]RosterEntryResponse, 0, len(roster))
	for _, entry := range roster {
		res = append(res, RosterEntryResponse{
			MemberID:   entry.MemberID,
			Name:       entry.Name,
			Email:      entry.Email,
			EnrolledAt: entry.EnrolledAt.Format(time.RFC3339),
		})
	}
	return res
}

func ToCourseFillResponse(fill *domain.CourseFill) CourseFillResponse {
	return CourseFillResponse{
		CourseID:   fill.CourseID,
		CourseName: fill.CourseName,
		Capacity:   fill.Capacity,
		Enrolled:   fill.Enrolled,
		FillRate:   fill.FillRate,
		Roster:     ToRosterResponse(fill.Roster),
	}
}

func ToProductResponse(p *domain.CreditProduct) ProductResponse {
	return ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Credits:    p.Credits,
		PriceCents: p.PriceCents,
		Active:     p.Active,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
	}
}
