package dto

type CreateCourseRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"gte=0"`
}

type EnrollRequest struct {
	MemberID string `json:"member_id" binding:"required"`
	// Defaults to true: enrollment costs one credit unless the caller
	// explicitly waives the check (admin comp).
	RequireCredits *bool `json:"require_credits"`
}

type GrantRequest struct {
	MemberID string `json:"member_id" binding:"required"`
	Delta    int    `json:"delta" binding:"required"`
	Source   string `json:"source"`
	Note     string `json:"note"`
}

type CreateProductRequest struct {
	Name       string `json:"name" binding:"required"`
	Credits    int    `json:"credits" binding:"required,gt=0"`
	PriceCents int    `json:"price_cents" binding:"required,gt=0"`
	Active     *bool  `json:"active"`
}

type RedirectFlowRequest struct {
	SessionToken string `json:"session_token" binding:"required"`
	MemberID     string `json:"member_id" binding:"required"`
	ProductID    string `json:"product_id" binding:"required"`
	Description  string `json:"description"`
}
