package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateCourse(c *ginext.Context)
	ListCourses(c *ginext.Context)
	Enroll(c *ginext.Context)
	Unenroll(c *ginext.Context)
	GetRoster(c *ginext.Context)
	GetFill(c *ginext.Context)
	GetBalance(c *ginext.Context)
	GrantCredits(c *ginext.Context)
	CreateProduct(c *ginext.Context)
	ListProducts(c *ginext.Context)
	ExportMembersJSON(c *ginext.Context)
	ExportMembersCSV(c *ginext.Context)
	CreateRedirectFlow(c *ginext.Context)
	PaymentSuccess(c *ginext.Context)
	Webhook(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Courses
		api.POST("/courses", h.CreateCourse)
		api.GET("/courses", h.ListCourses)
		api.POST("/courses/:id/enroll", h.Enroll)
		api.DELETE("/courses/:id/enroll/:memberID", h.Unenroll)
		api.GET("/courses/:id/roster", h.GetRoster)
		api.GET("/courses/:id/fill", h.GetFill)

		// Credits
		api.GET("/credits/balance/:memberID", h.GetBalance)
		api.POST("/credits/grant", h.GrantCredits)
		api.POST("/credits/products", h.CreateProduct)
		api.GET("/credits/products", h.ListProducts)

		// Exports
		api.GET("/members/export.json", h.ExportMembersJSON)
		api.GET("/members/export.csv", h.ExportMembersCSV)
	}

	// GoCardless surfaces live outside /api: the success URL is hit by the
	// payer's browser and the webhook by GoCardless itself.
	gc := router.Group("/gc")
	{
		gc.POST("/redirect-flow", h.CreateRedirectFlow)
		gc.GET("/success", h.PaymentSuccess)
		gc.POST("/webhook", h.Webhook)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
