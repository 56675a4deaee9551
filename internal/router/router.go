package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	ListOwnEvents(c *ginext.Context)
	GetOwnEvent(c *ginext.Context)
	UpdateOwnEvent(c *ginext.Context)
	ListEventRequests(c *ginext.Context)
	ChangeRequestStatus(c *ginext.Context)
	CreateRequest(c *ginext.Context)
	ListOwnRequests(c *ginext.Context)
	CancelRequest(c *ginext.Context)
	AdminSearchEvents(c *ginext.Context)
	AdminUpdateEvent(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	DeleteUser(c *ginext.Context)
	CreateCategory(c *ginext.Context)
	UpdateCategory(c *ginext.Context)
	DeleteCategory(c *ginext.Context)
	ListCategories(c *ginext.Context)
	GetCategory(c *ginext.Context)
	PublicSearchEvents(c *ginext.Context)
	PublicGetEvent(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	users := router.Group("/users/:userId")
	{
		// Events owned by the user
		users.POST("/events", h.CreateEvent)
		users.GET("/events", h.ListOwnEvents)
		users.GET("/events/:eventId", h.GetOwnEvent)
		users.PATCH("/events/:eventId", h.UpdateOwnEvent)
		users.GET("/events/:eventId/requests", h.ListEventRequests)
		users.PATCH("/events/:eventId/requests", h.ChangeRequestStatus)

		// Participation requests made by the user
		users.POST("/requests", h.CreateRequest)
		users.GET("/requests", h.ListOwnRequests)
		users.PATCH("/requests/:requestId/cancel", h.CancelRequest)
	}

	admin := router.Group("/admin")
	{
		admin.GET("/events", h.AdminSearchEvents)
		admin.PATCH("/events/:eventId", h.AdminUpdateEvent)

		admin.POST("/users", h.CreateUser)
		admin.GET("/users", h.ListUsers)
		admin.DELETE("/users/:userId", h.DeleteUser)

		admin.POST("/categories", h.CreateCategory)
		admin.PATCH("/categories/:catId", h.UpdateCategory)
		admin.DELETE("/categories/:catId", h.DeleteCategory)
	}

	// Public surface
	router.GET("/events", h.PublicSearchEvents)
	router.GET("/events/:id", h.PublicGetEvent)
	router.GET("/categories", h.ListCategories)
	router.GET("/categories/:catId", h.GetCategory)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
