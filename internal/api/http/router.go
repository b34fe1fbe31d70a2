package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-crm/internal/api/http/handlers"
	"github.com/spec-kit/restaurant-crm/internal/auth"
	"github.com/spec-kit/restaurant-crm/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Leads          *handlers.LeadsHandler
	Contacts       *handlers.ContactsHandler
	Orders         *handlers.OrdersHandler
	Interactions   *handlers.InteractionsHandler
	Calls          *handlers.CallsHandler
	Performance    *handlers.PerformanceHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)

	api := app.Group("/api", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())

	leads := api.Group("/leads")
	leads.Post("", cfg.Leads.CreateLead)
	leads.Get("", cfg.Leads.ListLeads)
	leads.Get("/:id", cfg.Leads.GetLead)
	leads.Put("/:id", cfg.Leads.UpdateLead)
	leads.Delete("/:id", auth.RequireRole(domain.UserRoleAdmin), cfg.Leads.DeleteLead)

	contacts := api.Group("/contacts")
	contacts.Get("", cfg.Contacts.ListContacts)
	contacts.Post("", cfg.Contacts.CreateContact)
	contacts.Put("/:id", cfg.Contacts.UpdateContact)
	contacts.Delete("/:id", cfg.Contacts.DeleteContact)

	orders := api.Group("/orders")
	orders.Post("", cfg.Orders.CreateOrder)
	orders.Get("/recent", cfg.Orders.ListRecentOrders)
	orders.Put("/:id/complete", cfg.Orders.MarkOrderComplete)

	potential := api.Group("/potential-orders")
	potential.Post("", cfg.Orders.CreatePotentialOrder)
	potential.Get("", cfg.Orders.ListPotentialOrders)

	interactions := api.Group("/interactions")
	interactions.Post("", cfg.Interactions.LogInteraction)
	interactions.Get("", cfg.Interactions.ListInteractions)
	interactions.Get("/count-by-lead", cfg.Interactions.CountByLead)

	calls := api.Group("/scheduled-calls")
	calls.Post("", cfg.Calls.ScheduleCall)
	calls.Get("", cfg.Calls.ListUpcomingCalls)
	calls.Put("/:id/complete", cfg.Calls.CompleteCall)
	calls.Put("/:id/cancel", cfg.Calls.CancelCall)

	api.Get("/performance", cfg.Performance.GetPerformance)
}
