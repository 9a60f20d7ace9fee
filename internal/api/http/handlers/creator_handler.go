package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mrpavithran/WorkShop/internal/api/dto"
	"github.com/mrpavithran/WorkShop/internal/auth"
	"github.com/mrpavithran/WorkShop/internal/service"
)

// CreatorHandler exposes the creator surface: workshop creation, dashboard
// aggregates, the per-workshop roster and attendance updates.
type CreatorHandler struct {
	workshops     *service.WorkshopService
	registrations *service.RegistrationService
}

// NewCreatorHandler constructs handler.
func NewCreatorHandler(workshops *service.WorkshopService, registrations *service.RegistrationService) *CreatorHandler {
	return &CreatorHandler{workshops: workshops, registrations: registrations}
}

// CreateWorkshop handles POST /creator/workshops.
func (h *CreatorHandler) CreateWorkshop(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.CreateWorkshopRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	workshop, err := h.workshops.CreateWorkshop(c.Context(), principal.User.ID, service.WorkshopCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Price:       req.Price,
		Capacity:    req.Capacity,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.NewWorkshopResponse(workshop),
	})
}

// Dashboard handles GET /creator/dashboard.
func (h *CreatorHandler) Dashboard(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	stats := h.workshops.AggregateForCreator(principal.User.ID)
	workshops := h.workshops.WorkshopsByCreator(principal.User.ID)

	return c.JSON(fiber.Map{
		"data": dto.CreatorDashboardResponse{
			WorkshopCount:     stats.WorkshopCount,
			TotalParticipants: stats.TotalParticipants,
			TotalRevenue:      stats.TotalRevenue,
			Workshops:         dto.NewWorkshopResponses(workshops),
		},
	})
}

// ManageWorkshop handles GET /creator/workshops/:id.
func (h *CreatorHandler) ManageWorkshop(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	view, err := h.workshops.ManageWorkshop(principal.User.ID, id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": dto.ManagementViewResponse{
			Workshop:       dto.NewWorkshopResponse(view.Workshop),
			Registrations:  dto.NewRegistrationResponses(view.Registrations),
			AttendedCount:  view.AttendedCount,
			FeedbackCount:  view.FeedbackCount,
			AvailableSpots: view.AvailableSpots,
		},
	})
}

// SetAttendance handles PUT /creator/registrations/:id/attendance.
func (h *CreatorHandler) SetAttendance(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	registration, err := h.registrations.SetAttendance(c.Context(), principal.User.ID, id, req.Attended)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": dto.NewRegistrationResponse(registration)})
}
