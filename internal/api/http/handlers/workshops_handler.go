package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/mrpavithran/WorkShop/internal/api/dto"
	"github.com/mrpavithran/WorkShop/internal/auth"
	"github.com/mrpavithran/WorkShop/internal/qr"
	"github.com/mrpavithran/WorkShop/internal/service"
)

// WorkshopsHandler exposes the public workshop surface: browsing,
// registration and the QR registration link.
type WorkshopsHandler struct {
	workshops *service.WorkshopService
	payments  *service.PaymentService
	origin    string
}

// NewWorkshopsHandler constructs handler.
func NewWorkshopsHandler(workshops *service.WorkshopService, payments *service.PaymentService, origin string) *WorkshopsHandler {
	return &WorkshopsHandler{workshops: workshops, payments: payments, origin: origin}
}

// List handles GET /workshops with search, price and date query filters.
func (h *WorkshopsHandler) List(c *fiber.Ctx) error {
	filter := service.ParseListFilter(c.Query("search"), c.Query("price"), c.Query("date"))
	workshops := h.workshops.ListWorkshops(filter)
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"workshops": dto.NewWorkshopResponses(workshops),
			"count":     len(workshops),
		},
	})
}

// Get handles GET /workshops/:id.
func (h *WorkshopsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	workshop, err := h.workshops.GetWorkshop(id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewWorkshopResponse(workshop)})
}

// Register handles POST /workshops/:id/register. Registration runs through
// the payment simulator. Logged-in participants get the registration linked
// to their account; anonymous callers register as guests.
func (h *WorkshopsHandler) Register(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.RegisterParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	input := service.ParticipantInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if principal, ok := auth.PrincipalFromContext(c); ok {
		input.UserID = principal.User.ID
	}

	registration, err := h.payments.Process(c.UserContext(), id, input)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.NewRegistrationResponse(registration),
	})
}

// QR handles GET /workshops/:id/qr, returning the registration-link QR PNG.
func (h *WorkshopsHandler) QR(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	workshop, err := h.workshops.GetWorkshop(id)
	if err != nil {
		return err
	}

	png, err := qr.EncodePNG(workshop, h.origin)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

func parseID(c *fiber.Ctx, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
