package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mrpavithran/WorkShop/internal/api/dto"
	"github.com/mrpavithran/WorkShop/internal/auth"
	"github.com/mrpavithran/WorkShop/internal/certificate"
	"github.com/mrpavithran/WorkShop/internal/service"
	apperrors "github.com/mrpavithran/WorkShop/pkg/util/errorutil"
)

// ProfileHandler exposes the participant surface: workshop history, feedback
// submission and certificate download.
type ProfileHandler struct {
	profile       *service.ProfileService
	registrations *service.RegistrationService
	workshops     *service.WorkshopService
}

// NewProfileHandler constructs handler.
func NewProfileHandler(profile *service.ProfileService, registrations *service.RegistrationService, workshops *service.WorkshopService) *ProfileHandler {
	return &ProfileHandler{profile: profile, registrations: registrations, workshops: workshops}
}

// Profile handles GET /profile.
func (h *ProfileHandler) Profile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	history := h.profile.HistoryForUser(principal.User.ID)
	return c.JSON(fiber.Map{
		"data": dto.ProfileResponse{
			User:           dto.NewUserResponse(principal.User),
			Upcoming:       toRegisteredWorkshops(history.Upcoming),
			Past:           toRegisteredWorkshops(history.Past),
			Attended:       toRegisteredWorkshops(history.Attended),
			TotalSpent:     history.TotalSpent,
			CompletedCount: history.CompletedCount,
		},
	})
}

// SubmitFeedback handles POST /profile/registrations/:id/feedback.
func (h *ProfileHandler) SubmitFeedback(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	registration, err := h.registrations.SubmitFeedback(c.Context(), principal.User.ID, id, req.Feedback)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": dto.NewRegistrationResponse(registration)})
}

// Certificate handles GET /registrations/:id/certificate, rendering a
// completion certificate PNG for the caller's attended registration.
func (h *ProfileHandler) Certificate(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	registration, err := h.registrations.GetRegistration(id)
	if err != nil {
		return err
	}
	if registration.UserID != principal.User.ID {
		return apperrors.NewForbidden("registration belongs to another participant")
	}
	if !registration.Attended {
		return apperrors.NewConflict("certificate available only after attendance is confirmed", nil)
	}

	workshop, err := h.workshops.GetWorkshop(registration.WorkshopID)
	if err != nil {
		return err
	}

	png, err := certificate.Render(workshop, registration.Name)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="certificate.png"`)
	return c.Send(png)
}

func toRegisteredWorkshops(entries []service.RegisteredWorkshop) []dto.RegisteredWorkshopResponse {
	out := make([]dto.RegisteredWorkshopResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, dto.RegisteredWorkshopResponse{
			Workshop:     dto.NewWorkshopResponse(entry.Workshop),
			Registration: dto.NewRegistrationResponse(entry.Registration),
		})
	}
	return out
}
