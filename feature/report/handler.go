package report

import (
	"errors"
	"strconv"

	"roster-manager/core/logger"
	"roster-manager/core/sheet"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for attendance reports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the report routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/report")
	group.Get("/headcount", h.HandleHeadcount)
	group.Post("/reconcile", h.HandleReconcile)
	group.Get("/summary", h.HandleLastSummary)
}

// HandleHeadcount returns the live present/absent counts.
func (h *Handler) HandleHeadcount(c *fiber.Ctx) error {
	present, absent, total := h.service.Headcount()
	return c.JSON(fiber.Map{
		"present": present,
		"absent":  absent,
		"total":   total,
	})
}

// HandleReconcile runs a reconciliation against an uploaded delegation
// workbook (multipart "file"). An optional "baseline" form value overrides
// the configured population total for this run.
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing workbook upload under field \"file\"",
		})
	}

	baseline := 0
	if raw := c.FormValue("baseline"); raw != "" {
		baseline, err = strconv.Atoi(raw)
		if err != nil || baseline < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "baseline must be a non-negative integer",
			})
		}
	}

	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	defer f.Close()

	summary, err := h.service.Reconcile(f, baseline)
	if err != nil {
		var pe *sheet.SourceParseError
		if errors.As(err, &pe) {
			// Prior summary stays untouched on parse failure
			l.Warn("Delegation workbook rejected", zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": pe.Error()})
		}
		l.Error("Reconciliation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(summary)
}

// HandleLastSummary returns the most recent reconciliation summary.
func (h *Handler) HandleLastSummary(c *fiber.Ctx) error {
	summary, ok := h.service.LastSummary()
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no reconciliation has been run yet",
		})
	}
	return c.JSON(summary)
}
