package attendance

import (
	"bytes"
	"errors"
	"io"

	"roster-manager/core/logger"
	"roster-manager/core/roster"
	"roster-manager/core/sheet"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the attendance roster.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the roster routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/roster")
	group.Post("/", h.HandleUpload)
	group.Get("/", h.HandleList)
	group.Get("/export", h.HandleExport)
	group.Post("/checkin", h.HandleCheckIn)
	group.Post("/register", h.HandleRegister)
	group.Post("/snapshots", h.HandleArchiveSnapshot)
	group.Get("/snapshots", h.HandleListSnapshots)
	group.Get("/snapshots/:name", h.HandleDownloadSnapshot)
	group.Delete("/snapshots/:name", h.HandleDeleteSnapshot)
}

type checkInRequest struct {
	ID string `json:"id"`
}

type registerRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Affiliation string `json:"affiliation"`
}

// HandleUpload replaces the session roster from an uploaded workbook.
// The upload is a multipart form with the workbook under "file".
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing workbook upload under field \"file\"",
		})
	}

	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	defer f.Close()

	count, err := h.service.LoadFromWorkbook(f)
	if err != nil {
		l.Warn("Roster load rejected", zap.Error(err))
		return workbookError(c, err)
	}

	l.Info("Roster loaded", zap.Int("rows", count), zap.String("filename", fh.Filename))
	return c.JSON(fiber.Map{"rows": count})
}

// HandleList returns the current roster with live headcounts.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	present, total := h.service.Counts()
	return c.JSON(fiber.Map{
		"records": h.service.Snapshot(),
		"present": present,
		"total":   total,
	})
}

// HandleExport streams the current roster as an xlsx download.
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var buf bytes.Buffer
	if err := h.service.Export(&buf); err != nil {
		l.Error("Roster export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	filename := "roster_" + h.service.now().Format("0102_1504") + ".xlsx"
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+filename)
	return c.Send(buf.Bytes())
}

// HandleCheckIn processes one scanned identifier and returns the outcome.
// not_found is reported with a 404 status but still carries a structured
// outcome body, since it is an expected branch rather than a failure.
func (h *Handler) HandleCheckIn(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req checkInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	outcome, err := h.service.CheckIn(req.ID)
	if err != nil {
		if roster.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Check-in failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	switch outcome.Kind {
	case roster.OutcomeCheckedIn:
		l.Info("Checked in", zap.String("id", outcome.ID), zap.String("name", outcome.Name))
		return c.JSON(outcome)
	case roster.OutcomeAlreadyCheckedIn:
		l.Info("Already checked in", zap.String("id", outcome.ID))
		return c.JSON(outcome)
	default:
		l.Info("Unknown identifier scanned", zap.String("id", outcome.ID))
		return c.Status(fiber.StatusNotFound).JSON(outcome)
	}
}

// HandleRegister appends a walk-in attendee as present.
func (h *Handler) HandleRegister(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	rec, shadowed, err := h.service.Register(req.ID, req.Name, roster.ParseAffiliation(req.Affiliation))
	if err != nil {
		if roster.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Registration failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if shadowed {
		l.Warn("Registered identifier shadows an existing record", zap.String("id", rec.ID))
	} else {
		l.Info("Registered walk-in", zap.String("id", rec.ID), zap.String("name", rec.Name))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"record":   rec,
		"shadowed": shadowed,
	})
}

// HandleArchiveSnapshot uploads the current roster export to the
// snapshot bucket.
func (h *Handler) HandleArchiveSnapshot(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	name, err := h.service.ArchiveSnapshot(c.Context())
	if err != nil {
		if errors.Is(err, ErrStorageDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Snapshot archival failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Snapshot archived", zap.String("object", name))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"object": name})
}

// HandleListSnapshots lists archived snapshots.
func (h *Handler) HandleListSnapshots(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	infos, err := h.service.ListSnapshots(c.Context())
	if err != nil {
		if errors.Is(err, ErrStorageDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Snapshot listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"snapshots": infos})
}

// HandleDownloadSnapshot streams one archived snapshot back as an
// xlsx download.
func (h *Handler) HandleDownloadSnapshot(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	name := c.Params("name")
	obj, err := h.service.DownloadSnapshot(c.Context(), name)
	if err != nil {
		if errors.Is(err, ErrStorageDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Snapshot download failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	defer obj.Close()

	content, err := io.ReadAll(obj)
	if err != nil {
		l.Error("Snapshot read failed", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+name)
	return c.Send(content)
}

// HandleDeleteSnapshot removes one archived snapshot.
func (h *Handler) HandleDeleteSnapshot(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	name := c.Params("name")
	if err := h.service.DeleteSnapshot(c.Context(), name); err != nil {
		if errors.Is(err, ErrStorageDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Snapshot deletion failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Snapshot deleted", zap.String("name", name))
	return c.JSON(fiber.Map{"deleted": name})
}

// workbookError maps codec errors to a 400 with actionable detail.
func workbookError(c *fiber.Ctx, err error) error {
	var le *sheet.LoadError
	if errors.As(err, &le) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  le.Error(),
			"column": le.Column,
		})
	}
	var pe *sheet.SourceParseError
	if errors.As(err, &pe) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": pe.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
