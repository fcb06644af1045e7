package catalog

import (
	"errors"

	"bestseller-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for collections.
type Handler struct {
	service  *Service
	readOnly bool
}

// NewHandler creates a new HTTP handler. A read-only handler does not expose /sync.
func NewHandler(service *Service, readOnly bool) *Handler {
	return &Handler{service: service, readOnly: readOnly}
}

// RegisterRoutes registers the collection routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/collections")
	group.Get("/", h.HandleListCollections)
	group.Get("/:name", h.HandleGetCollection)

	if !h.readOnly {
		app.Post("/sync", h.HandleSync)
	}
}

// HandleListCollections returns the collections of the library with member counts.
func (h *Handler) HandleListCollections(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	collections, err := h.service.ListCollections(c.UserContext())
	if err != nil {
		return h.fail(c, l, "List collections failed", err)
	}
	return c.JSON(collections)
}

// HandleGetCollection returns one collection and its ordered books.
func (h *Handler) HandleGetCollection(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	detail, err := h.service.GetCollection(c.UserContext(), c.Params("name"))
	if err != nil {
		return h.fail(c, l, "Get collection failed", err)
	}
	return c.JSON(detail)
}

// HandleSync runs a sync. ?dry_run=true reports what would be written and rolls back.
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	dryRun := c.QueryBool("dry_run", false)

	result, shared, err := h.service.Sync(c.UserContext(), dryRun)
	if err != nil {
		return h.fail(c, l, "Sync failed", err)
	}
	return c.JSON(fiber.Map{
		"committed": result.Committed,
		"shared":    shared,
		"summary":   result.Plan.Summary,
		"synced":    result.Synced,
	})
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, ErrScopeNotFound) || errors.Is(err, ErrCollectionNotFound) {
		status = fiber.StatusNotFound
	} else {
		l.Error(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
