package library

import (
	"log/slog"
	"strconv"

	"github.com/contre95/mediashelf/src/media"
	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the library feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler for the library feature.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func recordsResponse(c *fiber.Ctx, records []*media.Record) error {
	if records == nil {
		records = []*media.Record{}
	}
	return c.JSON(fiber.Map{"count": len(records), "records": records})
}

// GetRecords returns every record, numbered by position.
func (h *Handler) GetRecords(c *fiber.Ctx) error {
	return recordsResponse(c, h.service.All())
}

// Search searches keywords and values for ?term=. Several terms are unioned.
func (h *Handler) Search(c *fiber.Ctx) error {
	terms := queryAll(c, "term")
	if len(terms) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "term is required"})
	}
	return recordsResponse(c, h.service.List(terms))
}

// SearchMetadata returns records holding ?value= but not ?keyword=.
func (h *Handler) SearchMetadata(c *fiber.Ctx) error {
	data := media.Metadata{Keyword: c.Query("keyword"), Value: c.Query("value")}
	return recordsResponse(c, h.service.SearchMetadata(data))
}

// Filter narrows a search to the kind tag in ?category=.
func (h *Handler) Filter(c *fiber.Ctx) error {
	category := c.Query("category")
	if !media.IsFilterTag(category) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "category must be one of -a, -d, -i, -v"})
	}
	args := append([]string{category}, queryAll(c, "term")...)
	return recordsResponse(c, h.service.FilterBy(args))
}

// AddMetadata adds a keyword/value pair to the record at :index.
func (h *Handler) AddMetadata(c *fiber.Ctx) error {
	r, err := h.recordAt(c)
	if err != nil {
		return err
	}
	var data media.Metadata
	if err := c.BodyParser(&data); err != nil || data.Keyword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "keyword and value are required"})
	}
	h.service.AddMetadata(r, data)
	slog.Info("Metadata added", "filename", r.Filename, "keyword", data.Keyword)
	return c.JSON(r)
}

// RemoveRecordField removes :key from the record at :index.
func (h *Handler) RemoveRecordField(c *fiber.Ctx) error {
	r, err := h.recordAt(c)
	if err != nil {
		return err
	}
	key := c.Params("key")
	if !h.service.RemoveRecordField(r, key) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "cannot remove " + key + " from " + r.Filename + " because it is of type " + string(r.Kind),
		})
	}
	return c.JSON(r)
}

// RemoveMetadata removes ?keyword=&value= from every record holding it.
func (h *Handler) RemoveMetadata(c *fiber.Ctx) error {
	data := media.Metadata{Keyword: c.Query("keyword"), Value: c.Query("value")}
	if data.Keyword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "keyword is required"})
	}
	h.service.RemoveMetadata(data)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) recordAt(c *fiber.Ctx) (*media.Record, error) {
	records := h.service.All()
	i, err := strconv.Atoi(c.Params("index"))
	if err != nil || i < 0 || i >= len(records) {
		return nil, fiber.NewError(fiber.StatusNotFound, "no record at index "+c.Params("index"))
	}
	return records[i], nil
}

func queryAll(c *fiber.Ctx, key string) []string {
	var values []string
	for _, v := range c.Context().QueryArgs().PeekMulti(key) {
		if len(v) > 0 {
			values = append(values, string(v))
		}
	}
	return values
}
