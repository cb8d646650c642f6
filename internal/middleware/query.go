package middleware

import (
	"strconv"
	"trivia-api/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by ParseListQuery
const (
	LocalsCategoryID = "validated_category_id"
	LocalsPage       = "validated_page"
)

// ParseListQuery validates the category_id and page query parameters shared
// by the listing and search endpoints. A non-numeric category_id is a bad
// request; a missing or non-numeric page falls back to page 1.
func ParseListQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if raw := c.Query("category_id"); raw != "" {
			categoryID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return domain.NewBadRequestError("category_id must be an integer", err).
					WithContext("category_id", raw)
			}
			c.Locals(LocalsCategoryID, &categoryID)
		}

		storePage(c)
		return c.Next()
	}
}

// ParsePageQuery reads only the page query parameter. Search uses it since
// it has no category filter.
func ParsePageQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		storePage(c)
		return c.Next()
	}
}

func storePage(c *fiber.Ctx) {
	c.Locals(LocalsPage, c.QueryInt("page", 1))
}

// CategoryID returns the category filter stored by ParseListQuery, if any.
func CategoryID(c *fiber.Ctx) *int64 {
	if v, ok := c.Locals(LocalsCategoryID).(*int64); ok {
		return v
	}
	return nil
}

// Page returns the page number stored by ParseListQuery or ParsePageQuery,
// defaulting to 1.
func Page(c *fiber.Ctx) int {
	if v, ok := c.Locals(LocalsPage).(int); ok {
		return v
	}
	return 1
}
