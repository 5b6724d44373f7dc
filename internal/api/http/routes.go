package httpapi

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/i474232898/skysense/internal/store"
	"github.com/i474232898/skysense/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, logger *zap.Logger) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather/search", func(c *fiber.Ctx) error {
		q, err := parseSearchQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		outcome, published := service.Run(c.UserContext(), q.City)
		logger.Info("search finished",
			zap.String("city", q.City),
			zap.String("state", string(outcome.State)),
			zap.Uint64("token", outcome.Token),
			zap.Bool("published", published))

		return c.Status(statusFor(outcome.State)).JSON(outcome)
	})

	v1.Get("/weather/latest", func(c *fiber.Ctx) error {
		outcome, err := service.Latest()
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no search has completed yet")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to read latest outcome")
		}
		return c.JSON(outcome)
	})

	v1.Get("/themes/:code", func(c *fiber.Ctx) error {
		code, err := strconv.Atoi(c.Params("code"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "weather code must be an integer")
		}
		return c.JSON(fiber.Map{
			"code":           code,
			"classification": weather.Classify(code),
		})
	})
}

// searchQuery holds query parameters for the search endpoint.
type searchQuery struct {
	City string `validate:"required,max=200"`
}

func parseSearchQuery(c *fiber.Ctx) (searchQuery, error) {
	q := searchQuery{City: strings.TrimSpace(c.Query("city"))}
	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

func statusFor(s weather.State) int {
	switch s {
	case weather.StateDone:
		return fiber.StatusOK
	case weather.StateNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusBadGateway
	}
}
