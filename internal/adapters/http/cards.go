package http

import (
	"github.com/gofiber/fiber/v2"
)

// Card endpoints are read-only views over stored sessions, consumed by the
// UI renderers. An unknown or expired state id is a not-found condition the
// renderer shows as a "session expired" card, never a crash.

// SearchCardHandler returns the session backing a search summary card.
func SearchCardHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stateID := c.Params("stateId")
		sess, ok := deps.Sessions.Get(stateID)
		if !ok {
			return errNotFound(c, "session not found or expired: "+stateID)
		}
		return c.JSON(sess)
	}
}

// MapCardHandler returns the map view data for a session: center, bounds,
// and the result pins.
func MapCardHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stateID := c.Params("stateId")
		sess, ok := deps.Sessions.Get(stateID)
		if !ok {
			return errNotFound(c, "session not found or expired: "+stateID)
		}
		return c.JSON(fiber.Map{
			"state_id": sess.StateID,
			"center":   sess.Center,
			"bounds":   sess.Bounds,
			"results":  sess.Results,
		})
	}
}
