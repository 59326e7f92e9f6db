package handler

import (
	"context"
	"court_manager/constants"
	"strconv"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UpgradeFeed rejects plain HTTP requests on the feed route.
func (h *Handler) UpgradeFeed(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return c.Next()
}

// CourtFeed streams a court's current reservations, then every reservation
// event published for that court until the client disconnects.
func (h *Handler) CourtFeed(c *websocket.Conn) {
	defer c.Close()

	id64, err := strconv.ParseUint(c.Params("courtId"), 10, 0)
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"message": constants.DATA_INPUT_IS_NOT_NUMBER})
		return
	}
	courtId := uint(id64)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed, closeFeed, err := h.feed.Subscribe(ctx, courtId)
	if err != nil {
		h.log.Warn("court feed unavailable", zap.Uint("courtId", courtId), zap.Error(err))
		_ = c.WriteJSON(fiber.Map{"message": constants.FEED_DISABLED, "error": err.Error()})
		return
	}
	defer closeFeed()

	// first frame: current reservations
	reservations, err := h.reservations.ListByCourt(ctx, courtId)
	if err != nil {
		h.log.Error("failed to load court reservations", zap.Uint("courtId", courtId), zap.Error(err))
		return
	}
	if err := c.WriteJSON(reservations); err != nil {
		return
	}

	// reads only to notice the client going away
	go func() {
		defer cancel()
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case payload, ok := <-feed:
			if !ok {
				return
			}
			if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		}
	}
}
