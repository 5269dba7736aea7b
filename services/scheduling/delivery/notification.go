package delivery

import (
	"timetable/config"
	"timetable/domain"
	"timetable/middleware"

	"github.com/gofiber/fiber/v2"
)

type notificationHandler struct {
	nuc domain.NotificationUseCase
}

func NewNotificationHandler(app *fiber.App, uc domain.NotificationUseCase) {
	handler := &notificationHandler{
		nuc: uc,
	}

	route := app.Group("/notifications")

	route.Get("/", middleware.AuthRequired(), handler.GetNotifications)
	route.Put("/mark-all-read", middleware.AuthRequired(), handler.MarkAllRead)
	route.Put("/:id/read", middleware.AuthRequired(), handler.MarkRead)
	route.Delete("/:id", middleware.AuthRequired(), handler.DeleteNotification)
}

func (nh *notificationHandler) GetNotifications(c *fiber.Ctx) error {
	claims := userClaims(c)

	unreadOnly := c.QueryBool("unread_only")

	notifications, err := nh.nuc.GetByUserUC(c.Context(), claims.UserID, unreadOnly)
	if err != nil {
		return respondError(c, claims, "GetNotifications", err, "Failed to get notifications")
	}

	config.PrintLogInfo(&claims.Username, fiber.StatusOK, "GetNotifications")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Successfully retrieved notifications",
		"data":    notifications,
	})
}

func (nh *notificationHandler) MarkRead(c *fiber.Ctx) error {
	claims := userClaims(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(&claims.Username, fiber.StatusBadRequest, "MarkRead")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid notification id",
		})
	}

	notification, err := nh.nuc.MarkReadUC(c.Context(), id, claims.UserID)
	if err != nil {
		return respondError(c, claims, "MarkRead", err, "Failed to mark notification as read")
	}

	config.PrintLogInfo(&claims.Username, fiber.StatusOK, "MarkRead")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Notification marked as read",
		"data":    notification,
	})
}

func (nh *notificationHandler) MarkAllRead(c *fiber.Ctx) error {
	claims := userClaims(c)

	if err := nh.nuc.MarkAllReadUC(c.Context(), claims.UserID); err != nil {
		return respondError(c, claims, "MarkAllRead", err, "Failed to mark notifications as read")
	}

	config.PrintLogInfo(&claims.Username, fiber.StatusOK, "MarkAllRead")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "All notifications marked as read",
	})
}

func (nh *notificationHandler) DeleteNotification(c *fiber.Ctx) error {
	claims := userClaims(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(&claims.Username, fiber.StatusBadRequest, "DeleteNotification")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid notification id",
		})
	}

	if err := nh.nuc.DeleteUC(c.Context(), id, claims.UserID); err != nil {
		return respondError(c, claims, "DeleteNotification", err, "Failed to delete notification")
	}

	config.PrintLogInfo(&claims.Username, fiber.StatusOK, "DeleteNotification")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Notification deleted successfully",
	})
}
