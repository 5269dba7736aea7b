package delivery

import (
	"timetable/config"
	"timetable/domain"
	"timetable/middleware"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type changeRequestHandler struct {
	cuc domain.ChangeRequestUseCase
}

func NewChangeRequestHandler(app *fiber.App, uc domain.ChangeRequestUseCase) {
	handler := &changeRequestHandler{
		cuc: uc,
	}

	route := app.Group("/change-requests")

	route.Post("/", middleware.AuthRequired(), handler.CreateChangeRequest)
	route.Get("/", middleware.AuthRequired(), handler.GetChangeRequests)
	route.Get("/:id", middleware.AuthRequired(), handler.GetChangeRequest)
	route.Put("/:id", middleware.AuthRequired(), middleware.AdminTierRequired(), handler.DecideChangeRequest)
}

type changeRequestPayload struct {
	ChangeType      string  `json:"change_type" valid:"required~Change type is required"`
	Reason          string  `json:"reason" valid:"required~Reason is required"`
	RequestedDate   string  `json:"requested_date" valid:"required~Requested date is required"`
	ScheduleEntryID int     `json:"schedule_entry_id" valid:"required~Schedule entry is required"`
	NewTimeSlotID   *int    `json:"new_time_slot_id"`
	NewDate         *string `json:"new_date"`
	NewClassroomID  *int    `json:"new_classroom_id"`
	NewTeacherID    *int    `json:"new_teacher_id"`
}

func (ch *changeRequestHandler) CreateChangeRequest(c *fiber.Ctx) error {
	claims := userClaims(c)

	var payload changeRequestPayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(claimsUsername(claims), fiber.StatusBadRequest, "CreateChangeRequest")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
		})
	}

	if _, err := govalidator.ValidateStruct(payload); err != nil {
		config.PrintLogInfo(claimsUsername(claims), fiber.StatusBadRequest, "CreateChangeRequest")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	changeType, err := domain.ParseChangeType(payload.ChangeType)
	if err != nil {
		return respondError(c, claims, "CreateChangeRequest", err, "Invalid data")
	}

	requestedDate, err := parseDate(payload.RequestedDate)
	if err != nil {
		return respondError(c, claims, "CreateChangeRequest", err, "Invalid data")
	}

	request := domain.ChangeRequest{
		ChangeType:      changeType,
		Reason:          payload.Reason,
		RequestedDate:   requestedDate,
		ScheduleEntryID: payload.ScheduleEntryID,
		NewTimeSlotID:   payload.NewTimeSlotID,
		NewClassroomID:  payload.NewClassroomID,
		NewTeacherID:    payload.NewTeacherID,
	}

	if payload.NewDate != nil {
		newDate, err := parseDate(*payload.NewDate)
		if err != nil {
			return respondError(c, claims, "CreateChangeRequest", err, "Invalid data")
		}
		request.NewDate = &newDate
	}

	created, err := ch.cuc.SubmitUC(c.Context(), &request, claims)
	if err != nil {
		return respondError(c, claims, "CreateChangeRequest", err, "Failed to create change request")
	}

	config.PrintLogInfo(claimsUsername(claims), fiber.StatusCreated, "CreateChangeRequest")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Change request submitted",
		"data":    created,
	})
}

func (ch *changeRequestHandler) GetChangeRequests(c *fiber.Ctx) error {
	claims := userClaims(c)

	var filter domain.ChangeRequestFilter
	if v := c.Query("status"); v != "" {
		status := domain.ChangeRequestStatus(v)
		filter.Status = &status
	}

	requests, err := ch.cuc.GetRequestsUC(c.Context(), filter, claims)
	if err != nil {
		return respondError(c, claims, "GetChangeRequests", err, "Failed to get change requests")
	}

	config.PrintLogInfo(claimsUsername(claims), fiber.StatusOK, "GetChangeRequests")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Successfully retrieved change requests",
		"data":    requests,
	})
}

func (ch *changeRequestHandler) GetChangeRequest(c *fiber.Ctx) error {
	claims := userClaims(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(claimsUsername(claims), fiber.StatusBadRequest, "GetChangeRequest")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid change request id",
		})
	}

	request, err := ch.cuc.GetRequestByIDUC(c.Context(), id, claims)
	if err != nil {
		return respondError(c, claims, "GetChangeRequest", err, "Failed to get change request")
	}

	config.PrintLogInfo(claimsUsername(claims), fiber.StatusOK, "GetChangeRequest")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Successfully retrieved change request",
		"data":    request,
	})
}

type decisionPayload struct {
	Status       string  `json:"status" valid:"required~Status is required"`
	AdminComment *string `json:"admin_comment"`
}

func (ch *changeRequestHandler) DecideChangeRequest(c *fiber.Ctx) error {
	claims := userClaims(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(claimsUsername(claims), fiber.StatusBadRequest, "DecideChangeRequest")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid change request id",
		})
	}

	var payload decisionPayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(claimsUsername(claims), fiber.StatusBadRequest, "DecideChangeRequest")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
		})
	}

	if _, err := govalidator.ValidateStruct(payload); err != nil {
		config.PrintLogInfo(claimsUsername(claims), fiber.StatusBadRequest, "DecideChangeRequest")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	decision := domain.Decision{
		Status:       domain.ChangeRequestStatus(payload.Status),
		AdminComment: payload.AdminComment,
	}

	request, outcome, err := ch.cuc.DecideUC(c.Context(), id, decision, claims)
	if err != nil {
		return respondError(c, claims, "DecideChangeRequest", err, "Failed to decide change request")
	}

	config.PrintLogInfo(claimsUsername(claims), fiber.StatusOK, "DecideChangeRequest")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Change request processed",
		"data": fiber.Map{
			"request":       request,
			"apply_outcome": outcome,
		},
	})
}
