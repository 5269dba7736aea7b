package delivery

import (
	"timetable/config"
	"timetable/domain"
	"timetable/middleware"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type scheduleHandler struct {
	suc domain.ScheduleUseCase
}

func NewScheduleHandler(app *fiber.App, uc domain.ScheduleUseCase) {
	handler := &scheduleHandler{
		suc: uc,
	}

	route := app.Group("/schedule")

	route.Post("/", middleware.AuthRequired(), middleware.AdminTierRequired(), handler.CreateScheduleEntry)
	route.Get("/", middleware.AuthRequired(), handler.GetSchedule)
	route.Get("/:id", middleware.AuthRequired(), handler.GetScheduleEntry)
	route.Put("/:id", middleware.AuthRequired(), middleware.AdminTierRequired(), handler.UpdateScheduleEntry)
	route.Delete("/:id", middleware.AuthRequired(), middleware.AdminTierRequired(), handler.DeleteScheduleEntry)
}

type scheduleEntryPayload struct {
	DayOfWeek    string  `json:"day_of_week" valid:"required~Day of week is required"`
	SpecificDate *string `json:"specific_date"`
	Notes        *string `json:"notes"`
	GroupID      int     `json:"group_id" valid:"required~Group is required"`
	SubjectID    int     `json:"subject_id" valid:"required~Subject is required"`
	TeacherID    int     `json:"teacher_id" valid:"required~Teacher is required"`
	ClassroomID  int     `json:"classroom_id" valid:"required~Classroom is required"`
	TimeSlotID   int     `json:"time_slot_id" valid:"required~Time slot is required"`
}

func (sh *scheduleHandler) CreateScheduleEntry(c *fiber.Ctx) error {
	claims := userClaims(c)

	var payload scheduleEntryPayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(claimsUsername(claims), fiber.StatusBadRequest, "CreateScheduleEntry")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
		})
	}

	if _, err := govalidator.ValidateStruct(payload); err != nil {
		config.PrintLogInfo(claimsUsername(claims), fiber.StatusBadRequest, "CreateScheduleEntry")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	day, err := domain.ParseDayOfWeek(payload.DayOfWeek)
	if err != nil {
		return respondError(c, claims, "CreateScheduleEntry", err, "Invalid data")
	}

	entry := domain.ScheduleEntry{
		DayOfWeek:   day,
		Notes:       payload.Notes,
		GroupID:     payload.GroupID,
		SubjectID:   payload.SubjectID,
		TeacherID:   payload.TeacherID,
		ClassroomID: payload.ClassroomID,
		TimeSlotID:  payload.TimeSlotID,
	}

	if payload.SpecificDate != nil {
		date, err := parseDate(*payload.SpecificDate)
		if err != nil {
			return respondError(c, claims, "CreateScheduleEntry", err, "Invalid data")
		}
		entry.SpecificDate = &date
	}

	details, err := sh.suc.CreateEntryUC(c.Context(), &entry)
	if err != nil {
		return respondError(c, claims, "CreateScheduleEntry", err, "Failed to create schedule entry")
	}

	config.PrintLogInfo(claimsUsername(claims), fiber.StatusCreated, "CreateScheduleEntry")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Schedule entry created",
		"data":    details,
	})
}

func (sh *scheduleHandler) GetSchedule(c *fiber.Ctx) error {
	claims := userClaims(c)

	var filter domain.ScheduleFilter
	if v := c.QueryInt("group_id"); v > 0 {
		filter.GroupID = &v
	}
	if v := c.QueryInt("teacher_id"); v > 0 {
		filter.TeacherID = &v
	}
	if v := c.QueryInt("classroom_id"); v > 0 {
		filter.ClassroomID = &v
	}
	if v := c.Query("specific_date"); v != "" {
		date, err := parseDate(v)
		if err != nil {
			return respondError(c, claims, "GetSchedule", err, "Invalid data")
		}
		filter.SpecificDate = &date
	}

	entries, err := sh.suc.GetEntriesUC(c.Context(), filter, claims)
	if err != nil {
		return respondError(c, claims, "GetSchedule", err, "Failed to get schedule")
	}

	config.PrintLogInfo(claimsUsername(claims), fiber.StatusOK, "GetSchedule")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Successfully retrieved schedule",
		"data":    entries,
	})
}

func (sh *scheduleHandler) GetScheduleEntry(c *fiber.Ctx) error {
	claims := userClaims(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(claimsUsername(claims), fiber.StatusBadRequest, "GetScheduleEntry")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid schedule entry id",
		})
	}

	details, err := sh.suc.GetEntryByIDUC(c.Context(), id)
	if err != nil {
		return respondError(c, claims, "GetScheduleEntry", err, "Failed to get schedule entry")
	}

	config.PrintLogInfo(claimsUsername(claims), fiber.StatusOK, "GetScheduleEntry")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Successfully retrieved schedule entry",
		"data":    details,
	})
}

type scheduleEntryUpdatePayload struct {
	DayOfWeek           *string `json:"day_of_week"`
	SpecificDate        *string `json:"specific_date"`
	Status              *string `json:"status"`
	Notes               *string `json:"notes"`
	GroupID             *int    `json:"group_id"`
	SubjectID           *int    `json:"subject_id"`
	TeacherID           *int    `json:"teacher_id"`
	ClassroomID         *int    `json:"classroom_id"`
	TimeSlotID          *int    `json:"time_slot_id"`
	SubstituteTeacherID *int    `json:"substitute_teacher_id"`
}

func (sh *scheduleHandler) UpdateScheduleEntry(c *fiber.Ctx) error {
	claims := userClaims(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(claimsUsername(claims), fiber.StatusBadRequest, "UpdateScheduleEntry")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid schedule entry id",
		})
	}

	var payload scheduleEntryUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(claimsUsername(claims), fiber.StatusBadRequest, "UpdateScheduleEntry")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
		})
	}

	update := domain.ScheduleEntryUpdate{
		Notes:               payload.Notes,
		GroupID:             payload.GroupID,
		SubjectID:           payload.SubjectID,
		TeacherID:           payload.TeacherID,
		ClassroomID:         payload.ClassroomID,
		TimeSlotID:          payload.TimeSlotID,
		SubstituteTeacherID: payload.SubstituteTeacherID,
	}

	if payload.DayOfWeek != nil {
		day, err := domain.ParseDayOfWeek(*payload.DayOfWeek)
		if err != nil {
			return respondError(c, claims, "UpdateScheduleEntry", err, "Invalid data")
		}
		update.DayOfWeek = &day
	}
	if payload.SpecificDate != nil {
		date, err := parseDate(*payload.SpecificDate)
		if err != nil {
			return respondError(c, claims, "UpdateScheduleEntry", err, "Invalid data")
		}
		update.SpecificDate = &date
	}
	if payload.Status != nil {
		status := domain.ScheduleStatus(*payload.Status)
		update.Status = &status
	}

	details, err := sh.suc.UpdateEntryUC(c.Context(), id, &update)
	if err != nil {
		return respondError(c, claims, "UpdateScheduleEntry", err, "Failed to update schedule entry")
	}

	config.PrintLogInfo(claimsUsername(claims), fiber.StatusOK, "UpdateScheduleEntry")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Schedule entry updated",
		"data":    details,
	})
}

func (sh *scheduleHandler) DeleteScheduleEntry(c *fiber.Ctx) error {
	claims := userClaims(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(claimsUsername(claims), fiber.StatusBadRequest, "DeleteScheduleEntry")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid schedule entry id",
		})
	}

	if err := sh.suc.DeleteEntryUC(c.Context(), id); err != nil {
		return respondError(c, claims, "DeleteScheduleEntry", err, "Failed to delete schedule entry")
	}

	config.PrintLogInfo(claimsUsername(claims), fiber.StatusOK, "DeleteScheduleEntry")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Schedule entry deleted successfully",
	})
}
