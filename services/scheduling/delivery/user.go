package delivery

import (
	"timetable/config"
	"timetable/domain"
	"timetable/middleware"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type userHandler struct {
	uuc domain.UserUseCase
}

func NewUserHandler(app *fiber.App, uc domain.UserUseCase) {
	handler := &userHandler{
		uuc: uc,
	}

	route := app.Group("/users")

	route.Post("/", middleware.AuthRequired(), middleware.AdminTierRequired(), handler.CreateUser)
	route.Get("/", middleware.AuthRequired(), middleware.AdminTierRequired(), handler.GetAllUsers)
	route.Get("/:id", middleware.AuthRequired(), middleware.AdminTierRequired(), handler.GetUser)
	route.Put("/:id", middleware.AuthRequired(), middleware.AdminTierRequired(), handler.UpdateUser)
	route.Delete("/:id", middleware.AuthRequired(), middleware.AdminTierRequired(), handler.DeleteUser)
}

type userPayload struct {
	Email         string  `json:"email" valid:"required~Email is required,email~Invalid email format"`
	Username      string  `json:"username" valid:"required~Username is required"`
	Password      string  `json:"password" valid:"required~Password is required"`
	FullName      string  `json:"full_name" valid:"required~Full name is required"`
	Role          string  `json:"role" valid:"required~Role is required"`
	Phone         *string `json:"phone"`
	InstitutionID *int    `json:"institution_id"`
	TeacherID     *int    `json:"teacher_id"`
	GroupID       *int    `json:"group_id"`
}

func (uh *userHandler) CreateUser(c *fiber.Ctx) error {
	claims := userClaims(c)

	var payload userPayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(claimsUsername(claims), fiber.StatusBadRequest, "CreateUser")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
		})
	}

	if _, err := govalidator.ValidateStruct(payload); err != nil {
		config.PrintLogInfo(claimsUsername(claims), fiber.StatusBadRequest, "CreateUser")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	role, err := domain.ParseRole(payload.Role)
	if err != nil {
		return respondError(c, claims, "CreateUser", err, "Invalid data")
	}

	user := domain.User{
		Email:         payload.Email,
		Username:      payload.Username,
		FullName:      payload.FullName,
		Role:          role,
		Phone:         payload.Phone,
		InstitutionID: payload.InstitutionID,
		TeacherID:     payload.TeacherID,
		GroupID:       payload.GroupID,
	}

	created, err := uh.uuc.CreateUserUC(c.Context(), &user, payload.Password)
	if err != nil {
		return respondError(c, claims, "CreateUser", err, "Failed to create user")
	}

	config.PrintLogInfo(claimsUsername(claims), fiber.StatusCreated, "CreateUser")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User created",
		"data":    created,
	})
}

func (uh *userHandler) GetAllUsers(c *fiber.Ctx) error {
	claims := userClaims(c)

	users, err := uh.uuc.GetAllUsersUC(c.Context())
	if err != nil {
		return respondError(c, claims, "GetAllUsers", err, "Failed to get users")
	}

	config.PrintLogInfo(claimsUsername(claims), fiber.StatusOK, "GetAllUsers")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Successfully retrieved users",
		"data":    users,
	})
}

func (uh *userHandler) GetUser(c *fiber.Ctx) error {
	claims := userClaims(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(claimsUsername(claims), fiber.StatusBadRequest, "GetUser")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid user id",
		})
	}

	user, err := uh.uuc.GetUserByIDUC(c.Context(), id)
	if err != nil {
		return respondError(c, claims, "GetUser", err, "Failed to get user")
	}

	config.PrintLogInfo(claimsUsername(claims), fiber.StatusOK, "GetUser")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Successfully retrieved user",
		"data":    user,
	})
}

type userUpdatePayload struct {
	Email         *string `json:"email"`
	Username      *string `json:"username"`
	FullName      *string `json:"full_name"`
	Role          *string `json:"role"`
	IsActive      *bool   `json:"is_active"`
	Phone         *string `json:"phone"`
	InstitutionID *int    `json:"institution_id"`
	TeacherID     *int    `json:"teacher_id"`
	GroupID       *int    `json:"group_id"`
}

func (uh *userHandler) UpdateUser(c *fiber.Ctx) error {
	claims := userClaims(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(claimsUsername(claims), fiber.StatusBadRequest, "UpdateUser")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid user id",
		})
	}

	user, err := uh.uuc.GetUserByIDUC(c.Context(), id)
	if err != nil {
		return respondError(c, claims, "UpdateUser", err, "Failed to get user")
	}

	var payload userUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(claimsUsername(claims), fiber.StatusBadRequest, "UpdateUser")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
		})
	}

	if payload.Email != nil {
		user.Email = *payload.Email
	}
	if payload.Username != nil {
		user.Username = *payload.Username
	}
	if payload.FullName != nil {
		user.FullName = *payload.FullName
	}
	if payload.Role != nil {
		role, err := domain.ParseRole(*payload.Role)
		if err != nil {
			return respondError(c, claims, "UpdateUser", err, "Invalid data")
		}
		user.Role = role
	}
	if payload.IsActive != nil {
		user.IsActive = *payload.IsActive
	}
	if payload.Phone != nil {
		user.Phone = payload.Phone
	}
	if payload.InstitutionID != nil {
		user.InstitutionID = payload.InstitutionID
	}
	if payload.TeacherID != nil {
		user.TeacherID = payload.TeacherID
	}
	if payload.GroupID != nil {
		user.GroupID = payload.GroupID
	}

	updated, err := uh.uuc.UpdateUserUC(c.Context(), user)
	if err != nil {
		return respondError(c, claims, "UpdateUser", err, "Failed to update user")
	}

	config.PrintLogInfo(claimsUsername(claims), fiber.StatusOK, "UpdateUser")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "User updated",
		"data":    updated,
	})
}

func (uh *userHandler) DeleteUser(c *fiber.Ctx) error {
	claims := userClaims(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(claimsUsername(claims), fiber.StatusBadRequest, "DeleteUser")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid user id",
		})
	}

	if err := uh.uuc.DeleteUserUC(c.Context(), id); err != nil {
		return respondError(c, claims, "DeleteUser", err, "Failed to delete user")
	}

	config.PrintLogInfo(claimsUsername(claims), fiber.StatusOK, "DeleteUser")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "User deleted successfully",
	})
}
