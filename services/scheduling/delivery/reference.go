package delivery

import (
	"timetable/config"
	"timetable/domain"
	"timetable/middleware"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

// referenceHandler serves the shared CRUD surface of the reference
// entities. Writes are admin-gated, reads are open to any
// authenticated account.
type referenceHandler[T any] struct {
	ruc      domain.ReferenceUseCase[T]
	resource string
}

func NewReferenceHandler[T any](app *fiber.App, path, resource string, uc domain.ReferenceUseCase[T]) {
	handler := &referenceHandler[T]{
		ruc:      uc,
		resource: resource,
	}

	route := app.Group(path)

	route.Post("/", middleware.AuthRequired(), middleware.AdminTierRequired(), handler.Create)
	route.Get("/", middleware.AuthRequired(), handler.GetAll)
	route.Get("/:id", middleware.AuthRequired(), handler.GetByID)
	route.Put("/:id", middleware.AuthRequired(), middleware.AdminTierRequired(), handler.Update)
	route.Delete("/:id", middleware.AuthRequired(), middleware.AdminTierRequired(), handler.Delete)
}

func (rh *referenceHandler[T]) Create(c *fiber.Ctx) error {
	claims := userClaims(c)

	var item T
	if err := c.BodyParser(&item); err != nil {
		config.PrintLogInfo(claimsUsername(claims), fiber.StatusBadRequest, "Create "+rh.resource)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
		})
	}

	if _, err := govalidator.ValidateStruct(item); err != nil {
		config.PrintLogInfo(claimsUsername(claims), fiber.StatusBadRequest, "Create "+rh.resource)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	if err := rh.ruc.CreateUC(c.Context(), &item); err != nil {
		return respondError(c, claims, "Create "+rh.resource, err, "Failed to create "+rh.resource)
	}

	config.PrintLogInfo(claimsUsername(claims), fiber.StatusCreated, "Create "+rh.resource)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Successfully created " + rh.resource,
		"data":    item,
	})
}

func (rh *referenceHandler[T]) GetAll(c *fiber.Ctx) error {
	claims := userClaims(c)

	items, err := rh.ruc.GetAllUC(c.Context())
	if err != nil {
		return respondError(c, claims, "GetAll "+rh.resource, err, "Failed to get "+rh.resource+"s")
	}

	config.PrintLogInfo(claimsUsername(claims), fiber.StatusOK, "GetAll "+rh.resource)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Successfully retrieved " + rh.resource + "s",
		"data":    items,
	})
}

func (rh *referenceHandler[T]) GetByID(c *fiber.Ctx) error {
	claims := userClaims(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(claimsUsername(claims), fiber.StatusBadRequest, "Get "+rh.resource)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid " + rh.resource + " id",
		})
	}

	item, err := rh.ruc.GetByIDUC(c.Context(), id)
	if err != nil {
		return respondError(c, claims, "Get "+rh.resource, err, "Failed to get "+rh.resource)
	}

	config.PrintLogInfo(claimsUsername(claims), fiber.StatusOK, "Get "+rh.resource)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Successfully retrieved " + rh.resource,
		"data":    item,
	})
}

func (rh *referenceHandler[T]) Update(c *fiber.Ctx) error {
	claims := userClaims(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(claimsUsername(claims), fiber.StatusBadRequest, "Update "+rh.resource)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid " + rh.resource + " id",
		})
	}

	var item T
	if err := c.BodyParser(&item); err != nil {
		config.PrintLogInfo(claimsUsername(claims), fiber.StatusBadRequest, "Update "+rh.resource)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
		})
	}

	updated, err := rh.ruc.UpdateUC(c.Context(), id, &item)
	if err != nil {
		return respondError(c, claims, "Update "+rh.resource, err, "Failed to update "+rh.resource)
	}

	config.PrintLogInfo(claimsUsername(claims), fiber.StatusOK, "Update "+rh.resource)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Successfully updated " + rh.resource,
		"data":    updated,
	})
}

func (rh *referenceHandler[T]) Delete(c *fiber.Ctx) error {
	claims := userClaims(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(claimsUsername(claims), fiber.StatusBadRequest, "Delete "+rh.resource)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid " + rh.resource + " id",
		})
	}

	if err := rh.ruc.DeleteUC(c.Context(), id); err != nil {
		return respondError(c, claims, "Delete "+rh.resource, err, "Failed to delete "+rh.resource)
	}

	config.PrintLogInfo(claimsUsername(claims), fiber.StatusOK, "Delete "+rh.resource)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Successfully deleted " + rh.resource,
	})
}
