package handlers

import (
	"github.com/aurelienmx/skillmarket/database"
	"github.com/aurelienmx/skillmarket/models"
	"github.com/gofiber/fiber/v2"
)

type ServiceRequest struct {
	Title       string  `json:"title" validate:"required,min=3"`
	Description *string `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	TagIDs      []uint  `json:"tag_ids"`
}

func CreateService(c *fiber.Ctx) error {
	providerID, _ := currentUser(c)

	var req ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	service := models.Service{
		ProviderID:  providerID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := database.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create service"})
	}

	if len(req.TagIDs) > 0 {
		var tags []*models.Tag
		database.DB.Find(&tags, req.TagIDs)
		database.DB.Model(&service).Association("Tags").Replace(tags)
	}

	return c.Status(fiber.StatusCreated).JSON(service)
}

func ListServices(c *fiber.Ctx) error {
	var services []models.Service
	query := database.DB.Preload("Tags").Preload("Provider")

	if tag := c.Query("tag"); tag != "" {
		query = query.
			Joins("JOIN service_tags ON service_tags.service_id = services.id").
			Joins("JOIN tags ON tags.id = service_tags.tag_id").
			Where("tags.slug = ?", tag)
	}

	if err := query.Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch services"})
	}
	return c.JSON(services)
}

func GetServiceBySlug(c *fiber.Ctx) error {
	var service models.Service
	err := database.DB.Preload("Tags").Preload("Provider").
		Where("slug = ?", c.Params("slug")).
		First(&service).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}
	return c.JSON(service)
}

// UpdateService saves the whole record; a title change regenerates the slug
// in the same transaction via the model hook.
func UpdateService(c *fiber.Ctx) error {
	providerID, _ := currentUser(c)

	var service models.Service
	if err := database.DB.First(&service, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}
	if service.ProviderID != providerID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not own this service"})
	}

	var req ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	service.Title = req.Title
	service.Description = req.Description
	service.Price = req.Price
	if err := database.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update service"})
	}

	if req.TagIDs != nil {
		var tags []*models.Tag
		database.DB.Find(&tags, req.TagIDs)
		database.DB.Model(&service).Association("Tags").Replace(tags)
	}

	return c.JSON(service)
}

func DeleteService(c *fiber.Ctx) error {
	providerID, _ := currentUser(c)

	var service models.Service
	if err := database.DB.First(&service, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}
	if service.ProviderID != providerID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not own this service"})
	}

	if err := database.DB.Delete(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete service"})
	}
	return c.JSON(fiber.Map{"message": "Service deleted"})
}
