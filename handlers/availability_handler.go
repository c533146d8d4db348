package handlers

import (
	"github.com/aurelienmx/skillmarket/database"
	"github.com/aurelienmx/skillmarket/models"
	"github.com/gofiber/fiber/v2"
)

type CreateSlotRequest struct {
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

func CreateAvailabilitySlot(c *fiber.Ctx) error {
	providerID, _ := currentUser(c)

	var req CreateSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	slot := models.AvailabilitySlot{
		ProviderID: providerID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}
	if err := database.DB.Create(&slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create slot"})
	}
	return c.Status(fiber.StatusCreated).JSON(slot)
}

func ListProviderSlots(c *fiber.Ctx) error {
	var provider models.Provider
	if err := database.DB.Where("slug = ?", c.Params("slug")).First(&provider).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Provider not found"})
	}

	var slots []models.AvailabilitySlot
	query := database.DB.Where("provider_id = ?", provider.ID)
	if c.Query("free") == "true" {
		query = query.Where("is_booked = ?", false)
	}
	if err := query.Find(&slots).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch slots"})
	}
	return c.JSON(slots)
}

func DeleteAvailabilitySlot(c *fiber.Ctx) error {
	providerID, _ := currentUser(c)

	var slot models.AvailabilitySlot
	if err := database.DB.First(&slot, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Slot not found"})
	}
	if slot.ProviderID != providerID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not own this slot"})
	}
	if slot.IsBooked {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Slot has an accepted booking"})
	}

	if err := database.DB.Delete(&slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete slot"})
	}
	return c.JSON(fiber.Map{"message": "Slot deleted"})
}
