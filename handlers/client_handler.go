package handlers

import (
	"github.com/aurelienmx/skillmarket/database"
	"github.com/aurelienmx/skillmarket/models"
	"github.com/gofiber/fiber/v2"
)

type UpdateClientRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	City      *string `json:"city"`
	CountryID *uint   `json:"country_id"`
}

func GetMyClientProfile(c *fiber.Ctx) error {
	clientID, _ := currentUser(c)

	var client models.Client
	if err := database.DB.Preload("Country").First(&client, "id = ?", clientID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Client not found"})
	}
	return c.JSON(client)
}

func UpdateMyClientProfile(c *fiber.Ctx) error {
	clientID, _ := currentUser(c)

	var client models.Client
	if err := database.DB.First(&client, "id = ?", clientID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Client not found"})
	}

	var req UpdateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.FirstName != nil {
		client.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		client.LastName = *req.LastName
	}
	if req.City != nil {
		client.City = req.City
	}
	if req.CountryID != nil {
		client.CountryID = req.CountryID
	}

	if err := database.DB.Save(&client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}
	return c.JSON(client)
}

func DeleteMyClientAccount(c *fiber.Ctx) error {
	clientID, _ := currentUser(c)

	var client models.Client
	if err := database.DB.First(&client, "id = ?", clientID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Client not found"})
	}

	// Deleting the bookings first frees their slots through the booking
	// delete hook; the client delete hook then clears the upload subtree.
	var bookings []models.Booking
	if err := database.DB.Where("client_id = ?", client.ID).Find(&bookings).Error; err == nil {
		for i := range bookings {
			database.DB.Delete(&bookings[i])
		}
	}

	if err := database.DB.Delete(&client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete account"})
	}
	return c.JSON(fiber.Map{"message": "Account deleted"})
}
