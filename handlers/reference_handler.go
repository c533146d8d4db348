package handlers

import (
	"github.com/aurelienmx/skillmarket/database"
	"github.com/aurelienmx/skillmarket/models"
	"github.com/gofiber/fiber/v2"
)

// Reference data comes from fixtures; these endpoints only read it.

func ListCountries(c *fiber.Ctx) error {
	var countries []models.Country
	if err := database.DB.Order("name").Find(&countries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch countries"})
	}
	return c.JSON(countries)
}

func ListLanguages(c *fiber.Ctx) error {
	var languages []models.Language
	if err := database.DB.Order("name").Find(&languages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch languages"})
	}
	return c.JSON(languages)
}

func ListJobs(c *fiber.Ctx) error {
	var jobs []models.Job
	if err := database.DB.Order("name").Find(&jobs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch jobs"})
	}
	return c.JSON(jobs)
}

func ListHardSkills(c *fiber.Ctx) error {
	var skills []models.HardSkill
	if err := database.DB.Order("name").Find(&skills).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch hard skills"})
	}
	return c.JSON(skills)
}

func ListSoftSkills(c *fiber.Ctx) error {
	var skills []models.SoftSkill
	if err := database.DB.Order("name").Find(&skills).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch soft skills"})
	}
	return c.JSON(skills)
}

func ListTags(c *fiber.Ctx) error {
	var tags []models.Tag
	if err := database.DB.Order("name").Find(&tags).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch tags"})
	}
	return c.JSON(tags)
}
