package handlers

import (
	"github.com/aurelienmx/skillmarket/database"
	"github.com/aurelienmx/skillmarket/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UpdateProviderRequest struct {
	FirstName    *string  `json:"first_name"`
	LastName     *string  `json:"last_name"`
	Headline     *string  `json:"headline"`
	Bio          *string  `json:"bio"`
	City         *string  `json:"city"`
	HourlyRate   *float64 `json:"hourly_rate"`
	CountryID    *uint    `json:"country_id"`
	LanguageIDs  []uint   `json:"language_ids"`
	JobIDs       []uint   `json:"job_ids"`
	HardSkillIDs []uint   `json:"hard_skill_ids"`
	SoftSkillIDs []uint   `json:"soft_skill_ids"`
}

func ListProviders(c *fiber.Ctx) error {
	var providers []models.Provider
	query := database.DB.
		Preload("Country").
		Preload("Languages").
		Preload("Jobs").
		Preload("HardSkills").
		Preload("SoftSkills")

	if job := c.Query("job"); job != "" {
		query = query.
			Joins("JOIN provider_jobs ON provider_jobs.provider_id = providers.id").
			Joins("JOIN jobs ON jobs.id = provider_jobs.job_id").
			Where("jobs.slug = ?", job)
	}

	if err := query.Find(&providers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch providers"})
	}
	return c.JSON(providers)
}

func GetProviderBySlug(c *fiber.Ctx) error {
	var provider models.Provider
	err := database.DB.
		Preload("Country").
		Preload("Languages").
		Preload("Jobs").
		Preload("HardSkills").
		Preload("SoftSkills").
		Where("slug = ?", c.Params("slug")).
		First(&provider).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Provider not found"})
	}
	return c.JSON(provider)
}

func GetMyProviderProfile(c *fiber.Ctx) error {
	providerID, _ := currentUser(c)

	var provider models.Provider
	err := database.DB.
		Preload("Country").
		Preload("Languages").
		Preload("Jobs").
		Preload("HardSkills").
		Preload("SoftSkills").
		First(&provider, "id = ?", providerID).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Provider not found"})
	}
	return c.JSON(provider)
}

// UpdateMyProviderProfile saves the whole record; a first or last name
// change regenerates the slug in the same transaction via the model hook.
func UpdateMyProviderProfile(c *fiber.Ctx) error {
	providerID, _ := currentUser(c)

	var provider models.Provider
	if err := database.DB.First(&provider, "id = ?", providerID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Provider not found"})
	}

	var req UpdateProviderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.FirstName != nil {
		provider.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		provider.LastName = *req.LastName
	}
	if req.Headline != nil {
		provider.Headline = req.Headline
	}
	if req.Bio != nil {
		provider.Bio = req.Bio
	}
	if req.City != nil {
		provider.City = req.City
	}
	if req.HourlyRate != nil {
		provider.HourlyRate = *req.HourlyRate
	}
	if req.CountryID != nil {
		provider.CountryID = req.CountryID
	}

	if err := database.DB.Save(&provider).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	if req.LanguageIDs != nil {
		var languages []*models.Language
		database.DB.Find(&languages, req.LanguageIDs)
		database.DB.Model(&provider).Association("Languages").Replace(languages)
	}
	if req.JobIDs != nil {
		var jobs []*models.Job
		database.DB.Find(&jobs, req.JobIDs)
		database.DB.Model(&provider).Association("Jobs").Replace(jobs)
	}
	if req.HardSkillIDs != nil {
		var skills []*models.HardSkill
		database.DB.Find(&skills, req.HardSkillIDs)
		database.DB.Model(&provider).Association("HardSkills").Replace(skills)
	}
	if req.SoftSkillIDs != nil {
		var skills []*models.SoftSkill
		database.DB.Find(&skills, req.SoftSkillIDs)
		database.DB.Model(&provider).Association("SoftSkills").Replace(skills)
	}

	return c.JSON(provider)
}

// DeleteMyProviderAccount removes the provider and everything it owns.
// The upload subtree goes away in the provider's delete hook.
func DeleteMyProviderAccount(c *fiber.Ctx) error {
	providerID, _ := currentUser(c)

	var provider models.Provider
	if err := database.DB.First(&provider, "id = ?", providerID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Provider not found"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var services []models.Service
		if err := tx.Where("provider_id = ?", provider.ID).Find(&services).Error; err != nil {
			return err
		}
		for i := range services {
			if err := tx.Delete(&services[i]).Error; err != nil {
				return err
			}
		}

		var articles []models.Article
		if err := tx.Where("provider_id = ?", provider.ID).Find(&articles).Error; err != nil {
			return err
		}
		for i := range articles {
			if err := tx.Delete(&articles[i]).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("provider_id = ?", provider.ID).Delete(&models.AvailabilitySlot{}).Error; err != nil {
			return err
		}
		return tx.Delete(&provider).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete account"})
	}

	return c.JSON(fiber.Map{"message": "Account deleted"})
}
