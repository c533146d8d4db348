package handlers

import (
	"net/url"
	"path/filepath"
	"strconv"
	"time"

	config "github.com/aurelienmx/skillmarket/configs"
	"github.com/aurelienmx/skillmarket/database"
	"github.com/aurelienmx/skillmarket/models"
	"github.com/aurelienmx/skillmarket/uploads"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
)

// UploadProfilePicture stores the image inside the caller's owned subtree
// and records the path on the profile.
func UploadProfilePicture(c *fiber.Ctx) error {
	userID, role := currentUser(c)

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing file"})
	}

	var dir string
	if role == "provider" {
		dir = uploads.Default.ProviderDir(userID)
	} else {
		dir = uploads.Default.ClientDir(userID)
	}
	if err := uploads.Default.Ensure(dir); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to prepare upload directory"})
	}

	dest := filepath.Join(dir, "profile"+filepath.Ext(file.Filename))
	if err := c.SaveFile(file, dest); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save file"})
	}

	if role == "provider" {
		database.DB.Model(&models.Provider{}).Where("id = ?", userID).Update("profile_picture", dest)
	} else {
		database.DB.Model(&models.Client{}).Where("id = ?", userID).Update("profile_picture", dest)
	}

	return c.JSON(fiber.Map{"path": dest})
}

func UploadServiceCover(c *fiber.Ctx) error {
	providerID, _ := currentUser(c)

	var service models.Service
	if err := database.DB.First(&service, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}
	if service.ProviderID != providerID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not own this service"})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing file"})
	}

	dir := uploads.Default.ServiceDir(service.ProviderID, service.ID)
	if err := uploads.Default.Ensure(dir); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to prepare upload directory"})
	}

	dest := filepath.Join(dir, "cover"+filepath.Ext(file.Filename))
	if err := c.SaveFile(file, dest); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save file"})
	}

	database.DB.Model(&service).Update("cover", dest)
	return c.JSON(fiber.Map{"path": dest})
}

// UploadArticleImage stores a cover or in-content image under the article's
// subtree. Content images keep their original filename.
func UploadArticleImage(c *fiber.Ctx) error {
	providerID, _ := currentUser(c)

	var article models.Article
	if err := database.DB.First(&article, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Article not found"})
	}
	if article.ProviderID != providerID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not own this article"})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing file"})
	}

	dir := uploads.Default.ArticleDir(article.ProviderID, article.ID)
	if err := uploads.Default.Ensure(dir); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to prepare upload directory"})
	}

	name := filepath.Base(file.Filename)
	if c.Query("kind") == "cover" {
		name = "cover" + filepath.Ext(file.Filename)
	}
	dest := filepath.Join(dir, name)
	if err := c.SaveFile(file, dest); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save file"})
	}

	if c.Query("kind") == "cover" {
		database.DB.Model(&article).Update("cover", dest)
	}
	return c.JSON(fiber.Map{"path": dest})
}

// GenerateUploadSignature creates a secure signature for a direct frontend
// upload to Cloudinary (used for assets that never touch local storage).
func GenerateUploadSignature(c *fiber.Ctx) error {
	cloudinaryURL := config.Config("CLOUDINARY_URL")
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to initialize Cloudinary"})
	}

	parsedURL, err := url.Parse(cloudinaryURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to parse Cloudinary URL"})
	}
	secret, _ := parsedURL.User.Password()

	paramsToSign, err := api.StructToParams(uploader.UploadParams{
		Folder: "skillmarket_uploads",
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to prepare signature params"})
	}

	timestamp := time.Now().Unix()
	paramsToSign.Set("timestamp", strconv.FormatInt(timestamp, 10))

	signature, err := api.SignParameters(paramsToSign, secret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to sign upload params"})
	}

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"api_key":   cld.Config.Cloud.APIKey,
		"folder":    "skillmarket_uploads",
	})
}
