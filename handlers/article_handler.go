package handlers

import (
	"log"

	"github.com/aurelienmx/skillmarket/database"
	"github.com/aurelienmx/skillmarket/models"
	"github.com/aurelienmx/skillmarket/services"
	"github.com/gofiber/fiber/v2"
)

type ArticleRequest struct {
	Title   string `json:"title" validate:"required,min=3"`
	Content string `json:"content" validate:"required"`
	TagIDs  []uint `json:"tag_ids"`
}

func CreateArticle(c *fiber.Ctx) error {
	providerID, _ := currentUser(c)

	var req ArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	html, err := services.RenderContent(req.Content)
	if err != nil {
		log.Printf("🔥 Failed to render article content: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid article content"})
	}

	article := models.Article{
		ProviderID:  providerID,
		Title:       req.Title,
		Content:     req.Content,
		ContentHTML: html,
	}
	if err := database.DB.Create(&article).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create article"})
	}

	if len(req.TagIDs) > 0 {
		var tags []*models.Tag
		database.DB.Find(&tags, req.TagIDs)
		database.DB.Model(&article).Association("Tags").Replace(tags)
	}

	return c.Status(fiber.StatusCreated).JSON(article)
}

func ListArticles(c *fiber.Ctx) error {
	var articles []models.Article
	query := database.DB.Preload("Tags").Preload("Provider")

	if tag := c.Query("tag"); tag != "" {
		query = query.
			Joins("JOIN article_tags ON article_tags.article_id = articles.id").
			Joins("JOIN tags ON tags.id = article_tags.tag_id").
			Where("tags.slug = ?", tag)
	}

	if err := query.Order("created_at desc").Find(&articles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch articles"})
	}
	return c.JSON(articles)
}

func GetArticleBySlug(c *fiber.Ctx) error {
	var article models.Article
	err := database.DB.Preload("Tags").Preload("Provider").
		Where("slug = ?", c.Params("slug")).
		First(&article).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Article not found"})
	}
	return c.JSON(article)
}

func UpdateArticle(c *fiber.Ctx) error {
	providerID, _ := currentUser(c)

	var article models.Article
	if err := database.DB.First(&article, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Article not found"})
	}
	if article.ProviderID != providerID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not own this article"})
	}

	var req ArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	html, err := services.RenderContent(req.Content)
	if err != nil {
		log.Printf("🔥 Failed to render article content: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid article content"})
	}

	article.Title = req.Title
	article.Content = req.Content
	article.ContentHTML = html
	if err := database.DB.Save(&article).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update article"})
	}

	if req.TagIDs != nil {
		var tags []*models.Tag
		database.DB.Find(&tags, req.TagIDs)
		database.DB.Model(&article).Association("Tags").Replace(tags)
	}

	return c.JSON(article)
}

func DeleteArticle(c *fiber.Ctx) error {
	providerID, _ := currentUser(c)

	var article models.Article
	if err := database.DB.First(&article, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Article not found"})
	}
	if article.ProviderID != providerID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not own this article"})
	}

	if err := database.DB.Delete(&article).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete article"})
	}
	return c.JSON(fiber.Map{"message": "Article deleted"})
}
