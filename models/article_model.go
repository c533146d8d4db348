package models

import (
	"log"
	"time"

	"github.com/aurelienmx/skillmarket/lifecycle"
	"github.com/aurelienmx/skillmarket/slugs"
	"github.com/aurelienmx/skillmarket/uploads"
	"gorm.io/gorm"
)

type Article struct {
	ID          uint      `gorm:"primary_key" json:"id"`
	ProviderID  uint      `gorm:"not null" json:"provider_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Slug        string    `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	ContentHTML string    `gorm:"type:text" json:"content_html"`
	Cover       *string   `gorm:"size:255" json:"cover"`
	Tags        []*Tag    `gorm:"many2many:article_tags;" json:"tags,omitempty"`
	Provider    Provider  `gorm:"foreignkey:ProviderID" json:"provider,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (a *Article) SlugKind() string    { return slugs.KindArticle }
func (a *Article) SlugSource() string  { return a.Title }
func (a *Article) CurrentSlug() string { return a.Slug }
func (a *Article) SetSlug(slug string) { a.Slug = slug }

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	return lifecycle.GenerateSlug(tx, a)
}

func (a *Article) BeforeUpdate(tx *gorm.DB) error {
	return lifecycle.RefreshSlug(tx, a)
}

func (a *Article) BeforeDelete(tx *gorm.DB) error {
	for _, err := range uploads.Default.RemoveTree(uploads.Default.ArticleDir(a.ProviderID, a.ID)) {
		log.Printf("⚠️ Upload cleanup for article %d: %v", a.ID, err)
	}
	return nil
}
