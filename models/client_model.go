package models

import (
	"log"
	"strings"
	"time"

	"github.com/aurelienmx/skillmarket/lifecycle"
	"github.com/aurelienmx/skillmarket/slugs"
	"github.com/aurelienmx/skillmarket/uploads"
	"gorm.io/gorm"
)

type Client struct {
	ID             uint      `gorm:"primary_key" json:"id"`
	FirstName      string    `gorm:"size:100;not null" json:"first_name"`
	LastName       string    `gorm:"size:100;not null" json:"last_name"`
	Slug           string    `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Email          string    `gorm:"size:255;not null;unique" json:"email"`
	Password       string    `gorm:"not null" json:"-"`
	City           *string   `gorm:"size:100" json:"city"`
	ProfilePicture *string   `gorm:"size:255" json:"profile_picture"`
	CountryID      *uint     `json:"country_id"`
	Country        *Country  `gorm:"foreignkey:CountryID" json:"country,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (c *Client) SlugKind() string { return slugs.KindClient }

func (c *Client) SlugSource() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

func (c *Client) CurrentSlug() string { return c.Slug }
func (c *Client) SetSlug(slug string) { c.Slug = slug }

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	return lifecycle.GenerateSlug(tx, c)
}

func (c *Client) BeforeUpdate(tx *gorm.DB) error {
	return lifecycle.RefreshSlug(tx, c)
}

func (c *Client) BeforeDelete(tx *gorm.DB) error {
	for _, err := range uploads.Default.RemoveTree(uploads.Default.ClientDir(c.ID)) {
		log.Printf("⚠️ Upload cleanup for client %d: %v", c.ID, err)
	}
	return nil
}
