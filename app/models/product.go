package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ImageList stores an ordered list of image paths as a JSON text column.
type ImageList []string

// Value implements driver.Valuer.
func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("models: marshal images: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *ImageList) Scan(src interface{}) error {
	if src == nil {
		*l = ImageList{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("models: cannot scan %T into ImageList", src)
	}
	if len(data) == 0 {
		*l = ImageList{}
		return nil
	}
	return json.Unmarshal(data, l)
}

// Product represents a product in the catalogue.
//
// Both id and slug are unique, stable identifiers; either can be used to
// look a product up.
type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:255;not null;index" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    string    `gorm:"size:100;not null;index" json:"category"`
	Image       string    `gorm:"size:500" json:"image"`
	Images      ImageList `gorm:"type:text" json:"images"`
	InStock     bool      `gorm:"default:true" json:"inStock"`
	Quantity    int       `gorm:"default:0" json:"quantity"`
	Rating      float64   `gorm:"type:decimal(3,2);default:0" json:"rating"`
	ReviewCount int       `gorm:"default:0" json:"reviewCount"`
	Slug        string    `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Featured    bool      `gorm:"default:false" json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsAvailable reports whether the product can actually be purchased.
func (p *Product) IsAvailable() bool {
	return p.InStock && p.Quantity > 0
}

// FormattedPrice renders the price for display, e.g. "$99.99".
func (p *Product) FormattedPrice() string {
	return fmt.Sprintf("$%.2f", p.Price)
}
