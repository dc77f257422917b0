package seeders

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/shinyflakes/app/models"
	"github.com/shashiranjanraj/shinyflakes/pkg/cache"
)

func init() {
	Register("products", SeedProducts)
}

// Products is the canonical catalogue: ten parody products, four of them
// featured, one out of stock. Exported so tests can seed the same data.
func Products() []models.Product {
	return []models.Product{
		{
			Name:        "Blue Sky Crystal",
			Description: "The finest quality crystals straight from Walter's lab. 99.1% pure satisfaction guaranteed! Say my name... and add this to your cart. Heisenberg approved.",
			Price:       99.99,
			Category:    "premium",
			Image:       "/products/blue-sky.jpg",
			Images:      models.ImageList{"/products/blue-sky.jpg", "/products/blue-sky-2.jpg"},
			InStock:     true,
			Quantity:    42,
			Rating:      4.9,
			ReviewCount: 187,
			Slug:        "blue-sky-crystal",
			Featured:    true,
		},
		{
			Name:        "Jesse's Special Mix",
			Description: "Yo, science! This one's pure fire 🔥 Jesse Pinkman's signature blend. Guaranteed to make you say 'Yeah, Science!' Perfect for those late-night coding sessions.",
			Price:       79.99,
			Category:    "special",
			Image:       "/products/jesse-mix.jpg",
			Images:      models.ImageList{"/products/jesse-mix.jpg", "/products/jesse-mix-2.jpg"},
			InStock:     true,
			Quantity:    25,
			Rating:      4.7,
			ReviewCount: 94,
			Slug:        "jesse-special-mix",
			Featured:    true,
		},
		{
			Name:        "Saul's Legal Powder",
			Description: "Better call Saul! Totally legal, we swear. This powder is so legitimate, it comes with its own lawyer. No questions asked, no papers needed.",
			Price:       59.99,
			Category:    "legal",
			Image:       "/products/saul-powder.jpg",
			Images:      models.ImageList{"/products/saul-powder.jpg"},
			InStock:     false,
			Quantity:    0,
			Rating:      4.2,
			ReviewCount: 156,
			Slug:        "saul-legal-powder",
			Featured:    false,
		},
		{
			Name:        "Gus's Professional Grade",
			Description: "Los Pollos Hermanos quality standards applied to crystals. Precision, perfection, and a taste that will blow your mind. Literally.",
			Price:       149.99,
			Category:    "professional",
			Image:       "/products/gus-grade.jpg",
			Images:      models.ImageList{"/products/gus-grade.jpg", "/products/gus-grade-2.jpg"},
			InStock:     true,
			Quantity:    15,
			Rating:      5.0,
			ReviewCount: 67,
			Slug:        "gus-professional-grade",
			Featured:    true,
		},
		{
			Name:        "Hank's Evidence Bag Special",
			Description: "Straight from the DEA evidence locker (just kidding, Hank!). These minerals will rock your world. Marie approved purple packaging included.",
			Price:       39.99,
			Category:    "minerals",
			Image:       "/products/hank-minerals.jpg",
			Images:      models.ImageList{"/products/hank-minerals.jpg"},
			InStock:     true,
			Quantity:    33,
			Rating:      4.1,
			ReviewCount: 89,
			Slug:        "hank-evidence-bag-special",
			Featured:    false,
		},
		{
			Name:        "Skyler's Accounting Special",
			Description: "Money laundering not included. This special edition helps you keep your books clean while your conscience stays dirty. Ted not recommended.",
			Price:       69.99,
			Category:    "accounting",
			Image:       "/products/skyler-special.jpg",
			Images:      models.ImageList{"/products/skyler-special.jpg"},
			InStock:     true,
			Quantity:    18,
			Rating:      3.8,
			ReviewCount: 45,
			Slug:        "skyler-accounting-special",
			Featured:    false,
		},
		{
			Name:        "Mike's Security Grade",
			Description: "No half measures. This product is so secure, it comes with its own private security detail. Mike Ehrmantraut tested and approved.",
			Price:       119.99,
			Category:    "security",
			Image:       "/products/mike-security.jpg",
			Images:      models.ImageList{"/products/mike-security.jpg", "/products/mike-security-2.jpg"},
			InStock:     true,
			Quantity:    12,
			Rating:      4.8,
			ReviewCount: 72,
			Slug:        "mike-security-grade",
			Featured:    true,
		},
		{
			Name:        "Combo's Street Special",
			Description: "RIP Combo. This street-tested formula is perfect for those who want that authentic experience. Comes with a free bandana.",
			Price:       29.99,
			Category:    "street",
			Image:       "/products/combo-special.jpg",
			Images:      models.ImageList{"/products/combo-special.jpg"},
			InStock:     true,
			Quantity:    50,
			Rating:      4.0,
			ReviewCount: 123,
			Slug:        "combo-street-special",
			Featured:    false,
		},
		{
			Name:        "Badger's Basement Batch",
			Description: "Cooked up in Badger's basement with love and questionable hygiene. Star Trek references included in every package. Engage!",
			Price:       34.99,
			Category:    "basement",
			Image:       "/products/badger-batch.jpg",
			Images:      models.ImageList{"/products/badger-batch.jpg"},
			InStock:     true,
			Quantity:    28,
			Rating:      3.9,
			ReviewCount: 91,
			Slug:        "badger-basement-batch",
			Featured:    false,
		},
		{
			Name:        "Skinny Pete's Piano Edition",
			Description: "Music to your ears, literally. Each package comes with a free piano lesson from Skinny Pete. Church, yo!",
			Price:       44.99,
			Category:    "music",
			Image:       "/products/skinny-pete-piano.jpg",
			Images:      models.ImageList{"/products/skinny-pete-piano.jpg"},
			InStock:     true,
			Quantity:    21,
			Rating:      4.3,
			ReviewCount: 76,
			Slug:        "skinny-pete-piano-edition",
			Featured:    false,
		},
	}
}

// SeedProducts replaces the whole catalogue with the canonical data and
// drops the cached category aggregate and featured listing.
func SeedProducts(db *gorm.DB) error {
	if err := db.Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
		return err
	}

	products := Products()
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	return cache.Del("products:categories", "products:featured")
}
