package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shashiranjanraj/shinyflakes/app/models"
	"github.com/shashiranjanraj/shinyflakes/app/services"
	"github.com/shashiranjanraj/shinyflakes/database/seeders"
	"github.com/shashiranjanraj/shinyflakes/pkg/database"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.User{}))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })

	return db
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello World":       "hello-world",
		"Home & Garden":     "home-&-garden",
		"already-sluggy":    "already-sluggy",
		"Multiple   Spaces": "multiple-spaces",
		"Tabs\tand\nLines":  "tabs-and-lines",
		"UPPER":             "upper",
	}

	for input, want := range cases {
		assert.Equal(t, want, services.Slugify(input), "Slugify(%q)", input)
	}
}

func TestCategoriesSummaries(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, seeders.SeedProducts(db))

	// Two in-stock products sharing a multi-word category.
	for _, name := range []string{"Lab Kit A", "Lab Kit B"} {
		require.NoError(t, db.Create(&models.Product{
			Name: name, Description: "kit", Price: 10, Category: "Lab Gear",
			InStock: true, Quantity: 5, Slug: services.Slugify(name),
		}).Error)
	}

	svc := services.NewCatalogService()
	summaries, err := svc.Categories()
	require.NoError(t, err)

	byName := make(map[string]services.CategorySummary, len(summaries))
	for _, s := range summaries {
		byName[s.Name] = s
	}

	lab, ok := byName["Lab Gear"]
	require.True(t, ok)
	assert.Equal(t, 2, lab.Count)
	assert.Equal(t, "lab-gear", lab.Slug)

	_, hasLegal := byName["legal"]
	assert.False(t, hasLegal, "legal only holds an out-of-stock product")
}
