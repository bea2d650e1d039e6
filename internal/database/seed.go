// internal/database/seed.go
package database

import (
	"fmt"
	"log"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/highgrip/storefront-backend/internal/models"
)

// SeedInitialData populates the catalog with the launch assortment plus a
// default admin account. Safe to re-run: existing rows are left alone.
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	if err := seedAdminUser(db); err != nil {
		return err
	}
	if err := seedCategories(db); err != nil {
		return err
	}
	if err := seedProducts(db); err != nil {
		return err
	}

	log.Println("Initial data seeding completed")
	return nil
}

func seedAdminUser(db *gorm.DB) error {
	var adminCount int64
	db.Model(&models.User{}).Where("is_admin = ?", true).Count(&adminCount)
	if adminCount > 0 {
		return nil
	}

	admin := &models.User{
		Username: "admin",
		Email:    "admin@highgrip.store",
		IsAdmin:  true,
	}
	if err := admin.SetPassword("admin123!@#"); err != nil {
		return fmt.Errorf("failed to set admin password: %w", err)
	}

	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Println("Default admin user created successfully")
	return nil
}

func seedCategories(db *gorm.DB) error {
	names := []string{
		"Yoga Socks",
		"Compression Sleeves",
		"Thigh High Socks",
		"Medical Stockings",
		"Trampoline Socks",
		"Ankle Grip Socks",
		"Crawling Knee Pads",
	}

	for _, name := range names {
		var count int64
		db.Model(&models.Category{}).Where("name = ?", name).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&models.Category{Name: name}).Error; err != nil {
			return fmt.Errorf("failed to create category %q: %w", name, err)
		}
	}
	return nil
}

func seedProducts(db *gorm.DB) error {
	var productCount int64
	db.Model(&models.Product{}).Count(&productCount)
	if productCount > 0 {
		return nil
	}

	products := []models.Product{
		{
			Name:        "Yoga Grip Socks",
			Category:    "Yoga Socks",
			Price:       399,
			Description: "Anti-slip yoga socks for better balance and stability.",
			Image:       "/uploads/sock1.jpg",
			Images:      pq.StringArray{"/uploads/sock1.jpg"},
			Features:    pq.StringArray{"Performance", "Comfort", "Stability"},
			Tag:         "Trending",
		},
		{
			Name:        "Compression Sleeves",
			Category:    "Compression Sleeves",
			Price:       499,
			Description: "Support your calves and reduce fatigue with compression sleeves.",
			Image:       "/uploads/compression_sleeves_new.jpg",
			Images:      pq.StringArray{"/uploads/compression_sleeves_new.jpg"},
			Features:    pq.StringArray{"Performance", "Recovery", "Circulation"},
			Tag:         "Best Seller",
		},
		{
			Name:        "Thigh High Socks",
			Category:    "Thigh High Socks",
			Price:       599,
			Description: "Stylish thigh-high socks for warmth and comfort.",
			Image:       "/uploads/thigh_high_socks_full.jpg",
			Images:      pq.StringArray{"/uploads/thigh_high_socks_full.jpg"},
			Features:    pq.StringArray{"Style", "Warmth", "Soft"},
			Tag:         "New",
		},
		{
			Name:        "Medical Stockings",
			Category:    "Medical Stockings",
			Price:       699,
			Description: "Medical grade compression stockings.",
			Image:       "/uploads/sock5.jpg",
			Images:      pq.StringArray{"/uploads/sock5.jpg"},
			Features:    pq.StringArray{"Medical Grade", "Support", "Durable"},
			Tag:         "Professional",
		},
		{
			Name:        "Trampoline Socks",
			Category:    "Trampoline Socks",
			Price:       350,
			Description: "High-grip trampoline socks for safety and fun.",
			Image:       "/uploads/trampoline_socks.jpg",
			Images:      pq.StringArray{"/uploads/trampoline_socks.jpg"},
			Features:    pq.StringArray{"Performance", "Comfort", "Personalization"},
			Tag:         "Fun",
		},
		{
			Name:        "Ankle Grip Socks",
			Category:    "Ankle Grip Socks",
			Price:       450,
			Description: "Low-cut ankle grip socks for pilates and barre.",
			Image:       "/uploads/ankle_grip_socks.jpg",
			Images:      pq.StringArray{"/uploads/ankle_grip_socks.jpg"},
			Features:    pq.StringArray{"Performance", "Comfort", "Personalization"},
			Tag:         "Essential",
		},
		{
			Name:        "Crawling Knee Pads",
			Category:    "Crawling Knee Pads",
			Price:       299,
			Description: "Protective knee pads for crawling babies.",
			Image:       "/uploads/knee_pads.jpg",
			Images:      pq.StringArray{"/uploads/knee_pads.jpg"},
			Features:    pq.StringArray{"Performance", "Comfort", "Personalization"},
			Tag:         "Baby",
		},
	}

	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	log.Printf("Created %d products", len(products))
	return nil
}
