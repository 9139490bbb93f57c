package configs

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Nagesh2809/cafe-management/entity"
)

// SeedAdmin creates the first admin account once.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:          cfg.AdminEmail,
		Name:           "Super Admin",
		HashedPassword: string(hash),
		Role:           entity.RoleAdmin,
		JoinDate:       time.Now().UTC(),
	}
	return db.Create(&admin).Error
}

func intPtr(n int) *int { return &n }

// SeedMenu fills an empty catalog with the house menu.
func SeedMenu() error {
	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []entity.MenuItem{
		{
			Name:            "Classic Irani Chai",
			Category:        "Chai",
			Price:           30.0,
			Description:     "Our signature strong tea brewed with creamy milk and secret spices.",
			LongDescription: "The soul of Hyderabad. A robust blend of premium dust tea, boiled for hours with creamy milk and a hint of secret spices.",
			Ingredients:     []string{"Assam Tea Dust", "Full Cream Buffalo Milk", "Sugar", "Secret Spice Blend", "Water"},
			Image:           "https://images.unsplash.com/photo-1626818599456-5c93540d9d4f?q=80&w=800&auto=format&fit=crop",
			IsPopular:       true,
			IsAvailable:     true,
			Rating:          4.9,
			AddOns: []entity.AddOn{
				{Name: "Extra Milk", Price: 10, Type: entity.AddOnToggle},
				{Name: "Less Sugar", Price: 0, Type: entity.AddOnToggle},
				{Name: "Sugar Free", Price: 5, Type: entity.AddOnToggle},
				{Name: "Extra Cardamom", Price: 5, Type: entity.AddOnToggle},
			},
		},
		{
			Name:        "Osmania Biscuits",
			Category:    "Bakery",
			Price:       150.0,
			Description: "The legendary salt-sweet biscuits that melt in your mouth.",
			Ingredients: []string{"Refined Flour (Maida)", "Butter", "Sugar", "Salt", "Milk Solids"},
			Image:       "https://images.unsplash.com/photo-1558961363-fa8fdf82db35?q=80&w=800&auto=format&fit=crop",
			IsPopular:   true,
			IsAvailable: true,
			Rating:      4.8,
			AddOns: []entity.AddOn{
				{Name: "Extra Butter Dip", Price: 10, Type: entity.AddOnToggle},
			},
		},
		{
			Name:        "Bun Maska",
			Category:    "Bakery",
			Price:       45.0,
			Description: "Soft sweet bun slathered with generous homemade butter.",
			Ingredients: []string{"Refined Flour", "Yeast", "Sugar", "Salt", "Butter (Maska)", "Milk"},
			Image:       "https://images.unsplash.com/photo-1606456070389-c48c3e80034b?q=80&w=800&auto=format&fit=crop",
			IsPopular:   true,
			IsAvailable: true,
			Rating:      4.7,
			AddOns: []entity.AddOn{
				{Name: "Extra Butter", Price: 15, Type: entity.AddOnQuantity, MaxQuantity: intPtr(2)},
				{Name: "Extra Bun", Price: 35, Type: entity.AddOnQuantity, MaxQuantity: intPtr(2)},
				{Name: "Fruit Jam", Price: 10, Type: entity.AddOnToggle},
			},
		},
		{
			Name:        "Malai Bun",
			Category:    "Bakery",
			Price:       60.0,
			Description: "Fresh bun topped with thick, fresh cream (Malai) and sugar.",
			Ingredients: []string{"Refined Flour", "Fresh Cream (Malai)", "Sugar", "Milk"},
			Image:       "https://images.unsplash.com/photo-1560155016-bd4879ae8f21?q=80&w=800&auto=format&fit=crop",
			IsPopular:   true,
			IsAvailable: true,
			Rating:      4.9,
			AddOns: []entity.AddOn{
				{Name: "Extra Malai", Price: 20, Type: entity.AddOnQuantity},
			},
		},
		{
			Name:        "Veg Samosa (Onion)",
			Category:    "Snacks",
			Price:       25.0,
			Description: "Crispy pastry filled with spicy onion masala.",
			Ingredients: []string{"Maida", "Onion", "Green Chillies", "Spices", "Oil"},
			Image:       "https://images.unsplash.com/photo-1601050690597-df0568f70950?q=80&w=800&auto=format&fit=crop",
			IsPopular:   false,
			IsAvailable: true,
			Rating:      4.5,
			AddOns: []entity.AddOn{
				{Name: "Mint Chutney", Price: 10, Type: entity.AddOnToggle},
			},
		},
	}

	if err := db.Create(&items).Error; err != nil {
		return err
	}
	log.Println("menu seeded")
	return nil
}
