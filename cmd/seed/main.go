package main

import (
	"log"
	"os"

	"gorm.io/gorm"

	"pandimaja/internal/auth"
	"pandimaja/internal/config"
	"pandimaja/internal/db"
	"pandimaja/internal/model"
)

// Reference data expected by the application. Role ids must line up with
// the auth.Role constants.
var (
	roles = []model.Role{
		{RoleID: uint(auth.RoleAdmin), RoleName: "admin"},
		{RoleID: uint(auth.RoleUser), RoleName: "user"},
	}

	statuses = []model.Status{
		{StatusID: 1, Nimetus: "laos"},
		{StatusID: 2, Nimetus: "muudud"},
		{StatusID: 3, Nimetus: "valja ostetud"},
	}
)

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Role{}, &model.Status{}, &model.Tootaja{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	for _, role := range roles {
		if err := gormDB.Where(model.Role{RoleID: role.RoleID}).FirstOrCreate(&role).Error; err != nil {
			log.Fatalf("Failed to seed role %q: %v", role.RoleName, err)
		}
	}
	log.Printf("Seeded %d roles", len(roles))

	for _, status := range statuses {
		if err := gormDB.Where(model.Status{StatusID: status.StatusID}).FirstOrCreate(&status).Error; err != nil {
			log.Fatalf("Failed to seed status %q: %v", status.Nimetus, err)
		}
	}
	log.Printf("Seeded %d statuses", len(statuses))

	if err := seedAdmin(gormDB); err != nil {
		log.Fatalf("Failed to seed admin tootaja: %v", err)
	}

	log.Println("Seed completed")
}

// seedAdmin creates a bootstrap administrator when ADMIN_KOOD and
// ADMIN_PASS are set. Without them the step is skipped, so the seed stays
// safe to run on environments where the admin already exists.
func seedAdmin(gormDB *gorm.DB) error {
	kood := os.Getenv("ADMIN_KOOD")
	pass := os.Getenv("ADMIN_PASS")
	if kood == "" || pass == "" {
		log.Println("ADMIN_KOOD/ADMIN_PASS not set, skipping admin tootaja")
		return nil
	}

	var count int64
	if err := gormDB.Model(&model.Tootaja{}).Where("kood = ?", kood).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Admin tootaja %q already exists", kood)
		return nil
	}

	hashed, err := auth.HashPassword(pass)
	if err != nil {
		return err
	}

	admin := model.Tootaja{
		Nimi:          "Admin",
		Perekonnanimi: "Admin",
		Kood:          kood,
		PassHash:      hashed,
		RoleID:        uint(auth.RoleAdmin),
	}
	if err := gormDB.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Created admin tootaja %q (id %d)", kood, admin.TootajaID)
	return nil
}
