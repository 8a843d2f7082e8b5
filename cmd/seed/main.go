// Command seed provisions a first admin account and a starter spot
// inventory so a fresh installation is usable immediately. Safe to re-run:
// existing rows are left alone.
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campground/internal/shared/config"
	"campground/internal/shared/database"
	"campground/internal/spots"
	"campground/internal/users"
	"campground/pkg/logger"
)

func main() {
	appLogger := logger.GetDefault()

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		appLogger.Error("failed to initialize databases", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	pg := db.GetPostgreSQL()

	if err := seedAdmin(pg); err != nil {
		appLogger.Error("failed to seed admin user", slog.Any("error", err))
		os.Exit(1)
	}
	if err := seedSpots(pg); err != nil {
		appLogger.Error("failed to seed spots", slog.Any("error", err))
		os.Exit(1)
	}

	appLogger.Info("Seed completed")
}

func seedAdmin(db *gorm.DB) error {
	email := envOr("SEED_ADMIN_EMAIL", "admin@campground.local")
	password := envOr("SEED_ADMIN_PASSWORD", "changeme")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := users.User{
		Name:     "Administrator",
		Email:    email,
		Password: string(hash),
		Role:     users.RoleAdmin,
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&admin).Error
}

// ground maps the legacy inventory sheet's ground labels.
var groundByLabel = map[string]spots.GroundType{
	"gravel":       spots.GroundGravel,
	"sable":        spots.GroundSable,
	"gravel+gazon": spots.GroundGravelGazon,
	"gravel+sable": spots.GroundGravelSable,
	"asphalte":     spots.GroundAsphalte,
	"gazon":        spots.GroundGazon,
}

type spotSeed struct {
	number   int
	amperage int
	sewer    bool
	price    float64
	length   float64
	width    float64
	sun      int
	ground   string
	note     string
}

// Inventory carried over from the campground's paper sheet. Amperage 50
// means full three-service 50A, 30 with sewer is EEE, without sewer EE.
var spotSeeds = []spotSeed{
	{14, 50, true, 55, 60, 26, 50, "gravel", ""},
	{15, 30, true, 52, 30, 22, 50, "gravel+gazon", ""},
	{16, 50, true, 55, 45, 25, 60, "gravel", ""},
	{18, 30, true, 52, 45, 25, 60, "gravel", ""},
	{23, 30, true, 52, 30, 30, 60, "gravel+gazon", ""},
	{24, 30, true, 52, 45, 35, 90, "gravel+gazon", ""},
	{25, 30, true, 52, 38, 27, 90, "gravel+gazon", "Coin de rue"},
	{51, 50, true, 55, 45, 35, 90, "gravel+gazon", ""},
	{52, 30, true, 52, 50, 26, 40, "gravel", ""},
	{53, 30, true, 52, 43, 22, 90, "gravel", "Communique 55"},
	{55, 30, true, 52, 31, 37, 90, "gravel+sable", "Communique 53"},
	{66, 30, true, 52, 35, 24, 65, "gravel", "Entrée directe"},
	{77, 50, true, 55, 46, 38, 100, "gravel+gazon", "Coin de rue"},
	{96, 30, true, 52, 45, 23, 5, "gravel", "Intime"},
	{98, 30, false, 49, 34, 18, 50, "gravel", "Pas intime"},
	{100, 30, false, 49, 39, 19, 60, "gravel+sable", ""},
	{102, 30, false, 49, 42, 21, 40, "sable", "Communique 127"},
	{103, 50, true, 55, 45, 21, 75, "asphalte", "Entrée directe"},
	{120, 30, true, 52, 40, 30, 70, "gravel+gazon", "Difficile à reculer"},
	{129, 30, false, 49, 30, 18, 70, "gravel", ""},
}

func seedSpots(db *gorm.DB) error {
	for _, seed := range spotSeeds {
		spot := buildSpot(seed)
		err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&spot).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func buildSpot(seed spotSeed) spots.Spot {
	service := spots.ServiceTwoServices
	if seed.sewer {
		service = spots.ServiceThreeServices30A
		if seed.amperage == 50 {
			service = spots.ServiceThreeServices50A
		}
	}

	ground := groundByLabel[seed.ground]
	length := seed.length
	width := seed.width
	sun := seed.sun

	spot := spots.Spot{
		Number:   seed.number,
		Service:  service,
		Status:   spots.StatusRegular,
		Longueur: &length,
		Largeur:  &width,
		Soleil:   &sun,
		Sol:      &ground,

		// A spot fits any rig it can physically hold; tent-style setups
		// are always welcome on these lots.
		MotoriseRange:   &spots.VehicleLengthRange{Min: 0, Max: length},
		FifthwheelRange: &spots.VehicleLengthRange{Min: 0, Max: length},
		RoulotteRange:   &spots.VehicleLengthRange{Min: 0, Max: length},
		CampeurPorte:    true,
		TenteRoulotte:   true,
		Tente:           true,

		PricePerNight: seed.price,
		IsActive:      true,
	}
	if seed.note != "" {
		note := seed.note
		spot.Particularite = &note
	}
	return spot
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
