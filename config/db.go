package config

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"sangamstay/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "sangamstay")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase ensures a default admin and a starter set of hotels with room
// types, so a fresh database is immediately bookable.
func SeedDatabase() {
	var adminCount int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.User{
				Username:     "Admin User",
				Email:        "admin@sangamstay.local",
				Phone:        "0000000000",
				PasswordHash: string(hash),
				Role:         models.RoleAdmin,
				IsVerified:   true,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	var hotelCount int64
	DB.Model(&models.Hotel{}).Count(&hotelCount)
	if hotelCount > 0 {
		log.Println("Hotels already seeded")
		return
	}

	type seedRoom struct {
		roomType string
		capacity int
		price    float64
	}
	type seedHotel struct {
		models.Hotel
		rooms []seedRoom
	}

	facilities := func(items ...string) []byte {
		b, _ := json.Marshal(items)
		return b
	}

	hotels := []seedHotel{
		{
			Hotel: models.Hotel{
				Name: "The Taj Palace", Location: "Mumbai, Maharashtra", Pincode: "400001",
				Price: 15000, TotalRooms: 50, AvailableRooms: 50,
				Description: "Experience luxury at its finest in the heart of Mumbai with spectacular sea views.",
				Facilities:  facilities("AC Rooms", "Free WiFi", "Parking Facility", "Elevator"),
			},
			rooms: []seedRoom{
				{"Standard", 2, 15000},
				{"Deluxe", 4, 22000},
			},
		},
		{
			Hotel: models.Hotel{
				Name: "The Oberoi Grand", Location: "Kolkata, West Bengal", Pincode: "700016",
				Price: 12000, TotalRooms: 35, AvailableRooms: 35,
				Description: "A heritage luxury hotel featuring classic architecture and modern amenities.",
				Facilities:  facilities("AC Rooms", "Free WiFi", "Food Services (Chargeable)"),
			},
			rooms: []seedRoom{
				{"Standard", 2, 12000},
				{"Superior", 3, 16000},
			},
		},
		{
			Hotel: models.Hotel{
				Name: "Radisson Blu", Location: "Pune, Maharashtra", Pincode: "411001",
				Price: 6500, TotalRooms: 60, AvailableRooms: 60,
				Description: "Contemporary hotel perfect for business and leisure travelers.",
				Facilities:  facilities("Free WiFi", "Parking Facility", "Daily House Keeping"),
			},
			rooms: []seedRoom{
				{"Standard", 2, 6500},
			},
		},
	}

	for i := range hotels {
		h := hotels[i]
		if err := DB.Create(&h.Hotel).Error; err != nil {
			log.Printf("warning: failed to seed hotel %s: %v", h.Name, err)
			continue
		}
		for _, r := range h.rooms {
			room := models.Room{
				HotelID:       h.Hotel.ID,
				RoomType:      r.roomType,
				Capacity:      r.capacity,
				PricePerNight: r.price,
			}
			if err := DB.Create(&room).Error; err != nil {
				log.Printf("warning: failed to seed room %s for %s: %v", r.roomType, h.Name, err)
			}
		}
	}
	log.Println("Hotels seeded")
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order.
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Room{},
		&models.Location{},
		&models.Booking{},
		&models.Payment{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
