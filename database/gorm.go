package database

import (
	"fmt"
	"log"
	"time"

	"github.com/traini8/backend/config"
	"github.com/traini8/backend/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GORMStore struct {
	db *gorm.DB
}

// StartGORM initializes a GORM connection to PostgreSQL
func StartGORM() (*GORMStore, error) {
	getEnv, err := config.Get()
	if err != nil {
		return nil, err
	}

	// Build DSN (Data Source Name)
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		getEnv.DB_HOST,
		getEnv.DB_USER_NAME,
		getEnv.DB_PASSWORD,
		getEnv.DB_NAME,
		getEnv.DB_PORT,
		getEnv.DB_SSL_MODE,
	)

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if getEnv.GO_ENV == "production" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	// Open GORM connection
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: false,
		PrepareStmt:            true, // Prepare statements for better performance
	})
	if err != nil {
		log.Println("Unable to connect to PostgreSQL with GORM:", err)
		return nil, err
	}

	// Get underlying *sql.DB to configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Successfully connected to PostgreSQL Database with GORM.")

	return &GORMStore{db: db}, nil
}

// NewGORMStore wraps an already-open GORM connection. Used by tests.
func NewGORMStore(db *gorm.DB) *GORMStore {
	return &GORMStore{db: db}
}

// Init runs the AutoMigrate to create/update tables
func (s *GORMStore) Init() error {
	log.Println("Running GORM AutoMigrate...")

	if err := s.db.AutoMigrate(&model.TrainingCenter{}); err != nil {
		log.Println("Error running AutoMigrate:", err)
		return err
	}

	log.Println("GORM AutoMigrate completed successfully!")
	return nil
}

// Close closes the database connection
func (s *GORMStore) Close() error {
	log.Println("Closing GORM PostgreSQL connection...")
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetDB returns the GORM DB instance for use in repositories/handlers
func (s *GORMStore) GetDB() interface{} {
	return s.db
}

// HealthCheck verifies the database connection is alive
func (s *GORMStore) HealthCheck() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// FindCenterByCode looks up a training center by its unique code.
// Returns (nil, nil) when no record matches.
func (s *GORMStore) FindCenterByCode(code string) (*model.TrainingCenter, error) {
	var center model.TrainingCenter
	err := s.db.Where("center_code = ?", code).First(&center).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &center, nil
}

// CreateCenter persists a new training center inside a transaction. GORM
// assigns the primary key and the created_on timestamp (autoCreateTime);
// any failure rolls the transaction back and is returned as-is, so late
// unique-constraint violations surface here too.
func (s *GORMStore) CreateCenter(center *model.TrainingCenter) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(center).Error
	})
}

// ListCenters returns all training centers matching the given exact-match
// filters, combined with AND semantics. Absent filters are not applied.
// Order is store-native; there is no pagination.
func (s *GORMStore) ListCenters(filters ListFilters) ([]model.TrainingCenter, error) {
	query := s.db.Model(&model.TrainingCenter{})

	if filters.City != "" {
		query = query.Where("city = ?", filters.City)
	}
	if filters.State != "" {
		query = query.Where("state = ?", filters.State)
	}
	if filters.Pincode != "" {
		query = query.Where("pincode = ?", filters.Pincode)
	}

	centers := []model.TrainingCenter{}
	if err := query.Find(&centers).Error; err != nil {
		return nil, err
	}
	return centers, nil
}
