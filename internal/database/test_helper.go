package database

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"customer-records/internal/config"
	"customer-records/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testTables = []string{
	"interactions",
	"customers",
}

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqliteDialector(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// every new connection to :memory: is a fresh empty database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB:     db,
		logger: slog.Default(),
		config: &config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestCustomer(t *testing.T, db *DB, name, email, phone string) *models.Customer {
	t.Helper()

	customer := &models.Customer{
		Name:  name,
		Email: email,
		Phone: phone,
	}

	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("failed to create test customer: %v", err)
	}

	return customer
}

func CreateTestInteraction(t *testing.T, db *DB, customerID uint64, interactionType, content string) *models.Interaction {
	t.Helper()

	interaction := &models.Interaction{
		CustomerID:      customerID,
		InteractionType: interactionType,
		Content:         content,
	}

	if err := db.Create(interaction).Error; err != nil {
		t.Fatalf("failed to create test interaction: %v", err)
	}

	return interaction
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range testTables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}

	if err := db.Close(); err != nil {
		t.Logf("failed to close test database: %v", err)
	}
}
