// api/db/db.go
package db

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dev-mohitbeniwal/community/api/config"
	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/model"
)

var DB *gorm.DB

// Models lists every table managed by the record store.
var Models = []interface{}{
	&model.Role{},
	&model.User{},
	&model.Community{},
	&model.Building{},
	&model.House{},
	&model.UserHouse{},
	&model.WorkOrder{},
	&model.WorkOrderComment{},
	&model.WorkOrderRating{},
	&model.Complaint{},
	&model.VisitorPass{},
	&model.Announcement{},
	&model.AnnouncementRead{},
	&model.Notification{},
	&model.Merchant{},
	&model.MerchantService{},
	&model.MerchantOrder{},
	&model.PropertyFeeBill{},
	&model.PaymentOrder{},
}

// Role rows every deployment starts with.
var defaultRoles = []model.Role{
	{Name: "Resident", RoleType: model.RoleTypeResident},
	{Name: "Property staff", RoleType: model.RoleTypePropertyStaff},
	{Name: "Merchant", RoleType: model.RoleTypeMerchant},
}

// Open connects to the record store by driver name.
func Open(driver, dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(zap.NewStdLog(logger.Log), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		NowFunc: func() time.Time { return time.Now().UTC() },
	}

	switch driver {
	case "postgres":
		return gorm.Open(postgres.Open(dsn), cfg)
	case "mysql":
		return gorm.Open(mysql.Open(dsn), cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

func InitDatabase() error {
	driver := config.GetString("database.driver")
	logger.Info("Connecting to database", zap.String("driver", driver))

	conn, err := Open(driver, config.GetString("database.dsn"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(config.GetInt("database.maxOpenConns"))
	sqlDB.SetMaxIdleConns(config.GetInt("database.maxIdleConns"))
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if config.GetBool("database.autoMigrate") {
		if err := Migrate(ctx, conn); err != nil {
			return err
		}
	}

	DB = conn
	logger.Info("Successfully connected to database")
	return nil
}

// Migrate creates or updates the schema and seeds the default roles.
func Migrate(ctx context.Context, conn *gorm.DB) error {
	if err := conn.WithContext(ctx).AutoMigrate(Models...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	for _, role := range defaultRoles {
		r := role
		if err := conn.WithContext(ctx).Where(model.Role{Name: r.Name}).FirstOrCreate(&r).Error; err != nil {
			return fmt.Errorf("failed to seed role %s: %w", r.Name, err)
		}
	}
	return nil
}

// Ping is used by the readiness check.
func Ping(ctx context.Context) error {
	if DB == nil {
		return fmt.Errorf("database not initialised")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func CloseDatabase() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		logger.Error("Error accessing database pool", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection", zap.Error(err))
	} else {
		logger.Info("Database connection closed successfully")
	}
}
