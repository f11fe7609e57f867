package postgres

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/miyaru/miyaru-backend/internal/domain/ports"
	"github.com/miyaru/miyaru-backend/internal/infrastructure/config"
)

// NewDatabaseConnection cria uma nova conexão com o PostgreSQL.
// TranslateError é obrigatório: a detecção de colisão de slug/email
// depende de gorm.ErrDuplicatedKey.
func NewDatabaseConnection(cfg *config.DatabaseConfig, log ports.Logger) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConns)
	sqlDB.SetMaxIdleConns(cfg.MinConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxIdleTime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connected successfully",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.DBName,
	)

	return db, nil
}

// Migrate cria/atualiza o schema, incluindo os índices únicos de
// email e slug que sustentam as garantias de unicidade
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&UserModel{}, &NewsModel{})
}
