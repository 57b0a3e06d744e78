package api

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/vkotelnikov/sympta/internal/db"
	"github.com/vkotelnikov/sympta/internal/knowledge"
	"github.com/vkotelnikov/sympta/internal/services"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	adminUser         string
	adminPasswordHash []byte

	base           *knowledge.Base
	matcherOptions services.MatcherOptions

	repositories    *db.Repositories
	recordService   *services.RecordService
	analysisService *services.AnalysisService
	statsService    *services.StatsService
	exportService   *services.ExportService
	settingsService *services.SettingsService
}

// Config carries everything the handler needs at startup. The admin password
// is hashed once here so the plain text never lives on the handler.
type Config struct {
	Database       *gorm.DB
	Secret         string
	AdminUser      string
	AdminPassword  string
	Base           *knowledge.Base
	MatcherOptions services.MatcherOptions
	Location       *time.Location
	CookieSecure   bool
}

func NewHandler(config Config) (*Handler, error) {
	if config.Database == nil {
		return nil, errors.New("database is required")
	}
	if config.Secret == "" {
		return nil, errors.New("secret key is required")
	}
	if config.AdminUser == "" || config.AdminPassword == "" {
		return nil, errors.New("admin credentials are required")
	}

	location := config.Location
	if location == nil {
		location = time.Local
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(config.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	handler := &Handler{
		db:                config.Database,
		secretKey:         []byte(config.Secret),
		location:          location,
		cookieSecure:      config.CookieSecure,
		adminUser:         config.AdminUser,
		adminPasswordHash: passwordHash,
		base:              config.Base,
		matcherOptions:    config.MatcherOptions,
	}
	return handler.withDependencies(config.Database), nil
}
