package api

import (
	"gorm.io/gorm"

	"github.com/vkotelnikov/sympta/internal/db"
	"github.com/vkotelnikov/sympta/internal/services"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.recordService = services.NewRecordService(handler.repositories.Records)
	handler.analysisService = services.NewAnalysisService(handler.repositories.Records, handler.base)
	handler.statsService = services.NewStatsService(handler.repositories.Records)
	handler.exportService = services.NewExportService(handler.repositories.Records)
	handler.settingsService = services.NewSettingsService(handler.repositories.Profile)
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}

	if handler.recordService == nil {
		handler.recordService = services.NewRecordService(handler.repositories.Records)
	}
	if handler.analysisService == nil {
		handler.analysisService = services.NewAnalysisService(handler.repositories.Records, handler.base)
	}
	if handler.statsService == nil {
		handler.statsService = services.NewStatsService(handler.repositories.Records)
	}
	if handler.exportService == nil {
		handler.exportService = services.NewExportService(handler.repositories.Records)
	}
	if handler.settingsService == nil {
		handler.settingsService = services.NewSettingsService(handler.repositories.Profile)
	}
}
