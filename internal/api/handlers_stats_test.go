package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/vkotelnikov/sympta/internal/services"
)

func TestStatsOverviewCountsRecords(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := loginAndExtractAuthCookie(t, app)

	logTestSymptoms(t, app, cookie, []fiber.Map{
		{"name": "Headache", "severity": 4},
		{"name": "Headache", "severity": 8},
		{"name": "Fever", "severity": 6},
	})

	response := authedRequest(t, app, cookie, http.MethodGet, "/api/stats/overview", nil)
	requireStatus(t, response, http.StatusOK)

	var overview services.StatsOverview
	decodeJSONBody(t, response, &overview)
	if overview.TotalRecords != 3 {
		t.Fatalf("expected 3 records, got %d", overview.TotalRecords)
	}
	if overview.DistinctTypes != 2 {
		t.Fatalf("expected 2 distinct types, got %d", overview.DistinctTypes)
	}
	if overview.HighSeverityCount != 1 {
		t.Fatalf("expected 1 high-severity record, got %d", overview.HighSeverityCount)
	}
	if len(overview.LastWeek) != 7 {
		t.Fatalf("expected 7 daily buckets, got %d", len(overview.LastWeek))
	}
	if overview.Frequencies[0].Type != "headache" {
		t.Fatalf("expected headache most frequent, got %+v", overview.Frequencies[0])
	}
}
