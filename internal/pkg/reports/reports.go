package reports

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/policymanagementplatform/insurance-core/internal/pkg/cache"
)

const (
	cacheKeyPrefix  = "reports:policies:%s"
	cacheExpiration = 5 * time.Minute
)

// Filter narrows the policy report. Every field is optional.
type Filter struct {
	StartDate *time.Time
	EndDate   *time.Time
	BrokerID  *uint
	CountryID *uint
	CountyID  *uint
	CityID    *uint
}

// Row is one aggregate line of the policy report, grouped by geography and
// broker.
type Row struct {
	CountryID         uint    `json:"country_id"`
	CountryName       string  `json:"country_name"`
	CountyID          uint    `json:"county_id"`
	CountyName        string  `json:"county_name"`
	CityID            uint    `json:"city_id"`
	CityName          string  `json:"city_name"`
	BrokerID          uint    `json:"broker_id"`
	BrokerCode        string  `json:"broker_code"`
	BrokerName        string  `json:"broker_name"`
	PolicyCount       int64   `json:"policy_count"`
	TotalFinalPremium float64 `json:"total_final_premium"`
}

// Service aggregates policies for the admin report. Results are cached in
// redis for a short window; policy state itself is never cached.
type Service struct {
	db *gorm.DB
}

// NewService creates a report service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// PolicyReport returns aggregate rows grouped by country, county, city and
// broker, with optional period, broker and geography filters.
func (s *Service) PolicyReport(f Filter, offset, limit int) ([]Row, error) {
	key := fmt.Sprintf(cacheKeyPrefix, cacheKeyFor(f, offset, limit))
	if cached, err := cache.Get(key); err == nil && cached != "" {
		var rows []Row
		if err := json.Unmarshal([]byte(cached), &rows); err == nil {
			return rows, nil
		}
	}

	var rows []Row
	err := s.db.Raw(`
		SELECT
			ctry.id AS country_id,
			ctry.name AS country_name,
			cnty.id AS county_id,
			cnty.name AS county_name,
			city.id AS city_id,
			city.name AS city_name,
			broker.id AS broker_id,
			broker.broker_code AS broker_code,
			broker.name AS broker_name,
			COUNT(p.id) AS policy_count,
			COALESCE(SUM(p.final_premium), 0) AS total_final_premium
		FROM policies p
		JOIN buildings b ON b.id = p.building_id
		JOIN cities city ON city.id = b.city_id
		JOIN counties cnty ON cnty.id = city.county_id
		JOIN countries ctry ON ctry.id = cnty.country_id
		JOIN brokers broker ON broker.id = p.broker_id
		WHERE (? IS NULL OR p.start_date >= ?)
		  AND (? IS NULL OR p.end_date <= ?)
		  AND (? IS NULL OR broker.id = ?)
		  AND (? IS NULL OR ctry.id = ?)
		  AND (? IS NULL OR cnty.id = ?)
		  AND (? IS NULL OR city.id = ?)
		GROUP BY
			ctry.id, ctry.name,
			cnty.id, cnty.name,
			city.id, city.name,
			broker.id, broker.broker_code, broker.name
		ORDER BY ctry.name, cnty.name, city.name, broker.broker_code
		LIMIT ? OFFSET ?`,
		f.StartDate, f.StartDate,
		f.EndDate, f.EndDate,
		f.BrokerID, f.BrokerID,
		f.CountryID, f.CountryID,
		f.CountyID, f.CountyID,
		f.CityID, f.CityID,
		limit, offset,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(rows); err == nil {
		if err := cache.Set(key, string(payload), cacheExpiration); err != nil {
			log.Printf("report cache write failed: %v", err)
		}
	}
	return rows, nil
}

// cacheKeyFor builds a stable cache key from the filter and page window.
func cacheKeyFor(f Filter, offset, limit int) string {
	part := func(t *time.Time) string {
		if t == nil {
			return "-"
		}
		return t.Format("2006-01-02")
	}
	id := func(v *uint) string {
		if v == nil {
			return "-"
		}
		return fmt.Sprintf("%d", *v)
	}
	return fmt.Sprintf("%s:%s:%s:%s:%s:%s:%d:%d",
		part(f.StartDate), part(f.EndDate),
		id(f.BrokerID), id(f.CountryID), id(f.CountyID), id(f.CityID),
		offset, limit)
}
