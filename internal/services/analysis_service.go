package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/stwalsh4118/groundwork/api/internal/logger"
	"github.com/stwalsh4118/groundwork/api/internal/metrics"
	"github.com/stwalsh4118/groundwork/api/internal/models"
	"github.com/stwalsh4118/groundwork/api/internal/rules"
	"github.com/stwalsh4118/groundwork/api/internal/zoning"
)

// Service-level errors
var (
	ErrZoneNotFound = errors.New("zone not found")
	ErrInvalidSite  = errors.New("invalid site dimensions")
)

// AnalysisService defines the interface for zoning analysis operations.
type AnalysisService interface {
	// Analyze resolves the zone code and computes the full development
	// potential for the site, including the final buildable analysis.
	// Returns ErrZoneNotFound when the base zone is unrecognized and
	// ErrInvalidSite when the lot area is not positive.
	Analyze(ctx context.Context, zoneCode string, site models.SiteDimensions) (*models.DevelopmentPotential, error)

	// ResolveRules resolves a zone code (suffix and override clause
	// honored) to its flattened RuleSet without running the calculator.
	// Returns ErrZoneNotFound when the base zone is unrecognized.
	ResolveRules(ctx context.Context, zoneCode string) (*models.RuleSet, error)

	// ListZones returns the zone display catalog.
	ListZones(ctx context.Context) []models.ZoneInfo
}

// analysisService is the concrete implementation of AnalysisService.
type analysisService struct {
	table    *rules.Table
	resolver *zoning.Resolver
	calc     *zoning.Calculator
	log      *logger.Logger
}

// NewAnalysisService creates a new AnalysisService over the loaded rule table.
func NewAnalysisService(table *rules.Table, log *logger.Logger) AnalysisService {
	return &analysisService{
		table:    table,
		resolver: zoning.NewResolver(table),
		calc:     zoning.NewCalculator(table),
		log:      log,
	}
}

// Analyze runs the resolve-calculate-synthesize pipeline for one parcel.
func (s *analysisService) Analyze(ctx context.Context, zoneCode string, site models.SiteDimensions) (*models.DevelopmentPotential, error) {
	if site.LotArea <= 0 {
		s.log.Warn("Invalid lot area provided", map[string]interface{}{
			"zone_code": zoneCode,
			"lot_area":  site.LotArea,
		})
		return nil, fmt.Errorf("%w: lot area must be positive, got %f", ErrInvalidSite, site.LotArea)
	}

	rs, err := s.resolver.Resolve(zoneCode)
	if err != nil {
		if errors.Is(err, zoning.ErrUnknownZone) {
			s.log.Debug("Zone code not recognized", map[string]interface{}{
				"zone_code": zoneCode,
			})
			metrics.ObserveAnalysis("", "unknown_zone")
			return nil, fmt.Errorf("%w: %s", ErrZoneNotFound, zoneCode)
		}
		return nil, fmt.Errorf("failed to resolve zone code: %w", err)
	}

	potential := s.calc.Calculate(rs, site)
	potential.FinalAnalysis = zoning.Synthesize(potential)

	outcome := "compliant"
	if !potential.MeetsMinimumRequirements {
		outcome = "violations"
	}
	metrics.ObserveAnalysis(string(potential.Category), outcome)

	s.log.Info("Analysis completed", map[string]interface{}{
		"zone_code":  zoneCode,
		"base_zone":  rs.ZoneCode.BaseZone,
		"lot_area":   site.LotArea,
		"corner_lot": site.CornerLot,
		"outcome":    outcome,
		"violations": len(potential.Violations),
		"warnings":   len(potential.Warnings),
	})

	return potential, nil
}

// ResolveRules resolves a zone code to its flattened RuleSet.
func (s *analysisService) ResolveRules(ctx context.Context, zoneCode string) (*models.RuleSet, error) {
	rs, err := s.resolver.Resolve(zoneCode)
	if err != nil {
		if errors.Is(err, zoning.ErrUnknownZone) {
			return nil, fmt.Errorf("%w: %s", ErrZoneNotFound, zoneCode)
		}
		return nil, fmt.Errorf("failed to resolve zone code: %w", err)
	}
	return rs, nil
}

// ListZones returns the zone display catalog.
func (s *analysisService) ListZones(ctx context.Context) []models.ZoneInfo {
	return s.table.Zones()
}
