// internal/service/estimation/estimation.go
package estimation

import (
	"context"

	"lucky-backoffice/internal/domain/estimation"
	"lucky-backoffice/internal/pkg/codec"
	xerrors "lucky-backoffice/internal/pkg/errors"
	"lucky-backoffice/internal/pkg/ident"

	"go.uber.org/zap"
)

type EstimationService struct {
	repo   estimation.Repository
	logger *zap.Logger
}

func NewEstimationService(repo estimation.Repository, logger *zap.Logger) *EstimationService {
	return &EstimationService{repo: repo, logger: logger}
}

// CreateEstimation inserts a new estimation under a freshly generated id.
// Numeric fields arrive as strings and are coerced; an empty status starts
// the job in the awaiting-procurement state.
func (s *EstimationService) CreateEstimation(ctx context.Context, req *estimation.SaveEstimationRequest) (*estimation.SaveEstimationResponse, error) {
	e, err := s.buildEstimation(req)
	if err != nil {
		return nil, err
	}
	e.ID = ident.New()

	if err := s.repo.Insert(ctx, e); err != nil {
		s.logger.Error("failed to insert estimation", zap.Error(err))
		return nil, err
	}
	s.logger.Info("estimation created",
		zap.String("estimation_id", e.ID),
		zap.String("customer_id", e.CustomerID),
	)
	return &estimation.SaveEstimationResponse{ID: e.ID}, nil
}

// UpdateEstimation rewrites an existing estimation in place.
func (s *EstimationService) UpdateEstimation(ctx context.Context, id string, req *estimation.SaveEstimationRequest) (*estimation.SaveEstimationResponse, error) {
	if id == "" {
		return nil, xerrors.Validation("estimation id is required")
	}
	e, err := s.buildEstimation(req)
	if err != nil {
		return nil, err
	}
	e.ID = id

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	s.logger.Info("estimation updated", zap.String("estimation_id", id))
	return &estimation.SaveEstimationResponse{ID: id}, nil
}

// GetEstimation retrieves the detail projection with joined customer fields.
func (s *EstimationService) GetEstimation(ctx context.Context, id string) (*estimation.WithCustomer, error) {
	if id == "" {
		return nil, xerrors.Validation("estimation id is required")
	}
	return s.repo.GetByIDWithCustomer(ctx, id)
}

// ListEstimations returns the filtered table-view projection, newest created
// first. The full matching set is returned.
func (s *EstimationService) ListEstimations(ctx context.Context, f estimation.ListFilters) ([]estimation.ListItem, error) {
	rows, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	items := make([]estimation.ListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, projectListRow(row))
	}
	return items, nil
}

func (s *EstimationService) buildEstimation(req *estimation.SaveEstimationRequest) (*estimation.PriceEstimation, error) {
	if req.CustomerID == "" {
		return nil, xerrors.Validation("customer id is required")
	}

	status := estimation.Status(req.Status)
	if req.Status == "" {
		status = estimation.StatusAwaitingProcurement
	} else if !status.Valid() {
		return nil, xerrors.Validation("unknown estimation status")
	}

	return &estimation.PriceEstimation{
		CustomerID:   req.CustomerID,
		SalesOwnerID: req.SalesOwnerID,

		EstimateDate:    req.EstimateDate,
		JobName:         req.JobName,
		ProductCategory: req.ProductCategory,
		ProductType:     req.ProductType,
		Quantity:        codec.CoerceInt(req.Quantity),
		Budget:          codec.CoerceFloat(req.Budget),
		Status:          status,
		EstimateNote:    req.EstimateNote,
		EventDate:       req.EventDate,

		Material:          req.Material,
		CustomMaterial:    req.CustomMaterial,
		HasDesign:         req.HasDesign,
		DesignDescription: req.DesignDescription,

		MedalSize:       req.MedalSize,
		MedalThickness:  req.MedalThickness,
		SelectedColors:  req.SelectedColors,
		FrontDetails:    req.FrontDetails,
		BackDetails:     req.BackDetails,
		LanyardSize:     req.LanyardSize,
		LanyardPatterns: req.LanyardPatterns,

		StrapSize:         req.StrapSize,
		StrapPatternCount: req.StrapPatternCount,
		SewingOption:      req.SewingOption,

		AwardDesignDetails: req.AwardDesignDetails,
		PlaqueOption:       req.PlaqueOption,
		PlaqueText:         req.PlaqueText,
		InscriptionPlate:   req.InscriptionPlate,
		InscriptionDetails: req.InscriptionDetails,

		GenericDesignDetails: req.GenericDesignDetails,

		Width:     codec.CoerceFloat(req.Width),
		Length:    codec.CoerceFloat(req.Length),
		Height:    codec.CoerceFloat(req.Height),
		Thickness: codec.CoerceFloat(req.Thickness),

		AttachedFiles: req.AttachedFiles,
	}, nil
}

// projectListRow shapes one joined row for the table view. The customer name
// falls back from company to contact person, and the line name falls back to
// whichever customer name survived.
func projectListRow(row estimation.ListRow) estimation.ListItem {
	name := deref(row.CompanyName)
	if name == "" {
		name = deref(row.ContactName)
	}
	if name == "" {
		name = "Unknown Customer"
	}

	lineName := deref(row.LineID)
	if lineName == "" {
		lineName = name
	}

	return estimation.ListItem{
		ID:           row.ID,
		Date:         row.EstimateDate,
		JobName:      row.JobName,
		LineName:     lineName,
		CustomerName: name,
		ProductType:  row.ProductType,
		Quantity:     row.Quantity,
		Price:        row.Budget,
		Status:       row.Status,
		SalesOwner:   row.SalesOwnerID,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
