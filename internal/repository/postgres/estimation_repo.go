// internal/repository/postgres/estimation_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"lucky-backoffice/internal/domain/estimation"
	"lucky-backoffice/internal/pkg/codec"
	xerrors "lucky-backoffice/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
)

type EstimationRepository struct {
	db *DB
}

func NewEstimationRepository(db *DB) *EstimationRepository {
	return &EstimationRepository{db: db}
}

// encodedLists holds the four composite columns in their stored form.
type encodedLists struct {
	colors, front, back, files string
}

func encodeEstimationLists(e *estimation.PriceEstimation) (encodedLists, error) {
	var enc encodedLists
	var err error
	if enc.colors, err = codec.EncodeList(e.SelectedColors); err != nil {
		return enc, err
	}
	if enc.front, err = codec.EncodeList(e.FrontDetails); err != nil {
		return enc, err
	}
	if enc.back, err = codec.EncodeList(e.BackDetails); err != nil {
		return enc, err
	}
	if enc.files, err = codec.EncodeList(e.AttachedFiles); err != nil {
		return enc, err
	}
	return enc, nil
}

// Insert writes a new estimation row under the id already set on e.
func (r *EstimationRepository) Insert(ctx context.Context, e *estimation.PriceEstimation) error {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	enc, err := encodeEstimationLists(e)
	if err != nil {
		return xerrors.Store(err)
	}

	query := `
		INSERT INTO price_estimations (
			id, customer_id, sales_owner_id, estimate_date, job_name,
			product_category, product_type, quantity, budget, status,
			estimate_note, event_date, material, custom_material,
			has_design, design_description, medal_size, medal_thickness,
			selected_colors, front_details, back_details,
			lanyard_size, lanyard_patterns, strap_size, strap_pattern_count, sewing_option,
			award_design_details, plaque_option, plaque_text, inscription_plate, inscription_details,
			generic_design_details, width, length, height, thickness, attached_files
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
			$31, $32, $33, $34, $35, $36, $37
		)
	`
	_, err = r.db.Pool().Exec(ctx, query,
		e.ID, e.CustomerID, e.SalesOwnerID, e.EstimateDate, e.JobName,
		e.ProductCategory, e.ProductType, e.Quantity, e.Budget, string(e.Status),
		e.EstimateNote, e.EventDate, e.Material, e.CustomMaterial,
		e.HasDesign, e.DesignDescription, e.MedalSize, e.MedalThickness,
		enc.colors, enc.front, enc.back,
		e.LanyardSize, e.LanyardPatterns, e.StrapSize, e.StrapPatternCount, e.SewingOption,
		e.AwardDesignDetails, e.PlaqueOption, e.PlaqueText, e.InscriptionPlate, e.InscriptionDetails,
		e.GenericDesignDetails, e.Width, e.Length, e.Height, e.Thickness, enc.files,
	)
	if err != nil {
		return xerrors.Store(fmt.Errorf("failed to insert estimation: %w", err))
	}
	return nil
}

// Update rewrites the estimation row in place.
func (r *EstimationRepository) Update(ctx context.Context, e *estimation.PriceEstimation) error {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	enc, err := encodeEstimationLists(e)
	if err != nil {
		return xerrors.Store(err)
	}

	query := `
		UPDATE price_estimations SET
			customer_id = $1, sales_owner_id = $2, estimate_date = $3, job_name = $4,
			product_category = $5, product_type = $6, quantity = $7, budget = $8, status = $9,
			estimate_note = $10, event_date = $11, material = $12, custom_material = $13,
			has_design = $14, design_description = $15, medal_size = $16, medal_thickness = $17,
			selected_colors = $18, front_details = $19, back_details = $20,
			lanyard_size = $21, lanyard_patterns = $22, strap_size = $23, strap_pattern_count = $24,
			sewing_option = $25, award_design_details = $26, plaque_option = $27, plaque_text = $28,
			inscription_plate = $29, inscription_details = $30, generic_design_details = $31,
			width = $32, length = $33, height = $34, thickness = $35, attached_files = $36
		WHERE id = $37
	`
	result, err := r.db.Pool().Exec(ctx, query,
		e.CustomerID, e.SalesOwnerID, e.EstimateDate, e.JobName,
		e.ProductCategory, e.ProductType, e.Quantity, e.Budget, string(e.Status),
		e.EstimateNote, e.EventDate, e.Material, e.CustomMaterial,
		e.HasDesign, e.DesignDescription, e.MedalSize, e.MedalThickness,
		enc.colors, enc.front, enc.back,
		e.LanyardSize, e.LanyardPatterns, e.StrapSize, e.StrapPatternCount,
		e.SewingOption, e.AwardDesignDetails, e.PlaqueOption, e.PlaqueText,
		e.InscriptionPlate, e.InscriptionDetails, e.GenericDesignDetails,
		e.Width, e.Length, e.Height, e.Thickness, enc.files,
		e.ID,
	)
	if err != nil {
		return xerrors.Store(fmt.Errorf("failed to update estimation: %w", err))
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// GetByIDWithCustomer returns the full estimation joined with its customer.
// The LEFT JOIN keeps the row visible when the customer has been deleted;
// the joined fields simply come back null.
func (r *EstimationRepository) GetByIDWithCustomer(ctx context.Context, id string) (*estimation.WithCustomer, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	query := `
		SELECT pe.id, pe.customer_id, pe.sales_owner_id, pe.estimate_date, pe.job_name,
		       pe.product_category, pe.product_type, pe.quantity, pe.budget, pe.status,
		       pe.estimate_note, pe.event_date, pe.material, pe.custom_material,
		       pe.has_design, pe.design_description, pe.medal_size, pe.medal_thickness,
		       pe.selected_colors, pe.front_details, pe.back_details,
		       pe.lanyard_size, pe.lanyard_patterns, pe.strap_size, pe.strap_pattern_count, pe.sewing_option,
		       pe.award_design_details, pe.plaque_option, pe.plaque_text, pe.inscription_plate, pe.inscription_details,
		       pe.generic_design_details, pe.width, pe.length, pe.height, pe.thickness,
		       pe.attached_files, pe.created_at,
		       c.company_name, c.contact_name, c.phone_numbers, c.emails, c.line_id, c.customer_type
		FROM price_estimations pe
		LEFT JOIN customers_admin c ON pe.customer_id = c.id
		WHERE pe.id = $1
	`

	var w estimation.WithCustomer
	var colors, front, back, files string
	var status string
	var custPhones, custEmails *string

	err := r.db.Pool().QueryRow(ctx, query, id).Scan(
		&w.ID, &w.CustomerID, &w.SalesOwnerID, &w.EstimateDate, &w.JobName,
		&w.ProductCategory, &w.ProductType, &w.Quantity, &w.Budget, &status,
		&w.EstimateNote, &w.EventDate, &w.Material, &w.CustomMaterial,
		&w.HasDesign, &w.DesignDescription, &w.MedalSize, &w.MedalThickness,
		&colors, &front, &back,
		&w.LanyardSize, &w.LanyardPatterns, &w.StrapSize, &w.StrapPatternCount, &w.SewingOption,
		&w.AwardDesignDetails, &w.PlaqueOption, &w.PlaqueText, &w.InscriptionPlate, &w.InscriptionDetails,
		&w.GenericDesignDetails, &w.Width, &w.Length, &w.Height, &w.Thickness,
		&files, &w.CreatedAt,
		&w.CompanyName, &w.ContactName, &custPhones, &custEmails, &w.CustomerLineID, &w.CustomerType,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, xerrors.Store(fmt.Errorf("failed to find estimation: %w", err))
	}

	w.Status = estimation.Status(status)
	if w.SelectedColors, err = codec.DecodeList(colors); err != nil {
		return nil, xerrors.Store(fmt.Errorf("failed to decode selected colors: %w", err))
	}
	if w.FrontDetails, err = codec.DecodeList(front); err != nil {
		return nil, xerrors.Store(fmt.Errorf("failed to decode front details: %w", err))
	}
	if w.BackDetails, err = codec.DecodeList(back); err != nil {
		return nil, xerrors.Store(fmt.Errorf("failed to decode back details: %w", err))
	}
	if w.AttachedFiles, err = codec.DecodeList(files); err != nil {
		return nil, xerrors.Store(fmt.Errorf("failed to decode attached files: %w", err))
	}

	// Joined customer composites: null joins decode to empty lists.
	w.PhoneNumbers, err = codec.DecodeList(deref(custPhones))
	if err != nil {
		return nil, xerrors.Store(fmt.Errorf("failed to decode customer phones: %w", err))
	}
	w.Emails, err = codec.DecodeList(deref(custEmails))
	if err != nil {
		return nil, xerrors.Store(fmt.Errorf("failed to decode customer emails: %w", err))
	}

	return &w, nil
}

// List returns estimation rows matching the filters, newest created first.
func (r *EstimationRepository) List(ctx context.Context, f estimation.ListFilters) ([]estimation.ListRow, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	p := buildEstimationPredicate(f)

	query := `
		SELECT pe.id, pe.estimate_date, pe.job_name, pe.product_type,
		       pe.quantity, pe.budget, pe.status, pe.sales_owner_id,
		       c.company_name, c.contact_name, c.line_id
		FROM price_estimations pe
		LEFT JOIN customers_admin c ON pe.customer_id = c.id` +
		p.Clause() + `
		ORDER BY pe.created_at DESC`

	rows, err := r.db.Pool().Query(ctx, query, p.Args()...)
	if err != nil {
		return nil, xerrors.Store(fmt.Errorf("failed to list estimations: %w", err))
	}
	defer rows.Close()

	items := []estimation.ListRow{}
	for rows.Next() {
		var row estimation.ListRow
		var status string
		if err := rows.Scan(
			&row.ID, &row.EstimateDate, &row.JobName, &row.ProductType,
			&row.Quantity, &row.Budget, &status, &row.SalesOwnerID,
			&row.CompanyName, &row.ContactName, &row.LineID,
		); err != nil {
			return nil, xerrors.Store(fmt.Errorf("failed to scan estimation: %w", err))
		}
		row.Status = estimation.Status(status)
		items = append(items, row)
	}
	if err := rows.Err(); err != nil {
		return nil, xerrors.Store(fmt.Errorf("failed to read estimations: %w", err))
	}

	return items, nil
}

// buildEstimationPredicate turns the open filter set into a conjunctive
// parameterized predicate. Empty criteria and the UI's "all" sentinel add
// no clause, so an unfiltered call matches every row.
func buildEstimationPredicate(f estimation.ListFilters) *Predicate {
	p := NewPredicate()

	if f.Search != "" {
		ph := p.Bind("%" + f.Search + "%")
		p.Where(fmt.Sprintf(
			"(pe.job_name ILIKE %[1]s OR pe.product_type ILIKE %[1]s OR c.company_name ILIKE %[1]s OR c.contact_name ILIKE %[1]s OR c.line_id ILIKE %[1]s)",
			ph,
		))
	}
	if f.Status != "" && f.Status != "all" {
		p.Where("pe.status = " + p.Bind(f.Status))
	}
	if f.ProductType != "" && f.ProductType != "all" {
		p.Where("pe.product_type = " + p.Bind(f.ProductType))
	}
	if f.StartDate != "" {
		p.Where("pe.estimate_date >= " + p.Bind(f.StartDate))
	}
	if f.EndDate != "" {
		p.Where("pe.estimate_date <= " + p.Bind(f.EndDate))
	}

	return p
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
