// internal/repository/postgres/customer_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"lucky-backoffice/internal/domain/customer"
	"lucky-backoffice/internal/pkg/codec"
	xerrors "lucky-backoffice/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
)

type CustomerRepository struct {
	db *DB
}

func NewCustomerRepository(db *DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

const customerColumns = `id, company_name, customer_type, tax_id,
	billing_province, billing_district, billing_subdistrict, billing_postcode, billing_address,
	shipping_province, shipping_district, shipping_subdistrict, shipping_postcode, shipping_address,
	contact_name, line_id, phone_numbers, emails,
	presentation_status, interested_products, responsible_person,
	customer_status, how_found_us, other_channel, notes, created_at`

// CreateWithContacts writes the customer row and all supplied contacts in
// one atomic sequence. Parent first, then children, so the foreign key is
// always satisfiable inside the transaction.
func (r *CustomerRepository) CreateWithContacts(ctx context.Context, c *customer.Customer) error {
	phones, err := codec.EncodeList(c.PhoneNumbers)
	if err != nil {
		return xerrors.Store(err)
	}
	emails, err := codec.EncodeList(c.Emails)
	if err != nil {
		return xerrors.Store(err)
	}
	products := codec.EncodeJoined(c.InterestedProducts)

	err = r.db.RunAtomic(ctx, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO customers_admin (
				id, company_name, customer_type, tax_id,
				billing_province, billing_district, billing_subdistrict, billing_postcode, billing_address,
				shipping_province, shipping_district, shipping_subdistrict, shipping_postcode, shipping_address,
				contact_name, line_id, phone_numbers, emails,
				presentation_status, interested_products, responsible_person,
				customer_status, how_found_us, other_channel, notes
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
		`
		_, err := tx.Exec(ctx, query,
			c.ID, c.CompanyName, c.CustomerType, c.TaxID,
			c.BillingProvince, c.BillingDistrict, c.BillingSubdistrict, c.BillingPostcode, c.BillingAddress,
			c.ShippingProvince, c.ShippingDistrict, c.ShippingSubdistrict, c.ShippingPostcode, c.ShippingAddress,
			c.ContactName, c.LineID, phones, emails,
			c.PresentationStatus, products, c.ResponsiblePerson,
			c.CustomerStatus, c.HowFoundUs, c.OtherChannel, c.Notes,
		)
		if err != nil {
			return fmt.Errorf("failed to insert customer: %w", err)
		}

		contactQuery := `
			INSERT INTO customer_admin_contacts (id, customer_id, contact_name, line_id, phone_number, email)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		for i := range c.AdditionalContacts {
			ct := &c.AdditionalContacts[i]
			ct.CustomerID = c.ID
			if _, err := tx.Exec(ctx, contactQuery,
				ct.ID, ct.CustomerID, ct.ContactName, ct.LineID, ct.PhoneNumber, ct.Email,
			); err != nil {
				return fmt.Errorf("failed to insert contact: %w", err)
			}
		}
		return nil
	})
	return xerrors.Store(err)
}

// GetByID retrieves a customer with its contacts hydrated.
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*customer.Customer, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	query := `SELECT ` + customerColumns + ` FROM customers_admin WHERE id = $1`

	c, err := r.scanCustomer(r.db.Pool().QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrNotFound
		}
		return nil, xerrors.Store(fmt.Errorf("failed to find customer: %w", err))
	}

	contactQuery := `
		SELECT id, customer_id, contact_name, line_id, phone_number, email
		FROM customer_admin_contacts
		WHERE customer_id = $1
	`
	rows, err := r.db.Pool().Query(ctx, contactQuery, id)
	if err != nil {
		return nil, xerrors.Store(fmt.Errorf("failed to load contacts: %w", err))
	}
	defer rows.Close()

	contacts := []customer.AdditionalContact{}
	for rows.Next() {
		var ct customer.AdditionalContact
		if err := rows.Scan(&ct.ID, &ct.CustomerID, &ct.ContactName, &ct.LineID, &ct.PhoneNumber, &ct.Email); err != nil {
			return nil, xerrors.Store(fmt.Errorf("failed to scan contact: %w", err))
		}
		contacts = append(contacts, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, xerrors.Store(fmt.Errorf("failed to read contacts: %w", err))
	}
	c.AdditionalContacts = contacts

	return c, nil
}

// List retrieves all customers, newest created first. Contacts are not
// hydrated on the listing.
func (r *CustomerRepository) List(ctx context.Context) ([]customer.Customer, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	query := `SELECT ` + customerColumns + ` FROM customers_admin ORDER BY created_at DESC`

	rows, err := r.db.Pool().Query(ctx, query)
	if err != nil {
		return nil, xerrors.Store(fmt.Errorf("failed to list customers: %w", err))
	}
	defer rows.Close()

	customers := []customer.Customer{}
	for rows.Next() {
		c, err := r.scanCustomer(rows)
		if err != nil {
			return nil, xerrors.Store(fmt.Errorf("failed to scan customer: %w", err))
		}
		customers = append(customers, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, xerrors.Store(fmt.Errorf("failed to read customers: %w", err))
	}

	return customers, nil
}

// DeleteByID removes the customer and its contacts in one atomic sequence.
// The schema also cascades, but the explicit child delete keeps the cleanup
// visible and portable.
func (r *CustomerRepository) DeleteByID(ctx context.Context, id string) error {
	err := r.db.RunAtomic(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM customer_admin_contacts WHERE customer_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete contacts: %w", err)
		}
		result, err := tx.Exec(ctx, `DELETE FROM customers_admin WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete customer: %w", err)
		}
		if result.RowsAffected() == 0 {
			return xerrors.ErrNotFound
		}
		return nil
	})
	return xerrors.Store(err)
}

func (r *CustomerRepository) scanCustomer(row pgx.Row) (*customer.Customer, error) {
	var c customer.Customer
	var phones, emails, products string

	err := row.Scan(
		&c.ID, &c.CompanyName, &c.CustomerType, &c.TaxID,
		&c.BillingProvince, &c.BillingDistrict, &c.BillingSubdistrict, &c.BillingPostcode, &c.BillingAddress,
		&c.ShippingProvince, &c.ShippingDistrict, &c.ShippingSubdistrict, &c.ShippingPostcode, &c.ShippingAddress,
		&c.ContactName, &c.LineID, &phones, &emails,
		&c.PresentationStatus, &products, &c.ResponsiblePerson,
		&c.CustomerStatus, &c.HowFoundUs, &c.OtherChannel, &c.Notes, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if c.PhoneNumbers, err = codec.DecodeList(phones); err != nil {
		return nil, fmt.Errorf("failed to decode phone numbers: %w", err)
	}
	if c.Emails, err = codec.DecodeList(emails); err != nil {
		return nil, fmt.Errorf("failed to decode emails: %w", err)
	}
	c.InterestedProducts = codec.DecodeJoined(products)

	return &c, nil
}
