// internal/service/customer/customer.go
package customer

import (
	"context"
	"strings"

	"lucky-backoffice/internal/domain/customer"
	xerrors "lucky-backoffice/internal/pkg/errors"
	"lucky-backoffice/internal/pkg/ident"

	"go.uber.org/zap"
)

type CustomerService struct {
	repo   customer.Repository
	logger *zap.Logger
}

func NewCustomerService(repo customer.Repository, logger *zap.Logger) *CustomerService {
	return &CustomerService{repo: repo, logger: logger}
}

// CreateCustomer validates the payload, assigns fresh ids to the parent and
// every contact, and hands the whole batch to the store as one atomic
// sequence. Validation failures never reach the store.
func (s *CustomerService) CreateCustomer(ctx context.Context, req *customer.CreateCustomerRequest) (*customer.CreateCustomerResponse, error) {
	if strings.TrimSpace(req.CompanyName) == "" || strings.TrimSpace(req.ContactName) == "" {
		return nil, xerrors.Validation("company name and contact name are required")
	}

	c := &customer.Customer{
		ID:           ident.New(),
		CompanyName:  req.CompanyName,
		CustomerType: req.CustomerType,
		TaxID:        req.TaxID,

		BillingProvince:     req.BillingProvince,
		BillingDistrict:     req.BillingDistrict,
		BillingSubdistrict:  req.BillingSubdistrict,
		BillingPostcode:     req.BillingPostcode,
		BillingAddress:      req.BillingAddress,
		ShippingProvince:    req.ShippingProvince,
		ShippingDistrict:    req.ShippingDistrict,
		ShippingSubdistrict: req.ShippingSubdistrict,
		ShippingPostcode:    req.ShippingPostcode,
		ShippingAddress:     req.ShippingAddress,

		ContactName:  req.ContactName,
		LineID:       req.LineID,
		PhoneNumbers: req.PhoneNumbers,
		Emails:       req.Emails,

		PresentationStatus: req.PresentationStatus,
		InterestedProducts: req.InterestedProducts,
		ResponsiblePerson:  req.ResponsiblePerson,
		CustomerStatus:     req.CustomerStatus,
		HowFoundUs:         req.HowFoundUs,
		OtherChannel:       req.OtherChannel,
		Notes:              req.Notes,
	}

	contacts := make([]customer.AdditionalContact, 0, len(req.AdditionalContacts))
	for _, in := range req.AdditionalContacts {
		contacts = append(contacts, customer.AdditionalContact{
			ID:          ident.New(),
			CustomerID:  c.ID,
			ContactName: in.ContactName,
			LineID:      in.LineID,
			PhoneNumber: in.PhoneNumber,
			Email:       in.Email,
		})
	}
	c.AdditionalContacts = contacts

	if err := s.repo.CreateWithContacts(ctx, c); err != nil {
		s.logger.Error("failed to create customer", zap.Error(err))
		return nil, err
	}

	s.logger.Info("customer created",
		zap.String("customer_id", c.ID),
		zap.Int("contacts", len(contacts)),
	)

	return &customer.CreateCustomerResponse{ID: c.ID}, nil
}

// GetCustomer retrieves a customer with its contacts.
func (s *CustomerService) GetCustomer(ctx context.Context, id string) (*customer.Customer, error) {
	if id == "" {
		return nil, xerrors.Validation("customer id is required")
	}
	return s.repo.GetByID(ctx, id)
}

// ListCustomers returns all customers, newest first.
func (s *CustomerService) ListCustomers(ctx context.Context) ([]customer.Customer, error) {
	return s.repo.List(ctx)
}

// DeleteCustomer removes a customer and its contacts.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id string) error {
	if id == "" {
		return xerrors.Validation("customer id is required")
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info("customer deleted", zap.String("customer_id", id))
	return nil
}
