// internal/domain/customer/entity.go
package customer

import "time"

type Customer struct {
	ID           string `json:"id"`
	CompanyName  string `json:"company_name"`
	CustomerType string `json:"customer_type"`
	TaxID        string `json:"tax_id"`

	// Address blocks
	BillingProvince     string `json:"billing_province"`
	BillingDistrict     string `json:"billing_district"`
	BillingSubdistrict  string `json:"billing_subdistrict"`
	BillingPostcode     string `json:"billing_postcode"`
	BillingAddress      string `json:"billing_address"`
	ShippingProvince    string `json:"shipping_province"`
	ShippingDistrict    string `json:"shipping_district"`
	ShippingSubdistrict string `json:"shipping_subdistrict"`
	ShippingPostcode    string `json:"shipping_postcode"`
	ShippingAddress     string `json:"shipping_address"`

	// Contact
	ContactName  string   `json:"contact_name"`
	LineID       string   `json:"line_id"`
	PhoneNumbers []string `json:"phone_numbers"`
	Emails       []string `json:"emails"`

	// Sales tracking
	PresentationStatus string   `json:"presentation_status"`
	InterestedProducts []string `json:"interested_products"`
	ResponsiblePerson  string   `json:"responsible_person"`
	CustomerStatus     string   `json:"customer_status"`
	HowFoundUs         string   `json:"how_found_us"`
	OtherChannel       string   `json:"other_channel"`
	Notes              string   `json:"notes"`

	CreatedAt time.Time `json:"created_at"`

	// Hydrated on detail reads only; the list endpoint leaves it out.
	AdditionalContacts []AdditionalContact `json:"additional_contacts,omitempty"`
}

// AdditionalContact is owned exclusively by one customer. Contacts are
// written in the same atomic sequence as the parent row and removed with it.
type AdditionalContact struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	ContactName string `json:"contact_name"`
	LineID      string `json:"line_id"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}
