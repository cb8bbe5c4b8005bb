// internal/domain/customer/dto.go
package customer

// CreateCustomerRequest carries the camelCase payload the browser UI submits.
type CreateCustomerRequest struct {
	CompanyName  string `json:"companyName"`
	CustomerType string `json:"customerType"`
	TaxID        string `json:"taxId"`

	BillingProvince     string `json:"billingProvince"`
	BillingDistrict     string `json:"billingDistrict"`
	BillingSubdistrict  string `json:"billingSubdistrict"`
	BillingPostcode     string `json:"billingPostcode"`
	BillingAddress      string `json:"billingAddress"`
	ShippingProvince    string `json:"shippingProvince"`
	ShippingDistrict    string `json:"shippingDistrict"`
	ShippingSubdistrict string `json:"shippingSubdistrict"`
	ShippingPostcode    string `json:"shippingPostcode"`
	ShippingAddress     string `json:"shippingAddress"`

	ContactName  string   `json:"contactName"`
	LineID       string   `json:"lineId"`
	PhoneNumbers []string `json:"phoneNumbers"`
	Emails       []string `json:"emails"`

	PresentationStatus string   `json:"presentationStatus"`
	InterestedProducts []string `json:"interestedProducts"`
	ResponsiblePerson  string   `json:"responsiblePerson"`
	CustomerStatus     string   `json:"customerStatus"`
	HowFoundUs         string   `json:"howFoundUs"`
	OtherChannel       string   `json:"otherChannel"`
	Notes              string   `json:"notes"`

	AdditionalContacts []ContactInput `json:"additionalContacts"`
}

type ContactInput struct {
	ContactName string `json:"contactName"`
	LineID      string `json:"lineId"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
}

type CreateCustomerResponse struct {
	ID string `json:"id"`
}
