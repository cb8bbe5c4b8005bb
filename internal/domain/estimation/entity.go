// internal/domain/estimation/entity.go
package estimation

import "time"

// Status is the estimation life-cycle label. The set is closed to stop the
// column drifting into free text; no transition graph is enforced, so any
// status may be written at any time.
type Status string

const (
	StatusAwaitingProcurement Status = "รอจัดซื้อส่งประเมิน"
	StatusInProgress          Status = "อยู่ระหว่างการประเมินราคา"
	StatusApproved            Status = "อนุมัติแล้ว"
	StatusCancelled           Status = "ยกเลิก"
)

// Valid reports whether s is one of the allowed labels.
func (s Status) Valid() bool {
	switch s {
	case StatusAwaitingProcurement, StatusInProgress, StatusApproved, StatusCancelled:
		return true
	}
	return false
}

type PriceEstimation struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customer_id"`
	SalesOwnerID string `json:"sales_owner_id"`

	// estimate_date is the business date filters compare against, kept as
	// an ISO yyyy-mm-dd string like the rows already on disk.
	EstimateDate    string  `json:"estimate_date"`
	JobName         string  `json:"job_name"`
	ProductCategory string  `json:"product_category"`
	ProductType     string  `json:"product_type"`
	Quantity        int     `json:"quantity"`
	Budget          float64 `json:"budget"`
	Status          Status  `json:"status"`
	EstimateNote    string  `json:"estimate_note"`
	EventDate       string  `json:"event_date"`

	Material          string `json:"material"`
	CustomMaterial    string `json:"custom_material"`
	HasDesign         string `json:"has_design"`
	DesignDescription string `json:"design_description"`

	// Medal
	MedalSize      string   `json:"medal_size"`
	MedalThickness string   `json:"medal_thickness"`
	SelectedColors []string `json:"selected_colors"`
	FrontDetails   []string `json:"front_details"`
	BackDetails    []string `json:"back_details"`
	LanyardSize    string   `json:"lanyard_size"`
	LanyardPatterns string  `json:"lanyard_patterns"`

	// Lanyard
	StrapSize         string `json:"strap_size"`
	StrapPatternCount string `json:"strap_pattern_count"`
	SewingOption      string `json:"sewing_option"`

	// Award / plaque
	AwardDesignDetails string `json:"award_design_details"`
	PlaqueOption       string `json:"plaque_option"`
	PlaqueText         string `json:"plaque_text"`
	InscriptionPlate   string `json:"inscription_plate"`
	InscriptionDetails string `json:"inscription_details"`

	GenericDesignDetails string `json:"generic_design_details"`

	// Physical dimensions
	Width     float64 `json:"width"`
	Length    float64 `json:"length"`
	Height    float64 `json:"height"`
	Thickness float64 `json:"thickness"`

	AttachedFiles []string `json:"attached_files"`

	CreatedAt time.Time `json:"created_at"`
}

// WithCustomer is the detail projection: the estimation row LEFT JOINed with
// its customer. The customer fields stay null when the customer is missing
// or has since been deleted. The estimation itself is never suppressed.
type WithCustomer struct {
	PriceEstimation
	CompanyName    *string  `json:"company_name"`
	ContactName    *string  `json:"contact_name"`
	CustomerLineID *string  `json:"customer_line_id"`
	CustomerType   *string  `json:"customer_type"`
	PhoneNumbers   []string `json:"phone_numbers"`
	Emails         []string `json:"emails"`
}

// ListRow is what the listing query scans: the estimation columns the table
// view needs plus the joined customer naming fields, still nullable.
type ListRow struct {
	ID           string
	EstimateDate string
	JobName      string
	ProductType  string
	Quantity     int
	Budget       float64
	Status       Status
	SalesOwnerID string
	CompanyName  *string
	ContactName  *string
	LineID       *string
}
