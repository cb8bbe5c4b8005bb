// internal/domain/estimation/dto.go
package estimation

// SaveEstimationRequest carries the camelCase payload the browser UI submits.
// Numeric fields arrive as strings and are coerced server-side; a present id
// means update-in-place.
type SaveEstimationRequest struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customerId"`
	SalesOwnerID string `json:"salesOwnerId"`

	EstimateDate    string `json:"estimateDate"`
	JobName         string `json:"jobName"`
	ProductCategory string `json:"productCategory"`
	ProductType     string `json:"productType"`
	Quantity        string `json:"quantity"`
	Budget          string `json:"budget"`
	Status          string `json:"status"`
	EstimateNote    string `json:"estimateNote"`
	EventDate       string `json:"eventDate"`

	Material          string `json:"material"`
	CustomMaterial    string `json:"customMaterial"`
	HasDesign         string `json:"hasDesign"`
	DesignDescription string `json:"designDescription"`

	MedalSize       string   `json:"medalSize"`
	MedalThickness  string   `json:"medalThickness"`
	SelectedColors  []string `json:"selectedColors"`
	FrontDetails    []string `json:"frontDetails"`
	BackDetails     []string `json:"backDetails"`
	LanyardSize     string   `json:"lanyardSize"`
	LanyardPatterns string   `json:"lanyardPatterns"`

	StrapSize         string `json:"strapSize"`
	StrapPatternCount string `json:"strapPatternCount"`
	SewingOption      string `json:"sewingOption"`

	AwardDesignDetails string `json:"awardDesignDetails"`
	PlaqueOption       string `json:"plaqueOption"`
	PlaqueText         string `json:"plaqueText"`
	InscriptionPlate   string `json:"inscriptionPlate"`
	InscriptionDetails string `json:"inscriptionDetails"`

	GenericDesignDetails string `json:"genericDesignDetails"`

	Width     string `json:"width"`
	Length    string `json:"length"`
	Height    string `json:"height"`
	Thickness string `json:"thickness"`

	AttachedFiles []string `json:"attachedFiles"`
}

type SaveEstimationResponse struct {
	ID string `json:"id"`
}

// ListFilters is the open criteria set for the estimation listing. Empty
// values contribute no clause; "all" on status/productType is the UI's
// explicit no-filter sentinel. Dates bound estimate_date inclusively.
type ListFilters struct {
	Search      string `form:"search"`
	Status      string `form:"status"`
	ProductType string `form:"productType"`
	StartDate   string `form:"startDate"`
	EndDate     string `form:"endDate"`
}

// ListItem is the table-view projection the UI consumes.
type ListItem struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	JobName      string  `json:"jobName"`
	LineName     string  `json:"lineName"`
	CustomerName string  `json:"customerName"`
	ProductType  string  `json:"productType"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	Status       Status  `json:"status"`
	SalesOwner   string  `json:"salesOwner"`
}
