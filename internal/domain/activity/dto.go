// internal/domain/activity/dto.go
package activity

// SaveActivityRequest carries the snake_case payload the browser UI submits.
// A present id means update-in-place; an absent id means insert with a fresh
// generated id. Datetimes arrive as strings and are normalized server-side.
type SaveActivityRequest struct {
	ID                string `json:"id"`
	CustomerID        string `json:"customer_id"`
	ActivityType      string `json:"activity_type"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	StartDatetime     string `json:"start_datetime"`
	EndDatetime       string `json:"end_datetime"`
	ReminderType      string `json:"reminder_type"`
	ContactPerson     string `json:"contact_person"`
	ResponsiblePerson string `json:"responsible_person"`
	Status            string `json:"status"`
	Priority          string `json:"priority"`
}

type DeleteActivityRequest struct {
	ID string `json:"id"`
}
