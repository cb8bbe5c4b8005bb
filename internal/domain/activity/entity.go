// internal/domain/activity/entity.go
package activity

import "time"

type Activity struct {
	ID                string     `json:"id"`
	CustomerID        string     `json:"customer_id"`
	ActivityType      string     `json:"activity_type"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	StartDatetime     time.Time  `json:"start_datetime"`
	EndDatetime       *time.Time `json:"end_datetime"`
	ReminderType      string     `json:"reminder_type"`
	ContactPerson     string     `json:"contact_person"`
	ResponsiblePerson string     `json:"responsible_person"`
	Status            string     `json:"status"`
	Priority          string     `json:"priority"`
	CreatedAt         time.Time  `json:"created_at"`
}
