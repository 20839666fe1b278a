package domain

import "time"

// Message maps the messages table: one-to-one notices sent to a farmer.
// farmer_id references farmers(id); the FK is the only place the link is
// enforced.
type Message struct {
	ID        string    `db:"id"` // MSG[0-9]{3}
	FarmerID  string    `db:"farmer_id"`
	Subject   string    `db:"subject"`
	Message   string    `db:"message"`
	Timestamp time.Time `db:"timestamp"`
	Status    string    `db:"status"`   // Sent, Delivered, Read
	Priority  string    `db:"priority"` // Low, Medium, High
}

// GroupMessage maps the group_messages table: broadcasts to a named group
// (village, route, all members). Recipients are resolved at send time, only
// the count is kept.
type GroupMessage struct {
	ID              string    `db:"id"` // GMSG[0-9]{3}
	GroupName       string    `db:"group_name"`
	Subject         string    `db:"subject"`
	Message         string    `db:"message"`
	Timestamp       time.Time `db:"timestamp"`
	RecipientsCount int       `db:"recipients_count"`
	Status          string    `db:"status"`   // Sent, Delivered
	Priority        string    `db:"priority"` // Low, Medium, High
}
