package domain

import "github.com/aarondl/null/v8"

// Client is a registered client with missing stock. Dates are stored
// as ISO YYYY-MM-DD strings. Remainder is NULL until set, blank once
// everything was picked up.
type Client struct {
	ID                int64       `db:"id"`
	Name              string      `db:"name"`
	City              string      `db:"city"`
	MissingProduct    string      `db:"missing_product"`
	Remainder         null.String `db:"remainder"`
	Date              string      `db:"date"`
	Responsible       string      `db:"responsible"`
	ReadyLierDate     null.String `db:"ready_lier_date"`
	ReadyLierBy       null.String `db:"ready_lier_by"`
	ProcessedDatetime null.String `db:"processed_datetime"`
	ProcessedBy       null.String `db:"processed_by"`
}

// PickupAction values stored in pickup_logs.action.
const (
	PickupAll  = "all"
	PickupLeft = "left"
)

// PickupLog is an append-only record of one pickup event. Remainder
// snapshots what was left after the pickup.
type PickupLog struct {
	ID          int64       `db:"id"`
	ClientID    int64       `db:"client_id"`
	Date        string      `db:"date"`
	Action      string      `db:"action"`
	Remainder   null.String `db:"remainder"`
	Responsible string      `db:"responsible"`
}
