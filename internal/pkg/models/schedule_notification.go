package models

import "time"

// ScheduleGeneratedNotification is published once a schedule has been written.
type ScheduleGeneratedNotification struct {
	TraceID         string    `json:"traceId"`
	ApplicationID   string    `json:"applicationId"`
	PaymentsCreated int       `json:"paymentsCreated"`
	MonthlyPayment  string    `json:"monthlyPayment"`
	GeneratedAt     time.Time `json:"generatedAt"`
}
