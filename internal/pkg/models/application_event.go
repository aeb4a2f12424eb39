package models

// ApplicationEventMessage is the trigger envelope published when a record changes.
type ApplicationEventMessage struct {
	EventID     string        `json:"eventId"`
	MessageName string        `json:"messageName"`
	Target      *TargetEntity `json:"target"`
}

// TargetEntity is the full or partial representation of the changed record.
type TargetEntity struct {
	LogicalName string              `json:"logicalName" binding:"required" validate:"required"`
	ID          string              `json:"id" binding:"required" validate:"required"`
	Attributes  MortgageApplication `json:"attributes"`
}

// Application returns the typed attributes with the record id attached.
func (t *TargetEntity) Application() *MortgageApplication {
	app := t.Attributes
	app.ID = t.ID
	return &app
}
