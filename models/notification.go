package models

import "time"

type Notification struct {
	ID         string            `bson:"id" json:"id"`
	FacilityID string            `bson:"facilityId" json:"facilityId"`
	Type       string            `bson:"type" json:"type"` // document_review | facility_review | system
	Title      string            `bson:"title" json:"title"`
	Body       string            `bson:"body" json:"body"`
	Data       map[string]string `bson:"data,omitempty" json:"data,omitempty"`
	Read       bool              `bson:"read" json:"read"`
	CreatedAt  time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time         `bson:"updatedAt" json:"updatedAt"`
}
