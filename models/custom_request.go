package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ContactMethodEmail     = "Email"
	ContactMethodWhatsApp  = "WhatsApp"
	ContactMethodPhoneCall = "PhoneCall"

	StatusNew        = "New"
	StatusInProgress = "InProgress"
	StatusContacted  = "Contacted"
	StatusClosed     = "Closed"
	StatusApproved   = "Approved"

	// RequestSource tags every document created through the public form.
	RequestSource = "CUSTOM TOUR FORM"
)

// AllowedStatuses includes "Approved", which the admin dashboard writes even
// though it started life outside the original status list.
var AllowedStatuses = []string{StatusNew, StatusInProgress, StatusContacted, StatusClosed, StatusApproved}

var AllowedContactMethods = []string{ContactMethodEmail, ContactMethodWhatsApp, ContactMethodPhoneCall}

var ErrRequestNotFound = errors.New("custom tour request not found")

type CustomerInfo struct {
	FullName      string `bson:"fullName" json:"fullName"`
	Email         string `bson:"email" json:"email"`
	Phone         string `bson:"phone,omitempty" json:"phone,omitempty"`
	Whatsapp      string `bson:"whatsapp,omitempty" json:"whatsapp,omitempty"`
	Nationality   string `bson:"nationality,omitempty" json:"nationality,omitempty"`
	ContactMethod string `bson:"contactMethod" json:"contactMethod"`
}

type TravelPreferences struct {
	StartMonth       string `bson:"startMonth,omitempty" json:"startMonth,omitempty"`
	Budget           string `bson:"budget,omitempty" json:"budget,omitempty"`
	DetailsAboutTour string `bson:"detailsAboutTour,omitempty" json:"detailsAboutTour,omitempty"`
}

// CustomTourRequest is one inbound request for a bespoke tour.
type CustomTourRequest struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Customer          CustomerInfo       `bson:"customer" json:"customer"`
	Country           string             `bson:"country" json:"country"`
	Days              int                `bson:"days" json:"days"`
	GroupSize         string             `bson:"groupSize,omitempty" json:"groupSize,omitempty"`
	TravelPreferences TravelPreferences  `bson:"travelPreferences" json:"travelPreferences"`
	ShortDescription  string             `bson:"shortDescription,omitempty" json:"shortDescription,omitempty"`
	Source            string             `bson:"source" json:"source"`
	Status            string             `bson:"status" json:"status"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ApplyDefaults fills the schema defaults on a freshly submitted request.
func (r *CustomTourRequest) ApplyDefaults() {
	if r.Source == "" {
		r.Source = RequestSource
	}
	if r.Status == "" {
		r.Status = StatusNew
	}
	if r.Customer.ContactMethod == "" {
		r.Customer.ContactMethod = ContactMethodEmail
	}
}

// Validate enforces the required fields and the enumerations at creation time.
func (r *CustomTourRequest) Validate() error {
	var missing []string
	if strings.TrimSpace(r.Customer.FullName) == "" {
		missing = append(missing, "customer.fullName")
	}
	if strings.TrimSpace(r.Customer.Email) == "" {
		missing = append(missing, "customer.email")
	}
	if strings.TrimSpace(r.Country) == "" {
		missing = append(missing, "country")
	}
	if r.Days <= 0 {
		missing = append(missing, "days")
	}
	if len(missing) > 0 {
		return fmt.Errorf("validation failed: %s required", strings.Join(missing, ", "))
	}

	if !contains(AllowedStatuses, r.Status) {
		return fmt.Errorf("validation failed: %q is not a valid status", r.Status)
	}
	if !contains(AllowedContactMethods, r.Customer.ContactMethod) {
		return fmt.Errorf("validation failed: %q is not a valid contact method", r.Customer.ContactMethod)
	}
	return nil
}

// CustomTourRequestUpdate is a partial update; nil fields are left untouched.
// The update path deliberately skips enum re-validation, matching how the
// admin dashboard has always written status values.
type CustomTourRequestUpdate struct {
	Customer          *CustomerInfo      `json:"customer,omitempty"`
	Country           *string            `json:"country,omitempty"`
	Days              *int               `json:"days,omitempty"`
	GroupSize         *string            `json:"groupSize,omitempty"`
	TravelPreferences *TravelPreferences `json:"travelPreferences,omitempty"`
	ShortDescription  *string            `json:"shortDescription,omitempty"`
	Source            *string            `json:"source,omitempty"`
	Status            *string            `json:"status,omitempty"`
}

// IsApproval reports whether the incoming payload carries the literal
// "Approved" status. The check is against the request body, not the
// persisted document.
func (u *CustomTourRequestUpdate) IsApproval() bool {
	return u.Status != nil && *u.Status == StatusApproved
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
