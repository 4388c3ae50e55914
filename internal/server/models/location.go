package models

import (
	"time"

	"github.com/dmitrijs2005/reportvault/internal/common"
)

// Location is a venue record. Locations have no owner; any
// authenticated user may create or read them.
type Location struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PhoneNumber int64  `json:"phoneNumber"`

	Street1 string `json:"street1"`
	Street2 string `json:"street2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	// Zip is a string to allow dashed ZIP+4 codes.
	Zip string `json:"zip"`

	ParkingInfo      string `json:"parkingInfo,omitempty"`
	Accessible       bool   `json:"accessible"`
	Open             int    `json:"open,omitempty"`
	Close            int    `json:"close,omitempty"`
	TimeZone         string `json:"timeZone,omitempty"`
	Alcohol          bool   `json:"alcohol"`
	Smoking          bool   `json:"smoking"`
	MaximumOccupancy int    `json:"maximumOccupancy,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate checks the required location fields.
func (l *Location) Validate() error {
	v := &common.ValidationError{}

	if l.Name == "" {
		v.Add("Name is required")
	}
	if l.PhoneNumber == 0 {
		v.Add("Phone number is required")
	}
	if l.Street1 == "" {
		v.Add("street1 is required")
	}
	if l.City == "" {
		v.Add("city is required")
	}
	if l.State == "" {
		v.Add("state is required")
	}
	if l.Zip == "" {
		v.Add("zip is required")
	}

	return v.OrNil()
}
