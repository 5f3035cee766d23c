package model

import (
	"strings"
)

// TrainingCenter represents a registered government-funded training center
type TrainingCenter struct {
	ID              uint    `gorm:"primaryKey" json:"-"`
	CenterName      string  `gorm:"type:varchar(40);not null" json:"center_name"`
	CenterCode      string  `gorm:"type:varchar(12);uniqueIndex;not null" json:"center_code"` // unique 12-character alphanumeric code
	DetailedAddress string  `gorm:"type:varchar(255);not null" json:"detailed_address"`
	City            string  `gorm:"type:varchar(100);not null" json:"city"`
	State           string  `gorm:"type:varchar(100);not null" json:"state"`
	Pincode         string  `gorm:"type:varchar(10);not null" json:"pincode"`
	StudentCapacity *int    `json:"student_capacity"`
	CoursesOffered  string  `gorm:"type:text" json:"courses_offered"` // stored as a comma-separated string
	CreatedOn       int64   `gorm:"autoCreateTime" json:"created_on"` // unix seconds, assigned by the store
	ContactEmail    *string `gorm:"type:varchar(100)" json:"contact_email"`
	ContactPhone    string  `gorm:"type:varchar(15);not null" json:"contact_phone"`
}

// AddressPayload is the nested address object of the create request.
// Pointer fields distinguish an absent key from an empty value.
type AddressPayload struct {
	DetailedAddress *string `json:"detailed_address"`
	City            *string `json:"city"`
	State           *string `json:"state"`
	Pincode         *string `json:"pincode"`
}

// CreateTrainingCenterRequest represents the request body for registering a training center
type CreateTrainingCenterRequest struct {
	CenterName      *string         `json:"center_name" validate:"required"`
	CenterCode      *string         `json:"center_code" validate:"required"`
	Address         *AddressPayload `json:"address" validate:"required"`
	StudentCapacity *int            `json:"student_capacity"`
	CoursesOffered  []string        `json:"courses_offered"`
	ContactEmail    *string         `json:"contact_email"`
	ContactPhone    *string         `json:"contact_phone" validate:"required"`
}

// AddressResponse is the nested address object of the wire representation
type AddressResponse struct {
	DetailedAddress string `json:"detailed_address"`
	City            string `json:"city"`
	State           string `json:"state"`
	Pincode         string `json:"pincode"`
}

// TrainingCenterResponse is the wire representation of a stored record.
// The internal primary key is never exposed.
type TrainingCenterResponse struct {
	CenterName      string          `json:"center_name"`
	CenterCode      string          `json:"center_code"`
	Address         AddressResponse `json:"address"`
	StudentCapacity *int            `json:"student_capacity"`
	CoursesOffered  []string        `json:"courses_offered"`
	CreatedOn       int64           `json:"created_on"`
	ContactEmail    *string         `json:"contact_email"`
	ContactPhone    string          `json:"contact_phone"`
}

// ToResponse converts a stored record into its wire shape, splitting the
// comma-joined course list back into a slice. Split order matches the
// order the courses were submitted in.
func (tc *TrainingCenter) ToResponse() TrainingCenterResponse {
	courses := []string{}
	if tc.CoursesOffered != "" {
		courses = strings.Split(tc.CoursesOffered, ",")
	}

	return TrainingCenterResponse{
		CenterName: tc.CenterName,
		CenterCode: tc.CenterCode,
		Address: AddressResponse{
			DetailedAddress: tc.DetailedAddress,
			City:            tc.City,
			State:           tc.State,
			Pincode:         tc.Pincode,
		},
		StudentCapacity: tc.StudentCapacity,
		CoursesOffered:  courses,
		CreatedOn:       tc.CreatedOn,
		ContactEmail:    tc.ContactEmail,
		ContactPhone:    tc.ContactPhone,
	}
}

// FromCreateRequest assembles a record from a validated create request,
// flattening the address and joining the course list into its storage form.
// ID and CreatedOn are left for the store to assign.
func FromCreateRequest(req *CreateTrainingCenterRequest) TrainingCenter {
	return TrainingCenter{
		CenterName:      *req.CenterName,
		CenterCode:      *req.CenterCode,
		DetailedAddress: *req.Address.DetailedAddress,
		City:            *req.Address.City,
		State:           *req.Address.State,
		Pincode:         *req.Address.Pincode,
		StudentCapacity: req.StudentCapacity,
		CoursesOffered:  strings.Join(req.CoursesOffered, ","),
		ContactEmail:    req.ContactEmail,
		ContactPhone:    *req.ContactPhone,
	}
}
