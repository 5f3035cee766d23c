package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/traini8/backend/model"
)

func strPtr(s string) *string { return &s }

func validRequest() *model.CreateTrainingCenterRequest {
	return &model.CreateTrainingCenterRequest{
		CenterName: strPtr("Skill Development Hub"),
		CenterCode: strPtr("ABCDEF123456"),
		Address: &model.AddressPayload{
			DetailedAddress: strPtr("12 MG Road, Sector 4"),
			City:            strPtr("Bhopal"),
			State:           strPtr("Madhya Pradesh"),
			Pincode:         strPtr("462001"),
		},
		ContactPhone: strPtr("9876543210"),
	}
}

func TestValidateCreateAcceptsValidRequest(t *testing.T) {
	v := NewValidator()
	require.NoError(t, v.ValidateCreate(validRequest()))
}

func TestValidateCreateRequiredFields(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		mutate  func(req *model.CreateTrainingCenterRequest)
		wantErr string
	}{
		{
			name:    "missing center_name",
			mutate:  func(req *model.CreateTrainingCenterRequest) { req.CenterName = nil },
			wantErr: "center_name is required",
		},
		{
			name:    "missing center_code",
			mutate:  func(req *model.CreateTrainingCenterRequest) { req.CenterCode = nil },
			wantErr: "center_code is required",
		},
		{
			name:    "missing address",
			mutate:  func(req *model.CreateTrainingCenterRequest) { req.Address = nil },
			wantErr: "address is required",
		},
		{
			name:    "missing contact_phone",
			mutate:  func(req *model.CreateTrainingCenterRequest) { req.ContactPhone = nil },
			wantErr: "contact_phone is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			err := v.ValidateCreate(req)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidateCreateFieldRules(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		mutate  func(req *model.CreateTrainingCenterRequest)
		wantErr string
	}{
		{
			name: "center_name of 41 characters",
			mutate: func(req *model.CreateTrainingCenterRequest) {
				req.CenterName = strPtr(strings.Repeat("a", 41))
			},
			wantErr: "CenterName should be less than 40 characters",
		},
		{
			name: "center_code of 11 characters",
			mutate: func(req *model.CreateTrainingCenterRequest) {
				req.CenterCode = strPtr("ABCDEF12345")
			},
			wantErr: "CenterCode should be exactly 12 characters",
		},
		{
			name: "center_code of 13 characters",
			mutate: func(req *model.CreateTrainingCenterRequest) {
				req.CenterCode = strPtr("ABCDEF1234567")
			},
			wantErr: "CenterCode should be exactly 12 characters",
		},
		{
			name: "invalid contact_email",
			mutate: func(req *model.CreateTrainingCenterRequest) {
				req.ContactEmail = strPtr("not-an-email")
			},
			wantErr: "Invalid email format",
		},
		{
			name: "contact_phone with 5 digits",
			mutate: func(req *model.CreateTrainingCenterRequest) {
				req.ContactPhone = strPtr("12345")
			},
			wantErr: "Invalid phone number format",
		},
		{
			name: "contact_phone with letters",
			mutate: func(req *model.CreateTrainingCenterRequest) {
				req.ContactPhone = strPtr("98765abc10")
			},
			wantErr: "Invalid phone number format",
		},
		{
			name: "address missing pincode",
			mutate: func(req *model.CreateTrainingCenterRequest) {
				req.Address.Pincode = nil
			},
			wantErr: "Incomplete address details",
		},
		{
			name: "address missing city",
			mutate: func(req *model.CreateTrainingCenterRequest) {
				req.Address.City = nil
			},
			wantErr: "Incomplete address details",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			err := v.ValidateCreate(req)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidateCreateBoundaryValues(t *testing.T) {
	v := NewValidator()

	req := validRequest()
	req.CenterName = strPtr(strings.Repeat("a", 40))
	assert.NoError(t, v.ValidateCreate(req), "40-character name is accepted")

	req = validRequest()
	req.ContactEmail = strPtr("office@center.in")
	assert.NoError(t, v.ValidateCreate(req), "well-formed email is accepted")

	req = validRequest()
	req.ContactEmail = nil
	assert.NoError(t, v.ValidateCreate(req), "email is optional")
}

// Presence checks run before any per-field rule, so a missing contact_phone
// wins over an over-long center_name.
func TestValidateCreateCheckOrder(t *testing.T) {
	v := NewValidator()

	req := validRequest()
	req.CenterName = strPtr(strings.Repeat("a", 41))
	req.ContactPhone = nil

	err := v.ValidateCreate(req)
	require.Error(t, err)
	assert.Equal(t, "contact_phone is required", err.Error())

	// Name length is checked before code length
	req = validRequest()
	req.CenterName = strPtr(strings.Repeat("a", 41))
	req.CenterCode = strPtr("SHORT")

	err = v.ValidateCreate(req)
	require.Error(t, err)
	assert.Equal(t, "CenterName should be less than 40 characters", err.Error())

	// With several fields missing, the first in declaration order is reported
	req = validRequest()
	req.CenterName = nil
	req.ContactPhone = nil

	err = v.ValidateCreate(req)
	require.Error(t, err)
	assert.Equal(t, "center_name is required", err.Error())
}

// Presence means the key was in the payload; a present-but-empty value is
// not a missing field.
func TestValidateCreatePresenceIsKeyPresence(t *testing.T) {
	v := NewValidator()

	req := validRequest()
	req.CenterName = strPtr("")
	assert.NoError(t, v.ValidateCreate(req))

	req = validRequest()
	req.ContactPhone = strPtr("")
	err := v.ValidateCreate(req)
	require.Error(t, err)
	assert.Equal(t, "Invalid phone number format", err.Error(),
		"an empty phone fails the format rule, not the presence check")
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("a@b.co"))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@tld"))
	assert.False(t, ValidateEmail("a@b.c@d"), "the whole value must match, not just a prefix")
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("1234567890"))
	assert.False(t, ValidatePhone("12345"))
	assert.False(t, ValidatePhone("12345678901"))
}
