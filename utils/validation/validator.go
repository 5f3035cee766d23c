package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/traini8/backend/model"
)

var (
	// EmailRegex matches the minimal local@domain.tld shape
	EmailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

	// PhoneRegex matches exactly 10 decimal digits
	PhoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

// Validator wraps the go-playground validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance reporting fields by their
// wire (json) names.
func NewValidator() *Validator {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{
		validate: validate,
	}
}

// ValidateStruct validates a struct using struct tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// ValidateCreate checks a create-training-center payload. Checks run in a
// fixed order and stop at the first failure; the returned error message is
// exactly what goes on the wire. No store access and no sanitization happen
// here.
func (v *Validator) ValidateCreate(req *model.CreateTrainingCenterRequest) error {
	// Required fields, presence meaning the key was in the payload. The
	// request struct's required tags fail on nil pointers only, and the
	// validator reports failures in field-declaration order.
	if err := v.ValidateStruct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%s is required", verrs[0].Field())
		}
		return err
	}

	if err := v.validate.Var(*req.CenterName, "max=40"); err != nil {
		return errors.New("CenterName should be less than 40 characters")
	}

	if err := v.validate.Var(*req.CenterCode, "len=12"); err != nil {
		return errors.New("CenterCode should be exactly 12 characters")
	}

	if req.ContactEmail != nil && !ValidateEmail(*req.ContactEmail) {
		return errors.New("Invalid email format")
	}

	if !ValidatePhone(*req.ContactPhone) {
		return errors.New("Invalid phone number format")
	}

	if req.Address.DetailedAddress == nil || req.Address.City == nil ||
		req.Address.State == nil || req.Address.Pincode == nil {
		return errors.New("Incomplete address details")
	}

	return nil
}

// ValidateEmail checks if an email matches the accepted shape
func ValidateEmail(email string) bool {
	return EmailRegex.MatchString(email)
}

// ValidatePhone checks if a phone number is exactly 10 digits
func ValidatePhone(phone string) bool {
	return PhoneRegex.MatchString(phone)
}
