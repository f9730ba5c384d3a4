// Package validation holds the canonical form rules for customer-facing
// submissions. The checkout workflow validates with it before sending, and
// the order/visit handlers validate with it again as the authoritative gate,
// so the two sides cannot drift.
package validation

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/qimma-sa/kitchens-api/models"
)

// Saudi mobile numbers: 05XXXXXXXX or 5XXXXXXXX.
var SaudiPhoneRE = regexp.MustCompile(`^(05|5)\d{8}$`)

var decimalShapeRE = regexp.MustCompile(`^\d+(\.\d+)?$`)

type CheckoutForm struct {
	FullName string `json:"fullName" validate:"required,min=3"`
	Phone    string `json:"phone" validate:"required,saudi_phone"`
	City     string `json:"city" validate:"required,min=2"`
	District string `json:"district" validate:"required,min=2"`
	Address  string `json:"address" validate:"required,min=5"`
	Notes    string `json:"notes"`
}

type VisitRequestForm struct {
	FullName          string `json:"fullName" validate:"required,min=3"`
	Phone             string `json:"phone" validate:"required,saudi_phone"`
	City              string `json:"city" validate:"required,min=2"`
	District          string `json:"district" validate:"required,min=2"`
	Address           string `json:"address" validate:"required,min=5"`
	MaterialType      string `json:"materialType" validate:"required,material_type"`
	ApproxMeters      string `json:"approxMeters" validate:"omitempty,decimal_shape"`
	Notes             string `json:"notes"`
	PreferredDatetime string `json:"preferredDatetime" validate:"omitempty,datetime_local"`
}

// FieldError is a single field-scoped validation failure with its
// user-facing Arabic message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return e[0].Message
}

// First returns the first failing field's message; the server surfaces this
// as the generic request error.
func (e Errors) First() string {
	if len(e) == 0 {
		return ""
	}
	return e[0].Message
}

var messages = map[string]string{
	"FullName":          "الاسم يجب أن يكون 3 أحرف على الأقل",
	"Phone":             "رقم الجوال يجب أن يبدأ بـ 05 ويتكون من 10 أرقام",
	"City":              "يرجى إدخال المدينة",
	"District":          "يرجى إدخال الحي",
	"Address":           "يرجى إدخال العنوان التفصيلي",
	"MaterialType":      "يرجى اختيار نوع الخامة",
	"ApproxMeters":      "عدد الأمتار غير صالح",
	"PreferredDatetime": "صيغة الموعد غير صالحة",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("saudi_phone", func(fl validator.FieldLevel) bool {
		return SaudiPhoneRE.MatchString(fl.Field().String())
	})
	v.RegisterValidation("material_type", func(fl validator.FieldLevel) bool {
		return models.IsValidMaterialType(fl.Field().String())
	})
	v.RegisterValidation("decimal_shape", func(fl validator.FieldLevel) bool {
		return decimalShapeRE.MatchString(fl.Field().String())
	})
	v.RegisterValidation("datetime_local", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02T15:04", fl.Field().String())
		return err == nil
	})
	return v
}

func ValidateCheckout(f CheckoutForm) Errors {
	return collect(validate.Struct(f))
}

func ValidateVisitRequest(f VisitRequestForm) Errors {
	return collect(validate.Struct(f))
}

// collect maps validator failures to field-scoped Arabic messages, keeping
// struct declaration order so First() is deterministic.
func collect(err error) Errors {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{{Field: "", Message: "بيانات غير صالحة"}}
	}
	var out Errors
	for _, fe := range verrs {
		msg, ok := messages[fe.StructField()]
		if !ok {
			msg = "بيانات غير صالحة"
		}
		out = append(out, FieldError{Field: fe.StructField(), Message: msg})
	}
	return out
}
