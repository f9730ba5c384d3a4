package validation

import (
	"testing"

	"github.com/qimma-sa/kitchens-api/models"
)

func validCheckoutForm() CheckoutForm {
	return CheckoutForm{
		FullName: "محمد العتيبي",
		Phone:    "0512345678",
		City:     "الرياض",
		District: "النرجس",
		Address:  "شارع الملك فهد، مبنى 12",
	}
}

func validVisitForm() VisitRequestForm {
	return VisitRequestForm{
		FullName:     "محمد العتيبي",
		Phone:        "512345678",
		City:         "جدة",
		District:     "الروضة",
		Address:      "حي الروضة، شارع صاري",
		MaterialType: models.MaterialAluminum,
	}
}

func TestValidateCheckout_ValidForm(t *testing.T) {
	if errs := ValidateCheckout(validCheckoutForm()); errs != nil {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidateCheckout_ShortName(t *testing.T) {
	form := validCheckoutForm()
	form.FullName = "اب"

	errs := ValidateCheckout(form)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	if errs[0].Field != "FullName" {
		t.Errorf("expected FullName error, got %s", errs[0].Field)
	}
	if errs[0].Message != "الاسم يجب أن يكون 3 أحرف على الأقل" {
		t.Errorf("unexpected message %q", errs[0].Message)
	}
}

func TestSaudiPhone(t *testing.T) {
	valid := []string{"0512345678", "512345678", "0599999999"}
	invalid := []string{"", "0412345678", "05123", "05123456789", "966512345678", "05x2345678"}

	for _, phone := range valid {
		form := validCheckoutForm()
		form.Phone = phone
		if errs := ValidateCheckout(form); errs != nil {
			t.Errorf("phone %q: expected valid, got %v", phone, errs)
		}
	}
	for _, phone := range invalid {
		form := validCheckoutForm()
		form.Phone = phone
		errs := ValidateCheckout(form)
		if len(errs) != 1 || errs[0].Field != "Phone" {
			t.Errorf("phone %q: expected a Phone error, got %v", phone, errs)
		}
	}
}

func TestValidateCheckout_FirstFollowsDeclarationOrder(t *testing.T) {
	form := validCheckoutForm()
	form.FullName = ""
	form.Phone = "123"
	form.Address = ""

	errs := ValidateCheckout(form)
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d", len(errs))
	}
	if got := errs.First(); got != "الاسم يجب أن يكون 3 أحرف على الأقل" {
		t.Errorf("expected the name message first, got %q", got)
	}
}

func TestValidateCheckout_NotesOptional(t *testing.T) {
	form := validCheckoutForm()
	form.Notes = ""
	if errs := ValidateCheckout(form); errs != nil {
		t.Errorf("expected empty notes to pass, got %v", errs)
	}
}

func TestValidateVisitRequest_ValidForm(t *testing.T) {
	if errs := ValidateVisitRequest(validVisitForm()); errs != nil {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidateVisitRequest_MaterialType(t *testing.T) {
	for _, m := range models.MaterialTypes {
		form := validVisitForm()
		form.MaterialType = m
		if errs := ValidateVisitRequest(form); errs != nil {
			t.Errorf("material %q: expected valid, got %v", m, errs)
		}
	}

	form := validVisitForm()
	form.MaterialType = "زجاج"
	errs := ValidateVisitRequest(form)
	if len(errs) != 1 || errs[0].Field != "MaterialType" {
		t.Fatalf("expected a MaterialType error, got %v", errs)
	}
	if errs[0].Message != "يرجى اختيار نوع الخامة" {
		t.Errorf("unexpected message %q", errs[0].Message)
	}
}

func TestValidateVisitRequest_ApproxMeters(t *testing.T) {
	form := validVisitForm()
	form.ApproxMeters = "12.5"
	if errs := ValidateVisitRequest(form); errs != nil {
		t.Errorf("expected 12.5 to pass, got %v", errs)
	}

	form.ApproxMeters = ""
	if errs := ValidateVisitRequest(form); errs != nil {
		t.Errorf("expected empty meters to pass, got %v", errs)
	}

	form.ApproxMeters = "ثلاثة"
	errs := ValidateVisitRequest(form)
	if len(errs) != 1 || errs[0].Field != "ApproxMeters" {
		t.Errorf("expected an ApproxMeters error, got %v", errs)
	}
}

func TestValidateVisitRequest_PreferredDatetime(t *testing.T) {
	form := validVisitForm()
	form.PreferredDatetime = "2026-09-01T14:30"
	if errs := ValidateVisitRequest(form); errs != nil {
		t.Errorf("expected datetime-local value to pass, got %v", errs)
	}

	form.PreferredDatetime = "2026-09-01"
	errs := ValidateVisitRequest(form)
	if len(errs) != 1 || errs[0].Field != "PreferredDatetime" {
		t.Errorf("expected a PreferredDatetime error, got %v", errs)
	}
}

func TestErrors_ErrorUsesFirstMessage(t *testing.T) {
	errs := Errors{
		{Field: "Phone", Message: "رقم الجوال يجب أن يبدأ بـ 05 ويتكون من 10 أرقام"},
		{Field: "City", Message: "يرجى إدخال المدينة"},
	}
	if errs.Error() != errs[0].Message {
		t.Errorf("expected Error() to surface the first message, got %q", errs.Error())
	}
	if Errors(nil).First() != "" {
		t.Error("expected empty First() for nil errors")
	}
}
