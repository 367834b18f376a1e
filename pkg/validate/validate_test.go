package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/bistro/pkg/validate"
)

type menuItemInput struct {
	Name     string  `json:"name"     validate:"required"`
	Recipe   string  `json:"recipe"   validate:"required,min=10"`
	Category string  `json:"category" validate:"required,in=salad,pizza,soup,dessert,drinks"`
	Price    float64 `json:"price"    validate:"required,gt=0"`
	Image    string  `json:"image"    validate:"nullable,url"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(menuItemInput{
		Name:     "Roast Duck Breast",
		Recipe:   "Roasted duck breast with gratin potato.",
		Category: "salad",
		Price:    14.5,
		Image:    "", // nullable — allowed to be empty
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(menuItemInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["name"]; !ok {
		t.Error("expected name to be required")
	}
	if _, ok := errs["price"]; !ok {
		t.Error("expected price to be required")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestInRule(t *testing.T) {
	errs := validate.Struct(menuItemInput{
		Name:     "Mystery Dish",
		Recipe:   "A dish of unknown provenance.",
		Category: "mystery",
		Price:    5,
	})
	if _, ok := errs["category"]; !ok {
		t.Error("expected category to be rejected")
	}
}

func TestGtRule(t *testing.T) {
	errs := validate.Struct(menuItemInput{
		Name:     "Free Soup",
		Recipe:   "Water with good intentions.",
		Category: "soup",
		Price:    -1,
	})
	if _, ok := errs["price"]; !ok {
		t.Error("expected negative price to be rejected")
	}
}

func TestURLRule(t *testing.T) {
	errs := validate.Struct(menuItemInput{
		Name:     "Tarte Tatin",
		Recipe:   "Caramelised apple tart, served warm.",
		Category: "dessert",
		Price:    8,
		Image:    "not a url",
	})
	if _, ok := errs["image"]; !ok {
		t.Error("expected invalid image url to be rejected")
	}
}
