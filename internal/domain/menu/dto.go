package menu

import (
	"github.com/mealroll/console-backend-go/internal/pkg/validator"
)

type CreateMenuRequest struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

func (r *CreateMenuRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Price) {
		errs = append(errs, validator.ValidationError{
			Field:   "price",
			Message: "price is required",
		})
	} else if !validator.IsValidPrice(r.Price) {
		errs = append(errs, validator.ValidationError{
			Field:   "price",
			Message: "price must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateMenuRequest struct {
	ID    int     `json:"-"`
	Name  *string `json:"name,omitempty"`
	Price *string `json:"price,omitempty"`
}

func (r *UpdateMenuRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Price != nil && !validator.IsValidPrice(*r.Price) {
		errs = append(errs, validator.ValidationError{
			Field:   "price",
			Message: "price must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
