// Package forms binds and validates the storefront's HTML forms.
//
// Field rules live in `binding` struct tags and are enforced by gin's
// go-playground validator. Failures are reported per form field name so the
// originating page can show them next to the inputs.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FormField is the key used for errors that do not belong to one input.
const FormField = "_form"

// Errors maps a form field name to its first validation message.
type Errors map[string]string

// Add records msg for field unless the field already has a message.
func (e Errors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

func (e Errors) Any() bool { return len(e) > 0 }

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(formTagName)
		if err := v.RegisterValidation("maxbytes", maxBytes); err != nil {
			panic(err)
		}
	}
}

// maxBytes limits the encoded length of a string, unlike max which counts
// runes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// formTagName reports validation errors under the `form` tag name.
func formTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// Bind decodes the request body into form and runs its field rules.
func Bind(c *gin.Context, form any) Errors {
	errs := Errors{}
	err := c.ShouldBindWith(form, binding.Form)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs.Add(FormField, "The submitted form could not be read.")
		return errs
	}
	for _, fe := range verrs {
		errs.Add(fe.Field(), message(fe))
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Invalid email address."
	case "min":
		return fmt.Sprintf("Field must be at least %s characters long.", fe.Param())
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
	case "maxbytes":
		return fmt.Sprintf("Field cannot be longer than %s bytes.", fe.Param())
	case "eqfield":
		return "Passwords must match."
	case "number":
		return "Field must contain digits only."
	case "alphanum":
		return "Field must contain letters and digits only."
	default:
		return "Invalid value."
	}
}
