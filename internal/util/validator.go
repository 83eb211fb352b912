package util

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// Romanian mobile/landline numbers: 10 digits starting with 0.
var roPhoneRe = regexp.MustCompile(`^0[0-9]{9}$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report errors under the wire name clients actually sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("ro_phone", func(fl validator.FieldLevel) bool {
		return roPhoneRe.MatchString(fl.Field().String())
	})
	return v
}

// ValidateStruct runs the validator tags on req and converts failures into a
// FormError with one message per field, so handlers can surface them inline.
func ValidateStruct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fields[strings.ToLower(fe.Field())] = fieldMessage(fe)
	}
	return NewFormError("Datele trimise nu sunt valide.", fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Câmp obligatoriu."
	case "email":
		return "Adresă de email invalidă."
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Minim %s caractere.", fe.Param())
		}
		return fmt.Sprintf("Minim %s.", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Maxim %s caractere.", fe.Param())
		}
		return fmt.Sprintf("Maxim %s.", fe.Param())
	case "oneof":
		return fmt.Sprintf("Valoare invalidă, permis: %s.", fe.Param())
	case "url":
		return "URL invalid."
	case "uuid":
		return "Identificator invalid."
	case "ro_phone":
		return "Număr de telefon invalid (10 cifre, începe cu 0)."
	}
	return "Valoare invalidă."
}
