package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/samber/lo"
)

// TagOTPEmail is the tag for addresses eligible for OTP delivery.
const TagOTPEmail = "otp_email"

const localPart = `^[\w.+-]+@`

// ErrTranslatorNotFound indicates the requested translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

// V10Validator implements Validator using go-playground/validator v10.
type V10Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// V10ValidationError is a field-to-message map returned when validation fails.
//
// Keys are field names in snake_case.
type V10ValidationError map[string]string

// Error implements the error interface.
func (vs V10ValidationError) Error() string {
	if len(vs) == 0 {
		return "validation error"
	}

	b, err := json.Marshal(vs)
	if err != nil {
		return fmt.Sprintf("validation error (failed to marshal: %v)", err)
	}
	return string(b)
}

// Values returns the field error map.
func (vs V10ValidationError) Values() map[string]string {
	return vs
}

type options struct {
	emailDomain string
}

// Option customizes a V10Validator.
type Option func(*options)

// WithEmailDomain restricts the otp_email tag to addresses whose domain is
// exactly suffix with any leading dot removed: ".dso.org.sg" accepts
// "user@dso.org.sg" and rejects "user@mail.dso.org.sg".
func WithEmailDomain(suffix string) Option {
	return func(o *options) {
		o.emailDomain = strings.TrimPrefix(strings.TrimSpace(suffix), ".")
	}
}

// NewV10Validator constructs a V10Validator with English translations and custom rules.
func NewV10Validator(opts ...Option) (*V10Validator, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	if err := registerOTPEmail(validate, enTrans, o.emailDomain); err != nil {
		return nil, err
	}

	return &V10Validator{
		validate:   validate,
		translator: enTrans,
	}, nil
}

// Validate validates a struct and returns a V10ValidationError on failure.
func (v *V10Validator) Validate(data any) error {
	if err := v.validate.Struct(data); err != nil {
		var validateErrs validator.ValidationErrors
		if !errors.As(err, &validateErrs) {
			return err
		}

		errV10 := make(V10ValidationError)
		for _, fe := range validateErrs {
			errV10[lo.SnakeCase(fe.Field())] = fe.Translate(v.translator)
		}

		return errV10
	}

	return nil
}

func registerOTPEmail(validate *validator.Validate, enTrans ut.Translator, domain string) error {
	pattern := localPart + `[\w-]+(\.[\w-]+)*$`
	message := "{0} must be a valid email address"
	if domain != "" {
		pattern = localPart + regexp.QuoteMeta(domain) + "$"
		message = "{0} must be an address at " + domain
	}
	re := regexp.MustCompile(pattern)

	if err := validate.RegisterValidation(TagOTPEmail, func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		return ok && re.MatchString(s)
	}); err != nil {
		return err
	}

	return validate.RegisterTranslation(TagOTPEmail, enTrans,
		func(ut ut.Translator) error {
			return ut.Add(TagOTPEmail, message, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, err := ut.T(fe.Tag(), fe.Field())
			if err != nil {
				slog.Warn("warning: error translating", "field_error", fe.Error(), "error", err)
				return fe.Error()
			}

			return t
		},
	)
}
