package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-seller-sync/models"
)

// Field names accepted by [SyncRequestValidator.Validate].
const (
	FieldSellerID     = "seller_id"
	FieldResource     = "resource"
	FieldIDs          = "ids"
	FieldLastUpdateTs = "last_update_ts"
)

// structFields maps the public field names to the struct fields of
// models.SyncRequest, as StructPartial expects them.
var structFields = map[string]string{
	FieldSellerID:     "SellerID",
	FieldResource:     "Resource",
	FieldIDs:          "IDsInDB",
	FieldLastUpdateTs: "LastUpdateTs",
}

var fieldErrors = map[string]error{
	"SellerID":     ErrInvalidSellerID,
	"Resource":     ErrInvalidResource,
	"IDsInDB":      ErrInvalidIDs,
	"LastUpdateTs": ErrInvalidLastUpdateTs,
}

// SyncRequestValidator validates models.SyncRequest with the struct tags
// declared on the model.
type SyncRequestValidator struct {
	validate *validator.Validate
}

// NewSyncRequestValidator returns a Validator for sync requests.
func NewSyncRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &SyncRequestValidator{validate: v}
}

// Validate checks a models.SyncRequest (value or pointer). With no fields
// every rule applies; otherwise only the named fields are checked.
// The first failing field is reported as its sentinel error.
func (v *SyncRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var req *models.SyncRequest
	switch value := obj.(type) {
	case models.SyncRequest:
		req = &value
	case *models.SyncRequest:
		if value == nil {
			return fmt.Errorf("%w: nil %T", ErrUnsupportedType, obj)
		}
		req = value
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, req)
	} else {
		names := make([]string, 0, len(fields))
		for _, f := range fields {
			name, ok := structFields[f]
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownField, f)
			}
			names = append(names, name)
		}
		err = v.validate.StructPartialCtx(ctx, req, names...)
	}

	return translate(err)
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	first := validationErrors[0]
	// dive failures name the element, e.g. IDsInDB[1]
	field := strings.SplitN(first.StructField(), "[", 2)[0]
	if sentinel, ok := fieldErrors[field]; ok {
		return fmt.Errorf("%w: %s failed on %q", sentinel, first.Namespace(), first.Tag())
	}

	return err
}
