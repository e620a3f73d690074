package handler

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"github.com/pkordes/travelbook/internal/domain"
)

// validate is shared by all handlers; validator.Validate caches struct
// metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	// Report JSON field names instead of Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// travelRequest is the body of POST /travels and PUT /travels/{id}.
// Pointer fields distinguish "absent" from the zero value.
type travelRequest struct {
	Name        *string      `json:"name" validate:"required,notblank"`
	Budget      *json.Number `json:"budget" validate:"required"`
	IsSharable  *bool        `json:"isSharable" validate:"required"`
	Description *string      `json:"description" validate:"omitnil,notblank"`
	StartedAt   *string      `json:"startedAt" validate:"omitnil,datetime=2006-01-02"`
	EndedAt     *string      `json:"endedAt" validate:"omitnil,datetime=2006-01-02"`
	PlaceID     *int64       `json:"placeId"`
}

// albumRequest is the body of POST /travels/{id}/albums.
type albumRequest struct {
	Title       *string `json:"title" validate:"required,notblank"`
	Description *string `json:"description"`
}

// placeRequest is the body of POST /places.
type placeRequest struct {
	Name *string `json:"name" validate:"required,notblank"`
}

// parseTravelRequest checks the JSON types of the decoded body, then runs the
// struct validations. Every problem found is returned; an empty result means
// the request is valid.
func parseTravelRequest(content map[string]any) (travelRequest, validationErrors) {
	var (
		req  travelRequest
		errs validationErrors
		bad  = map[string]bool{}
	)
	typeErr := func(field, typ string) {
		errs = append(errs, fieldError{Field: field, Message: "this value should be of type " + typ})
		bad[field] = true
	}

	if v, ok := content["name"]; ok && v != nil {
		if s, ok := v.(string); ok {
			req.Name = &s
		} else {
			typeErr("name", "string")
		}
	}
	if v, ok := content["budget"]; ok && v != nil {
		if n, ok := v.(json.Number); ok {
			req.Budget = &n
		} else {
			typeErr("budget", "number")
		}
	}
	if v, ok := content["isSharable"]; ok && v != nil {
		if b, ok := v.(bool); ok {
			req.IsSharable = &b
		} else {
			typeErr("isSharable", "bool")
		}
	}
	if v, ok := content["description"]; ok && v != nil {
		if s, ok := v.(string); ok {
			req.Description = &s
		} else {
			typeErr("description", "string")
		}
	}
	for _, field := range []string{"startedAt", "endedAt"} {
		v, ok := content[field]
		if !ok || v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			typeErr(field, "string")
			continue
		}
		if s == "" {
			continue
		}
		if field == "startedAt" {
			req.StartedAt = &s
		} else {
			req.EndedAt = &s
		}
	}
	if v, ok := content["placeId"]; ok && v != nil {
		n, isNum := v.(json.Number)
		id, err := n.Int64()
		if !isNum || err != nil {
			typeErr("placeId", "integer")
		} else {
			req.PlaceID = &id
		}
	}

	for _, fe := range structErrors(req) {
		if !bad[fe.Field] {
			errs = append(errs, fe)
		}
	}
	return req, errs
}

// input converts a valid travelRequest into the service input.
// It must only be called when parseTravelRequest reported no errors.
func (r travelRequest) input() (domain.TravelInput, error) {
	budget, err := decimal.NewFromString(r.Budget.String())
	if err != nil {
		return domain.TravelInput{}, validationErrors{{Field: "budget", Message: "this value should be of type number"}}
	}
	if msg := budgetProblem(budget); msg != "" {
		return domain.TravelInput{}, validationErrors{{Field: "budget", Message: msg}}
	}
	in := domain.TravelInput{
		Name:        *r.Name,
		Budget:      budget,
		Description: r.Description,
		IsShared:    *r.IsSharable,
	}
	if in.StartedAt, err = parseDate(r.StartedAt); err != nil {
		return domain.TravelInput{}, validationErrors{{Field: "startedAt", Message: dateMessage}}
	}
	if in.EndedAt, err = parseDate(r.EndedAt); err != nil {
		return domain.TravelInput{}, validationErrors{{Field: "endedAt", Message: dateMessage}}
	}
	return in, nil
}

func parseAlbumRequest(content map[string]any) (albumRequest, validationErrors) {
	var (
		req  albumRequest
		errs validationErrors
	)
	if v, ok := content["title"]; ok && v != nil {
		if s, ok := v.(string); ok {
			req.Title = &s
		} else {
			errs = append(errs, fieldError{Field: "title", Message: "this value should be of type string"})
		}
	}
	if v, ok := content["description"]; ok && v != nil {
		if s, ok := v.(string); ok {
			req.Description = &s
		} else {
			errs = append(errs, fieldError{Field: "description", Message: "this value should be of type string"})
		}
	}
	if len(errs) > 0 {
		return req, errs
	}
	return req, structErrors(req)
}

func parsePlaceRequest(content map[string]any) (placeRequest, validationErrors) {
	var req placeRequest
	if v, ok := content["name"]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return req, validationErrors{{Field: "name", Message: "this value should be of type string"}}
		}
		req.Name = &s
	}
	return req, structErrors(req)
}

const dateMessage = "this value is not a valid date, expected YYYY-MM-DD"

// Budgets are stored as NUMERIC(12,2).
const budgetScale = 2

var budgetLimit = decimal.New(1, 12-budgetScale)

// budgetProblem reports why budget cannot be stored, or "" when it can.
func budgetProblem(budget decimal.Decimal) string {
	if budget.Abs().GreaterThanOrEqual(budgetLimit) {
		return "this value should be less than " + budgetLimit.String()
	}
	if !budget.Equal(budget.Round(budgetScale)) {
		return "this value should have at most 2 decimal places"
	}
	return ""
}

// structErrors runs the validator tags on req and translates the failures.
func structErrors(req any) validationErrors {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return validationErrors{{Field: "body", Message: err.Error()}}
	}
	out := make(validationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fieldError{Field: fe.Field(), Message: tagMessage(fe)})
	}
	return out
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this value is required"
	case "notblank":
		return "this value should not be blank"
	case "datetime":
		return dateMessage
	default:
		return "this value is not valid"
	}
}

// parseDate parses an optional YYYY-MM-DD string as a UTC date.
func parseDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(openapi_types.DateFormat, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
