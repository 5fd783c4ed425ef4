package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"neoflix/internal/apperr"
	"neoflix/internal/models"
	"neoflix/internal/paging"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// report json names so messages match the request body
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

var errorTemplates = map[string]string{
	"required": "%s is required",
	"email":    "%s must be a valid email address",
	"min":      "%s must be at least %s",
	"max":      "%s must be at most %s",
}

// validateStruct returns a validation error naming every failing field.
func validateStruct(s any) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperr.Validation(err.Error())
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		template, ok := errorTemplates[fe.Tag()]
		switch {
		case !ok:
			messages = append(messages, fmt.Sprintf("%s is invalid", fe.Field()))
		case fe.Param() != "":
			messages = append(messages, fmt.Sprintf(template, fe.Field(), fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf(template, fe.Field()))
		}
	}
	return apperr.Validation(strings.Join(messages, "; "))
}

// bind decodes a JSON body into out and validates it.
func bind(c *fiber.Ctx, out any) error {
	if err := json.Unmarshal(c.Body(), out); err != nil {
		return apperr.Validation("Invalid request body")
	}
	return validateStruct(out)
}

// parseRating accepts 5, "5", {"rating": 5} and {"rating": "5"}.
func parseRating(body []byte) (int, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return 0, apperr.Validation("Rating is required")
	}

	if body[0] == '{' {
		var wrapper struct {
			Rating json.RawMessage `json:"rating"`
		}
		if err := json.Unmarshal(body, &wrapper); err != nil || len(wrapper.Rating) == 0 {
			return 0, apperr.Validation("Rating is required")
		}
		body = bytes.TrimSpace(wrapper.Rating)
	}

	raw := string(body)
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Validation("Rating must be an integer")
	}

	req := models.RatingRequest{Rating: value}
	if err := validateStruct(&req); err != nil {
		return 0, err
	}
	return req.Rating, nil
}

// pageParams parses list parameters against the endpoint's sort whitelist.
func pageParams(c *fiber.Ctx, sorts paging.SortSet) paging.Params {
	return paging.Parse(c.Query, sorts)
}
