package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testReview struct {
	Author  string `json:"author" validate:"required,notblank"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required,notblank"`
}

type testPayment struct {
	Method string `json:"method" validate:"required,oneof=Cash Card"`
}

func newJSONRequest(t *testing.T, body interface{}) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/test", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// Property: missing required fields are rejected
func TestProperty_RequiredFieldValidationWorks(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("missing required fields are rejected", prop.ForAll(
		func(includeAuthor, includeRating, includeComment bool) bool {
			reqMap := make(map[string]interface{})
			if includeAuthor {
				reqMap["author"] = "Hamza"
			}
			if includeRating {
				reqMap["rating"] = 4
			}
			if includeComment {
				reqMap["comment"] = "Stitching is perfect"
			}

			var review testReview
			err := DecodeAndValidate(newJSONRequest(t, reqMap), &review)

			if includeAuthor && includeRating && includeComment {
				return err == nil
			}
			return err != nil
		},
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Property: ratings outside 1..5 are rejected
func TestProperty_RatingRangeValidation(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("rating outside valid range is rejected", prop.ForAll(
		func(rating int) bool {
			var review testReview
			err := DecodeAndValidate(newJSONRequest(t, map[string]interface{}{
				"author":  "Hamza",
				"rating":  rating,
				"comment": "ok",
			}), &review)

			if rating >= 1 && rating <= 5 {
				return err == nil
			}
			return err != nil
		},
		gen.IntRange(-10, 10),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestValidationErrorsUseJSONFieldNames(t *testing.T) {
	var review testReview
	err := DecodeAndValidate(newJSONRequest(t, map[string]interface{}{
		"author":  "   ",
		"rating":  9,
		"comment": "fine",
	}), &review)
	require.Error(t, err)

	formatted := FormatValidationErrors(err)
	require.Len(t, formatted, 2)
	assert.Equal(t, "author", formatted[0].Field)
	assert.Equal(t, "This field must not be blank", formatted[0].Message)
	assert.Equal(t, "rating", formatted[1].Field)
	assert.Equal(t, "Value must be less than or equal to 5", formatted[1].Message)
}

func TestOneOfMessageListsChoices(t *testing.T) {
	var payment testPayment
	err := DecodeAndValidate(newJSONRequest(t, map[string]interface{}{"method": "Crypto"}), &payment)
	require.Error(t, err)

	formatted := FormatValidationErrors(err)
	require.Len(t, formatted, 1)
	assert.Equal(t, "Value must be one of: Cash, Card", formatted[0].Message)
}

func TestDecodeAndValidate_MalformedBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/test", strings.NewReader(`{"author":`))

	var review testReview
	err := DecodeAndValidate(req, &review)
	assert.True(t, errors.Is(err, ErrMalformedBody))

	req = httptest.NewRequest("POST", "/test", strings.NewReader(`{"author":"a","rating":1,"comment":"c","extra":true}`))
	err = DecodeAndValidate(req, &review)
	assert.True(t, errors.Is(err, ErrMalformedBody))
}

func TestDecodeAndValidate_EmptyBodyKeepsEOF(t *testing.T) {
	req := httptest.NewRequest("POST", "/test", io.NopCloser(strings.NewReader("")))
	req.ContentLength = -1

	var review testReview
	err := DecodeAndValidate(req, &review)
	assert.True(t, errors.Is(err, ErrMalformedBody))
	assert.True(t, errors.Is(err, io.EOF))

	req = httptest.NewRequest("POST", "/test", strings.NewReader(`{"author":`))
	err = DecodeAndValidate(req, &review)
	assert.False(t, errors.Is(err, io.EOF))
}

func TestRespondWithDecodeError(t *testing.T) {
	var review testReview
	err := DecodeAndValidate(newJSONRequest(t, map[string]interface{}{"rating": 3}), &review)
	require.Error(t, err)

	w := httptest.NewRecorder()
	RespondWithDecodeError(w, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "validation failed", response.Error.Message)
	assert.Contains(t, response.Error.Details, "validation_errors")

	w = httptest.NewRecorder()
	RespondWithDecodeError(w, ErrMalformedBody)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, ErrMalformedBody.Error(), response.Error.Message)
}
