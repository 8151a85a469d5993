package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "privatemarkets/internal/errors"
	"privatemarkets/internal/validation"
)

// maxBodyBytes bounds the request bodies the validator will buffer.
const maxBodyBytes = 1 << 20

// Validate returns a Gin middleware that runs the validation engine over the
// JSON body merged with the route's path parameters. Path parameters win on
// collision. A rejected request is aborted with every violated rule's
// message.
//
// On success the merged record is written back as the request body, with
// numeric strings in number fields rewritten as JSON numbers, so handlers
// can bind typed request structs.
func Validate(rules ...validation.Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		input, hasBody, err := readBody(c)
		if err != nil {
			_ = c.Error(apperrors.Wrap(apperrors.ErrInvalidFormat, err))
			c.Abort()
			return
		}

		for _, p := range c.Params {
			input[p.Key] = p.Value
		}

		if errs := validation.Validate(rules, input); len(errs) > 0 {
			_ = c.Error(apperrors.WithErrors(apperrors.ErrValidation, errs))
			c.Abort()
			return
		}

		if hasBody {
			normalizeNumbers(rules, input)
			raw, err := json.Marshal(input)
			if err != nil {
				_ = c.Error(apperrors.Wrap(apperrors.ErrInvalidFormat, err))
				c.Abort()
				return
			}
			c.Request.Body = io.NopCloser(bytes.NewReader(raw))
			c.Request.ContentLength = int64(len(raw))
		}

		c.Next()
	}
}

// readBody decodes the request body into an object. An empty body yields an
// empty object; anything other than a single JSON object is an error.
func readBody(c *gin.Context) (map[string]interface{}, bool, error) {
	input := map[string]interface{}{}
	if c.Request.Body == nil {
		return input, false, nil
	}

	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes+1))
	if err != nil {
		return nil, false, err
	}
	if len(raw) > maxBodyBytes {
		return nil, false, errors.New("request body too large")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return input, false, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var decoded interface{}
	if err := dec.Decode(&decoded); err != nil {
		return nil, false, err
	}
	if dec.More() {
		return nil, false, errors.New("unexpected data after JSON body")
	}

	obj, ok := decoded.(map[string]interface{})
	if !ok {
		return nil, false, errors.New("request body must be a JSON object")
	}
	for k, v := range obj {
		input[k] = v
	}
	return input, true, nil
}

func normalizeNumbers(rules []validation.Rule, input map[string]interface{}) {
	for _, rule := range rules {
		if rule.Type != validation.TypeNumber {
			continue
		}
		s, ok := input[rule.Field].(string)
		if !ok {
			continue
		}
		if f, ok := validation.ToNumber(s); ok {
			input[rule.Field] = json.Number(strconv.FormatFloat(f, 'f', -1, 64))
		}
	}
}
