package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/errors"
)

// MaxBodyBytes caps request bodies
const MaxBodyBytes = 1 << 20

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decode reads a JSON body into dst and validates it. An empty body leaves
// dst at its zero value.
func (h *Handler) decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	if err := dec.Decode(dst); err != nil && err != io.EOF {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed JSON body")
	}

	if err := h.validate.Struct(dst); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request")
		}
		vb := errors.NewValidationBuilder()
		for _, fe := range ve {
			vb.Field(fieldPath(fe), validationMessage(fe))
		}
		return vb.Build()
	}

	return nil
}

// fieldPath drops the struct name from the namespace: filters.count
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation: %s", fe.Tag())
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"code", code,
			"error", err)
	}

	body := ErrorBody{Code: code.String(), Message: errors.GetMessage(err)}
	if fields, ok := errors.GetMeta(err)["validation_errors"]; ok {
		body.Details = map[string]any{"validation_errors": fields}
	}

	writeJSON(w, status, ErrorResponse{Error: body})
}
