package rest

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a valid UUID")
	}
	return id, nil
}

// queryParams reads optional query values and collects parse failures so a
// request with several bad parameters reports all of them at once.
type queryParams struct {
	values map[string][]string
	errs   domain.FieldErrors
}

func newQueryParams(r *http.Request) *queryParams {
	return &queryParams{values: r.URL.Query()}
}

func (q *queryParams) raw(name string) string {
	return strings.TrimSpace(first(q.values[name]))
}

func first(v []string) string {
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

// String returns nil when the parameter is absent or blank.
func (q *queryParams) String(name string) *string {
	v := q.raw(name)
	if v == "" {
		return nil
	}
	return &v
}

func (q *queryParams) Int(name string) int {
	v := q.raw(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		q.errs.Add(name, "must be an integer")
		return 0
	}
	return n
}

func (q *queryParams) Bool(name string) bool {
	v := q.raw(name)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		q.errs.Add(name, "must be a boolean")
		return false
	}
	return b
}

func (q *queryParams) UUID(name string) *uuid.UUID {
	v := q.raw(name)
	if v == "" {
		return nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		q.errs.Add(name, "must be a valid UUID")
		return nil
	}
	return &id
}

// Time accepts RFC 3339 timestamps or plain YYYY-MM-DD dates (UTC midnight).
func (q *queryParams) Time(name string) *time.Time {
	v := q.raw(name)
	if v == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t
	}
	if t, err := time.Parse(time.DateOnly, v); err == nil {
		return &t
	}
	q.errs.Add(name, "must be an RFC 3339 timestamp or YYYY-MM-DD date")
	return nil
}

// Page returns limit and offset. Out-of-range values are clamped downstream.
func (q *queryParams) Page() (limit, offset int) {
	return q.Int("limit"), q.Int("offset")
}

func (q *queryParams) Err() error {
	return q.errs.Err()
}

type enum interface {
	~string
	IsValid() bool
}

// queryEnum reads an optional, case-insensitive enum parameter.
func queryEnum[T enum](q *queryParams, name string) *T {
	v := q.raw(name)
	if v == "" {
		return nil
	}
	e := T(strings.ToUpper(v))
	if !e.IsValid() {
		q.errs.Add(name, "unknown value "+strconv.Quote(v))
		return nil
	}
	return &e
}
