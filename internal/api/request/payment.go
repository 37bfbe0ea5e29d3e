package request

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ProcessCycleRequest scripts the operator for one payment cycle. Tenders are
// keyed by customer id and consumed in order; customers without a script get
// the fallback.
type ProcessCycleRequest struct {
	Tenders  map[string][]string `json:"tenders"`
	Fallback string              `json:"fallback" binding:"omitempty,oneof=cancel exact"`
}

func (r ProcessCycleRequest) Script() (map[int][]string, error) {
	script := make(map[int][]string, len(r.Tenders))
	for key, tenders := range r.Tenders {
		id, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, errors.Errorf("tender key %q is not a customer id", key)
		}
		script[id] = tenders
	}
	return script, nil
}
