// Package persist provides production integrations for formstatex:
// snapshot persistence and transition publishing.
// Implements the interfaces using stdlib where possible.
package persist

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/comalice/formstatex"
)

// Snapshot is the serializable capture of a form's state at a point in time.
// Validator functions are not serializable; Restore takes them separately.
type Snapshot struct {
	FormID    string            `json:"formID" yaml:"formID"`
	Values    formstatex.Values `json:"values" yaml:"values"`
	Errors    map[string]bool   `json:"errors" yaml:"errors"`
	Invalid   bool              `json:"invalid" yaml:"invalid"`
	Dirty     bool              `json:"dirty" yaml:"dirty"`
	Touched   bool              `json:"touched" yaml:"touched"`
	Timestamp time.Time         `json:"timestamp" yaml:"timestamp"`
}

// Persister saves and loads form snapshots.
type Persister interface {
	Save(ctx context.Context, snapshot Snapshot) error
	Load(ctx context.Context, formID string) (Snapshot, error)
}

// NewSnapshot captures the current state of f. When formID is empty a random
// UUID is assigned. The snapshot holds copies of the value and error maps.
func NewSnapshot(formID string, f *formstatex.Form) Snapshot {
	if formID == "" {
		formID = uuid.NewString()
	}

	values := make(formstatex.Values, len(f.Values))
	for k, v := range f.Values {
		values[k] = v
	}
	errs := make(map[string]bool, len(f.Errors))
	for k, v := range f.Errors {
		errs[k] = v
	}

	return Snapshot{
		FormID:    formID,
		Values:    values,
		Errors:    errs,
		Invalid:   f.Invalid,
		Dirty:     f.Dirty,
		Touched:   f.Touched,
		Timestamp: time.Now(),
	}
}

// Restore rebuilds a live form from a snapshot. The caller supplies the
// validator map (nil means none); errors are recomputed at construction, so
// persisted error flags are discarded rather than trusted.
func Restore(s Snapshot, fns formstatex.BoolValidators) (*formstatex.Form, error) {
	values := make(formstatex.Values, len(s.Values))
	for k, v := range s.Values {
		values[k] = v
	}
	if fns == nil {
		fns = formstatex.BoolValidators{}
	}
	return formstatex.New(values, fns, s.Dirty, s.Touched)
}
