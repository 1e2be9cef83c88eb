package profile

import (
	"reflect"

	"github.com/heartmarshall/coach-admin/internal/controller"
	"github.com/heartmarshall/coach-admin/internal/domain"
	"github.com/heartmarshall/coach-admin/internal/schema"
)

// Form is the edit state of one profile page.
type Form struct {
	UserID int64
	Draft  schema.Values

	profile *domain.ClientProfile
	exists  bool
	initial schema.Values
	ctrl    *controller.Controller[domain.ClientProfile]
}

func newForm(userID int64, p *domain.ClientProfile, draft schema.Values, ctrl *controller.Controller[domain.ClientProfile]) *Form {
	return &Form{
		UserID:  userID,
		Draft:   draft,
		profile: p,
		exists:  p != nil,
		initial: draft.Clone(),
		ctrl:    ctrl,
	}
}

// Exists reports update mode.
func (f *Form) Exists() bool { return f.exists }

// Profile returns the stored profile, or nil in create mode.
func (f *Form) Profile() *domain.ClientProfile { return f.profile }

// Schema returns the form schema.
func (f *Form) Schema() *schema.Schema { return f.ctrl.Schema() }

// Dirty reports whether the draft differs from what the form was opened with.
func (f *Form) Dirty() bool { return !reflect.DeepEqual(f.Draft, f.initial) }

// Set replaces one draft value.
func (f *Form) Set(name string, v any) {
	f.Draft = f.Draft.Clone()
	f.Draft[name] = v
}

// Toggle checks or unchecks option in a checklist field. Picking "none"
// clears the other options, and picking any other option drops "none".
func (f *Form) Toggle(name, option string, on bool) bool {
	d, ok := f.ctrl.Schema().Toggle(f.Draft, name, option, on)
	if ok {
		f.Draft = d
	}
	return ok
}

// Close abandons in-flight requests of the form.
func (f *Form) Close() { f.ctrl.Close() }

func (f *Form) saved(p domain.ClientProfile) {
	f.profile = &p
	f.exists = true
	f.initial = f.Draft.Clone()
}
