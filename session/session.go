package session

import (
	"time"

	"github.com/google/uuid"

	"LifeCarePortal/models"
	"LifeCarePortal/role"
)

// Identity is who the session is signed in as.
type Identity struct {
	Email     string    `json:"email,omitempty" bson:"email,omitempty"`
	Role      role.Role `json:"role,omitempty" bson:"role,omitempty"`
	PatientID models.ID `json:"patientId,omitempty" bson:"patientId,omitempty"`
}

// View is the per-page UI state that outlives a single request.
type View struct {
	ListVisible bool      `json:"listVisible,omitempty" bson:"listVisible,omitempty"`
	EditID      models.ID `json:"editId,omitempty" bson:"editId,omitempty"`
	EditMode    bool      `json:"editMode,omitempty" bson:"editMode,omitempty"`
	Tab         string    `json:"tab,omitempty" bson:"tab,omitempty"`
	// Notice and Alert carry one message across a redirect.
	Notice string `json:"notice,omitempty" bson:"notice,omitempty"`
	Alert  string `json:"alert,omitempty" bson:"alert,omitempty"`
}

// Session is the single source of truth for the signed-in identity of
// one browser. It replaces every client-side storage key.
type Session struct {
	ID            string          `json:"id" bson:"_id"`
	Token         string          `json:"token,omitempty" bson:"token,omitempty"`
	Identity      Identity        `json:"identity" bson:"identity"`
	AppointmentID models.ID       `json:"appointmentId,omitempty" bson:"appointmentId,omitempty"`
	Views         map[string]View `json:"views,omitempty" bson:"views,omitempty"`
	CreatedAt     time.Time       `json:"createdAt" bson:"createdAt"`
	ExpiresAt     time.Time       `json:"expiresAt" bson:"expiresAt"`

	changes changeSet
}

// changeSet records which parts a request wrote, so saving can merge
// them into the stored copy instead of replacing it.
type changeSet struct {
	identity    bool
	appointment bool
	allViews    bool
	views       map[string]bool
}

func New(ttl time.Duration) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.NewString(),
		Views:     map[string]View{},
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func (s *Session) Authenticated() bool {
	return s.Token != ""
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

func (s *Session) Touch(ttl time.Duration) {
	s.ExpiresAt = time.Now().UTC().Add(ttl)
}

/*
* Store the issued token
* Derive email, role and patient id from its claims
* An explicit patient id from the login answer wins over the claim
 */
func (s *Session) SignIn(token string, patientID models.ID) {
	s.Token = token
	id, err := ParseIdentity(token)
	if err != nil {
		id = Identity{}
	}
	if patientID != "" {
		id.PatientID = patientID
	}
	s.Identity = id
	s.changes.identity = true
}

func (s *Session) SignOut() {
	s.Token = ""
	s.Identity = Identity{}
	s.AppointmentID = ""
	s.Views = map[string]View{}
	s.changes.identity = true
	s.changes.appointment = true
	s.changes.allViews = true
	s.changes.views = nil
}

// SetPatientID remembers the id of a patient who registered but has
// not logged in yet.
func (s *Session) SetPatientID(id models.ID) {
	s.Identity.PatientID = id
	s.changes.identity = true
}

func (s *Session) SetAppointmentID(id models.ID) {
	s.AppointmentID = id
	s.changes.appointment = true
}

// Dirty reports whether anything besides the expiry changed since the
// session was loaded.
func (s *Session) Dirty() bool {
	c := s.changes
	return c.identity || c.appointment || c.allViews || len(c.views) > 0
}

/*
* Start from the stored copy s
* Take from other only what the request changed
* Keep the later expiry
 */
func (s *Session) Merge(other *Session) *Session {
	out := s.Clone()
	c := other.changes
	if c.identity {
		out.Token = other.Token
		out.Identity = other.Identity
	}
	if c.appointment {
		out.AppointmentID = other.AppointmentID
	}
	if c.allViews {
		out.Views = map[string]View{}
	}
	for page := range c.views {
		out.Views[page] = other.Views[page]
	}
	if other.ExpiresAt.After(out.ExpiresAt) {
		out.ExpiresAt = other.ExpiresAt
	}
	return out
}

// PatientID answers the patient id, recovering it from the token when
// only the token survived.
func (s *Session) PatientID() models.ID {
	if s.Identity.PatientID != "" {
		return s.Identity.PatientID
	}
	if s.Token == "" {
		return ""
	}
	id, err := ParseIdentity(s.Token)
	if err != nil {
		return ""
	}
	return id.PatientID
}

func (s *Session) View(page string) View {
	return s.Views[page]
}

func (s *Session) SetView(page string, v View) {
	if s.Views == nil {
		s.Views = map[string]View{}
	}
	s.Views[page] = v
	if s.changes.views == nil {
		s.changes.views = map[string]bool{}
	}
	s.changes.views[page] = true
}

func (s *Session) Clone() *Session {
	cp := *s
	cp.changes = changeSet{}
	cp.Views = make(map[string]View, len(s.Views))
	for k, v := range s.Views {
		cp.Views[k] = v
	}
	return &cp
}
