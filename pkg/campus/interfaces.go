package campus

import (
	"context"
	"time"
)

// Clock returns the current time. Repositories use it for server-set
// timestamps and for the upcoming-events cutoff.
type Clock func() time.Time

// Repository defines persistence for every content kind.
//
// List methods return newest first unless noted. Get methods return
// ErrNotFound (possibly wrapped) for a missing id or key. Backend failures are
// reported as *StorageError.
type Repository interface {
	// Programs
	ListPrograms(ctx context.Context) ([]*Program, error)
	ListFeaturedPrograms(ctx context.Context) ([]*Program, error)
	GetProgram(ctx context.Context, id int64) (*Program, error)
	CreateProgram(ctx context.Context, p *Program) (*Program, error)
	UpdateProgram(ctx context.Context, id int64, patch ProgramPatch) (*Program, error)
	DeleteProgram(ctx context.Context, id int64) (bool, error)

	// News, ordered by publishedAt descending
	ListNews(ctx context.Context) ([]*News, error)
	ListFeaturedNews(ctx context.Context) ([]*News, error)
	GetNews(ctx context.Context, id int64) (*News, error)
	CreateNews(ctx context.Context, n *News) (*News, error)
	UpdateNews(ctx context.Context, id int64, patch NewsPatch) (*News, error)
	DeleteNews(ctx context.Context, id int64) (bool, error)

	// Events, ordered by event date descending. ListUpcomingEvents returns
	// events dated at or after now, soonest first.
	ListEvents(ctx context.Context) ([]*Event, error)
	ListFeaturedEvents(ctx context.Context) ([]*Event, error)
	ListUpcomingEvents(ctx context.Context) ([]*Event, error)
	GetEvent(ctx context.Context, id int64) (*Event, error)
	CreateEvent(ctx context.Context, e *Event) (*Event, error)

	// Management, in insertion order
	ListManagement(ctx context.Context) ([]*ManagementMember, error)
	GetManagementMember(ctx context.Context, id int64) (*ManagementMember, error)
	CreateManagementMember(ctx context.Context, m *ManagementMember) (*ManagementMember, error)

	// Contacts
	ListContacts(ctx context.Context) ([]*Contact, error)
	GetContact(ctx context.Context, id int64) (*Contact, error)
	CreateContact(ctx context.Context, c *Contact) (*Contact, error)

	// Settings
	GetSetting(ctx context.Context, key string) (*Setting, error)
	SetSetting(ctx context.Context, key, value string) (*Setting, error)

	// Testimonials
	ListTestimonials(ctx context.Context) ([]*Testimonial, error)
	ListFeaturedTestimonials(ctx context.Context) ([]*Testimonial, error)
	GetTestimonial(ctx context.Context, id int64) (*Testimonial, error)
	CreateTestimonial(ctx context.Context, t *Testimonial) (*Testimonial, error)

	// Achievements
	ListAchievements(ctx context.Context) ([]*Achievement, error)
	ListFeaturedAchievements(ctx context.Context) ([]*Achievement, error)
	GetAchievement(ctx context.Context, id int64) (*Achievement, error)
	CreateAchievement(ctx context.Context, a *Achievement) (*Achievement, error)

	// Facilities
	ListFacilities(ctx context.Context) ([]*Facility, error)
	ListFeaturedFacilities(ctx context.Context) ([]*Facility, error)
	GetFacility(ctx context.Context, id int64) (*Facility, error)
	CreateFacility(ctx context.Context, f *Facility) (*Facility, error)

	// Alumni
	ListAlumni(ctx context.Context) ([]*Alumnus, error)
	ListFeaturedAlumni(ctx context.Context) ([]*Alumnus, error)
	GetAlumnus(ctx context.Context, id int64) (*Alumnus, error)
	CreateAlumnus(ctx context.Context, a *Alumnus) (*Alumnus, error)

	// Institutional data, ordered by lastUpdated descending
	ListInstitutionalData(ctx context.Context) ([]*InstitutionalData, error)
	ListInstitutionalDataByCategory(ctx context.Context, category string) ([]*InstitutionalData, error)
	GetInstitutionalData(ctx context.Context, id int64) (*InstitutionalData, error)
	CreateInstitutionalData(ctx context.Context, d *InstitutionalData) (*InstitutionalData, error)

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases backend resources.
	Close() error
}
