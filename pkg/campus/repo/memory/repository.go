package memory

import (
	"cmp"
	"context"
	"sync"
	"time"

	"github.com/tendant/campus-content/pkg/campus"
)

// Repository implements campus.Repository using in-memory storage
type Repository struct {
	mu  sync.RWMutex
	now campus.Clock

	programs     *table[campus.Program]
	news         *table[campus.News]
	events       *table[campus.Event]
	management   *table[campus.ManagementMember]
	contacts     *table[campus.Contact]
	testimonials *table[campus.Testimonial]
	achievements *table[campus.Achievement]
	facilities   *table[campus.Facility]
	alumni       *table[campus.Alumnus]
	institution  *table[campus.InstitutionalData]

	settings      map[string]*campus.Setting
	lastSettingID int64
}

// Option configures a Repository.
type Option func(*Repository)

// WithClock replaces time.Now as the source of server-set timestamps and of
// the upcoming-events cutoff.
func WithClock(clock campus.Clock) Option {
	return func(r *Repository) {
		if clock != nil {
			r.now = clock
		}
	}
}

// New creates a new, empty in-memory repository
func New(opts ...Option) *Repository {
	r := &Repository{
		now:          time.Now,
		programs:     newTable[campus.Program](nil),
		news:         newTable[campus.News](nil),
		events:       newTable(cloneEvent),
		management:   newTable(cloneMember),
		contacts:     newTable[campus.Contact](nil),
		testimonials: newTable[campus.Testimonial](nil),
		achievements: newTable(cloneAchievement),
		facilities:   newTable[campus.Facility](nil),
		alumni:       newTable(cloneAlumnus),
		institution:  newTable(cloneInstitutionalData),
		settings:     make(map[string]*campus.Setting),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ campus.Repository = (*Repository)(nil)

func (r *Repository) stamp() time.Time {
	return r.now().UTC().Truncate(time.Microsecond)
}

func (r *Repository) Ping(ctx context.Context) error { return nil }

func (r *Repository) Close() error { return nil }

// Program operations

func (r *Repository) ListPrograms(ctx context.Context) ([]*campus.Program, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.programs.list(nil, programOrder), nil
}

func (r *Repository) ListFeaturedPrograms(ctx context.Context) ([]*campus.Program, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.programs.list(func(p *campus.Program) bool { return p.Featured }, programOrder), nil
}

func (r *Repository) GetProgram(ctx context.Context, id int64) (*campus.Program, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.programs.get(id)
	if !ok {
		return nil, campus.ErrNotFound
	}
	return p, nil
}

func (r *Repository) CreateProgram(ctx context.Context, p *campus.Program) (*campus.Program, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.programs.insert(p, func(p *campus.Program, id int64) { p.ID = id }), nil
}

func (r *Repository) UpdateProgram(ctx context.Context, id int64, patch campus.ProgramPatch) (*campus.Program, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.programs.update(id, patch.Apply)
	if !ok {
		return nil, campus.ErrNotFound
	}
	return p, nil
}

func (r *Repository) DeleteProgram(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.programs.remove(id), nil
}

// News operations

func (r *Repository) ListNews(ctx context.Context) ([]*campus.News, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.news.list(nil, newsOrder), nil
}

func (r *Repository) ListFeaturedNews(ctx context.Context) ([]*campus.News, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.news.list(func(n *campus.News) bool { return n.Featured }, newsOrder), nil
}

func (r *Repository) GetNews(ctx context.Context, id int64) (*campus.News, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.news.get(id)
	if !ok {
		return nil, campus.ErrNotFound
	}
	return n, nil
}

func (r *Repository) CreateNews(ctx context.Context, n *campus.News) (*campus.News, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	publishedAt := r.stamp()
	return r.news.insert(n, func(n *campus.News, id int64) {
		n.ID = id
		n.PublishedAt = publishedAt
	}), nil
}

func (r *Repository) UpdateNews(ctx context.Context, id int64, patch campus.NewsPatch) (*campus.News, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.news.update(id, patch.Apply)
	if !ok {
		return nil, campus.ErrNotFound
	}
	return n, nil
}

func (r *Repository) DeleteNews(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.news.remove(id), nil
}

// Event operations

func (r *Repository) ListEvents(ctx context.Context) ([]*campus.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.events.list(nil, eventOrder), nil
}

func (r *Repository) ListFeaturedEvents(ctx context.Context) ([]*campus.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.events.list(func(e *campus.Event) bool { return e.Featured }, eventOrder), nil
}

func (r *Repository) ListUpcomingEvents(ctx context.Context) ([]*campus.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	now := r.now()
	return r.events.list(func(e *campus.Event) bool { return !e.Date.Before(now) }, upcomingOrder), nil
}

func (r *Repository) GetEvent(ctx context.Context, id int64) (*campus.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.events.get(id)
	if !ok {
		return nil, campus.ErrNotFound
	}
	return e, nil
}

func (r *Repository) CreateEvent(ctx context.Context, e *campus.Event) (*campus.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events.insert(e, func(e *campus.Event, id int64) {
		e.ID = id
		e.Date = e.Date.UTC().Truncate(time.Microsecond)
	}), nil
}

// Management operations

func (r *Repository) ListManagement(ctx context.Context) ([]*campus.ManagementMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.management.list(nil, func(a, b *campus.ManagementMember) int {
		return cmp.Compare(a.ID, b.ID)
	}), nil
}

func (r *Repository) GetManagementMember(ctx context.Context, id int64) (*campus.ManagementMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.management.get(id)
	if !ok {
		return nil, campus.ErrNotFound
	}
	return m, nil
}

func (r *Repository) CreateManagementMember(ctx context.Context, m *campus.ManagementMember) (*campus.ManagementMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.management.insert(m, func(m *campus.ManagementMember, id int64) { m.ID = id }), nil
}

// Contact operations

func (r *Repository) ListContacts(ctx context.Context) ([]*campus.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.contacts.list(nil, func(a, b *campus.Contact) int {
		return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
	}), nil
}

func (r *Repository) GetContact(ctx context.Context, id int64) (*campus.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.contacts.get(id)
	if !ok {
		return nil, campus.ErrNotFound
	}
	return c, nil
}

func (r *Repository) CreateContact(ctx context.Context, c *campus.Contact) (*campus.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	createdAt := r.stamp()
	return r.contacts.insert(c, func(c *campus.Contact, id int64) {
		c.ID = id
		c.CreatedAt = createdAt
	}), nil
}

// Setting operations

func (r *Repository) GetSetting(ctx context.Context, key string) (*campus.Setting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.settings[key]
	if !ok {
		return nil, campus.ErrNotFound
	}
	out := *s
	return &out, nil
}

func (r *Repository) SetSetting(ctx context.Context, key, value string) (*campus.Setting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.settings[key]
	if !ok {
		r.lastSettingID++
		s = &campus.Setting{ID: r.lastSettingID, Key: key}
		r.settings[key] = s
	}
	s.Value = value
	out := *s
	return &out, nil
}

// Testimonial operations

func (r *Repository) ListTestimonials(ctx context.Context) ([]*campus.Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.testimonials.list(nil, testimonialOrder), nil
}

func (r *Repository) ListFeaturedTestimonials(ctx context.Context) ([]*campus.Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.testimonials.list(func(t *campus.Testimonial) bool { return t.Featured }, testimonialOrder), nil
}

func (r *Repository) GetTestimonial(ctx context.Context, id int64) (*campus.Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.testimonials.get(id)
	if !ok {
		return nil, campus.ErrNotFound
	}
	return t, nil
}

func (r *Repository) CreateTestimonial(ctx context.Context, t *campus.Testimonial) (*campus.Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.testimonials.insert(t, func(t *campus.Testimonial, id int64) {
		t.ID = id
		if t.Rating == 0 {
			t.Rating = campus.DefaultRating
		}
	}), nil
}

// Achievement operations

func (r *Repository) ListAchievements(ctx context.Context) ([]*campus.Achievement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.achievements.list(nil, achievementOrder), nil
}

func (r *Repository) ListFeaturedAchievements(ctx context.Context) ([]*campus.Achievement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.achievements.list(func(a *campus.Achievement) bool { return a.Featured }, achievementOrder), nil
}

func (r *Repository) GetAchievement(ctx context.Context, id int64) (*campus.Achievement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.achievements.get(id)
	if !ok {
		return nil, campus.ErrNotFound
	}
	return a, nil
}

func (r *Repository) CreateAchievement(ctx context.Context, a *campus.Achievement) (*campus.Achievement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.achievements.insert(a, func(a *campus.Achievement, id int64) { a.ID = id }), nil
}

// Facility operations

func (r *Repository) ListFacilities(ctx context.Context) ([]*campus.Facility, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.facilities.list(nil, facilityOrder), nil
}

func (r *Repository) ListFeaturedFacilities(ctx context.Context) ([]*campus.Facility, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.facilities.list(func(f *campus.Facility) bool { return f.Featured }, facilityOrder), nil
}

func (r *Repository) GetFacility(ctx context.Context, id int64) (*campus.Facility, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.facilities.get(id)
	if !ok {
		return nil, campus.ErrNotFound
	}
	return f, nil
}

func (r *Repository) CreateFacility(ctx context.Context, f *campus.Facility) (*campus.Facility, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.facilities.insert(f, func(f *campus.Facility, id int64) { f.ID = id }), nil
}

// Alumni operations

func (r *Repository) ListAlumni(ctx context.Context) ([]*campus.Alumnus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.alumni.list(nil, alumnusOrder), nil
}

func (r *Repository) ListFeaturedAlumni(ctx context.Context) ([]*campus.Alumnus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.alumni.list(func(a *campus.Alumnus) bool { return a.Featured }, alumnusOrder), nil
}

func (r *Repository) GetAlumnus(ctx context.Context, id int64) (*campus.Alumnus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.alumni.get(id)
	if !ok {
		return nil, campus.ErrNotFound
	}
	return a, nil
}

func (r *Repository) CreateAlumnus(ctx context.Context, a *campus.Alumnus) (*campus.Alumnus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.alumni.insert(a, func(a *campus.Alumnus, id int64) { a.ID = id }), nil
}

// Institutional data operations

func (r *Repository) ListInstitutionalData(ctx context.Context) ([]*campus.InstitutionalData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.institution.list(nil, institutionalOrder), nil
}

func (r *Repository) ListInstitutionalDataByCategory(ctx context.Context, category string) ([]*campus.InstitutionalData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.institution.list(func(d *campus.InstitutionalData) bool {
		return d.Category == category
	}, institutionalOrder), nil
}

func (r *Repository) GetInstitutionalData(ctx context.Context, id int64) (*campus.InstitutionalData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.institution.get(id)
	if !ok {
		return nil, campus.ErrNotFound
	}
	return d, nil
}

func (r *Repository) CreateInstitutionalData(ctx context.Context, d *campus.InstitutionalData) (*campus.InstitutionalData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lastUpdated := r.stamp()
	return r.institution.insert(d, func(d *campus.InstitutionalData, id int64) {
		d.ID = id
		d.LastUpdated = lastUpdated
	}), nil
}
