package campus

import "time"

// DefaultRating is applied to testimonials created without a rating.
const DefaultRating = 5

// Program is an academic offering shown on the programs page.
type Program struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Category    string `json:"category"`
	Featured    bool   `json:"featured"`
	Icon        string `json:"icon"`
	Image       string `json:"image"`
	Color       string `json:"color"`
}

// News is an article. PublishedAt is assigned by the repository on create
// and never changes afterwards.
type News struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Summary     string    `json:"summary"`
	Category    string    `json:"category"`
	Featured    bool      `json:"featured"`
	Image       string    `json:"image"`
	PublishedAt time.Time `json:"publishedAt"`
}

// Event is a dated happening. Time is free-form display text ("10:00 AM").
type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	Featured    bool      `json:"featured"`
	Image       *string   `json:"image"`
}

// SocialLinks are the optional profile links of a management member.
type SocialLinks struct {
	LinkedIn *string `json:"linkedin,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Twitter  *string `json:"twitter,omitempty"`
}

// IsZero reports whether no link is set.
func (s *SocialLinks) IsZero() bool {
	return s == nil || (s.LinkedIn == nil && s.Email == nil && s.Twitter == nil)
}

// ManagementMember is a member of the college leadership.
type ManagementMember struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Position    string       `json:"position"`
	Bio         string       `json:"bio"`
	Image       string       `json:"image"`
	Email       *string      `json:"email"`
	LinkedIn    *string      `json:"linkedin"`
	SocialLinks *SocialLinks `json:"socialLinks"`
}

// Contact is a message submitted through the contact form.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Setting is a site-wide key/value pair. Key is unique.
type Setting struct {
	ID    int64  `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Testimonial struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Company  string `json:"company"`
	Content  string `json:"content"`
	Image    string `json:"image"`
	Rating   int    `json:"rating"`
	Featured bool   `json:"featured"`
}

type Achievement struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Year        *int   `json:"year"`
	Featured    bool   `json:"featured"`
}

type Facility struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Featured    bool   `json:"featured"`
}

// Alumnus is a graduate profile. The collection is called alumni.
type Alumnus struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Position       string `json:"position"`
	Company        string `json:"company"`
	Content        string `json:"content"`
	Image          string `json:"image"`
	GraduationYear *int   `json:"graduationYear"`
	Featured       bool   `json:"featured"`
}

// InstitutionalData is a headline statistic such as student count or
// placement rate. Value is display text and is never interpreted.
type InstitutionalData struct {
	ID          int64     `json:"id"`
	DataType    string    `json:"dataType"`
	Title       string    `json:"title"`
	Value       string    `json:"value"`
	Description *string   `json:"description"`
	Category    string    `json:"category"`
	LastUpdated time.Time `json:"lastUpdated"`
}
