package campus

import (
	"strings"
	"time"
)

// CreateProgramRequest is the input for creating a program.
type CreateProgramRequest struct {
	Title       *string `json:"title" validate:"required,notblank"`
	Description *string `json:"description" validate:"required,notblank"`
	Duration    *string `json:"duration" validate:"required,notblank"`
	Category    *string `json:"category" validate:"required,notblank"`
	Featured    *bool   `json:"featured"`
	Icon        *string `json:"icon" validate:"required,notblank"`
	Image       *string `json:"image" validate:"required,notblank"`
	Color       *string `json:"color" validate:"required,notblank"`
}

func (r CreateProgramRequest) Program() *Program {
	return &Program{
		Title:       text(r.Title),
		Description: text(r.Description),
		Duration:    text(r.Duration),
		Category:    text(r.Category),
		Featured:    flag(r.Featured),
		Icon:        text(r.Icon),
		Image:       text(r.Image),
		Color:       text(r.Color),
	}
}

// ProgramPatch is a partial program update. Nil fields are left unchanged.
type ProgramPatch struct {
	Title       *string `json:"title" validate:"omitempty,notblank"`
	Description *string `json:"description" validate:"omitempty,notblank"`
	Duration    *string `json:"duration" validate:"omitempty,notblank"`
	Category    *string `json:"category" validate:"omitempty,notblank"`
	Featured    *bool   `json:"featured"`
	Icon        *string `json:"icon" validate:"omitempty,notblank"`
	Image       *string `json:"image" validate:"omitempty,notblank"`
	Color       *string `json:"color" validate:"omitempty,notblank"`
}

// ResolveNulls handles members that were explicitly null in the request
// body. A null featured resets the flag to its default; any other null is a
// validation failure.
func (p *ProgramPatch) ResolveNulls(nulls []string) error {
	return resolveNulls(p, nulls, &p.Featured)
}

// Apply copies the set fields onto prog.
func (p ProgramPatch) Apply(prog *Program) {
	setText(&prog.Title, p.Title)
	setText(&prog.Description, p.Description)
	setText(&prog.Duration, p.Duration)
	setText(&prog.Category, p.Category)
	setFlag(&prog.Featured, p.Featured)
	setText(&prog.Icon, p.Icon)
	setText(&prog.Image, p.Image)
	setText(&prog.Color, p.Color)
}

// CreateNewsRequest is the input for creating a news article. The publish
// time is assigned by the repository.
type CreateNewsRequest struct {
	Title    *string `json:"title" validate:"required,notblank"`
	Content  *string `json:"content" validate:"required,notblank"`
	Summary  *string `json:"summary" validate:"required,notblank"`
	Category *string `json:"category" validate:"required,notblank"`
	Featured *bool   `json:"featured"`
	Image    *string `json:"image" validate:"required,notblank"`
}

func (r CreateNewsRequest) News() *News {
	return &News{
		Title:    text(r.Title),
		Content:  text(r.Content),
		Summary:  text(r.Summary),
		Category: text(r.Category),
		Featured: flag(r.Featured),
		Image:    text(r.Image),
	}
}

// NewsPatch is a partial news update. PublishedAt cannot be patched.
type NewsPatch struct {
	Title    *string `json:"title" validate:"omitempty,notblank"`
	Content  *string `json:"content" validate:"omitempty,notblank"`
	Summary  *string `json:"summary" validate:"omitempty,notblank"`
	Category *string `json:"category" validate:"omitempty,notblank"`
	Featured *bool   `json:"featured"`
	Image    *string `json:"image" validate:"omitempty,notblank"`
}

func (p *NewsPatch) ResolveNulls(nulls []string) error {
	return resolveNulls(p, nulls, &p.Featured)
}

func (p NewsPatch) Apply(n *News) {
	setText(&n.Title, p.Title)
	setText(&n.Content, p.Content)
	setText(&n.Summary, p.Summary)
	setText(&n.Category, p.Category)
	setFlag(&n.Featured, p.Featured)
	setText(&n.Image, p.Image)
}

// CreateEventRequest is the input for creating an event. Date accepts an
// RFC 3339 timestamp or a plain YYYY-MM-DD date (midnight UTC).
type CreateEventRequest struct {
	Title       *string `json:"title" validate:"required,notblank"`
	Description *string `json:"description" validate:"required,notblank"`
	Date        *string `json:"date" validate:"required,notblank,isodate"`
	Time        *string `json:"time" validate:"required,notblank"`
	Location    *string `json:"location" validate:"required,notblank"`
	Category    *string `json:"category" validate:"required,notblank"`
	Featured    *bool   `json:"featured"`
	Image       *string `json:"image"`
}

func (r CreateEventRequest) Event() (*Event, error) {
	date, err := ParseDate(text(r.Date))
	if err != nil {
		return nil, NewValidationError("date", "date must be an ISO 8601 date")
	}
	return &Event{
		Title:       text(r.Title),
		Description: text(r.Description),
		Date:        date,
		Time:        text(r.Time),
		Location:    text(r.Location),
		Category:    text(r.Category),
		Featured:    flag(r.Featured),
		Image:       optional(r.Image),
	}, nil
}

// CreateManagementRequest is the input for adding a management member.
type CreateManagementRequest struct {
	Name        *string      `json:"name" validate:"required,notblank"`
	Position    *string      `json:"position" validate:"required,notblank"`
	Bio         *string      `json:"bio" validate:"required,notblank"`
	Image       *string      `json:"image" validate:"required,notblank"`
	Email       *string      `json:"email" validate:"omitempty,email"`
	LinkedIn    *string      `json:"linkedin"`
	SocialLinks *SocialLinks `json:"socialLinks"`
}

func (r CreateManagementRequest) Member() *ManagementMember {
	m := &ManagementMember{
		Name:     text(r.Name),
		Position: text(r.Position),
		Bio:      text(r.Bio),
		Image:    text(r.Image),
		Email:    optional(r.Email),
		LinkedIn: optional(r.LinkedIn),
	}
	if r.SocialLinks != nil {
		links := &SocialLinks{
			LinkedIn: optional(r.SocialLinks.LinkedIn),
			Email:    optional(r.SocialLinks.Email),
			Twitter:  optional(r.SocialLinks.Twitter),
		}
		if !links.IsZero() {
			m.SocialLinks = links
		}
	}
	return m
}

// CreateContactRequest is a contact-form submission.
type CreateContactRequest struct {
	Name    *string `json:"name" validate:"required,notblank"`
	Email   *string `json:"email" validate:"required,notblank,email"`
	Subject *string `json:"subject" validate:"required,notblank"`
	Message *string `json:"message" validate:"required,notblank"`
}

func (r CreateContactRequest) Contact() *Contact {
	return &Contact{
		Name:    text(r.Name),
		Email:   text(r.Email),
		Subject: text(r.Subject),
		Message: text(r.Message),
	}
}

// SetSettingRequest upserts a setting. Key may come from the URL instead of
// the body, in which case the caller fills it in before validating.
type SetSettingRequest struct {
	Key   *string `json:"key" validate:"required,notblank"`
	Value *string `json:"value" validate:"required"`
}

type CreateTestimonialRequest struct {
	Name     *string `json:"name" validate:"required,notblank"`
	Position *string `json:"position" validate:"required,notblank"`
	Company  *string `json:"company" validate:"required,notblank"`
	Content  *string `json:"content" validate:"required,notblank"`
	Image    *string `json:"image" validate:"required,notblank"`
	Rating   *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Featured *bool   `json:"featured"`
}

func (r CreateTestimonialRequest) Testimonial() *Testimonial {
	rating := DefaultRating
	if r.Rating != nil {
		rating = *r.Rating
	}
	return &Testimonial{
		Name:     text(r.Name),
		Position: text(r.Position),
		Company:  text(r.Company),
		Content:  text(r.Content),
		Image:    text(r.Image),
		Rating:   rating,
		Featured: flag(r.Featured),
	}
}

type CreateAchievementRequest struct {
	Title       *string `json:"title" validate:"required,notblank"`
	Description *string `json:"description" validate:"required,notblank"`
	Icon        *string `json:"icon" validate:"required,notblank"`
	Year        *int    `json:"year" validate:"omitempty,gte=1900,lte=2100"`
	Featured    *bool   `json:"featured"`
}

func (r CreateAchievementRequest) Achievement() *Achievement {
	return &Achievement{
		Title:       text(r.Title),
		Description: text(r.Description),
		Icon:        text(r.Icon),
		Year:        r.Year,
		Featured:    flag(r.Featured),
	}
}

type CreateFacilityRequest struct {
	Name        *string `json:"name" validate:"required,notblank"`
	Description *string `json:"description" validate:"required,notblank"`
	Image       *string `json:"image" validate:"required,notblank"`
	Category    *string `json:"category" validate:"required,notblank"`
	Featured    *bool   `json:"featured"`
}

func (r CreateFacilityRequest) Facility() *Facility {
	return &Facility{
		Name:        text(r.Name),
		Description: text(r.Description),
		Image:       text(r.Image),
		Category:    text(r.Category),
		Featured:    flag(r.Featured),
	}
}

type CreateAlumnusRequest struct {
	Name           *string `json:"name" validate:"required,notblank"`
	Position       *string `json:"position" validate:"required,notblank"`
	Company        *string `json:"company" validate:"required,notblank"`
	Content        *string `json:"content" validate:"required,notblank"`
	Image          *string `json:"image" validate:"required,notblank"`
	GraduationYear *int    `json:"graduationYear" validate:"omitempty,gte=1900,lte=2100"`
	Featured       *bool   `json:"featured"`
}

func (r CreateAlumnusRequest) Alumnus() *Alumnus {
	return &Alumnus{
		Name:           text(r.Name),
		Position:       text(r.Position),
		Company:        text(r.Company),
		Content:        text(r.Content),
		Image:          text(r.Image),
		GraduationYear: r.GraduationYear,
		Featured:       flag(r.Featured),
	}
}

type CreateInstitutionalDataRequest struct {
	DataType    *string `json:"dataType" validate:"required,notblank"`
	Title       *string `json:"title" validate:"required,notblank"`
	Value       *string `json:"value" validate:"required,notblank"`
	Description *string `json:"description"`
	Category    *string `json:"category" validate:"required,notblank"`
}

func (r CreateInstitutionalDataRequest) InstitutionalData() *InstitutionalData {
	return &InstitutionalData{
		DataType:    text(r.DataType),
		Title:       text(r.Title),
		Value:       text(r.Value),
		Description: optional(r.Description),
		Category:    text(r.Category),
	}
}

// ParseDate accepts RFC 3339 timestamps and YYYY-MM-DD dates.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func text(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

func optional(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}
	return &s
}

func flag(p *bool) bool {
	return p != nil && *p
}

func setText(dst *string, p *string) {
	if p != nil {
		*dst = strings.TrimSpace(*p)
	}
}

func setFlag(dst *bool, p *bool) {
	if p != nil {
		*dst = *p
	}
}
