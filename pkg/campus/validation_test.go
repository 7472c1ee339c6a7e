package campus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }
func num(n int) *int       { return &n }
func yes(b bool) *bool     { return &b }

func validTestimonial() CreateTestimonialRequest {
	return CreateTestimonialRequest{
		Name:     str("Asha Rao"),
		Position: str("Site Engineer"),
		Company:  str("Metro Works"),
		Content:  str("Hands-on labs made the difference."),
		Image:    str("https://example.com/asha.jpg"),
	}
}

func TestValidate_TestimonialRating(t *testing.T) {
	tests := []struct {
		name    string
		rating  *int
		wantErr bool
	}{
		{"omitted", nil, false},
		{"lower bound", num(1), false},
		{"upper bound", num(5), false},
		{"zero", num(0), true},
		{"six", num(6), true},
		{"seven", num(7), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validTestimonial()
			req.Rating = tt.rating

			err := Validate(req)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.True(t, verr.Has("rating"))
			assert.Len(t, verr.Fields, 1)
		})
	}
}

func TestValidate_ReportsEveryMissingField(t *testing.T) {
	err := Validate(CreateProgramRequest{Title: str("Welding")})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	for _, field := range []string{"description", "duration", "category", "icon", "image", "color"} {
		assert.True(t, verr.Has(field), "expected failure for %s", field)
	}
	assert.False(t, verr.Has("title"))
	assert.False(t, verr.Has("featured"))
}

func TestValidate_BlankStringIsMissing(t *testing.T) {
	req := CreateContactRequest{
		Name:    str("   "),
		Email:   str("student@example.com"),
		Subject: str("Admissions"),
		Message: str("When does the term start?"),
	}

	err := Validate(req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "name", verr.Fields[0].Field)
	assert.Equal(t, "name is required", verr.Fields[0].Message)
}

func TestValidate_ContactEmail(t *testing.T) {
	req := CreateContactRequest{
		Name:    str("Ravi"),
		Email:   str("not-an-email"),
		Subject: str("Hi"),
		Message: str("Hello"),
	}

	err := Validate(req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("email"))
}

func TestValidate_NestedSocialLinks(t *testing.T) {
	req := CreateManagementRequest{
		Name:        str("Dr. Meera Iyer"),
		Position:    str("Principal"),
		Bio:         str("Twenty years in technical education."),
		Image:       str("https://example.com/meera.jpg"),
		SocialLinks: &SocialLinks{Email: str("bad address")},
	}

	err := Validate(req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("socialLinks.email"))

	req.SocialLinks = &SocialLinks{Email: str("meera@example.edu")}
	assert.NoError(t, Validate(req))
}

func TestValidate_EventDate(t *testing.T) {
	req := CreateEventRequest{
		Title:       str("Open House"),
		Description: str("Tour the workshops."),
		Date:        str("next tuesday"),
		Time:        str("10:00 AM"),
		Location:    str("Main Campus"),
		Category:    str("Admissions"),
	}

	var verr *ValidationError
	require.ErrorAs(t, Validate(req), &verr)
	assert.True(t, verr.Has("date"))

	req.Date = str("2025-01-10")
	require.NoError(t, Validate(req))

	ev, err := req.Event()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), ev.Date)
	assert.Nil(t, ev.Image)
	assert.False(t, ev.Featured)
}

func TestValidate_AchievementYear(t *testing.T) {
	req := CreateAchievementRequest{
		Title:       str("NBA Accreditation"),
		Description: str("All programs accredited."),
		Icon:        str("award"),
		Year:        num(1850),
	}

	var verr *ValidationError
	require.ErrorAs(t, Validate(req), &verr)
	assert.True(t, verr.Has("year"))

	req.Year = num(2023)
	assert.NoError(t, Validate(req))
}

func TestValidate_PatchAllowsOmittedFields(t *testing.T) {
	assert.NoError(t, Validate(ProgramPatch{}))
	assert.NoError(t, Validate(ProgramPatch{Featured: yes(false)}))

	var verr *ValidationError
	require.ErrorAs(t, Validate(ProgramPatch{Title: str("")}), &verr)
	assert.True(t, verr.Has("title"))
}

func TestProgramPatch_ResolveNulls(t *testing.T) {
	t.Run("null featured resets to default", func(t *testing.T) {
		patch := ProgramPatch{}
		require.NoError(t, patch.ResolveNulls([]string{"featured"}))
		require.NotNil(t, patch.Featured)
		assert.False(t, *patch.Featured)
	})

	t.Run("null required field is rejected", func(t *testing.T) {
		patch := ProgramPatch{}
		err := patch.ResolveNulls([]string{"title", "color"})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []FieldError{
			{Field: "color", Message: "color cannot be null"},
			{Field: "title", Message: "title cannot be null"},
		}, verr.Fields)
	})

	t.Run("unknown members are ignored", func(t *testing.T) {
		patch := NewsPatch{}
		assert.NoError(t, patch.ResolveNulls([]string{"publishedAt", "id"}))
	})
}

func TestRequestDefaults(t *testing.T) {
	tm := validTestimonial().Testimonial()
	assert.Equal(t, DefaultRating, tm.Rating)
	assert.False(t, tm.Featured)

	m := CreateManagementRequest{
		Name:        str(" Dr. Arjun "),
		Position:    str("Dean"),
		Bio:         str("Bio"),
		Image:       str("img"),
		Email:       str(""),
		SocialLinks: &SocialLinks{Twitter: str("  ")},
	}.Member()
	assert.Equal(t, "Dr. Arjun", m.Name)
	assert.Nil(t, m.Email)
	assert.Nil(t, m.LinkedIn)
	assert.Nil(t, m.SocialLinks)
}

func TestProgramPatch_Apply(t *testing.T) {
	prog := &Program{ID: 3, Title: "Welding", Description: "Arc and MIG", Featured: true}

	ProgramPatch{Title: str("Advanced Welding"), Featured: yes(false)}.Apply(prog)

	assert.Equal(t, int64(3), prog.ID)
	assert.Equal(t, "Advanced Welding", prog.Title)
	assert.Equal(t, "Arc and MIG", prog.Description)
	assert.False(t, prog.Featured)
}
