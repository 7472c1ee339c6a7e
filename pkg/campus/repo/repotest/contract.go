// Package repotest holds the behaviour every campus.Repository
// implementation must share. Implementations call Run from their own tests.
package repotest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/campus-content/pkg/campus"
)

// Factory returns an empty repository that reads time from clock.
type Factory func(t *testing.T, clock campus.Clock) campus.Repository

// Clock is a manually advanced clock.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Epoch is the starting time of the clock handed to factories.
var Epoch = time.Date(2025, 1, 8, 9, 0, 0, 0, time.UTC)

// Run executes the shared repository contract.
func Run(t *testing.T, factory Factory) {
	tests := []struct {
		name string
		fn   func(t *testing.T, repo campus.Repository, clock *Clock)
	}{
		{"ProgramRoundTrip", testProgramRoundTrip},
		{"FeaturedSubset", testFeaturedSubset},
		{"DeleteTwice", testDeleteTwice},
		{"PartialUpdate", testPartialUpdate},
		{"UpdateMissing", testUpdateMissing},
		{"NewsTimestamps", testNewsTimestamps},
		{"UpcomingEvents", testUpcomingEvents},
		{"EventOrder", testEventOrder},
		{"ManagementOrder", testManagementOrder},
		{"SettingUpsert", testSettingUpsert},
		{"ContactCreatedAt", testContactCreatedAt},
		{"TestimonialDefaults", testTestimonialDefaults},
		{"OptionalFields", testOptionalFields},
		{"InstitutionalDataByCategory", testInstitutionalDataByCategory},
		{"GetMissing", testGetMissing},
		{"EmptyLists", testEmptyLists},
		{"ConcurrentCreates", testConcurrentCreates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := NewClock(Epoch)
			repo := factory(t, clock.Now)
			tt.fn(t, repo, clock)
		})
	}
}

func program(title string, featured bool) *campus.Program {
	return &campus.Program{
		Title:       title,
		Description: title + " description",
		Duration:    "3 Years",
		Category:    "Engineering",
		Featured:    featured,
		Icon:        "wrench",
		Image:       "https://example.com/" + title + ".jpg",
		Color:       "blue",
	}
}

func news(title string, featured bool) *campus.News {
	return &campus.News{
		Title:    title,
		Content:  title + " content",
		Summary:  title + " summary",
		Category: "Campus",
		Featured: featured,
		Image:    "https://example.com/news.jpg",
	}
}

func event(title string, date time.Time) *campus.Event {
	return &campus.Event{
		Title:       title,
		Description: title + " description",
		Date:        date,
		Time:        "10:00 AM",
		Location:    "Main Hall",
		Category:    "Academic",
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testProgramRoundTrip(t *testing.T, repo campus.Repository, _ *Clock) {
	ctx := context.Background()
	in := program("Mechanical", true)

	created, err := repo.CreateProgram(ctx, in)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := repo.GetProgram(ctx, created.ID)
	require.NoError(t, err)

	want := *in
	want.ID = created.ID
	assert.Equal(t, &want, got)
	assert.Equal(t, created, got)
}

func testFeaturedSubset(t *testing.T, repo campus.Repository, _ *Clock) {
	ctx := context.Background()
	for i := 0; i < 6; i++ {
		_, err := repo.CreateProgram(ctx, program(fmt.Sprintf("p%d", i), i%2 == 0))
		require.NoError(t, err)
		_, err = repo.CreateFacility(ctx, &campus.Facility{
			Name: fmt.Sprintf("f%d", i), Description: "d", Image: "i", Category: "Labs", Featured: i%3 == 0,
		})
		require.NoError(t, err)
	}

	all, err := repo.ListPrograms(ctx)
	require.NoError(t, err)
	featured, err := repo.ListFeaturedPrograms(ctx)
	require.NoError(t, err)

	var want []*campus.Program
	for _, p := range all {
		if p.Featured {
			want = append(want, p)
		}
	}
	assert.Equal(t, want, featured)
	assert.Len(t, featured, 3)

	// newest first
	require.Len(t, all, 6)
	for i := 1; i < len(all); i++ {
		assert.Greater(t, all[i-1].ID, all[i].ID)
	}

	facilities, err := repo.ListFeaturedFacilities(ctx)
	require.NoError(t, err)
	require.Len(t, facilities, 2)
	for _, f := range facilities {
		assert.True(t, f.Featured)
	}
}

func testDeleteTwice(t *testing.T, repo campus.Repository, _ *Clock) {
	ctx := context.Background()
	p, err := repo.CreateProgram(ctx, program("Civil", false))
	require.NoError(t, err)
	n, err := repo.CreateNews(ctx, news("Convocation", false))
	require.NoError(t, err)

	ok, err := repo.DeleteProgram(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.DeleteProgram(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.GetProgram(ctx, p.ID)
	assert.ErrorIs(t, err, campus.ErrNotFound)

	ok, err = repo.DeleteNews(ctx, n.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.DeleteNews(ctx, n.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func testPartialUpdate(t *testing.T, repo campus.Repository, _ *Clock) {
	ctx := context.Background()
	p, err := repo.CreateProgram(ctx, program("Electrical", true))
	require.NoError(t, err)

	title := "Electrical & Electronics"
	off := false
	updated, err := repo.UpdateProgram(ctx, p.ID, campus.ProgramPatch{Title: &title, Featured: &off})
	require.NoError(t, err)

	want := *p
	want.Title = title
	want.Featured = false
	assert.Equal(t, &want, updated)

	got, err := repo.GetProgram(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, &want, got)

	// an empty patch changes nothing
	same, err := repo.UpdateProgram(ctx, p.ID, campus.ProgramPatch{})
	require.NoError(t, err)
	assert.Equal(t, &want, same)
}

func testUpdateMissing(t *testing.T, repo campus.Repository, _ *Clock) {
	ctx := context.Background()
	title := "x"

	_, err := repo.UpdateProgram(ctx, 4040, campus.ProgramPatch{Title: &title})
	assert.ErrorIs(t, err, campus.ErrNotFound)

	_, err = repo.UpdateNews(ctx, 4040, campus.NewsPatch{Title: &title})
	assert.ErrorIs(t, err, campus.ErrNotFound)
}

func testNewsTimestamps(t *testing.T, repo campus.Repository, clock *Clock) {
	ctx := context.Background()

	first, err := repo.CreateNews(ctx, news("Placement drive", true))
	require.NoError(t, err)
	assert.True(t, first.PublishedAt.Equal(Epoch), "publishedAt %s", first.PublishedAt)

	clock.Advance(time.Hour)
	second, err := repo.CreateNews(ctx, news("Sports day", false))
	require.NoError(t, err)

	list, err := repo.ListNews(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	featured, err := repo.ListFeaturedNews(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, first.ID, featured[0].ID)

	clock.Advance(time.Hour)
	summary := "Updated summary"
	updated, err := repo.UpdateNews(ctx, first.ID, campus.NewsPatch{Summary: &summary})
	require.NoError(t, err)
	assert.Equal(t, summary, updated.Summary)
	assert.Equal(t, first.Title, updated.Title)
	assert.True(t, updated.PublishedAt.Equal(first.PublishedAt))
}

func testUpcomingEvents(t *testing.T, repo campus.Repository, clock *Clock) {
	ctx := context.Background()
	clock.Set(day(2025, 1, 8))

	jan10, err := repo.CreateEvent(ctx, event("Tech fest", day(2025, 1, 10)))
	require.NoError(t, err)
	_, err = repo.CreateEvent(ctx, event("Orientation", day(2025, 1, 5)))
	require.NoError(t, err)
	feb1, err := repo.CreateEvent(ctx, event("Job fair", day(2025, 2, 1)))
	require.NoError(t, err)

	upcoming, err := repo.ListUpcomingEvents(ctx)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, jan10.ID, upcoming[0].ID)
	assert.Equal(t, feb1.ID, upcoming[1].ID)
	assert.True(t, upcoming[0].Date.Equal(day(2025, 1, 10)))

	// an event exactly at now counts as upcoming
	today, err := repo.CreateEvent(ctx, event("Today", day(2025, 1, 8)))
	require.NoError(t, err)
	upcoming, err = repo.ListUpcomingEvents(ctx)
	require.NoError(t, err)
	require.Len(t, upcoming, 3)
	assert.Equal(t, today.ID, upcoming[0].ID)
}

func testEventOrder(t *testing.T, repo campus.Repository, _ *Clock) {
	ctx := context.Background()
	mid, err := repo.CreateEvent(ctx, event("mid", day(2025, 3, 1)))
	require.NoError(t, err)
	late, err := repo.CreateEvent(ctx, event("late", day(2025, 6, 1)))
	require.NoError(t, err)
	early := event("early", day(2024, 12, 1))
	early.Featured = true
	earlyCreated, err := repo.CreateEvent(ctx, early)
	require.NoError(t, err)

	list, err := repo.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int64{late.ID, mid.ID, earlyCreated.ID}, []int64{list[0].ID, list[1].ID, list[2].ID})

	featured, err := repo.ListFeaturedEvents(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, earlyCreated.ID, featured[0].ID)
}

func testManagementOrder(t *testing.T, repo campus.Repository, _ *Clock) {
	ctx := context.Background()
	var ids []int64
	for _, name := range []string{"Principal", "Vice Principal", "Registrar"} {
		m, err := repo.CreateManagementMember(ctx, &campus.ManagementMember{
			Name: name, Position: name, Bio: "bio", Image: "img",
		})
		require.NoError(t, err)
		ids = append(ids, m.ID)
	}

	list, err := repo.ListManagement(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, m := range list {
		assert.Equal(t, ids[i], m.ID)
	}
}

func testSettingUpsert(t *testing.T, repo campus.Repository, _ *Clock) {
	ctx := context.Background()

	first, err := repo.SetSetting(ctx, "k", "1")
	require.NoError(t, err)
	second, err := repo.SetSetting(ctx, "k", "2")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	got, err := repo.GetSetting(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "k", got.Key)
	assert.Equal(t, "2", got.Value)

	_, err = repo.GetSetting(ctx, "missing")
	assert.ErrorIs(t, err, campus.ErrNotFound)
}

func testContactCreatedAt(t *testing.T, repo campus.Repository, clock *Clock) {
	ctx := context.Background()
	in := &campus.Contact{Name: "Kiran", Email: "kiran@example.com", Subject: "Fees", Message: "Fee structure?"}

	first, err := repo.CreateContact(ctx, in)
	require.NoError(t, err)
	assert.True(t, first.CreatedAt.Equal(Epoch))

	clock.Advance(time.Minute)
	second, err := repo.CreateContact(ctx, in)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	got, err := repo.GetContact(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fee structure?", got.Message)

	list, err := repo.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
}

func testTestimonialDefaults(t *testing.T, repo campus.Repository, _ *Clock) {
	ctx := context.Background()
	req := campus.CreateTestimonialRequest{}
	name, pos, company, content, image := "Anita", "Engineer", "L&T", "Great faculty", "img"
	req.Name, req.Position, req.Company, req.Content, req.Image = &name, &pos, &company, &content, &image

	created, err := repo.CreateTestimonial(ctx, req.Testimonial())
	require.NoError(t, err)
	assert.Equal(t, campus.DefaultRating, created.Rating)
	assert.False(t, created.Featured)

	got, err := repo.GetTestimonial(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func testOptionalFields(t *testing.T, repo campus.Repository, _ *Clock) {
	ctx := context.Background()

	ev, err := repo.CreateEvent(ctx, event("No image", day(2025, 5, 1)))
	require.NoError(t, err)
	got, err := repo.GetEvent(ctx, ev.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Image)

	email := "dean@example.edu"
	twitter := "@dean"
	m, err := repo.CreateManagementMember(ctx, &campus.ManagementMember{
		Name: "Dean", Position: "Dean", Bio: "bio", Image: "img",
		Email:       &email,
		SocialLinks: &campus.SocialLinks{Twitter: &twitter},
	})
	require.NoError(t, err)
	gotM, err := repo.GetManagementMember(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, gotM.Email)
	assert.Equal(t, email, *gotM.Email)
	assert.Nil(t, gotM.LinkedIn)
	require.NotNil(t, gotM.SocialLinks)
	assert.Equal(t, &twitter, gotM.SocialLinks.Twitter)
	assert.Nil(t, gotM.SocialLinks.LinkedIn)

	bare, err := repo.CreateManagementMember(ctx, &campus.ManagementMember{
		Name: "Registrar", Position: "Registrar", Bio: "bio", Image: "img",
	})
	require.NoError(t, err)
	gotBare, err := repo.GetManagementMember(ctx, bare.ID)
	require.NoError(t, err)
	assert.Nil(t, gotBare.SocialLinks)
	assert.Nil(t, gotBare.Email)

	year := 2019
	a, err := repo.CreateAchievement(ctx, &campus.Achievement{Title: "Award", Description: "d", Icon: "trophy", Year: &year})
	require.NoError(t, err)
	gotA, err := repo.GetAchievement(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, &year, gotA.Year)

	al, err := repo.CreateAlumnus(ctx, &campus.Alumnus{Name: "Vikram", Position: "CTO", Company: "Acme", Content: "c", Image: "i"})
	require.NoError(t, err)
	gotAl, err := repo.GetAlumnus(ctx, al.ID)
	require.NoError(t, err)
	assert.Nil(t, gotAl.GraduationYear)
}

func testInstitutionalDataByCategory(t *testing.T, repo campus.Repository, clock *Clock) {
	ctx := context.Background()
	create := func(title, category string) *campus.InstitutionalData {
		d, err := repo.CreateInstitutionalData(ctx, &campus.InstitutionalData{
			DataType: "statistic", Title: title, Value: "95%", Category: category,
		})
		require.NoError(t, err)
		clock.Advance(time.Second)
		return d
	}

	placement := create("Placement rate", "placements")
	students := create("Students", "enrollment")
	recruiters := create("Recruiters", "placements")
	assert.Nil(t, placement.Description)
	assert.True(t, placement.LastUpdated.Equal(Epoch))

	all, err := repo.ListInstitutionalData(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, recruiters.ID, all[0].ID)
	assert.Equal(t, students.ID, all[1].ID)

	byCat, err := repo.ListInstitutionalDataByCategory(ctx, "placements")
	require.NoError(t, err)
	require.Len(t, byCat, 2)
	assert.Equal(t, recruiters.ID, byCat[0].ID)
	assert.Equal(t, placement.ID, byCat[1].ID)

	none, err := repo.ListInstitutionalDataByCategory(ctx, "unknown")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	got, err := repo.GetInstitutionalData(ctx, students.ID)
	require.NoError(t, err)
	assert.Equal(t, "Students", got.Title)
}

func testGetMissing(t *testing.T, repo campus.Repository, _ *Clock) {
	ctx := context.Background()
	const id = 987654

	checks := map[string]func() error{
		"program":       func() error { _, err := repo.GetProgram(ctx, id); return err },
		"news":          func() error { _, err := repo.GetNews(ctx, id); return err },
		"event":         func() error { _, err := repo.GetEvent(ctx, id); return err },
		"management":    func() error { _, err := repo.GetManagementMember(ctx, id); return err },
		"contact":       func() error { _, err := repo.GetContact(ctx, id); return err },
		"testimonial":   func() error { _, err := repo.GetTestimonial(ctx, id); return err },
		"achievement":   func() error { _, err := repo.GetAchievement(ctx, id); return err },
		"facility":      func() error { _, err := repo.GetFacility(ctx, id); return err },
		"alumnus":       func() error { _, err := repo.GetAlumnus(ctx, id); return err },
		"institutional": func() error { _, err := repo.GetInstitutionalData(ctx, id); return err },
	}
	for name, check := range checks {
		assert.ErrorIs(t, check(), campus.ErrNotFound, name)
	}
}

func testEmptyLists(t *testing.T, repo campus.Repository, _ *Clock) {
	ctx := context.Background()

	programs, err := repo.ListPrograms(ctx)
	require.NoError(t, err)
	assert.NotNil(t, programs)
	assert.Empty(t, programs)

	upcoming, err := repo.ListUpcomingEvents(ctx)
	require.NoError(t, err)
	assert.NotNil(t, upcoming)

	alumni, err := repo.ListFeaturedAlumni(ctx)
	require.NoError(t, err)
	assert.NotNil(t, alumni)

	testimonials, err := repo.ListTestimonials(ctx)
	require.NoError(t, err)
	assert.NotNil(t, testimonials)

	achievements, err := repo.ListFeaturedAchievements(ctx)
	require.NoError(t, err)
	assert.NotNil(t, achievements)
}

func testConcurrentCreates(t *testing.T, repo campus.Repository, _ *Clock) {
	ctx := context.Background()
	const n = 20

	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a, err := repo.CreateAlumnus(ctx, &campus.Alumnus{
				Name: fmt.Sprintf("a%d", i), Position: "p", Company: "c", Content: "x", Image: "i",
			})
			if assert.NoError(t, err) {
				ids <- a.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
