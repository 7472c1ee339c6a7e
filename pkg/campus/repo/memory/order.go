package memory

import (
	"cmp"
	"time"

	"github.com/tendant/campus-content/pkg/campus"
)

// Ids grow with insertion, so id descending is newest first.

func programOrder(a, b *campus.Program) int         { return cmp.Compare(b.ID, a.ID) }
func testimonialOrder(a, b *campus.Testimonial) int { return cmp.Compare(b.ID, a.ID) }
func achievementOrder(a, b *campus.Achievement) int { return cmp.Compare(b.ID, a.ID) }
func facilityOrder(a, b *campus.Facility) int       { return cmp.Compare(b.ID, a.ID) }
func alumnusOrder(a, b *campus.Alumnus) int         { return cmp.Compare(b.ID, a.ID) }

func newsOrder(a, b *campus.News) int {
	return newestFirst(a.PublishedAt, b.PublishedAt, a.ID, b.ID)
}

func eventOrder(a, b *campus.Event) int {
	return newestFirst(a.Date, b.Date, a.ID, b.ID)
}

func upcomingOrder(a, b *campus.Event) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func institutionalOrder(a, b *campus.InstitutionalData) int {
	return newestFirst(a.LastUpdated, b.LastUpdated, a.ID, b.ID)
}

func newestFirst(ta, tb time.Time, ida, idb int64) int {
	if c := tb.Compare(ta); c != 0 {
		return c
	}
	return cmp.Compare(idb, ida)
}

func cloneEvent(e *campus.Event) *campus.Event {
	c := *e
	c.Image = cloneString(e.Image)
	return &c
}

func cloneMember(m *campus.ManagementMember) *campus.ManagementMember {
	c := *m
	c.Email = cloneString(m.Email)
	c.LinkedIn = cloneString(m.LinkedIn)
	if m.SocialLinks != nil {
		c.SocialLinks = &campus.SocialLinks{
			LinkedIn: cloneString(m.SocialLinks.LinkedIn),
			Email:    cloneString(m.SocialLinks.Email),
			Twitter:  cloneString(m.SocialLinks.Twitter),
		}
	}
	return &c
}

func cloneAchievement(a *campus.Achievement) *campus.Achievement {
	c := *a
	c.Year = cloneInt(a.Year)
	return &c
}

func cloneAlumnus(a *campus.Alumnus) *campus.Alumnus {
	c := *a
	c.GraduationYear = cloneInt(a.GraduationYear)
	return &c
}

func cloneInstitutionalData(d *campus.InstitutionalData) *campus.InstitutionalData {
	c := *d
	c.Description = cloneString(d.Description)
	return &c
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	s := *p
	return &s
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	n := *p
	return &n
}
