// Package seed loads the default site content into an empty repository.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/tendant/campus-content/pkg/campus"
)

// SiteName is stored under the site_name setting.
const SiteName = "Federal Polytechnic Ede"

// IfEmpty loads the default content when the repository has no programs.
// It reports whether anything was written.
func IfEmpty(ctx context.Context, repo campus.Repository) (bool, error) {
	programs, err := repo.ListPrograms(ctx)
	if err != nil {
		return false, fmt.Errorf("check existing programs: %w", err)
	}
	if len(programs) > 0 {
		return false, nil
	}
	if err := Load(ctx, repo); err != nil {
		return false, err
	}
	return true, nil
}

// Load inserts the default content set. It does not check for existing
// rows; call IfEmpty for an idempotent start-up seed.
func Load(ctx context.Context, repo campus.Repository) error {
	steps := []struct {
		name string
		fn   func(context.Context, campus.Repository) error
	}{
		{"programs", seedPrograms},
		{"events", seedEvents},
		{"management", seedManagement},
		{"testimonials", seedTestimonials},
		{"achievements", seedAchievements},
		{"facilities", seedFacilities},
		{"alumni", seedAlumni},
		{"news", seedNews},
		{"institutional data", seedInstitutionalData},
	}
	for _, s := range steps {
		if err := s.fn(ctx, repo); err != nil {
			return fmt.Errorf("seed %s: %w", s.name, err)
		}
	}
	if _, err := repo.SetSetting(ctx, "site_name", SiteName); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	return nil
}

func seedPrograms(ctx context.Context, repo campus.Repository) error {
	for _, p := range Programs() {
		if _, err := repo.CreateProgram(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func seedEvents(ctx context.Context, repo campus.Repository) error {
	for _, e := range Events() {
		if _, err := repo.CreateEvent(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func seedManagement(ctx context.Context, repo campus.Repository) error {
	for _, m := range Management() {
		if _, err := repo.CreateManagementMember(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func seedTestimonials(ctx context.Context, repo campus.Repository) error {
	for _, t := range Testimonials() {
		if _, err := repo.CreateTestimonial(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func seedAchievements(ctx context.Context, repo campus.Repository) error {
	for _, a := range Achievements() {
		if _, err := repo.CreateAchievement(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func seedFacilities(ctx context.Context, repo campus.Repository) error {
	for _, f := range Facilities() {
		if _, err := repo.CreateFacility(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

func seedAlumni(ctx context.Context, repo campus.Repository) error {
	for _, a := range Alumni() {
		if _, err := repo.CreateAlumnus(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func seedNews(ctx context.Context, repo campus.Repository) error {
	for _, n := range News() {
		if _, err := repo.CreateNews(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

func seedInstitutionalData(ctx context.Context, repo campus.Repository) error {
	for _, d := range InstitutionalData() {
		if _, err := repo.CreateInstitutionalData(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func str(s string) *string { return &s }

func year(y int) *int { return &y }
