package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tendant/campus-content/pkg/campus"
)

// Management operations

const managementColumns = `id, name, position, bio, image, email, linkedin, social_links`

func scanMember(row rowScanner) (*campus.ManagementMember, error) {
	var m campus.ManagementMember
	var links []byte
	err := row.Scan(&m.ID, &m.Name, &m.Position, &m.Bio, &m.Image, &m.Email, &m.LinkedIn, &links)
	if err != nil {
		return nil, err
	}
	if len(links) > 0 && string(links) != "null" {
		var sl campus.SocialLinks
		if err := json.Unmarshal(links, &sl); err != nil {
			return nil, fmt.Errorf("decode social_links: %w", err)
		}
		if !sl.IsZero() {
			m.SocialLinks = &sl
		}
	}
	return &m, nil
}

func (r *Repository) ListManagement(ctx context.Context) ([]*campus.ManagementMember, error) {
	return queryList(ctx, r, "list management", scanMember,
		`SELECT `+managementColumns+` FROM management ORDER BY id ASC`)
}

func (r *Repository) GetManagementMember(ctx context.Context, id int64) (*campus.ManagementMember, error) {
	return queryOne(ctx, r, "get management member", scanMember,
		`SELECT `+managementColumns+` FROM management WHERE id = $1`, id)
}

func (r *Repository) CreateManagementMember(ctx context.Context, m *campus.ManagementMember) (*campus.ManagementMember, error) {
	var links []byte
	if !m.SocialLinks.IsZero() {
		b, err := json.Marshal(m.SocialLinks)
		if err != nil {
			return nil, r.handlePostgresError("create management member", err)
		}
		links = b
	}

	query := `
		INSERT INTO management (name, position, bio, image, email, linkedin, social_links)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + managementColumns

	return queryOne(ctx, r, "create management member", scanMember, query,
		m.Name, m.Position, m.Bio, m.Image, m.Email, m.LinkedIn, links)
}

// Testimonial operations

const testimonialColumns = `id, name, position, company, content, image, rating, featured`

func scanTestimonial(row rowScanner) (*campus.Testimonial, error) {
	var t campus.Testimonial
	err := row.Scan(&t.ID, &t.Name, &t.Position, &t.Company, &t.Content, &t.Image, &t.Rating, &t.Featured)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) ListTestimonials(ctx context.Context) ([]*campus.Testimonial, error) {
	return queryList(ctx, r, "list testimonials", scanTestimonial,
		`SELECT `+testimonialColumns+` FROM testimonials ORDER BY id DESC`)
}

func (r *Repository) ListFeaturedTestimonials(ctx context.Context) ([]*campus.Testimonial, error) {
	return queryList(ctx, r, "list featured testimonials", scanTestimonial,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE featured ORDER BY id DESC`)
}

func (r *Repository) GetTestimonial(ctx context.Context, id int64) (*campus.Testimonial, error) {
	return queryOne(ctx, r, "get testimonial", scanTestimonial,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id)
}

func (r *Repository) CreateTestimonial(ctx context.Context, t *campus.Testimonial) (*campus.Testimonial, error) {
	rating := t.Rating
	if rating == 0 {
		rating = campus.DefaultRating
	}

	query := `
		INSERT INTO testimonials (name, position, company, content, image, rating, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + testimonialColumns

	return queryOne(ctx, r, "create testimonial", scanTestimonial, query,
		t.Name, t.Position, t.Company, t.Content, t.Image, rating, t.Featured)
}

// Alumni operations

const alumnusColumns = `id, name, position, company, content, image, graduation_year, featured`

func scanAlumnus(row rowScanner) (*campus.Alumnus, error) {
	var a campus.Alumnus
	err := row.Scan(&a.ID, &a.Name, &a.Position, &a.Company, &a.Content, &a.Image, &a.GraduationYear, &a.Featured)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) ListAlumni(ctx context.Context) ([]*campus.Alumnus, error) {
	return queryList(ctx, r, "list alumni", scanAlumnus,
		`SELECT `+alumnusColumns+` FROM alumni ORDER BY id DESC`)
}

func (r *Repository) ListFeaturedAlumni(ctx context.Context) ([]*campus.Alumnus, error) {
	return queryList(ctx, r, "list featured alumni", scanAlumnus,
		`SELECT `+alumnusColumns+` FROM alumni WHERE featured ORDER BY id DESC`)
}

func (r *Repository) GetAlumnus(ctx context.Context, id int64) (*campus.Alumnus, error) {
	return queryOne(ctx, r, "get alumnus", scanAlumnus,
		`SELECT `+alumnusColumns+` FROM alumni WHERE id = $1`, id)
}

func (r *Repository) CreateAlumnus(ctx context.Context, a *campus.Alumnus) (*campus.Alumnus, error) {
	query := `
		INSERT INTO alumni (name, position, company, content, image, graduation_year, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + alumnusColumns

	return queryOne(ctx, r, "create alumnus", scanAlumnus, query,
		a.Name, a.Position, a.Company, a.Content, a.Image, a.GraduationYear, a.Featured)
}
