package postgres

import (
	"context"

	"github.com/tendant/campus-content/pkg/campus"
)

// Achievement operations

const achievementColumns = `id, title, description, icon, year, featured`

func scanAchievement(row rowScanner) (*campus.Achievement, error) {
	var a campus.Achievement
	if err := row.Scan(&a.ID, &a.Title, &a.Description, &a.Icon, &a.Year, &a.Featured); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) ListAchievements(ctx context.Context) ([]*campus.Achievement, error) {
	return queryList(ctx, r, "list achievements", scanAchievement,
		`SELECT `+achievementColumns+` FROM achievements ORDER BY id DESC`)
}

func (r *Repository) ListFeaturedAchievements(ctx context.Context) ([]*campus.Achievement, error) {
	return queryList(ctx, r, "list featured achievements", scanAchievement,
		`SELECT `+achievementColumns+` FROM achievements WHERE featured ORDER BY id DESC`)
}

func (r *Repository) GetAchievement(ctx context.Context, id int64) (*campus.Achievement, error) {
	return queryOne(ctx, r, "get achievement", scanAchievement,
		`SELECT `+achievementColumns+` FROM achievements WHERE id = $1`, id)
}

func (r *Repository) CreateAchievement(ctx context.Context, a *campus.Achievement) (*campus.Achievement, error) {
	query := `
		INSERT INTO achievements (title, description, icon, year, featured)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + achievementColumns

	return queryOne(ctx, r, "create achievement", scanAchievement, query,
		a.Title, a.Description, a.Icon, a.Year, a.Featured)
}

// Facility operations

const facilityColumns = `id, name, description, image, category, featured`

func scanFacility(row rowScanner) (*campus.Facility, error) {
	var f campus.Facility
	if err := row.Scan(&f.ID, &f.Name, &f.Description, &f.Image, &f.Category, &f.Featured); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *Repository) ListFacilities(ctx context.Context) ([]*campus.Facility, error) {
	return queryList(ctx, r, "list facilities", scanFacility,
		`SELECT `+facilityColumns+` FROM facilities ORDER BY id DESC`)
}

func (r *Repository) ListFeaturedFacilities(ctx context.Context) ([]*campus.Facility, error) {
	return queryList(ctx, r, "list featured facilities", scanFacility,
		`SELECT `+facilityColumns+` FROM facilities WHERE featured ORDER BY id DESC`)
}

func (r *Repository) GetFacility(ctx context.Context, id int64) (*campus.Facility, error) {
	return queryOne(ctx, r, "get facility", scanFacility,
		`SELECT `+facilityColumns+` FROM facilities WHERE id = $1`, id)
}

func (r *Repository) CreateFacility(ctx context.Context, f *campus.Facility) (*campus.Facility, error) {
	query := `
		INSERT INTO facilities (name, description, image, category, featured)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + facilityColumns

	return queryOne(ctx, r, "create facility", scanFacility, query,
		f.Name, f.Description, f.Image, f.Category, f.Featured)
}
