package postgres

import (
	"context"

	"github.com/tendant/campus-content/pkg/campus"
)

// Program operations

const programColumns = `id, title, description, duration, category, featured, icon, image, color`

func scanProgram(row rowScanner) (*campus.Program, error) {
	var p campus.Program
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Duration, &p.Category,
		&p.Featured, &p.Icon, &p.Image, &p.Color)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) ListPrograms(ctx context.Context) ([]*campus.Program, error) {
	return queryList(ctx, r, "list programs", scanProgram,
		`SELECT `+programColumns+` FROM programs ORDER BY id DESC`)
}

func (r *Repository) ListFeaturedPrograms(ctx context.Context) ([]*campus.Program, error) {
	return queryList(ctx, r, "list featured programs", scanProgram,
		`SELECT `+programColumns+` FROM programs WHERE featured ORDER BY id DESC`)
}

func (r *Repository) GetProgram(ctx context.Context, id int64) (*campus.Program, error) {
	return queryOne(ctx, r, "get program", scanProgram,
		`SELECT `+programColumns+` FROM programs WHERE id = $1`, id)
}

func (r *Repository) CreateProgram(ctx context.Context, p *campus.Program) (*campus.Program, error) {
	query := `
		INSERT INTO programs (title, description, duration, category, featured, icon, image, color)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + programColumns

	return queryOne(ctx, r, "create program", scanProgram, query,
		p.Title, p.Description, p.Duration, p.Category, p.Featured, p.Icon, p.Image, p.Color)
}

func (r *Repository) UpdateProgram(ctx context.Context, id int64, patch campus.ProgramPatch) (*campus.Program, error) {
	query := `
		UPDATE programs SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			duration = COALESCE($4, duration),
			category = COALESCE($5, category),
			featured = COALESCE($6, featured),
			icon = COALESCE($7, icon),
			image = COALESCE($8, image),
			color = COALESCE($9, color)
		WHERE id = $1
		RETURNING ` + programColumns

	return queryOne(ctx, r, "update program", scanProgram, query, id,
		trimmed(patch.Title), trimmed(patch.Description), trimmed(patch.Duration),
		trimmed(patch.Category), patch.Featured, trimmed(patch.Icon),
		trimmed(patch.Image), trimmed(patch.Color))
}

func (r *Repository) DeleteProgram(ctx context.Context, id int64) (bool, error) {
	return r.deleteByID(ctx, "delete program", "programs", id)
}

// News operations

const newsColumns = `id, title, content, summary, category, featured, image, published_at`

func scanNews(row rowScanner) (*campus.News, error) {
	var n campus.News
	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.Summary, &n.Category,
		&n.Featured, &n.Image, &n.PublishedAt)
	if err != nil {
		return nil, err
	}
	n.PublishedAt = n.PublishedAt.UTC()
	return &n, nil
}

func (r *Repository) ListNews(ctx context.Context) ([]*campus.News, error) {
	return queryList(ctx, r, "list news", scanNews,
		`SELECT `+newsColumns+` FROM news ORDER BY published_at DESC, id DESC`)
}

func (r *Repository) ListFeaturedNews(ctx context.Context) ([]*campus.News, error) {
	return queryList(ctx, r, "list featured news", scanNews,
		`SELECT `+newsColumns+` FROM news WHERE featured ORDER BY published_at DESC, id DESC`)
}

func (r *Repository) GetNews(ctx context.Context, id int64) (*campus.News, error) {
	return queryOne(ctx, r, "get news", scanNews,
		`SELECT `+newsColumns+` FROM news WHERE id = $1`, id)
}

func (r *Repository) CreateNews(ctx context.Context, n *campus.News) (*campus.News, error) {
	query := `
		INSERT INTO news (title, content, summary, category, featured, image, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + newsColumns

	return queryOne(ctx, r, "create news", scanNews, query,
		n.Title, n.Content, n.Summary, n.Category, n.Featured, n.Image, r.stamp())
}

func (r *Repository) UpdateNews(ctx context.Context, id int64, patch campus.NewsPatch) (*campus.News, error) {
	query := `
		UPDATE news SET
			title = COALESCE($2, title),
			content = COALESCE($3, content),
			summary = COALESCE($4, summary),
			category = COALESCE($5, category),
			featured = COALESCE($6, featured),
			image = COALESCE($7, image)
		WHERE id = $1
		RETURNING ` + newsColumns

	return queryOne(ctx, r, "update news", scanNews, query, id,
		trimmed(patch.Title), trimmed(patch.Content), trimmed(patch.Summary),
		trimmed(patch.Category), patch.Featured, trimmed(patch.Image))
}

func (r *Repository) DeleteNews(ctx context.Context, id int64) (bool, error) {
	return r.deleteByID(ctx, "delete news", "news", id)
}
