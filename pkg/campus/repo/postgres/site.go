package postgres

import (
	"context"

	"github.com/tendant/campus-content/pkg/campus"
)

// Contact operations

const contactColumns = `id, name, email, subject, message, created_at`

func scanContact(row rowScanner) (*campus.Contact, error) {
	var c campus.Contact
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.CreatedAt = c.CreatedAt.UTC()
	return &c, nil
}

func (r *Repository) ListContacts(ctx context.Context) ([]*campus.Contact, error) {
	return queryList(ctx, r, "list contacts", scanContact,
		`SELECT `+contactColumns+` FROM contacts ORDER BY created_at DESC, id DESC`)
}

func (r *Repository) GetContact(ctx context.Context, id int64) (*campus.Contact, error) {
	return queryOne(ctx, r, "get contact", scanContact,
		`SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id)
}

func (r *Repository) CreateContact(ctx context.Context, c *campus.Contact) (*campus.Contact, error) {
	query := `
		INSERT INTO contacts (name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + contactColumns

	return queryOne(ctx, r, "create contact", scanContact, query,
		c.Name, c.Email, c.Subject, c.Message, r.stamp())
}

// Setting operations

func scanSetting(row rowScanner) (*campus.Setting, error) {
	var s campus.Setting
	if err := row.Scan(&s.ID, &s.Key, &s.Value); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) GetSetting(ctx context.Context, key string) (*campus.Setting, error) {
	return queryOne(ctx, r, "get setting", scanSetting,
		`SELECT id, key, value FROM settings WHERE key = $1`, key)
}

func (r *Repository) SetSetting(ctx context.Context, key, value string) (*campus.Setting, error) {
	query := `
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
		RETURNING id, key, value`

	return queryOne(ctx, r, "set setting", scanSetting, query, key, value)
}

// Institutional data operations

const institutionalColumns = `id, data_type, title, value, description, category, last_updated`

func scanInstitutionalData(row rowScanner) (*campus.InstitutionalData, error) {
	var d campus.InstitutionalData
	err := row.Scan(&d.ID, &d.DataType, &d.Title, &d.Value, &d.Description, &d.Category, &d.LastUpdated)
	if err != nil {
		return nil, err
	}
	d.LastUpdated = d.LastUpdated.UTC()
	return &d, nil
}

func (r *Repository) ListInstitutionalData(ctx context.Context) ([]*campus.InstitutionalData, error) {
	return queryList(ctx, r, "list institutional data", scanInstitutionalData,
		`SELECT `+institutionalColumns+` FROM institutional_data ORDER BY last_updated DESC, id DESC`)
}

func (r *Repository) ListInstitutionalDataByCategory(ctx context.Context, category string) ([]*campus.InstitutionalData, error) {
	return queryList(ctx, r, "list institutional data by category", scanInstitutionalData,
		`SELECT `+institutionalColumns+` FROM institutional_data WHERE category = $1
		 ORDER BY last_updated DESC, id DESC`, category)
}

func (r *Repository) GetInstitutionalData(ctx context.Context, id int64) (*campus.InstitutionalData, error) {
	return queryOne(ctx, r, "get institutional data", scanInstitutionalData,
		`SELECT `+institutionalColumns+` FROM institutional_data WHERE id = $1`, id)
}

func (r *Repository) CreateInstitutionalData(ctx context.Context, d *campus.InstitutionalData) (*campus.InstitutionalData, error) {
	query := `
		INSERT INTO institutional_data (data_type, title, value, description, category, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + institutionalColumns

	return queryOne(ctx, r, "create institutional data", scanInstitutionalData, query,
		d.DataType, d.Title, d.Value, d.Description, d.Category, r.stamp())
}
