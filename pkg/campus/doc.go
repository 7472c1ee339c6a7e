// Package campus holds the content model of a technical-college website:
// programs, news, events, management staff, testimonials, achievements,
// facilities, alumni, institutional statistics, contact messages and
// key/value site settings.
//
// Persistence goes through the Repository interface. Two implementations are
// provided under repo/: an in-memory store for development and tests, and a
// PostgreSQL store for production. Both honour the same ordering, defaulting
// and not-found rules, which the repotest package checks.
//
// Write inputs arrive as Create*Request values (and ProgramPatch/NewsPatch for
// partial updates). Validate reports every failing field at once as a
// *ValidationError; the request's conversion method then produces the entity
// with defaults applied.
package campus
