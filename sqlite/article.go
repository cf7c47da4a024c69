package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/newspulse"
	"github.com/google/uuid"
)

var (
	_ newspulse.ResultWriter = (*ArticleStore)(nil)
	_ newspulse.RunService   = (*ArticleStore)(nil)
)

// ArticleStore writes result tables to SQLite, one run per table.
type ArticleStore struct {
	db     *DB
	source string
}

// NewArticleStore creates a store whose runs are labelled with source
// (e.g. "crawl" or "search").
func NewArticleStore(db *DB, source string) *ArticleStore {
	return &ArticleStore{db: db, source: source}
}

// WriteResults stores every row of table under a new run in a single
// transaction.
func (s *ArticleStore) WriteResults(ctx context.Context, table *newspulse.ResultTable) error {
	_, err := s.CreateRun(ctx, table)
	return err
}

// CreateRun stores table and returns the new run.
func (s *ArticleStore) CreateRun(ctx context.Context, table *newspulse.ResultTable) (*newspulse.Run, error) {
	if table == nil {
		return nil, newspulse.Errorf(newspulse.EINVALID, "result table required")
	}

	run := &newspulse.Run{
		ID:           uuid.New().String(),
		Source:       s.source,
		ArticleCount: table.Len(),
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, source, article_count, created_at)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.Source, run.ArticleCount, run.CreatedAt.Format(time.RFC3339)); err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO articles (id, run_id, position, url, title, author, published_at, content, summary, names, cited_people, content_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, a := range table.Rows() {
		if _, err := stmt.ExecContext(ctx,
			uuid.New().String(), run.ID, i, a.URL, a.Title, a.Author, a.PublishedAt,
			a.Content, a.Summary, a.NamesText(), citedPeopleColumn(a), hashContent(a.Content),
		); err != nil {
			return nil, fmt.Errorf("insert article %s: %w", a.URL, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit run: %w", err)
	}
	return run, nil
}

// FindRuns returns runs matching filter, newest first.
func (s *ArticleStore) FindRuns(ctx context.Context, filter newspulse.RunFilter) ([]*newspulse.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT id, source, article_count, created_at
		FROM runs
		WHERE 1=1`)
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}
	query.WriteString(" ORDER BY created_at DESC, id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*newspulse.Run
	for rows.Next() {
		var run newspulse.Run
		var createdAt string
		if err := rows.Scan(&run.ID, &run.Source, &run.ArticleCount, &createdAt); err != nil {
			return nil, err
		}
		if run.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// FindRunByID retrieves a run by ID.
func (s *ArticleStore) FindRunByID(ctx context.Context, id string) (*newspulse.Run, error) {
	var run newspulse.Run
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source, article_count, created_at
		FROM runs
		WHERE id = ?
	`, id).Scan(&run.ID, &run.Source, &run.ArticleCount, &createdAt)
	if err == sql.ErrNoRows {
		return nil, newspulse.Errorf(newspulse.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	if run.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &run, nil
}

// FindArticles returns stored articles matching filter, ordered by run
// and position.
func (s *ArticleStore) FindArticles(ctx context.Context, filter newspulse.ArticleFilter) ([]*newspulse.StoredArticle, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT a.id, a.run_id, a.position, a.url, a.title, a.author, a.published_at,
			a.content, a.summary, a.names, a.cited_people, a.content_hash
		FROM articles a
		JOIN runs r ON r.id = a.run_id
		WHERE 1=1`)
	if filter.RunID != nil {
		query.WriteString(" AND a.run_id = ?")
		args = append(args, *filter.RunID)
	}
	if filter.URL != nil {
		query.WriteString(" AND a.url = ?")
		args = append(args, *filter.URL)
	}
	query.WriteString(" ORDER BY r.created_at, a.run_id, a.position")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*newspulse.StoredArticle
	for rows.Next() {
		var sa newspulse.StoredArticle
		var a newspulse.Article
		var names, cited string
		if err := rows.Scan(&sa.ID, &sa.RunID, &sa.Position, &a.URL, &a.Title, &a.Author,
			&a.PublishedAt, &a.Content, &a.Summary, &names, &cited, &sa.ContentHash); err != nil {
			return nil, err
		}
		a.Names = splitList(names, ", ")
		a.CitedPeople = parseCitedPeople(cited)
		sa.Article = &a
		out = append(out, &sa)
	}
	return out, rows.Err()
}

// citedPeopleColumn stores cited people as "Name from Affiliation" pairs
// separated by "; ".
func citedPeopleColumn(a *newspulse.Article) string {
	return a.CitedPeopleText(newspulse.Defaults{})
}

func parseCitedPeople(s string) []newspulse.CitedPerson {
	parts := splitList(s, "; ")
	if len(parts) == 0 {
		return nil
	}
	people := make([]newspulse.CitedPerson, 0, len(parts))
	for _, p := range parts {
		name, affiliation, _ := strings.Cut(p, " from ")
		people = append(people, newspulse.CitedPerson{Name: name, Affiliation: affiliation})
	}
	return people
}
