package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"dairycoop-data/internal/domain"
)

type PostgresDocumentsRepository struct {
	db *sql.DB
}

func NewPostgresDocumentsRepository(db *sql.DB) *PostgresDocumentsRepository {
	return &PostgresDocumentsRepository{db: db}
}

var _ DocumentsRepository = (*PostgresDocumentsRepository)(nil)

const documentColumns = `id::text, title, category, file_name, related_entity, uploaded_at`

func scanDocument(row interface{ Scan(...any) error }) (*domain.Document, error) {
	var d domain.Document
	err := row.Scan(
		&d.ID,
		&d.Title,
		&d.Category,
		&d.FileName,
		&d.RelatedEntity,
		&d.UploadedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PostgresDocumentsRepository) ListDocuments(ctx context.Context) ([]*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents ORDER BY uploaded_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	docs := []*domain.Document{}
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}

	return docs, nil
}

func (r *PostgresDocumentsRepository) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	// A non-uuid id cannot match any row; comparing it against the UUID
	// column would raise pq 22P02 instead of ErrNoRows.
	if _, err := uuid.Parse(id); err != nil {
		return nil, notFound("document", id)
	}

	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`

	d, err := scanDocument(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, notFound("document", id)
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return d, nil
}

// CreateDocument assigns the uuid server-side; the portal never supplies
// document ids.
func (r *PostgresDocumentsRepository) CreateDocument(ctx context.Context, d *domain.Document) error {
	d.ID = uuid.New().String()

	query := `
		INSERT INTO documents (id, title, category, file_name, related_entity)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		d.ID, d.Title, d.Category, d.FileName, d.RelatedEntity,
	)
	if err != nil {
		if err = translatePQ(err, "document"); IsConstraint(err) {
			return err
		}
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

func (r *PostgresDocumentsRepository) UpdateDocument(ctx context.Context, d *domain.Document) error {
	if _, err := uuid.Parse(d.ID); err != nil {
		return notFound("document", d.ID)
	}

	query := `
		UPDATE documents
		SET title = $2, category = $3, file_name = $4, related_entity = $5
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		d.ID, d.Title, d.Category, d.FileName, d.RelatedEntity,
	)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("document", d.ID)
	}
	return nil
}

func (r *PostgresDocumentsRepository) DeleteDocument(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return notFound("document", id)
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("document", id)
	}
	return nil
}
