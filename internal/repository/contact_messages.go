package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gsccapital/website/api/internal/entity"
)

// ErrContactMessageNotFound is returned when no message matches the identifier.
var ErrContactMessageNotFound = fmt.Errorf("contact message %w", ErrNotFound)

// ContactMessagesRepository persists contact form submissions. Messages are
// immutable apart from the read flag.
type ContactMessagesRepository interface {
	Create(ctx context.Context, msg *entity.ContactMessage) error
	List(ctx context.Context) ([]entity.ContactMessage, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error)
	MarkRead(ctx context.Context, id uuid.UUID, isRead bool) (*entity.ContactMessage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXContactMessagesRepository implements ContactMessagesRepository using pgx.
type PGXContactMessagesRepository struct {
	pool pgxPool
}

// NewPGXContactMessagesRepository wires a pgx backed repository.
func NewPGXContactMessagesRepository(pool *pgxpool.Pool) *PGXContactMessagesRepository {
	return &PGXContactMessagesRepository{pool: pool}
}

const contactColumns = `id, name, email, company, phone, message, is_read, created_at, updated_at`

// Create stores a new unread message.
func (r *PGXContactMessagesRepository) Create(ctx context.Context, msg *entity.ContactMessage) error {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO contact_messages (name, email, company, phone, message)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, is_read, created_at, updated_at
    `, msg.Name, msg.Email, msg.Company, msg.Phone, msg.Message)
	if err := row.Scan(&msg.ID, &msg.IsRead, &msg.CreatedAt, &msg.UpdatedAt); err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

// List returns every message, newest first.
func (r *PGXContactMessagesRepository) List(ctx context.Context) ([]entity.ContactMessage, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+contactColumns+` FROM contact_messages ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return collectRows(rows, "contact message", scanContactMessage)
}

func (r *PGXContactMessagesRepository) Get(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	msg, err := scanContactMessage(r.pool.QueryRow(ctx, `SELECT `+contactColumns+` FROM contact_messages WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrContactMessageNotFound
		}
		return nil, fmt.Errorf("query contact message: %w", err)
	}
	return &msg, nil
}

// MarkRead sets the read flag and returns the updated message.
func (r *PGXContactMessagesRepository) MarkRead(ctx context.Context, id uuid.UUID, isRead bool) (*entity.ContactMessage, error) {
	msg, err := scanContactMessage(r.pool.QueryRow(ctx, `
        UPDATE contact_messages SET is_read = $2, updated_at = NOW()
        WHERE id = $1
        RETURNING `+contactColumns, id, isRead))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrContactMessageNotFound
		}
		return nil, fmt.Errorf("update contact message: %w", err)
	}
	return &msg, nil
}

func (r *PGXContactMessagesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact message: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrContactMessageNotFound
	}
	return nil
}

func scanContactMessage(row pgx.Row) (entity.ContactMessage, error) {
	var m entity.ContactMessage
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Company, &m.Phone, &m.Message, &m.IsRead, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}
