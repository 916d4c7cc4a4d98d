package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/fieldledger/fieldledger/internal/models"
)

const clientColumns = "id, name, cnpj, address, phone, email, posts, created_at, updated_at"

// ClientStore handles client CRUD operations. The posts list is stored as a
// jsonb array so order is preserved exactly as submitted.
type ClientStore struct {
	Base
}

// NewClientStore creates a new ClientStore.
func NewClientStore(base Base) *ClientStore {
	return &ClientStore{Base: base}
}

func (s *ClientStore) scanClient(scan func(...any) error) (*models.Client, error) {
	var c models.Client
	var postsJSON []byte

	if err := scan(&c.ID, &c.Name, &c.CNPJ, &c.Address, &c.Phone, &c.Email, &postsJSON, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}

	c.Posts = []string{}
	if len(postsJSON) > 0 {
		if err := json.Unmarshal(postsJSON, &c.Posts); err != nil {
			s.Log.WithError(err).WithField("client_id", c.ID).Warn("failed to unmarshal client posts")
			c.Posts = []string{}
		}
	}

	return &c, nil
}

// marshalPosts encodes a posts list for storage, normalizing nil to [].
func marshalPosts(posts []string) ([]byte, error) {
	if posts == nil {
		posts = []string{}
	}

	data, err := json.Marshal(posts)
	if err != nil {
		return nil, fmt.Errorf("marshaling posts: %w", err)
	}

	return data, nil
}

// ListClients returns all clients ordered by name.
func (s *ClientStore) ListClients(ctx context.Context) ([]models.Client, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.Pool.Query(ctx, "SELECT "+clientColumns+" FROM clients ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("querying clients: %w", err)
	}
	defer rows.Close()

	clients := make([]models.Client, 0)

	for rows.Next() {
		c, err := s.scanClient(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning client row: %w", err)
		}

		clients = append(clients, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating client rows: %w", err)
	}

	return clients, nil
}

// GetClient retrieves a single client by ID.
func (s *ClientStore) GetClient(ctx context.Context, id int64) (*models.Client, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.Pool.QueryRow(ctx, "SELECT "+clientColumns+" FROM clients WHERE id = $1", id)

	c, err := s.scanClient(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrClientNotFound
		}

		return nil, fmt.Errorf("scanning client: %w", err)
	}

	return c, nil
}

// CreateClient inserts a new client and returns the created record.
func (s *ClientStore) CreateClient(ctx context.Context, req models.CreateClientRequest) (*models.Client, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	postsJSON, err := marshalPosts(req.Posts)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO clients (name, cnpj, address, phone, email, posts)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + clientColumns

	row := s.Pool.QueryRow(ctx, query, req.Name, req.CNPJ, req.Address, req.Phone, req.Email, postsJSON)

	c, err := s.scanClient(row.Scan)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, models.ErrDuplicateKey
		}

		return nil, fmt.Errorf("scanning created client: %w", err)
	}

	return c, nil
}

// UpdateClient updates an existing client with the provided fields and
// returns the merged result. A nil Posts keeps the stored list; an empty
// non-nil list clears it.
func (s *ClientStore) UpdateClient(ctx context.Context, id int64, req models.UpdateClientRequest) (*models.Client, error) {
	setClauses := make([]string, 0, 6)
	args := make([]any, 0, 7)
	argIdx := 1

	add := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.Name != nil {
		add("name", *req.Name)
	}

	if req.CNPJ != nil {
		add("cnpj", *req.CNPJ)
	}

	if req.Address != nil {
		add("address", *req.Address)
	}

	if req.Phone != nil {
		add("phone", *req.Phone)
	}

	if req.Email != nil {
		add("email", *req.Email)
	}

	if req.Posts != nil {
		postsJSON, err := marshalPosts(*req.Posts)
		if err != nil {
			return nil, err
		}

		add("posts", postsJSON)
	}

	if len(setClauses) == 0 {
		return s.GetClient(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = now()")

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(
		"UPDATE clients SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setClauses, ", "), argIdx, clientColumns,
	)
	args = append(args, id)

	row := s.Pool.QueryRow(ctx, query, args...)

	c, err := s.scanClient(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrClientNotFound
		}

		return nil, fmt.Errorf("scanning updated client: %w", err)
	}

	return c, nil
}

// DeleteClient removes a client by ID. Work logs referencing it as client or
// coverage origin keep their dangling ids.
func (s *ClientStore) DeleteClient(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := s.Pool.Exec(ctx, "DELETE FROM clients WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("executing client delete: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrClientNotFound
	}

	return nil
}
