package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/travelbook/internal/domain"
)

// AlbumRepo defines the persistence operations for Albums.
type AlbumRepo interface {
	// Create inserts a new album and returns the persisted record.
	Create(ctx context.Context, album domain.Album) (domain.Album, error)

	// List returns every album ordered by id.
	List(ctx context.Context) ([]domain.Album, error)

	// ListByTravelID returns the albums of one travel ordered by id.
	ListByTravelID(ctx context.Context, travelID int64) ([]domain.Album, error)
}

// pgAlbumRepo is the Postgres implementation of AlbumRepo.
type pgAlbumRepo struct {
	db db
}

// NewAlbumRepo constructs an AlbumRepo backed by the provided db connection.
func NewAlbumRepo(db db) AlbumRepo {
	return &pgAlbumRepo{db: db}
}

const albumColumns = `id, uuid, title, description, travel_id, created_at, updated_at`

func (r *pgAlbumRepo) Create(ctx context.Context, album domain.Album) (domain.Album, error) {
	const q = `
		INSERT INTO albums (uuid, title, description, travel_id, created_at, updated_at)
		VALUES (@uuid, @title, @description, @travel_id, @created_at, @updated_at)
		RETURNING ` + albumColumns

	args := pgx.NamedArgs{
		"uuid":        album.UUID,
		"title":       album.Title,
		"description": album.Description,
		"travel_id":   album.TravelID,
		"created_at":  album.CreatedAt,
		"updated_at":  album.UpdatedAt,
	}

	result, err := scanAlbum(conn(ctx, r.db).QueryRow(ctx, q, args))
	if err != nil {
		return domain.Album{}, fmt.Errorf("repo.AlbumRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgAlbumRepo) List(ctx context.Context) ([]domain.Album, error) {
	const q = `SELECT ` + albumColumns + ` FROM albums ORDER BY id`

	albums, err := r.query(ctx, q, nil)
	if err != nil {
		return nil, fmt.Errorf("repo.AlbumRepo.List: %w", err)
	}
	return albums, nil
}

func (r *pgAlbumRepo) ListByTravelID(ctx context.Context, travelID int64) ([]domain.Album, error) {
	const q = `SELECT ` + albumColumns + ` FROM albums WHERE travel_id = @travel_id ORDER BY id`

	albums, err := r.query(ctx, q, pgx.NamedArgs{"travel_id": travelID})
	if err != nil {
		return nil, fmt.Errorf("repo.AlbumRepo.ListByTravelID: %w", err)
	}
	return albums, nil
}

// query runs a multi-row album select. A nil args runs the query without arguments.
func (r *pgAlbumRepo) query(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.Album, error) {
	var queryArgs []any
	if args != nil {
		queryArgs = append(queryArgs, args)
	}

	rows, err := conn(ctx, r.db).Query(ctx, q, queryArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var albums []domain.Album
	for rows.Next() {
		a, err := scanAlbum(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		albums = append(albums, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return albums, nil
}

func scanAlbum(s scanner) (domain.Album, error) {
	var (
		a  domain.Album
		id pgtype.UUID
	)

	err := s.Scan(&a.ID, &id, &a.Title, &a.Description, &a.TravelID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Album{}, domain.ErrNotFound
		}
		return domain.Album{}, err
	}

	a.UUID = uuid.UUID(id.Bytes)
	return a, nil
}
