package user

import (
	"claon/internal/core/domain/area"
	c "claon/internal/core/domain/common"
	"claon/internal/core/domain/user"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const (
	EMAIL_CONSTRAINT_NAME    = "user_email_idx"
	NICKNAME_CONSTRAINT_NAME = "user_nickname_idx"
)

const userColumns = `id, email, nickname, phone_number, password_hash, metropolitan_active_area,
	basic_local_active_area, image_path, instagram_id, created_at`

const createUser = `INSERT INTO "user" (email, nickname, phone_number, password_hash, metropolitan_active_area,
	basic_local_active_area, image_path, instagram_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + userColumns

const getUserByEmail = `SELECT ` + userColumns + ` FROM "user" WHERE email = $1`

const getUserByNickname = `SELECT ` + userColumns + ` FROM "user" WHERE nickname = $1`

// Phone numbers are not unique, the oldest account wins.
const getUserByPhoneNumber = `SELECT ` + userColumns + ` FROM "user" WHERE phone_number = $1 ORDER BY id LIMIT 1`

// Holds the row lock until the surrounding transaction ends.
const getUserByIDForUpdate = `SELECT ` + userColumns + ` FROM "user" WHERE id = $1 FOR UPDATE`

const setUserPassword = `UPDATE "user" SET password_hash = $2 WHERE id = $1`

// DBTX is satisfied by *pgxpool.Pool, pgx.Tx and pgxmock.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgxUserRepository struct {
	db DBTX
}

func NewPgxRepository(db DBTX) *PgxUserRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxUserRepository{db: db}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		createUser,
		string(input.Email),
		string(input.Nickname),
		string(input.PhoneNumber),
		encodePasswordHash(input.PasswordHash),
		string(input.MetropolitanActiveArea),
		input.BasicLocalActiveArea.Name,
		input.ImagePath,
		encodeInstagramID(input.InstagramID),
		input.CreatedAt,
	)
	u, err = scanUser(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE {
		switch pgErr.ConstraintName {
		case EMAIL_CONSTRAINT_NAME:
			return u, user.ErrEmailAlreadyExists
		case NICKNAME_CONSTRAINT_NAME:
			return u, user.ErrNicknameAlreadyExists
		}
	}
	if err != nil {
		return u, fmt.Errorf("could not create user: %w", err)
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	return r.getOne(ctx, getUserByEmail, string(email))
}

func (r *PgxUserRepository) GetByNickname(ctx context.Context, nickname user.Nickname) (u user.User, err error) {
	return r.getOne(ctx, getUserByNickname, string(nickname))
}

func (r *PgxUserRepository) GetByPhoneNumber(ctx context.Context, phoneNumber user.PhoneNumber) (u user.User, err error) {
	return r.getOne(ctx, getUserByPhoneNumber, string(phoneNumber))
}

func (r *PgxUserRepository) GetByIDForUpdate(ctx context.Context, id user.ID) (u user.User, err error) {
	return r.getOne(ctx, getUserByIDForUpdate, int64(id))
}

func (r *PgxUserRepository) SetPassword(ctx context.Context, id user.ID, password user.PasswordHash) error {
	tag, err := r.db.Exec(ctx, setUserPassword, int64(id), string(password))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) getOne(ctx context.Context, query string, arg any) (u user.User, err error) {
	u, err = scanUser(r.db.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var (
		id           int64
		email        string
		nickname     string
		phoneNumber  string
		passwordHash sql.NullString
		metropolitan string
		basicLocal   string
		imagePath    string
		instagramID  sql.NullString
		createdAt    time.Time
	)
	err = row.Scan(
		&id,
		&email,
		&nickname,
		&phoneNumber,
		&passwordHash,
		&metropolitan,
		&basicLocal,
		&imagePath,
		&instagramID,
		&createdAt,
	)
	if err != nil {
		return u, err
	}
	return user.User{
		ID:                     user.ID(id),
		Email:                  c.Email(email),
		Nickname:               user.Nickname(nickname),
		PhoneNumber:            user.PhoneNumber(phoneNumber),
		PasswordHash:           c.NewOptional(user.PasswordHash(passwordHash.String), passwordHash.Valid),
		MetropolitanActiveArea: area.MetropolitanArea(metropolitan),
		BasicLocalActiveArea: area.BasicLocalArea{
			Metropolitan: area.MetropolitanArea(metropolitan),
			Name:         basicLocal,
		},
		ImagePath:   imagePath,
		InstagramID: c.NewOptional(user.InstagramID(instagramID.String), instagramID.Valid),
		CreatedAt:   createdAt,
	}, nil
}

func encodePasswordHash(ph c.Optional[user.PasswordHash]) sql.NullString {
	return sql.NullString{String: string(ph.Value), Valid: ph.IsPresent}
}

func encodeInstagramID(id c.Optional[user.InstagramID]) sql.NullString {
	return sql.NullString{String: string(id.Value), Valid: id.IsPresent}
}
