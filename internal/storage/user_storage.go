package storage

import (
	"context"
	"database/sql"
	"errors"

	"ShortVideo_UserService/internal/models"

	"modernc.org/sqlite"
)

var ErrUsernameExists = errors.New("username already exists")

// sqlite 기반 사용자 저장소 (service.UserRepository 구현)
type UserStorage struct {
	db *sql.DB
}

func NewUserStorage(db *sql.DB) *UserStorage {
	return &UserStorage{db: db}
}

func (s *UserStorage) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var one int
	row := s.db.QueryRowContext(ctx, "SELECT 1 FROM users WHERE username = ?", username)
	if err := row.Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *UserStorage) Insert(ctx context.Context, user models.User) error {
	stmt, err := s.db.PrepareContext(ctx,
		`INSERT INTO users(id, username, password, nickname, fans_count, receive_like_count, follow_count)
		 VALUES(?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, user.ID, user.Username, user.Password, user.Nickname,
		user.FansCount, user.ReceiveLikeCount, user.FollowCount)
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) {
			if sqliteErr.Code() == 2067 { // SQLITE_CONSTRAINT_UNIQUE
				return ErrUsernameExists
			}
		}
		return err
	}
	return nil
}

// (username, 해시) 완전 일치 조회, 일치하는 행이 없으면 (nil, nil)
func (s *UserStorage) FindByCredentials(ctx context.Context, username, passwordHash string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, password, nickname, fans_count, receive_like_count, follow_count
		 FROM users WHERE username = ? AND password = ?`, username, passwordHash)
	return scanUser(row)
}

func (s *UserStorage) FindByID(ctx context.Context, id string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, password, nickname, fans_count, receive_like_count, follow_count
		 FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	var nullNickname sql.NullString

	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&nullNickname,
		&user.FansCount,
		&user.ReceiveLikeCount,
		&user.FollowCount,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // no selected user
		}
		return nil, err
	}

	if nullNickname.Valid {
		user.Nickname = nullNickname.String
	}
	return &user, nil
}
