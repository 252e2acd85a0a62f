// Package directory adapts the platform's shared account and social-graph
// tables to the interfaces the trust gate needs. The messaging service reads
// these tables, it never writes them.
package directory

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/MuscleMap-ME/musclemap-messaging/internal/trust"
	pkgerrors "github.com/MuscleMap-ME/musclemap-messaging/pkg/errors"
)

type PlatformDirectory struct {
	db *bun.DB
}

func NewPlatformDirectory(db *bun.DB) *PlatformDirectory {
	return &PlatformDirectory{db: db}
}

func (d *PlatformDirectory) AccountCreatedAt(ctx context.Context, userID uuid.UUID) (time.Time, error) {
	var createdAt time.Time
	err := d.db.NewRaw("SELECT created_at FROM user_accounts WHERE id = ?", userID).
		Scan(ctx, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, pkgerrors.ErrUserNotFound
		}
		return time.Time{}, errors.Wrap(err, "directory.AccountCreatedAt.Scan")
	}
	return createdAt, nil
}

func (d *PlatformDirectory) VerificationLevel(ctx context.Context, userID uuid.UUID) (trust.VerificationLevel, error) {
	var level string
	err := d.db.NewRaw("SELECT COALESCE(verification_level, 'none') FROM user_accounts WHERE id = ?", userID).
		Scan(ctx, &level)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return trust.VerificationNone, pkgerrors.ErrUserNotFound
		}
		return trust.VerificationNone, errors.Wrap(err, "directory.VerificationLevel.Scan")
	}
	switch level {
	case "strong":
		return trust.VerificationStrong, nil
	case "basic":
		return trust.VerificationBasic, nil
	default:
		return trust.VerificationNone, nil
	}
}

func (d *PlatformDirectory) IsFriend(ctx context.Context, a, b uuid.UUID) (bool, error) {
	var exists bool
	err := d.db.NewRaw(
		"SELECT EXISTS (SELECT 1 FROM user_friendships WHERE (user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?))",
		a, b, b, a,
	).Scan(ctx, &exists)
	if err != nil {
		return false, errors.Wrap(err, "directory.IsFriend.Scan")
	}
	return exists, nil
}

func (d *PlatformDirectory) IsMutualFollower(ctx context.Context, a, b uuid.UUID) (bool, error) {
	var exists bool
	err := d.db.NewRaw(
		"SELECT EXISTS (SELECT 1 FROM user_follows fa JOIN user_follows fb ON fa.follower_id = fb.followee_id AND fa.followee_id = fb.follower_id WHERE fa.follower_id = ? AND fa.followee_id = ?)",
		a, b,
	).Scan(ctx, &exists)
	if err != nil {
		return false, errors.Wrap(err, "directory.IsMutualFollower.Scan")
	}
	return exists, nil
}
