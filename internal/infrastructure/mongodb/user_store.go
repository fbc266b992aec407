package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oksasatya/identity-mongo/internal/domain/entity"
	"github.com/oksasatya/identity-mongo/internal/domain/repository"
)

var _ repository.UserStore[string, *entity.User[string]] = (*UserStore[string, entity.User[string], *entity.User[string]])(nil)

// UserStore persists users of type U, any struct embedding entity.User[K].
//
// Update replaces the whole document. Every other mutation patches a single
// field: scalar setters $set the scalar, sub-collection operations $set the
// complete array after the matching manager reports a change.
type UserStore[K entity.Key, U any, PU entity.UserModel[K, U]] struct {
	lifecycle
	users Collection
	roles Collection
	codec KeyCodec[K]
}

// NewUserStore builds a store over the users collection. roles may be nil, in
// which case role membership operations fail with ErrRolesUnavailable.
func NewUserStore[K entity.Key, U any, PU entity.UserModel[K, U]](users, roles Collection, codec KeyCodec[K]) *UserStore[K, U, PU] {
	return &UserStore[K, U, PU]{users: users, roles: roles, codec: codec}
}

func NewUserOnlyStore[K entity.Key, U any, PU entity.UserModel[K, U]](users Collection, codec KeyCodec[K]) *UserStore[K, U, PU] {
	return NewUserStore[K, U, PU](users, nil, codec)
}

func (s *UserStore[K, U, PU]) Codec() KeyCodec[K] { return s.codec }

func (s *UserStore[K, U, PU]) check(ctx context.Context, user PU) (*entity.User[K], error) {
	if err := s.enter(ctx); err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user is nil", repository.ErrInvalidArgument)
	}
	return user.IdentityUser(), nil
}

func (s *UserStore[K, U, PU]) idValue(u *entity.User[K]) any { return s.codec.Value(u.ID) }

func (s *UserStore[K, U, PU]) Create(ctx context.Context, user PU) (entity.Result, error) {
	u, err := s.check(ctx, user)
	if err != nil {
		return entity.Result{}, err
	}
	u.Normalize()
	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if isContextErr(err) {
			return entity.Result{}, driverErr(err)
		}
		return entity.Result{}, fmt.Errorf("%w: insert user %s: %w", repository.ErrPersistence, s.codec.Format(u.ID), err)
	}
	return entity.Success(), nil
}

func (s *UserStore[K, U, PU]) Update(ctx context.Context, user PU) (entity.Result, error) {
	u, err := s.check(ctx, user)
	if err != nil {
		return entity.Result{}, err
	}
	u.Normalize()
	_, err = s.users.ReplaceOne(ctx, byID(s.idValue(u)), user)
	return writeResult(err, repository.CodeUpdateError, "failed to update user "+s.codec.Format(u.ID))
}

func (s *UserStore[K, U, PU]) Delete(ctx context.Context, user PU) (entity.Result, error) {
	u, err := s.check(ctx, user)
	if err != nil {
		return entity.Result{}, err
	}
	_, err = s.users.DeleteOne(ctx, byID(s.idValue(u)))
	return writeResult(err, repository.CodeDeleteError, "failed to delete user "+s.codec.Format(u.ID))
}

func (s *UserStore[K, U, PU]) FindByID(ctx context.Context, userID string) (PU, error) {
	if err := s.enter(ctx); err != nil {
		return nil, err
	}
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is empty", repository.ErrInvalidArgument)
	}
	id, err := s.codec.Parse(userID)
	if err != nil {
		return nil, err
	}
	return s.findOne(ctx, byID(s.codec.Value(id)))
}

func (s *UserStore[K, U, PU]) FindByName(ctx context.Context, normalizedUserName string) (PU, error) {
	if err := s.enter(ctx); err != nil {
		return nil, err
	}
	return s.findOne(ctx, byField(fieldNormalizedUserName, normalizedUserName))
}

func (s *UserStore[K, U, PU]) FindByEmail(ctx context.Context, normalizedEmail string) (PU, error) {
	if err := s.enter(ctx); err != nil {
		return nil, err
	}
	return s.findOne(ctx, byField(fieldNormalizedEmail, normalizedEmail))
}

func (s *UserStore[K, U, PU]) findOne(ctx context.Context, filter bson.D) (PU, error) {
	user := PU(new(U))
	if err := s.users.FindOne(ctx, filter).Decode(user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, driverErr(err)
	}
	user.IdentityUser().Normalize()
	return user, nil
}

func (s *UserStore[K, U, PU]) findMany(ctx context.Context, filter bson.D) ([]PU, error) {
	cur, err := s.users.Find(ctx, filter)
	if err != nil {
		return nil, driverErr(err)
	}
	defer func() { _ = cur.Close(ctx) }()

	users := []PU{}
	for cur.Next(ctx) {
		user := PU(new(U))
		if err := cur.Decode(user); err != nil {
			return nil, err
		}
		user.IdentityUser().Normalize()
		users = append(users, user)
	}
	return users, driverErr(cur.Err())
}

// fetch reloads the identity part of a user document, ignoring host fields.
func (s *UserStore[K, U, PU]) fetch(ctx context.Context, id K) (*entity.User[K], error) {
	var u entity.User[K]
	if err := s.users.FindOne(ctx, byID(s.codec.Value(id))).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, driverErr(err)
	}
	u.Normalize()
	return &u, nil
}

func (s *UserStore[K, U, PU]) GetUserID(ctx context.Context, user PU) (string, error) {
	u, err := s.check(ctx, user)
	if err != nil {
		return "", err
	}
	return s.codec.Format(u.ID), nil
}

func (s *UserStore[K, U, PU]) GetUserName(ctx context.Context, user PU) (string, error) {
	u, err := s.check(ctx, user)
	if err != nil {
		return "", err
	}
	return u.UserName, nil
}

func (s *UserStore[K, U, PU]) SetUserName(ctx context.Context, user PU, userName string) error {
	u, err := s.check(ctx, user)
	if err != nil {
		return err
	}
	return assign(ctx, s.users, s.idValue(u), fieldUserName, &u.UserName, userName)
}

func (s *UserStore[K, U, PU]) GetNormalizedUserName(ctx context.Context, user PU) (string, error) {
	u, err := s.check(ctx, user)
	if err != nil {
		return "", err
	}
	return u.NormalizedUserName, nil
}

func (s *UserStore[K, U, PU]) SetNormalizedUserName(ctx context.Context, user PU, normalizedName string) error {
	u, err := s.check(ctx, user)
	if err != nil {
		return err
	}
	return assign(ctx, s.users, s.idValue(u), fieldNormalizedUserName, &u.NormalizedUserName, normalizedName)
}

func (s *UserStore[K, U, PU]) GetEmail(ctx context.Context, user PU) (string, error) {
	u, err := s.check(ctx, user)
	if err != nil {
		return "", err
	}
	return u.Email, nil
}

func (s *UserStore[K, U, PU]) SetEmail(ctx context.Context, user PU, email string) error {
	u, err := s.check(ctx, user)
	if err != nil {
		return err
	}
	return assign(ctx, s.users, s.idValue(u), fieldEmail, &u.Email, email)
}

func (s *UserStore[K, U, PU]) GetNormalizedEmail(ctx context.Context, user PU) (string, error) {
	u, err := s.check(ctx, user)
	if err != nil {
		return "", err
	}
	return u.NormalizedEmail, nil
}

func (s *UserStore[K, U, PU]) SetNormalizedEmail(ctx context.Context, user PU, normalizedEmail string) error {
	u, err := s.check(ctx, user)
	if err != nil {
		return err
	}
	return assign(ctx, s.users, s.idValue(u), fieldNormalizedEmail, &u.NormalizedEmail, normalizedEmail)
}

func (s *UserStore[K, U, PU]) GetEmailConfirmed(ctx context.Context, user PU) (bool, error) {
	u, err := s.check(ctx, user)
	if err != nil {
		return false, err
	}
	return u.EmailConfirmed, nil
}

func (s *UserStore[K, U, PU]) SetEmailConfirmed(ctx context.Context, user PU, confirmed bool) error {
	u, err := s.check(ctx, user)
	if err != nil {
		return err
	}
	return assign(ctx, s.users, s.idValue(u), fieldEmailConfirmed, &u.EmailConfirmed, confirmed)
}

func (s *UserStore[K, U, PU]) GetPasswordHash(ctx context.Context, user PU) (string, error) {
	u, err := s.check(ctx, user)
	if err != nil {
		return "", err
	}
	return u.PasswordHash, nil
}

func (s *UserStore[K, U, PU]) SetPasswordHash(ctx context.Context, user PU, hash string) error {
	u, err := s.check(ctx, user)
	if err != nil {
		return err
	}
	return assign(ctx, s.users, s.idValue(u), fieldPasswordHash, &u.PasswordHash, hash)
}

func (s *UserStore[K, U, PU]) HasPassword(ctx context.Context, user PU) (bool, error) {
	u, err := s.check(ctx, user)
	if err != nil {
		return false, err
	}
	return u.PasswordHash != "", nil
}

func (s *UserStore[K, U, PU]) GetPhoneNumber(ctx context.Context, user PU) (string, error) {
	u, err := s.check(ctx, user)
	if err != nil {
		return "", err
	}
	return u.PhoneNumber, nil
}

func (s *UserStore[K, U, PU]) SetPhoneNumber(ctx context.Context, user PU, phone string) error {
	u, err := s.check(ctx, user)
	if err != nil {
		return err
	}
	return assign(ctx, s.users, s.idValue(u), fieldPhoneNumber, &u.PhoneNumber, phone)
}

func (s *UserStore[K, U, PU]) GetPhoneNumberConfirmed(ctx context.Context, user PU) (bool, error) {
	u, err := s.check(ctx, user)
	if err != nil {
		return false, err
	}
	return u.PhoneNumberConfirmed, nil
}

func (s *UserStore[K, U, PU]) SetPhoneNumberConfirmed(ctx context.Context, user PU, confirmed bool) error {
	u, err := s.check(ctx, user)
	if err != nil {
		return err
	}
	return assign(ctx, s.users, s.idValue(u), fieldPhoneNumberConfirmed, &u.PhoneNumberConfirmed, confirmed)
}

func (s *UserStore[K, U, PU]) GetSecurityStamp(ctx context.Context, user PU) (string, error) {
	u, err := s.check(ctx, user)
	if err != nil {
		return "", err
	}
	return u.SecurityStamp, nil
}

func (s *UserStore[K, U, PU]) SetSecurityStamp(ctx context.Context, user PU, stamp string) error {
	u, err := s.check(ctx, user)
	if err != nil {
		return err
	}
	return assign(ctx, s.users, s.idValue(u), fieldSecurityStamp, &u.SecurityStamp, stamp)
}

func (s *UserStore[K, U, PU]) GetTwoFactorEnabled(ctx context.Context, user PU) (bool, error) {
	u, err := s.check(ctx, user)
	if err != nil {
		return false, err
	}
	return u.TwoFactorEnabled, nil
}

func (s *UserStore[K, U, PU]) SetTwoFactorEnabled(ctx context.Context, user PU, enabled bool) error {
	u, err := s.check(ctx, user)
	if err != nil {
		return err
	}
	return assign(ctx, s.users, s.idValue(u), fieldTwoFactorEnabled, &u.TwoFactorEnabled, enabled)
}

func (s *UserStore[K, U, PU]) GetLockoutEnd(ctx context.Context, user PU) (*time.Time, error) {
	u, err := s.check(ctx, user)
	if err != nil {
		return nil, err
	}
	return u.LockoutEnd, nil
}

func (s *UserStore[K, U, PU]) SetLockoutEnd(ctx context.Context, user PU, end *time.Time) error {
	u, err := s.check(ctx, user)
	if err != nil {
		return err
	}
	if sameInstant(u.LockoutEnd, end) {
		return nil
	}
	u.LockoutEnd = end
	return writeField(ctx, s.users, s.idValue(u), fieldLockoutEnd, end)
}

func sameInstant(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func (s *UserStore[K, U, PU]) GetLockoutEnabled(ctx context.Context, user PU) (bool, error) {
	u, err := s.check(ctx, user)
	if err != nil {
		return false, err
	}
	return u.LockoutEnabled, nil
}

func (s *UserStore[K, U, PU]) SetLockoutEnabled(ctx context.Context, user PU, enabled bool) error {
	u, err := s.check(ctx, user)
	if err != nil {
		return err
	}
	return assign(ctx, s.users, s.idValue(u), fieldLockoutEnabled, &u.LockoutEnabled, enabled)
}

func (s *UserStore[K, U, PU]) GetAccessFailedCount(ctx context.Context, user PU) (int, error) {
	u, err := s.check(ctx, user)
	if err != nil {
		return 0, err
	}
	return u.AccessFailedCount, nil
}

func (s *UserStore[K, U, PU]) IncrementAccessFailedCount(ctx context.Context, user PU) (int, error) {
	u, err := s.check(ctx, user)
	if err != nil {
		return 0, err
	}
	if err := assign(ctx, s.users, s.idValue(u), fieldAccessFailedCount, &u.AccessFailedCount, u.AccessFailedCount+1); err != nil {
		return 0, err
	}
	return u.AccessFailedCount, nil
}

func (s *UserStore[K, U, PU]) ResetAccessFailedCount(ctx context.Context, user PU) error {
	u, err := s.check(ctx, user)
	if err != nil {
		return err
	}
	return assign(ctx, s.users, s.idValue(u), fieldAccessFailedCount, &u.AccessFailedCount, 0)
}
