package mongodb

import (
	"context"
	"fmt"
	"strings"

	"github.com/oksasatya/identity-mongo/internal/domain/entity"
	"github.com/oksasatya/identity-mongo/internal/domain/repository"
)

const (
	internalLoginProvider = "[AspNetUserStore]"
	authenticatorKeyToken = "AuthenticatorKey"
	recoveryCodeToken     = "RecoveryCodes"
	recoveryCodeSeparator = ";"
)

// SetToken stores or overwrites a token. A resident token that already holds
// value is left alone. When the loaded user does not hold the
// token yet, the owning document is reloaded and its token list is the one
// written back; the loaded user then mirrors that list.
func (s *UserStore[K, U, PU]) SetToken(ctx context.Context, user PU, loginProvider, name, value string) error {
	u, err := s.check(ctx, user)
	if err != nil {
		return err
	}
	token := entity.Token{LoginProvider: loginProvider, Name: name, Value: value}
	tokens := u.TokenManager()
	if current, ok := tokens.Find(loginProvider, name); ok {
		if current.Value == value {
			return nil
		}
		tokens.TryReplace(token)
		return writeField(ctx, s.users, s.idValue(u), fieldTokens, u.Tokens)
	}
	return s.mutateStoredTokens(ctx, u, func(m *entity.TokenManager) bool {
		return m.TryAdd(token) || m.TryReplace(token)
	})
}

func (s *UserStore[K, U, PU]) GetToken(ctx context.Context, user PU, loginProvider, name string) (string, bool, error) {
	u, err := s.check(ctx, user)
	if err != nil {
		return "", false, err
	}
	t, ok := u.TokenManager().Find(loginProvider, name)
	if !ok {
		return "", false, nil
	}
	return t.Value, true, nil
}

// RemoveToken deletes a token the loaded user holds. Tokens unknown to the
// loaded user are left alone.
func (s *UserStore[K, U, PU]) RemoveToken(ctx context.Context, user PU, loginProvider, name string) error {
	u, err := s.check(ctx, user)
	if err != nil {
		return err
	}
	if _, ok := u.TokenManager().Find(loginProvider, name); !ok {
		return nil
	}
	return s.mutateStoredTokens(ctx, u, func(m *entity.TokenManager) bool {
		return m.TryRemove(entity.Token{LoginProvider: loginProvider, Name: name})
	})
}

func (s *UserStore[K, U, PU]) FindToken(ctx context.Context, user PU, loginProvider, name string) (*entity.UserToken[K], error) {
	u, err := s.check(ctx, user)
	if err != nil {
		return nil, err
	}
	t, ok := u.TokenManager().Find(loginProvider, name)
	if !ok {
		return nil, nil
	}
	return &entity.UserToken[K]{UserID: u.ID, LoginProvider: t.LoginProvider, Name: t.Name, Value: t.Value}, nil
}

func (s *UserStore[K, U, PU]) mutateStoredTokens(ctx context.Context, u *entity.User[K], mutate func(*entity.TokenManager) bool) error {
	owner, err := s.fetch(ctx, u.ID)
	if err != nil {
		return err
	}
	if owner == nil {
		return fmt.Errorf("%w: %s", repository.ErrUserNotFound, s.codec.Format(u.ID))
	}
	if mutate(owner.TokenManager()) {
		if err := writeField(ctx, s.users, s.idValue(u), fieldTokens, owner.Tokens); err != nil {
			return err
		}
	}
	u.Tokens = owner.TokenManager().Tokens()
	return nil
}

func (s *UserStore[K, U, PU]) SetAuthenticatorKey(ctx context.Context, user PU, key string) error {
	return s.SetToken(ctx, user, internalLoginProvider, authenticatorKeyToken, key)
}

func (s *UserStore[K, U, PU]) GetAuthenticatorKey(ctx context.Context, user PU) (string, error) {
	key, _, err := s.GetToken(ctx, user, internalLoginProvider, authenticatorKeyToken)
	return key, err
}

func (s *UserStore[K, U, PU]) ReplaceRecoveryCodes(ctx context.Context, user PU, codes []string) error {
	return s.SetToken(ctx, user, internalLoginProvider, recoveryCodeToken, strings.Join(codes, recoveryCodeSeparator))
}

// RedeemRecoveryCode consumes code if the user holds it.
func (s *UserStore[K, U, PU]) RedeemRecoveryCode(ctx context.Context, user PU, code string) (bool, error) {
	merged, _, err := s.GetToken(ctx, user, internalLoginProvider, recoveryCodeToken)
	if err != nil {
		return false, err
	}
	if strings.TrimSpace(code) == "" {
		return false, fmt.Errorf("%w: recovery code is empty", repository.ErrInvalidArgument)
	}
	codes := splitCodes(merged)
	for i, c := range codes {
		if c != code {
			continue
		}
		remaining := append(codes[:i:i], codes[i+1:]...)
		if err := s.ReplaceRecoveryCodes(ctx, user, remaining); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func (s *UserStore[K, U, PU]) CountRecoveryCodes(ctx context.Context, user PU) (int, error) {
	merged, _, err := s.GetToken(ctx, user, internalLoginProvider, recoveryCodeToken)
	if err != nil {
		return 0, err
	}
	return len(splitCodes(merged)), nil
}

func splitCodes(merged string) []string {
	if merged == "" {
		return nil
	}
	return strings.Split(merged, recoveryCodeSeparator)
}
