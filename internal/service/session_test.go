package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/SiPinjam/internal/domain"
	"github.com/stpnv0/SiPinjam/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSessionService(t *testing.T) (*SessionService, *mocks.MockUserRepo, *mocks.MockSessionStore) {
	t.Helper()
	users := mocks.NewMockUserRepo(t)
	store := mocks.NewMockSessionStore(t)
	return NewSessionService(users, store, time.Hour, newTestLogger(t)), users, store
}

func TestSessionService_Login_Success(t *testing.T) {
	svc, users, store := newSessionService(t)

	users.EXPECT().GetByUsername(mock.Anything, "budi").
		Return(&domain.User{ID: "u1", Name: "Budi Santoso", Username: "budi"}, nil)
	store.EXPECT().Save(mock.Anything, mock.AnythingOfType("string"),
		domain.CurrentUser{ID: "u1", Name: "Budi Santoso"}, time.Hour).Return(nil)

	token, user, err := svc.Login(context.Background(), " Budi ")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "u1", user.ID)
}

func TestSessionService_Login_UnknownUser(t *testing.T) {
	svc, users, _ := newSessionService(t)

	users.EXPECT().GetByUsername(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	_, _, err := svc.Login(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestSessionService_Login_EmptyUsername(t *testing.T) {
	svc, _, _ := newSessionService(t)

	_, _, err := svc.Login(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSessionService_Resolve(t *testing.T) {
	svc, _, store := newSessionService(t)

	store.EXPECT().Get(mock.Anything, "good").Return(domain.CurrentUser{ID: "u1", Name: "Siti"}, nil)
	store.EXPECT().Get(mock.Anything, "expired").Return(domain.CurrentUser{}, domain.ErrSessionNotFound)
	store.EXPECT().Get(mock.Anything, "broken").Return(domain.CurrentUser{}, errors.New("redis down"))

	s, err := svc.Resolve(context.Background(), "good")
	require.NoError(t, err)
	user, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "Siti", user.Name)

	s, err = svc.Resolve(context.Background(), "expired")
	require.NoError(t, err)
	_, ok = s.User()
	assert.False(t, ok)

	s, err = svc.Resolve(context.Background(), "broken")
	require.Error(t, err)
	_, ok = s.User()
	assert.False(t, ok)

	s, err = svc.Resolve(context.Background(), "")
	require.NoError(t, err)
	_, ok = s.User()
	assert.False(t, ok)
}

func TestSessionService_Logout(t *testing.T) {
	svc, _, store := newSessionService(t)

	store.EXPECT().Delete(mock.Anything, "tok").Return(nil)

	require.NoError(t, svc.Logout(context.Background(), "tok"))
	require.NoError(t, svc.Logout(context.Background(), ""))
}
