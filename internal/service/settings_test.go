package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/meleongg/flashcard-backend/internal/models"
	mock_service "github.com/meleongg/flashcard-backend/internal/service/mock"
	"github.com/meleongg/flashcard-backend/internal/storage/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSettingsServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockSettingsRI)) *SettingsS {
	t.Helper()

	repo := mock_service.NewMockSettingsRI(ctrl)
	if setupMock != nil {
		setupMock(repo)
	}

	return NewSettingsService(repo, cache.NewCache(), zap.NewNop())
}

func TestSettingsS_Settings(t *testing.T) {
	t.Parallel()

	stored := models.UserSettings{
		UserID:            "user-1",
		DefaultSourceLang: "en",
		DefaultTargetLang: "es",
		DefaultQuizLength: 20,
	}

	tests := []struct {
		name    string
		f       func(*mock_service.MockSettingsRI)
		want    models.UserSettings
		wantErr bool
	}{
		{
			name: "existing row",
			f: func(mr *mock_service.MockSettingsRI) {
				mr.EXPECT().UserSettings(gomock.Any(), "user-1").Return(stored, nil)
			},
			want: stored,
		},
		{
			name: "first access materializes defaults",
			f: func(mr *mock_service.MockSettingsRI) {
				mr.EXPECT().UserSettings(gomock.Any(), "user-1").
					Return(models.UserSettings{}, models.ErrNotFound)
				mr.EXPECT().CreateUserSettings(gomock.Any(), models.DefaultSettings("user-1")).
					Return(nil)
			},
			want: models.DefaultSettings("user-1"),
		},
		{
			name: "store failure surfaces",
			f: func(mr *mock_service.MockSettingsRI) {
				mr.EXPECT().UserSettings(gomock.Any(), "user-1").
					Return(models.UserSettings{}, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := newSettingsServiceMock(t, ctrl, tt.f)

			got, err := s.Settings(context.Background(), "user-1")
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// Second read is served from the cache, no further repo calls.
			again, err := s.Settings(context.Background(), "user-1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, again)
		})
	}
}

func TestSettingsS_UpdateSettings(t *testing.T) {
	t.Parallel()

	length := 25
	badLength := 0

	tests := []struct {
		name    string
		upd     models.UserSettingsUpdate
		f       func(*mock_service.MockSettingsRI)
		wantErr bool
	}{
		{
			name: "success re-reads after update",
			upd:  models.UserSettingsUpdate{DefaultQuizLength: &length},
			f: func(mr *mock_service.MockSettingsRI) {
				stored := models.DefaultSettings("user-1")
				updated := stored
				updated.DefaultQuizLength = length

				gomock.InOrder(
					mr.EXPECT().UserSettings(gomock.Any(), "user-1").Return(stored, nil),
					mr.EXPECT().UpdateUserSettings(gomock.Any(), "user-1", gomock.Any()).Return(nil),
					mr.EXPECT().UserSettings(gomock.Any(), "user-1").Return(updated, nil),
				)
			},
		},
		{
			name:    "validation rejects out-of-range quiz length",
			upd:     models.UserSettingsUpdate{DefaultQuizLength: &badLength},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := newSettingsServiceMock(t, ctrl, tt.f)

			got, err := s.UpdateSettings(context.Background(), "user-1", tt.upd)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, length, got.DefaultQuizLength)
		})
	}
}
