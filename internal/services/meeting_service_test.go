package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewbase-dev/crewbase/internal/apperr"
	"github.com/crewbase-dev/crewbase/internal/models"
)

func TestMeetingCreateValidatesWindow(t *testing.T) {
	service := NewMeetingService(taskServiceDB(t))
	ctx := context.Background()

	now := time.Now()

	_, err := service.Create(ctx, models.Meeting{
		OrganisationBy: 1,
		StartAt:        now.Add(time.Hour),
		EndAt:          now,
	})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = service.Create(ctx, models.Meeting{
		OrganisationBy: 1,
		StartAt:        now,
		EndAt:          now,
	})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	meeting, err := service.Create(ctx, models.Meeting{
		OrganisationBy: 1,
		StartAt:        now,
		EndAt:          now.Add(time.Hour),
	})
	require.NoError(t, err)
	require.NotZero(t, meeting.ID)
}

func TestMeetingUpdateAndDelete(t *testing.T) {
	service := NewMeetingService(taskServiceDB(t))
	ctx := context.Background()

	now := time.Now()
	meeting, err := service.Create(ctx, models.Meeting{
		OrganisationBy: 1,
		StartAt:        now,
		EndAt:          now.Add(time.Hour),
	})
	require.NoError(t, err)

	organiser := uint(2)
	require.NoError(t, service.Update(ctx, meeting.ID, models.MeetingValues{OrganisationBy: &organiser}))

	updated, err := service.Get(ctx, meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(2), updated.OrganisationBy)

	err = service.Update(ctx, 9999, models.MeetingValues{OrganisationBy: &organiser})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	require.NoError(t, service.Delete(ctx, meeting.ID))

	_, err = service.Get(ctx, meeting.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestParticipantLifecycle(t *testing.T) {
	service := NewMeetingService(taskServiceDB(t))
	ctx := context.Background()

	participant, err := service.CreateParticipant(ctx, 42)
	require.NoError(t, err)
	require.NotZero(t, participant.ID)

	found, err := service.GetParticipant(ctx, participant.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(42), found.UserID)

	all, err := service.AllParticipants(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, service.DeleteParticipant(ctx, participant.ID))

	err = service.DeleteParticipant(ctx, participant.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
