package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/crewbase-dev/crewbase/internal/apperr"
	"github.com/crewbase-dev/crewbase/internal/models"
	"github.com/crewbase-dev/crewbase/internal/repository"
)

var (
	errMeetingNotFound     = apperr.NotFound("meeting not found")
	errParticipantNotFound = apperr.NotFound("participant not found")
)

type MeetingService struct {
	meetings     *repository.Repository[models.Meeting]
	participants *repository.Repository[models.Participant]
}

func NewMeetingService(database *gorm.DB) *MeetingService {
	return &MeetingService{
		meetings:     repository.New[models.Meeting](database),
		participants: repository.New[models.Participant](database),
	}
}

func (s *MeetingService) Create(ctx context.Context, meeting models.Meeting) (*models.Meeting, error) {
	if !meeting.EndAt.After(meeting.StartAt) {
		return nil, apperr.Validation("meeting must end after it starts")
	}

	if err := s.meetings.Insert(ctx, &meeting); err != nil {
		return nil, err
	}

	return &meeting, nil
}

func (s *MeetingService) Update(ctx context.Context, meetingID uint, values models.MeetingValues) error {
	rows, err := s.meetings.Update(ctx, models.MeetingFilter{ID: &meetingID}, values)
	return guard(rows, err, errMeetingNotFound)
}

func (s *MeetingService) Delete(ctx context.Context, meetingID uint) error {
	rows, err := s.meetings.Delete(ctx, models.MeetingFilter{ID: &meetingID})
	return guard(rows, err, errMeetingNotFound)
}

func (s *MeetingService) Get(ctx context.Context, meetingID uint) (*models.Meeting, error) {
	meeting, err := s.meetings.FindByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, errMeetingNotFound
	}
	return meeting, nil
}

func (s *MeetingService) All(ctx context.Context) ([]models.Meeting, error) {
	return s.meetings.FindAll(ctx, nil)
}

func (s *MeetingService) CreateParticipant(ctx context.Context, userID uint) (*models.Participant, error) {
	participant := models.Participant{UserID: userID}
	if err := s.participants.Insert(ctx, &participant); err != nil {
		return nil, err
	}
	return &participant, nil
}

func (s *MeetingService) DeleteParticipant(ctx context.Context, participantID uint) error {
	rows, err := s.participants.Delete(ctx, models.ParticipantFilter{ID: &participantID})
	return guard(rows, err, errParticipantNotFound)
}

func (s *MeetingService) GetParticipant(ctx context.Context, participantID uint) (*models.Participant, error) {
	participant, err := s.participants.FindByID(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, errParticipantNotFound
	}
	return participant, nil
}

func (s *MeetingService) AllParticipants(ctx context.Context) ([]models.Participant, error) {
	return s.participants.FindAll(ctx, nil)
}
