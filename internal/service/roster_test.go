package service_test

import (
	"testing"

	"team-feedback-backend/internal/database/models"
	apperrors "team-feedback-backend/internal/errors"
	"team-feedback-backend/internal/repository/memory"
	"team-feedback-backend/internal/service"
	"team-feedback-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// RosterServiceTestSuite exercises the join and team deletion workflows over
// the in-memory store.
type RosterServiceTestSuite struct {
	suite.Suite
	store   *memory.Store
	service *service.RosterService

	team    *models.Team
	coach   *models.User
	game    *models.Game
	players []playerFixture
}

func (s *RosterServiceTestSuite) SetupTest() {
	s.store = memory.NewStore()
	s.service = service.NewRosterService(
		s.store.Teams(),
		s.store.Players(),
		s.store.Users(),
		s.store.Games(),
		s.store.KeyMoments(),
		s.store.Transcripts(),
		s.store.FullGameRecordings(),
		s.store.Invites(),
		s.store.Notifications(),
		storage.Noop{},
		validator.New(),
	)

	s.team = &models.Team{Name: "Falcons", Sport: "soccer", AccessCode: "FLCN42"}
	s.Require().NoError(s.store.Teams().Create(s.team))

	s.coach = &models.User{Email: "coach@test.com", FirstName: "Casey", LastName: "Hale", Role: models.UserRoleCoach}
	s.Require().NoError(s.store.Users().Create(s.coach))
	s.Require().NoError(s.store.Teams().AddCoach(s.team.ID, s.coach.ID))

	s.players = nil
	for _, first := range []string{"Ana", "Ben"} {
		user := &models.User{Email: first + "@test.com", FirstName: first, LastName: "Test", Role: models.UserRolePlayer}
		s.Require().NoError(s.store.Users().Create(user))
		player := &models.Player{UserID: user.ID}
		s.Require().NoError(s.store.Players().Create(player))
		s.Require().NoError(s.store.Players().Enroll(&models.Enrollment{
			TeamID:   s.team.ID,
			PlayerID: player.ID,
		}))
		s.players = append(s.players, playerFixture{user: user, player: player})
	}

	s.game = &models.Game{TeamID: s.team.ID, Title: "Season opener"}
	s.Require().NoError(s.store.Games().Create(s.game))
}

// newPlayer registers a player-role user with a profile, not yet enrolled
func (s *RosterServiceTestSuite) newPlayer(first string) playerFixture {
	user := &models.User{Email: first + "@test.com", FirstName: first, LastName: "New", Role: models.UserRolePlayer}
	s.Require().NoError(s.store.Users().Create(user))
	player := &models.Player{UserID: user.ID}
	s.Require().NoError(s.store.Players().Create(player))
	return playerFixture{user: user, player: player}
}

func (s *RosterServiceTestSuite) addMoment(frameStart float64, recipients ...uuid.UUID) *models.KeyMoment {
	moment := &models.KeyMoment{
		GameID:      s.game.ID,
		FrameStart:  frameStart,
		FrameEnd:    frameStart + 10,
		FeedbackFor: models.UUIDList(recipients),
	}
	s.Require().NoError(s.store.KeyMoments().Create(moment))
	return moment
}

func (s *RosterServiceTestSuite) TestJoinExtendsWholeTeamMoments() {
	wholeTeam := s.addMoment(10, s.players[0].player.ID, s.players[1].player.ID)
	targeted := s.addMoment(20, s.players[0].player.ID)

	joiner := s.newPlayer("Cal")
	resp, err := s.service.JoinTeam(&service.JoinTeamRequest{AccessCode: "FLCN42", Nickname: "Flash", Jersey: "11"}, joiner.user.ID)
	s.Require().NoError(err)
	s.Equal(s.team.ID, resp.ID)

	// Whole-team moment now covers the grown roster
	got, err := s.store.KeyMoments().GetByID(wholeTeam.ID)
	s.Require().NoError(err)
	s.Require().Len(got.FeedbackFor, 3)
	s.True(got.FeedbackFor.Contains(joiner.player.ID))

	// Targeted moment is untouched
	got, err = s.store.KeyMoments().GetByID(targeted.ID)
	s.Require().NoError(err)
	s.Require().Len(got.FeedbackFor, 1)
	s.False(got.FeedbackFor.Contains(joiner.player.ID))

	// Enrollment carries the join payload
	enrollment, err := s.store.Players().GetEnrollment(joiner.player.ID, s.team.ID)
	s.Require().NoError(err)
	s.Equal("Flash", enrollment.Nickname)
	s.Equal("11", enrollment.Jersey)

	size, err := s.store.Teams().GetRosterSize(s.team.ID)
	s.Require().NoError(err)
	s.Equal(3, size)
}

func (s *RosterServiceTestSuite) TestJoinNotifiesCoaches() {
	joiner := s.newPlayer("Cal")
	_, err := s.service.JoinTeam(&service.JoinTeamRequest{AccessCode: "FLCN42"}, joiner.user.ID)
	s.Require().NoError(err)

	notifications, total, err := s.store.Notifications().GetByUserID(s.coach.ID, 10, 0)
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(notifications, 1)
	s.Equal(models.NotificationKindPlayerJoined, notifications[0].Kind)
	s.Contains(notifications[0].Message, "Cal")
}

func (s *RosterServiceTestSuite) TestJoinInvalidAccessCode() {
	joiner := s.newPlayer("Cal")
	_, err := s.service.JoinTeam(&service.JoinTeamRequest{AccessCode: "WRONG1"}, joiner.user.ID)
	s.Require().ErrorIs(err, apperrors.ErrInvalidAccessCode)
}

func (s *RosterServiceTestSuite) TestJoinRejectsCoach() {
	_, err := s.service.JoinTeam(&service.JoinTeamRequest{AccessCode: "FLCN42"}, s.coach.ID)
	s.Require().Error(err)
	s.True(apperrors.IsAuthorization(err))
}

func (s *RosterServiceTestSuite) TestDuplicateJoinLeavesStateUnchanged() {
	wholeTeam := s.addMoment(10, s.players[0].player.ID, s.players[1].player.ID)

	_, err := s.service.JoinTeam(&service.JoinTeamRequest{AccessCode: "FLCN42"}, s.players[0].user.ID)
	s.Require().ErrorIs(err, apperrors.ErrPlayerAlreadyEnrolled)

	// Roster and feedback recipients are exactly as before
	size, err := s.store.Teams().GetRosterSize(s.team.ID)
	s.Require().NoError(err)
	s.Equal(2, size)

	got, err := s.store.KeyMoments().GetByID(wholeTeam.ID)
	s.Require().NoError(err)
	s.Len(got.FeedbackFor, 2)
}

func (s *RosterServiceTestSuite) TestDeleteTeamCascades() {
	moment := s.addMoment(10, s.players[0].player.ID)
	transcript := &models.Transcript{KeyMomentID: moment.ID, GameID: s.game.ID, Text: "clip", Confidence: 0.8}
	s.Require().NoError(s.store.Transcripts().Create(transcript))
	s.Require().NoError(s.store.FullGameRecordings().Create(&models.FullGameRecording{GameID: s.game.ID}))
	s.Require().NoError(s.store.Invites().Create(&models.Invite{TeamID: s.team.ID, Email: "new@test.com", Status: models.InviteStatusPending}))

	s.Require().NoError(s.service.DeleteTeam(s.team.ID))

	_, err := s.store.Teams().GetByID(s.team.ID)
	s.Require().Error(err)

	_, err = s.store.Games().GetByID(s.game.ID)
	s.Require().Error(err)

	_, err = s.store.KeyMoments().GetByID(moment.ID)
	s.Require().Error(err)

	_, err = s.store.Transcripts().GetByID(transcript.ID)
	s.Require().Error(err)

	_, err = s.store.FullGameRecordings().GetByGameID(s.game.ID)
	s.Require().Error(err)

	invites, err := s.store.Invites().GetByTeamID(s.team.ID)
	s.Require().NoError(err)
	s.Empty(invites)

	enrollments, err := s.store.Players().GetEnrollmentsByTeamID(s.team.ID)
	s.Require().NoError(err)
	s.Empty(enrollments)

	coachIDs, err := s.store.Teams().GetCoachIDs(s.team.ID)
	s.Require().NoError(err)
	s.Empty(coachIDs)

	// Player profiles survive the team deletion
	_, err = s.store.Players().GetByID(s.players[0].player.ID)
	s.Require().NoError(err)
}

func (s *RosterServiceTestSuite) TestDeleteTeamNotFound() {
	err := s.service.DeleteTeam(uuid.New())
	s.Require().ErrorIs(err, apperrors.ErrTeamNotFound)
}

func TestRosterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RosterServiceTestSuite))
}
