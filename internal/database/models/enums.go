package models

// UserRole is the account type of a user. It is a closed enum: every user is
// exactly one of coach or player.
type UserRole string

const (
	UserRoleCoach  UserRole = "coach"
	UserRolePlayer UserRole = "player"
)

// InviteStatus tracks the lifecycle of a team invite
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusDeclined InviteStatus = "declined"
)

// NotificationKind classifies notifications delivered to users
type NotificationKind string

const (
	NotificationKindPlayerJoined  NotificationKind = "player_joined"
	NotificationKindInviteCreated NotificationKind = "invite_created"
	NotificationKindNewFeedback   NotificationKind = "new_feedback"
	NotificationKindNewComment    NotificationKind = "new_comment"
)
