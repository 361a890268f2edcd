package eventapi

import "time"

// User is an Eventify account.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Event is a scheduled event with its invitations.
type Event struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Date          string     `json:"date"`
	Location      string     `json:"location"`
	CreatedBy     *User      `json:"createdBy,omitempty"`
	InvitedEmails []string   `json:"invitedEmails"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// Result is the common mutation payload.
type Result struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// UserResult is returned by CreateUser.
type UserResult struct {
	Result
	User *User `json:"user"`
}

// LoginResult is returned by Login.
type LoginResult struct {
	Result
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// EventResult is returned by event mutations.
type EventResult struct {
	Result
	Event *Event `json:"event"`
}

type CreateUserInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type VerifyEmailInput struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type ForgotPasswordInput struct {
	Email string `json:"email"`
}

type ResetPasswordInput struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// EventInput creates or updates an event. Date is an ISO 8601 timestamp.
type EventInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Location    string `json:"location"`
}

type InviteParticipantsInput struct {
	EventID string   `json:"eventId"`
	Emails  []string `json:"emails"`
}
