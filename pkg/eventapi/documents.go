package eventapi

const userFields = `id email firstName lastName`

const eventFields = `
	id
	title
	description
	date
	location
	createdBy { ` + userFields + ` }
	invitedEmails
	createdAt
	updatedAt`

const (
	createUserMutation = `mutation CreateUser($input: CreateUserInput!) {
	createUser(input: $input) { message success user { ` + userFields + ` } }
}`

	verifyEmailMutation = `mutation VerifyEmail($input: VerifyEmailInput!) {
	verifyEmail(input: $input) { message success }
}`

	loginMutation = `mutation Login($input: LoginInput!) {
	login(input: $input) { message success token user { ` + userFields + ` } }
}`

	logoutMutation = `mutation Logout {
	logout { message success }
}`

	changePasswordMutation = `mutation ChangePassword($input: ChangePasswordInput!) {
	changePassword(input: $input) { message success }
}`

	forgotPasswordMutation = `mutation ForgotPassword($input: ForgotPasswordInput!) {
	forgotPassword(input: $input) { message success }
}`

	resetPasswordMutation = `mutation ResetPassword($input: ResetPasswordInput!) {
	resetPassword(input: $input) { message success }
}`

	createEventMutation = `mutation CreateEvent($input: EventInput!) {
	createEvent(input: $input) { message success event { id title description date location invitedEmails createdAt } }
}`

	updateEventMutation = `mutation UpdateEvent($id: ID!, $input: UpdateEventInput!) {
	updateEvent(id: $id, input: $input) { message success event { id title description date location invitedEmails updatedAt } }
}`

	deleteEventMutation = `mutation DeleteEvent($id: ID!) {
	deleteEvent(id: $id) { message success }
}`

	inviteParticipantsMutation = `mutation InviteParticipants($input: InviteParticipantsInput!) {
	inviteParticipants(input: $input) { message success event { id invitedEmails } }
}`

	currentUserQuery = `query GetCurrentUser {
	currentUser { ` + userFields + ` }
}`

	myEventsQuery = `query GetMyEvents {
	myEvents {` + eventFields + `
	}
}`

	invitedEventsQuery = `query GetInvitedEvents {
	invitedEvents {` + eventFields + `
	}
}`

	eventQuery = `query GetEventById($id: ID!) {
	event(id: $id) {` + eventFields + `
	}
}`
)
