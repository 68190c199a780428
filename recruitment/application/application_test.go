package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentgate/talentgate/pkg/kernel"
)

func newApplication(status ApplicationStatus) *Application {
	return &Application{
		ID:          kernel.ApplicationID("app-1"),
		JobID:       kernel.JobID("job-1"),
		CandidateID: kernel.CandidateID("cand-1"),
		Status:      status,
	}
}

func TestCanUpdateStatus(t *testing.T) {
	cases := []struct {
		from    ApplicationStatus
		to      ApplicationStatus
		allowed bool
	}{
		{ApplicationStatusSubmitted, ApplicationStatusUnderReview, true},
		{ApplicationStatusSubmitted, ApplicationStatusRejected, true},
		{ApplicationStatusSubmitted, ApplicationStatusApproved, false},
		{ApplicationStatusSubmitted, ApplicationStatusInterviewing, false},
		{ApplicationStatusUnderReview, ApplicationStatusShortlisted, true},
		{ApplicationStatusUnderReview, ApplicationStatusSubmitted, false},
		{ApplicationStatusShortlisted, ApplicationStatusInterviewing, true},
		{ApplicationStatusInterviewing, ApplicationStatusApproved, true},
		{ApplicationStatusApproved, ApplicationStatusRejected, false},
		{ApplicationStatusRejected, ApplicationStatusUnderReview, false},
		{ApplicationStatusWithdrawn, ApplicationStatusSubmitted, false},
		{ApplicationStatusArchived, ApplicationStatusSubmitted, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			app := newApplication(tc.from)
			assert.Equal(t, tc.allowed, app.CanUpdateStatus(tc.to))
		})
	}
}

func TestUpdateStatus_RecordsTimestamps(t *testing.T) {
	app := newApplication(ApplicationStatusSubmitted)

	require.NoError(t, app.UpdateStatus(ApplicationStatusUnderReview))

	assert.Equal(t, ApplicationStatusUnderReview, app.Status)
	require.NotNil(t, app.StatusChangedAt)
	assert.False(t, app.UpdatedAt.IsZero())
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	app := newApplication(ApplicationStatusSubmitted)

	err := app.UpdateStatus(ApplicationStatusApproved)

	assert.Error(t, err)
	assert.Equal(t, ApplicationStatusSubmitted, app.Status)
}

func TestWithdraw(t *testing.T) {
	app := newApplication(ApplicationStatusUnderReview)
	require.NoError(t, app.Withdraw())
	assert.Equal(t, ApplicationStatusWithdrawn, app.Status)

	approved := newApplication(ApplicationStatusApproved)
	assert.Error(t, approved.Withdraw())

	rejected := newApplication(ApplicationStatusRejected)
	assert.Error(t, rejected.Withdraw())
}

func TestArchiveUnarchive(t *testing.T) {
	app := newApplication(ApplicationStatusSubmitted)

	require.NoError(t, app.Archive())
	assert.True(t, app.IsArchived())
	assert.NotNil(t, app.ArchivedAt)
	assert.Error(t, app.Archive())

	require.NoError(t, app.Unarchive())
	assert.Equal(t, ApplicationStatusSubmitted, app.Status)
	assert.Nil(t, app.ArchivedAt)
	assert.Error(t, app.Unarchive())
}

func TestIsActive(t *testing.T) {
	assert.True(t, newApplication(ApplicationStatusSubmitted).IsActive())
	assert.True(t, newApplication(ApplicationStatusInterviewing).IsActive())
	assert.False(t, newApplication(ApplicationStatusRejected).IsActive())
	assert.False(t, newApplication(ApplicationStatusWithdrawn).IsActive())
	assert.False(t, newApplication(ApplicationStatusArchived).IsActive())
}
