package candidate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentgate/talentgate/pkg/kernel"
)

func newTestCandidate() *Candidate {
	return New(
		kernel.NewCandidateID("cand-1"),
		kernel.Email("jane@example.com"),
		kernel.Phone("+44 20 7946 0958"),
		kernel.FirstName("Jane"),
		kernel.LastName("Doe"),
	)
}

func TestNew(t *testing.T) {
	c := newTestCandidate()

	assert.Equal(t, CandidateStatusActive, c.Status)
	assert.Nil(t, c.ArchivedAt)
	assert.False(t, c.CreatedAt.IsZero())
	assert.Equal(t, c.CreatedAt, c.UpdatedAt)
}

func TestFullName(t *testing.T) {
	c := newTestCandidate()

	assert.Equal(t, "Jane Doe", c.FullName())
}

func TestCanApplyToJob(t *testing.T) {
	c := newTestCandidate()
	assert.True(t, c.CanApplyToJob())

	c.Deactivate()
	assert.False(t, c.CanApplyToJob())

	c.Activate()
	require.NoError(t, c.Archive())
	assert.False(t, c.CanApplyToJob())
}

func TestArchiveUnarchive(t *testing.T) {
	c := newTestCandidate()

	require.NoError(t, c.Archive())
	assert.True(t, c.IsArchived())
	assert.NotNil(t, c.ArchivedAt)
	assert.Error(t, c.Archive())

	require.NoError(t, c.Unarchive())
	assert.True(t, c.IsActive())
	assert.Nil(t, c.ArchivedAt)
	assert.Error(t, c.Unarchive())
}

func TestDaysSinceRegistration(t *testing.T) {
	c := newTestCandidate()
	c.CreatedAt = time.Now().AddDate(0, 0, -10)

	assert.Equal(t, 10, c.DaysSinceRegistration())
}
