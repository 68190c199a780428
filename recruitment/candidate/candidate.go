package candidate

import (
	"fmt"
	"time"

	"github.com/talentgate/talentgate/pkg/kernel"
)

// CandidateStatus is the account lifecycle state.
type CandidateStatus string

const (
	CandidateStatusActive   CandidateStatus = "ACTIVE"
	CandidateStatusInactive CandidateStatus = "INACTIVE"
	CandidateStatusArchived CandidateStatus = "ARCHIVED"
)

// Candidate is a job seeker's account record. The structured resume data
// lives on the profile aggregate; this record only carries identity and
// lifecycle state.
type Candidate struct {
	ID         kernel.CandidateID `db:"id" json:"id"`
	Email      kernel.Email       `db:"email" json:"email"`
	Phone      kernel.Phone       `db:"phone" json:"phone"`
	FirstName  kernel.FirstName   `db:"first_name" json:"first_name"`
	LastName   kernel.LastName    `db:"last_name" json:"last_name"`
	Status     CandidateStatus    `db:"status" json:"status"`
	ArchivedAt *time.Time         `db:"archived_at" json:"archived_at,omitempty"`
	CreatedAt  time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `db:"updated_at" json:"updated_at"`
}

// New registers a candidate in the active state.
func New(id kernel.CandidateID, email kernel.Email, phone kernel.Phone, firstName kernel.FirstName, lastName kernel.LastName) *Candidate {
	now := time.Now()
	return &Candidate{
		ID:        id,
		Email:     email,
		Phone:     phone,
		FirstName: firstName,
		LastName:  lastName,
		Status:    CandidateStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (c *Candidate) IsActive() bool {
	return c.Status == CandidateStatusActive
}

func (c *Candidate) IsArchived() bool {
	return c.Status == CandidateStatusArchived
}

// CanApplyToJob reports whether the candidate may submit applications.
func (c *Candidate) CanApplyToJob() bool {
	return c.IsActive() && !c.IsArchived()
}

func (c *Candidate) FullName() string {
	return fmt.Sprintf("%s %s", c.FirstName, c.LastName)
}

// DaysSinceRegistration returns whole days elapsed since the account was
// created.
func (c *Candidate) DaysSinceRegistration() int {
	return int(time.Since(c.CreatedAt).Hours() / 24)
}

// Archive takes the candidate out of every listing and blocks applications.
func (c *Candidate) Archive() error {
	if c.IsArchived() {
		return ErrCandidateAlreadyArchived()
	}

	now := time.Now()
	c.Status = CandidateStatusArchived
	c.ArchivedAt = &now
	c.UpdatedAt = now
	return nil
}

// Unarchive restores an archived candidate to the active state.
func (c *Candidate) Unarchive() error {
	if !c.IsArchived() {
		return ErrCandidateNotArchived()
	}

	c.Status = CandidateStatusActive
	c.ArchivedAt = nil
	c.UpdatedAt = time.Now()
	return nil
}

func (c *Candidate) Deactivate() {
	c.Status = CandidateStatusInactive
	c.UpdatedAt = time.Now()
}

func (c *Candidate) Activate() {
	c.Status = CandidateStatusActive
	c.UpdatedAt = time.Now()
}
