package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/digitopia/membership-backend-go/internal/domain/invitation"
)

// InvitationJobs contains invitation-related cron jobs
type InvitationJobs struct {
	invitationService invitation.InvitationService
	sweepSchedule     string
}

// NewInvitationJobs creates invitation cron jobs
func NewInvitationJobs(invitationService invitation.InvitationService, sweepSchedule string) *InvitationJobs {
	return &InvitationJobs{
		invitationService: invitationService,
		sweepSchedule:     sweepSchedule,
	}
}

// RegisterJobs registers all invitation-related cron jobs
func (j *InvitationJobs) RegisterJobs(scheduler *Scheduler) error {
	// Sweep stale PENDING invitations to EXPIRED once a day
	return scheduler.AddJob(
		"expire_stale_invitations",
		j.sweepSchedule,
		j.ExpireStaleInvitations,
	)
}

// ExpireStaleInvitations forces PENDING invitations past the retention
// window to EXPIRED. The sweep is idempotent, so a run cut short simply
// resumes on the next tick.
func (j *InvitationJobs) ExpireStaleInvitations(ctx context.Context) error {
	count, err := j.invitationService.ExpireStale(ctx, time.Now().UTC())
	if err != nil {
		return err
	}
	if count > 0 {
		slog.Info("Expired stale invitations", "count", count)
	}
	return nil
}
