package service

import "context"

// Submissions is the transport-facing surface of the orchestrators.
type Submissions interface {
	SubmitLead(ctx context.Context, in LeadInput) SubmitResult
	SubmitApplication(ctx context.Context, in ApplicationInput) ApplicationResult
	SubmitReferral(ctx context.Context, in ReferralInput) SubmitResult
	SubscribeTalentPool(ctx context.Context, in TalentPoolInput) SubmitResult
	CheckApplicationStatus(ctx context.Context, in StatusInput) StatusResult
}

var _ Submissions = (*Service)(nil)
