package model

import "time"

// Package model contains the submission records persisted by the funnels.
// These are pure domain models with no database-specific dependencies or
// tags beyond JSON serialization; they can cross layers freely.

// Lead is a project/bid request from a prospective customer.
type Lead struct {
	ID               string    `json:"id"`
	CompanyName      string    `json:"company_name"`
	ContactName      string    `json:"contact_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	CityState        string    `json:"city_state"`
	ServiceNeeded    string    `json:"service_needed"`
	TargetStartDate  string    `json:"target_date"`
	EstimatedFootage string    `json:"estimated_footage"`
	Notes            string    `json:"notes"`
	FileURLs         []string  `json:"file_urls"`
	CreatedAt        time.Time `json:"created_at"`
}

// Application is a job application from a field operator candidate.
// Status is free-form (submitted, under_review, hired, ...) and only ever
// changed by a manual back-office process, never by this service.
type Application struct {
	ID                  string    `json:"id"`
	FirstName           string    `json:"first_name"`
	LastName            string    `json:"last_name"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	Position            string    `json:"position"`
	YearsExperience     string    `json:"years_experience"`
	HasCDL              string    `json:"has_cdl"`
	EquipmentExperience string    `json:"equipment_experience"`
	ResumeURL           string    `json:"resume_url"`
	TrackingNumber      string    `json:"tracking_number"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	StatusUpdatedAt     time.Time `json:"status_updated_at"`
}

// Referral is a candidate referred by someone in the industry.
type Referral struct {
	ID             string    `json:"id"`
	ReferrerName   string    `json:"referrer_name"`
	ReferrerEmail  string    `json:"referrer_email"`
	ReferrerPhone  string    `json:"referrer_phone"`
	CandidateName  string    `json:"candidate_name"`
	CandidateEmail string    `json:"candidate_email"`
	CandidatePhone string    `json:"candidate_phone"`
	Position       string    `json:"position"`
	Notes          string    `json:"notes"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// TalentPoolEntry is a job-alert signup.
type TalentPoolEntry struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// StatusSubmitted is the initial lifecycle status for applications
// and referrals.
const StatusSubmitted = "submitted"
