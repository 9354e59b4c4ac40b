package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"path"
)

// HTML composition for the five transactional emails. Styling follows the
// site's dark terminal look; all user-supplied values pass through
// html/template escaping.

// ServiceLabels maps lead service codes to display names.
var ServiceLabels = map[string]string{
	"jetting":   "Fiber Jetting",
	"splicing":  "Precision Splicing",
	"both":      "Jetting + Splicing",
	"emergency": "Emergency Restoration",
}

// PositionLabels maps careers position codes to display names.
var PositionLabels = map[string]string{
	"jetting-operator":  "Fiber Jetting Operator",
	"precision-splicer": "Precision Splicer",
	"osp-laborer":       "OSP Laborer / CDL Driver",
}

func serviceLabel(code string) string {
	if l, ok := ServiceLabels[code]; ok {
		return l
	}
	return code
}

func positionLabel(code string) string {
	if l, ok := PositionLabels[code]; ok {
		return l
	}
	return code
}

// LeadPayload carries the fields rendered into lead emails.
type LeadPayload struct {
	CompanyName      string
	ContactName      string
	Email            string
	Phone            string
	CityState        string
	ServiceNeeded    string
	EstimatedFootage string
	TargetStartDate  string
	Notes            string
	FileURLs         []string
}

// ApplicationPayload carries the fields rendered into application emails.
type ApplicationPayload struct {
	FullName            string
	Email               string
	Phone               string
	Position            string
	YearsExperience     string
	HasCDL              string
	EquipmentExperience string
	TrackingNumber      string
}

// ReferralPayload carries the fields rendered into referral emails.
type ReferralPayload struct {
	ReferrerName   string
	ReferrerEmail  string
	ReferrerPhone  string
	CandidateName  string
	CandidateEmail string
	CandidatePhone string
	Position       string
	Notes          string
}

const wrapOpen = `<div style="font-family:'Courier New',Courier,monospace;background:#050505;color:#e0e0e0;padding:32px;max-width:600px;">`

const footer = `<p style="color:#333;font-size:11px;margin-top:32px;border-top:1px solid #1a1a1a;padding-top:16px;">Fiber Guys LLC | Automated Dispatch Notification</p></div>`

var (
	leadNotificationTmpl = template.Must(template.New("lead-notification").Parse(wrapOpen + `
<div style="border-left:3px solid #2563EB;padding-left:16px;margin-bottom:24px;">
<h1 style="color:#fff;font-size:20px;margin:0;">New Project Review Request</h1>
<p style="color:#2563EB;font-size:12px;text-transform:uppercase;letter-spacing:0.1em;margin:4px 0 0;">{{.ServiceLabel}}</p>
</div>
<table style="width:100%;border-collapse:collapse;font-size:14px;">
<tr><td style="padding:8px 0;color:#666;width:140px;">Company</td><td style="padding:8px 0;color:#fff;">{{.Lead.CompanyName}}</td></tr>
<tr><td style="padding:8px 0;color:#666;">Contact</td><td style="padding:8px 0;color:#fff;">{{.Lead.ContactName}}</td></tr>
<tr><td style="padding:8px 0;color:#666;">Email</td><td style="padding:8px 0;"><a href="mailto:{{.Lead.Email}}" style="color:#60A5FA;">{{.Lead.Email}}</a></td></tr>
<tr><td style="padding:8px 0;color:#666;">Phone</td><td style="padding:8px 0;"><a href="tel:{{.Lead.Phone}}" style="color:#60A5FA;">{{.Lead.Phone}}</a></td></tr>
<tr><td style="padding:8px 0;color:#666;">Location</td><td style="padding:8px 0;color:#fff;">{{or .Lead.CityState "—"}}</td></tr>
<tr><td style="padding:8px 0;color:#666;">Est. Footage</td><td style="padding:8px 0;color:#fff;">{{or .Lead.EstimatedFootage "—"}}</td></tr>
<tr><td style="padding:8px 0;color:#666;">Target Date</td><td style="padding:8px 0;color:#fff;">{{or .Lead.TargetStartDate "—"}}</td></tr>
</table>
{{if .Lead.Notes}}<div style="margin-top:24px;padding:16px;background:#0a0a0a;border:1px solid #1a1a1a;border-radius:4px;"><p style="color:#666;font-size:11px;text-transform:uppercase;letter-spacing:0.1em;margin:0 0 8px;">Notes</p><p style="color:#ccc;margin:0;white-space:pre-wrap;">{{.Lead.Notes}}</p></div>{{end}}
{{if .Files}}<h3 style="color:#2563EB;margin-top:24px;">Attached Prints</h3><ul>{{range .Files}}<li><a href="{{.URL}}" style="color:#60A5FA;">{{.Name}}</a></li>{{end}}</ul>{{else}}<p style="color:#666;">No files attached</p>{{end}}
` + footer))

	leadConfirmationTmpl = template.Must(template.New("lead-confirmation").Parse(wrapOpen + `
<div style="border-left:3px solid #2563EB;padding-left:16px;margin-bottom:24px;">
<h1 style="color:#fff;font-size:20px;margin:0;">Project Review Initiated</h1>
<p style="color:#2563EB;font-size:12px;text-transform:uppercase;letter-spacing:0.1em;margin:4px 0 0;">Fiber Guys LLC</p>
</div>
<p style="color:#999;font-size:14px;line-height:1.6;">{{.Lead.ContactName}} — we received your {{.ServiceLabel}} request{{if .Lead.TargetStartDate}} targeting {{.Lead.TargetStartDate}}{{end}}. A project lead will review the details and reach out within one business day.</p>
` + footer))

	applicationNotificationTmpl = template.Must(template.New("application-notification").Parse(wrapOpen + `
<div style="border-left:3px solid #2563EB;padding-left:16px;margin-bottom:24px;">
<h1 style="color:#fff;font-size:20px;margin:0;">New Field Operator Application</h1>
<p style="color:#2563EB;font-size:12px;text-transform:uppercase;letter-spacing:0.1em;margin:4px 0 0;">{{.PositionLabel}}</p>
</div>
<table style="width:100%;border-collapse:collapse;font-size:14px;">
<tr><td style="padding:8px 0;color:#666;width:160px;">Name</td><td style="padding:8px 0;color:#fff;">{{.App.FullName}}</td></tr>
<tr><td style="padding:8px 0;color:#666;">Email</td><td style="padding:8px 0;"><a href="mailto:{{.App.Email}}" style="color:#60A5FA;">{{.App.Email}}</a></td></tr>
<tr><td style="padding:8px 0;color:#666;">Phone</td><td style="padding:8px 0;"><a href="tel:{{.App.Phone}}" style="color:#60A5FA;">{{.App.Phone}}</a></td></tr>
<tr><td style="padding:8px 0;color:#666;">OSP Experience</td><td style="padding:8px 0;color:#fff;">{{.App.YearsExperience}} years</td></tr>
<tr><td style="padding:8px 0;color:#666;">Valid CDL</td><td style="padding:8px 0;color:{{if eq .App.HasCDL "yes"}}#4ade80{{else}}#f87171{{end}};">{{if eq .App.HasCDL "yes"}}Yes{{else}}No{{end}}</td></tr>
<tr><td style="padding:8px 0;color:#666;">Tracking</td><td style="padding:8px 0;color:#fff;">{{.App.TrackingNumber}}</td></tr>
</table>
{{if .App.EquipmentExperience}}<div style="margin-top:24px;padding:16px;background:#0a0a0a;border:1px solid #1a1a1a;border-radius:4px;"><p style="color:#666;font-size:11px;text-transform:uppercase;letter-spacing:0.1em;margin:0 0 8px;">Equipment Experience</p><p style="color:#ccc;margin:0;white-space:pre-wrap;">{{.App.EquipmentExperience}}</p></div>{{end}}
` + footer))

	applicationConfirmationTmpl = template.Must(template.New("application-confirmation").Parse(wrapOpen + `
<div style="border-left:3px solid #10B981;padding-left:16px;margin-bottom:24px;">
<h1 style="color:#fff;font-size:20px;margin:0;">Application Received</h1>
<p style="color:#10B981;font-size:12px;text-transform:uppercase;letter-spacing:0.1em;margin:4px 0 0;">{{.PositionLabel}}</p>
</div>
<p style="color:#999;font-size:14px;line-height:1.6;">{{.App.FullName}} — your application is in. Keep this tracking number for status lookups:</p>
<p style="color:#fff;font-size:18px;letter-spacing:0.1em;margin:16px 0;">{{.App.TrackingNumber}}</p>
` + footer))

	referralNotificationTmpl = template.Must(template.New("referral-notification").Parse(wrapOpen + `
<div style="border-left:3px solid #F59E0B;padding-left:16px;margin-bottom:24px;">
<h1 style="color:#fff;font-size:20px;margin:0;">New Referral</h1>
<p style="color:#F59E0B;font-size:12px;text-transform:uppercase;letter-spacing:0.1em;margin:4px 0 0;">Referral Program</p>
</div>
<h3 style="color:#999;font-size:12px;text-transform:uppercase;letter-spacing:0.1em;margin:0 0 8px;">Referred By</h3>
<table style="width:100%;border-collapse:collapse;font-size:14px;margin-bottom:24px;">
<tr><td style="padding:6px 0;color:#666;width:120px;">Name</td><td style="color:#fff;">{{.Ref.ReferrerName}}</td></tr>
<tr><td style="padding:6px 0;color:#666;">Email</td><td><a href="mailto:{{.Ref.ReferrerEmail}}" style="color:#60A5FA;">{{.Ref.ReferrerEmail}}</a></td></tr>
{{if .Ref.ReferrerPhone}}<tr><td style="padding:6px 0;color:#666;">Phone</td><td style="color:#fff;">{{.Ref.ReferrerPhone}}</td></tr>{{end}}
</table>
<h3 style="color:#999;font-size:12px;text-transform:uppercase;letter-spacing:0.1em;margin:0 0 8px;">Candidate</h3>
<table style="width:100%;border-collapse:collapse;font-size:14px;margin-bottom:24px;">
<tr><td style="padding:6px 0;color:#666;width:120px;">Name</td><td style="color:#fff;">{{.Ref.CandidateName}}</td></tr>
<tr><td style="padding:6px 0;color:#666;">Email</td><td><a href="mailto:{{.Ref.CandidateEmail}}" style="color:#60A5FA;">{{.Ref.CandidateEmail}}</a></td></tr>
{{if .Ref.CandidatePhone}}<tr><td style="padding:6px 0;color:#666;">Phone</td><td style="color:#fff;">{{.Ref.CandidatePhone}}</td></tr>{{end}}
{{if .Ref.Position}}<tr><td style="padding:6px 0;color:#666;">Position</td><td style="color:#fff;">{{.Ref.Position}}</td></tr>{{end}}
</table>
{{if .Ref.Notes}}<div style="padding:16px;background:#0a0a0a;border:1px solid #1a1a1a;border-radius:4px;"><p style="color:#666;font-size:11px;text-transform:uppercase;letter-spacing:0.1em;margin:0 0 8px;">Notes</p><p style="color:#ccc;margin:0;white-space:pre-wrap;">{{.Ref.Notes}}</p></div>{{end}}
` + footer))

	talentPoolWelcomeTmpl = template.Must(template.New("talent-pool-welcome").Parse(wrapOpen + `
<div style="border-left:3px solid #10B981;padding-left:16px;margin-bottom:24px;">
<h1 style="color:#fff;font-size:20px;margin:0;">You're in the Talent Network</h1>
<p style="color:#10B981;font-size:12px;text-transform:uppercase;letter-spacing:0.1em;margin:4px 0 0;">Fiber Guys LLC</p>
</div>
<p style="color:#999;font-size:14px;line-height:1.6;">We've added you to the list. When we spin up new jetting or splicing crews for major projects, you'll be the first to know.</p>
<p style="color:#999;font-size:14px;line-height:1.6;margin-top:16px;">In the meantime, if you're ready to apply now:</p>
<a href="{{.CareersURL}}" style="display:inline-block;margin-top:16px;padding:12px 24px;background:#10B981;color:#fff;text-decoration:none;font-size:12px;text-transform:uppercase;letter-spacing:0.1em;font-weight:bold;">View Open Positions</a>
` + footer))
)

func render(t *template.Template, data any) string {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		// Static templates over plain string fields; keep the send going
		// with what rendered so far.
		return buf.String()
	}
	return buf.String()
}

type namedURL struct {
	URL  string
	Name string
}

// LeadNotification is the internal alert for a new lead, addressed to
// operations with reply-to set to the submitter.
func LeadNotification(lead LeadPayload, from, to string) Message {
	files := make([]namedURL, 0, len(lead.FileURLs))
	for _, u := range lead.FileURLs {
		files = append(files, namedURL{URL: u, Name: path.Base(u)})
	}
	html := render(leadNotificationTmpl, struct {
		Lead         LeadPayload
		ServiceLabel string
		Files        []namedURL
	}{lead, serviceLabel(lead.ServiceNeeded), files})

	return Message{
		From:    from,
		To:      []string{to},
		ReplyTo: lead.Email,
		Subject: fmt.Sprintf("[NEW BID] Project Review: %s", lead.CompanyName),
		HTML:    html,
	}
}

// LeadConfirmation is the auto-responder to the lead submitter.
func LeadConfirmation(lead LeadPayload, from string) Message {
	html := render(leadConfirmationTmpl, struct {
		Lead         LeadPayload
		ServiceLabel string
	}{lead, serviceLabel(lead.ServiceNeeded)})

	return Message{
		From:    from,
		To:      []string{lead.Email},
		Subject: "Project Review Initiated // Fiber Guys LLC",
		HTML:    html,
	}
}

// ApplicationNotification is the internal careers alert; a non-nil resume
// is attached directly.
func ApplicationNotification(app ApplicationPayload, resume *Attachment, from, to string) Message {
	html := render(applicationNotificationTmpl, struct {
		App           ApplicationPayload
		PositionLabel string
	}{app, positionLabel(app.Position)})

	msg := Message{
		From:    from,
		To:      []string{to},
		ReplyTo: app.Email,
		Subject: fmt.Sprintf("[NEW APPLICANT] %s — %s", app.FullName, positionLabel(app.Position)),
		HTML:    html,
	}
	if resume != nil && len(resume.Content) > 0 {
		msg.Attachments = []Attachment{*resume}
	}
	return msg
}

// ApplicationConfirmation tells the applicant their tracking number.
func ApplicationConfirmation(app ApplicationPayload, from string) Message {
	html := render(applicationConfirmationTmpl, struct {
		App           ApplicationPayload
		PositionLabel string
	}{app, positionLabel(app.Position)})

	return Message{
		From:    from,
		To:      []string{app.Email},
		Subject: "Application Received // Fiber Guys LLC",
		HTML:    html,
	}
}

// ReferralNotification is the internal careers alert for a referral.
func ReferralNotification(ref ReferralPayload, from, to string) Message {
	html := render(referralNotificationTmpl, struct{ Ref ReferralPayload }{ref})

	return Message{
		From:    from,
		To:      []string{to},
		ReplyTo: ref.ReferrerEmail,
		Subject: fmt.Sprintf("[REFERRAL] %s — referred by %s", ref.CandidateName, ref.ReferrerName),
		HTML:    html,
	}
}

// TalentPoolWelcome is the signup auto-responder.
func TalentPoolWelcome(email, from, siteURL string) Message {
	html := render(talentPoolWelcomeTmpl, struct{ CareersURL string }{siteURL + "/careers"})

	return Message{
		From:    from,
		To:      []string{email},
		Subject: "You are on the list // Fiber Guys LLC",
		HTML:    html,
	}
}
