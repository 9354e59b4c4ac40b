package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/service"
)

// SubmitApplication handles the job application form, including the
// optional resume part.
func SubmitApplication(svc service.Submissions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := service.ApplicationInput{
			FirstName:           formValue(c, "firstName"),
			LastName:            formValue(c, "lastName"),
			Email:               formValue(c, "email"),
			Phone:               formValue(c, "phone"),
			Position:            formValue(c, "position"),
			YearsExperience:     formValue(c, "yearsExperience"),
			HasCDL:              formValue(c, "hasCDL"),
			EquipmentExperience: formValue(c, "equipmentExperience"),
			Website:             c.FormValue("website"),
		}

		if fh, err := c.FormFile("resume"); err == nil && fh != nil && fh.Size > 0 {
			f := fileInput(fh)
			in.Resume = &f
		}

		result := svc.SubmitApplication(c.UserContext(), in)
		return c.Status(result.StatusCode).JSON(result)
	}
}

// SubmitReferral handles the refer-a-candidate form.
func SubmitReferral(svc service.Submissions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := service.ReferralInput{
			ReferrerName:   formValue(c, "referrerName"),
			ReferrerEmail:  formValue(c, "referrerEmail"),
			ReferrerPhone:  formValue(c, "referrerPhone"),
			CandidateName:  formValue(c, "candidateName"),
			CandidateEmail: formValue(c, "candidateEmail"),
			CandidatePhone: formValue(c, "candidatePhone"),
			Position:       formValue(c, "position"),
			Notes:          formValue(c, "notes"),
			Website:        c.FormValue("website"),
		}

		result := svc.SubmitReferral(c.UserContext(), in)
		return c.Status(result.StatusCode).JSON(result)
	}
}

// SubscribeTalentPool handles the job-alerts signup.
func SubscribeTalentPool(svc service.Submissions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := service.TalentPoolInput{
			Email:   formValue(c, "email"),
			Website: c.FormValue("website"),
		}

		result := svc.SubscribeTalentPool(c.UserContext(), in)
		return c.Status(result.StatusCode).JSON(result)
	}
}

// CheckApplicationStatus handles the applicant-facing status lookup.
func CheckApplicationStatus(svc service.Submissions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := service.StatusInput{Email: formValue(c, "email")}

		result := svc.CheckApplicationStatus(c.UserContext(), in)
		return c.Status(result.StatusCode).JSON(result)
	}
}
