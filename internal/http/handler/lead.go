package handler

import (
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/config"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/ratelimit"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/service"
)

// clientIP prefers the first hop of X-Forwarded-For so the limiter keys on
// the real client behind a proxy.
func clientIP(c *fiber.Ctx) string {
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		if i := strings.IndexByte(forwarded, ','); i >= 0 {
			return strings.TrimSpace(forwarded[:i])
		}
		return strings.TrimSpace(forwarded)
	}
	if ip := c.IP(); ip != "" {
		return ip
	}
	return "unknown"
}

// fileInput adapts a multipart part for the orchestrators.
func fileInput(fh *multipart.FileHeader) service.FileInput {
	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	return service.FileInput{
		Name:        fh.Filename,
		ContentType: ct,
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

func formValue(c *fiber.Ctx, name string) string {
	return strings.TrimSpace(c.FormValue(name))
}

// SubmitLead handles the project-request form. It is the only
// rate-limited route.
func SubmitLead(svc service.Submissions, limiter *ratelimit.Limiter, rl config.RateLimitConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if res := limiter.Check(clientIP(c), rl.MaxRequests, rl.Window); !res.Allowed {
			return jsonError(c, fiber.StatusTooManyRequests, "Too many requests. Please try again later.")
		}

		in := service.LeadInput{
			CompanyName:      formValue(c, "companyName"),
			ContactName:      formValue(c, "contactName"),
			Email:            formValue(c, "email"),
			Phone:            formValue(c, "phone"),
			CityState:        formValue(c, "cityState"),
			ServiceNeeded:    formValue(c, "serviceNeeded"),
			TargetStartDate:  formValue(c, "targetStartDate"),
			EstimatedFootage: formValue(c, "estimatedFootage"),
			Notes:            formValue(c, "notes"),
			TurnstileToken:   c.FormValue("cf-turnstile-response"),
			Website:          c.FormValue("website"),
		}

		if form, err := c.MultipartForm(); err == nil && form != nil {
			for _, fh := range form.File["files"] {
				if fh.Size == 0 {
					continue
				}
				in.Files = append(in.Files, fileInput(fh))
			}
		}

		result := svc.SubmitLead(c.UserContext(), in)
		return c.Status(result.StatusCode).JSON(result)
	}
}
