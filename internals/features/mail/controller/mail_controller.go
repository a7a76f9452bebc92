package controller

import (
	"log"
	"time"

	calsvc "buildops_backend/internals/features/calendar/aggregator/service"
	"buildops_backend/internals/features/mail/service"
	helper "buildops_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MailController struct {
	Agg    *calsvc.Aggregator
	Sender service.Sender
}

func NewMailController(db *gorm.DB, sender service.Sender) *MailController {
	return &MailController{Agg: calsvc.NewAggregator(db), Sender: sender}
}

// 🟢 POST /api/a/mail/digest  {"to": "boss@example.com"}
// Manual trigger for the same digest the cron sends.
func (ctrl *MailController) SendDigest(c *fiber.Ctx) error {
	var body struct {
		To string `json:"to" validate:"required,email"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&body); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	now := time.Now()
	res := ctrl.Agg.Aggregate(c.UserContext(), now)
	subject := service.DigestSubject(now, service.CountHigh(res.Events))
	digest := service.BuildDigestBody(now, res)

	if err := ctrl.Sender.Send(body.To, subject, digest); err != nil {
		log.Printf("[ERROR] Send digest to %s: %v", body.To, err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to send digest")
	}

	return helper.JsonOK(c, "Digest sent", fiber.Map{
		"to":             body.To,
		"events":         len(res.Events),
		"failed_sources": res.FailedSources,
	})
}
