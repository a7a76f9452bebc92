package scheduler

import (
	"context"
	"log"
	"time"

	"buildops_backend/internals/configs"
	calsvc "buildops_backend/internals/features/calendar/aggregator/service"
	mailsvc "buildops_backend/internals/features/mail/service"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// DigestScheduler emails the daily calendar digest. Default fire time is
// 06:00 server-local, before the crew heads out.
type DigestScheduler struct {
	cron   *cron.Cron
	agg    *calsvc.Aggregator
	sender mailsvc.Sender
	to     string
}

func NewDigestScheduler(db *gorm.DB, sender mailsvc.Sender) *DigestScheduler {
	return &DigestScheduler{
		cron:   cron.New(),
		agg:    calsvc.NewAggregator(db),
		sender: sender,
		to:     configs.GetEnv("DIGEST_TO"),
	}
}

func (s *DigestScheduler) Start() {
	if s.to == "" {
		log.Println("[DIGEST] DIGEST_TO not set, daily digest disabled")
		return
	}
	spec := configs.GetEnv("DIGEST_CRON", "0 6 * * *")
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		log.Printf("[DIGEST] invalid cron spec %q: %v", spec, err)
		return
	}
	s.cron.Start()
	log.Printf("[DIGEST] daily digest scheduled (%s) to %s", spec, s.to)
}

func (s *DigestScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *DigestScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()
	res := s.agg.Aggregate(ctx, now)

	high := mailsvc.CountHigh(res.Events)
	if high == 0 && len(res.FailedSources) == 0 {
		log.Println("[DIGEST] nothing urgent, skipping send")
		return
	}

	subject := mailsvc.DigestSubject(now, high)
	body := mailsvc.BuildDigestBody(now, res)
	if err := s.sender.Send(s.to, subject, body); err != nil {
		log.Printf("[DIGEST] send failed: %v", err)
		return
	}
	log.Printf("[DIGEST] sent to %s (%d events, %d urgent)", s.to, len(res.Events), high)
}
