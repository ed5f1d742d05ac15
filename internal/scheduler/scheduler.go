package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/babetech/borastock/internal/config"
	"github.com/babetech/borastock/internal/service/alerts"
	"github.com/babetech/borastock/internal/service/reporting"
)

// Scheduler manages the recurring background jobs: the daily report run
// and the low-stock alert scan.
type Scheduler struct {
	cron         *cron.Cron
	reportingSvc *reporting.Service
	alertsSvc    *alerts.Service
	cfg          config.Config
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance. alertsSvc may be nil
// when no webhook is configured; the alert job is then skipped.
func NewScheduler(cfg config.Config, reportingSvc *reporting.Service, alertsSvc *alerts.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Reporting.Timezone)
	if err != nil {
		logger.Warn("unknown timezone, falling back to local", zap.String("timezone", cfg.Reporting.Timezone))
		loc = time.Local
	}

	return &Scheduler{
		cron:         cron.New(cron.WithLocation(loc)),
		reportingSvc: reportingSvc,
		alertsSvc:    alertsSvc,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler")

	if _, err := s.cron.AddFunc(s.cfg.Reporting.CronSchedule, s.runDailyReport); err != nil {
		s.logger.Error("failed to schedule daily report", zap.Error(err))
	}

	if s.alertsSvc != nil {
		if _, err := s.cron.AddFunc(s.cfg.Alerts.CronSchedule, s.runAlertScan); err != nil {
			s.logger.Error("failed to schedule alert scan", zap.Error(err))
		}
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runDailyReport() {
	s.logger.Info("generating daily report")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if _, err := s.reportingSvc.RunDailyReport(ctx, time.Now()); err != nil {
		s.logger.Error("failed to run daily report", zap.Error(err))
	}
}

func (s *Scheduler) runAlertScan() {
	s.logger.Info("scanning for stock alerts")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	raised, err := s.alertsSvc.ScanAndNotify(ctx)
	if err != nil {
		s.logger.Error("alert scan failed", zap.Error(err))
		return
	}
	s.logger.Info("alert scan complete", zap.Int("alerts", len(raised)))
}
