package service

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/rameshsdv/stock-predictor/config"
	"github.com/rameshsdv/stock-predictor/pkg/logger"
	"github.com/rameshsdv/stock-predictor/pkg/utils"
)

type SchedulerService interface {
	Start() error
	Stop() context.Context
}

type schedulerService struct {
	cfg     *config.Config
	log     *logger.Logger
	cron    *cron.Cron
	tracker TrackerService
}

func NewSchedulerService(
	cfg *config.Config,
	log *logger.Logger,
	tracker TrackerService,
) SchedulerService {
	return &schedulerService{
		cfg:     cfg,
		log:     log,
		cron:    cron.New(cron.WithLocation(utils.GetISTTimeLocation())),
		tracker: tracker,
	}
}

// Start registers the verification job and launches the cron loop. The
// schedule runs in IST so "after market close" means the exchange's close,
// not the host's.
func (s *schedulerService) Start() error {
	_, err := s.cron.AddFunc(s.cfg.Tracker.VerifyCron, func() {
		ctx := context.Background()
		if err := s.tracker.VerifyPending(ctx); err != nil {
			s.log.ErrorContext(ctx, "Scheduled verification failed", logger.ErrorField(err))
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info("Scheduler started", logger.StringField("verify_cron", s.cfg.Tracker.VerifyCron))
	return nil
}

// Stop halts scheduling and returns a context that is done once running jobs
// finish.
func (s *schedulerService) Stop() context.Context {
	s.log.Info("Scheduler stopping")
	return s.cron.Stop()
}
