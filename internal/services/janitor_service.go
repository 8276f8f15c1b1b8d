package services

import (
	"TrailGuide/internal/config"
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

var ErrCleaningInProgress = errors.New("cleaning is in progress")

// Janitor looks for assets that no current revision uses. Scheduled runs only
// report them; a forced run soft-deletes them.
type Janitor struct {
	usageService  UsageService
	assetService  AssetService
	configuration *config.Configuration
	logService    LogService
	cleaning      bool
	mutex         sync.Mutex
	cron          *cron.Cron
}

type CleanReport struct {
	Candidates []string `json:"candidates"`
	Deleted    []string `json:"deleted"`
	Failed     []string `json:"failed"`
}

func NewJanitorService(
	usageService UsageService,
	assetService AssetService,
	logService LogService,
	configuration *config.Configuration,
) *Janitor {
	return &Janitor{
		usageService:  usageService,
		assetService:  assetService,
		logService:    logService,
		cleaning:      false,
		mutex:         sync.Mutex{},
		configuration: configuration,
		cron:          cron.New(),
	}
}

func (j *Janitor) begin() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	if j.cleaning {
		return false
	}
	j.cleaning = true
	return true
}

func (j *Janitor) end() {
	j.mutex.Lock()
	j.cleaning = false
	j.mutex.Unlock()
}

// ForceStartCleanCycle soft-deletes every unreachable asset and reports what
// happened.
func (j *Janitor) ForceStartCleanCycle(ctx context.Context) (*CleanReport, error) {
	if !j.begin() {
		return nil, ErrCleaningInProgress
	}
	defer j.end()
	return j.startClean(ctx, true)
}

func (j *Janitor) StartCleanCycle() {
	j.logService.Log.Debug("starting cleaning job")

	cronSchedule := j.configuration.Server.CleanConfig.Schedule
	_, err := j.cron.AddFunc(cronSchedule, func() {
		if !j.begin() {
			return
		}
		defer j.end()
		_, _ = j.startClean(context.Background(), false)
	})
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "clean",
			"error": err.Error(),
		}).Error("Failed to start cleaning job")
		return
	}
	j.cron.Start()
}

func (j *Janitor) StopClean() {
	ctx := j.cron.Stop()
	<-ctx.Done()
	j.logService.Log.WithFields(logrus.Fields{
		"job":    "clean",
		"status": "stopped",
	}).Info("Janitor clean stopped")
}

func (j *Janitor) IsCleaning() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.cleaning
}

// Candidates lists the unreachable assets without changing anything.
func (j *Janitor) Candidates(ctx context.Context) ([]string, error) {
	var candidates []string
	for id, err := range j.usageService.UnreachableAssets(ctx) {
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, id)
	}
	return candidates, nil
}

func (j *Janitor) startClean(ctx context.Context, forced bool) (*CleanReport, error) {
	j.logService.Log.Debug("getting unreachable assets")
	// The cursor must be drained before deleting, which issues queries.
	candidates, err := j.Candidates(ctx)
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "error",
			"error":  err.Error(),
		}).Error("Failed to find unreachable assets")
		return nil, err
	}

	report := &CleanReport{Candidates: candidates, Deleted: []string{}, Failed: []string{}}
	if len(candidates) == 0 {
		return report, nil
	}

	var logFields logrus.Fields
	if !forced {
		logFields = logrus.Fields{
			"job":    "clean",
			"status": "report",
			"cron":   j.configuration.Server.CleanConfig.Schedule,
			"assets": candidates,
		}
	} else {
		logFields = logrus.Fields{
			"job":    "clean",
			"status": "forced",
		}
	}
	j.logService.Log.WithFields(logFields).Info(fmt.Sprintf("Found %d unreachable assets", len(candidates)))
	if !forced {
		return report, nil
	}

	for _, id := range candidates {
		if err := j.assetService.SoftDelete(ctx, id); err != nil {
			j.logService.Log.WithFields(logrus.Fields{
				"job":    "clean",
				"status": "error",
				"asset":  id,
				"error":  err.Error(),
			}).Error("Failed to delete asset")
			report.Failed = append(report.Failed, id)
			continue
		}
		report.Deleted = append(report.Deleted, id)
	}

	j.logService.Log.WithFields(logrus.Fields{
		"job":    "clean",
		"status": "success",
		"count":  len(report.Deleted),
	}).Info("cleaning job finished")
	return report, nil
}
