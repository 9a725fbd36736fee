package backup

import (
	"laleme/internal/providers"
	"laleme/internal/services"
	"laleme/internal/storage/interfaces"
	"laleme/internal/structures"
	"sync"

	"github.com/roylee0704/gron"
)

// Scheduler drives the journal lifecycle: restore at startup, periodic
// snapshots while running, and a final flush at shutdown.
type Scheduler struct {
	config        *structures.Config
	logger        providers.Logger
	journal       services.JournalServiceInterface
	backupManager *BackupManager
	metrics       providers.MetricsProviderInterface
	cron          *gron.Cron
	opsMu         sync.Mutex
}

func (s *Scheduler) Init() {
	if !s.config.Backup.Enabled {
		s.logger.Infof(providers.TypeApp, "Backups disabled")
		return
	}

	s.cron = gron.New()
	s.cron.AddFunc(gron.Every(s.config.Backup.Interval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()
		s.backup()
	})
	s.cron.Start()
}

func (s *Scheduler) backup() {
	err := s.backupManager.SaveToFile(s.config.Backup.Path)
	s.metrics.IncBackupsTotal(err == nil)
	if err != nil {
		s.logger.Errorf(providers.TypeStore, "Error while writing backup: %s", err)
		return
	}
	s.logger.Infof(providers.TypeStore, "Backup written to %s", s.config.Backup.Path)
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Restore fills entries missing from the store from the last backup, then
// loads the journal. A broken backup is logged and skipped.
func (s *Scheduler) Restore() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	if s.config.Backup.Enabled {
		restored, err := s.backupManager.LoadFromFile(s.config.Backup.Path)
		if err != nil {
			s.logger.Warnf(providers.TypeStore, "Backup restore skipped: %s", err)
		} else if restored > 0 {
			s.logger.Warnf(providers.TypeStore, "Restored %d entries from backup %s", restored, s.config.Backup.Path)
		}
	}
	s.journal.Load()
	return nil
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Persisting journal...")
	err := s.journal.Flush()
	if err != nil {
		s.logger.Errorf(providers.TypeStore, "Error while persisting journal: %s", err)
		return err
	}
	if s.config.Backup.Enabled {
		s.backup()
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, journal services.JournalServiceInterface, backupManager *BackupManager, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:        config,
		logger:        logger,
		journal:       journal,
		backupManager: backupManager,
		metrics:       metrics,
	}
}
