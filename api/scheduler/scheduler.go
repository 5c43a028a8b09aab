// Package scheduler runs the daily warranty-expiry reminder: services whose
// warranty lapses within the reminder window get rolled into one email to
// the configured recipient.
package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/motorlog/motorlog-api/config"
	"github.com/motorlog/motorlog-api/databases"
	"github.com/motorlog/motorlog-api/models"
	"github.com/motorlog/motorlog-api/reports"
)

const (
	reminderWindowDays = 14
	defaultCron        = "0 8 * * *"
)

// Scheduler holds the databases the reminder sweep reads from
type Scheduler struct {
	Config *config.Config
	SDB    databases.ServiceDatabase
	VDB    databases.VehicleDatabase
	PDB    databases.ProviderDatabase

	cron *cron.Cron
}

// New initializes a scheduler over the given databases
func New(conf *config.Config, sdb databases.ServiceDatabase, vdb databases.VehicleDatabase, pdb databases.ProviderDatabase) *Scheduler {
	return &Scheduler{Config: conf, SDB: sdb, VDB: vdb, PDB: pdb}
}

// Start registers the cron entry and launches the runner goroutine
func (s *Scheduler) Start() error {
	spec := s.Config.ReminderCron
	if spec == "" {
		spec = defaultCron
	}
	c := cron.New()
	if _, err := c.AddFunc(spec, s.runReminders); err != nil {
		return err
	}
	c.Start()
	s.cron = c
	zap.S().Infow("warranty reminder scheduler started", "cron", spec)
	return nil
}

// Stop halts the cron runner, letting an in-flight sweep finish
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) runReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	services, err := s.SDB.List(ctx)
	if err != nil {
		zap.S().Errorw("reminder sweep failed to load services", "error", err)
		return
	}
	vehicles, err := s.VDB.List(ctx)
	if err != nil {
		zap.S().Errorw("reminder sweep failed to load vehicles", "error", err)
		return
	}
	providers, err := s.PDB.List(ctx)
	if err != nil {
		zap.S().Errorw("reminder sweep failed to load providers", "error", err)
		return
	}

	views := reports.BuildHistory(services, vehicles, providers, nil, time.Now())
	expiring := expiringSoon(views)
	if len(expiring) == 0 {
		zap.S().Debug("no warranties expiring within the reminder window")
		return
	}

	if err := s.sendReminder(expiring); err != nil {
		zap.S().Errorw("failed to send warranty reminder", "error", err, "services", len(expiring))
		return
	}
	zap.S().Infow("sent warranty reminder", "services", len(expiring))
}

func expiringSoon(views []models.ServiceView) []models.ServiceView {
	expiring := []models.ServiceView{}
	for _, v := range views {
		// rows with a blank due date report 0 days remaining, not expiring
		if v.Service.DueDate.IsZero() {
			continue
		}
		if v.DaysRemaining >= 0 && v.DaysRemaining <= reminderWindowDays {
			expiring = append(expiring, v)
		}
	}
	return expiring
}

func (s *Scheduler) sendReminder(expiring []models.ServiceView) error {
	var plain strings.Builder
	plain.WriteString("Warranties expiring soon:\n\n")
	for _, v := range expiring {
		fmt.Fprintf(&plain, "- %s on %s (%s): due %s, %d day(s) left\n",
			v.Service.ServiceName, v.VehicleName, v.ProviderName,
			v.Service.DueDate, v.DaysRemaining)
	}

	from := mail.NewEmail("motorlog", "noreply@motorlog.app")
	to := mail.NewEmail("", s.Config.ReminderTo)
	subject := fmt.Sprintf("%d service warranties expire within %d days", len(expiring), reminderWindowDays)
	message := mail.NewSingleEmail(from, subject, to, plain.String(), plain.String())

	client := sendgrid.NewSendClient(s.Config.SendgridKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}
