package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rishadfb/email-creation/pkg/campaign"
	"github.com/rishadfb/email-creation/pkg/config"
	"github.com/rishadfb/email-creation/pkg/email"
	"github.com/rishadfb/email-creation/pkg/logger"
)

func newGenerateCmd() *cobra.Command {
	var (
		contactsPath string
		brief        string
		outputDir    string
		concurrency  int
		deliver      bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate personalized emails for a contact list",
		Long: "Generate runs the full pipeline for every contact in the list:\n" +
			"template selection, copywriting, image generation and rendering.\n" +
			"Results are written to the output directory, or delivered through\n" +
			"Postmark with --deliver.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg generateConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}

			log := logger.New(logger.WithEnvironment(cfg.Env, "email-creation"))
			logger.SetAsDefault(log)

			ctx := cmd.Context()

			application, err := buildApp(ctx, log, cfg.Gemini, cfg.Assets, concurrency)
			if err != nil {
				return err
			}

			contacts, err := readContacts(contactsPath)
			if err != nil {
				return err
			}

			sender, err := newSender(deliver, outputDir)
			if err != nil {
				return err
			}

			runID := uuid.NewString()
			log.Info("starting batch",
				logger.Component("generate"),
				logger.RunID(runID),
				logger.Count(len(contacts)))

			start := time.Now()
			results := application.pipeline.CreateBatch(ctx, brief, contacts)

			failed := 0
			for _, res := range results {
				if res.Err != nil {
					failed++
					continue
				}
				if err := sender.SendEmail(ctx, email.ParamsFromEmail(res.Email)); err != nil {
					log.Error("delivery failed",
						logger.ContactEmail(res.Contact.Email),
						logger.Error(err))
					failed++
				}
			}

			log.Info("batch finished",
				logger.Component("generate"),
				logger.RunID(runID),
				logger.Count(len(results)),
				slog.Int("failed", failed),
				logger.Duration(time.Since(start)))

			if failed == len(results) {
				return fmt.Errorf("all %d contacts failed", len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&contactsPath, "contacts", "contacts.json", "path to the contact list JSON file")
	cmd.Flags().StringVar(&brief, "brief", "", "campaign brief driving template choice and copy")
	cmd.Flags().StringVar(&outputDir, "output", "out", "directory for generated emails (ignored with --deliver)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "contacts processed in parallel")
	cmd.Flags().BoolVar(&deliver, "deliver", false, "send through Postmark instead of writing files")
	_ = cmd.MarkFlagRequired("brief")

	return cmd
}

// readContacts loads a contact list in the {"contacts": [...]} format.
func readContacts(path string) ([]campaign.Contact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading contacts file: %w", err)
	}
	var list campaign.ContactList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parsing contacts file %s: %w", path, err)
	}
	if len(list.Contacts) == 0 {
		return nil, fmt.Errorf("contacts file %s has no contacts", path)
	}
	return list.Contacts, nil
}

// newSender picks the delivery backend: Postmark when delivering for
// real, the file-writing dev sender otherwise. Postmark credentials are
// only required when --deliver is set.
func newSender(deliver bool, outputDir string) (email.EmailSender, error) {
	if !deliver {
		return email.NewDevSender(outputDir), nil
	}
	var cfg email.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return email.NewPostmarkClient(cfg)
}
