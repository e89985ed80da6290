package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/cardastika-api/internal/config"
	entities "github.com/KirkDiggler/cardastika-api/internal/entities/equipment"
	"github.com/KirkDiggler/cardastika-api/internal/errors"
	redisclient "github.com/KirkDiggler/cardastika-api/internal/redis"
	equipmentrepo "github.com/KirkDiggler/cardastika-api/internal/repositories/equipment"
)

var (
	repairApply bool
	repairPurge bool
)

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Scan stored equipment documents and rewrite them in normalized form",
	Long: `Scan every equipment:owner:* document. Documents that are not JSON are reported
as corrupt. With --apply, corrupt documents are replaced by an empty state and every
other document is rewritten in normalized form. Adding --purge deletes corrupt documents
instead, so the owner starts over on the next read.`,
	RunE: runRepair,
}

func init() {
	repairCmd.Flags().BoolVar(&repairApply, "apply", false, "write the repaired documents back")
	repairCmd.Flags().BoolVar(&repairPurge, "purge", false,
		"with --apply, delete corrupt documents instead of resetting them")
}

type repairOptions struct {
	Apply bool
	Purge bool
}

type repairReport struct {
	Checked       int
	Rewritten     int
	Purged        int
	CorruptOwners []string
}

func runRepair(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	redisClient, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = redisClient.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := redisclient.Ping(ctx, redisClient, 5*time.Second); err != nil {
		return fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
	}

	normalizer := entities.NewNormalizer()
	repo, err := equipmentrepo.NewRedis(&equipmentrepo.RedisConfig{
		Client:     redisClient,
		Normalizer: normalizer,
	})
	if err != nil {
		return fmt.Errorf("failed to create equipment repository: %w", err)
	}

	opts := repairOptions{Apply: repairApply, Purge: repairPurge}
	report, err := repairEquipment(ctx, repo, normalizer, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Checked %d documents, found %d corrupt\n", report.Checked, len(report.CorruptOwners))
	for _, owner := range report.CorruptOwners {
		_, _ = fmt.Fprintf(out, "  - %s\n", equipmentrepo.GetKey(owner))
	}
	if repairApply {
		_, _ = fmt.Fprintf(out, "Rewrote %d documents, purged %d\n", report.Rewritten, report.Purged)
	} else if report.Checked > 0 {
		_, _ = fmt.Fprintln(out, "Dry run, pass --apply to write changes")
	}
	return nil
}

func repairEquipment(
	ctx context.Context,
	repo equipmentrepo.Repository,
	normalizer *entities.Normalizer,
	opts repairOptions,
) (*repairReport, error) {
	owners, err := repo.ListOwners(ctx, equipmentrepo.ListOwnersInput{})
	if err != nil {
		return nil, err
	}

	report := &repairReport{}
	for _, owner := range owners.OwnerIDs {
		report.Checked++

		var state *entities.State
		got, err := repo.Get(ctx, equipmentrepo.GetInput{OwnerID: owner})
		switch {
		case errors.IsDataLoss(err):
			report.CorruptOwners = append(report.CorruptOwners, owner)
			if opts.Apply && opts.Purge {
				_, err := repo.Delete(ctx, equipmentrepo.DeleteInput{OwnerID: owner})
				if err != nil && !errors.IsNotFound(err) {
					return nil, err
				}
				report.Purged++
				continue
			}
			state = normalizer.EmptyState()
		case errors.IsNotFound(err):
			// deleted between scan and read
			report.Checked--
			continue
		case err != nil:
			return nil, err
		default:
			state = got.State
		}

		if !opts.Apply {
			continue
		}
		if _, err := repo.Update(ctx, equipmentrepo.UpdateInput{OwnerID: owner, State: state}); err != nil {
			return nil, err
		}
		report.Rewritten++
	}
	return report, nil
}
