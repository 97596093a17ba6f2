package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/surajmeruva0786/DigiGov10/internal/application"
	"github.com/surajmeruva0786/DigiGov10/internal/config"
	"github.com/surajmeruva0786/DigiGov10/internal/service"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed sample complaints into an empty store",
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	ctx := context.Background()
	st, _, err := application.OpenStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	svc, err := service.NewComplaintService(ctx, st, nil)
	if err != nil {
		return fmt.Errorf("complaints: %w", err)
	}
	n, err := svc.SeedSampleData(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if n == 0 {
		log.Println("seed: store already has complaints, nothing to do")
		return nil
	}
	log.Printf("seed: inserted %d sample complaints", n)
	return nil
}
