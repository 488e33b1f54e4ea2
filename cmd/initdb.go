/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/assetledger/apiserver/config"
	"github.com/assetledger/apiserver/internal/db"
	"github.com/assetledger/apiserver/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// initdbCmd creates the users and equipment tables and exits.
var initdbCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Create the database tables if they do not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		logger, err := logging.New(cfg.Log)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		conn, err := db.Open(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer conn.Close()

		if err := db.EnsureSchema(cmd.Context(), conn); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
		logger.Info("schema ready",
			zap.String("driver", cfg.Database.Driver),
			zap.String("database", cfg.Database.DBName),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initdbCmd)
}
