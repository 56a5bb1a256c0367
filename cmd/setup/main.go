package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/Owennied/HimmyGames/internal/bootstrap"
	"github.com/Owennied/HimmyGames/internal/config"
	"github.com/Owennied/HimmyGames/internal/database"
)

// maintenanceDB is the database every postgres server ships with
const maintenanceDB = "postgres"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// 1. Connect to the maintenance database to create the farm database
	adminCfg := *cfg
	adminCfg.DBName = maintenanceDB
	conn, err := pgx.Connect(ctx, adminCfg.GetDBConnString())
	if err != nil {
		log.Fatalf("Unable to connect to postgres database: %v", err)
	}

	created, err := ensureDatabase(ctx, conn, cfg.DBName)
	conn.Close(ctx)
	if err != nil {
		log.Fatalf("Failed to prepare database: %v", err)
	}
	if created {
		fmt.Printf("Database %s created.\n", cfg.DBName)
	} else {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
	}

	// 2. Apply the embedded migrations to the farm database
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, bootstrap.DBMaxConnIdleTime, bootstrap.DBMaxConnLifetime)
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", cfg.DBName, err)
	}
	defer pool.Close()

	fmt.Println("Running migrations...")
	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	fmt.Println("Migrations completed successfully.")
}

// ensureDatabase creates name unless it already exists
func ensureDatabase(ctx context.Context, conn *pgx.Conn, name string) (bool, error) {
	var exists bool
	err := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		return false, nil
	}

	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{name}.Sanitize()); err != nil {
		return false, fmt.Errorf("failed to create database: %w", err)
	}
	return true, nil
}
