package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dangerclosesec/vaultd/internal/config"
	"github.com/dangerclosesec/vaultd/internal/model"
	"github.com/dangerclosesec/vaultd/internal/repository"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "vaultctl",
	Short: "Vaultctl is a CLI tool for operating a vaultd deployment",
	Long:  `Vaultctl is a CLI tool for migrating and inspecting a vaultd database.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long:  `Create or update the database tables used by vaultd.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Name,
			cfg.Database.SSLMode,
			cfg.Database.SearchPath,
		)

		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			TranslateError: true,
			NowFunc: func() time.Time {
				return time.Now().UTC()
			},
		})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		models := []interface{}{
			&model.User{},
			&model.Organization{},
			&model.OrganizationUser{},
			&model.Project{},
			&model.Group{},
			&model.ServiceAccount{},
			&model.AccessPolicy{},
			&model.OrganizationEvent{},
		}

		if err := db.AutoMigrate(models...); err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}

		if err := repository.NewAccessPolicyRepository(db).EnsureIdentityIndex(context.Background()); err != nil {
			log.Fatalf("Failed to create access policy identity index: %v", err)
		}

		if verbose {
			for _, m := range models {
				fmt.Printf("migrated %T\n", m)
			}
		}

		fmt.Println("Schema migrated successfully")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the vaultctl version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("vaultctl v0.1.0")
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
