package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/horizonhr-ng/people-backend-go/internal/config"
	"github.com/horizonhr-ng/people-backend-go/internal/domain/department"
	"github.com/horizonhr-ng/people-backend-go/internal/domain/user"
	"github.com/horizonhr-ng/people-backend-go/internal/pkg/database"
	"github.com/horizonhr-ng/people-backend-go/internal/repository/postgresql"
	accountService "github.com/horizonhr-ng/people-backend-go/internal/service/account"
	orgService "github.com/horizonhr-ng/people-backend-go/internal/service/org"
)

// bootstrap prepares a database for use: runs the schema migrations, seeds
// the default org structure and creates the superuser account. Safe to run
// again on a database that is already set up.
func main() {
	adminEmail := flag.String("admin-email", "", "superuser email (overrides BOOTSTRAP_ADMIN_EMAIL)")
	adminPassword := flag.String("admin-password", "", "superuser password (overrides BOOTSTRAP_ADMIN_PASSWORD)")
	adminFirstName := flag.String("admin-first-name", "", "superuser first name (overrides BOOTSTRAP_ADMIN_FIRST_NAME)")
	adminLastName := flag.String("admin-last-name", "", "superuser last name (overrides BOOTSTRAP_ADMIN_LAST_NAME)")
	seedDefaults := flag.Bool("seed-defaults", true, "seed default departments, units and office locations (overrides BOOTSTRAP_SEED_DEFAULTS)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	email := choose(*adminEmail, cfg.Bootstrap.AdminEmail)
	password := choose(*adminPassword, cfg.Bootstrap.AdminPassword)
	firstName := choose(*adminFirstName, cfg.Bootstrap.AdminFirstName)
	lastName := choose(*adminLastName, cfg.Bootstrap.AdminLastName)

	if email == "" || password == "" {
		log.Fatal("A superuser email and password are required; pass -admin-email/-admin-password or set BOOTSTRAP_ADMIN_EMAIL/BOOTSTRAP_ADMIN_PASSWORD")
	}

	seed := cfg.Bootstrap.SeedDefaults
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed-defaults" {
			seed = *seedDefaults
		}
	})

	ctx := context.Background()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	unitRepo := postgresql.NewUnitRepository(db)
	officeLocationRepo := postgresql.NewOfficeLocationRepository(db)

	orgSvc := orgService.NewOrgService(db, departmentRepo, unitRepo, officeLocationRepo, userRepo)
	accountSvc := accountService.NewAccountService(db, userRepo, departmentRepo, unitRepo, officeLocationRepo)

	if seed {
		existing, err := departmentRepo.List(ctx, department.ListDepartmentsFilter{})
		if err != nil {
			log.Fatalf("Error checking for existing departments: %v", err)
		}

		if len(existing) > 0 {
			slog.Info("Skipping default data, departments already present", "count", len(existing))
		} else {
			if _, err := orgSvc.SeedDefaults(ctx); err != nil {
				log.Fatalf("Error seeding default data: %v", err)
			}
		}
	}

	created, err := accountSvc.CreateSuperuser(ctx, user.CreateUserRequest{
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	})
	switch {
	case err == nil:
		slog.Info("Created superuser", "user_id", created.ID, "email", created.Email)
	case errors.Is(err, user.ErrEmailTaken):
		slog.Info("Superuser already exists, skipping", "email", email)
	default:
		log.Fatalf("Error creating superuser: %v", err)
	}

	fmt.Println("Bootstrap complete")
}

// choose returns the flag value when given, otherwise the config fallback
func choose(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return configValue
}
