package cli

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"os"

	"github.com/vkotelnikov/sympta/internal/db"
	"github.com/vkotelnikov/sympta/internal/models"
)

// RunResetDataCommand wipes the whole symptom history and the profile after an
// interactive confirmation. The admin password is read without echo and
// compared against the configured one; the command never touches the database
// on a mismatch.
func RunResetDataCommand(dbPath string, adminPassword string) error {
	if adminPassword == "" {
		return errors.New("ADMIN_PASSWORD must be set")
	}

	fmt.Println("This permanently deletes all logged symptoms and the profile.")
	fmt.Print("Admin password to confirm: ")
	entered, err := readPasswordNoEcho(os.Stdin)
	fmt.Println()
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	if subtle.ConstantTimeCompare(entered, []byte(adminPassword)) != 1 {
		return errors.New("password mismatch, nothing deleted")
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	repositories := db.NewRepositories(database)

	if err := repositories.Records.DeleteAll(); err != nil {
		return fmt.Errorf("clear symptom history: %w", err)
	}
	if err := repositories.Profile.Save(&models.UserProfile{ID: models.ProfileID}); err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}

	fmt.Println("✅ All symptom history and profile data cleared.")
	return nil
}
