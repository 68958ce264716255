package app

import (
	"log"
	"path/filepath"

	"voice2text/internal/app/api"
	"voice2text/internal/app/api/provider"
	appconfig "voice2text/internal/app/config"
	"voice2text/internal/app/repository"
	"voice2text/internal/app/repository/sqlite"
	"voice2text/internal/app/util/files"
)

// provideTranscriber builds the default provider from providers.yaml at the
// module root, falling back to the local worker when no file exists.
func provideTranscriber() api.Transcriber {
	projectRoot, err := files.GetProjectRoot()
	if err != nil {
		log.Fatalf("Failed to get project root: %v\n", err)
	}

	cfg, err := appconfig.LoadProvidersConfig(filepath.Join(projectRoot, "providers.yaml"))
	if err != nil {
		log.Fatalf("Failed to load providers config: %v\n", err)
	}

	entry := cfg.Default()
	transcriber, err := provider.Create(entry.Type, entry.Settings)
	if err != nil {
		log.Fatalf("Failed to create provider %q: %v\n", cfg.DefaultProvider, err)
	}
	return transcriber
}

func provideTranscriptionDAO() repository.TranscriptionDAO {
	dbPath, err := sqlite.DefaultDBPath()
	if err != nil {
		log.Fatalf("Failed to resolve database path: %v\n", err)
	}

	dao, err := sqlite.NewSQLiteDB(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v\n", err)
	}
	return dao
}
