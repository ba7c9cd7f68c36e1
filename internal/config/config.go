package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Host            string
	Port            string
	JournalFile     string
	ReleaseOnCancel bool
	Demo            bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	host := os.Getenv("HOST")
	if host == "" {
		host = "localhost"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8092"
	}

	journalFile := os.Getenv("JOURNAL_FILE")
	if journalFile == "" {
		journalFile = "booking_log.txt"
	}

	releaseOnCancel, _ := strconv.ParseBool(os.Getenv("RELEASE_ON_CANCEL"))
	demo, _ := strconv.ParseBool(os.Getenv("DEMO"))

	return &Config{
		Host:            host,
		Port:            port,
		JournalFile:     journalFile,
		ReleaseOnCancel: releaseOnCancel,
		Demo:            demo,
	}, nil
}
