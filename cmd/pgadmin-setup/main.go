// pgadmin-setup generates the pgAdmin server profile and passfile from
// the environment so the admin container can reach the recipe database
// without manual setup.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)

type pgadminConfig struct {
	Host     string
	Port     int
	DBName   string
	User     string
	Password string
	Email    string
}

// serverProfile mirrors pgAdmin's servers.json import format.
type serverProfile struct {
	Name          string `json:"Name"`
	Group         string `json:"Group"`
	Host          string `json:"Host"`
	Port          int    `json:"Port"`
	Username      string `json:"Username"`
	PassFile      string `json:"PassFile"`
	SSLMode       string `json:"SSLMode"`
	MaintenanceDB string `json:"MaintenanceDB"`
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func loadFromEnv() (pgadminConfig, error) {
	portStr := getenv("PGADMIN_DB_PORT", "5432")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return pgadminConfig{}, fmt.Errorf("invalid PGADMIN_DB_PORT %q: %w", portStr, err)
	}

	return pgadminConfig{
		Host:     getenv("DB_HOST", "db"),
		Port:     port,
		DBName:   getenv("POSTGRES_DB", "db"),
		User:     getenv("POSTGRES_USER", "user"),
		Password: getenv("POSTGRES_PASSWORD", "pass"),
		Email:    getenv("PGADMIN_DEFAULT_EMAIL", "admin@example.com"),
	}, nil
}

// writeFiles emits servers.json and the passfile. The passfile carries
// the password, so it is restricted to owner read/write.
func (cfg pgadminConfig) writeFiles(serversPath, passfilePath string) error {
	servers := map[string]map[string]serverProfile{
		"Servers": {
			"1": {
				Name:          "Recipe DB",
				Group:         "Servers",
				Host:          cfg.Host,
				Port:          cfg.Port,
				Username:      cfg.User,
				PassFile:      passfilePath,
				SSLMode:       "prefer",
				MaintenanceDB: "postgres",
			},
		},
	}

	data, err := json.MarshalIndent(servers, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode servers.json: %w", err)
	}
	if err := os.WriteFile(serversPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", serversPath, err)
	}

	// The db field is wildcarded so the postgres maintenance database
	// stays reachable with the same credentials.
	passfileContent := fmt.Sprintf("%s:%d:*:%s:%s\n", cfg.Host, cfg.Port, cfg.User, cfg.Password)
	if err := os.WriteFile(passfilePath, []byte(passfileContent), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", passfilePath, err)
	}
	if err := os.Chmod(passfilePath, 0o600); err != nil {
		return fmt.Errorf("failed to restrict %s: %w", passfilePath, err)
	}

	return nil
}

func main() {
	serversPath := flag.String("servers", "/tmp/servers.json", "where to write the pgAdmin servers.json")
	passfilePath := flag.String("passfile", "/var/lib/pgadmin/servers.pass", "where to write the credentials passfile")
	flag.Parse()

	cfg, err := loadFromEnv()
	if err != nil {
		fmt.Println(errorStyle.Render("✗ " + err.Error()))
		os.Exit(1)
	}

	if err := cfg.writeFiles(*serversPath, *passfilePath); err != nil {
		fmt.Println(errorStyle.Render("✗ " + err.Error()))
		os.Exit(1)
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("✓ pgAdmin config written for %s (%s:%d)", cfg.Email, cfg.Host, cfg.Port)))
}
