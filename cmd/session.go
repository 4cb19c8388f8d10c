package cmd

import (
	"fmt"

	"github.com/fweigt/tslabel/internal/contract"
	"github.com/fweigt/tslabel/internal/sessiondb"
	"github.com/fweigt/tslabel/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// sessionSetup loads minimal configuration needed for session operations.
// This is used by commands that need store access without full shared setup.
func sessionSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get session-related config values
	backend := schema.DatabaseBackend(viper.GetString("session-backend"))
	connStr := viper.GetString("session-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize the store with the loaded config
	if err := sessiondb.InitStore(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	cfg.SessionKey = viper.GetString("session")
	if cfg.SessionKey == "" {
		cfg.SessionKey = contract.DefaultSession
	}
	cfg.SessionBackend = backend
	cfg.SessionDBConnect = connStr

	return nil
}

// sessionSetupWrapper wraps sessionSetup to provide PreRunE for session commands.
func sessionSetupWrapper(_ *cobra.Command, _ []string) error {
	return sessionSetup()
}

// sessionMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize the store or create
// tables, allowing migrations to run on a fresh database.
func sessionMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("session-backend"))
	connStr := viper.GetString("session-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = sessiondb.GetDBFilePath()
	}

	cfg.SessionBackend = backend
	cfg.SessionDBConnect = connStr

	return nil
}

// sessionMigrateSetupWrapper wraps sessionMigrateSetup to provide PreRunE for the migrate command.
func sessionMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return sessionMigrateSetup()
}

// sessionCmd focused on session management.
//
// Note: Session subcommands use minimal initialization (sessionSetup) instead
// of the full sharedSetup used by labeling commands. This avoids dataset
// validation and complex config processing for simple store operations.
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage persisted label assignments",
	Long: `Manage the session store that holds label assignments between runs.

Label assignments are persisted per session key, so separate labeling
efforts on the same dataset never collide.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (in-memory)

Subcommands:
  status  - Show store statistics and connection info
  clear   - Remove a session's assignments
  migrate - Run database schema migrations

Examples:
  # Check the session store
  tslabel session status

  # Drop a finished session
  tslabel session clear --session triage`,
}

// sessionClearCmd clears one session's assignments.
var sessionClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all label assignments stored under a session key",
	Long: `Delete every label assignment persisted under the given session key.

Use this when:
- A labeling pass should be restarted from scratch
- A session was created by mistake
- Stale assignments should not leak into an export

Other sessions are not touched.

Examples:
  # Clear the default session
  tslabel session clear

  # Clear a named session on MySQL (set connection string via env variable)
  TSLABEL_SESSION_BACKEND=mysql TSLABEL_SESSION_DB_CONNECT="..." tslabel session clear --session triage`,
	PreRunE: sessionSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := sessiondb.GetStore().ClearSession(cfg.SessionKey); err != nil {
			contract.LogFatal("Failed to clear session", err)
		}
		fmt.Printf("Session %q cleared successfully.\n", cfg.SessionKey)
	},
}

// sessionStatusCmd shows session store status.
var sessionStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display session store statistics and connection details",
	Long: `Show detailed information about the session store.

Displays:
- Backend type and connection status
- Number of distinct sessions
- Total number of persisted assignments

Use this to:
- Verify the store is working and connected
- See how many labeling sessions exist
- Debug persistence-related issues

Examples:
  # Check store status
  tslabel session status`,
	PreRunE: sessionSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := sessiondb.GetStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get session store status", err)
		}
		sessiondb.PrintSessionStatus(status)
	},
}

// sessionMigrateCmd runs database migrations for the session store.
var sessionMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the session store.

Migrations allow:
- Upgrading to new schema versions when tslabel is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  tslabel session migrate

  # Migrate to specific version
  tslabel session migrate --target-version 1

  # Rollback to initial state
  tslabel session migrate --target-version 0`,
	PreRunE: sessionMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := sessiondb.Migrate(cfg.SessionBackend, cfg.SessionDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
