package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"gic-bank/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gicbank.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, "log_dir: /var/log/gicbank\nlog_file: ledger.log\nrecent_transactions: 25\n")

	cfg, err := config.Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "/var/log/gicbank", cfg.LogDir)
	assert.Equal(t, "ledger.log", cfg.LogFile)
	assert.Equal(t, 25, cfg.RecentTransactions)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "log_file: ledger.log\n")

	cfg, err := config.Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "logs", cfg.LogDir)
	assert.Equal(t, "ledger.log", cfg.LogFile)
	assert.Equal(t, 10, cfg.RecentTransactions)
}

func TestLoad_NonPositiveRecentCountFallsBack(t *testing.T) {
	path := writeConfig(t, "recent_transactions: -3\n")

	cfg, err := config.Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 10, cfg.RecentTransactions)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "log_dir: [unclosed\n")

	_, err := config.Load(path)
	assert.Error(t, err)
}
