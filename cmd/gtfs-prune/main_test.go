package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/gtfs-prune/config"
)

// runCLI runs the command in process and returns stdout, stderr and the exit code
func runCLI(t *testing.T, args ...string) (stdout, stderr string, code ExitCode) {
	t.Helper()
	if args == nil {
		args = []string{}
	}
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return out.String(), errOut.String(), code
}

func writeFeed(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"agency.txt": "agency_id,agency_name,agency_url,agency_timezone\n" +
			"SBB,SBB,https://sbb.ch,Europe/Zurich\n" +
			"BLS,BLS,https://bls.ch,Europe/Zurich\n",
		"routes.txt": "route_id,agency_id,route_type\nR1,SBB,2\nR2,BLS,2\n",
		"trips.txt":  "route_id,service_id,trip_id\nR1,WK,T1\nR2,WK,T2\n",
		"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\n" +
			"T1,08:00:00,08:00:00,BERN,1\n" +
			"T2,08:10:00,08:10:00,THUN,1\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestCLI_MissingDirectory(t *testing.T) {
	_, stderr, code := runCLI(t)

	assert.Equal(t, ExitCode(exitCodeSuccess), code)
	assert.Contains(t, stderr, missingDirMessage)
	assert.Contains(t, stderr, "gtfs-prune <feed-dir>")
}

func TestCLI_ExtraArgumentsAreIgnored(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	dir := writeFeed(t)

	_, stderr, code := runCLI(t, dir, "extra")

	require.Equal(t, ExitCode(exitCodeSuccess), code, stderr)
	assert.Contains(t, stderr, "prune complete")
	trips, err := os.ReadFile(filepath.Join(dir, "trips.txt"))
	require.NoError(t, err)
	assert.NotContains(t, string(trips), "T1")
	assert.Contains(t, string(trips), "T2,WK,R2")
}

func TestCLI_PrunesDefaultAgencies(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	dir := writeFeed(t)

	_, stderr, code := runCLI(t, dir)

	require.Equal(t, ExitCode(exitCodeSuccess), code, stderr)
	assert.Contains(t, stderr, "prune complete")

	trips, err := os.ReadFile(filepath.Join(dir, "trips.txt"))
	require.NoError(t, err)
	assert.NotContains(t, string(trips), "T1")
	assert.Contains(t, string(trips), "T2,WK,R2")

	stopTimes, err := os.ReadFile(filepath.Join(dir, "stop_times.txt"))
	require.NoError(t, err)
	assert.NotContains(t, string(stopTimes), "BERN")
	assert.Contains(t, string(stopTimes), "THUN")
}

func TestCLI_ConfigFromEnvironment(t *testing.T) {
	dir := writeFeed(t)
	cfgPath := filepath.Join(t.TempDir(), "prune.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("prune:\n  bannedAgencies: [BLS]\nlogging:\n  format: json\n"), 0o644))
	t.Setenv(config.EnvConfigPath, cfgPath)

	_, stderr, code := runCLI(t, dir)

	require.Equal(t, ExitCode(exitCodeSuccess), code, stderr)
	assert.Contains(t, stderr, `"msg":"prune complete"`)
	trips, err := os.ReadFile(filepath.Join(dir, "trips.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(trips), "T1")
	assert.NotContains(t, string(trips), "T2")
}

func TestCLI_MissingTableFails(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	dir := writeFeed(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "stop_times.txt")))

	_, stderr, code := runCLI(t, dir)

	assert.Equal(t, ExitCode(exitCodeError), code)
	assert.Contains(t, stderr, "prune failed")
	assert.Contains(t, stderr, "stop_times.txt")
}

func TestCLI_InvalidConfigFails(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "prune.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("prune:\n  matchMode: fuzzy\n"), 0o644))
	t.Setenv(config.EnvConfigPath, cfgPath)

	_, stderr, code := runCLI(t, writeFeed(t))

	assert.Equal(t, ExitCode(exitCodeError), code)
	assert.Contains(t, stderr, "invalid config")
}
