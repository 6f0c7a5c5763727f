// Package harness provides utilities for integration testing the ghscout CLI.
// It handles binary compilation, environment isolation, a fake directory API
// and command execution.
//
// Environment variables managed:
//   - GHSCOUT_HOME: Isolated per test (temp directory)
//   - GHSCOUT_DEBUG: Disabled to reduce noise
//   - GHSCOUT_API_BASE_URL: Points at the test's FakeAPI when one is attached
//   - GHSCOUT_TOKEN, GITHUB_TOKEN: Cleared so no real credentials leak in
package harness
