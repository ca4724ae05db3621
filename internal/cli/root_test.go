package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Help(t *testing.T) {
	out, _, err := run(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "bomsort")
	assert.Contains(t, out, "Artifacts:")
	assert.Contains(t, out, "Configuration:")
}

func TestRootCommand_Version(t *testing.T) {
	SetVersion("1.2.3")
	t.Cleanup(func() { SetVersion("dev") })

	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	_, _, err := run(t, "invalid-command")
	assert.Error(t, err)
}

func TestSetVersion_IgnoresEmpty(t *testing.T) {
	SetVersion("2.0.0")
	SetVersion("")
	assert.Equal(t, "2.0.0", rootCmd.Version)
	SetVersion("dev")
}

func TestRootCommand_Subcommands(t *testing.T) {
	for _, name := range []string{"generate", "placement", "parts", "feeders", "config", "version"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := rootCmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

// run executes the root command with fresh flag state and returns
// captured stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func resetFlags() {
	jsonOutput, configPath, verbose, logFormat = false, "", false, ""
	genPlacement, genSorted, genParts, genFeeders, genDryRun, genMaxPasses = "", false, "", "", false, 0
	placementOut, placementSorted = "-", false
	partsOut = "-"
	feedersOut, feedersPasses = "-", 0
	resetHelp(rootCmd)
}

// resetHelp clears a --help left set by an earlier Execute.
func resetHelp(cmd *cobra.Command) {
	if f := cmd.Flags().Lookup("help"); f != nil {
		_ = f.Value.Set("false")
	}
	for _, c := range cmd.Commands() {
		resetHelp(c)
	}
}
