// +build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/clevercloud/pkg/clevercloud"
)

// TestAccountWorkflow_SelfAndZones checks the read-only account surface
func TestAccountWorkflow_SelfAndZones(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := config.NewTestClient(t)
	ctx := context.Background()

	// 1. The credentials must resolve to a user
	self, err := client.Self().Get(ctx)
	require.NoError(t, err, "Failed to get current user")
	assert.NotEmpty(t, self.ID)
	assert.NotEmpty(t, self.Email)

	// 2. The platform advertises at least one zone
	zones, err := client.Zones().List(ctx)
	require.NoError(t, err, "Failed to list zones")
	assert.NotEmpty(t, zones)

	// 3. Application zones are a subset of all zones
	appZones, err := client.Zones().Applications(ctx)
	require.NoError(t, err, "Failed to list application zones")
	assert.LessOrEqual(t, len(appZones), len(zones))

	for _, zone := range appZones {
		assert.True(t, zone.HasTag(clevercloud.ZoneTagApplications))
	}
}

// TestFunctionWorkflow_CompleteDeployJourney ships a WebAssembly module end
// to end: create, deploy, wait, execute, delete
func TestFunctionWorkflow_CompleteDeployJourney(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)
	config.RequireOrganisation(t)
	code := config.RequireWasm(t)

	client := config.NewTestClient(t)
	ctx := context.Background()

	// 1. Create function
	opts := clevercloud.DefaultFunctionOpts()
	name := GenerateTestName("workflow-fn")
	opts.Name = &name

	function, err := client.Functions().Create(ctx, config.OrganisationID, opts)
	require.NoError(t, err, "Failed to create function")

	defer func() {
		// Cleanup
		err := client.Functions().Delete(ctx, config.OrganisationID, function.ID)
		if err != nil && config.Verbose {
			t.Logf("Cleanup warning for function %s: %v", function.ID, err)
		}
	}()

	// 2. Ship the code
	deployment, err := client.Deployments().Deploy(ctx, config.OrganisationID, function.ID, &clevercloud.DeploymentOpts{
		Platform: clevercloud.PlatformRust,
	}, code)
	require.NoError(t, err, "Failed to deploy function")

	// 3. Wait for the deployment to settle
	deployment, err = client.Deployments().WaitReady(ctx, config.OrganisationID, function.ID, deployment.ID)
	require.NoError(t, err, "Deployment did not become ready")
	assert.Equal(t, clevercloud.DeploymentStatusReady, deployment.Status)
	require.NotNil(t, deployment.URL)

	// 4. The deployment now serves executions
	executable, err := client.Deployments().Executable(ctx, config.OrganisationID, function.ID)
	require.NoError(t, err, "No executable deployment")
	assert.Equal(t, deployment.ID, executable.ID)

	result, err := client.Functions().Execute(ctx, *executable.URL)
	require.NoError(t, err, "Failed to execute function")
	assert.True(t, result.IsOK())

	// 5. The deployment shows up in the list
	deployments, err := client.Deployments().List(ctx, config.OrganisationID, function.ID)
	require.NoError(t, err, "Failed to list deployments")

	found := false
	for _, d := range deployments {
		if d.ID == deployment.ID {
			found = true
		}
	}
	assert.True(t, found, "Deployed version missing from the list")
}

// TestEnvironmentWorkflow_RoundTrip inserts and removes a variable on a
// config-provider addon
func TestEnvironmentWorkflow_RoundTrip(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	addonID := os.Getenv("CLEVER_CONFIG_PROVIDER_ID")
	if addonID == "" {
		t.Skip("CLEVER_CONFIG_PROVIDER_ID not set, skipping integration test")
	}

	client := config.NewTestClient(t)
	ctx := context.Background()

	// 1. Snapshot the current variable count
	before, err := client.Environment().Get(ctx, addonID)
	require.NoError(t, err, "Failed to read environment")

	// 2. Insert a fresh variable
	name := GenerateTestName("WORKFLOW_VAR")
	variables, err := client.Environment().Insert(ctx, addonID, name, "integration")
	require.NoError(t, err, "Failed to insert variable")
	assert.Len(t, variables, len(before)+1)
	assert.Equal(t, "integration", clevercloud.EnvironmentToMap(variables)[name])

	// 3. Remove it again
	variables, err = client.Environment().Remove(ctx, addonID, name)
	require.NoError(t, err, "Failed to remove variable")
	assert.Len(t, variables, len(before))
	assert.NotContains(t, clevercloud.EnvironmentToMap(variables), name)
}
