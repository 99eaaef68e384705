package observability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type alertRule struct {
	Alert       string            `yaml:"alert"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for"`
	Labels      map[string]string `yaml:"labels"`
	Annotations map[string]string `yaml:"annotations"`
}

type alertGroup struct {
	Name  string      `yaml:"name"`
	Rules []alertRule `yaml:"rules"`
}

type ruleFile struct {
	Groups []alertGroup `yaml:"groups"`
}

func TestGateAlertRules(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "deploy", "prometheus", "alerts", "warehouse.yml"))
	require.NoError(t, err)

	var rules ruleFile
	require.NoError(t, yaml.Unmarshal(data, &rules))

	var gateGroup *alertGroup
	for i := range rules.Groups {
		if rules.Groups[i].Name == "gate" {
			gateGroup = &rules.Groups[i]
			break
		}
	}
	require.NotNil(t, gateGroup, "gate alert group missing")

	expected := map[string]struct {
		severity string
		runbook  string
	}{
		"GateStoreLookupFailures": {severity: "critical", runbook: "docs/runbook-gate.md#store-lookup-failures"},
		"AuthRejectionSpike":      {severity: "warning", runbook: "docs/runbook-gate.md#auth-rejection-spike"},
		"HighLatency":             {severity: "warning", runbook: "docs/runbook-gate.md#high-latency"},
	}
	require.Len(t, gateGroup.Rules, len(expected))

	for _, rule := range gateGroup.Rules {
		want, ok := expected[rule.Alert]
		require.True(t, ok, "unexpected rule %q", rule.Alert)
		assert.Equal(t, want.severity, rule.Labels["severity"], rule.Alert)
		assert.Equal(t, want.runbook, rule.Annotations["runbook"], rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], rule.Alert)
		assert.NotEmpty(t, rule.Expr, rule.Alert)
		assert.NotEmpty(t, rule.For, rule.Alert)
	}
}
