package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadRoleConfigDefaults(t *testing.T) {
	rc := loadRoleConfig()

	assert.Equal(t, "claude-default", rc.Models[RolePM])
	assert.Equal(t, "claude-default", rc.Models[RoleDev])
	assert.Equal(t, "claude-default", rc.Models[RoleQA])
	assert.Equal(t, "claude-default", rc.Models[RoleTechLead])
}

func TestLoadRoleConfigFromEnv(t *testing.T) {
	t.Setenv("PM_AGENT_MODEL", "pm-model-v2")
	t.Setenv("DEV_AGENT_MODEL", "dev-model-v2")
	t.Setenv("QA_AGENT_MODEL", "qa-model-v2")
	t.Setenv("TECH_LEAD_MODEL", "lead-model-v2")

	rc := loadRoleConfig()

	assert.Equal(t, "pm-model-v2", rc.Models[RolePM])
	assert.Equal(t, "dev-model-v2", rc.Models[RoleDev])
	assert.Equal(t, "qa-model-v2", rc.Models[RoleQA])
	assert.Equal(t, "lead-model-v2", rc.Models[RoleTechLead])
}

func TestRoleConstants(t *testing.T) {
	assert.Equal(t, Role("pm_agent"), RolePM)
	assert.Equal(t, Role("dev_agent"), RoleDev)
	assert.Equal(t, Role("qa_agent"), RoleQA)
	assert.Equal(t, Role("tech_lead"), RoleTechLead)
}
