package config

import "os"

// Role identifies which AgentRunner role a model/config applies to.
type Role string

// Agent roles recognized by the transition matrix and runner registry.
const (
	RolePM       Role = "pm_agent"
	RoleDev      Role = "dev_agent"
	RoleQA       Role = "qa_agent"
	RoleTechLead Role = "tech_lead"
)

// RoleConfig carries the per-role model identifier used when calling the
// Spawner (dev/qa/tech_lead) or the synchronous Gateway (pm).
type RoleConfig struct {
	Models map[Role]string
}

// loadRoleConfig reads per-role model identifiers from the environment,
// falling back to reasonable defaults so the engine boots without a
// fully-populated environment in dev/test.
func loadRoleConfig() *RoleConfig {
	return &RoleConfig{
		Models: map[Role]string{
			RolePM:       envOr("PM_AGENT_MODEL", "claude-default"),
			RoleDev:      envOr("DEV_AGENT_MODEL", "claude-default"),
			RoleQA:       envOr("QA_AGENT_MODEL", "claude-default"),
			RoleTechLead: envOr("TECH_LEAD_MODEL", "claude-default"),
		},
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
