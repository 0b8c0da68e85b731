package instance

import "github.com/angelmondragon/shopdesk/pkg/env"

// GetID names this process in logs: an explicit instance id, the dyno name,
// or the container hostname, falling back to "local".
func GetID() string {
	return env.First("local", "SHOPDESK_INSTANCE_ID", "DYNO", "HOSTNAME")
}
