package util

import (
	"os"
	"sync"

	"github.com/denisbrodbeck/machineid"
)

// MachineAppID scopes the protected machine id to this application
const MachineAppID = "notes-app-service"

var (
	machineID     string
	machineIDOnce sync.Once
)

// GetMachineID 获取当前机器的唯一标识符（按应用 ID 做 HMAC 保护）
// Falls back to the host name, then to an empty string. Tokens are signed with
// the auth key plus this id, so they stop validating when moved to another host.
func GetMachineID() string {
	machineIDOnce.Do(func() {
		if id, err := machineid.ProtectedID(MachineAppID); err == nil && id != "" {
			machineID = id
			return
		}
		if host, err := os.Hostname(); err == nil {
			machineID = host
		}
	})
	return machineID
}
