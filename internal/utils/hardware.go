package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"strings"
)

// GetDeviceID hashes the machine's physical MAC address into a short stable
// id like "POS-A1B2C3D4", shown in the system status endpoint so support can
// tell terminals apart.
func GetDeviceID() string {
	interfaces, err := net.Interfaces()
	if err != nil {
		return "UNKNOWN-DEVICE"
	}

	var macAddress string
	for _, i := range interfaces {
		if i.Flags&net.FlagUp != 0 && len(i.HardwareAddr) > 0 {
			macAddress = i.HardwareAddr.String()
			break
		}
	}
	if macAddress == "" {
		return "UNKNOWN-DEVICE"
	}

	hash := sha256.Sum256([]byte(macAddress + "KASIR-POS-SALT"))
	return "POS-" + strings.ToUpper(hex.EncodeToString(hash[:])[:8])
}
