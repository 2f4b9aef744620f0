// Package sysinfo gathers the device information shown on the About screen.
package sysinfo

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Info is the data rendered on the About screen. Fields that could not be
// read carry an inline error placeholder instead; gathering never fails.
type Info struct {
	DeviceName     string
	MemTotalKB     int64
	MemAvailableKB int64
	PackageVersion string
}

// Gather collects system information. meminfoPath is normally /proc/meminfo
// and infoPath the firmware package info file.
func Gather(deviceName, meminfoPath, infoPath string) Info {
	info := Info{DeviceName: deviceName}
	info.MemTotalKB, info.MemAvailableKB = readMeminfo(meminfoPath)
	info.PackageVersion = ReadFileOrPlaceholder(infoPath)
	return info
}

// Render produces the About screen body text.
func (i Info) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Device: %s\n", i.DeviceName)
	fmt.Fprintf(&b, "Memory: %d MB / %d MB Available\n\n", i.MemTotalKB/1024, i.MemAvailableKB/1024)
	fmt.Fprintf(&b, "Package Version:\n%s", i.PackageVersion)
	return b.String()
}

// ReadFileOrPlaceholder reads a small text file, returning an in-UI error
// placeholder when the file is unavailable.
func ReadFileOrPlaceholder(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("Error: Cannot open %s", path)
	}
	return strings.TrimRight(string(data), "\n")
}

func readMeminfo(path string) (total, available int64) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if n, err := fmt.Sscanf(line, "MemTotal: %d kB", &total); n == 1 && err == nil {
			continue
		}
		fmt.Sscanf(line, "MemAvailable: %d kB", &available)
	}
	return total, available
}
