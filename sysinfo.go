package srp

import (
	"fmt"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// ReadSysInfo collects platform, CPU model and memory size of the current host.
// Fields that cannot be read stay empty.
func ReadSysInfo() SysInfo {
	var info SysInfo
	if hostStat, err := host.Info(); err == nil {
		info.Platform = hostStat.Platform
	}
	if cpuStat, err := cpu.Info(); err == nil && len(cpuStat) > 0 {
		info.CPU = cpuStat[0].ModelName
	}
	if vmStat, err := mem.VirtualMemory(); err == nil {
		info.RAM = fmt.Sprintf("%d GB", vmStat.Total/1024/1024/1024)
	}
	return info
}
