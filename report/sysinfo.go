package report

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// SysInfo describes the machine the batch ran on, so run times can be
// compared across reports.
type SysInfo struct {
	Platform string
	CPU      string
	RAM      string
}

// CollectSysInfo queries the host, CPU model and total memory.
func CollectSysInfo() (SysInfo, error) {
	hostStat, err := host.Info()
	if err != nil {
		return SysInfo{}, errors.Wrap(err, "report: host info")
	}
	cpuStat, err := cpu.Info()
	if err != nil {
		return SysInfo{}, errors.Wrap(err, "report: cpu info")
	}
	vmStat, err := mem.VirtualMemory()
	if err != nil {
		return SysInfo{}, errors.Wrap(err, "report: memory info")
	}

	info := SysInfo{
		Platform: fmt.Sprintf("%s %s", hostStat.Platform, hostStat.PlatformVersion),
		RAM:      fmt.Sprintf("%d GB", vmStat.Total/1024/1024/1024),
	}
	if len(cpuStat) > 0 {
		info.CPU = cpuStat[0].ModelName
	}
	return info, nil
}

// Pairs returns the fields as label/value rows.
func (s SysInfo) Pairs() [][2]string {
	return [][2]string{
		{"Platform", s.Platform},
		{"CPU", s.CPU},
		{"RAM", s.RAM},
	}
}
