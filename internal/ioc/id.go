package ioc

import (
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/sony/sonyflake"
)

func InitIDGenerator() *sonyflake.Sonyflake {
	type Config struct {
		MachineID uint16
		StartTime string
	}
	var cfg Config
	if err := econf.UnmarshalKey("idGenerator", &cfg); err != nil {
		panic(err)
	}
	settings := sonyflake.Settings{
		StartTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if cfg.StartTime != "" {
		startTime, err := time.Parse(time.DateOnly, cfg.StartTime)
		if err != nil {
			panic(err)
		}
		settings.StartTime = startTime
	}
	if cfg.MachineID != 0 {
		machineID := cfg.MachineID
		settings.MachineID = func() (uint16, error) {
			return machineID, nil
		}
	}
	generator := sonyflake.NewSonyflake(settings)
	if generator == nil {
		panic("创建 sonyflake 失败")
	}
	return generator
}
