package linked

import (
	"github.com/scottcagno/symtable/pkg/alloc"
	"github.com/scottcagno/symtable/pkg/logger"
)

var defaultConfig = &Config{
	Logger:    logger.DefaultLogger,
	Allocator: alloc.Heap,
}

// Config holds configuration settings for a ListTable instance
type Config struct {
	Logger    *logger.Logger  // logger
	Allocator alloc.Allocator // reserves node and key storage
}

func checkConfig(conf *Config) *Config {
	if conf == nil {
		return defaultConfig
	}
	if conf.Logger == nil {
		conf.Logger = defaultConfig.Logger
	}
	if conf.Allocator == nil {
		conf.Allocator = defaultConfig.Allocator
	}
	return conf
}
