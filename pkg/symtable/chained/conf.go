package chained

import (
	"github.com/scottcagno/symtable/pkg/alloc"
	"github.com/scottcagno/symtable/pkg/hash/sdbm"
	"github.com/scottcagno/symtable/pkg/logger"
)

// HashFunc is a type definition for what a hash function should look like
type HashFunc func(key string) uint64

// default config
var defaultConfig = &Config{
	Logger:    logger.DefaultLogger,
	Allocator: alloc.Heap,
	Hash:      sdbm.Sum64,
}

// Config holds configuration settings for a HashTable instance
type Config struct {
	Logger    *logger.Logger  // logger
	Allocator alloc.Allocator // reserves node, key and bucket storage
	Hash      HashFunc        // key hash, reduced modulo the bucket count
}

// checkConfig is a helper to make sure the configuration
// options are correct and handles and missing options
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
	if conf.Hash == nil {
		conf.Hash = defaultConfig.Hash
	}
	return conf
}
