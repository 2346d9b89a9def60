package configkeys

const (
	delimiter = "."

	ConfigPrefix = "config"

	ConfigCachePrefix = ConfigPrefix + delimiter + "cache"

	ConfigCacheCapacity = ConfigCachePrefix + delimiter + "capacity"
	ConfigCacheName     = ConfigCachePrefix + delimiter + "name"
	ConfigCacheLogLevel = ConfigCachePrefix + delimiter + "log_level"
)
