package config

import "github.com/slidesmith/slidesmith/internal/domain/entities"

// Merge layers configurations left to right, later values taking precedence
// over earlier ones when set. Boolean fields cannot be distinguished from
// unset in TOML, so later configs always win for those.
func Merge(configs ...*entities.Config) *entities.Config {
	if len(configs) == 0 {
		return GetDefaultConfig()
	}

	result := deepCopy(configs[0])
	for i := 1; i < len(configs); i++ {
		if configs[i] != nil {
			mergeInto(result, configs[i])
		}
	}
	return result
}

func mergeInto(target, source *entities.Config) {
	if source.Server.Host != "" {
		target.Server.Host = source.Server.Host
	}
	if source.Server.Port != 0 {
		target.Server.Port = source.Server.Port
	}
	if source.Server.ReadTimeout != 0 {
		target.Server.ReadTimeout = source.Server.ReadTimeout
	}
	if source.Server.WriteTimeout != 0 {
		target.Server.WriteTimeout = source.Server.WriteTimeout
	}
	if source.Server.ShutdownTimeout != 0 {
		target.Server.ShutdownTimeout = source.Server.ShutdownTimeout
	}
	if len(source.Server.CORSOrigins) > 0 {
		target.Server.CORSOrigins = make([]string, len(source.Server.CORSOrigins))
		copy(target.Server.CORSOrigins, source.Server.CORSOrigins)
	}

	if source.Generator.DefaultTheme != "" {
		target.Generator.DefaultTheme = source.Generator.DefaultTheme
	}
	if source.Generator.DefaultTitle != "" {
		target.Generator.DefaultTitle = source.Generator.DefaultTitle
	}
	if source.Generator.Creator != "" {
		target.Generator.Creator = source.Generator.Creator
	}

	if source.Logging.Level != "" {
		target.Logging.Level = source.Logging.Level
	}
	target.Logging.Verbose = source.Logging.Verbose
}

func deepCopy(src *entities.Config) *entities.Config {
	if src == nil {
		return nil
	}

	dst := &entities.Config{
		Server:    src.Server,
		Generator: src.Generator,
		Logging:   src.Logging,
	}
	if src.Server.CORSOrigins != nil {
		dst.Server.CORSOrigins = make([]string, len(src.Server.CORSOrigins))
		copy(dst.Server.CORSOrigins, src.Server.CORSOrigins)
	}
	return dst
}
