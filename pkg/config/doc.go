// Package config provides configuration types and loading for hosts of the
// payment recovery engine.
//
// Values come from a YAML file (./configs/recovery_{APP_ENV}.yaml by default),
// RECOVERY_* environment variables and Docker secrets, in increasing order of
// precedence. Durations are seconds or Go duration strings.
//
// Usage:
//
//	cfg, err := config.LoadServiceConfig(config.LoadOptions{
//	    ConfigPath:    "/etc/recovery",
//	    AllowNoConfig: true,
//	})
//	if err != nil {
//	    return err
//	}
//	engine, err := bootstrap.NewEngine(ctx, cfg, executor)
package config
