// Package bootstrap wires the recovery engine for a host process.
//
// It consolidates the initialization a host repeats:
//   - Logger setup with file rotation
//   - Redis connection for the outcome journal
//   - Kafka producer for outcome events
//   - OpenTelemetry tracing
//   - The recovery.Manager itself, with every enabled observer attached
//
// Example usage:
//
//	func main() {
//	    cfg, err := config.LoadServiceConfig()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := bootstrap.InitLogger(cfg.Log); err != nil {
//	        log.Fatal(err)
//	    }
//	    shutdown, err := bootstrap.InitTracing(ctx, cfg.Tracing)
//	    if err != nil {
//	        log.Warn(err)
//	    }
//	    defer shutdown(ctx)
//
//	    engine, err := bootstrap.NewEngine(ctx, cfg, executor)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer engine.Close()
//	    engine.Manager.Handle(ctx, failure, retry, dismiss)
//	}
package bootstrap
